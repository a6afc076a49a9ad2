package models

// Category 分类表
type Category struct {
	ID          uint   `gorm:"primarykey" json:"id"`                              // 主键
	Title       string `gorm:"type:varchar(256);not null" json:"title"`           // 标题
	Description string `gorm:"type:text;not null" json:"description"`             // 描述
	Slug        string `gorm:"type:varchar(64);uniqueIndex;not null" json:"slug"` // 唯一标识（拉丁字母、数字、连字符、下划线）
	PublishFields
}

// TableName 指定表名
func (Category) TableName() string {
	return "categories"
}
