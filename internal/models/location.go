package models

// Location 地点表
type Location struct {
	ID   uint   `gorm:"primarykey" json:"id"`                   // 主键
	Name string `gorm:"type:varchar(256);not null" json:"name"` // 地点名称
	PublishFields
}

// TableName 指定表名
func (Location) TableName() string {
	return "locations"
}
