package models

import (
	"time"

	"gorm.io/gorm"
)

// Post 文章表
// 可见性（发布时间已到、已发布、所属分类已发布）只在查询层判断，见 repository.PostQuery。
type Post struct {
	ID         uint      `gorm:"primarykey" json:"id"`                    // 主键
	Title      string    `gorm:"type:varchar(256);not null" json:"title"` // 标题
	Text       string    `gorm:"type:text;not null" json:"text"`          // 正文
	PubDate    time.Time `gorm:"not null;index" json:"pub_date"`          // 发布时间（可设为未来时间实现定时发布）
	AuthorID   uint      `gorm:"not null;index" json:"author_id"`         // 作者ID
	LocationID *uint     `gorm:"index" json:"location_id"`                // 地点ID（可空）
	CategoryID *uint     `gorm:"index" json:"category_id"`                // 分类ID（库表可空，业务上必填）
	PublishFields

	// 关联
	Author   User      `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE" json:"author"`                // 作者，删除作者级联删除文章
	Location *Location `gorm:"foreignKey:LocationID;constraint:OnDelete:SET NULL" json:"location,omitempty"` // 地点，删除地点置空
	Category *Category `gorm:"foreignKey:CategoryID;constraint:OnDelete:SET NULL" json:"category,omitempty"` // 分类，删除分类置空
}

// TableName 指定表名
func (Post) TableName() string {
	return "posts"
}

// BeforeSave 统一以 UTC 存储发布时间，保证 SQLite 文本时间比较与排序正确
func (p *Post) BeforeSave(tx *gorm.DB) error {
	p.PubDate = p.PubDate.UTC()
	return nil
}
