package models

import "time"

// PublishFields 分类、地点、文章共用的发布字段
// is_published 默认为 true，由写入服务在未显式指定时补齐（GORM 对零值 bool 的 default 标签会吞掉 false）。
type PublishFields struct {
	IsPublished bool      `gorm:"not null;index" json:"is_published"` // 是否发布
	CreatedAt   time.Time `gorm:"<-:create;index" json:"created_at"`  // 创建时间（创建后不可修改）
}
