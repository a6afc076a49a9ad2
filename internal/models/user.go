package models

import (
	"strings"
	"time"
)

// User 作者表（仅作为文章作者引用，不包含认证信息）
type User struct {
	ID        uint      `gorm:"primarykey" json:"id"`                                   // 主键
	Username  string    `gorm:"type:varchar(150);uniqueIndex;not null" json:"username"` // 用户名
	FirstName string    `gorm:"type:varchar(150);default:''" json:"first_name"`         // 名
	LastName  string    `gorm:"type:varchar(150);default:''" json:"last_name"`          // 姓
	Email     string    `gorm:"type:varchar(254);default:''" json:"email"`              // 邮箱
	CreatedAt time.Time `gorm:"<-:create;index" json:"created_at"`                      // 创建时间
}

// TableName 指定表名
func (User) TableName() string {
	return "users"
}

// DisplayName 返回展示用名称，缺省回退到用户名
func (u User) DisplayName() string {
	full := strings.TrimSpace(strings.TrimSpace(u.FirstName) + " " + strings.TrimSpace(u.LastName))
	if full != "" {
		return full
	}
	return u.Username
}
