package service

import "errors"

var (
	// ErrNotFound 按键查找未命中（文章 ID、分类 slug 等）
	ErrNotFound = errors.New("not found")
	// ErrInvalidInput 写入参数校验失败
	ErrInvalidInput = errors.New("invalid input")
	// ErrSlugExists 分类 slug 已存在
	ErrSlugExists = errors.New("slug already exists")
	// ErrUsernameExists 用户名已存在
	ErrUsernameExists = errors.New("username already exists")
	// ErrAuthorRequired 文章作者缺失或不存在
	ErrAuthorRequired = errors.New("post author is required")
	// ErrCategoryRequired 文章分类缺失或不存在
	ErrCategoryRequired = errors.New("post category is required")
	// ErrLocationNotFound 文章引用的地点不存在
	ErrLocationNotFound = errors.New("location not found")
)
