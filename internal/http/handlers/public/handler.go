package public

import "github.com/blogicum/internal/provider"

// Handler 公开页面与只读接口处理器
type Handler struct {
	*provider.Container
}

// New 创建公开处理器
func New(c *provider.Container) *Handler {
	return &Handler{Container: c}
}
