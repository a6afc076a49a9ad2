package response

import (
	"net/http"

	"github.com/blogicum/internal/constants"

	"github.com/gin-gonic/gin"
)

// Page 渲染 HTML 页面
func Page(c *gin.Context, name string, data gin.H) {
	c.HTML(http.StatusOK, name, data)
}

// PageError 渲染错误页面，HTTP 状态与业务状态码一致
func PageError(c *gin.Context, code int, msg string) {
	status := WrapError(code, msg, nil).HTTPStatus()
	name := constants.TemplateInternal
	switch code {
	case CodeNotFound, CodeBadRequest:
		name = constants.TemplateNotFound
	case CodeTooManyRequests:
		name = constants.TemplateTooManyRequests
	}
	c.HTML(status, name, gin.H{
		"message":    msg,
		"request_id": RequestID(c),
	})
}
