package shared

import (
	"github.com/blogicum/internal/http/response"
	"github.com/blogicum/internal/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RequestLog 提供携带 request_id 的日志实例。
func RequestLog(c *gin.Context) *zap.SugaredLogger {
	if id := response.RequestID(c); id != "" {
		return logger.SW("request_id", id)
	}
	return logger.S()
}

// RespondError 返回 JSON 错误响应，并在有原始错误时记录日志。
func RespondError(c *gin.Context, code int, key string, err error) {
	appErr := wrap(c, code, key, err)
	response.Error(c, appErr.Code, appErr.Message)
}

// RespondPageError 渲染错误页面，并在有原始错误时记录日志。
func RespondPageError(c *gin.Context, code int, key string, err error) {
	appErr := wrap(c, code, key, err)
	response.PageError(c, appErr.Code, appErr.Message)
}

func wrap(c *gin.Context, code int, key string, err error) *response.AppError {
	appErr := response.WrapError(code, Message(key), err)
	if err != nil {
		RequestLog(c).Errorw("handler_error",
			"code", appErr.Code,
			"message", appErr.Message,
			"path", c.FullPath(),
			"error", err,
		)
	}
	return appErr
}
