package public

import (
	"errors"

	"github.com/blogicum/internal/http/response"
	"github.com/blogicum/internal/service"

	"github.com/gin-gonic/gin"
)

// mappedHandlerError 定义业务错误到接口错误响应的映射关系。
type mappedHandlerError struct {
	target error
	code   int
	key    string
}

var postErrorRules = []mappedHandlerError{
	{target: service.ErrNotFound, code: response.CodeNotFound, key: "error.post_not_found"},
}

var categoryErrorRules = []mappedHandlerError{
	{target: service.ErrNotFound, code: response.CodeNotFound, key: "error.category_not_found"},
}

// resolveMappedError 返回命中的规则；未命中时使用兜底规则并保留原始错误用于日志
func resolveMappedError(err error, rules []mappedHandlerError, fallbackCode int, fallbackKey string) (mappedHandlerError, error) {
	for _, rule := range rules {
		if errors.Is(err, rule.target) {
			return rule, nil
		}
	}
	return mappedHandlerError{code: fallbackCode, key: fallbackKey}, err
}

func respondWithMappedError(c *gin.Context, err error, rules []mappedHandlerError, fallbackCode int, fallbackKey string) {
	rule, cause := resolveMappedError(err, rules, fallbackCode, fallbackKey)
	respondError(c, rule.code, rule.key, cause)
}

func respondPageWithMappedError(c *gin.Context, err error, rules []mappedHandlerError, fallbackCode int, fallbackKey string) {
	rule, cause := resolveMappedError(err, rules, fallbackCode, fallbackKey)
	respondPageError(c, rule.code, rule.key, cause)
}
