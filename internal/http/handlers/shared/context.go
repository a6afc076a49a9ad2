package shared

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

// ParseIDParam 读取路径中的正整数 ID，格式非法时返回 false。
func ParseIDParam(c *gin.Context, name string) (uint, bool) {
	raw := strings.TrimSpace(c.Param(name))
	if raw == "" {
		return 0, false
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}
