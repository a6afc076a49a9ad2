package shared

import (
	"strconv"

	"github.com/blogicum/internal/constants"

	"github.com/gin-gonic/gin"
)

// NormalizePagination 归一化分页参数，页码限制在 [1, MaxPage]。
func NormalizePagination(page, pageSize, defaultSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if page > constants.MaxPage {
		page = constants.MaxPage
	}
	if defaultSize <= 0 {
		defaultSize = constants.DefaultPageSize
	}
	if pageSize <= 0 {
		pageSize = defaultSize
	}
	if pageSize > constants.MaxPageSize {
		pageSize = constants.MaxPageSize
	}
	return page, pageSize
}

// QueryPagination 读取 page / page_size 查询参数，非法值按默认处理。
func QueryPagination(c *gin.Context, defaultSize int) (int, int) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.Query("page_size"))
	return NormalizePagination(page, pageSize, defaultSize)
}
