package public

import (
	"strings"

	"github.com/blogicum/internal/http/handlers/shared"
	"github.com/blogicum/internal/http/response"

	"github.com/gin-gonic/gin"
)

// GetPosts 分页获取可见文章
func (h *Handler) GetPosts(c *gin.Context) {
	page, pageSize := shared.QueryPagination(c, h.Config.Blog.PageSize)
	posts, total, err := h.BlogService.ListPublished(c.Request.Context(), page, pageSize)
	if err != nil {
		respondError(c, response.CodeInternal, "error.post_fetch_failed", err)
		return
	}
	response.SuccessWithPage(c, posts, response.NewPagination(page, pageSize, total))
}

// GetPost 获取可见文章详情
func (h *Handler) GetPost(c *gin.Context) {
	id, ok := parsePostID(c)
	if !ok {
		respondError(c, response.CodeNotFound, "error.post_not_found", nil)
		return
	}
	post, err := h.BlogService.PostDetail(c.Request.Context(), id)
	if err != nil {
		respondWithMappedError(c, err, postErrorRules, response.CodeInternal, "error.post_fetch_failed")
		return
	}
	response.Success(c, post)
}

// GetCategoryPosts 获取分类及其可见文章
func (h *Handler) GetCategoryPosts(c *gin.Context) {
	slug := strings.TrimSpace(c.Param("slug"))
	page, err := h.BlogService.CategoryPosts(c.Request.Context(), slug)
	if err != nil {
		respondWithMappedError(c, err, categoryErrorRules, response.CodeInternal, "error.category_fetch_failed")
		return
	}
	response.Success(c, page)
}
