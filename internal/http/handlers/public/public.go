package public

import (
	"strings"

	"github.com/blogicum/internal/constants"
	"github.com/blogicum/internal/http/response"

	"github.com/gin-gonic/gin"
)

// Index 首页：最新的可见文章
func (h *Handler) Index(c *gin.Context) {
	posts, err := h.BlogService.Index(c.Request.Context())
	if err != nil {
		respondPageError(c, response.CodeInternal, "error.post_fetch_failed", err)
		return
	}
	response.Page(c, constants.TemplateIndex, gin.H{
		constants.ContextPostList: posts,
	})
}

// PostDetail 文章详情页
func (h *Handler) PostDetail(c *gin.Context) {
	id, ok := parsePostID(c)
	if !ok {
		respondPageError(c, response.CodeNotFound, "error.post_not_found", nil)
		return
	}
	post, err := h.BlogService.PostDetail(c.Request.Context(), id)
	if err != nil {
		respondPageWithMappedError(c, err, postErrorRules, response.CodeInternal, "error.post_fetch_failed")
		return
	}
	response.Page(c, constants.TemplateDetail, gin.H{
		constants.ContextPost: post,
	})
}

// CategoryPosts 分类页
func (h *Handler) CategoryPosts(c *gin.Context) {
	slug := strings.TrimSpace(c.Param("slug"))
	page, err := h.BlogService.CategoryPosts(c.Request.Context(), slug)
	if err != nil {
		respondPageWithMappedError(c, err, categoryErrorRules, response.CodeInternal, "error.category_fetch_failed")
		return
	}
	response.Page(c, constants.TemplateCategory, gin.H{
		constants.ContextCategory: page.Category,
		constants.ContextPostList: page.Posts,
	})
}

// NotFound 未匹配路由
func (h *Handler) NotFound(c *gin.Context) {
	if strings.HasPrefix(c.Request.URL.Path, "/api/") {
		respondError(c, response.CodeNotFound, "error.not_found", nil)
		return
	}
	respondPageError(c, response.CodeNotFound, "error.not_found", nil)
}
