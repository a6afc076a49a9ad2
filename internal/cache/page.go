package cache

import (
	"context"
	"fmt"
	"strings"

	"github.com/blogicum/internal/constants"
)

// BlogIndexKey 首页缓存 key
func BlogIndexKey() string {
	return constants.CacheKeyBlogIndex
}

// BlogPostKey 文章详情缓存 key
func BlogPostKey(id uint) string {
	return fmt.Sprintf(constants.CacheKeyBlogPost, id)
}

// BlogCategoryKey 分类页缓存 key，slug 区分大小写
func BlogCategoryKey(slug string) string {
	return fmt.Sprintf(constants.CacheKeyBlogCategory, strings.TrimSpace(slug))
}

// BlogPostPageKey 文章分页接口缓存 key
func BlogPostPageKey(page, pageSize int) string {
	return fmt.Sprintf(constants.CacheKeyBlogPostPage, page, pageSize)
}

// PurgeBlogPages 清空全部公开页缓存
func PurgeBlogPages(ctx context.Context) (int64, error) {
	return DelByPrefix(ctx, constants.CacheKeyBlogPrefix)
}
