package service

import (
	"context"
	"time"

	"github.com/blogicum/internal/cache"
	"github.com/blogicum/internal/constants"
	"github.com/blogicum/internal/metrics"
	"github.com/blogicum/internal/models"
	"github.com/blogicum/internal/repository"
)

// BlogService 公开页面读服务
// 只读、无状态：首页、文章详情、分类页以及分页接口都建立在可见性条件之上。
type BlogService struct {
	posts      repository.PostRepository
	categories repository.CategoryRepository
	indexLimit int
	cacheTTL   time.Duration
	metrics    *metrics.Metrics
	now        func() time.Time
}

// BlogOptions 读服务参数
type BlogOptions struct {
	IndexLimit int
	CacheTTL   time.Duration
	Metrics    *metrics.Metrics
}

// CategoryPage 分类页数据
type CategoryPage struct {
	Category models.Category `json:"category"`
	Posts    []models.Post   `json:"post_list"`
}

// NewBlogService 创建公开页面读服务
func NewBlogService(posts repository.PostRepository, categories repository.CategoryRepository, opts BlogOptions) *BlogService {
	if opts.IndexLimit <= 0 {
		opts.IndexLimit = constants.DefaultIndexLimit
	}
	if opts.CacheTTL <= 0 {
		opts.CacheTTL = constants.DefaultCacheTTLSecond * time.Second
	}
	return &BlogService{
		posts:      posts,
		categories: categories,
		indexLimit: opts.IndexLimit,
		cacheTTL:   opts.CacheTTL,
		metrics:    opts.Metrics,
		now:        time.Now,
	}
}

// SetClock 替换当前时间来源
func (s *BlogService) SetClock(now func() time.Time) {
	if now == nil {
		now = time.Now
	}
	s.now = now
}

// IndexLimit 首页展示条数
func (s *BlogService) IndexLimit() int {
	return s.indexLimit
}

// Index 首页：最新的可见文章
func (s *BlogService) Index(ctx context.Context) ([]models.Post, error) {
	key := cache.BlogIndexKey()
	var cached []models.Post
	if s.lookup(ctx, "index", key, &cached) {
		return cached, nil
	}
	now := s.now()
	posts, err := s.posts.Published(now).Limit(s.indexLimit).Find()
	if err != nil {
		return nil, err
	}
	s.storeListing(ctx, key, posts, now)
	return posts, nil
}

// PostDetail 文章详情，文章不可见时返回 ErrNotFound
func (s *BlogService) PostDetail(ctx context.Context, id uint) (*models.Post, error) {
	key := cache.BlogPostKey(id)
	var cached models.Post
	if s.lookup(ctx, "post", key, &cached) {
		return &cached, nil
	}
	post, err := s.posts.Published(s.now()).Get(id)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrNotFound
	}
	s.store(ctx, key, post)
	return post, nil
}

// CategoryPosts 分类页：分类必须已发布，文章只要求发布时间已到且自身已发布
func (s *BlogService) CategoryPosts(ctx context.Context, slug string) (*CategoryPage, error) {
	key := cache.BlogCategoryKey(slug)
	var cached CategoryPage
	if s.lookup(ctx, "category", key, &cached) {
		return &cached, nil
	}
	category, err := s.categories.GetPublishedBySlug(slug)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, ErrNotFound
	}
	now := s.now()
	posts, err := s.posts.Query().
		WithActualData(now).
		Published().
		InCategory(category.ID).
		OrderByNewest().
		WithRelations().
		Find()
	if err != nil {
		return nil, err
	}
	page := &CategoryPage{Category: *category, Posts: posts}
	s.storeListing(ctx, key, page, now)
	return page, nil
}

type postPage struct {
	Posts []models.Post `json:"posts"`
	Total int64         `json:"total"`
}

// ListPublished 分页获取可见文章及总数
func (s *BlogService) ListPublished(ctx context.Context, page, pageSize int) ([]models.Post, int64, error) {
	page, pageSize = normalizePage(page, pageSize)
	key := cache.BlogPostPageKey(page, pageSize)
	var cached postPage
	if s.lookup(ctx, "post_page", key, &cached) {
		return cached.Posts, cached.Total, nil
	}
	now := s.now()
	query := s.posts.Published(now)
	total, err := query.Count()
	if err != nil {
		return nil, 0, err
	}
	posts, err := query.Page(page, pageSize).Find()
	if err != nil {
		return nil, 0, err
	}
	s.storeListing(ctx, key, postPage{Posts: posts, Total: total}, now)
	return posts, total, nil
}

func (s *BlogService) lookup(ctx context.Context, page, key string, dest interface{}) bool {
	if !cache.Enabled() {
		return false
	}
	hit, err := cache.GetJSON(ctx, key, dest)
	if err != nil {
		hit = false
	}
	s.metrics.RecordCacheLookup(page, hit)
	return hit
}

func (s *BlogService) store(ctx context.Context, key string, value interface{}) {
	_ = cache.SetJSON(ctx, key, value, s.cacheTTL)
}

// storeListing 列表缓存最迟在下一篇定时文章发布时过期
func (s *BlogService) storeListing(ctx context.Context, key string, value interface{}, now time.Time) {
	if !cache.Enabled() {
		return
	}
	ttl := s.listingTTL(now)
	if ttl <= 0 {
		return
	}
	_ = cache.SetJSON(ctx, key, value, ttl)
}

func (s *BlogService) listingTTL(now time.Time) time.Duration {
	next, err := s.posts.NextScheduled(now)
	if err != nil {
		return 0
	}
	if next == nil {
		return s.cacheTTL
	}
	if until := next.Sub(now); until < s.cacheTTL {
		return until
	}
	return s.cacheTTL
}

func normalizePage(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if page > constants.MaxPage {
		page = constants.MaxPage
	}
	if pageSize <= 0 {
		pageSize = constants.DefaultPageSize
	}
	if pageSize > constants.MaxPageSize {
		pageSize = constants.MaxPageSize
	}
	return page, pageSize
}
