package constants

// 博客展示默认值
const (
	DefaultIndexLimit     = 5
	DefaultPageSize       = 10
	MaxPageSize           = 50
	MaxPage               = 10000
	DefaultCacheTTLSecond = 60
)

// 页面模板名称
const (
	TemplateIndex           = "blog/index.html"
	TemplateDetail          = "blog/detail.html"
	TemplateCategory        = "blog/category.html"
	TemplateNotFound        = "errors/404.html"
	TemplateInternal        = "errors/500.html"
	TemplateTooManyRequests = "errors/429.html"
)

// 页面上下文字段
const (
	ContextPostList = "post_list"
	ContextPost     = "post"
	ContextCategory = "category"
)

// 公开页缓存 key
const (
	CacheKeyBlogPrefix   = "blog:"
	CacheKeyBlogIndex    = "blog:index"
	CacheKeyBlogPost     = "blog:post:%d"
	CacheKeyBlogCategory = "blog:category:%s"
	CacheKeyBlogPostPage = "blog:posts:%d:%d"
)

// 队列常量
const (
	QueueDefault = "default"
)

// 异步任务类型
const (
	TaskBlogCacheRefresh = "blog:cache_refresh"
)

// 缓存刷新原因
const (
	RefreshReasonScheduledPost = "scheduled_post"
	RefreshReasonContentChange = "content_change"
)
