package provider

import (
	"github.com/blogicum/internal/cache"
	"github.com/blogicum/internal/config"
	"github.com/blogicum/internal/logger"
	"github.com/blogicum/internal/metrics"
	"github.com/blogicum/internal/models"
	"github.com/blogicum/internal/queue"
	"github.com/blogicum/internal/repository"
	"github.com/blogicum/internal/service"

	"gorm.io/gorm"
)

// Container 依赖注入容器
type Container struct {
	Config      *config.Config
	QueueClient *queue.Client
	Metrics     *metrics.Metrics

	// Repositories
	PostRepo     repository.PostRepository
	CategoryRepo repository.CategoryRepository
	LocationRepo repository.LocationRepository
	UserRepo     repository.UserRepository

	// Services
	PageInvalidator service.PageInvalidator
	BlogService     *service.BlogService
	PostService     *service.PostService
	CategoryService *service.CategoryService
	LocationService *service.LocationService
	UserService     *service.UserService
}

// NewContainer 初始化容器，使用全局数据库连接
func NewContainer(cfg *config.Config) *Container {
	// 初始化缓存
	if err := cache.InitRedis(&cfg.Redis); err != nil {
		logger.Warnw("provider_init_redis_failed", "error", err)
	}

	// 初始化队列客户端
	var queueClient *queue.Client
	if cfg.Queue.Enabled {
		qc, err := queue.NewClient(&cfg.Queue)
		if err != nil {
			logger.Errorw("provider_init_queue_client_failed", "error", err)
		} else {
			queueClient = qc
		}
	}
	return NewContainerWithDB(cfg, models.DB, queueClient)
}

// NewContainerWithDB 基于指定数据库连接组装容器，不初始化 Redis
func NewContainerWithDB(cfg *config.Config, db *gorm.DB, queueClient *queue.Client) *Container {
	c := &Container{
		Config:      cfg,
		QueueClient: queueClient,
	}
	if cfg.Metrics.Enabled {
		c.Metrics = metrics.Default()
	}

	// 1. 初始化 Repositories
	c.initRepositories(db)

	// 2. 初始化 Services
	c.initServices()

	return c
}

func (c *Container) initRepositories(db *gorm.DB) {
	c.PostRepo = repository.NewPostRepository(db)
	c.CategoryRepo = repository.NewCategoryRepository(db)
	c.LocationRepo = repository.NewLocationRepository(db)
	c.UserRepo = repository.NewUserRepository(db)
}

func (c *Container) initServices() {
	c.PageInvalidator = service.NewPublicPageInvalidator(c.QueueClient)
	c.BlogService = service.NewBlogService(c.PostRepo, c.CategoryRepo, service.BlogOptions{
		IndexLimit: c.Config.Blog.IndexLimit,
		CacheTTL:   c.Config.Blog.CacheTTL(),
		Metrics:    c.Metrics,
	})
	c.PostService = service.NewPostService(c.PostRepo, c.UserRepo, c.CategoryRepo, c.LocationRepo, c.PageInvalidator)
	c.CategoryService = service.NewCategoryService(c.CategoryRepo, c.PageInvalidator)
	c.LocationService = service.NewLocationService(c.LocationRepo, c.PageInvalidator)
	c.UserService = service.NewUserService(c.UserRepo, c.PageInvalidator)
}

// Close 释放队列客户端与 Redis 连接
func (c *Container) Close() error {
	var firstErr error
	if c.QueueClient != nil {
		if err := c.QueueClient.Close(); err != nil {
			firstErr = err
		}
	}
	if err := cache.Close(); err != nil && firstErr == nil {
		firstErr = err
	}
	return firstErr
}
