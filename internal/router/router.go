package router

import (
	"fmt"
	"strings"

	"github.com/blogicum/internal/cache"
	"github.com/blogicum/internal/config"
	publichandlers "github.com/blogicum/internal/http/handlers/public"
	"github.com/blogicum/internal/logger"
	"github.com/blogicum/internal/provider"
	"github.com/blogicum/internal/render"

	"github.com/gin-gonic/gin"
)

// SetupRouter 初始化路由
func SetupRouter(cfg *config.Config, c *provider.Container) (*gin.Engine, error) {
	log := logger.L
	if log == nil {
		log = logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	}
	renderer, err := render.New()
	if err != nil {
		return nil, fmt.Errorf("load templates: %w", err)
	}

	r := gin.New()
	r.HTMLRender = renderer

	publicHandler := publichandlers.New(c)

	// 中间件
	r.Use(RecoveryMiddleware())
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(log))
	r.Use(MetricsMiddleware(c.Metrics))
	r.Use(CORSMiddleware(cfg.CORS))

	if cfg.Metrics.Enabled && c.Metrics != nil {
		r.GET(cfg.Metrics.Path, gin.WrapH(c.Metrics.Handler()))
	}

	limited := r.Group("")
	if rule, ok := publicRateLimitRule(cfg); ok {
		limited.Use(RateLimitMiddleware(cache.Client(), rule, KeyByIP))
	}

	// 页面路由
	limited.GET("/", publicHandler.Index)
	limited.GET("/posts/:id/", publicHandler.PostDetail)
	limited.GET("/category/:slug/", publicHandler.CategoryPosts)

	// 只读接口
	public := limited.Group("/api/v1/public")
	{
		public.GET("/posts", publicHandler.GetPosts)
		public.GET("/posts/:id", publicHandler.GetPost)
		public.GET("/categories/:slug/posts", publicHandler.GetCategoryPosts)
	}

	r.NoRoute(publicHandler.NotFound)

	return r, nil
}

func publicRateLimitRule(cfg *config.Config) (RateLimitRule, bool) {
	limit := cfg.Security.PublicRateLimit
	if !limit.Enabled || !cfg.Redis.Enabled {
		return RateLimitRule{}, false
	}
	redisPrefix := strings.TrimSpace(cfg.Redis.Prefix)
	if redisPrefix == "" {
		redisPrefix = "blogicum"
	}
	return RateLimitRule{
		Prefix:        fmt.Sprintf("%s:rate:public", redisPrefix),
		WindowSeconds: limit.WindowSeconds,
		MaxRequests:   limit.MaxRequests,
		BlockSeconds:  limit.BlockSeconds,
		MessageKey:    "error.too_many_requests",
	}, true
}
