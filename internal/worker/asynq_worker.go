package worker

import (
	"context"

	"github.com/blogicum/internal/cache"
	"github.com/blogicum/internal/logger"
	"github.com/blogicum/internal/provider"
	"github.com/blogicum/internal/queue"

	"github.com/hibiken/asynq"
)

// Consumer 异步任务消费者
type Consumer struct {
	*provider.Container
	purge func(ctx context.Context) (int64, error)
}

// NewConsumer 创建消费者
func NewConsumer(c *provider.Container) *Consumer {
	return &Consumer{
		Container: c,
		purge:     cache.PurgeBlogPages,
	}
}

// Register 注册消费者
func (c *Consumer) Register(mux *asynq.ServeMux) {
	if c == nil || mux == nil {
		logger.Debugw("worker_register_skip_nil", "consumer_nil", c == nil, "mux_nil", mux == nil)
		return
	}
	mux.HandleFunc(queue.TaskBlogCacheRefresh, c.handleBlogCacheRefresh)
}

// handleBlogCacheRefresh 定时文章到达发布时间后清理公开页缓存，使其出现在列表中
func (c *Consumer) handleBlogCacheRefresh(ctx context.Context, task *asynq.Task) error {
	if c == nil || task == nil {
		logger.Debugw("worker_blog_cache_refresh_skip_nil", "consumer_nil", c == nil, "task_nil", task == nil)
		return nil
	}
	payload, err := queue.ParseBlogCacheRefreshPayload(task)
	if err != nil {
		logger.Warnw("worker_blog_cache_refresh_payload_invalid", "error", err)
		return nil
	}
	deleted, err := c.purge(ctx)
	if c.Container != nil {
		c.Metrics.RecordRefreshTask(err)
	}
	if err != nil {
		logger.Warnw("worker_blog_cache_refresh_failed",
			"post_id", payload.PostID,
			"reason", payload.Reason,
			"error", err,
		)
		return err
	}
	logger.Infow("worker_blog_cache_refreshed",
		"post_id", payload.PostID,
		"reason", payload.Reason,
		"deleted", deleted,
	)
	return nil
}
