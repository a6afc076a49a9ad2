package service

import (
	"context"
	"time"

	"github.com/blogicum/internal/cache"
	"github.com/blogicum/internal/constants"
	"github.com/blogicum/internal/logger"
	"github.com/blogicum/internal/queue"
)

// PageInvalidator 内容变更后的公开页缓存处理
// 失败只记录日志，不影响写操作本身。
type PageInvalidator interface {
	Invalidate(reason string)
	ScheduleRefresh(postID uint, at time.Time)
}

// PublicPageInvalidator 基于 Redis 缓存与 asynq 队列的实现
type PublicPageInvalidator struct {
	queue *queue.Client
}

// NewPublicPageInvalidator 创建公开页缓存失效器
func NewPublicPageInvalidator(queueClient *queue.Client) *PublicPageInvalidator {
	return &PublicPageInvalidator{queue: queueClient}
}

// Invalidate 清空公开页缓存
func (p *PublicPageInvalidator) Invalidate(reason string) {
	deleted, err := cache.PurgeBlogPages(context.Background())
	if err != nil {
		logger.Warnw("blog_cache_purge_failed", "reason", reason, "error", err)
		return
	}
	if deleted > 0 {
		logger.Debugw("blog_cache_purged", "reason", reason, "deleted", deleted)
	}
}

// ScheduleRefresh 在定时文章到达发布时间时再次清理缓存
func (p *PublicPageInvalidator) ScheduleRefresh(postID uint, at time.Time) {
	if p == nil || !p.queue.Enabled() {
		return
	}
	payload := queue.BlogCacheRefreshPayload{
		PostID: postID,
		Reason: constants.RefreshReasonScheduledPost,
	}
	if err := p.queue.EnqueueBlogCacheRefresh(payload, at); err != nil {
		logger.Warnw("blog_cache_refresh_enqueue_failed", "post_id", postID, "process_at", at, "error", err)
		return
	}
	logger.Debugw("blog_cache_refresh_scheduled", "post_id", postID, "process_at", at)
}

type noopInvalidator struct{}

func (noopInvalidator) Invalidate(string)               {}
func (noopInvalidator) ScheduleRefresh(uint, time.Time) {}

func invalidatorOrNoop(inv PageInvalidator) PageInvalidator {
	if inv == nil {
		return noopInvalidator{}
	}
	return inv
}
