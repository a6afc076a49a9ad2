package queue

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/blogicum/internal/constants"

	"github.com/hibiken/asynq"
)

const (
	// TaskBlogCacheRefresh 公开页缓存刷新任务
	TaskBlogCacheRefresh = constants.TaskBlogCacheRefresh
)

// BlogCacheRefreshPayload 缓存刷新任务载荷
type BlogCacheRefreshPayload struct {
	PostID uint   `json:"post_id"`
	Reason string `json:"reason"`
}

// NewBlogCacheRefreshTask 创建缓存刷新任务
func NewBlogCacheRefreshTask(payload BlogCacheRefreshPayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskBlogCacheRefresh, body), nil
}

// ParseBlogCacheRefreshPayload 解析缓存刷新任务载荷
func ParseBlogCacheRefreshPayload(task *asynq.Task) (BlogCacheRefreshPayload, error) {
	var payload BlogCacheRefreshPayload
	if task == nil {
		return payload, fmt.Errorf("nil task")
	}
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return payload, fmt.Errorf("decode %s payload: %w", task.Type(), err)
	}
	return payload, nil
}

// blogCacheRefreshTaskID 同一篇文章同一发布时间只保留一个待执行任务
func blogCacheRefreshTaskID(postID uint, at time.Time) string {
	return fmt.Sprintf("%s:%d:%d", TaskBlogCacheRefresh, postID, at.UTC().Unix())
}
