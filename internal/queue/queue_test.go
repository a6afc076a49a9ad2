package queue

import (
	"testing"
	"time"

	"github.com/blogicum/internal/config"
)

func TestBlogCacheRefreshTaskRoundTrip(t *testing.T) {
	task, err := NewBlogCacheRefreshTask(BlogCacheRefreshPayload{PostID: 42, Reason: "scheduled_post"})
	if err != nil {
		t.Fatalf("new task failed: %v", err)
	}
	if task.Type() != TaskBlogCacheRefresh {
		t.Fatalf("unexpected task type: %s", task.Type())
	}
	payload, err := ParseBlogCacheRefreshPayload(task)
	if err != nil {
		t.Fatalf("parse payload failed: %v", err)
	}
	if payload.PostID != 42 || payload.Reason != "scheduled_post" {
		t.Fatalf("unexpected payload: %+v", payload)
	}
}

func TestParseBlogCacheRefreshPayloadNilTask(t *testing.T) {
	if _, err := ParseBlogCacheRefreshPayload(nil); err == nil {
		t.Fatalf("expected error for nil task")
	}
}

func TestBlogCacheRefreshTaskIDStableAcrossTimezones(t *testing.T) {
	at := time.Date(2030, 1, 2, 3, 4, 5, 0, time.UTC)
	shifted := at.In(time.FixedZone("UTC+8", 8*3600))
	if blogCacheRefreshTaskID(7, at) != blogCacheRefreshTaskID(7, shifted) {
		t.Fatalf("task id should not depend on timezone")
	}
	if blogCacheRefreshTaskID(7, at) == blogCacheRefreshTaskID(8, at) {
		t.Fatalf("task id should differ per post")
	}
}

func TestDisabledClientSkipsEnqueue(t *testing.T) {
	client, err := NewClient(&config.QueueConfig{Enabled: false})
	if err != nil {
		t.Fatalf("new client failed: %v", err)
	}
	if client.Enabled() {
		t.Fatalf("client should be disabled")
	}
	if err := client.EnqueueBlogCacheRefresh(BlogCacheRefreshPayload{PostID: 1}, time.Now().Add(time.Hour)); err != nil {
		t.Fatalf("disabled enqueue should be a no-op: %v", err)
	}
	var nilClient *Client
	if err := nilClient.EnqueueBlogCacheRefresh(BlogCacheRefreshPayload{PostID: 1}, time.Now()); err != nil {
		t.Fatalf("nil client enqueue should be a no-op: %v", err)
	}
}

func TestBuildServerConfigDefaults(t *testing.T) {
	opt, cfg := BuildServerConfig(nil)
	if opt.Addr != "127.0.0.1:6379" {
		t.Fatalf("unexpected addr: %s", opt.Addr)
	}
	if cfg.Concurrency != 2 {
		t.Fatalf("unexpected concurrency: %d", cfg.Concurrency)
	}
	if cfg.Queues[DefaultQueue] != 1 {
		t.Fatalf("default queue missing: %+v", cfg.Queues)
	}
}
