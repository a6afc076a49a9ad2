package app

import (
	"errors"
	"fmt"
	"time"

	"github.com/blogicum/internal/config"
	"github.com/blogicum/internal/provider"
	"github.com/blogicum/internal/router"
	"github.com/blogicum/internal/worker"
)

// BuildRunner 按启动模式组装服务
func BuildRunner(cfg *config.Config, container *provider.Container, mode string) (*Runner, error) {
	if cfg == nil {
		return nil, errors.New("config is nil")
	}
	if container == nil {
		return nil, errors.New("container is nil")
	}
	if !ValidMode(mode) {
		return nil, fmt.Errorf("unknown mode %q", mode)
	}

	var services []Service

	if mode == ModeAll || mode == ModeWeb {
		engine, err := router.SetupRouter(cfg, container)
		if err != nil {
			return nil, err
		}
		services = append(services, NewHTTPService(
			listenAddr(cfg),
			engine,
			seconds(cfg.Server.ReadTimeoutSeconds),
			seconds(cfg.Server.WriteTimeoutSeconds),
		))
	}

	// 队列未启用时 all 模式只启动 HTTP，worker 模式则报错
	if mode == ModeWorker || (mode == ModeAll && cfg.Queue.Enabled) {
		workerService, err := worker.NewService(&cfg.Queue, worker.NewConsumer(container))
		if err != nil {
			return nil, err
		}
		services = append(services, workerService)
	}

	if len(services) == 0 {
		return nil, errors.New("no services initialized (check mode and config)")
	}
	return NewRunner(services...), nil
}

// Run 应用启动入口
func Run(opts Options) error {
	opts = normalizeOptions(opts)
	if opts.Config == nil {
		return errors.New("config is nil")
	}

	container := provider.NewContainer(opts.Config)
	defer func() {
		if err := container.Close(); err != nil {
			opts.Logger.Warnw("app_close_failed", "error", err)
		}
	}()

	runner, err := BuildRunner(opts.Config, container, opts.Mode)
	if err != nil {
		return err
	}

	opts.Logger.Infow("app_start", "addr", listenAddr(opts.Config), "mode", opts.Mode)
	return RunWithOptions(runner, opts)
}

func listenAddr(cfg *config.Config) string {
	return cfg.Server.Host + ":" + cfg.Server.Port
}

func seconds(n int) time.Duration {
	if n <= 0 {
		return 0
	}
	return time.Duration(n) * time.Second
}
