package main

import (
	"flag"
	"fmt"
	"os"
	"syscall"

	"github.com/blogicum/internal/app"
	"github.com/blogicum/internal/config"
	"github.com/blogicum/internal/logger"
	"github.com/blogicum/internal/models"

	"github.com/gin-gonic/gin"
	gormlogger "gorm.io/gorm/logger"
)

const (
	ansiReset  = "\033[0m"
	ansiBold   = "\033[1m"
	ansiDim    = "\033[2m"
	ansiGreen  = "\033[32m"
	ansiCyan   = "\033[36m"
	ansiYellow = "\033[33m"
)

func main() {
	// 解析命令行参数
	var mode string
	flag.StringVar(&mode, "mode", app.ModeAll, "启动模式: all (默认), web, worker")
	flag.Parse()
	if !app.ValidMode(mode) {
		fmt.Fprintf(os.Stderr, "unknown mode %q, expected all, web or worker\n", mode)
		os.Exit(2)
	}

	printStartupBanner(mode)

	// 加载配置
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	defer logger.Sync()
	stdLog := logger.StdLogger()

	// 初始化数据库
	dbLogLevel := gormlogger.Warn
	if cfg.Server.Mode != "release" {
		dbLogLevel = gormlogger.Info
	}
	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}, dbLogLevel); err != nil {
		stdLog.Fatalf("数据库初始化失败: %v", err)
	}

	// 自动迁移数据库表
	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("数据库迁移失败: %v", err)
	}

	// 设置 Gin 模式
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	if err := app.Run(app.Options{
		Config:  cfg,
		Logger:  logger.S(),
		Signals: []os.Signal{syscall.SIGINT, syscall.SIGTERM},
		Mode:    mode,
	}); err != nil {
		stdLog.Fatalf("服务运行失败: %v", err)
	}
}

func printStartupBanner(mode string) {
	fmt.Println(ansiCyan + "██████╗ ██╗      ██████╗  ██████╗ ██╗ ██████╗██╗   ██╗███╗   ███╗" + ansiReset)
	fmt.Println(ansiCyan + "██╔══██╗██║     ██╔═══██╗██╔════╝ ██║██╔════╝██║   ██║████╗ ████║" + ansiReset)
	fmt.Println(ansiCyan + "██████╔╝██║     ██║   ██║██║  ███╗██║██║     ██║   ██║██╔████╔██║" + ansiReset)
	fmt.Println(ansiCyan + "██╔══██╗██║     ██║   ██║██║   ██║██║██║     ██║   ██║██║╚██╔╝██║" + ansiReset)
	fmt.Println(ansiCyan + "██████╔╝███████╗╚██████╔╝╚██████╔╝██║╚██████╗╚██████╔╝██║ ╚═╝ ██║" + ansiReset)
	fmt.Println(ansiCyan + "╚═════╝ ╚══════╝ ╚═════╝  ╚═════╝ ╚═╝ ╚═════╝ ╚═════╝ ╚═╝     ╚═╝" + ansiReset)
	fmt.Println(ansiGreen + ansiBold + "Blogicum" + ansiReset + ansiYellow + " mode=" + mode + ansiReset)
	fmt.Println(ansiDim + "--------------------------------------------------------------" + ansiReset)
}
