package main

import (
	"errors"
	"time"

	"github.com/blogicum/internal/config"
	"github.com/blogicum/internal/logger"
	"github.com/blogicum/internal/models"
	"github.com/blogicum/internal/provider"
	"github.com/blogicum/internal/service"

	gormlogger "gorm.io/gorm/logger"
)

type seedPost struct {
	title       string
	text        string
	offset      time.Duration
	author      string
	category    string
	location    string
	isPublished bool
}

func main() {
	// 连接数据库
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	defer logger.Sync()
	stdLog := logger.StdLogger()
	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}, gormlogger.Warn); err != nil {
		stdLog.Fatalf("Failed to connect database: %v", err)
	}

	// 自动迁移
	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("Failed to migrate database: %v", err)
	}

	c := provider.NewContainer(cfg)
	defer func() {
		_ = c.Close()
	}()

	// 作者
	authors := map[string]uint{}
	for _, input := range []service.UserInput{
		{Username: "leo", FirstName: "Лев", LastName: "Толстой", Email: "leo@example.com"},
		{Username: "anna", FirstName: "Анна", LastName: "Ахматова", Email: "anna@example.com"},
	} {
		user, err := c.UserService.GetByUsername(input.Username)
		if errors.Is(err, service.ErrNotFound) {
			user, err = c.UserService.Create(input)
			if err == nil {
				stdLog.Printf("Created user: %s", input.Username)
			}
		}
		if err != nil {
			stdLog.Fatalf("Failed to seed user %s: %v", input.Username, err)
		}
		authors[user.Username] = user.ID
	}

	// 分类，archive 未发布
	categories := map[string]uint{}
	for _, input := range []service.CategoryInput{
		{Title: "Путешествия", Description: "Заметки из поездок.", Slug: "travel"},
		{Title: "Кулинария", Description: "Рецепты и гастрономия.", Slug: "food"},
		{Title: "Архив", Description: "Старые записи.", Slug: "archive", IsPublished: boolPtr(false)},
	} {
		category, err := c.CategoryService.GetBySlug(input.Slug)
		if errors.Is(err, service.ErrNotFound) {
			category, err = c.CategoryService.Create(input)
			if err == nil {
				stdLog.Printf("Created category: %s", input.Slug)
			}
		}
		if err != nil {
			stdLog.Fatalf("Failed to seed category %s: %v", input.Slug, err)
		}
		categories[category.Slug] = category.ID
	}

	// 地点
	locations := map[string]uint{}
	existing, err := c.LocationService.List()
	if err != nil {
		stdLog.Fatalf("Failed to load locations: %v", err)
	}
	for _, location := range existing {
		locations[location.Name] = location.ID
	}
	for _, name := range []string{"Москва", "Санкт-Петербург"} {
		if _, ok := locations[name]; ok {
			continue
		}
		location, err := c.LocationService.Create(service.LocationInput{Name: name})
		if err != nil {
			stdLog.Fatalf("Failed to seed location %s: %v", name, err)
		}
		locations[name] = location.ID
		stdLog.Printf("Created location: %s", name)
	}

	// 文章只在空库时写入
	total, err := c.PostRepo.Query().Count()
	if err != nil {
		stdLog.Fatalf("Failed to count posts: %v", err)
	}
	if total > 0 {
		stdLog.Printf("Posts already exist (%d), skipping", total)
		return
	}

	now := time.Now().UTC()
	posts := []seedPost{
		{title: "Белые ночи", text: "Город не спит всё лето.\n\n**Обязательно** пройдите по набережным.", offset: -72 * time.Hour, author: "anna", category: "travel", location: "Санкт-Петербург", isPublished: true},
		{title: "Борщ по-домашнему", text: "Свёкла, капуста, терпение.", offset: -48 * time.Hour, author: "leo", category: "food", isPublished: true},
		{title: "Прогулка по Арбату", text: "Старые улицы и новые кафе.", offset: -24 * time.Hour, author: "leo", category: "travel", location: "Москва", isPublished: true},
		{title: "Черновик про пельмени", text: "Ещё не готово.", offset: -12 * time.Hour, author: "leo", category: "food", isPublished: false},
		{title: "Запись из архива", text: "Категория скрыта.", offset: -6 * time.Hour, author: "anna", category: "archive", isPublished: true},
		{title: "Отложенная публикация", text: "Появится через сутки.", offset: 24 * time.Hour, author: "anna", category: "travel", location: "Москва", isPublished: true},
	}
	for _, item := range posts {
		input := service.PostInput{
			Title:       item.title,
			Text:        item.text,
			PubDate:     now.Add(item.offset),
			AuthorID:    authors[item.author],
			CategoryID:  categories[item.category],
			IsPublished: boolPtr(item.isPublished),
		}
		if item.location != "" {
			id := locations[item.location]
			input.LocationID = &id
		}
		if _, err := c.PostService.Create(input); err != nil {
			stdLog.Fatalf("Failed to seed post %q: %v", item.title, err)
		}
		stdLog.Printf("Created post: %s", item.title)
	}

	stdLog.Println("Seed completed")
}

func boolPtr(v bool) *bool {
	return &v
}
