package repository

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/blogicum/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupBlogRepositoryTest(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := models.Open("sqlite", dsn, logger.Silent)
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("get sql db failed: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})
	if err := models.Migrate(db); err != nil {
		t.Fatalf("migrate blog tables failed: %v", err)
	}
	return db
}

func createTestUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()
	user := &models.User{Username: username}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("create user failed: %v", err)
	}
	return user
}

func createTestCategory(t *testing.T, db *gorm.DB, slug string, published bool) *models.Category {
	t.Helper()
	category := &models.Category{
		Title:         "分类 " + slug,
		Description:   "描述 " + slug,
		Slug:          slug,
		PublishFields: models.PublishFields{IsPublished: published},
	}
	if err := db.Create(category).Error; err != nil {
		t.Fatalf("create category failed: %v", err)
	}
	return category
}

func createTestLocation(t *testing.T, db *gorm.DB, name string) *models.Location {
	t.Helper()
	location := &models.Location{Name: name, PublishFields: models.PublishFields{IsPublished: true}}
	if err := db.Create(location).Error; err != nil {
		t.Fatalf("create location failed: %v", err)
	}
	return location
}

type testPostOptions struct {
	title     string
	pubDate   time.Time
	published bool
	author    *models.User
	category  *models.Category
	location  *models.Location
}

func createTestPost(t *testing.T, db *gorm.DB, opts testPostOptions) *models.Post {
	t.Helper()
	post := &models.Post{
		Title:         opts.title,
		Text:          "正文 " + opts.title,
		PubDate:       opts.pubDate,
		AuthorID:      opts.author.ID,
		PublishFields: models.PublishFields{IsPublished: opts.published},
	}
	if opts.category != nil {
		id := opts.category.ID
		post.CategoryID = &id
	}
	if opts.location != nil {
		id := opts.location.ID
		post.LocationID = &id
	}
	if err := NewPostRepository(db).Create(post); err != nil {
		t.Fatalf("create post %q failed: %v", opts.title, err)
	}
	return post
}

func postIDs(posts []models.Post) []uint {
	ids := make([]uint, 0, len(posts))
	for _, post := range posts {
		ids = append(ids, post.ID)
	}
	return ids
}

func sameIDSet(a, b []uint) bool {
	if len(a) != len(b) {
		return false
	}
	seen := make(map[uint]int, len(a))
	for _, id := range a {
		seen[id]++
	}
	for _, id := range b {
		seen[id]--
		if seen[id] < 0 {
			return false
		}
	}
	return true
}
