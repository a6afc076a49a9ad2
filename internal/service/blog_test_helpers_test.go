package service

import (
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/blogicum/internal/models"
	"github.com/blogicum/internal/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var blogTestNow = time.Date(2024, 5, 20, 12, 0, 0, 0, time.UTC)

type recordingInvalidator struct {
	mu          sync.Mutex
	invalidated []string
	scheduled   map[uint]time.Time
}

func newRecordingInvalidator() *recordingInvalidator {
	return &recordingInvalidator{scheduled: make(map[uint]time.Time)}
}

func (r *recordingInvalidator) Invalidate(reason string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.invalidated = append(r.invalidated, reason)
}

func (r *recordingInvalidator) ScheduleRefresh(postID uint, at time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.scheduled[postID] = at
}

func (r *recordingInvalidator) invalidations() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.invalidated)
}

type blogServiceFixture struct {
	db          *gorm.DB
	blog        *BlogService
	categories  *CategoryService
	locations   *LocationService
	posts       *PostService
	users       *UserService
	invalidator *recordingInvalidator
}

func setupBlogServiceTest(t *testing.T) *blogServiceFixture {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:svc_%s?mode=memory&cache=shared", name)
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

	postRepo := repository.NewPostRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	locationRepo := repository.NewLocationRepository(db)
	userRepo := repository.NewUserRepository(db)
	invalidator := newRecordingInvalidator()

	blog := NewBlogService(postRepo, categoryRepo, BlogOptions{})
	blog.SetClock(func() time.Time { return blogTestNow })
	posts := NewPostService(postRepo, userRepo, categoryRepo, locationRepo, invalidator)
	posts.now = func() time.Time { return blogTestNow }

	return &blogServiceFixture{
		db:          db,
		blog:        blog,
		categories:  NewCategoryService(categoryRepo, invalidator),
		locations:   NewLocationService(locationRepo, invalidator),
		posts:       posts,
		users:       NewUserService(userRepo, invalidator),
		invalidator: invalidator,
	}
}

func boolPtr(v bool) *bool {
	return &v
}

func (f *blogServiceFixture) mustUser(t *testing.T, username string) *models.User {
	t.Helper()
	user, err := f.users.Create(UserInput{Username: username})
	if err != nil {
		t.Fatalf("create user failed: %v", err)
	}
	return user
}

func (f *blogServiceFixture) mustCategory(t *testing.T, slug string, published bool) *models.Category {
	t.Helper()
	category, err := f.categories.Create(CategoryInput{
		Title:       "分类 " + slug,
		Description: "描述 " + slug,
		Slug:        slug,
		IsPublished: boolPtr(published),
	})
	if err != nil {
		t.Fatalf("create category failed: %v", err)
	}
	return category
}

func (f *blogServiceFixture) mustPost(t *testing.T, title string, author *models.User, category *models.Category, pubDate time.Time, published bool) *models.Post {
	t.Helper()
	post, err := f.posts.Create(PostInput{
		Title:       title,
		Text:        "正文 " + title,
		PubDate:     pubDate,
		AuthorID:    author.ID,
		CategoryID:  category.ID,
		IsPublished: boolPtr(published),
	})
	if err != nil {
		t.Fatalf("create post %q failed: %v", title, err)
	}
	return post
}

func titles(posts []models.Post) []string {
	out := make([]string, 0, len(posts))
	for _, post := range posts {
		out = append(out, post.Title)
	}
	return out
}
