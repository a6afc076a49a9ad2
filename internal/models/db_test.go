package models

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"gorm.io/gorm/logger"
)

func TestSQLiteDSN(t *testing.T) {
	cases := map[string]string{
		"./db/blogicum.db":                "./db/blogicum.db?_pragma=foreign_keys(1)",
		"file:x?mode=memory&cache=shared": "file:x?mode=memory&cache=shared&_pragma=foreign_keys(1)",
		"a.db?_pragma=foreign_keys(0)":    "a.db?_pragma=foreign_keys(0)",
		"a.db?_pragma=busy_timeout(5000)": "a.db?_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)",
	}
	for in, want := range cases {
		if got := sqliteDSN(in); got != want {
			t.Fatalf("sqliteDSN(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestForeignKeysOnEveryPooledConnection(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "nested", "blog.db")
	db, err := Open("sqlite", dsn, logger.Silent)
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("get sql db failed: %v", err)
	}
	sqlDB.SetMaxOpenConns(3)
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	ctx := context.Background()
	for i := 0; i < 3; i++ {
		conn, err := sqlDB.Conn(ctx)
		if err != nil {
			t.Fatalf("get conn %d failed: %v", i, err)
		}
		defer conn.Close()
		var enabled int
		if err := conn.QueryRowContext(ctx, "PRAGMA foreign_keys").Scan(&enabled); err != nil {
			t.Fatalf("read pragma on conn %d failed: %v", i, err)
		}
		if enabled != 1 {
			t.Fatalf("foreign keys disabled on conn %d", i)
		}
	}
}

func TestForeignKeyRulesWithoutRepository(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "blog.db")
	db, err := Open("sqlite", dsn, logger.Silent)
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("get sql db failed: %v", err)
	}
	sqlDB.SetMaxOpenConns(2)
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})
	if err := Migrate(db); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}

	author := User{Username: "author"}
	category := Category{Title: "Новости", Description: "d", Slug: "news", PublishFields: PublishFields{IsPublished: true}}
	if err := db.Create(&author).Error; err != nil {
		t.Fatalf("create user failed: %v", err)
	}
	if err := db.Create(&category).Error; err != nil {
		t.Fatalf("create category failed: %v", err)
	}
	post := Post{Title: "t", Text: "x", PubDate: time.Now(), AuthorID: author.ID, CategoryID: &category.ID}
	if err := db.Create(&post).Error; err != nil {
		t.Fatalf("create post failed: %v", err)
	}

	if err := db.Exec("DELETE FROM categories WHERE id = ?", category.ID).Error; err != nil {
		t.Fatalf("delete category failed: %v", err)
	}
	var stored Post
	if err := db.First(&stored, post.ID).Error; err != nil {
		t.Fatalf("post should survive category delete: %v", err)
	}
	if stored.CategoryID != nil {
		t.Fatalf("category should be set null, got %v", *stored.CategoryID)
	}

	if err := db.Exec("DELETE FROM users WHERE id = ?", author.ID).Error; err != nil {
		t.Fatalf("delete user failed: %v", err)
	}
	var count int64
	if err := db.Model(&Post{}).Count(&count).Error; err != nil {
		t.Fatalf("count posts failed: %v", err)
	}
	if count != 0 {
		t.Fatalf("posts should cascade with their author, got %d", count)
	}
}
