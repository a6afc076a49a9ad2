package repository

import (
	"testing"
	"time"

	"github.com/blogicum/internal/models"
)

func TestCategoryGetPublishedBySlug(t *testing.T) {
	db := setupBlogRepositoryTest(t)
	repo := NewCategoryRepository(db)
	createTestCategory(t, db, "open", true)
	createTestCategory(t, db, "closed", false)

	open, err := repo.GetPublishedBySlug("open")
	if err != nil {
		t.Fatalf("get published category failed: %v", err)
	}
	if open == nil || open.Slug != "open" {
		t.Fatalf("published category should be found, got %+v", open)
	}

	closed, err := repo.GetPublishedBySlug("closed")
	if err != nil {
		t.Fatalf("get unpublished category failed: %v", err)
	}
	if closed != nil {
		t.Fatalf("unpublished category should not be returned")
	}

	stored, err := repo.GetBySlug("closed")
	if err != nil || stored == nil {
		t.Fatalf("unfiltered lookup should find unpublished category: %v", err)
	}

	missing, err := repo.GetPublishedBySlug("missing")
	if err != nil {
		t.Fatalf("get missing category failed: %v", err)
	}
	if missing != nil {
		t.Fatalf("missing category should be nil")
	}
}

func TestCategoryCountBySlug(t *testing.T) {
	db := setupBlogRepositoryTest(t)
	repo := NewCategoryRepository(db)
	category := createTestCategory(t, db, "dup", true)

	count, err := repo.CountBySlug("dup", nil)
	if err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 1 {
		t.Fatalf("count want 1 got %d", count)
	}
	count, err = repo.CountBySlug("dup", &category.ID)
	if err != nil {
		t.Fatalf("count excluding self failed: %v", err)
	}
	if count != 0 {
		t.Fatalf("count excluding self want 0 got %d", count)
	}
}

func TestCategoryUpdateKeepsCreatedAt(t *testing.T) {
	db := setupBlogRepositoryTest(t)
	repo := NewCategoryRepository(db)
	category := createTestCategory(t, db, "stable", true)
	createdAt := category.CreatedAt

	category.Title = "新标题"
	category.CreatedAt = createdAt.Add(48 * time.Hour)
	if err := repo.Update(category); err != nil {
		t.Fatalf("update failed: %v", err)
	}

	stored, err := repo.GetByID(category.ID)
	if err != nil || stored == nil {
		t.Fatalf("reload failed: %v", err)
	}
	if stored.Title != "新标题" {
		t.Fatalf("title should be updated, got %q", stored.Title)
	}
	if !stored.CreatedAt.Equal(createdAt) {
		t.Fatalf("created_at must be immutable, want %s got %s", createdAt, stored.CreatedAt)
	}
}

func TestCategoryDeleteNullsPostCategory(t *testing.T) {
	db := setupBlogRepositoryTest(t)
	repo := NewCategoryRepository(db)
	posts := NewPostRepository(db)
	author := createTestUser(t, db, "author")
	category := createTestCategory(t, db, "gone", true)
	post := createTestPost(t, db, testPostOptions{title: "orphan", pubDate: time.Now().UTC().Add(-time.Hour), published: true, author: author, category: category})

	if err := repo.Delete(category.ID); err != nil {
		t.Fatalf("delete category failed: %v", err)
	}

	stored, err := posts.GetByID(post.ID)
	if err != nil {
		t.Fatalf("reload post failed: %v", err)
	}
	if stored == nil {
		t.Fatalf("post must survive category deletion")
	}
	if stored.CategoryID != nil {
		t.Fatalf("post category should be nulled, got %d", *stored.CategoryID)
	}
	if gone, _ := repo.GetByID(category.ID); gone != nil {
		t.Fatalf("category should be deleted")
	}
}

func TestLocationDeleteNullsPostLocation(t *testing.T) {
	db := setupBlogRepositoryTest(t)
	repo := NewLocationRepository(db)
	posts := NewPostRepository(db)
	author := createTestUser(t, db, "author")
	category := createTestCategory(t, db, "places", true)
	location := createTestLocation(t, db, "Остров")
	post := createTestPost(t, db, testPostOptions{title: "trip", pubDate: time.Now().UTC().Add(-time.Hour), published: true, author: author, category: category, location: location})

	if err := repo.Delete(location.ID); err != nil {
		t.Fatalf("delete location failed: %v", err)
	}

	stored, err := posts.GetByID(post.ID)
	if err != nil || stored == nil {
		t.Fatalf("post must survive location deletion: %v", err)
	}
	if stored.LocationID != nil || stored.Location != nil {
		t.Fatalf("post location should be nulled")
	}
	if stored.CategoryID == nil || *stored.CategoryID != category.ID {
		t.Fatalf("post category must be untouched")
	}
}

func TestUserDeleteCascadesPosts(t *testing.T) {
	db := setupBlogRepositoryTest(t)
	users := NewUserRepository(db)
	posts := NewPostRepository(db)
	author := createTestUser(t, db, "leaving")
	other := createTestUser(t, db, "staying")
	category := createTestCategory(t, db, "misc", true)
	now := time.Now().UTC()
	gone := createTestPost(t, db, testPostOptions{title: "gone", pubDate: now, published: true, author: author, category: category})
	kept := createTestPost(t, db, testPostOptions{title: "kept", pubDate: now, published: true, author: other, category: category})

	if err := users.Delete(author.ID); err != nil {
		t.Fatalf("delete user failed: %v", err)
	}

	if post, err := posts.GetByID(gone.ID); err != nil || post != nil {
		t.Fatalf("author's post should be deleted, got %+v err=%v", post, err)
	}
	if post, err := posts.GetByID(kept.ID); err != nil || post == nil {
		t.Fatalf("other author's post should remain: %v", err)
	}
	var remaining int64
	if err := db.Model(&models.User{}).Count(&remaining).Error; err != nil {
		t.Fatalf("count users failed: %v", err)
	}
	if remaining != 1 {
		t.Fatalf("users want 1 got %d", remaining)
	}
}

func TestUserGetByUsername(t *testing.T) {
	db := setupBlogRepositoryTest(t)
	repo := NewUserRepository(db)
	createTestUser(t, db, "alice")

	user, err := repo.GetByUsername(" alice ")
	if err != nil || user == nil {
		t.Fatalf("user should be found by trimmed username: %v", err)
	}
	missing, err := repo.GetByUsername("bob")
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	if missing != nil {
		t.Fatalf("unknown username should return nil")
	}
}
