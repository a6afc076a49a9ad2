package service

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"
)

func TestIndexReturnsAtMostFiveNewestPosts(t *testing.T) {
	f := setupBlogServiceTest(t)
	author := f.mustUser(t, "author")
	news := f.mustCategory(t, "news", true)
	for i := 1; i <= 7; i++ {
		f.mustPost(t, string(rune('a'+i-1)), author, news, blogTestNow.Add(-time.Duration(i)*time.Hour), true)
	}

	posts, err := f.blog.Index(context.Background())
	if err != nil {
		t.Fatalf("index failed: %v", err)
	}
	if len(posts) != 5 {
		t.Fatalf("expected 5 posts, got %d", len(posts))
	}
	want := []string{"a", "b", "c", "d", "e"}
	if got := titles(posts); !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected index order: %v", got)
	}
	for i := 1; i < len(posts); i++ {
		if posts[i-1].PubDate.Before(posts[i].PubDate) {
			t.Fatalf("index not sorted by pub_date desc at %d", i)
		}
	}
	if posts[0].Author.Username != "author" || posts[0].Category == nil || posts[0].Category.Slug != "news" {
		t.Fatalf("relations not loaded: %+v", posts[0])
	}
}

func TestIndexRespectsConfiguredLimit(t *testing.T) {
	f := setupBlogServiceTest(t)
	author := f.mustUser(t, "author")
	news := f.mustCategory(t, "news", true)
	for i := 1; i <= 4; i++ {
		f.mustPost(t, string(rune('a'+i-1)), author, news, blogTestNow.Add(-time.Duration(i)*time.Hour), true)
	}
	f.blog.indexLimit = 2

	posts, err := f.blog.Index(context.Background())
	if err != nil {
		t.Fatalf("index failed: %v", err)
	}
	if len(posts) != 2 {
		t.Fatalf("expected 2 posts, got %d", len(posts))
	}
}

func TestIndexSkipsInvisiblePosts(t *testing.T) {
	f := setupBlogServiceTest(t)
	author := f.mustUser(t, "author")
	news := f.mustCategory(t, "news", true)
	hidden := f.mustCategory(t, "hidden", false)

	f.mustPost(t, "visible", author, news, blogTestNow.Add(-time.Hour), true)
	f.mustPost(t, "draft", author, news, blogTestNow.Add(-time.Hour), false)
	f.mustPost(t, "scheduled", author, news, blogTestNow.Add(time.Hour), true)
	f.mustPost(t, "hidden category", author, hidden, blogTestNow.Add(-time.Hour), true)

	posts, err := f.blog.Index(context.Background())
	if err != nil {
		t.Fatalf("index failed: %v", err)
	}
	if got := titles(posts); !reflect.DeepEqual(got, []string{"visible"}) {
		t.Fatalf("unexpected index posts: %v", got)
	}
}

func TestPostDetailNotFoundCases(t *testing.T) {
	f := setupBlogServiceTest(t)
	author := f.mustUser(t, "author")
	news := f.mustCategory(t, "news", true)
	hidden := f.mustCategory(t, "hidden", false)

	visible := f.mustPost(t, "visible", author, news, blogTestNow.Add(-time.Hour), true)
	draft := f.mustPost(t, "draft", author, news, blogTestNow.Add(-time.Hour), false)
	scheduled := f.mustPost(t, "scheduled", author, news, blogTestNow.Add(time.Hour), true)
	inHidden := f.mustPost(t, "hidden category", author, hidden, blogTestNow.Add(-time.Hour), true)

	post, err := f.blog.PostDetail(context.Background(), visible.ID)
	if err != nil {
		t.Fatalf("detail failed: %v", err)
	}
	if post.ID != visible.ID || post.Author.ID != author.ID {
		t.Fatalf("unexpected post: %+v", post)
	}

	cases := []struct {
		name string
		id   uint
	}{
		{name: "unpublished", id: draft.ID},
		{name: "future", id: scheduled.ID},
		{name: "unpublished category", id: inHidden.ID},
		{name: "missing", id: 9999},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			post, err := f.blog.PostDetail(context.Background(), tc.id)
			if !errors.Is(err, ErrNotFound) {
				t.Fatalf("expected ErrNotFound, got post=%v err=%v", post, err)
			}
		})
	}
}

func TestPostDetailBecomesVisibleWhenPubDateArrives(t *testing.T) {
	f := setupBlogServiceTest(t)
	author := f.mustUser(t, "author")
	news := f.mustCategory(t, "news", true)
	scheduled := f.mustPost(t, "scheduled", author, news, blogTestNow.Add(time.Hour), true)

	if _, err := f.blog.PostDetail(context.Background(), scheduled.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected scheduled post hidden, got %v", err)
	}
	f.blog.SetClock(func() time.Time { return blogTestNow.Add(2 * time.Hour) })
	if _, err := f.blog.PostDetail(context.Background(), scheduled.ID); err != nil {
		t.Fatalf("expected scheduled post visible later, got %v", err)
	}
}

func TestCategoryPostsReturnsQualifyingPosts(t *testing.T) {
	f := setupBlogServiceTest(t)
	author := f.mustUser(t, "author")
	travel := f.mustCategory(t, "travel", true)
	other := f.mustCategory(t, "other", true)

	f.mustPost(t, "older", author, travel, blogTestNow.Add(-48*time.Hour), true)
	f.mustPost(t, "newer", author, travel, blogTestNow.Add(-time.Hour), true)
	f.mustPost(t, "future", author, travel, blogTestNow.Add(24*time.Hour), true)
	f.mustPost(t, "elsewhere", author, other, blogTestNow.Add(-time.Hour), true)

	page, err := f.blog.CategoryPosts(context.Background(), "travel")
	if err != nil {
		t.Fatalf("category posts failed: %v", err)
	}
	if page.Category.ID != travel.ID {
		t.Fatalf("unexpected category: %+v", page.Category)
	}
	if got := titles(page.Posts); !reflect.DeepEqual(got, []string{"newer", "older"}) {
		t.Fatalf("unexpected category posts: %v", got)
	}
}

func TestCategoryPostsExcludesUnpublishedPosts(t *testing.T) {
	f := setupBlogServiceTest(t)
	author := f.mustUser(t, "author")
	travel := f.mustCategory(t, "travel", true)
	f.mustPost(t, "public", author, travel, blogTestNow.Add(-time.Hour), true)
	f.mustPost(t, "draft", author, travel, blogTestNow.Add(-time.Hour), false)

	page, err := f.blog.CategoryPosts(context.Background(), "travel")
	if err != nil {
		t.Fatalf("category posts failed: %v", err)
	}
	if got := titles(page.Posts); !reflect.DeepEqual(got, []string{"public"}) {
		t.Fatalf("unexpected category posts: %v", got)
	}
}

func TestCategoryPostsNotFound(t *testing.T) {
	f := setupBlogServiceTest(t)
	author := f.mustUser(t, "author")
	hidden := f.mustCategory(t, "hidden", false)
	f.mustPost(t, "inside", author, hidden, blogTestNow.Add(-time.Hour), true)

	for _, slug := range []string{"hidden", "missing"} {
		page, err := f.blog.CategoryPosts(context.Background(), slug)
		if !errors.Is(err, ErrNotFound) {
			t.Fatalf("slug %s: expected ErrNotFound, got %v", slug, err)
		}
		if page != nil {
			t.Fatalf("slug %s: expected no post list, got %+v", slug, page)
		}
	}
}

func TestBlogReadsAreIdempotent(t *testing.T) {
	f := setupBlogServiceTest(t)
	author := f.mustUser(t, "author")
	news := f.mustCategory(t, "news", true)
	post := f.mustPost(t, "first", author, news, blogTestNow.Add(-2*time.Hour), true)
	f.mustPost(t, "second", author, news, blogTestNow.Add(-time.Hour), true)
	ctx := context.Background()

	first, err := f.blog.Index(ctx)
	if err != nil {
		t.Fatalf("index failed: %v", err)
	}
	second, err := f.blog.Index(ctx)
	if err != nil {
		t.Fatalf("index failed: %v", err)
	}
	if !reflect.DeepEqual(titles(first), titles(second)) {
		t.Fatalf("index not idempotent: %v vs %v", titles(first), titles(second))
	}

	d1, err := f.blog.PostDetail(ctx, post.ID)
	if err != nil {
		t.Fatalf("detail failed: %v", err)
	}
	d2, err := f.blog.PostDetail(ctx, post.ID)
	if err != nil {
		t.Fatalf("detail failed: %v", err)
	}
	if d1.ID != d2.ID || d1.Title != d2.Title || !d1.PubDate.Equal(d2.PubDate) {
		t.Fatalf("detail not idempotent: %+v vs %+v", d1, d2)
	}

	c1, err := f.blog.CategoryPosts(ctx, "news")
	if err != nil {
		t.Fatalf("category failed: %v", err)
	}
	c2, err := f.blog.CategoryPosts(ctx, "news")
	if err != nil {
		t.Fatalf("category failed: %v", err)
	}
	if !reflect.DeepEqual(titles(c1.Posts), titles(c2.Posts)) {
		t.Fatalf("category not idempotent")
	}
}

func TestListPublishedPaginates(t *testing.T) {
	f := setupBlogServiceTest(t)
	author := f.mustUser(t, "author")
	news := f.mustCategory(t, "news", true)
	for i := 1; i <= 5; i++ {
		f.mustPost(t, string(rune('a'+i-1)), author, news, blogTestNow.Add(-time.Duration(i)*time.Hour), true)
	}
	f.mustPost(t, "draft", author, news, blogTestNow.Add(-time.Hour), false)

	posts, total, err := f.blog.ListPublished(context.Background(), 2, 2)
	if err != nil {
		t.Fatalf("list published failed: %v", err)
	}
	if total != 5 {
		t.Fatalf("expected total 5, got %d", total)
	}
	if got := titles(posts); !reflect.DeepEqual(got, []string{"c", "d"}) {
		t.Fatalf("unexpected page: %v", got)
	}

	posts, _, err = f.blog.ListPublished(context.Background(), 0, 0)
	if err != nil {
		t.Fatalf("list published failed: %v", err)
	}
	if len(posts) != 5 {
		t.Fatalf("expected default page size to include all 5, got %d", len(posts))
	}
}

func TestNormalizePage(t *testing.T) {
	cases := []struct {
		page, size         int
		wantPage, wantSize int
	}{
		{0, 0, 1, 10},
		{-3, 5, 1, 5},
		{2, 500, 2, 50},
		{int(^uint(0) >> 1), 10, 10000, 10},
	}
	for _, tc := range cases {
		page, size := normalizePage(tc.page, tc.size)
		if page != tc.wantPage || size != tc.wantSize {
			t.Fatalf("normalizePage(%d,%d) = %d,%d", tc.page, tc.size, page, size)
		}
	}
}
