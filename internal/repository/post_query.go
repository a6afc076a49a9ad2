package repository

import (
	"errors"
	"math"
	"time"

	"github.com/blogicum/internal/models"

	"gorm.io/gorm"
)

// Scope 文章查询条件，签名与 gorm 的 Scopes 一致，可任意顺序组合
type Scope func(*gorm.DB) *gorm.DB

// WithActualData 仅保留发布时间不晚于 now 的文章（定时发布的文章在时间到达前不可见）
func WithActualData(now time.Time) Scope {
	at := now.UTC()
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("posts.pub_date <= ?", at)
	}
}

// ScheduledAfter 仅保留发布时间晚于 now 的文章
func ScheduledAfter(now time.Time) Scope {
	at := now.UTC()
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("posts.pub_date > ?", at)
	}
}

// Published 仅保留已发布的文章
func Published() Scope {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("posts.is_published = ?", true)
	}
}

// CategoryPublished 仅保留所属分类已发布的文章，未设置分类的文章同样被排除
func CategoryPublished() Scope {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("posts.category_id IN (SELECT categories.id FROM categories WHERE categories.is_published = ?)", true)
	}
}

// InCategory 仅保留属于指定分类的文章
func InCategory(categoryID uint) Scope {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("posts.category_id = ?", categoryID)
	}
}

// InCategorySlug 仅保留属于指定 slug 分类的文章
func InCategorySlug(slug string) Scope {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("posts.category_id IN (SELECT categories.id FROM categories WHERE categories.slug = ?)", slug)
	}
}

// PostQuery 可链式组合的文章查询
// 值类型且不可变：每次调用返回新值，同一个基础查询可以安全地派生出多个分支。
type PostQuery struct {
	db        *gorm.DB
	scopes    []Scope
	orders    []string
	page      int
	pageSize  int
	relations bool
}

// NewPostQuery 创建不带任何过滤条件的文章查询
func NewPostQuery(db *gorm.DB) PostQuery {
	return PostQuery{db: db}
}

// Where 追加查询条件
func (q PostQuery) Where(scopes ...Scope) PostQuery {
	next := q
	next.scopes = make([]Scope, 0, len(q.scopes)+len(scopes))
	next.scopes = append(next.scopes, q.scopes...)
	for _, scope := range scopes {
		if scope != nil {
			next.scopes = append(next.scopes, scope)
		}
	}
	return next
}

// WithActualData 见 WithActualData
func (q PostQuery) WithActualData(now time.Time) PostQuery {
	return q.Where(WithActualData(now))
}

// Published 见 Published
func (q PostQuery) Published() PostQuery {
	return q.Where(Published())
}

// CategoryPublished 见 CategoryPublished
func (q PostQuery) CategoryPublished() PostQuery {
	return q.Where(CategoryPublished())
}

// InCategory 见 InCategory
func (q PostQuery) InCategory(categoryID uint) PostQuery {
	return q.Where(InCategory(categoryID))
}

// InCategorySlug 见 InCategorySlug
func (q PostQuery) InCategorySlug(slug string) PostQuery {
	return q.Where(InCategorySlug(slug))
}

// OrderByNewest 按发布时间倒序，发布时间相同时按 ID 倒序，保证截断与分页结果稳定
func (q PostQuery) OrderByNewest() PostQuery {
	next := q
	next.orders = []string{"posts.pub_date DESC", "posts.id DESC"}
	return next
}

// Limit 限制返回条数，n <= 0 表示不限制
func (q PostQuery) Limit(n int) PostQuery {
	return q.Page(1, n)
}

// Page 按页截取，页码从 1 开始
func (q PostQuery) Page(page, pageSize int) PostQuery {
	next := q
	next.page = page
	next.pageSize = pageSize
	return next
}

// WithRelations 预加载作者、分类、地点
func (q PostQuery) WithRelations() PostQuery {
	next := q
	next.relations = true
	return next
}

// Find 执行查询
func (q PostQuery) Find() ([]models.Post, error) {
	var posts []models.Post
	query := q.build()
	for _, order := range q.orders {
		query = query.Order(order)
	}
	query = q.paginate(query)
	if err := query.Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

// Get 在当前条件范围内按 ID 查找，不存在时返回 nil
func (q PostQuery) Get(id uint) (*models.Post, error) {
	var post models.Post
	if err := q.build().Where("posts.id = ?", id).Take(&post).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &post, nil
}

// Count 统计满足条件的文章数量（忽略排序与分页）
func (q PostQuery) Count() (int64, error) {
	var total int64
	query := q.db.Model(&models.Post{}).Scopes(q.gormScopes()...)
	if err := query.Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

// EarliestPubDate 当前条件范围内最早的发布时间，无匹配时返回 nil
func (q PostQuery) EarliestPubDate() (*time.Time, error) {
	var posts []models.Post
	err := q.db.Model(&models.Post{}).
		Scopes(q.gormScopes()...).
		Select("posts.id", "posts.pub_date").
		Order("posts.pub_date ASC").
		Limit(1).
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	if len(posts) == 0 {
		return nil, nil
	}
	at := posts[0].PubDate.UTC()
	return &at, nil
}

func (q PostQuery) build() *gorm.DB {
	query := q.db.Model(&models.Post{}).Scopes(q.gormScopes()...)
	if q.relations {
		query = query.Preload("Author").Preload("Category").Preload("Location")
	}
	return query
}

func (q PostQuery) gormScopes() []func(*gorm.DB) *gorm.DB {
	funcs := make([]func(*gorm.DB) *gorm.DB, 0, len(q.scopes))
	for _, scope := range q.scopes {
		funcs = append(funcs, scope)
	}
	return funcs
}

// paginate 应用分页参数，非法页码按第一页处理
func (q PostQuery) paginate(query *gorm.DB) *gorm.DB {
	if q.pageSize <= 0 {
		return query
	}
	page := q.page
	if page < 1 {
		page = 1
	}
	if page > maxPage(q.pageSize) {
		page = maxPage(q.pageSize)
	}
	return query.Limit(q.pageSize).Offset((page - 1) * q.pageSize)
}

// maxPage 保证 (page-1)*pageSize 不溢出 int
func maxPage(pageSize int) int {
	return math.MaxInt32/pageSize + 1
}
