package repository

import (
	"errors"
	"time"

	"github.com/blogicum/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PostRepository 文章数据访问接口
type PostRepository interface {
	Query() PostQuery
	Published(now time.Time) PostQuery
	NextScheduled(now time.Time) (*time.Time, error)
	GetByID(id uint) (*models.Post, error)
	Create(post *models.Post) error
	Update(post *models.Post) error
	Delete(id uint) error
}

// GormPostRepository GORM 实现
type GormPostRepository struct {
	db *gorm.DB
}

// NewPostRepository 创建文章仓库
func NewPostRepository(db *gorm.DB) *GormPostRepository {
	return &GormPostRepository{db: db}
}

// Query 返回未经过滤的文章查询，调用方需显式组合可见性条件
func (r *GormPostRepository) Query() PostQuery {
	return NewPostQuery(r.db)
}

// Published 公开文章：发布时间已到、已发布、分类已发布，按发布时间倒序
func (r *GormPostRepository) Published(now time.Time) PostQuery {
	return r.Query().
		WithActualData(now).
		Published().
		CategoryPublished().
		OrderByNewest().
		WithRelations()
}

// NextScheduled 已发布但发布时间尚未到达的文章中最早的发布时间，没有时返回 nil
func (r *GormPostRepository) NextScheduled(now time.Time) (*time.Time, error) {
	return r.Query().
		Where(ScheduledAfter(now)).
		Published().
		EarliestPubDate()
}

// GetByID 根据 ID 获取文章（不做可见性过滤）
func (r *GormPostRepository) GetByID(id uint) (*models.Post, error) {
	var post models.Post
	err := r.db.Preload("Author").Preload("Category").Preload("Location").First(&post, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &post, nil
}

// Create 创建文章
func (r *GormPostRepository) Create(post *models.Post) error {
	return r.db.Omit(clause.Associations).Create(post).Error
}

// Update 更新文章
func (r *GormPostRepository) Update(post *models.Post) error {
	return r.db.Omit(clause.Associations).Save(post).Error
}

// Delete 删除文章
func (r *GormPostRepository) Delete(id uint) error {
	return r.db.Delete(&models.Post{}, id).Error
}
