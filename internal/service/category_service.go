package service

import (
	"strings"

	"github.com/blogicum/internal/constants"
	"github.com/blogicum/internal/models"
	"github.com/blogicum/internal/repository"
)

// CategoryService 分类业务服务
type CategoryService struct {
	repo        repository.CategoryRepository
	invalidator PageInvalidator
}

// NewCategoryService 创建分类服务
func NewCategoryService(repo repository.CategoryRepository, invalidator PageInvalidator) *CategoryService {
	return &CategoryService{repo: repo, invalidator: invalidatorOrNoop(invalidator)}
}

// CategoryInput 创建/更新分类输入
type CategoryInput struct {
	Title       string `validate:"required,max=256"`
	Description string `validate:"required"`
	Slug        string `validate:"required,max=64,slug"`
	IsPublished *bool
}

func (in *CategoryInput) normalize() {
	in.Title = strings.TrimSpace(in.Title)
	in.Description = strings.TrimSpace(in.Description)
	in.Slug = strings.TrimSpace(in.Slug)
}

// List 获取分类列表
func (s *CategoryService) List() ([]models.Category, error) {
	return s.repo.List()
}

// GetBySlug 获取分类（不区分发布状态）
func (s *CategoryService) GetBySlug(slug string) (*models.Category, error) {
	category, err := s.repo.GetBySlug(strings.TrimSpace(slug))
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, ErrNotFound
	}
	return category, nil
}

// Create 创建分类
func (s *CategoryService) Create(input CategoryInput) (*models.Category, error) {
	input.normalize()
	if err := validateInput(input); err != nil {
		return nil, err
	}
	count, err := s.repo.CountBySlug(input.Slug, nil)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrSlugExists
	}

	category := models.Category{
		Title:       input.Title,
		Description: input.Description,
		Slug:        input.Slug,
	}
	category.IsPublished = boolOrDefault(input.IsPublished, true)
	if err := s.repo.Create(&category); err != nil {
		return nil, err
	}
	s.invalidator.Invalidate(constants.RefreshReasonContentChange)
	return &category, nil
}

// Update 更新分类，IsPublished 为空时保持原值
func (s *CategoryService) Update(id uint, input CategoryInput) (*models.Category, error) {
	category, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, ErrNotFound
	}
	input.normalize()
	if err := validateInput(input); err != nil {
		return nil, err
	}
	count, err := s.repo.CountBySlug(input.Slug, &category.ID)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrSlugExists
	}

	category.Title = input.Title
	category.Description = input.Description
	category.Slug = input.Slug
	category.IsPublished = boolOrDefault(input.IsPublished, category.IsPublished)
	if err := s.repo.Update(category); err != nil {
		return nil, err
	}
	s.invalidator.Invalidate(constants.RefreshReasonContentChange)
	return category, nil
}

// Delete 删除分类，其下文章的分类被置空
func (s *CategoryService) Delete(id uint) error {
	category, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if category == nil {
		return ErrNotFound
	}
	if err := s.repo.Delete(id); err != nil {
		return err
	}
	s.invalidator.Invalidate(constants.RefreshReasonContentChange)
	return nil
}
