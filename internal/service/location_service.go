package service

import (
	"strings"

	"github.com/blogicum/internal/constants"
	"github.com/blogicum/internal/models"
	"github.com/blogicum/internal/repository"
)

// LocationService 地点业务服务
type LocationService struct {
	repo        repository.LocationRepository
	invalidator PageInvalidator
}

// NewLocationService 创建地点服务
func NewLocationService(repo repository.LocationRepository, invalidator PageInvalidator) *LocationService {
	return &LocationService{repo: repo, invalidator: invalidatorOrNoop(invalidator)}
}

// LocationInput 创建/更新地点输入
type LocationInput struct {
	Name        string `validate:"required,max=256"`
	IsPublished *bool
}

// List 获取地点列表
func (s *LocationService) List() ([]models.Location, error) {
	return s.repo.List()
}

// Create 创建地点
func (s *LocationService) Create(input LocationInput) (*models.Location, error) {
	input.Name = strings.TrimSpace(input.Name)
	if err := validateInput(input); err != nil {
		return nil, err
	}
	location := models.Location{Name: input.Name}
	location.IsPublished = boolOrDefault(input.IsPublished, true)
	if err := s.repo.Create(&location); err != nil {
		return nil, err
	}
	return &location, nil
}

// Update 更新地点
func (s *LocationService) Update(id uint, input LocationInput) (*models.Location, error) {
	location, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if location == nil {
		return nil, ErrNotFound
	}
	input.Name = strings.TrimSpace(input.Name)
	if err := validateInput(input); err != nil {
		return nil, err
	}
	location.Name = input.Name
	location.IsPublished = boolOrDefault(input.IsPublished, location.IsPublished)
	if err := s.repo.Update(location); err != nil {
		return nil, err
	}
	s.invalidator.Invalidate(constants.RefreshReasonContentChange)
	return location, nil
}

// Delete 删除地点，引用它的文章地点被置空
func (s *LocationService) Delete(id uint) error {
	location, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if location == nil {
		return ErrNotFound
	}
	if err := s.repo.Delete(id); err != nil {
		return err
	}
	s.invalidator.Invalidate(constants.RefreshReasonContentChange)
	return nil
}
