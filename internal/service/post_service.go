package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/blogicum/internal/constants"
	"github.com/blogicum/internal/models"
	"github.com/blogicum/internal/repository"
)

// PostService 文章业务服务（编辑写入侧）
type PostService struct {
	repo         repository.PostRepository
	userRepo     repository.UserRepository
	categoryRepo repository.CategoryRepository
	locationRepo repository.LocationRepository
	invalidator  PageInvalidator
	now          func() time.Time
}

// NewPostService 创建文章服务
func NewPostService(
	repo repository.PostRepository,
	userRepo repository.UserRepository,
	categoryRepo repository.CategoryRepository,
	locationRepo repository.LocationRepository,
	invalidator PageInvalidator,
) *PostService {
	return &PostService{
		repo:         repo,
		userRepo:     userRepo,
		categoryRepo: categoryRepo,
		locationRepo: locationRepo,
		invalidator:  invalidatorOrNoop(invalidator),
		now:          time.Now,
	}
}

// PostInput 创建/更新文章输入
type PostInput struct {
	Title       string `validate:"required,max=256"`
	Text        string `validate:"required"`
	PubDate     time.Time
	AuthorID    uint
	CategoryID  uint
	LocationID  *uint
	IsPublished *bool
}

// GetByID 获取文章（不做可见性过滤）
func (s *PostService) GetByID(id uint) (*models.Post, error) {
	post, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrNotFound
	}
	return post, nil
}

// Create 创建文章
func (s *PostService) Create(input PostInput) (*models.Post, error) {
	if err := s.checkInput(&input); err != nil {
		return nil, err
	}
	post := models.Post{}
	applyPostInput(&post, input)
	post.IsPublished = boolOrDefault(input.IsPublished, true)
	if err := s.repo.Create(&post); err != nil {
		return nil, err
	}
	s.afterWrite(&post)
	return &post, nil
}

// Update 更新文章，IsPublished 为空时保持原值
func (s *PostService) Update(id uint, input PostInput) (*models.Post, error) {
	post, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrNotFound
	}
	if err := s.checkInput(&input); err != nil {
		return nil, err
	}
	applyPostInput(post, input)
	post.IsPublished = boolOrDefault(input.IsPublished, post.IsPublished)
	if err := s.repo.Update(post); err != nil {
		return nil, err
	}
	s.afterWrite(post)
	return post, nil
}

// Delete 删除文章
func (s *PostService) Delete(id uint) error {
	post, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if post == nil {
		return ErrNotFound
	}
	if err := s.repo.Delete(id); err != nil {
		return err
	}
	s.invalidator.Invalidate(constants.RefreshReasonContentChange)
	return nil
}

func (s *PostService) checkInput(input *PostInput) error {
	input.Title = strings.TrimSpace(input.Title)
	input.Text = strings.TrimSpace(input.Text)
	if err := validateInput(*input); err != nil {
		return err
	}
	if input.PubDate.IsZero() {
		return fmt.Errorf("%w: pub_date:required", ErrInvalidInput)
	}
	if input.AuthorID == 0 {
		return ErrAuthorRequired
	}
	author, err := s.userRepo.GetByID(input.AuthorID)
	if err != nil {
		return err
	}
	if author == nil {
		return ErrAuthorRequired
	}
	if input.CategoryID == 0 {
		return ErrCategoryRequired
	}
	category, err := s.categoryRepo.GetByID(input.CategoryID)
	if err != nil {
		return err
	}
	if category == nil {
		return ErrCategoryRequired
	}
	if input.LocationID != nil {
		location, err := s.locationRepo.GetByID(*input.LocationID)
		if err != nil {
			return err
		}
		if location == nil {
			return ErrLocationNotFound
		}
	}
	return nil
}

func (s *PostService) afterWrite(post *models.Post) {
	s.invalidator.Invalidate(constants.RefreshReasonContentChange)
	if post.PubDate.After(s.now()) {
		s.invalidator.ScheduleRefresh(post.ID, post.PubDate)
	}
}

func applyPostInput(post *models.Post, input PostInput) {
	categoryID := input.CategoryID
	post.Title = input.Title
	post.Text = input.Text
	post.PubDate = input.PubDate
	post.AuthorID = input.AuthorID
	post.CategoryID = &categoryID
	post.LocationID = input.LocationID
	post.Author = models.User{}
	post.Category = nil
	post.Location = nil
}
