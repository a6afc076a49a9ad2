package service

import (
	"strings"

	"github.com/blogicum/internal/constants"
	"github.com/blogicum/internal/models"
	"github.com/blogicum/internal/repository"
)

// UserService 作者业务服务
type UserService struct {
	repo        repository.UserRepository
	invalidator PageInvalidator
}

// NewUserService 创建作者服务
func NewUserService(repo repository.UserRepository, invalidator PageInvalidator) *UserService {
	return &UserService{repo: repo, invalidator: invalidatorOrNoop(invalidator)}
}

// UserInput 创建/更新作者输入
type UserInput struct {
	Username  string `validate:"required,max=150"`
	FirstName string `validate:"max=150"`
	LastName  string `validate:"max=150"`
	Email     string `validate:"omitempty,email,max=254"`
}

func (in *UserInput) normalize() {
	in.Username = strings.TrimSpace(in.Username)
	in.FirstName = strings.TrimSpace(in.FirstName)
	in.LastName = strings.TrimSpace(in.LastName)
	in.Email = strings.TrimSpace(in.Email)
}

// GetByUsername 按用户名获取作者
func (s *UserService) GetByUsername(username string) (*models.User, error) {
	user, err := s.repo.GetByUsername(username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrNotFound
	}
	return user, nil
}

// Create 创建作者
func (s *UserService) Create(input UserInput) (*models.User, error) {
	input.normalize()
	if err := validateInput(input); err != nil {
		return nil, err
	}
	count, err := s.repo.CountByUsername(input.Username, nil)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrUsernameExists
	}
	user := models.User{
		Username:  input.Username,
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     input.Email,
	}
	if err := s.repo.Create(&user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Update 更新作者资料
func (s *UserService) Update(id uint, input UserInput) (*models.User, error) {
	user, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrNotFound
	}
	input.normalize()
	if err := validateInput(input); err != nil {
		return nil, err
	}
	count, err := s.repo.CountByUsername(input.Username, &user.ID)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrUsernameExists
	}
	user.Username = input.Username
	user.FirstName = input.FirstName
	user.LastName = input.LastName
	user.Email = input.Email
	if err := s.repo.Update(user); err != nil {
		return nil, err
	}
	s.invalidator.Invalidate(constants.RefreshReasonContentChange)
	return user, nil
}

// Delete 删除作者，其全部文章随之删除
func (s *UserService) Delete(id uint) error {
	user, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrNotFound
	}
	if err := s.repo.Delete(id); err != nil {
		return err
	}
	s.invalidator.Invalidate(constants.RefreshReasonContentChange)
	return nil
}
