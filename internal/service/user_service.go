package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"venue-booking/internal/models"
	"venue-booking/internal/repository"
)

type UserService interface {
	RegisterUser(ctx context.Context, user *models.User) error
	GetUser(ctx context.Context, id string) (*models.User, error)
}

type userService struct {
	users repository.UserRepository
}

func NewUserService(users repository.UserRepository) UserService {
	return &userService{users: users}
}

func (s *userService) RegisterUser(ctx context.Context, user *models.User) error {
	if user.Role == "" {
		user.Role = "user"
	}
	user.ID = uuid.NewString()
	return s.users.Create(ctx, user)
}

func (s *userService) GetUser(ctx context.Context, id string) (*models.User, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrInvalidUserID
	}
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}
