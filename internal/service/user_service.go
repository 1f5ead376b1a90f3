package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/Vajbratya/automnator/internal/models"
	"github.com/Vajbratya/automnator/internal/store"
)

type UserService interface {
	SignIn(ctx context.Context, email string) (*models.User, error)
	GetUserInfo(ctx context.Context, userID string) (*models.User, error)
}

type userService struct {
	s store.Store
}

func NewUserService(s store.Store) UserService {
	return &userService{s: s}
}

// SignIn resolves the user for an email, creating one on first sign-in.
func (u *userService) SignIn(ctx context.Context, email string) (*models.User, error) {
	email = strings.TrimSpace(email)
	if email == "" || !strings.Contains(email, "@") {
		err := errors.New("a valid email is required")
		slog.Info(err.Error())
		return nil, err
	}
	return u.s.GetOrCreateUserByEmail(ctx, email)
}

func (u *userService) GetUserInfo(ctx context.Context, userID string) (*models.User, error) {
	if userID == "" {
		err := errors.New("user is not valid")
		slog.Info(err.Error())
		return nil, err
	}
	return u.s.GetUserByID(ctx, userID)
}
