package service

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/omashasarra/hasbani-backend/internal/hash"
	"github.com/omashasarra/hasbani-backend/internal/repo"
	"github.com/omashasarra/hasbani-backend/internal/tokens"
	"github.com/omashasarra/hasbani-backend/internal/transport"
)

type AuthService struct {
	Repo   *repo.GormRepo
	Secret []byte
}

// Login verifies the credentials and issues a stateless session token
// carrying the admin id and role.
func (s *AuthService) Login(ctx context.Context, email, password string) (*transport.LoginResponse, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	password = strings.TrimSpace(password)
	if email == "" || password == "" {
		return nil, ErrValidation
	}

	admin, err := s.Repo.FindAdminByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !hash.CheckPassword(admin.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}

	token, err := tokens.Issue(s.Secret, admin.ID, admin.Role)
	if err != nil {
		return nil, err
	}

	return &transport.LoginResponse{Token: token, Role: admin.Role}, nil
}
