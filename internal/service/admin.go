package service

import (
	"context"
	"strings"

	"github.com/omashasarra/hasbani-backend/internal/hash"
	"github.com/omashasarra/hasbani-backend/internal/models"
	"github.com/omashasarra/hasbani-backend/internal/repo"
)

type AdminService struct {
	Repo *repo.GormRepo
}

func (s *AdminService) ListAdmins(ctx context.Context) ([]models.Admin, error) {
	return s.Repo.ListAdmins(ctx)
}

func (s *AdminService) CreateAdmin(ctx context.Context, email, password string, role models.Role) (uint, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" || !role.Valid() {
		return 0, ErrValidation
	}

	pwHash, err := hash.HashPassword(password)
	if err != nil {
		return 0, err
	}

	admin := models.Admin{
		Email:        email,
		PasswordHash: pwHash,
		Role:         role,
	}
	if err := s.Repo.CreateAdmin(ctx, &admin); err != nil {
		return 0, err
	}
	return admin.ID, nil
}

func (s *AdminService) DeleteAdmin(ctx context.Context, id uint) error {
	return s.Repo.DeleteAdmin(ctx, id)
}
