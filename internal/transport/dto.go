package transport

import "github.com/omashasarra/hasbani-backend/internal/models"

type LoginRequest struct {
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Token string      `json:"token"`
	Role  models.Role `json:"role"`
}

type CategoryTranslationInput struct {
	Language string `json:"language" validate:"required"`
	Name     string `json:"name"     validate:"required"`
}

type CreateCategoryRequest struct {
	Translations []CategoryTranslationInput `json:"translations" validate:"required,min=1,dive"`
}

type ProductTranslationInput struct {
	Language    string `json:"language" validate:"required"`
	Name        string `json:"name"     validate:"required"`
	Description string `json:"description"`
}

// CategoryRow is one row of the localized category listing. Name is nil for
// categories lacking a translation in the requested language.
type CategoryRow struct {
	ID   uint    `json:"id"`
	Name *string `json:"name"`
}

// ProductRow is one row of the public product listing. Both languages are
// joined regardless of the requested one; the language only picks the
// category name.
type ProductRow struct {
	ID            uint    `json:"id"`
	Image         string  `json:"image"`
	CategoryID    *uint   `json:"category_id"`
	EnName        *string `json:"enName"`
	EnDescription *string `json:"enDescription"`
	ArName        *string `json:"arName"`
	ArDescription *string `json:"arDescription"`
	Category      *string `json:"category"`
}

type ProductDetail struct {
	ID          uint    `json:"id"`
	Image       string  `json:"image"`
	CategoryID  *uint   `json:"category_id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Category    *string `json:"category"`
}

type CreateAdminRequest struct {
	Email    string      `json:"email"    validate:"required,email"`
	Password string      `json:"password" validate:"required"`
	Role     models.Role `json:"role"     validate:"required"`
}
