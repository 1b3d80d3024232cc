package repo

import (
	"errors"

	"gorm.io/gorm"
)

// ErrEmailTaken is returned when an admin email is already registered.
var ErrEmailTaken = errors.New("email already exists")

type GormRepo struct {
	DB *gorm.DB
}
