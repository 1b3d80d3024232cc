package models

import "time"

// Role is the closed set of administrator roles. Anything else is rejected
// at the request boundary.
type Role string

const (
	RoleAdmin      Role = "admin"
	RoleSuperadmin Role = "superadmin"
)

func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleSuperadmin
}

type Admin struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Email        string    `gorm:"uniqueIndex;not null"     json:"email"`
	PasswordHash string    `gorm:"column:password;not null" json:"-"`
	Name         string    `json:"name,omitempty"`
	Role         Role      `gorm:"not null"                 json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

type Category struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`
}

type CategoryTranslation struct {
	ID         uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	CategoryID uint   `gorm:"index;not null"           json:"category_id"`
	Language   string `gorm:"not null"                 json:"language"`
	Name       string `gorm:"not null"                 json:"name"`
}

type Product struct {
	ID         uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Image      string `json:"image"`
	CategoryID *uint  `gorm:"index"                    json:"category_id"`
}

type ProductTranslation struct {
	ID          uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductID   uint   `gorm:"index;not null"           json:"product_id"`
	Language    string `gorm:"not null"                 json:"language"`
	Name        string `gorm:"not null"                 json:"name"`
	Description string `json:"description"`
}
