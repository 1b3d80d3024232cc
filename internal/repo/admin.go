package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/omashasarra/hasbani-backend/internal/models"
)

func (r *GormRepo) ListAdmins(ctx context.Context) ([]models.Admin, error) {
	admins := make([]models.Admin, 0)
	if err := r.DB.WithContext(ctx).Order("id ASC").Find(&admins).Error; err != nil {
		return nil, err
	}
	return admins, nil
}

func (r *GormRepo) FindAdminByEmail(ctx context.Context, email string) (*models.Admin, error) {
	var admin models.Admin
	if err := r.DB.WithContext(ctx).Where("email = ?", email).First(&admin).Error; err != nil {
		return nil, err
	}
	return &admin, nil
}

// CreateAdmin inserts the admin unless the email is already registered. The
// existence check runs inside the insert transaction to close the original
// SELECT-then-INSERT race.
func (r *GormRepo) CreateAdmin(ctx context.Context, admin *models.Admin) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.Admin
		err := tx.Select("id").Where("email = ?", admin.Email).First(&existing).Error
		if err == nil {
			return ErrEmailTaken
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		return tx.Create(admin).Error
	})
}

func (r *GormRepo) DeleteAdmin(ctx context.Context, id uint) error {
	res := r.DB.WithContext(ctx).Delete(&models.Admin{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
