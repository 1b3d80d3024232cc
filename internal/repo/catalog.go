package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/omashasarra/hasbani-backend/internal/models"
	"github.com/omashasarra/hasbani-backend/internal/transport"
)

func (r *GormRepo) ListCategories(ctx context.Context, lang string) ([]transport.CategoryRow, error) {
	rows := make([]transport.CategoryRow, 0)
	err := r.DB.WithContext(ctx).
		Table("categories AS c").
		Select("c.id AS id, ct.name AS name").
		Joins("LEFT JOIN category_translations ct ON ct.category_id = c.id AND ct.language = ?", lang).
		Order("c.id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// CreateCategory inserts the category and all its translation rows in one
// transaction so a partial failure cannot orphan the category.
func (r *GormRepo) CreateCategory(ctx context.Context, translations []transport.CategoryTranslationInput) (uint, error) {
	var category models.Category
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&category).Error; err != nil {
			return err
		}
		rows := make([]models.CategoryTranslation, 0, len(translations))
		for _, t := range translations {
			rows = append(rows, models.CategoryTranslation{
				CategoryID: category.ID,
				Language:   t.Language,
				Name:       t.Name,
			})
		}
		return tx.Create(&rows).Error
	})
	if err != nil {
		return 0, err
	}
	return category.ID, nil
}

// ProductImagesByCategory returns the stored image names of every product in
// the category, for file cleanup before the cascade delete.
func (r *GormRepo) ProductImagesByCategory(ctx context.Context, categoryID uint) ([]string, error) {
	var images []string
	err := r.DB.WithContext(ctx).
		Model(&models.Product{}).
		Where("category_id = ? AND image <> ''", categoryID).
		Pluck("image", &images).Error
	if err != nil {
		return nil, err
	}
	return images, nil
}

// DeleteCategoryCascade removes the category's products, every translation
// row on both levels, and the category itself. The store enforces no
// foreign-key cascade, so each child table is cleared explicitly. Succeeds
// for categories with zero products.
func (r *GormRepo) DeleteCategoryCascade(ctx context.Context, categoryID uint) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var productIDs []uint
		if err := tx.Model(&models.Product{}).
			Where("category_id = ?", categoryID).
			Pluck("id", &productIDs).Error; err != nil {
			return err
		}

		if len(productIDs) > 0 {
			if err := tx.Where("product_id IN ?", productIDs).
				Delete(&models.ProductTranslation{}).Error; err != nil {
				return err
			}
			if err := tx.Where("id IN ?", productIDs).
				Delete(&models.Product{}).Error; err != nil {
				return err
			}
		}

		if err := tx.Where("category_id = ?", categoryID).
			Delete(&models.CategoryTranslation{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Category{}, categoryID).Error
	})
}

func (r *GormRepo) ListProducts(ctx context.Context, lang string) ([]transport.ProductRow, error) {
	rows := make([]transport.ProductRow, 0)
	err := r.DB.WithContext(ctx).
		Table("products AS p").
		Select(`p.id AS id, p.image AS image, p.category_id AS category_id,
			en_pt.name AS en_name, en_pt.description AS en_description,
			ar_pt.name AS ar_name, ar_pt.description AS ar_description,
			ct.name AS category`).
		Joins("LEFT JOIN product_translations en_pt ON en_pt.product_id = p.id AND en_pt.language = 'en'").
		Joins("LEFT JOIN product_translations ar_pt ON ar_pt.product_id = p.id AND ar_pt.language = 'ar'").
		Joins("LEFT JOIN categories c ON c.id = p.category_id").
		Joins("LEFT JOIN category_translations ct ON ct.category_id = c.id AND ct.language = ?", lang).
		Order("p.id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// GetProduct resolves a product in one language. The translation join is
// inner: a product without a row in that language reads as not found.
func (r *GormRepo) GetProduct(ctx context.Context, id uint, lang string) (*transport.ProductDetail, error) {
	var row transport.ProductDetail
	res := r.DB.WithContext(ctx).
		Table("products AS p").
		Select(`p.id AS id, p.image AS image, p.category_id AS category_id,
			pt.name AS name, pt.description AS description,
			ct.name AS category`).
		Joins("JOIN product_translations pt ON pt.product_id = p.id AND pt.language = ?", lang).
		Joins("LEFT JOIN categories c ON c.id = p.category_id").
		Joins("LEFT JOIN category_translations ct ON ct.category_id = c.id AND ct.language = ?", lang).
		Where("p.id = ?", id).
		Limit(1).
		Scan(&row)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &row, nil
}

func (r *GormRepo) CreateProduct(ctx context.Context, image string, categoryID *uint, translations []transport.ProductTranslationInput) (uint, error) {
	product := models.Product{Image: image, CategoryID: categoryID}
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&product).Error; err != nil {
			return err
		}
		for _, t := range translations {
			row := models.ProductTranslation{
				ProductID:   product.ID,
				Language:    t.Language,
				Name:        t.Name,
				Description: t.Description,
			}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return product.ID, nil
}

// GetProductImage returns the stored image name for a product, or
// gorm.ErrRecordNotFound if the product does not exist.
func (r *GormRepo) GetProductImage(ctx context.Context, id uint) (string, error) {
	var product models.Product
	if err := r.DB.WithContext(ctx).Select("id", "image").First(&product, id).Error; err != nil {
		return "", err
	}
	return product.Image, nil
}

// UpdateProduct rewrites the product row and updates translation rows by
// language key. A language with no existing row is a zero-row update, not an
// insert; callers must pre-create every language at product creation.
func (r *GormRepo) UpdateProduct(ctx context.Context, id uint, categoryID *uint, image string, translations []transport.ProductTranslationInput) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Product{}).
			Where("id = ?", id).
			Updates(map[string]any{"category_id": categoryID, "image": image}).Error; err != nil {
			return err
		}
		for _, t := range translations {
			if err := tx.Model(&models.ProductTranslation{}).
				Where("product_id = ? AND language = ?", id, t.Language).
				Updates(map[string]any{"name": t.Name, "description": t.Description}).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *GormRepo) DeleteProductCascade(ctx context.Context, id uint) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("product_id = ?", id).
			Delete(&models.ProductTranslation{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Product{}, id).Error
	})
}
