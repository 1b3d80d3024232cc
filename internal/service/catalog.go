package service

import (
	"context"
	"errors"
	"mime/multipart"

	"github.com/omashasarra/hasbani-backend/internal/logging"
	"github.com/omashasarra/hasbani-backend/internal/repo"
	"github.com/omashasarra/hasbani-backend/internal/transport"
	"github.com/omashasarra/hasbani-backend/internal/upload"
)

type CatalogService struct {
	Repo    *repo.GormRepo
	Uploads *upload.Store
}

func (s *CatalogService) ListCategories(ctx context.Context, lang string) ([]transport.CategoryRow, error) {
	return s.Repo.ListCategories(ctx, lang)
}

func (s *CatalogService) CreateCategory(ctx context.Context, translations []transport.CategoryTranslationInput) (uint, error) {
	if len(translations) == 0 {
		return 0, ErrValidation
	}
	return s.Repo.CreateCategory(ctx, translations)
}

// DeleteCategory cascades: product image files are removed from disk first
// (best-effort, failures logged and swallowed), then products, translations
// and the category go in one transaction. A category with zero products
// deletes cleanly.
func (s *CatalogService) DeleteCategory(ctx context.Context, id uint) error {
	images, err := s.Repo.ProductImagesByCategory(ctx, id)
	if err != nil {
		return err
	}
	l := logging.FromContext(ctx)
	for _, image := range images {
		if err := s.Uploads.Remove(image); err != nil {
			l.Warn("image cleanup failed", "image", image, "error", err)
		}
	}
	return s.Repo.DeleteCategoryCascade(ctx, id)
}

func (s *CatalogService) ListProducts(ctx context.Context, lang string) ([]transport.ProductRow, error) {
	return s.Repo.ListProducts(ctx, lang)
}

func (s *CatalogService) GetProduct(ctx context.Context, id uint, lang string) (*transport.ProductDetail, error) {
	return s.Repo.GetProduct(ctx, id, lang)
}

// CreateProduct persists the uploaded file first, then inserts the product
// and its translations in one transaction.
func (s *CatalogService) CreateProduct(ctx context.Context, file *multipart.FileHeader, categoryID *uint, translations []transport.ProductTranslationInput) (uint, error) {
	if file == nil {
		return 0, ErrValidation
	}

	image, err := s.Uploads.Save(file)
	if err != nil {
		if errors.Is(err, upload.ErrUnsafeFilename) {
			return 0, ErrValidation
		}
		return 0, err
	}

	return s.Repo.CreateProduct(ctx, image, categoryID, translations)
}

// UpdateProduct rewrites the row and, when a new image was supplied, removes
// the old file only after the database references the new one.
func (s *CatalogService) UpdateProduct(ctx context.Context, id uint, categoryID *uint, file *multipart.FileHeader, translations []transport.ProductTranslationInput) error {
	oldImage, err := s.Repo.GetProductImage(ctx, id)
	if err != nil {
		return err
	}

	image := oldImage
	if file != nil {
		image, err = s.Uploads.Save(file)
		if err != nil {
			if errors.Is(err, upload.ErrUnsafeFilename) {
				return ErrValidation
			}
			return err
		}
	}

	if err := s.Repo.UpdateProduct(ctx, id, categoryID, image, translations); err != nil {
		return err
	}

	if file != nil && oldImage != "" {
		if err := s.Uploads.Remove(oldImage); err != nil {
			logging.FromContext(ctx).Warn("image cleanup failed", "image", oldImage, "error", err)
		}
	}
	return nil
}

func (s *CatalogService) DeleteProduct(ctx context.Context, id uint) error {
	image, err := s.Repo.GetProductImage(ctx, id)
	if err != nil {
		return err
	}
	if image != "" {
		if err := s.Uploads.Remove(image); err != nil {
			logging.FromContext(ctx).Warn("image cleanup failed", "image", image, "error", err)
		}
	}
	return s.Repo.DeleteProductCascade(ctx, id)
}
