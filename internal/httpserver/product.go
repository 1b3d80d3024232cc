package httpserver

import (
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/omashasarra/hasbani-backend/internal/logging"
	"github.com/omashasarra/hasbani-backend/internal/service"
	"github.com/omashasarra/hasbani-backend/internal/transport"
)

type CatalogHTTP struct {
	Svc *service.CatalogService
}

// ListProducts is the public catalog listing: English and Arabic
// translations are always joined, the :lang parameter only localizes the
// category name.
func (h *CatalogHTTP) ListProducts(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.list")

	rows, err := h.Svc.ListProducts(ctx, c.Param("lang"))
	if err != nil {
		l.Error("list_products_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "database error")
	}
	return c.JSON(http.StatusOK, rows)
}

func (h *CatalogHTTP) GetProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.get")

	id, err := parseID(c.Param("id"))
	if err != nil {
		l.Warn("get_product_error", "status", 400, "reason", "id not an integer", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "id must be an integer")
	}

	product, err := h.Svc.GetProduct(ctx, id, c.Param("lang"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			l.Warn("get_product_error", "status", 404)
			return echo.NewHTTPError(http.StatusNotFound, "product not found")
		}
		l.Error("get_product_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "database error")
	}
	return c.JSON(http.StatusOK, product)
}

func (h *CatalogHTTP) CreateProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.create")

	file, err := c.FormFile("image")
	if err != nil {
		l.Warn("create_product_error", "status", 400, "reason", "image missing", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "image required")
	}

	categoryID, err := parseOptionalID(c.FormValue("category_id"))
	if err != nil {
		l.Warn("create_product_error", "status", 400, "reason", "bad category_id", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "category_id must be an integer")
	}

	translations, err := decodeTranslations(json.RawMessage(c.FormValue("translations")))
	if err != nil {
		l.Warn("create_product_error", "status", 400, "reason", "bad translations", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "translations must be a JSON array")
	}

	id, err := h.Svc.CreateProduct(ctx, file, categoryID, translations)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			l.Warn("create_product_error", "status", 400, "error", err)
			return echo.NewHTTPError(http.StatusBadRequest, "invalid upload")
		}
		l.Error("create_product_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "database error")
	}

	l.Info("create_product_success", "product_id", id)
	return c.JSON(http.StatusOK, echo.Map{
		"message":   "Product added",
		"productId": id,
	})
}

// ModifyProduct accepts either a multipart form (optionally carrying a new
// image) or a plain JSON body, mirroring the optional-upload shim of the
// route it replaces.
func (h *CatalogHTTP) ModifyProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.modify")

	id, err := parseID(c.Param("id"))
	if err != nil {
		l.Warn("modify_product_error", "status", 400, "reason", "id not an integer", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "id must be an integer")
	}

	var (
		file         *multipart.FileHeader
		categoryID   *uint
		translations []transport.ProductTranslationInput
	)

	if strings.HasPrefix(c.Request().Header.Get(echo.HeaderContentType), echo.MIMEMultipartForm) {
		file, err = c.FormFile("image")
		if err != nil {
			file = nil // image is optional on modify
		}
		categoryID, err = parseOptionalID(c.FormValue("category_id"))
		if err != nil {
			l.Warn("modify_product_error", "status", 400, "reason", "bad category_id", "error", err)
			return echo.NewHTTPError(http.StatusBadRequest, "category_id must be an integer")
		}
		translations, err = decodeTranslations(json.RawMessage(c.FormValue("translations")))
		if err != nil {
			l.Warn("modify_product_error", "status", 400, "reason", "bad translations", "error", err)
			return echo.NewHTTPError(http.StatusBadRequest, "translations must be a JSON array")
		}
	} else {
		var req struct {
			CategoryID   *uint           `json:"category_id"`
			Translations json.RawMessage `json:"translations"`
		}
		if err := c.Bind(&req); err != nil {
			l.Warn("modify_product_error", "status", 400, "reason", "invalid body", "error", err)
			return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
		}
		categoryID = req.CategoryID
		translations, err = decodeTranslations(req.Translations)
		if err != nil {
			l.Warn("modify_product_error", "status", 400, "reason", "bad translations", "error", err)
			return echo.NewHTTPError(http.StatusBadRequest, "translations must be a JSON array")
		}
	}

	if err := h.Svc.UpdateProduct(ctx, id, categoryID, file, translations); err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			l.Warn("modify_product_error", "status", 404)
			return echo.NewHTTPError(http.StatusNotFound, "product not found")
		case errors.Is(err, service.ErrValidation):
			l.Warn("modify_product_error", "status", 400, "error", err)
			return echo.NewHTTPError(http.StatusBadRequest, "invalid upload")
		default:
			l.Error("modify_product_error", "status", 500, "error", err)
			return echo.NewHTTPError(http.StatusInternalServerError, "database error")
		}
	}

	l.Info("modify_product_success", "product_id", id)
	return c.JSON(http.StatusOK, echo.Map{"message": "Product updated"})
}

func (h *CatalogHTTP) DeleteProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.delete")

	id, err := parseID(c.Param("id"))
	if err != nil {
		l.Warn("delete_product_error", "status", 400, "reason", "id not an integer", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "id must be an integer")
	}

	if err := h.Svc.DeleteProduct(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			l.Warn("delete_product_error", "status", 404)
			return echo.NewHTTPError(http.StatusNotFound, "product not found")
		}
		l.Error("delete_product_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "database error")
	}

	l.Info("delete_product_success", "product_id", id)
	return c.JSON(http.StatusOK, echo.Map{"message": "Product deleted"})
}

func parseID(s string) (uint, error) {
	v, err := strconv.ParseUint(s, 10, 32)
	return uint(v), err
}

func parseOptionalID(s string) (*uint, error) {
	if s == "" || s == "null" {
		return nil, nil
	}
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return nil, err
	}
	id := uint(v)
	return &id, nil
}

// decodeTranslations normalizes the translations field, which arrives either
// as a JSON array or as a string containing one (multipart forms encode it
// that way), into a typed slice before it reaches business logic.
func decodeTranslations(raw json.RawMessage) ([]transport.ProductTranslationInput, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		raw = json.RawMessage(s)
		if len(raw) == 0 {
			return nil, nil
		}
	}
	var out []transport.ProductTranslationInput
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return out, nil
}
