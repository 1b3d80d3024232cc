package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/omashasarra/hasbani-backend/internal/logging"
	"github.com/omashasarra/hasbani-backend/internal/transport"
)

func (h *CatalogHTTP) ListCategories(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "category.list")

	rows, err := h.Svc.ListCategories(ctx, c.Param("lang"))
	if err != nil {
		l.Error("list_categories_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "database error")
	}
	return c.JSON(http.StatusOK, rows)
}

func (h *CatalogHTTP) CreateCategory(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "category.create")

	var req transport.CreateCategoryRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("create_category_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "translations required")
	}
	if err := c.Validate(&req); err != nil {
		l.Warn("create_category_error", "status", 400, "reason", "missing translations")
		return echo.NewHTTPError(http.StatusBadRequest, "translations required")
	}

	id, err := h.Svc.CreateCategory(ctx, req.Translations)
	if err != nil {
		l.Error("create_category_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to add category")
	}

	l.Info("create_category_success", "category_id", id)
	return c.JSON(http.StatusOK, echo.Map{
		"message":    "Category added successfully",
		"categoryId": id,
	})
}

// DeleteCategory cascades over the category's products and their image
// files. Deleting an absent category is still a success, like the original
// route it preserves.
func (h *CatalogHTTP) DeleteCategory(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "category.delete")

	id, err := parseID(c.Param("id"))
	if err != nil {
		l.Warn("delete_category_error", "status", 400, "reason", "id not an integer", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "id must be an integer")
	}

	if err := h.Svc.DeleteCategory(ctx, id); err != nil {
		l.Error("delete_category_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to delete category")
	}

	l.Info("delete_category_success", "category_id", id)
	return c.JSON(http.StatusOK, echo.Map{"message": "Category and its products deleted"})
}
