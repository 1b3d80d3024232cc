package httpserver

import (
	"github.com/labstack/echo/v4"

	"github.com/omashasarra/hasbani-backend/internal/middleware"
)

type Deps struct {
	Auth    *AuthHTTP
	Catalog *CatalogHTTP
	Admin   *AdminHTTP
	Health  *HealthHTTP

	AuthMW    *middleware.AuthMiddleware
	UploadDir string
}

// Register wires the route table. Paths are kept byte-for-byte compatible
// with the frontend the API serves.
func Register(e *echo.Echo, d *Deps) {
	e.GET("/health", d.Health.Health)
	e.Static("/uploads", d.UploadDir)

	e.POST("/auth/login", d.Auth.Login)

	products := e.Group("/products")
	products.GET("/:lang", d.Catalog.ListProducts) // public catalog listing

	products.GET("/:id/:lang", d.Catalog.GetProduct, d.AuthMW.RequireAuth)
	products.POST("/create", d.Catalog.CreateProduct, d.AuthMW.RequireAuth)
	products.POST("/modify/:id", d.Catalog.ModifyProduct, d.AuthMW.RequireAuth)
	products.DELETE("/delete/:id", d.Catalog.DeleteProduct, d.AuthMW.RequireAuth)

	products.GET("/categories/:lang", d.Catalog.ListCategories, d.AuthMW.RequireAuth)
	products.POST("/categories/create", d.Catalog.CreateCategory, d.AuthMW.RequireAuth)
	products.DELETE("/categories/delete/:id", d.Catalog.DeleteCategory, d.AuthMW.RequireAuth)

	admin := e.Group("/admin", d.AuthMW.RequireAuth, d.AuthMW.RequireSuperadmin)
	admin.GET("", d.Admin.ListAdmins)
	admin.POST("", d.Admin.CreateAdmin)
	admin.DELETE("/:id", d.Admin.DeleteAdmin)
}
