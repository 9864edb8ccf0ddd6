package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CategoryUC  *usecase.CategoryUseCase
	ProductUC   *usecase.ProductUseCase
	ReportUC    *usecase.ReportUseCase
	ServiceName string
	// JWTSecret vacío deja las escrituras abiertas.
	JWTSecret string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(dto.HealthResponse{Status: "ok", Service: deps.ServiceName})
	})

	// Lecturas públicas; escrituras con Bearer Token cuando hay secret.
	write := []fiber.Handler{
		AuthMiddleware(deps.JWTSecret),
		RequireRole(deps.JWTSecret, RoleAdmin, RoleOperador),
	}
	guard := func(h fiber.Handler) []fiber.Handler {
		return append(append([]fiber.Handler{}, write...), h)
	}

	categories := app.Group("/categorias")
	categoryHandler := NewCategoryHandler(deps.CategoryUC, deps.ReportUC)
	categories.Post("/", guard(categoryHandler.Create)...)
	categories.Get("/", categoryHandler.List)
	categories.Get("/nombre", categoryHandler.GetByName)
	categories.Get("/nombre/:nombre", categoryHandler.GetByName)
	categories.Get("/:id", categoryHandler.GetByID)
	categories.Get("/:id/reporte", categoryHandler.Report)
	categories.Put("/:id", guard(categoryHandler.Update)...)
	categories.Patch("/:id/desactivar", guard(categoryHandler.Deactivate)...)
	categories.Patch("/:id/activar", guard(categoryHandler.Activate)...)

	products := app.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/productos/", guard(productHandler.Create)...)
	products.Get("/", productHandler.List)
	products.Get("/nombre", productHandler.GetByName)
	products.Get("/nombre/:nombre", productHandler.GetByName)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", guard(productHandler.Update)...)
	products.Patch("/:id/desactivar", guard(productHandler.Deactivate)...)
	products.Patch("/:id/activar", guard(productHandler.Activate)...)
	products.Patch("/:id/restar_stock", guard(productHandler.DecrementStock)...)
}
