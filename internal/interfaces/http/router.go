package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/hamster-api/internal/application/auth"
	"github.com/jhoicas/hamster-api/internal/application/history"
	"github.com/jhoicas/hamster-api/internal/application/meta"
	"github.com/jhoicas/hamster-api/internal/application/stock"
	"github.com/jhoicas/hamster-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ItemUC      *usecase.ItemUseCase
	StockUC     *stock.UseCase
	HistoryUC   *history.UseCase
	MetaUC      *meta.UseCase
	CategoryUC  *usecase.CategoryUseCase
	GroupUC     *usecase.GroupUseCase
	TagUC       *usecase.TagUseCase
	UnitUC      *usecase.UnitUseCase
	LocationUC  *usecase.LocationUseCase
	NutrimentUC *usecase.NutrimentTypeUseCase
	UserUC      *usecase.UserUseCase
	AuthUC      *auth.UseCase
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Items
	items := protected.Group("/items")
	itemHandler := NewItemHandler(deps.ItemUC)
	items.Get("/", itemHandler.List)
	items.Post("/", itemHandler.Create)
	items.Get("/:slug", itemHandler.GetBySlug)
	items.Put("/:id", itemHandler.Update)
	items.Delete("/:id", itemHandler.Delete)

	// Stock anidado bajo items + rutas planas por entrada
	stockHandler := NewStockHandler(deps.StockUC)
	items.Get("/:id/stock", stockHandler.ListByItem)
	items.Post("/:id/stock", stockHandler.Create)
	stockGroup := protected.Group("/stock")
	stockGroup.Put("/:id", stockHandler.Update)
	stockGroup.Delete("/:id", stockHandler.Delete)

	// Historial (solo lectura)
	historyHandler := NewHistoryHandler(deps.HistoryUC)
	items.Get("/:id/history", historyHandler.ByItem)
	stockGroup.Get("/:id/history", historyHandler.ByEntry)

	// Meta / dashboard
	metaHandler := NewMetaHandler(deps.MetaUC)
	protected.Get("/meta", metaHandler.Fetch)

	// Catálogos
	categories := protected.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Get("/", categoryHandler.List)
	categories.Post("/", categoryHandler.Create)
	categories.Put("/:id", categoryHandler.Update)
	categories.Delete("/:id", categoryHandler.Delete)

	groups := protected.Group("/groups")
	groupHandler := NewGroupHandler(deps.GroupUC)
	groups.Get("/", groupHandler.List)
	groups.Post("/", groupHandler.Create)
	groups.Get("/:id", groupHandler.GetByID)
	groups.Put("/:id", groupHandler.Update)
	groups.Delete("/:id", groupHandler.Delete)

	tags := protected.Group("/tags")
	tagHandler := NewTagHandler(deps.TagUC)
	tags.Get("/", tagHandler.List)
	tags.Post("/", tagHandler.Create)
	tags.Put("/:id", tagHandler.Update)
	tags.Delete("/:id", tagHandler.Delete)

	units := protected.Group("/units")
	unitHandler := NewUnitHandler(deps.UnitUC)
	units.Get("/", unitHandler.List)
	units.Post("/", unitHandler.Create)
	units.Put("/:id", unitHandler.Update)
	units.Delete("/:id", unitHandler.Delete)

	locations := protected.Group("/locations")
	locationHandler := NewLocationHandler(deps.LocationUC)
	locations.Get("/", locationHandler.List)
	locations.Post("/", locationHandler.Create)
	locations.Put("/:id", locationHandler.Update)
	locations.Delete("/:id", locationHandler.Delete)

	nutrimentHandler := NewNutrimentHandler(deps.NutrimentUC)
	protected.Get("/nutriments", nutrimentHandler.List)

	// Usuarios
	users := protected.Group("/users")
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/", userHandler.List)
	// "/me" antes que "/:id": fiber resuelve en orden de registro
	users.Get("/me", userHandler.Me)
	users.Put("/me", userHandler.UpdateMe)
	users.Get("/:id", userHandler.GetByID)
	users.Put("/:id", userHandler.UpdateByID)
}
