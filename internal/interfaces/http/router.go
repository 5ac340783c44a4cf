package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Tienda-api/internal/application/auth"
	"github.com/jhoicas/Tienda-api/internal/application/usecase"
	"github.com/jhoicas/Tienda-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC    *auth.AuthUseCase
	UserUC    *usecase.UserUseCase
	ProductUC *usecase.ProductUseCase
	OrderUC   *usecase.OrderUseCase
	JWTSecret string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Catálogo (público: consulta sin autenticación)
	productHandler := NewProductHandler(deps.ProductUC)
	products := api.Group("/products")
	products.Get("/", productHandler.List)
	products.Get("/search", productHandler.Search)
	products.Get("/:id", productHandler.GetByID)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	adminOnly := RequireRole(entity.RoleAdmin)

	// Perfil propio (protegido)
	userHandler := NewUserHandler(deps.UserUC)
	me := protected.Group("/me")
	me.Get("/", userHandler.Me)
	me.Put("/", userHandler.UpdateMe)

	// Administración de clientes (solo admin)
	customers := protected.Group("/customers", adminOnly)
	customers.Get("/", userHandler.ListCustomers)
	customers.Delete("/:id", userHandler.DeleteCustomer)
	customers.Delete("/", userHandler.DeleteAllCustomers)

	// Mutaciones de catálogo (solo admin)
	adminProducts := protected.Group("/products", adminOnly)
	adminProducts.Post("/", productHandler.Create)
	adminProducts.Delete("/:id", productHandler.Delete)
	adminProducts.Delete("/", productHandler.DeleteAll)

	// Órdenes (protegido)
	orderHandler := NewOrderHandler(deps.OrderUC)
	orders := protected.Group("/orders")
	orders.Post("/", orderHandler.Create)
	orders.Get("/", orderHandler.ListMine)

	// Órdenes (solo admin)
	adminOrders := protected.Group("/admin/orders", adminOnly)
	adminOrders.Get("/", orderHandler.ListAll)
	adminOrders.Delete("/:id", orderHandler.Delete)
	adminOrders.Delete("/", orderHandler.DeleteAll)
}
