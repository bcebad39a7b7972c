package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/polkiloo/storefront/internal/domain/model"
	"github.com/polkiloo/storefront/internal/server/http/handlers"
	"github.com/polkiloo/storefront/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.StoreFacade, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	authHandler := handlers.NewAuthHandler(facade)
	userHandler := handlers.NewUserHandler(facade)
	categoryHandler := handlers.NewCategoryHandler(facade)
	productHandler := handlers.NewProductHandler(facade)
	orderHandler := handlers.NewOrderHandler(facade)

	authRequired := middleware.AuthRequired(facade)
	adminOnly := middleware.RequireRole(model.RoleAdmin)

	api := engine.Group("/api")

	auth := api.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.GET("/me", authRequired, authHandler.Me)

	users := api.Group("/users", authRequired, adminOnly)
	users.GET("", userHandler.List)
	users.PATCH("/:id/role", userHandler.UpdateRole)

	categories := api.Group("/categories")
	categories.GET("", categoryHandler.List)
	categories.GET("/:id", categoryHandler.Get)
	categories.POST("", authRequired, adminOnly, categoryHandler.Create)
	categories.PUT("/:id", authRequired, adminOnly, categoryHandler.Update)
	categories.DELETE("/:id", authRequired, adminOnly, categoryHandler.Delete)

	products := api.Group("/products")
	products.GET("", productHandler.List)
	products.GET("/:id", productHandler.Get)
	products.POST("", authRequired, adminOnly, productHandler.Create)
	products.PUT("/:id", authRequired, adminOnly, productHandler.Update)
	products.DELETE("/:id", authRequired, adminOnly, productHandler.Delete)

	orders := api.Group("/orders", authRequired)
	orders.POST("", orderHandler.Place)
	orders.GET("", orderHandler.List)
	orders.GET("/:id", orderHandler.Get)
	orders.PATCH("/:id/status", adminOnly, orderHandler.UpdateStatus)

	return engine
}
