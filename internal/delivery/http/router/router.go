// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"farmkitchen/internal/delivery/http/middleware"
	"farmkitchen/internal/delivery/http/router/handler"
	"farmkitchen/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	HealthHandler  *handler.HealthHandler
	AuthHandler    *handler.AuthHandler
	UserHandler    *handler.UserHandler
	ProductHandler *handler.ProductHandler
	CartHandler    *handler.CartHandler
	OrderHandler   *handler.OrderHandler
	PaymentHandler *handler.PaymentHandler
	ReviewHandler  *handler.ReviewHandler
	AdminHandler   *handler.AdminHandler
	AIHandler      *handler.AIHandler
	ChatHandler    *handler.ChatHandler
	WeatherHandler *handler.WeatherHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	params RouterParams
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{params: params}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	p := r.params
	auth := p.AuthMiddleware

	// Health check endpoint
	e.GET("/health", p.HealthHandler.Check)

	api := e.Group("/api")

	// Token-exchange endpoints; the token itself is the credential.
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/signup", p.AuthHandler.Signup)
		authGroup.POST("/login", p.AuthHandler.Login)
	}

	// Public catalog reads; mutations require a farmer account.
	productGroup := api.Group("/products")
	{
		productGroup.GET("", p.ProductHandler.List)
		productGroup.GET("/:id", p.ProductHandler.Get)

		farmerOnly := []echo.MiddlewareFunc{auth.Authenticate, auth.RequireRole(entity.RoleFarmer)}
		productGroup.POST("", p.ProductHandler.Create, farmerOnly...)
		productGroup.PUT("/:id", p.ProductHandler.Update, farmerOnly...)
		productGroup.DELETE("/:id", p.ProductHandler.Delete, farmerOnly...)
	}

	// Review reads are public; submission requires a signed-in account.
	reviewGroup := api.Group("/reviews")
	{
		reviewGroup.GET("/:productId", p.ReviewHandler.ListByProduct)
		reviewGroup.POST("/:productId", p.ReviewHandler.Submit, auth.Authenticate)
	}

	userGroup := api.Group("/users", auth.Authenticate)
	{
		userGroup.GET("/me", p.UserHandler.Me)
		userGroup.PUT("/me", p.UserHandler.UpdateMe)
		userGroup.GET("/orders", p.UserHandler.Orders)
	}

	cartGroup := api.Group("/cart", auth.Authenticate)
	{
		cartGroup.GET("", p.CartHandler.Get)
		cartGroup.POST("", p.CartHandler.AddItem)
		cartGroup.PATCH("/:productId", p.CartHandler.UpdateItem)
		cartGroup.DELETE("/:productId", p.CartHandler.RemoveItem)
		cartGroup.DELETE("", p.CartHandler.Clear)
	}

	orderGroup := api.Group("/orders", auth.Authenticate)
	{
		orderGroup.POST("", p.OrderHandler.Place)
	}

	paymentGroup := api.Group("/payment", auth.Authenticate)
	{
		paymentGroup.POST("/checkout", p.PaymentHandler.Checkout)
	}

	aiGroup := api.Group("/ai", auth.Authenticate)
	{
		aiGroup.POST("/chat", p.AIHandler.Chat)
	}

	chatGroup := api.Group("/chat", auth.Authenticate)
	{
		chatGroup.GET("", p.ChatHandler.Inbox)
		chatGroup.GET("/:partnerId", p.ChatHandler.Thread)
		chatGroup.POST("/:recipientId", p.ChatHandler.Send)
	}

	weatherGroup := api.Group("/weather", auth.Authenticate)
	{
		weatherGroup.GET("/current", p.WeatherHandler.Current)
	}

	adminGroup := api.Group("/admin", auth.Authenticate, auth.RequireRole(entity.RoleAdmin))
	{
		adminGroup.GET("/users", p.AdminHandler.ListUsers)
		adminGroup.PATCH("/user/:id", p.AdminHandler.UpdateUserRole)
		adminGroup.GET("/products", p.AdminHandler.ListProducts)
		adminGroup.DELETE("/products/:id", p.AdminHandler.DeleteProduct)
		adminGroup.GET("/orders", p.AdminHandler.ListOrders)
		adminGroup.PATCH("/orders/:id/status", p.AdminHandler.UpdateOrderStatus)
		adminGroup.DELETE("/orders/:id", p.AdminHandler.DeleteOrder)
		adminGroup.GET("/stats", p.AdminHandler.Stats)
		adminGroup.GET("/analytics", p.AdminHandler.Analytics)
	}
}
