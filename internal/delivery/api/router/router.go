// Package router registers the storefront API routes.
package router

import (
	"aurelise/internal/delivery/api/middleware"
	"aurelise/internal/delivery/api/router/handler"
	"aurelise/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RouterParams holds the handlers and middleware injected by Fx.
type RouterParams struct {
	fx.In

	AuthHandler     *handler.AuthHandler
	ProfileHandler  *handler.ProfileHandler
	CatalogHandler  *handler.CatalogHandler
	ContentHandler  *handler.ContentHandler
	CartHandler     *handler.CartHandler
	CheckoutHandler *handler.CheckoutHandler
	PaymentHandler  *handler.PaymentHandler
	AdminHandler    *handler.AdminHandler
	DeviceHandler   *handler.DeviceHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

type router struct {
	auth     *handler.AuthHandler
	profile  *handler.ProfileHandler
	catalog  *handler.CatalogHandler
	content  *handler.ContentHandler
	cart     *handler.CartHandler
	checkout *handler.CheckoutHandler
	payment  *handler.PaymentHandler
	admin    *handler.AdminHandler
	device   *handler.DeviceHandler
	guard    *middleware.AuthMiddleware
}

// NewRouter is the constructor for the router.
func NewRouter(params RouterParams) *router {
	return &router{
		auth:     params.AuthHandler,
		profile:  params.ProfileHandler,
		catalog:  params.CatalogHandler,
		content:  params.ContentHandler,
		cart:     params.CartHandler,
		checkout: params.CheckoutHandler,
		payment:  params.PaymentHandler,
		admin:    params.AdminHandler,
		device:   params.DeviceHandler,
		guard:    params.AuthMiddleware,
	}
}

// RegisterRoutes sets up every API route.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.auth.Register)
		authGroup.POST("/login", r.auth.Login)
		authGroup.POST("/google", r.auth.GoogleLogin)
		authGroup.POST("/refresh", r.auth.RefreshToken)
		authGroup.POST("/logout", r.auth.Logout)
	}

	e.POST("/webhooks/stripe", r.payment.StripeWebhook)

	apiV1 := e.Group("/api/v1")

	// Public catalog
	apiV1.GET("/products", r.catalog.ListProducts)
	apiV1.GET("/products/:slug", r.catalog.GetProduct)
	apiV1.GET("/categories", r.catalog.ListCategories)

	// Blog and content pages
	apiV1.GET("/posts", r.content.ListPosts)
	apiV1.GET("/posts/:slug", r.content.GetPost)
	apiV1.GET("/pages", r.content.ListPages)
	apiV1.GET("/pages/:slug", r.content.GetPage)

	// Guests and customers
	guestOrUser := apiV1.Group("", r.guard.OptionalAuthenticate)
	{
		guestOrUser.POST("/cart/session", r.cart.NewSession)
		guestOrUser.GET("/cart", r.cart.GetCart)
		guestOrUser.DELETE("/cart", r.cart.ClearCart)
		guestOrUser.POST("/cart/items", r.cart.AddItem)
		guestOrUser.PUT("/cart/items/:id", r.cart.UpdateItem)
		guestOrUser.DELETE("/cart/items/:id", r.cart.RemoveItem)
		guestOrUser.POST("/orders", r.checkout.PlaceOrder)
		guestOrUser.POST("/payments/intent", r.payment.CreateIntent)
	}

	// Customers only
	user := apiV1.Group("", r.guard.Authenticate)
	{
		user.POST("/cart/merge", r.cart.MergeCarts)

		user.GET("/profile", r.profile.GetProfile)
		user.PUT("/profile", r.profile.UpdateProfile)

		user.GET("/addresses", r.profile.ListAddresses)
		user.POST("/addresses", r.profile.CreateAddress)
		user.PUT("/addresses/:id", r.profile.UpdateAddress)
		user.DELETE("/addresses/:id", r.profile.DeleteAddress)

		user.GET("/wishlist", r.profile.GetWishlist)
		user.POST("/wishlist", r.profile.AddToWishlist)
		user.DELETE("/wishlist/:productId", r.profile.RemoveFromWishlist)

		user.POST("/reviews", r.catalog.SubmitReview)

		user.GET("/orders", r.checkout.ListOrders)
		user.GET("/orders/:id", r.checkout.GetOrder)
		user.GET("/orders/:id/pickup-qr", r.checkout.PickupQR)

		user.POST("/devices", r.device.RegisterDevice)
		user.GET("/devices", r.device.ListDevices)
		user.PUT("/devices/:id/token", r.device.UpdateFCMToken)
		user.DELETE("/devices/:id", r.device.DeactivateDevice)
	}

	adminGroup := e.Group("/admin", r.guard.Authenticate, r.guard.RequireRole(entity.RoleAdmin, entity.RoleSuperAdmin))
	{
		adminGroup.GET("/products", r.catalog.AdminListProducts)
		adminGroup.POST("/products", r.catalog.CreateProduct)
		adminGroup.PUT("/products/:id", r.catalog.UpdateProduct)
		adminGroup.DELETE("/products/:id", r.catalog.DisableProduct)

		adminGroup.GET("/orders", r.admin.ListOrders)
		adminGroup.POST("/orders/scan", r.admin.ScanPickup)
		adminGroup.GET("/orders/:id", r.admin.GetOrder)
		adminGroup.PUT("/orders/:id/status", r.admin.UpdateStatus)
		adminGroup.POST("/orders/:id/refund", r.payment.Refund)

		adminGroup.GET("/dashboard", r.admin.Dashboard)
		adminGroup.GET("/customers", r.admin.ListCustomers)
		adminGroup.GET("/settings", r.admin.ListSettings)
		adminGroup.PUT("/settings", r.admin.UpsertSetting)

		adminGroup.GET("/reviews", r.catalog.ListReviews)
		adminGroup.PUT("/reviews/:id/approve", r.catalog.ApproveReview)

		adminGroup.GET("/posts", r.content.AdminListPosts)
		adminGroup.POST("/posts", r.content.CreatePost)
		adminGroup.PUT("/posts/:id", r.content.UpdatePost)
		adminGroup.DELETE("/posts/:id", r.content.DeletePost)

		adminGroup.GET("/pages", r.content.AdminListPages)
		adminGroup.POST("/pages", r.content.CreatePage)
		adminGroup.PUT("/pages/:id", r.content.UpdatePage)
		adminGroup.DELETE("/pages/:id", r.content.DeletePage)
	}

	superAdmin := e.Group("/admin/users", r.guard.Authenticate, r.guard.RequireRole(entity.RoleSuperAdmin))
	{
		superAdmin.PUT("/:id/role", r.admin.UpdateUserRole)
	}
}
