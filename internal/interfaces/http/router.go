package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/aplusmed/marketplace-api/internal/application/cart"
	"github.com/aplusmed/marketplace-api/internal/application/catalog"
	"github.com/aplusmed/marketplace-api/internal/application/checkout"
	"github.com/aplusmed/marketplace-api/internal/application/session"
	"github.com/aplusmed/marketplace-api/internal/application/vendors"
	"github.com/aplusmed/marketplace-api/internal/domain/entity"
	"github.com/aplusmed/marketplace-api/internal/domain/repository"
)

// RouterDeps dependencies for the router.
type RouterDeps struct {
	Sessions  *session.Store
	Cart      *cart.Store
	CatalogUC *catalog.UseCase
	Catalog   repository.ProductCatalog
	Directory repository.AccountDirectory
	Checkout  *checkout.UseCase
	Vendors   *vendors.UseCase
	Receipts  ReceiptGenerator
}

// Router registers the API routes. Gating mirrors the storefront's protected
// routes: public browsing and auth, authenticated checkout/orders, vendor-only
// dashboard, admin-only review queue.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (public)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.Sessions)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/logout", authHandler.Logout)
	authGroup.Get("/session", authHandler.Session)

	// Products (public)
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.CatalogUC)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)

	// Cart (public: the storefront allows filling a cart before logging in)
	cartGroup := api.Group("/cart")
	cartHandler := NewCartHandler(deps.Cart, deps.Catalog)
	cartGroup.Get("/", cartHandler.Get)
	cartGroup.Delete("/", cartHandler.Clear)
	cartGroup.Post("/items", cartHandler.AddItem)
	cartGroup.Put("/items/:id", cartHandler.UpdateQuantity)
	cartGroup.Delete("/items/:id", cartHandler.RemoveItem)

	// Checkout and orders (any authenticated identity)
	authenticated := api.Group("/", RequireAuth(deps.Sessions))
	checkoutHandler := NewCheckoutHandler(deps.Checkout, deps.Receipts)
	authenticated.Get("/checkout/quote", checkoutHandler.Quote)
	authenticated.Post("/checkout", checkoutHandler.PlaceOrder)
	authenticated.Get("/orders", checkoutHandler.History)
	authenticated.Get("/orders/:id", checkoutHandler.GetOrder)
	authenticated.Get("/orders/:id/receipt", checkoutHandler.Receipt)

	vendorHandler := NewVendorHandler(deps.Vendors)

	// Vendor dashboard (vendorOnly)
	vendorGroup := api.Group("/vendor", RequireAuth(deps.Sessions), RequireRole(entity.RoleVendor))
	vendorGroup.Get("/earnings", vendorHandler.Earnings)

	// Admin (adminOnly)
	adminGroup := api.Group("/admin", RequireAuth(deps.Sessions), RequireRole(entity.RoleAdmin))
	adminGroup.Get("/vendors", vendorHandler.ListApplications)
	adminGroup.Post("/vendors/:id/approve", vendorHandler.Approve)
	adminGroup.Post("/vendors/:id/reject", vendorHandler.Reject)
	adminGroup.Post("/vendors/:id/suspend", vendorHandler.Suspend)
	adminHandler := NewAdminHandler(deps.Directory)
	adminGroup.Get("/users", adminHandler.ListUsers)
}
