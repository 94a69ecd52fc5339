package handlers

import (
	"net/http"

	"github.com/aaravmahajanofficial/retail-inventory-admin/internal/api/middleware"
	"github.com/aaravmahajanofficial/retail-inventory-admin/internal/catalog"
	"github.com/go-chi/chi/v5"
)

type Routes struct {
	Inventory *InventoryHandler
	Catalog   *CatalogHandler
	Orders    *OrderHandler
	Users     *UserHandler
	Reports   *ReportHandler
	Session   *SessionHandler
	Policy    catalog.Policy
	Lifetime  ContextFunc
	// AdminToken guards every /admin route; empty disables the check.
	AdminToken string
}

// RegisterRoutes mounts the admin API under /admin.
func RegisterRoutes(r chi.Router, routes Routes) {
	r.Route("/admin", func(r chi.Router) {

		r.Use(func(next http.Handler) http.Handler {
			return middleware.RequireToken(routes.AdminToken, next)
		})

		r.Get("/alerts", routes.Inventory.LowStockAlerts())
		r.Post("/alerts/refresh", routes.Inventory.RefreshAlerts())
		r.Post("/stock-movements", routes.Inventory.RecordMovement(routes.Lifetime))
		r.Get("/stock/current", routes.Inventory.CurrentStock())
		r.Get("/stock/history", routes.Inventory.History())

		r.Route("/products", func(r chi.Router) {
			r.Get("/", routes.Catalog.ListProducts())
			r.Post("/", routes.Catalog.CreateProduct())
			r.Post("/check-sizes", routes.Catalog.CheckSizes(routes.Policy))
			r.Post("/upload-image", routes.Catalog.UploadImage())
			r.Get("/{id}/sizes", routes.Catalog.ProductSizes())
		})

		r.Get("/orders", routes.Orders.ListOrders())
		r.Patch("/orders/{id}/status", routes.Orders.UpdateOrderStatus())

		r.Get("/users", routes.Users.ListUsers())
		r.Patch("/users/{id}/status", routes.Users.UpdateUserStatus())
		r.Delete("/users/{id}", routes.Users.DeleteUser())

		r.Get("/reports/sales", routes.Reports.SalesReport())
		r.Get("/reports/performance", routes.Reports.Performance())
		r.Get("/reports/products", routes.Reports.ProductSales())

		r.Get("/preferences/theme", routes.Session.GetTheme())
		r.Put("/preferences/theme", routes.Session.SetTheme())

		r.Get("/cart", routes.Session.GetCart())
		r.Delete("/cart", routes.Session.ClearCart())
		r.Post("/cart/items", routes.Session.AddCartItem())
		r.Delete("/cart/items/{id}", routes.Session.RemoveCartItem())

		r.Put("/session", routes.Session.SetSession())
		r.Delete("/session", routes.Session.ClearSession())
	})
}
