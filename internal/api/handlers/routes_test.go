package handlers_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/aaravmahajanofficial/retail-inventory-admin/internal/api/handlers"
	"github.com/aaravmahajanofficial/retail-inventory-admin/internal/catalog"
	"github.com/aaravmahajanofficial/retail-inventory-admin/internal/models"
	"github.com/aaravmahajanofficial/retail-inventory-admin/internal/storage"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestRegisterRoutes(t *testing.T) {
	inventorySvc := new(mockInventoryService)
	catalogSvc := new(mockCatalogService)
	orderSvc := new(mockOrderService)
	userSvc := new(mockUserService)
	reportSvc := new(mockReportService)

	inventorySvc.On("LowStockAlerts").Return([]models.LowStockAlert{})
	catalogSvc.On("ProductSizes", mock.Anything, int64(4)).Return([]models.ProductSize{}, nil)
	userSvc.On("Delete", mock.Anything, int64(9)).Return(nil)
	reportSvc.On("RefreshPerformance", mock.Anything).Return(nil)
	reportSvc.On("Performance").Return([]models.SalesPerformance{}, true)

	router := chi.NewRouter()
	handlers.RegisterRoutes(router, handlers.Routes{
		Inventory: handlers.NewInventoryHandler(inventorySvc),
		Catalog:   handlers.NewCatalogHandler(catalogSvc),
		Orders:    handlers.NewOrderHandler(orderSvc),
		Users:     handlers.NewUserHandler(userSvc),
		Reports:   handlers.NewReportHandler(reportSvc),
		Session:   handlers.NewSessionHandler(storage.NewClientState(storage.NewMemoryStore())),
		Policy:    catalog.BlockUnderAllocation,
		Lifetime:  context.Background,
	})

	tests := []struct {
		name       string
		method     string
		path       string
		body       string
		wantStatus int
	}{
		{"alerts", http.MethodGet, "/admin/alerts", "", http.StatusOK},
		{"product sizes", http.MethodGet, "/admin/products/4/sizes", "", http.StatusOK},
		{"check sizes", http.MethodPost, "/admin/products/check-sizes", `{"stock":2,"sizes":[{"size":"S","stock":"2"}]}`, http.StatusOK},
		{"delete user", http.MethodDelete, "/admin/users/9", "", http.StatusNoContent},
		{"performance", http.MethodGet, "/admin/reports/performance", "", http.StatusOK},
		{"theme", http.MethodGet, "/admin/preferences/theme", "", http.StatusOK},
		{"set theme", http.MethodPut, "/admin/preferences/theme", `{"theme":"dark"}`, http.StatusOK},
		{"add cart item", http.MethodPost, "/admin/cart/items", `{"product_id":4,"size":"M","quantity":1,"unit_price":9.5}`, http.StatusOK},
		{"remove cart item", http.MethodDelete, "/admin/cart/items/4?size=M", "", http.StatusOK},
		{"clear cart", http.MethodDelete, "/admin/cart", "", http.StatusNoContent},
		{"log out", http.MethodDelete, "/admin/session", "", http.StatusNoContent},
		{"wrong method", http.MethodPut, "/admin/alerts", "", http.StatusMethodNotAllowed},
		{"unknown route", http.MethodGet, "/admin/unknown", "", http.StatusNotFound},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, httptest.NewRequest(tc.method, tc.path, strings.NewReader(tc.body)))

			assert.Equal(t, tc.wantStatus, rr.Code)
		})
	}
}

func TestRegisterRoutesAdminToken(t *testing.T) {
	inventorySvc := new(mockInventoryService)
	inventorySvc.On("LowStockAlerts").Return([]models.LowStockAlert{})

	router := chi.NewRouter()
	router.Get("/health", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) })
	handlers.RegisterRoutes(router, handlers.Routes{
		Inventory:  handlers.NewInventoryHandler(inventorySvc),
		Catalog:    handlers.NewCatalogHandler(new(mockCatalogService)),
		Orders:     handlers.NewOrderHandler(new(mockOrderService)),
		Users:      handlers.NewUserHandler(new(mockUserService)),
		Reports:    handlers.NewReportHandler(new(mockReportService)),
		Session:    handlers.NewSessionHandler(storage.NewClientState(storage.NewMemoryStore())),
		Lifetime:   context.Background,
		AdminToken: "admin-secret",
	})

	tests := []struct {
		name       string
		path       string
		auth       string
		wantStatus int
	}{
		{"admin route without token", "/admin/alerts", "", http.StatusUnauthorized},
		{"admin route with wrong token", "/admin/alerts", "Bearer nope", http.StatusUnauthorized},
		{"admin route with token", "/admin/alerts", "Bearer admin-secret", http.StatusOK},
		{"route outside admin stays open", "/health", "", http.StatusOK},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tc.path, nil)
			if tc.auth != "" {
				req.Header.Set("Authorization", tc.auth)
			}

			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.wantStatus, rr.Code)
		})
	}
}
