package handlers

import (
	"log/slog"
	"net/http"

	"github.com/aaravmahajanofficial/retail-inventory-admin/internal/api/middleware"
	"github.com/aaravmahajanofficial/retail-inventory-admin/internal/inventory"
	"github.com/aaravmahajanofficial/retail-inventory-admin/internal/models"
	"github.com/aaravmahajanofficial/retail-inventory-admin/internal/utils"
	"github.com/aaravmahajanofficial/retail-inventory-admin/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

type InventoryHandler struct {
	inventoryService inventory.Service
	validator        *validator.Validate
}

func NewInventoryHandler(inventoryService inventory.Service) *InventoryHandler {
	return &InventoryHandler{inventoryService: inventoryService, validator: validator.New()}
}

// LowStockAlerts serves the cached list; it never calls the API itself.
//
//	@Summary	List low-stock alerts
//	@Tags		Inventory
//	@Produce	json
//	@Success	200	{array}		models.LowStockAlert	"Cached alert list"
//	@Failure	401	{object}	response.ErrorResponse	"Authentication required"
//	@Security	BearerAuth
//	@Router		/admin/alerts [get]
func (h *InventoryHandler) LowStockAlerts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response.Success(w, http.StatusOK, h.inventoryService.LowStockAlerts())
	}
}

// RefreshAlerts godoc
//	@Summary	Refetch low-stock alerts
//	@Tags		Inventory
//	@Produce	json
//	@Success	200	{array}		models.LowStockAlert	"Fresh alert list"
//	@Failure	502	{object}	response.ErrorResponse	"Retail API unreachable"
//	@Security	BearerAuth
//	@Router		/admin/alerts/refresh [post]
func (h *InventoryHandler) RefreshAlerts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		if err := h.inventoryService.RefreshAlerts(r.Context()); err != nil {
			logger.Error("Manual alert refresh failed", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, h.inventoryService.LowStockAlerts())
	}
}

// RecordMovement records one stock movement. Reconciliation of the alert list
// continues in the background after the response is written.
//
//	@Summary		Record a stock movement
//	@Description	Submits the movement; an affected low-stock alert is cleared optimistically and verified afterwards.
//	@Tags			Inventory
//	@Accept			json
//	@Produce		json
//	@Param			movement	body		models.StockMovement		true	"Movement details"
//	@Success		201			{object}	models.StockMovementResult	"Movement recorded"
//	@Failure		400			{object}	response.ErrorResponse		"Validation error"
//	@Failure		502			{object}	response.ErrorResponse		"Retail API unreachable"
//	@Security		BearerAuth
//	@Router			/admin/stock-movements [post]
func (h *InventoryHandler) RecordMovement(lifetime ContextFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.StockMovement
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid stock movement input")
			return
		}

		// The request context ends with the response; follow-up work must not.
		ctx := middleware.WithLogger(lifetime(), logger)

		result, err := h.inventoryService.RecordMovement(ctx, &req)
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusCreated, result)
	}
}

// CurrentStock godoc
//	@Summary	Current stock levels
//	@Tags		Inventory
//	@Produce	json
//	@Success	200	{array}		models.CurrentStock		"Stock per product"
//	@Failure	502	{object}	response.ErrorResponse	"Retail API unreachable"
//	@Security	BearerAuth
//	@Router		/admin/stock/current [get]
func (h *InventoryHandler) CurrentStock() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		stock, ok := h.inventoryService.CurrentStock()
		if !ok {
			if err := h.inventoryService.RefreshCurrentStock(r.Context()); err != nil {
				response.Error(w, err)
				return
			}

			stock, _ = h.inventoryService.CurrentStock()
		}

		response.Success(w, http.StatusOK, stock)
	}
}

// History godoc
//	@Summary	Stock movement history
//	@Tags		Inventory
//	@Produce	json
//	@Success	200	{array}		models.StockHistoryEntry	"Movement history"
//	@Failure	502	{object}	response.ErrorResponse		"Retail API unreachable"
//	@Security	BearerAuth
//	@Router		/admin/stock/history [get]
func (h *InventoryHandler) History() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		history, ok := h.inventoryService.History()
		if !ok {
			if err := h.inventoryService.RefreshHistory(r.Context()); err != nil {
				response.Error(w, err)
				return
			}

			history, _ = h.inventoryService.History()
		}

		response.Success(w, http.StatusOK, history)
	}
}
