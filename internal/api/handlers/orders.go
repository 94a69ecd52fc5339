package handlers

import (
	"net/http"

	"github.com/aaravmahajanofficial/retail-inventory-admin/internal/admin"
	"github.com/aaravmahajanofficial/retail-inventory-admin/internal/models"
	"github.com/aaravmahajanofficial/retail-inventory-admin/internal/utils"
	"github.com/aaravmahajanofficial/retail-inventory-admin/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

type OrderHandler struct {
	orderService admin.OrderService
	validator    *validator.Validate
}

func NewOrderHandler(orderService admin.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService, validator: validator.New()}
}

// ListOrders godoc
//	@Summary	List orders
//	@Tags		Orders
//	@Produce	json
//	@Success	200	{array}		models.Order			"Orders"
//	@Failure	502	{object}	response.ErrorResponse	"Retail API unreachable"
//	@Security	BearerAuth
//	@Router		/admin/orders [get]
func (h *OrderHandler) ListOrders() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		orders, ok := h.orderService.Orders()
		if !ok {
			if err := h.orderService.RefreshOrders(r.Context()); err != nil {
				response.Error(w, err)
				return
			}

			orders, _ = h.orderService.Orders()
		}

		response.Success(w, http.StatusOK, orders)
	}
}

// UpdateOrderStatus godoc
//	@Summary	Change an order's status
//	@Tags		Orders
//	@Accept		json
//	@Produce	json
//	@Param		id		path		int								true	"Order ID"
//	@Param		status	body		models.UpdateOrderStatusRequest	true	"New status"
//	@Success	200		{object}	models.Order					"Updated order"
//	@Failure	400		{object}	response.ErrorResponse			"Invalid ID or status"
//	@Failure	404		{object}	response.ErrorResponse			"Order not found"
//	@Security	BearerAuth
//	@Router		/admin/orders/{id}/status [patch]
func (h *OrderHandler) UpdateOrderStatus() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		id, err := utils.ParseID(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		var req models.UpdateOrderStatusRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		order, err := h.orderService.UpdateStatus(r.Context(), id, &req)
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, order)
	}
}
