package admin

import (
	"context"
	"log/slog"

	"github.com/aaravmahajanofficial/retail-inventory-admin/internal/api/middleware"
	"github.com/aaravmahajanofficial/retail-inventory-admin/internal/models"
	"github.com/aaravmahajanofficial/retail-inventory-admin/internal/state"
	"github.com/aaravmahajanofficial/retail-inventory-admin/internal/utils"
	"github.com/go-playground/validator/v10"
)

type OrderAPI interface {
	ListAdminOrders(ctx context.Context) ([]models.Order, error)
	UpdateOrderStatus(ctx context.Context, id int64, status models.OrderStatus) (*models.Order, error)
}

type OrderService interface {
	RefreshOrders(ctx context.Context) error
	UpdateStatus(ctx context.Context, orderID int64, req *models.UpdateOrderStatusRequest) (*models.Order, error)
	Orders() ([]models.Order, bool)
}

type orderService struct {
	api       OrderAPI
	validator *validator.Validate
	orders    state.Latest[[]models.Order]
}

func NewOrderService(api OrderAPI) OrderService {
	return &orderService{api: api, validator: validator.New()}
}

func (s *orderService) RefreshOrders(ctx context.Context) error {

	ticket := s.orders.Begin()

	orders, err := s.api.ListAdminOrders(ctx)
	if err != nil {
		middleware.LoggerFromContext(ctx).Warn("Order refresh failed", slog.String("error", err.Error()))
		return err
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	for i := range orders {
		cleanOrder(&orders[i])
	}

	s.orders.Apply(ticket, orders)

	return nil
}

// UpdateStatus sends the new status and then reloads the list.
func (s *orderService) UpdateStatus(ctx context.Context, orderID int64, req *models.UpdateOrderStatusRequest) (*models.Order, error) {

	logger := middleware.LoggerFromContext(ctx)

	if err := utils.ValidateStruct(s.validator, req); err != nil {
		return nil, err
	}

	order, err := s.api.UpdateOrderStatus(ctx, orderID, req.Status)
	if err != nil {
		logger.Error("Order status update failed",
			slog.Int64("order_id", orderID),
			slog.String("status", string(req.Status)),
			slog.String("error", err.Error()))
		return nil, err
	}

	cleanOrder(order)

	logger.Info("Order status updated", slog.Int64("order_id", orderID), slog.String("status", string(req.Status)))

	_ = s.RefreshOrders(ctx)

	return order, nil
}

func (s *orderService) Orders() ([]models.Order, bool) {
	return s.orders.Get()
}

func cleanOrder(order *models.Order) {
	order.CustomerName = utils.CleanText(order.CustomerName)

	for i := range order.Items {
		order.Items[i].Name = utils.CleanText(order.Items[i].Name)
	}
}
