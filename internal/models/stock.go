package models

import "time"

type MovementType string

const (
	MovementStockIn         MovementType = "stock_in"
	MovementStockOut        MovementType = "stock_out"
	MovementStockAdjustment MovementType = "stock_adjustment"
)

// StockMovement is append-only; the client creates it and never edits it.
type StockMovement struct {
	ProductID    int64        `json:"product_id" validate:"required,gt=0"`
	MovementType MovementType `json:"movement_type" validate:"required,oneof=stock_in stock_out stock_adjustment"`
	Quantity     int          `json:"quantity" validate:"required,gt=0"`
	Reason       string       `json:"reason,omitempty" validate:"max=255"`
	Size         Size         `json:"size,omitempty" validate:"omitempty,oneof=NONE XXS XS S M L XL XXL XXXL"`
	Notes        string       `json:"notes,omitempty" validate:"max=1000"`
}

type StockMovementResult struct {
	ID           int64        `json:"id"`
	ProductID    int64        `json:"product_id"`
	MovementType MovementType `json:"movement_type"`
	Quantity     int          `json:"quantity"`
	NewStock     *int         `json:"new_stock,omitempty"`
	Message      string       `json:"message,omitempty"`
	CreatedAt    time.Time    `json:"created_at"`
}

type LowStockAlert struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	CurrentStock int    `json:"current_stock"`
	ReorderPoint *int   `json:"reorder_point,omitempty"`
	ReorderLevel *int   `json:"reorder_level,omitempty"`
	AlertLevel   string `json:"alert_level,omitempty"`
}

func (a *LowStockAlert) Threshold() int {
	return resolveThreshold(a.ReorderPoint, a.ReorderLevel)
}

type CurrentStock struct {
	ProductID    int64  `json:"product_id"`
	Name         string `json:"name"`
	Stock        int    `json:"stock"`
	ReorderPoint *int   `json:"reorder_point,omitempty"`
	Category     string `json:"category,omitempty"`
}

type StockHistoryEntry struct {
	ID           int64        `json:"id"`
	ProductID    int64        `json:"product_id"`
	ProductName  string       `json:"product_name,omitempty"`
	MovementType MovementType `json:"movement_type"`
	Quantity     int          `json:"quantity"`
	Reason       string       `json:"reason,omitempty"`
	Size         Size         `json:"size,omitempty"`
	Notes        string       `json:"notes,omitempty"`
	CreatedAt    time.Time    `json:"created_at"`
}
