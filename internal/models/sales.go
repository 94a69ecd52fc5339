package models

import "time"

type SalesReportRow struct {
	Date         string  `json:"date"`
	Orders       int     `json:"orders"`
	UnitsSold    int     `json:"units_sold"`
	Revenue      float64 `json:"revenue"`
	Cost         float64 `json:"cost"`
	GrossProfit  float64 `json:"gross_profit"`
	AverageOrder float64 `json:"average_order_value"`
}

type SalesReport struct {
	From    string           `json:"from,omitempty"`
	To      string           `json:"to,omitempty"`
	Rows    []SalesReportRow `json:"rows"`
	Revenue float64          `json:"total_revenue"`
	Profit  float64          `json:"total_profit"`
}

type SalesPerformance struct {
	Period    string  `json:"period"`
	Revenue   float64 `json:"revenue"`
	Orders    int     `json:"orders"`
	Growth    float64 `json:"growth,omitempty"`
	UpdatedAt string  `json:"updated_at,omitempty"`
}

type ProductSalesRow struct {
	ProductID int64   `json:"product_id"`
	Name      string  `json:"name"`
	UnitsSold int     `json:"units_sold"`
	Revenue   float64 `json:"revenue"`
}

type ProductSalesReport struct {
	Products []ProductSalesRow `json:"products"`
}

// ReportRange bounds the detailed sales report query.
type ReportRange struct {
	From time.Time
	To   time.Time
}

func (r ReportRange) Equal(other ReportRange) bool {
	return r.From.Equal(other.From) && r.To.Equal(other.To)
}
