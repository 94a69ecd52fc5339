package handlers

import (
	"net/http"
	"time"

	"github.com/aaravmahajanofficial/retail-inventory-admin/internal/errors"
	"github.com/aaravmahajanofficial/retail-inventory-admin/internal/models"
	"github.com/aaravmahajanofficial/retail-inventory-admin/internal/reports"
	"github.com/aaravmahajanofficial/retail-inventory-admin/internal/utils/response"
)

const dateLayout = "2006-01-02"

type ReportHandler struct {
	reportService reports.Service
}

func NewReportHandler(reportService reports.Service) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// SalesReport refreshes and serves the detailed report for ?from=&to=. When a
// fetch is already running the call answers 202 with the cached report, or
// null data when the cached report covers a different range.
//
//	@Summary	Detailed sales report
//	@Tags		Reports
//	@Produce	json
//	@Param		from	query		string					false	"Start date, YYYY-MM-DD"
//	@Param		to		query		string					false	"End date, YYYY-MM-DD"
//	@Success	200		{object}	models.SalesReport		"Fresh report"
//	@Success	202		{object}	models.SalesReport		"Fetch already running; cached report for the same range or null"
//	@Failure	400		{object}	response.ErrorResponse	"Bad date or inverted range"
//	@Security	BearerAuth
//	@Router		/admin/reports/sales [get]
func (h *ReportHandler) SalesReport() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		window, err := parseRange(r)
		if err != nil {
			response.Error(w, err)
			return
		}

		ran, err := h.reportService.RefreshSalesReport(r.Context(), window)
		if err != nil {
			response.Error(w, err)
			return
		}

		report, _ := h.reportService.SalesReport(window)

		status := http.StatusOK
		if !ran {
			status = http.StatusAccepted
		}

		response.Success(w, status, report)
	}
}

// Performance godoc
//	@Summary	Sales performance by period
//	@Tags		Reports
//	@Produce	json
//	@Success	200	{array}		models.SalesPerformance	"Performance rows"
//	@Failure	502	{object}	response.ErrorResponse	"Retail API unreachable"
//	@Security	BearerAuth
//	@Router		/admin/reports/performance [get]
func (h *ReportHandler) Performance() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		if err := h.reportService.RefreshPerformance(r.Context()); err != nil {
			response.Error(w, err)
			return
		}

		performance, _ := h.reportService.Performance()
		response.Success(w, http.StatusOK, performance)
	}
}

// ProductSales godoc
//	@Summary	Sales per product
//	@Tags		Reports
//	@Produce	json
//	@Success	200	{object}	models.ProductSalesReport	"Product sales"
//	@Failure	502	{object}	response.ErrorResponse		"Retail API unreachable"
//	@Security	BearerAuth
//	@Router		/admin/reports/products [get]
func (h *ReportHandler) ProductSales() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		if err := h.reportService.RefreshProductSales(r.Context()); err != nil {
			response.Error(w, err)
			return
		}

		report, _ := h.reportService.ProductSales()
		response.Success(w, http.StatusOK, report)
	}
}

func parseRange(r *http.Request) (models.ReportRange, error) {
	var window models.ReportRange

	query := r.URL.Query()

	if from := query.Get("from"); from != "" {
		parsed, err := time.Parse(dateLayout, from)
		if err != nil {
			return window, errors.BadRequestError("from must be YYYY-MM-DD")
		}

		window.From = parsed
	}

	if to := query.Get("to"); to != "" {
		parsed, err := time.Parse(dateLayout, to)
		if err != nil {
			return window, errors.BadRequestError("to must be YYYY-MM-DD")
		}

		window.To = parsed
	}

	return window, nil
}
