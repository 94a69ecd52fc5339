package handlers

import (
	"log/slog"
	"net/http"

	"github.com/aaravmahajanofficial/retail-inventory-admin/internal/api/middleware"
	"github.com/aaravmahajanofficial/retail-inventory-admin/internal/catalog"
	"github.com/aaravmahajanofficial/retail-inventory-admin/internal/errors"
	"github.com/aaravmahajanofficial/retail-inventory-admin/internal/utils"
	"github.com/aaravmahajanofficial/retail-inventory-admin/internal/utils/response"
)

const maxImageBytes = 10 << 20

type CatalogHandler struct {
	catalogService catalog.Service
}

func NewCatalogHandler(catalogService catalog.Service) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

type SizeCheckRequest struct {
	Stock int               `json:"stock"`
	Sizes []catalog.SizeRow `json:"sizes"`
}

type SizeCheckResponse struct {
	catalog.Allocation
	Valid   bool   `json:"valid"`
	Warning string `json:"warning,omitempty"`
}

// CheckSizes previews the size allocation while the product form is edited.
//
//	@Summary		Preview a size allocation
//	@Description	Compares the per-size stock with the base stock. Empty sizes fall back to the single NONE row.
//	@Tags			Products
//	@Accept			json
//	@Produce		json
//	@Param			draft	body		SizeCheckRequest		true	"Base stock and size rows"
//	@Success		200		{object}	SizeCheckResponse		"Allocation status"
//	@Failure		400		{object}	response.ErrorResponse	"Invalid request body"
//	@Security		BearerAuth
//	@Router			/admin/products/check-sizes [post]
func (h *CatalogHandler) CheckSizes(policy catalog.Policy) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		var req SizeCheckRequest
		if err := utils.DecodeJSONBody(r.Body, &req); err != nil {
			response.Error(w, errors.BadRequestError("Invalid request body").WithError(err))
			return
		}

		if len(req.Sizes) == 0 {
			req.Sizes = catalog.DefaultRows()
		}

		allocation := catalog.CheckAllocation(req.Stock, req.Sizes)

		resp := SizeCheckResponse{
			Allocation: allocation,
			Valid:      catalog.IsValid(req.Stock, req.Sizes),
		}

		if err := allocation.Err(policy); err != nil {
			resp.Warning = err.Error()
		}

		response.Success(w, http.StatusOK, resp)
	}
}

// CreateProduct godoc
//	@Summary		Create a product
//	@Description	Validates the size allocation before anything is sent to the retail API.
//	@Tags			Products
//	@Accept			json
//	@Produce		json
//	@Param			product	body		catalog.ProductDraft	true	"Product form"
//	@Success		201		{object}	models.Product			"Created product"
//	@Failure		400		{object}	response.ErrorResponse	"Validation error"
//	@Failure		422		{object}	response.ErrorResponse	"Size stock does not match the base stock"
//	@Failure		502		{object}	response.ErrorResponse	"Retail API unreachable"
//	@Security		BearerAuth
//	@Router			/admin/products [post]
func (h *CatalogHandler) CreateProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var draft catalog.ProductDraft
		if err := utils.DecodeJSONBody(r.Body, &draft); err != nil {
			logger.Warn("Invalid product input", slog.String("error", err.Error()))
			response.Error(w, errors.BadRequestError("Invalid request body").WithError(err))
			return
		}

		if len(draft.Sizes) == 0 {
			draft.Sizes = catalog.DefaultRows()
		}

		product, err := h.catalogService.CreateProduct(r.Context(), &draft)
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusCreated, product)
	}
}

// ListProducts godoc
//	@Summary		List products
//	@Description	Refetches the catalog, serving the cached copy when the refetch fails.
//	@Tags			Products
//	@Produce		json
//	@Success		200	{array}		models.Product			"Products"
//	@Failure		502	{object}	response.ErrorResponse	"Retail API unreachable and nothing cached"
//	@Security		BearerAuth
//	@Router			/admin/products [get]
func (h *CatalogHandler) ListProducts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		if err := h.catalogService.RefreshProducts(r.Context()); err != nil {
			if _, ok := h.catalogService.Products(); !ok {
				response.Error(w, err)
				return
			}
		}

		products, _ := h.catalogService.Products()
		response.Success(w, http.StatusOK, products)
	}
}

// ProductSizes godoc
//	@Summary	Sizes of a product
//	@Tags		Products
//	@Produce	json
//	@Param		id	path		int						true	"Product ID"
//	@Success	200	{array}		models.ProductSize		"Size rows"
//	@Failure	400	{object}	response.ErrorResponse	"Invalid product ID"
//	@Failure	404	{object}	response.ErrorResponse	"Product not found"
//	@Security	BearerAuth
//	@Router		/admin/products/{id}/sizes [get]
func (h *CatalogHandler) ProductSizes() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		id, err := utils.ParseID(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		sizes, err := h.catalogService.ProductSizes(r.Context(), id)
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, sizes)
	}
}

// UploadImage godoc
//	@Summary	Upload a product image
//	@Tags		Products
//	@Accept		multipart/form-data
//	@Produce	json
//	@Param		image	formData	file						true	"Image file, at most 10MB"
//	@Success	201		{object}	models.ImageUploadResponse	"Stored image URL"
//	@Failure	400		{object}	response.ErrorResponse		"Missing image"
//	@Security	BearerAuth
//	@Router		/admin/products/upload-image [post]
func (h *CatalogHandler) UploadImage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		r.Body = http.MaxBytesReader(w, r.Body, maxImageBytes)

		file, header, err := r.FormFile("image")
		if err != nil {
			logger.Warn("Missing image upload", slog.String("error", err.Error()))
			response.Error(w, errors.BadRequestError("An image file is required"))
			return
		}
		defer file.Close()

		url, err := h.catalogService.UploadImage(r.Context(), header.Filename, file)
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusCreated, map[string]string{"url": url})
	}
}
