package handlers

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/aaravmahajanofficial/retail-inventory-admin/internal/api/middleware"
	"github.com/aaravmahajanofficial/retail-inventory-admin/internal/errors"
	"github.com/aaravmahajanofficial/retail-inventory-admin/internal/models"
	"github.com/aaravmahajanofficial/retail-inventory-admin/internal/utils"
	"github.com/aaravmahajanofficial/retail-inventory-admin/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

// ClientState is the persisted cart, theme and session token.
type ClientState interface {
	Theme(ctx context.Context) models.Theme
	SetTheme(ctx context.Context, theme models.Theme) error
	LoadCart(ctx context.Context) (*models.Cart, error)
	AddToCart(ctx context.Context, item models.CartItem) (*models.Cart, error)
	RemoveFromCart(ctx context.Context, productID int64, size models.Size) (*models.Cart, error)
	ClearCart(ctx context.Context) error
	SetToken(ctx context.Context, token string) error
	ClearToken(ctx context.Context) error
}

type ThemeRequest struct {
	Theme models.Theme `json:"theme" validate:"required,oneof=light dark"`
}

type SessionRequest struct {
	Token string `json:"token" validate:"required"`
}

type SessionHandler struct {
	state     ClientState
	validator *validator.Validate
}

func NewSessionHandler(state ClientState) *SessionHandler {
	return &SessionHandler{state: state, validator: validator.New()}
}

// GetTheme godoc
//	@Summary		Get the theme preference
//	@Description	Returns the stored theme, falling back to light.
//	@Tags			Preferences
//	@Produce		json
//	@Success		200	{object}	ThemeRequest			"Current theme"
//	@Failure		401	{object}	response.ErrorResponse	"Authentication required"
//	@Security		BearerAuth
//	@Router			/admin/preferences/theme [get]
func (h *SessionHandler) GetTheme() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response.Success(w, http.StatusOK, ThemeRequest{Theme: h.state.Theme(r.Context())})
	}
}

// SetTheme godoc
//	@Summary		Set the theme preference
//	@Tags			Preferences
//	@Accept			json
//	@Produce		json
//	@Param			theme	body		ThemeRequest			true	"light or dark"
//	@Success		200		{object}	ThemeRequest			"Saved theme"
//	@Failure		400		{object}	response.ErrorResponse	"Unknown theme"
//	@Failure		500		{object}	response.ErrorResponse	"Storage failure"
//	@Security		BearerAuth
//	@Router			/admin/preferences/theme [put]
func (h *SessionHandler) SetTheme() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		var req ThemeRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		if err := h.state.SetTheme(r.Context(), req.Theme); err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, req)
	}
}

// GetCart godoc
//	@Summary	Get the cart
//	@Tags		Cart
//	@Produce	json
//	@Success	200	{object}	models.Cart				"Stored cart, empty when nothing is saved"
//	@Failure	500	{object}	response.ErrorResponse	"Storage failure"
//	@Security	BearerAuth
//	@Router		/admin/cart [get]
func (h *SessionHandler) GetCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		cart, err := h.state.LoadCart(r.Context())
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, cart)
	}
}

// AddCartItem godoc
//	@Summary		Add an item to the cart
//	@Description	Quantities merge with an existing line for the same product and size.
//	@Tags			Cart
//	@Accept			json
//	@Produce		json
//	@Param			item	body		models.CartItem			true	"Cart line"
//	@Success		200		{object}	models.Cart				"Updated cart"
//	@Failure		400		{object}	response.ErrorResponse	"Invalid item or unknown size"
//	@Failure		500		{object}	response.ErrorResponse	"Storage failure"
//	@Security		BearerAuth
//	@Router			/admin/cart/items [post]
func (h *SessionHandler) AddCartItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var item models.CartItem
		if err := utils.DecodeJSONBody(r.Body, &item); err != nil {
			logger.Warn("Invalid cart item input", slog.String("error", err.Error()))
			response.Error(w, errors.BadRequestError("Invalid request body").WithError(err))
			return
		}

		item.Name = utils.CleanText(item.Name)

		cart, err := h.state.AddToCart(r.Context(), item)
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, cart)
	}
}

// RemoveCartItem godoc
//	@Summary	Remove a cart line
//	@Tags		Cart
//	@Produce	json
//	@Param		id		path		int						true	"Product ID"
//	@Param		size	query		string					false	"Size of the line, empty for unsized products"
//	@Success	200		{object}	models.Cart				"Updated cart"
//	@Failure	400		{object}	response.ErrorResponse	"Invalid product ID or size"
//	@Failure	500		{object}	response.ErrorResponse	"Storage failure"
//	@Security	BearerAuth
//	@Router		/admin/cart/items/{id} [delete]
func (h *SessionHandler) RemoveCartItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		id, err := utils.ParseID(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		size := models.Size(r.URL.Query().Get("size"))
		if size != "" && !size.Valid() {
			response.Error(w, errors.BadRequestError(fmt.Sprintf("Unknown size %q", size)))
			return
		}

		cart, err := h.state.RemoveFromCart(r.Context(), id, size)
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, cart)
	}
}

// ClearCart godoc
//	@Summary	Empty the cart
//	@Tags		Cart
//	@Success	204	"Cart cleared"
//	@Failure	500	{object}	response.ErrorResponse	"Storage failure"
//	@Security	BearerAuth
//	@Router		/admin/cart [delete]
func (h *SessionHandler) ClearCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		if err := h.state.ClearCart(r.Context()); err != nil {
			response.Error(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// SetSession godoc
//	@Summary		Store the API session token
//	@Description	Replaces the bearer token sent to the retail API and the realtime channel.
//	@Tags			Session
//	@Accept			json
//	@Param			session	body	SessionRequest	true	"Token issued by the retail API"
//	@Success		204		"Token stored"
//	@Failure		400		{object}	response.ErrorResponse	"Missing token"
//	@Failure		500		{object}	response.ErrorResponse	"Storage failure"
//	@Security		BearerAuth
//	@Router			/admin/session [put]
func (h *SessionHandler) SetSession() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		var req SessionRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		if err := h.state.SetToken(r.Context(), req.Token); err != nil {
			response.Error(w, err)
			return
		}

		middleware.LoggerFromContext(r.Context()).Info("API session token replaced")

		w.WriteHeader(http.StatusNoContent)
	}
}

// ClearSession godoc
//	@Summary		Log out of the retail API
//	@Description	Removes the stored token; later API calls go out unauthenticated.
//	@Tags			Session
//	@Success		204	"Token cleared"
//	@Failure		500	{object}	response.ErrorResponse	"Storage failure"
//	@Security		BearerAuth
//	@Router			/admin/session [delete]
func (h *SessionHandler) ClearSession() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		if err := h.state.ClearToken(r.Context()); err != nil {
			response.Error(w, err)
			return
		}

		middleware.LoggerFromContext(r.Context()).Info("API session token cleared")

		w.WriteHeader(http.StatusNoContent)
	}
}
