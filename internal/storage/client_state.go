package storage

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aaravmahajanofficial/retail-inventory-admin/internal/errors"
	"github.com/aaravmahajanofficial/retail-inventory-admin/internal/models"
	"github.com/go-playground/validator/v10"
)

// ClientState is the typed view over the cart, theme and token keys.
type ClientState struct {
	store     Store
	validator *validator.Validate
}

func NewClientState(store Store) *ClientState {
	return &ClientState{store: store, validator: validator.New()}
}

func (c *ClientState) Token(ctx context.Context) (string, error) {

	var token string

	found, err := c.store.GetItem(ctx, TokenKey, &token)
	if err != nil {
		return "", errors.StorageError("Failed to read auth token").WithError(err)
	}

	if !found {
		return "", nil
	}

	return token, nil
}

func (c *ClientState) SetToken(ctx context.Context, token string) error {

	if err := c.store.SetItem(ctx, TokenKey, token); err != nil {
		return errors.StorageError("Failed to save auth token").WithError(err)
	}

	return nil
}

func (c *ClientState) ClearToken(ctx context.Context) error {

	if err := c.store.RemoveItem(ctx, TokenKey); err != nil {
		return errors.StorageError("Failed to clear auth token").WithError(err)
	}

	return nil
}

// Theme falls back to light when nothing valid is stored.
func (c *ClientState) Theme(ctx context.Context) models.Theme {

	var theme models.Theme

	found, err := c.store.GetItem(ctx, ThemeKey, &theme)
	if err != nil {
		slog.Warn("Failed to read theme preference", slog.String("error", err.Error()))
		return models.ThemeLight
	}

	if !found || (theme != models.ThemeLight && theme != models.ThemeDark) {
		return models.ThemeLight
	}

	return theme
}

func (c *ClientState) SetTheme(ctx context.Context, theme models.Theme) error {

	if theme != models.ThemeLight && theme != models.ThemeDark {
		return errors.AddValidationError("theme", "must be light or dark")
	}

	if err := c.store.SetItem(ctx, ThemeKey, theme); err != nil {
		return errors.StorageError("Failed to save theme preference").WithError(err)
	}

	return nil
}

func (c *ClientState) LoadCart(ctx context.Context) (*models.Cart, error) {

	cart := &models.Cart{}

	found, err := c.store.GetItem(ctx, CartKey, cart)
	if err != nil {
		return nil, errors.StorageError("Failed to read cart").WithError(err)
	}

	if !found || cart.Items == nil {
		cart.Items = []models.CartItem{}
	}

	return cart, nil
}

func (c *ClientState) SaveCart(ctx context.Context, cart *models.Cart) error {

	if err := c.store.SetItem(ctx, CartKey, cart); err != nil {
		return errors.StorageError("Failed to save cart").WithError(err)
	}

	return nil
}

// AddToCart merges quantities for the same product and size.
func (c *ClientState) AddToCart(ctx context.Context, item models.CartItem) (*models.Cart, error) {

	if err := c.validator.Struct(item); err != nil {
		return nil, errors.ValidationError("Invalid cart item").WithError(err)
	}

	if item.Size != "" && !item.Size.Valid() {
		return nil, errors.AddValidationError("size", fmt.Sprintf("unknown size %q", item.Size))
	}

	cart, err := c.LoadCart(ctx)
	if err != nil {
		return nil, err
	}

	merged := false

	for i := range cart.Items {
		if cart.Items[i].ProductID == item.ProductID && cart.Items[i].Size == item.Size {
			cart.Items[i].Quantity += item.Quantity
			cart.Items[i].UnitPrice = item.UnitPrice
			merged = true
			break
		}
	}

	if !merged {
		cart.Items = append(cart.Items, item)
	}

	if err := c.SaveCart(ctx, cart); err != nil {
		return nil, err
	}

	return cart, nil
}

func (c *ClientState) RemoveFromCart(ctx context.Context, productID int64, size models.Size) (*models.Cart, error) {

	cart, err := c.LoadCart(ctx)
	if err != nil {
		return nil, err
	}

	kept := cart.Items[:0]

	for _, item := range cart.Items {
		if item.ProductID == productID && item.Size == size {
			continue
		}

		kept = append(kept, item)
	}

	cart.Items = kept

	if err := c.SaveCart(ctx, cart); err != nil {
		return nil, err
	}

	return cart, nil
}

func (c *ClientState) ClearCart(ctx context.Context) error {

	if err := c.store.RemoveItem(ctx, CartKey); err != nil {
		return errors.StorageError("Failed to clear cart").WithError(err)
	}

	return nil
}
