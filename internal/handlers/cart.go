package handlers

import (
	"context"
	"errors"

	"github.com/danielgtaylor/huma/v2"
	"github.com/himalayan-adventures/trek-api/internal/auth"
	"github.com/himalayan-adventures/trek-api/internal/booking"
	"github.com/himalayan-adventures/trek-api/internal/metrics"
	"github.com/himalayan-adventures/trek-api/internal/models"
	"github.com/himalayan-adventures/trek-api/internal/store"
)

type CartHandler struct {
	store       store.Store
	authHandler *auth.AuthHandler
	metrics     *metrics.Metrics
}

func NewCartHandler(s store.Store, authHandler *auth.AuthHandler, m *metrics.Metrics) *CartHandler {
	return &CartHandler{store: s, authHandler: authHandler, metrics: m}
}

func (h *CartHandler) countOp(op string) {
	if h.metrics != nil {
		h.metrics.CartOps.WithLabelValues(op).Inc()
	}
}

type CartOutput struct {
	Body struct {
		Items       []models.CartItem `json:"items"`
		TotalItems  int               `json:"total_items"`
		TotalAmount float64           `json:"total_amount"`
	}
}

func (h *CartHandler) cartResponse(ctx context.Context, userID uint) (*CartOutput, error) {
	items, err := h.store.ListCartItems(ctx, userID)
	if err != nil {
		return nil, huma.Error500InternalServerError("Failed to load cart: " + err.Error())
	}

	res := &CartOutput{}
	res.Body.Items = items
	res.Body.TotalItems = len(items)
	res.Body.TotalAmount = store.CartTotal(items)
	return res, nil
}

type GetCartInput struct {
	auth.AuthInput
}

func (h *CartHandler) HandleGetCart(ctx context.Context, input *GetCartInput) (*CartOutput, error) {
	userID, err := h.authHandler.Authorize(ctx, input.Cookie)
	if err != nil {
		return nil, err
	}
	return h.cartResponse(ctx, userID)
}

type AddToCartInput struct {
	auth.AuthInput
	Body struct {
		TrekID            uint     `json:"trek_id" required:"true"`
		SelectedDate      string   `json:"selected_date" required:"true" doc:"Trek start date, YYYY-MM-DD"`
		ParticipantsCount int      `json:"participants_count" minimum:"1" maximum:"12" required:"true"`
		PackageType       string   `json:"package_type" enum:"standard,premium,luxury" required:"true"`
		AddOns            []string `json:"add_ons"`
	}
}

// HandleAddToCart inserts a cart row, or updates the existing row for the
// same (trek, date) instead of duplicating it. The per-person price snapshot
// is captured here and never recomputed afterwards.
func (h *CartHandler) HandleAddToCart(ctx context.Context, input *AddToCartInput) (*CartOutput, error) {
	userID, err := h.authHandler.Authorize(ctx, input.Cookie)
	if err != nil {
		return nil, err
	}

	trek, err := h.store.GetTrek(ctx, input.Body.TrekID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, huma.Error404NotFound("Trek not found")
	}
	if err != nil {
		return nil, huma.Error500InternalServerError("Failed to load trek: " + err.Error())
	}

	for _, id := range input.Body.AddOns {
		if booking.AddOnByID(id) == nil {
			return nil, huma.Error400BadRequest("Unknown add-on: " + id)
		}
	}

	quote := booking.PriceQuote(trek.BasePrice, input.Body.PackageType, input.Body.AddOns, 1)
	item := models.CartItem{
		UserID:            userID,
		TrekID:            trek.ID,
		SelectedDate:      input.Body.SelectedDate,
		ParticipantsCount: input.Body.ParticipantsCount,
		PackageType:       input.Body.PackageType,
		AddOns:            input.Body.AddOns,
		PriceSnapshot:     quote.PerPerson,
	}

	if _, err := h.store.UpsertCartItem(ctx, &item); err != nil {
		return nil, huma.Error500InternalServerError("Failed to add item to cart: " + err.Error())
	}
	h.countOp("add")

	return h.cartResponse(ctx, userID)
}

type UpdateCartItemInput struct {
	auth.AuthInput
	ID   uint `path:"id"`
	Body struct {
		ParticipantsCount *int      `json:"participants_count,omitempty" minimum:"1" maximum:"12"`
		PackageType       *string   `json:"package_type,omitempty" enum:"standard,premium,luxury"`
		AddOns            *[]string `json:"add_ons,omitempty"`
		SelectedDate      *string   `json:"selected_date,omitempty"`
	}
}

func (h *CartHandler) HandleUpdateCartItem(ctx context.Context, input *UpdateCartItemInput) (*CartOutput, error) {
	userID, err := h.authHandler.Authorize(ctx, input.Cookie)
	if err != nil {
		return nil, err
	}

	if input.Body.AddOns != nil {
		for _, id := range *input.Body.AddOns {
			if booking.AddOnByID(id) == nil {
				return nil, huma.Error400BadRequest("Unknown add-on: " + id)
			}
		}
	}

	_, err = h.store.UpdateCartItem(ctx, userID, input.ID, store.CartItemUpdate{
		ParticipantsCount: input.Body.ParticipantsCount,
		PackageType:       input.Body.PackageType,
		AddOns:            input.Body.AddOns,
		SelectedDate:      input.Body.SelectedDate,
	})
	if errors.Is(err, store.ErrNotFound) {
		return nil, huma.Error404NotFound("Cart item not found")
	}
	if err != nil {
		return nil, huma.Error500InternalServerError("Failed to update cart item: " + err.Error())
	}
	h.countOp("update")

	return h.cartResponse(ctx, userID)
}

type RemoveCartItemInput struct {
	auth.AuthInput
	ID uint `path:"id"`
}

func (h *CartHandler) HandleRemoveCartItem(ctx context.Context, input *RemoveCartItemInput) (*CartOutput, error) {
	userID, err := h.authHandler.Authorize(ctx, input.Cookie)
	if err != nil {
		return nil, err
	}

	err = h.store.RemoveCartItem(ctx, userID, input.ID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, huma.Error404NotFound("Cart item not found")
	}
	if err != nil {
		return nil, huma.Error500InternalServerError("Failed to remove cart item: " + err.Error())
	}
	h.countOp("remove")

	return h.cartResponse(ctx, userID)
}

type ClearCartInput struct {
	auth.AuthInput
}

func (h *CartHandler) HandleClearCart(ctx context.Context, input *ClearCartInput) (*CartOutput, error) {
	userID, err := h.authHandler.Authorize(ctx, input.Cookie)
	if err != nil {
		return nil, err
	}

	if err := h.store.ClearCart(ctx, userID); err != nil {
		return nil, huma.Error500InternalServerError("Failed to clear cart: " + err.Error())
	}
	h.countOp("clear")

	return h.cartResponse(ctx, userID)
}
