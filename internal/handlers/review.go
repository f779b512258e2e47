package handlers

import (
	"context"
	"errors"

	"github.com/danielgtaylor/huma/v2"
	"github.com/himalayan-adventures/trek-api/internal/auth"
	"github.com/himalayan-adventures/trek-api/internal/models"
	"github.com/himalayan-adventures/trek-api/internal/store"
)

type ReviewHandler struct {
	store       store.Store
	authHandler *auth.AuthHandler
}

func NewReviewHandler(s store.Store, authHandler *auth.AuthHandler) *ReviewHandler {
	return &ReviewHandler{store: s, authHandler: authHandler}
}

type CreateReviewInput struct {
	auth.AuthInput
	Body struct {
		BookingID   uint     `json:"booking_id" required:"true"`
		Rating      int      `json:"rating" minimum:"1" maximum:"5" required:"true"`
		ReviewTitle string   `json:"review_title"`
		ReviewText  string   `json:"review_text"`
		Photos      []string `json:"photos"`
	}
}

type CreateReviewOutput struct {
	Body models.Review
}

// HandleCreateReview accepts a review against one of the author's own
// completed bookings; the trek is derived from the booking.
func (h *ReviewHandler) HandleCreateReview(ctx context.Context, input *CreateReviewInput) (*CreateReviewOutput, error) {
	userID, err := h.authHandler.Authorize(ctx, input.Cookie)
	if err != nil {
		return nil, err
	}

	b, err := h.store.GetBooking(ctx, userID, input.Body.BookingID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, huma.Error404NotFound("Booking not found")
	}
	if err != nil {
		return nil, huma.Error500InternalServerError("Failed to load booking: " + err.Error())
	}
	if b.BookingStatus != "completed" {
		return nil, huma.Error400BadRequest("Reviews can only be written for completed treks")
	}

	review := models.Review{
		UserID:      userID,
		TrekID:      b.TrekID,
		BookingID:   b.ID,
		Rating:      input.Body.Rating,
		ReviewTitle: input.Body.ReviewTitle,
		ReviewText:  input.Body.ReviewText,
		Photos:      input.Body.Photos,
		IsPublished: true,
		IsVerified:  false,
	}
	if err := h.store.CreateReview(ctx, &review); err != nil {
		return nil, huma.Error500InternalServerError("Failed to create review: " + err.Error())
	}

	return &CreateReviewOutput{Body: review}, nil
}
