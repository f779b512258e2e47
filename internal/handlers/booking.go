package handlers

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/himalayan-adventures/trek-api/internal/auth"
	"github.com/himalayan-adventures/trek-api/internal/booking"
	"github.com/himalayan-adventures/trek-api/internal/metrics"
	"github.com/himalayan-adventures/trek-api/internal/models"
	"github.com/himalayan-adventures/trek-api/internal/notifier"
	"github.com/himalayan-adventures/trek-api/internal/payment"
	"github.com/himalayan-adventures/trek-api/internal/store"
	"gorm.io/gorm"
)

type BookingHandler struct {
	db          *gorm.DB
	store       store.Store
	authHandler *auth.AuthHandler
	gateway     payment.Gateway
	notifier    notifier.Notifier
	metrics     *metrics.Metrics
}

func NewBookingHandler(db *gorm.DB, s store.Store, authHandler *auth.AuthHandler, gateway payment.Gateway, n notifier.Notifier, m *metrics.Metrics) *BookingHandler {
	return &BookingHandler{db: db, store: s, authHandler: authHandler, gateway: gateway, notifier: n, metrics: m}
}

type CheckoutInput struct {
	auth.AuthInput
	Body struct {
		TrekID          uint                 `json:"trek_id" required:"true"`
		TrekStartDate   string               `json:"trek_start_date" required:"true" doc:"YYYY-MM-DD"`
		TrekEndDate     string               `json:"trek_end_date" required:"true" doc:"YYYY-MM-DD"`
		Participants    []models.Participant `json:"participants" required:"true"`
		PackageType     string               `json:"package_type" enum:"standard,premium,luxury" required:"true"`
		AddOns          []string             `json:"add_ons"`
		SpecialRequests string               `json:"special_requests"`
		Payment         struct {
			Method string `json:"method" enum:"card,upi,netbanking" required:"true"`
			Email  string `json:"email" format:"email" required:"true"`
			Phone  string `json:"phone" required:"true"`
		} `json:"payment" required:"true"`
	}
}

type CheckoutOutput struct {
	Body struct {
		BookingID        uint    `json:"booking_id"`
		BookingReference string  `json:"booking_reference"`
		PaymentID        string  `json:"payment_id"`
		BaseAmount       float64 `json:"base_amount"`
		AddOnsAmount     float64 `json:"add_ons_amount"`
		TotalAmount      float64 `json:"total_amount"`
		BookingStatus    string  `json:"booking_status"`
		PaymentStatus    string  `json:"payment_status"`
	}
}

// HandleCheckout validates the accumulated booking draft, runs the payment
// simulation, and on success creates exactly one booking and clears the
// user's cart in the same unit of work. A declined payment leaves everything
// untouched so the client can return to the details step and retry.
func (h *BookingHandler) HandleCheckout(ctx context.Context, input *CheckoutInput) (*CheckoutOutput, error) {
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

	draft := booking.Draft{
		Trek:            trek,
		StartDate:       input.Body.TrekStartDate,
		EndDate:         input.Body.TrekEndDate,
		Participants:    input.Body.Participants,
		PackageType:     input.Body.PackageType,
		AddOns:          input.Body.AddOns,
		SpecialRequests: input.Body.SpecialRequests,
	}
	if step, err := booking.Validate(&draft); err != nil {
		return nil, huma.Error400BadRequest(fmt.Sprintf("Incomplete booking details (%s step): %v", step, err))
	}

	quote := booking.QuoteDraft(&draft)

	result, err := h.gateway.Process(ctx, payment.Request{
		Amount: quote.TotalAmount,
		Method: payment.Method(input.Body.Payment.Method),
		Email:  input.Body.Payment.Email,
		Phone:  input.Body.Payment.Phone,
	})
	if errors.Is(err, payment.ErrDeclined) {
		h.countPayment("declined")
		return nil, huma.NewError(http.StatusPaymentRequired, "Payment failed due to network issues. Please try again.")
	}
	if err != nil {
		h.countPayment("error")
		return nil, huma.Error500InternalServerError("Payment processing failed: " + err.Error())
	}
	h.countPayment("success")

	newBooking := models.Booking{
		UserID:            userID,
		TrekID:            trek.ID,
		BookingReference:  newBookingReference(),
		BookingDate:       time.Now(),
		TrekStartDate:     draft.StartDate,
		TrekEndDate:       draft.EndDate,
		Participants:      draft.Participants,
		ParticipantsCount: len(draft.Participants),
		PackageType:       draft.PackageType,
		AddOns:            draft.AddOns,
		BaseAmount:        quote.BaseAmount,
		AddOnsAmount:      quote.AddOnsAmount,
		TotalAmount:       quote.TotalAmount,
		PaymentStatus:     "paid",
		PaymentID:         result.PaymentID,
		PaymentGateway:    result.Gateway,
		BookingStatus:     "confirmed",
		SpecialRequests:   draft.SpecialRequests,
	}

	if err := h.store.CreateBooking(ctx, &newBooking, true); err != nil {
		return nil, huma.Error500InternalServerError("Failed to create booking: " + err.Error())
	}
	if h.metrics != nil {
		h.metrics.BookingsCreated.Inc()
	}

	h.notifyBooking(userID, newBooking, trek)

	res := &CheckoutOutput{}
	res.Body.BookingID = newBooking.ID
	res.Body.BookingReference = newBooking.BookingReference
	res.Body.PaymentID = newBooking.PaymentID
	res.Body.BaseAmount = newBooking.BaseAmount
	res.Body.AddOnsAmount = newBooking.AddOnsAmount
	res.Body.TotalAmount = newBooking.TotalAmount
	res.Body.BookingStatus = newBooking.BookingStatus
	res.Body.PaymentStatus = newBooking.PaymentStatus
	return res, nil
}

func (h *BookingHandler) countPayment(outcome string) {
	if h.metrics != nil {
		h.metrics.PaymentsTotal.WithLabelValues(outcome).Inc()
	}
}

func (h *BookingHandler) notifyBooking(userID uint, b models.Booking, trek *models.Trek) {
	if h.notifier == nil {
		return
	}
	var user models.User
	if err := h.db.First(&user, userID).Error; err != nil {
		log.Printf("Failed to load user %d for notification: %v", userID, err)
		return
	}
	b.Trek = *trek
	if err := h.notifier.NotifyBooking(user, b); err != nil {
		log.Printf("Failed to send booking notification: %v", err)
	}
}

func newBookingReference() string {
	return fmt.Sprintf("HIM%d", time.Now().UnixMilli())
}

type QuoteInput struct {
	Body struct {
		TrekID            uint     `json:"trek_id" required:"true"`
		PackageType       string   `json:"package_type" enum:"standard,premium,luxury" required:"true"`
		AddOns            []string `json:"add_ons"`
		ParticipantsCount int      `json:"participants_count" minimum:"1" maximum:"12" required:"true"`
	}
}

type QuoteOutput struct {
	Body booking.Quote
}

// HandleQuote prices a selection without creating anything; the review step
// displays this breakdown and checkout must persist the same numbers.
func (h *BookingHandler) HandleQuote(ctx context.Context, input *QuoteInput) (*QuoteOutput, error) {
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

	quote := booking.PriceQuote(trek.BasePrice, input.Body.PackageType, input.Body.AddOns, input.Body.ParticipantsCount)
	return &QuoteOutput{Body: quote}, nil
}

type ListBookingsInput struct {
	auth.AuthInput
}

type ListBookingsOutput struct {
	Body struct {
		Bookings []models.Booking `json:"bookings"`
	}
}

func (h *BookingHandler) HandleListBookings(ctx context.Context, input *ListBookingsInput) (*ListBookingsOutput, error) {
	userID, err := h.authHandler.Authorize(ctx, input.Cookie)
	if err != nil {
		return nil, err
	}

	bookings, err := h.store.ListBookings(ctx, userID)
	if err != nil {
		return nil, huma.Error500InternalServerError("Failed to list bookings: " + err.Error())
	}

	res := &ListBookingsOutput{}
	res.Body.Bookings = bookings
	return res, nil
}

type GetBookingInput struct {
	auth.AuthInput
	ID uint `path:"id"`
}

type GetBookingOutput struct {
	Body models.Booking
}

func (h *BookingHandler) HandleGetBooking(ctx context.Context, input *GetBookingInput) (*GetBookingOutput, error) {
	userID, err := h.authHandler.Authorize(ctx, input.Cookie)
	if err != nil {
		return nil, err
	}

	b, err := h.store.GetBooking(ctx, userID, input.ID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, huma.Error404NotFound("Booking not found")
	}
	if err != nil {
		return nil, huma.Error500InternalServerError("Failed to load booking: " + err.Error())
	}
	return &GetBookingOutput{Body: *b}, nil
}

type CancelBookingInput struct {
	auth.AuthInput
	ID   uint `path:"id"`
	Body struct {
		Reason string `json:"reason"`
	}
}

type CancelBookingOutput struct {
	Body models.Booking
}

func (h *BookingHandler) HandleCancelBooking(ctx context.Context, input *CancelBookingInput) (*CancelBookingOutput, error) {
	userID, err := h.authHandler.Authorize(ctx, input.Cookie)
	if err != nil {
		return nil, err
	}

	b, err := h.store.CancelBooking(ctx, userID, input.ID, input.Body.Reason)
	if errors.Is(err, store.ErrNotFound) {
		return nil, huma.Error404NotFound("Booking not found")
	}
	if err != nil {
		return nil, huma.Error500InternalServerError("Failed to cancel booking: " + err.Error())
	}

	if h.notifier != nil {
		var user models.User
		if err := h.db.First(&user, userID).Error; err == nil {
			if err := h.notifier.NotifyCancellation(user, *b); err != nil {
				log.Printf("Failed to send cancellation notification: %v", err)
			}
		}
	}

	return &CancelBookingOutput{Body: *b}, nil
}
