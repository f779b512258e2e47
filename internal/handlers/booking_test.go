package handlers

import (
	"context"
	"strings"
	"testing"

	"github.com/himalayan-adventures/trek-api/internal/models"
	"github.com/himalayan-adventures/trek-api/internal/payment"
	"github.com/himalayan-adventures/trek-api/internal/store"
)

func checkoutInput() *CheckoutInput {
	in := &CheckoutInput{}
	in.Body.TrekID = 1
	in.Body.TrekStartDate = "2026-09-10"
	in.Body.TrekEndDate = "2026-09-16"
	in.Body.Participants = []models.Participant{
		{Name: "Asha Rawat", Age: 29, Gender: "female", EmergencyContact: "Ravi Rawat", EmergencyPhone: "+91 98100 00001"},
		{Name: "Dev Rawat", Age: 31, Gender: "male", EmergencyContact: "Ravi Rawat", EmergencyPhone: "+91 98100 00001"},
	}
	in.Body.PackageType = "premium"
	in.Body.AddOns = []string{"insurance"}
	in.Body.Payment.Method = "card"
	in.Body.Payment.Email = "asha@example.com"
	in.Body.Payment.Phone = "+91 98100 00001"
	return in
}

func TestCheckoutCreatesBookingAndClearsCart(t *testing.T) {
	s := store.NewMemStore()
	ctx := authedCtx(1)

	item := models.CartItem{UserID: 1, TrekID: 1, SelectedDate: "2026-09-10", ParticipantsCount: 2, PackageType: "premium", PriceSnapshot: 31500}
	if _, err := s.UpsertCartItem(ctx, &item); err != nil {
		t.Fatalf("seeding cart failed: %v", err)
	}

	gateway := payment.NewSimulator(0, 1.0)
	h := NewBookingHandler(nil, s, newTestAuthHandler(), gateway, nil, nil)

	out, err := h.HandleCheckout(ctx, checkoutInput())
	if err != nil {
		t.Fatalf("HandleCheckout failed: %v", err)
	}

	// Chandratal premium with insurance for two: (25000+5000+1500) x 2.
	if out.Body.TotalAmount != 63000 {
		t.Errorf("expected total 63000, got %.0f", out.Body.TotalAmount)
	}
	if out.Body.BaseAmount != 60000 || out.Body.AddOnsAmount != 3000 {
		t.Errorf("unexpected breakdown: base=%.0f addons=%.0f", out.Body.BaseAmount, out.Body.AddOnsAmount)
	}
	if !strings.HasPrefix(out.Body.BookingReference, "HIM") {
		t.Errorf("unexpected booking reference %q", out.Body.BookingReference)
	}
	if !strings.HasPrefix(out.Body.PaymentID, "PAY_") {
		t.Errorf("unexpected payment id %q", out.Body.PaymentID)
	}
	if out.Body.BookingStatus != "confirmed" || out.Body.PaymentStatus != "paid" {
		t.Errorf("unexpected statuses: %s/%s", out.Body.BookingStatus, out.Body.PaymentStatus)
	}

	bookings, err := s.ListBookings(ctx, 1)
	if err != nil {
		t.Fatalf("ListBookings failed: %v", err)
	}
	if len(bookings) != 1 {
		t.Fatalf("expected exactly 1 booking, got %d", len(bookings))
	}
	if bookings[0].TotalAmount != out.Body.TotalAmount {
		t.Errorf("persisted total %.0f differs from response %.0f", bookings[0].TotalAmount, out.Body.TotalAmount)
	}

	items, _ := s.ListCartItems(ctx, 1)
	if len(items) != 0 {
		t.Errorf("expected cart cleared after checkout, found %d rows", len(items))
	}
}

func TestCheckoutDeclinedLeavesEverythingUntouched(t *testing.T) {
	s := store.NewMemStore()
	ctx := authedCtx(1)

	item := models.CartItem{UserID: 1, TrekID: 1, SelectedDate: "2026-09-10", ParticipantsCount: 2, PackageType: "premium", PriceSnapshot: 31500}
	s.UpsertCartItem(ctx, &item)

	gateway := payment.NewSimulator(0, 0)
	h := NewBookingHandler(nil, s, newTestAuthHandler(), gateway, nil, nil)

	_, err := h.HandleCheckout(ctx, checkoutInput())
	if got := statusOf(t, err); got != 402 {
		t.Fatalf("expected 402 for declined payment, got %d", got)
	}

	bookings, _ := s.ListBookings(ctx, 1)
	if len(bookings) != 0 {
		t.Errorf("declined payment must not create a booking, got %d", len(bookings))
	}
	items, _ := s.ListCartItems(ctx, 1)
	if len(items) != 1 {
		t.Errorf("declined payment must leave the cart intact, got %d rows", len(items))
	}
}

func TestCheckoutRejectsIncompleteDraft(t *testing.T) {
	h := NewBookingHandler(nil, store.NewMemStore(), newTestAuthHandler(), payment.NewSimulator(0, 1.0), nil, nil)
	ctx := authedCtx(1)

	t.Run("MissingParticipantName", func(t *testing.T) {
		in := checkoutInput()
		in.Body.Participants[0].Name = ""
		_, err := h.HandleCheckout(ctx, in)
		if got := statusOf(t, err); got != 400 {
			t.Errorf("expected 400, got %d", got)
		}
	})

	t.Run("EndBeforeStart", func(t *testing.T) {
		in := checkoutInput()
		in.Body.TrekEndDate = "2026-09-01"
		_, err := h.HandleCheckout(ctx, in)
		if got := statusOf(t, err); got != 400 {
			t.Errorf("expected 400, got %d", got)
		}
	})

	t.Run("UnknownAddOn", func(t *testing.T) {
		in := checkoutInput()
		in.Body.AddOns = []string{"helicopter"}
		_, err := h.HandleCheckout(ctx, in)
		if got := statusOf(t, err); got != 400 {
			t.Errorf("expected 400, got %d", got)
		}
	})
}

func TestQuoteMatchesCheckoutTotal(t *testing.T) {
	s := store.NewMemStore()
	h := NewBookingHandler(nil, s, newTestAuthHandler(), payment.NewSimulator(0, 1.0), nil, nil)

	quoteIn := &QuoteInput{}
	quoteIn.Body.TrekID = 1
	quoteIn.Body.PackageType = "premium"
	quoteIn.Body.AddOns = []string{"insurance"}
	quoteIn.Body.ParticipantsCount = 2

	quote, err := h.HandleQuote(context.Background(), quoteIn)
	if err != nil {
		t.Fatalf("HandleQuote failed: %v", err)
	}

	out, err := h.HandleCheckout(authedCtx(1), checkoutInput())
	if err != nil {
		t.Fatalf("HandleCheckout failed: %v", err)
	}
	if out.Body.TotalAmount != quote.Body.TotalAmount {
		t.Errorf("checkout total %.0f differs from quote %.0f", out.Body.TotalAmount, quote.Body.TotalAmount)
	}
}

func TestCancelBookingIsIdempotent(t *testing.T) {
	s := store.NewMemStore()
	ctx := authedCtx(1)
	h := NewBookingHandler(nil, s, newTestAuthHandler(), payment.NewSimulator(0, 1.0), nil, nil)

	out, err := h.HandleCheckout(ctx, checkoutInput())
	if err != nil {
		t.Fatalf("HandleCheckout failed: %v", err)
	}

	cancel := &CancelBookingInput{ID: out.Body.BookingID}
	cancel.Body.Reason = "change of plans"
	first, err := h.HandleCancelBooking(ctx, cancel)
	if err != nil {
		t.Fatalf("HandleCancelBooking failed: %v", err)
	}
	if first.Body.BookingStatus != "cancelled" || first.Body.CancellationReason != "change of plans" {
		t.Errorf("unexpected cancellation state: %+v", first.Body)
	}

	cancel.Body.Reason = "second attempt"
	second, err := h.HandleCancelBooking(ctx, cancel)
	if err != nil {
		t.Fatalf("repeat HandleCancelBooking failed: %v", err)
	}
	if second.Body.CancellationReason != "change of plans" {
		t.Errorf("repeat cancellation must not overwrite the reason, got %q", second.Body.CancellationReason)
	}
}
