package handlers

import (
	"testing"

	"github.com/himalayan-adventures/trek-api/internal/models"
	"github.com/himalayan-adventures/trek-api/internal/store"
)

func TestCreateReviewRequiresCompletedBooking(t *testing.T) {
	s := store.NewMemStore()
	h := NewReviewHandler(s, newTestAuthHandler())
	ctx := authedCtx(1)

	completed := models.Booking{
		UserID: 1, TrekID: 1, BookingReference: "HIM1",
		PaymentStatus: "paid", BookingStatus: "completed",
	}
	s.CreateBooking(ctx, &completed, false)

	upcoming := models.Booking{
		UserID: 1, TrekID: 3, BookingReference: "HIM2",
		PaymentStatus: "paid", BookingStatus: "confirmed",
	}
	s.CreateBooking(ctx, &upcoming, false)

	t.Run("CompletedBooking", func(t *testing.T) {
		in := &CreateReviewInput{}
		in.Body.BookingID = completed.ID
		in.Body.Rating = 5
		in.Body.ReviewTitle = "Unforgettable"

		out, err := h.HandleCreateReview(ctx, in)
		if err != nil {
			t.Fatalf("HandleCreateReview failed: %v", err)
		}
		if out.Body.TrekID != 1 {
			t.Errorf("expected review bound to the booking's trek, got %d", out.Body.TrekID)
		}
		if !out.Body.IsPublished || out.Body.IsVerified {
			t.Errorf("unexpected review flags: %+v", out.Body)
		}

		reviews, _ := s.ListTrekReviews(ctx, 1)
		if len(reviews) != 1 {
			t.Errorf("expected 1 published review, got %d", len(reviews))
		}
	})

	t.Run("UpcomingBooking", func(t *testing.T) {
		in := &CreateReviewInput{}
		in.Body.BookingID = upcoming.ID
		in.Body.Rating = 4

		_, err := h.HandleCreateReview(ctx, in)
		if got := statusOf(t, err); got != 400 {
			t.Errorf("expected 400 for an uncompleted trek, got %d", got)
		}
	})

	t.Run("ForeignBooking", func(t *testing.T) {
		in := &CreateReviewInput{}
		in.Body.BookingID = completed.ID
		in.Body.Rating = 5

		_, err := h.HandleCreateReview(authedCtx(2), in)
		if got := statusOf(t, err); got != 404 {
			t.Errorf("expected 404 for another user's booking, got %d", got)
		}
	})
}

func TestProfileRoundTrip(t *testing.T) {
	s := store.NewMemStore()
	h := NewProfileHandler(s, newTestAuthHandler())
	ctx := authedCtx(1)

	// Before any save the dashboard gets a blank profile, not an error.
	out, err := h.HandleGetProfile(ctx, &GetProfileInput{})
	if err != nil {
		t.Fatalf("HandleGetProfile failed: %v", err)
	}
	if out.Body.UserID != 1 || out.Body.FullName != "" {
		t.Errorf("expected a blank profile, got %+v", out.Body)
	}

	update := &UpdateProfileInput{}
	update.Body.FullName = "Asha Rawat"
	update.Body.TrekkingExperience = "intermediate"
	update.Body.EmergencyContactName = "Ravi Rawat"
	if _, err := h.HandleUpdateProfile(ctx, update); err != nil {
		t.Fatalf("HandleUpdateProfile failed: %v", err)
	}

	out, err = h.HandleGetProfile(ctx, &GetProfileInput{})
	if err != nil {
		t.Fatalf("HandleGetProfile after save failed: %v", err)
	}
	if out.Body.FullName != "Asha Rawat" || out.Body.TrekkingExperience != "intermediate" {
		t.Errorf("saved profile not returned: %+v", out.Body)
	}
}
