package payment

import (
	"context"
	"errors"
	"math/rand"
	"strings"
	"testing"
	"time"
)

func TestProcessAlwaysSucceedsAtFullRate(t *testing.T) {
	fixed := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)
	sim := NewSimulator(0, 1.0, WithClock(func() time.Time { return fixed }))

	result, err := sim.Process(context.Background(), Request{Amount: 63000, Method: MethodCard})
	if err != nil {
		t.Fatalf("Process returned error: %v", err)
	}

	if !strings.HasPrefix(result.PaymentID, "PAY_") {
		t.Errorf("expected PAY_ prefix, got %q", result.PaymentID)
	}
	if result.Amount != 63000 {
		t.Errorf("expected amount 63000, got %.0f", result.Amount)
	}
	if !result.PaidAt.Equal(fixed) {
		t.Errorf("expected paid-at %v, got %v", fixed, result.PaidAt)
	}
}

func TestProcessAlwaysDeclinesAtZeroRate(t *testing.T) {
	sim := NewSimulator(0, 0)

	_, err := sim.Process(context.Background(), Request{Amount: 1000, Method: MethodUPI})
	if !errors.Is(err, ErrDeclined) {
		t.Fatalf("expected ErrDeclined, got %v", err)
	}
}

func TestProcessProducesBothOutcomes(t *testing.T) {
	// At the default 80% rate, a deterministic seed must show both outcomes
	// within a modest run count: non-determinism is bounded, not absent.
	sim := NewSimulator(0, 0.8, WithRand(rand.New(rand.NewSource(42))))

	var successes, failures int
	for i := 0; i < 100; i++ {
		_, err := sim.Process(context.Background(), Request{Amount: 500})
		switch {
		case err == nil:
			successes++
		case errors.Is(err, ErrDeclined):
			failures++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}

	if successes == 0 {
		t.Error("expected at least one success in 100 runs")
	}
	if failures == 0 {
		t.Error("expected at least one failure in 100 runs")
	}
}

func TestProcessRejectsInvalidAmount(t *testing.T) {
	sim := NewSimulator(0, 1.0)
	if _, err := sim.Process(context.Background(), Request{Amount: 0}); err == nil {
		t.Error("expected error for zero amount")
	}
	if _, err := sim.Process(context.Background(), Request{Amount: -10}); err == nil {
		t.Error("expected error for negative amount")
	}
}

func TestProcessHonorsContextCancellation(t *testing.T) {
	sim := NewSimulator(time.Minute, 1.0)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		_, err := sim.Process(ctx, Request{Amount: 100})
		done <- err
	}()
	cancel()

	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("expected context.Canceled, got %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Process did not return after cancellation")
	}
}
