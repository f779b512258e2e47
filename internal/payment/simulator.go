// Package payment provides the demo payment gateway. It settles nothing; it
// waits a fixed delay and flips a weighted coin.
package payment

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"
)

// ErrDeclined is the simulated settlement failure. The narrative matches the
// user-facing copy; callers return to the details step with their form state
// intact.
var ErrDeclined = errors.New("payment failed due to network issues")

type Method string

const (
	MethodCard       Method = "card"
	MethodUPI        Method = "upi"
	MethodNetBanking Method = "netbanking"
)

type Request struct {
	Amount float64
	Method Method
	Email  string
	Phone  string
}

type Result struct {
	PaymentID string
	Gateway   string
	Amount    float64
	PaidAt    time.Time
}

// Gateway is the settlement interface handlers depend on.
type Gateway interface {
	Process(ctx context.Context, req Request) (*Result, error)
}

// Simulator implements Gateway with a fixed delay and a pseudo-random
// outcome. Clock and randomness are injectable for deterministic tests.
type Simulator struct {
	Delay       time.Duration
	SuccessRate float64
	rng         *rand.Rand
	now         func() time.Time
}

type Option func(*Simulator)

func WithRand(rng *rand.Rand) Option {
	return func(s *Simulator) { s.rng = rng }
}

func WithClock(now func() time.Time) Option {
	return func(s *Simulator) { s.now = now }
}

func NewSimulator(delay time.Duration, successRate float64, opts ...Option) *Simulator {
	s := &Simulator{
		Delay:       delay,
		SuccessRate: successRate,
		rng:         rand.New(rand.NewSource(time.Now().UnixNano())),
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Simulator) Process(ctx context.Context, req Request) (*Result, error) {
	if req.Amount <= 0 {
		return nil, fmt.Errorf("invalid payment amount %.2f", req.Amount)
	}

	if s.Delay > 0 {
		timer := time.NewTimer(s.Delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	if s.rng.Float64() >= s.SuccessRate {
		return nil, ErrDeclined
	}

	paidAt := s.now()
	return &Result{
		PaymentID: fmt.Sprintf("PAY_%d", paidAt.UnixMilli()),
		Gateway:   "simulated",
		Amount:    req.Amount,
		PaidAt:    paidAt,
	}, nil
}
