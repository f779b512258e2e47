// Package booking models the booking flow as an explicit state machine with
// a single transition table, plus the canonical package/add-on price lists.
package booking

import (
	"fmt"
	"time"

	"github.com/himalayan-adventures/trek-api/internal/models"
)

// dateLayout is the wire format for trek dates.
const dateLayout = "2006-01-02"

type Step int

const (
	StepTrek Step = iota
	StepDates
	StepParticipants
	StepPackages
	StepReview
	StepPayment
)

// stepOrder is the single source of truth for the flow. Next/Prev move one
// step at a time; there is no skipping.
var stepOrder = []Step{StepTrek, StepDates, StepParticipants, StepPackages, StepReview, StepPayment}

func (s Step) String() string {
	switch s {
	case StepTrek:
		return "trek"
	case StepDates:
		return "dates"
	case StepParticipants:
		return "participants"
	case StepPackages:
		return "packages"
	case StepReview:
		return "review"
	case StepPayment:
		return "payment"
	default:
		return fmt.Sprintf("step(%d)", int(s))
	}
}

// Draft accumulates the user's selections across steps. It carries no
// persistence of its own; abandoning the flow discards it.
type Draft struct {
	Trek            *models.Trek
	StartDate       string
	EndDate         string
	Participants    []models.Participant
	PackageType     string
	AddOns          []string
	SpecialRequests string
}

// Wizard walks a Draft through the fixed step sequence.
type Wizard struct {
	step  int // index into stepOrder
	Draft Draft
}

func NewWizard(trek *models.Trek) *Wizard {
	return &Wizard{Draft: Draft{Trek: trek}}
}

func (w *Wizard) Step() Step {
	return stepOrder[w.step]
}

// CanProceed reports whether the current step's requirements are met.
func (w *Wizard) CanProceed() bool {
	return StepComplete(w.Step(), &w.Draft)
}

// StepComplete is the per-step "can proceed" predicate, exposed so checkout
// can validate a fully accumulated draft independently of navigation.
func StepComplete(step Step, d *Draft) bool {
	switch step {
	case StepTrek:
		return d.Trek != nil
	case StepDates:
		start, err := time.Parse(dateLayout, d.StartDate)
		if err != nil {
			return false
		}
		end, err := time.Parse(dateLayout, d.EndDate)
		if err != nil {
			return false
		}
		return !end.Before(start)
	case StepParticipants:
		if len(d.Participants) < 1 || len(d.Participants) > MaxTravelers {
			return false
		}
		for _, p := range d.Participants {
			if p.Name == "" || p.Age <= 0 {
				return false
			}
		}
		return true
	case StepPackages:
		return PackageByID(d.PackageType) != nil && validAddOns(d.AddOns)
	case StepReview, StepPayment:
		return true
	default:
		return false
	}
}

// Next advances one step when the current step is complete. It reports
// whether the wizard moved.
func (w *Wizard) Next() bool {
	if w.step >= len(stepOrder)-1 || !w.CanProceed() {
		return false
	}
	w.step++
	return true
}

// Prev moves back one step, clamped at the first.
func (w *Wizard) Prev() bool {
	if w.step == 0 {
		return false
	}
	w.step--
	return true
}

// Validate checks every step's predicate over the draft, returning the first
// incomplete step on failure.
func Validate(d *Draft) (Step, error) {
	for _, step := range stepOrder {
		if !StepComplete(step, d) {
			return step, fmt.Errorf("booking draft incomplete at %q step", step)
		}
	}
	return StepPayment, nil
}

func validAddOns(ids []string) bool {
	for _, id := range ids {
		if AddOnByID(id) == nil {
			return false
		}
	}
	return true
}
