package booking

import (
	"testing"
)

func TestPriceQuoteScalesAddOnsWithParticipants(t *testing.T) {
	// Chandratal Lake Trek, premium package, travel insurance, 2 travelers:
	// (25000 + 5000 + 1500) x 2 = 63000.
	quote := PriceQuote(25000, "premium", []string{"insurance"}, 2)

	if quote.TotalAmount != 63000 {
		t.Errorf("expected total 63000, got %.0f", quote.TotalAmount)
	}
	if quote.BaseAmount != 60000 {
		t.Errorf("expected base amount 60000, got %.0f", quote.BaseAmount)
	}
	if quote.AddOnsAmount != 3000 {
		t.Errorf("expected add-ons amount 3000, got %.0f", quote.AddOnsAmount)
	}
	if quote.PerPerson != 31500 {
		t.Errorf("expected per-person 31500, got %.0f", quote.PerPerson)
	}
}

func TestPriceQuoteStandardPackageNoAddOns(t *testing.T) {
	quote := PriceQuote(18000, "standard", nil, 1)
	if quote.TotalAmount != 18000 {
		t.Errorf("expected total 18000, got %.0f", quote.TotalAmount)
	}
	if quote.AddOnsAmount != 0 {
		t.Errorf("expected no add-ons amount, got %.0f", quote.AddOnsAmount)
	}
}

func TestPriceQuoteBreakdownSumsToTotal(t *testing.T) {
	cases := []struct {
		name         string
		base         float64
		pkg          string
		addOns       []string
		participants int
	}{
		{"LuxuryAllAddOns", 32000, "luxury", []string{"gear", "insurance", "photography", "porter"}, 4},
		{"PremiumSolo", 25000, "premium", []string{"porter"}, 1},
		{"StandardGroup", 22000, "standard", []string{"gear"}, 6},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			quote := PriceQuote(tc.base, tc.pkg, tc.addOns, tc.participants)
			if got := quote.BaseAmount + quote.AddOnsAmount; got != quote.TotalAmount {
				t.Errorf("base %.0f + add-ons %.0f = %.0f, want total %.0f",
					quote.BaseAmount, quote.AddOnsAmount, got, quote.TotalAmount)
			}
			if got := quote.PerPerson * float64(tc.participants); got != quote.TotalAmount {
				t.Errorf("per-person x participants = %.0f, want total %.0f", got, quote.TotalAmount)
			}
		})
	}
}

func TestPackageAndAddOnLookup(t *testing.T) {
	if pkg := PackageByID("premium"); pkg == nil || pkg.Surcharge != 5000 {
		t.Errorf("unexpected premium package: %+v", pkg)
	}
	if PackageByID("deluxe") != nil {
		t.Error("expected nil for unknown package")
	}
	if a := AddOnByID("insurance"); a == nil || a.Price != 1500 {
		t.Errorf("unexpected insurance add-on: %+v", a)
	}
	if AddOnByID("submarine") != nil {
		t.Error("expected nil for unknown add-on")
	}
}
