package booking

// MaxTravelers bounds the participant count per booking.
const MaxTravelers = 12

// Package is a pricing tier applied on top of a trek's base price.
type Package struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Surcharge float64 `json:"surcharge"` // per person, added to base price
}

// AddOn is an optional extra service priced independently of the tier.
type AddOn struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"` // per person
}

var Packages = []Package{
	{ID: "standard", Name: "Standard", Surcharge: 0},
	{ID: "premium", Name: "Premium", Surcharge: 5000},
	{ID: "luxury", Name: "Luxury", Surcharge: 12000},
}

var AddOns = []AddOn{
	{ID: "gear", Name: "Trekking Gear Rental", Price: 2000},
	{ID: "insurance", Name: "Travel Insurance", Price: 1500},
	{ID: "photography", Name: "Professional Photography", Price: 3000},
	{ID: "porter", Name: "Personal Porter", Price: 2500},
}

func PackageByID(id string) *Package {
	for i := range Packages {
		if Packages[i].ID == id {
			return &Packages[i]
		}
	}
	return nil
}

func AddOnByID(id string) *AddOn {
	for i := range AddOns {
		if AddOns[i].ID == id {
			return &AddOns[i]
		}
	}
	return nil
}

// Quote is the priced breakdown of a draft, shown at the review step and
// persisted verbatim onto the booking.
type Quote struct {
	BaseAmount   float64 `json:"base_amount"`    // (base price + package surcharge) x participants
	AddOnsAmount float64 `json:"add_ons_amount"` // sum of add-on prices x participants
	TotalAmount  float64 `json:"total_amount"`
	PerPerson    float64 `json:"per_person"`
}

// PriceQuote computes the booking total as
//
//	(base price + package surcharge + sum of add-on prices) x participants.
//
// Add-ons scale with the participant count, same as the package tier.
func PriceQuote(basePrice float64, packageType string, addOnIDs []string, participants int) Quote {
	pkg := PackageByID(packageType)
	surcharge := 0.0
	if pkg != nil {
		surcharge = pkg.Surcharge
	}

	addOnTotal := 0.0
	for _, id := range addOnIDs {
		if a := AddOnByID(id); a != nil {
			addOnTotal += a.Price
		}
	}

	n := float64(participants)
	perPerson := basePrice + surcharge + addOnTotal
	return Quote{
		BaseAmount:   (basePrice + surcharge) * n,
		AddOnsAmount: addOnTotal * n,
		TotalAmount:  perPerson * n,
		PerPerson:    perPerson,
	}
}

// QuoteDraft prices a complete draft.
func QuoteDraft(d *Draft) Quote {
	base := 0.0
	if d.Trek != nil {
		base = d.Trek.BasePrice
	}
	return PriceQuote(base, d.PackageType, d.AddOns, len(d.Participants))
}
