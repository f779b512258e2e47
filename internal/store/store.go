package store

import (
	"context"
	"errors"

	"github.com/himalayan-adventures/trek-api/internal/models"
)

// ErrNotFound is returned by lookups for rows that do not exist or are not
// visible to the requesting user.
var ErrNotFound = errors.New("store: not found")

// TrekFilter narrows ListTreks. Zero values mean "no constraint"; active
// predicates are combined with logical AND.
type TrekFilter struct {
	Difficulty   string  // easy, moderate, strenuous
	Season       string  // month name, matched against best_season
	Duration     string  // short (<=5 days), medium (6-10), long (>=11)
	MinPrice     float64
	MaxPrice     float64 // 0 = unbounded
	Query        string  // case-insensitive match on title/description/highlights
	FeaturedOnly bool
	SortBy       string // price, duration, altitude; empty = insertion order
	SortDesc     bool
	Limit        int
	Offset       int
}

// CartItemUpdate carries a partial cart row update; nil fields are left as-is.
// PriceSnapshot is deliberately absent: it is fixed at add-to-cart time.
type CartItemUpdate struct {
	ParticipantsCount *int
	PackageType       *string
	AddOns            *[]string
	SelectedDate      *string
}

// Store is the data-access strategy. Exactly one implementation is selected
// at composition time: the gorm-backed store or the in-memory fixture store.
type Store interface {
	ListTreks(ctx context.Context, filter TrekFilter) ([]models.Trek, error)
	GetTrek(ctx context.Context, id uint) (*models.Trek, error)
	GetTrekBySlug(ctx context.Context, slug string) (*models.Trek, error)

	ListCartItems(ctx context.Context, userID uint) ([]models.CartItem, error)
	// UpsertCartItem inserts the item, or, when a row for the same
	// (user, trek, selected date) already exists, updates that row in place.
	// Reports whether a new row was created.
	UpsertCartItem(ctx context.Context, item *models.CartItem) (bool, error)
	UpdateCartItem(ctx context.Context, userID, itemID uint, update CartItemUpdate) (*models.CartItem, error)
	RemoveCartItem(ctx context.Context, userID, itemID uint) error
	ClearCart(ctx context.Context, userID uint) error

	// CreateBooking persists the booking and, when clearCart is set, removes
	// all of the user's cart rows as part of the same unit of work.
	CreateBooking(ctx context.Context, booking *models.Booking, clearCart bool) error
	ListBookings(ctx context.Context, userID uint) ([]models.Booking, error)
	GetBooking(ctx context.Context, userID, id uint) (*models.Booking, error)
	CancelBooking(ctx context.Context, userID, id uint, reason string) (*models.Booking, error)

	ListTrekReviews(ctx context.Context, trekID uint) ([]models.Review, error)
	CreateReview(ctx context.Context, review *models.Review) error

	GetProfile(ctx context.Context, userID uint) (*models.UserProfile, error)
	UpsertProfile(ctx context.Context, profile *models.UserProfile) error
}

// CartTotal sums price_snapshot x participants_count over the given rows.
func CartTotal(items []models.CartItem) float64 {
	var total float64
	for _, item := range items {
		total += item.PriceSnapshot * float64(item.ParticipantsCount)
	}
	return total
}

// durationBucketMatch reports whether days falls in the named bucket.
func durationBucketMatch(bucket string, days int) bool {
	switch bucket {
	case "short":
		return days <= 5
	case "medium":
		return days >= 6 && days <= 10
	case "long":
		return days >= 11
	default:
		return true
	}
}
