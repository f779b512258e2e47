package store

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/himalayan-adventures/trek-api/internal/models"
	"gorm.io/gorm"
)

// MemStore keeps the whole dataset in memory, seeded from the fixture
// catalog. Writes are durable for the lifetime of the process, which makes
// demo mode behave like a real backend within a session.
type MemStore struct {
	mu       sync.Mutex
	treks    []models.Trek
	cart     map[uint]models.CartItem
	bookings map[uint]models.Booking
	reviews  map[uint]models.Review
	profiles map[uint]models.UserProfile // keyed by user id
	nextID   uint
}

func NewMemStore() *MemStore {
	return &MemStore{
		treks:    FixtureTreks(),
		cart:     make(map[uint]models.CartItem),
		bookings: make(map[uint]models.Booking),
		reviews:  make(map[uint]models.Review),
		profiles: make(map[uint]models.UserProfile),
		nextID:   1000,
	}
}

func (s *MemStore) allocID() uint {
	s.nextID++
	return s.nextID
}

func trekMatches(trek models.Trek, filter TrekFilter) bool {
	if !trek.IsActive {
		return false
	}
	if filter.Difficulty != "" && trek.DifficultyLevel != filter.Difficulty {
		return false
	}
	if filter.Season != "" {
		found := false
		for _, m := range trek.BestSeason {
			if m == filter.Season {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	if !durationBucketMatch(filter.Duration, trek.DurationDays) {
		return false
	}
	if filter.MinPrice > 0 && trek.BasePrice < filter.MinPrice {
		return false
	}
	if filter.MaxPrice > 0 && trek.BasePrice > filter.MaxPrice {
		return false
	}
	if filter.FeaturedOnly && !trek.IsFeatured {
		return false
	}
	if filter.Query != "" {
		q := strings.ToLower(filter.Query)
		if !strings.Contains(strings.ToLower(trek.Title), q) &&
			!strings.Contains(strings.ToLower(trek.Description), q) &&
			!highlightsContain(trek.Highlights, q) {
			return false
		}
	}
	return true
}

func highlightsContain(highlights []string, q string) bool {
	for _, h := range highlights {
		if strings.Contains(strings.ToLower(h), q) {
			return true
		}
	}
	return false
}

func (s *MemStore) ListTreks(ctx context.Context, filter TrekFilter) ([]models.Trek, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []models.Trek
	for _, trek := range s.treks {
		if trekMatches(trek, filter) {
			out = append(out, trek)
		}
	}

	switch filter.SortBy {
	case "price":
		sort.SliceStable(out, func(i, j int) bool {
			if filter.SortDesc {
				return out[i].BasePrice > out[j].BasePrice
			}
			return out[i].BasePrice < out[j].BasePrice
		})
	case "duration":
		sort.SliceStable(out, func(i, j int) bool {
			if filter.SortDesc {
				return out[i].DurationDays > out[j].DurationDays
			}
			return out[i].DurationDays < out[j].DurationDays
		})
	case "altitude":
		sort.SliceStable(out, func(i, j int) bool {
			if filter.SortDesc {
				return out[i].MaxAltitude > out[j].MaxAltitude
			}
			return out[i].MaxAltitude < out[j].MaxAltitude
		})
	}

	if filter.Offset > 0 {
		if filter.Offset >= len(out) {
			return nil, nil
		}
		out = out[filter.Offset:]
	}
	if filter.Limit > 0 && filter.Limit < len(out) {
		out = out[:filter.Limit]
	}
	return out, nil
}

func (s *MemStore) GetTrek(ctx context.Context, id uint) (*models.Trek, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, trek := range s.treks {
		if trek.ID == id && trek.IsActive {
			t := trek
			return &t, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemStore) GetTrekBySlug(ctx context.Context, slug string) (*models.Trek, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, trek := range s.treks {
		if trek.Slug == slug && trek.IsActive {
			t := trek
			return &t, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemStore) trekByID(id uint) (models.Trek, bool) {
	for _, trek := range s.treks {
		if trek.ID == id {
			return trek, true
		}
	}
	return models.Trek{}, false
}

func (s *MemStore) ListCartItems(ctx context.Context, userID uint) ([]models.CartItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []models.CartItem
	for _, item := range s.cart {
		if item.UserID == userID {
			if trek, ok := s.trekByID(item.TrekID); ok {
				item.Trek = trek
			}
			out = append(out, item)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (s *MemStore) UpsertCartItem(ctx context.Context, item *models.CartItem) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, existing := range s.cart {
		if existing.UserID == item.UserID && existing.TrekID == item.TrekID && existing.SelectedDate == item.SelectedDate {
			existing.ParticipantsCount = item.ParticipantsCount
			existing.PackageType = item.PackageType
			existing.AddOns = item.AddOns
			existing.PriceSnapshot = item.PriceSnapshot
			existing.UpdatedAt = time.Now()
			s.cart[id] = existing
			*item = existing
			return false, nil
		}
	}

	item.Model = gorm.Model{ID: s.allocID(), CreatedAt: time.Now(), UpdatedAt: time.Now()}
	s.cart[item.ID] = *item
	return true, nil
}

func (s *MemStore) UpdateCartItem(ctx context.Context, userID, itemID uint, update CartItemUpdate) (*models.CartItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.cart[itemID]
	if !ok || item.UserID != userID {
		return nil, ErrNotFound
	}
	if update.ParticipantsCount != nil {
		item.ParticipantsCount = *update.ParticipantsCount
	}
	if update.PackageType != nil {
		item.PackageType = *update.PackageType
	}
	if update.AddOns != nil {
		item.AddOns = *update.AddOns
	}
	if update.SelectedDate != nil {
		item.SelectedDate = *update.SelectedDate
	}
	item.UpdatedAt = time.Now()
	s.cart[itemID] = item
	return &item, nil
}

func (s *MemStore) RemoveCartItem(ctx context.Context, userID, itemID uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.cart[itemID]
	if !ok || item.UserID != userID {
		return ErrNotFound
	}
	delete(s.cart, itemID)
	return nil
}

func (s *MemStore) ClearCart(ctx context.Context, userID uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, item := range s.cart {
		if item.UserID == userID {
			delete(s.cart, id)
		}
	}
	return nil
}

func (s *MemStore) CreateBooking(ctx context.Context, booking *models.Booking, clearCart bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	booking.Model = gorm.Model{ID: s.allocID(), CreatedAt: time.Now(), UpdatedAt: time.Now()}
	s.bookings[booking.ID] = *booking
	if clearCart {
		for id, item := range s.cart {
			if item.UserID == booking.UserID {
				delete(s.cart, id)
			}
		}
	}
	return nil
}

func (s *MemStore) ListBookings(ctx context.Context, userID uint) ([]models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []models.Booking
	for _, booking := range s.bookings {
		if booking.UserID == userID {
			if trek, ok := s.trekByID(booking.TrekID); ok {
				booking.Trek = trek
			}
			out = append(out, booking)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (s *MemStore) GetBooking(ctx context.Context, userID, id uint) (*models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	booking, ok := s.bookings[id]
	if !ok || booking.UserID != userID {
		return nil, ErrNotFound
	}
	if trek, found := s.trekByID(booking.TrekID); found {
		booking.Trek = trek
	}
	return &booking, nil
}

func (s *MemStore) CancelBooking(ctx context.Context, userID, id uint, reason string) (*models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	booking, ok := s.bookings[id]
	if !ok || booking.UserID != userID {
		return nil, ErrNotFound
	}
	if booking.BookingStatus != "cancelled" {
		now := time.Now()
		booking.BookingStatus = "cancelled"
		booking.CancellationReason = reason
		booking.CancelledAt = &now
		booking.UpdatedAt = now
		s.bookings[id] = booking
	}
	return &booking, nil
}

func (s *MemStore) ListTrekReviews(ctx context.Context, trekID uint) ([]models.Review, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []models.Review
	for _, review := range s.reviews {
		if review.TrekID == trekID && review.IsPublished {
			out = append(out, review)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (s *MemStore) CreateReview(ctx context.Context, review *models.Review) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	review.Model = gorm.Model{ID: s.allocID(), CreatedAt: time.Now(), UpdatedAt: time.Now()}
	s.reviews[review.ID] = *review
	return nil
}

func (s *MemStore) GetProfile(ctx context.Context, userID uint) (*models.UserProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	profile, ok := s.profiles[userID]
	if !ok {
		return nil, ErrNotFound
	}
	return &profile, nil
}

func (s *MemStore) UpsertProfile(ctx context.Context, profile *models.UserProfile) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, ok := s.profiles[profile.UserID]; ok {
		profile.ID = existing.ID
		profile.CreatedAt = existing.CreatedAt
	} else {
		profile.Model = gorm.Model{ID: s.allocID(), CreatedAt: time.Now()}
	}
	profile.UpdatedAt = time.Now()
	s.profiles[profile.UserID] = *profile
	return nil
}
