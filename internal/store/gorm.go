package store

import (
	"context"
	"errors"
	"time"

	"github.com/himalayan-adventures/trek-api/internal/models"
	"gorm.io/gorm"
)

// GormStore is the live implementation of Store backed by the application
// database.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// Seed inserts the fixture catalog when the treks table is empty, so a fresh
// database starts with a browsable catalog.
func (s *GormStore) Seed() error {
	var count int64
	if err := s.db.Model(&models.Trek{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	treks := FixtureTreks()
	return s.db.Create(&treks).Error
}

func (s *GormStore) ListTreks(ctx context.Context, filter TrekFilter) ([]models.Trek, error) {
	q := s.db.WithContext(ctx).Model(&models.Trek{}).Where("is_active = ?", true)

	if filter.Difficulty != "" {
		q = q.Where("difficulty_level = ?", filter.Difficulty)
	}
	if filter.Season != "" {
		// best_season is stored as a JSON array of month names.
		q = q.Where(`best_season LIKE ?`, `%"`+filter.Season+`"%`)
	}
	switch filter.Duration {
	case "short":
		q = q.Where("duration_days <= ?", 5)
	case "medium":
		q = q.Where("duration_days BETWEEN ? AND ?", 6, 10)
	case "long":
		q = q.Where("duration_days >= ?", 11)
	}
	if filter.MinPrice > 0 {
		q = q.Where("base_price >= ?", filter.MinPrice)
	}
	if filter.MaxPrice > 0 {
		q = q.Where("base_price <= ?", filter.MaxPrice)
	}
	if filter.Query != "" {
		pattern := "%" + filter.Query + "%"
		q = q.Where("title LIKE ? OR description LIKE ? OR highlights LIKE ?", pattern, pattern, pattern)
	}
	if filter.FeaturedOnly {
		q = q.Where("is_featured = ?", true)
	}

	switch filter.SortBy {
	case "price":
		q = q.Order(orderClause("base_price", filter.SortDesc))
	case "duration":
		q = q.Order(orderClause("duration_days", filter.SortDesc))
	case "altitude":
		q = q.Order(orderClause("max_altitude", filter.SortDesc))
	default:
		q = q.Order("id ASC")
	}

	if filter.Limit > 0 {
		q = q.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		q = q.Offset(filter.Offset)
	}

	var treks []models.Trek
	if err := q.Find(&treks).Error; err != nil {
		return nil, err
	}
	return treks, nil
}

func orderClause(column string, desc bool) string {
	if desc {
		return column + " DESC"
	}
	return column + " ASC"
}

func (s *GormStore) GetTrek(ctx context.Context, id uint) (*models.Trek, error) {
	var trek models.Trek
	err := s.db.WithContext(ctx).Where("is_active = ?", true).First(&trek, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &trek, nil
}

func (s *GormStore) GetTrekBySlug(ctx context.Context, slug string) (*models.Trek, error) {
	var trek models.Trek
	err := s.db.WithContext(ctx).Where("slug = ? AND is_active = ?", slug, true).First(&trek).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &trek, nil
}

func (s *GormStore) ListCartItems(ctx context.Context, userID uint) ([]models.CartItem, error) {
	var items []models.CartItem
	err := s.db.WithContext(ctx).Preload("Trek").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (s *GormStore) UpsertCartItem(ctx context.Context, item *models.CartItem) (bool, error) {
	created := false
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.CartItem
		err := tx.Where("user_id = ? AND trek_id = ? AND selected_date = ?",
			item.UserID, item.TrekID, item.SelectedDate).First(&existing).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			created = true
			return tx.Create(item).Error
		}
		if err != nil {
			return err
		}

		existing.ParticipantsCount = item.ParticipantsCount
		existing.PackageType = item.PackageType
		existing.AddOns = item.AddOns
		existing.PriceSnapshot = item.PriceSnapshot
		if err := tx.Save(&existing).Error; err != nil {
			return err
		}
		*item = existing
		return nil
	})
	return created, err
}

func (s *GormStore) UpdateCartItem(ctx context.Context, userID, itemID uint, update CartItemUpdate) (*models.CartItem, error) {
	var item models.CartItem
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Where("id = ? AND user_id = ?", itemID, userID).First(&item).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return err
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
		return tx.Save(&item).Error
	})
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// Cart rows are hard-deleted: a soft-deleted row would keep occupying the
// (user, trek, selected_date) unique key and block re-adding the same trek.
func (s *GormStore) RemoveCartItem(ctx context.Context, userID, itemID uint) error {
	res := s.db.WithContext(ctx).Unscoped().Where("id = ? AND user_id = ?", itemID, userID).Delete(&models.CartItem{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *GormStore) ClearCart(ctx context.Context, userID uint) error {
	return s.db.WithContext(ctx).Unscoped().Where("user_id = ?", userID).Delete(&models.CartItem{}).Error
}

func (s *GormStore) CreateBooking(ctx context.Context, booking *models.Booking, clearCart bool) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(booking).Error; err != nil {
			return err
		}
		if clearCart {
			if err := tx.Unscoped().Where("user_id = ?", booking.UserID).Delete(&models.CartItem{}).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *GormStore) ListBookings(ctx context.Context, userID uint) ([]models.Booking, error) {
	var bookings []models.Booking
	err := s.db.WithContext(ctx).Preload("Trek").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

func (s *GormStore) GetBooking(ctx context.Context, userID, id uint) (*models.Booking, error) {
	var booking models.Booking
	err := s.db.WithContext(ctx).Preload("Trek").
		Where("id = ? AND user_id = ?", id, userID).First(&booking).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func (s *GormStore) CancelBooking(ctx context.Context, userID, id uint, reason string) (*models.Booking, error) {
	var booking models.Booking
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Where("id = ? AND user_id = ?", id, userID).First(&booking).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return err
		}
		if booking.BookingStatus == "cancelled" {
			return nil
		}

		now := time.Now()
		booking.BookingStatus = "cancelled"
		booking.CancellationReason = reason
		booking.CancelledAt = &now
		return tx.Save(&booking).Error
	})
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func (s *GormStore) ListTrekReviews(ctx context.Context, trekID uint) ([]models.Review, error) {
	var reviews []models.Review
	err := s.db.WithContext(ctx).
		Where("trek_id = ? AND is_published = ?", trekID, true).
		Order("created_at DESC").
		Find(&reviews).Error
	if err != nil {
		return nil, err
	}
	return reviews, nil
}

func (s *GormStore) CreateReview(ctx context.Context, review *models.Review) error {
	return s.db.WithContext(ctx).Create(review).Error
}

func (s *GormStore) GetProfile(ctx context.Context, userID uint) (*models.UserProfile, error) {
	var profile models.UserProfile
	err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (s *GormStore) UpsertProfile(ctx context.Context, profile *models.UserProfile) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.UserProfile
		err := tx.Where("user_id = ?", profile.UserID).First(&existing).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return tx.Create(profile).Error
		}
		if err != nil {
			return err
		}
		profile.ID = existing.ID
		profile.CreatedAt = existing.CreatedAt
		return tx.Save(profile).Error
	})
}
