package store

import (
	"github.com/himalayan-adventures/trek-api/internal/models"
	"gorm.io/gorm"
)

// FixtureTreks returns the demo catalog used by the in-memory store and by
// database seeding. IDs are stable so cart/booking fixtures can reference
// them.
func FixtureTreks() []models.Trek {
	return []models.Trek{
		{
			Model:           gorm.Model{ID: 1},
			Slug:            "chandratal-lake-trek",
			Title:           "Chandratal Lake Trek",
			Description:     "Experience the mystical beauty of Chandratal Lake, known as the Moon Lake",
			Overview:        "Embark on an unforgettable journey to Chandratal Lake, often called the Moon Lake for its crescent shape and ethereal beauty. This moderate trek takes you through diverse landscapes of Himachal Pradesh, from lush green valleys to the stark, moonscape terrain of Spiti Valley.",
			DurationDays:    7,
			DifficultyLevel: "moderate",
			BasePrice:       25000,
			MaxAltitude:     4300,
			BestSeason:      []string{"June", "July", "August", "September"},
			Highlights: []string{
				"Crystal clear high-altitude lake",
				"Stunning Spiti Valley landscapes",
				"Ancient Buddhist monasteries",
				"Traditional Himachali villages",
			},
			Inclusions: []string{
				"Accommodation (Hotels & Camping)",
				"All meals during trek",
				"Professional trek leader and guides",
				"All permits and entry fees",
				"Transportation as per itinerary",
				"First aid kit and oxygen cylinder",
				"Camping equipment (tents, sleeping bags)",
				"Porter services for common equipment",
			},
			Exclusions: []string{
				"Personal trekking gear",
				"Travel insurance",
				"Tips for guides and porters",
				"Personal expenses",
				"Any meals not mentioned",
				"Emergency evacuation costs",
			},
			Itinerary: []models.ItineraryDay{
				{Day: 1, Title: "Arrival in Manali", Description: "Arrive in Manali and check into hotel. Evening briefing about the trek.", Meals: "Dinner", Accommodation: "Hotel"},
				{Day: 2, Title: "Manali to Chatru", Description: "Drive to Chatru via Rohtang Pass. Set up camp.", Meals: "Breakfast, Lunch, Dinner", Accommodation: "Camping"},
			},
			FeaturedImage: "/assets/chandratal-lake.jpg",
			GalleryImages: []string{"/assets/chandratal-lake.jpg", "/assets/spiti-valley.jpg", "/assets/trekkers-camp.jpg"},
			IsActive:      true,
			IsFeatured:    true,
			MinGroupSize:  2,
			MaxGroupSize:  12,
		},
		{
			Model:           gorm.Model{ID: 2},
			Slug:            "kashmir-great-lakes-trek",
			Title:           "Kashmir Great Lakes Trek",
			Description:     "Discover the pristine alpine lakes of Kashmir in this spectacular high-altitude trek",
			Overview:        "The Kashmir Great Lakes Trek is considered one of the most beautiful treks in India, featuring seven pristine alpine lakes surrounded by snow-capped peaks and colorful meadows.",
			DurationDays:    8,
			DifficultyLevel: "strenuous",
			BasePrice:       32000,
			MaxAltitude:     4200,
			BestSeason:      []string{"July", "August", "September"},
			Highlights: []string{
				"Seven pristine alpine lakes",
				"Colorful meadows and wildflowers",
				"Snow-capped Himalayan peaks",
				"Rich Kashmir culture",
			},
			Inclusions: []string{
				"All accommodation",
				"All meals and refreshments",
				"Experienced trek leaders",
				"Permits and entry fees",
				"Transport during trek",
				"Safety equipment",
				"Camping gear",
			},
			Exclusions: []string{
				"Personal gear and clothing",
				"Insurance coverage",
				"Guide tips",
				"Personal expenses",
				"Emergency evacuation",
			},
			Itinerary: []models.ItineraryDay{
				{Day: 1, Title: "Arrival in Srinagar", Description: "Pick up from airport and transfer to houseboat.", Meals: "Dinner", Accommodation: "Houseboat"},
			},
			FeaturedImage: "/assets/kashmir-houseboat.jpg",
			GalleryImages: []string{"/assets/kashmir-houseboat.jpg", "/assets/hero-himalayas.jpg"},
			IsActive:      true,
			IsFeatured:    true,
			MinGroupSize:  4,
			MaxGroupSize:  15,
		},
		{
			Model:           gorm.Model{ID: 3},
			Slug:            "hampta-pass-circuit",
			Title:           "Hampta Pass Circuit",
			Description:     "Cross the famous Hampta Pass and experience contrasting landscapes",
			Overview:        "The Hampta Pass Trek offers a unique experience of contrasting landscapes - from the lush green valleys of Kullu to the stark, barren beauty of Lahaul and Spiti.",
			DurationDays:    5,
			DifficultyLevel: "moderate",
			BasePrice:       18000,
			MaxAltitude:     4270,
			BestSeason:      []string{"June", "July", "August", "September"},
			Highlights: []string{
				"Contrasting valley landscapes",
				"Hampta Pass crossing",
				"Chandratal Lake visit",
				"Rich flora and fauna",
			},
			Inclusions: []string{
				"All meals during trek",
				"Accommodation and camping",
				"Professional guides",
				"All necessary permits",
				"Transportation",
				"Trekking equipment",
			},
			Exclusions: []string{
				"Personal trekking gear",
				"Travel to Manali",
				"Insurance",
				"Personal expenses",
			},
			FeaturedImage: "/assets/himachali-village.jpg",
			GalleryImages: []string{"/assets/himachali-village.jpg", "/assets/mountain-video-poster.jpg"},
			IsActive:      true,
			IsFeatured:    false,
			MinGroupSize:  2,
			MaxGroupSize:  12,
		},
		{
			Model:           gorm.Model{ID: 4},
			Slug:            "pin-parvati-pass-trek",
			Title:           "Pin Parvati Pass Trek",
			Description:     "Challenge yourself with this demanding high-altitude pass crossing",
			Overview:        "The Pin Parvati Pass Trek is one of the most challenging treks in Himachal Pradesh, connecting the lush Parvati Valley with the stark Pin Valley in Spiti.",
			DurationDays:    11,
			DifficultyLevel: "strenuous",
			BasePrice:       45000,
			MaxAltitude:     5319,
			BestSeason:      []string{"July", "August", "September"},
			Highlights: []string{
				"High-altitude pass crossing",
				"Glacial landscapes",
				"Remote Spiti villages",
				"Technical trekking challenge",
			},
			Inclusions: []string{
				"All meals and accommodation",
				"Expert mountain guides",
				"All permits and fees",
				"Safety equipment",
				"Emergency support",
				"Porter services",
			},
			Exclusions: []string{
				"Personal mountain gear",
				"Travel insurance",
				"Personal expenses",
				"Guide gratuities",
			},
			FeaturedImage: "/assets/spiti-valley.jpg",
			GalleryImages: []string{"/assets/spiti-valley.jpg", "/assets/trek-listing-banner.jpg"},
			IsActive:      true,
			IsFeatured:    false,
			MinGroupSize:  3,
			MaxGroupSize:  8,
		},
		{
			Model:           gorm.Model{ID: 5},
			Slug:            "valley-of-flowers-trek",
			Title:           "Valley of Flowers Trek",
			Description:     "Witness the spectacular bloom in this UNESCO World Heritage Site",
			Overview:        "The Valley of Flowers is a UNESCO World Heritage Site known for its meadows of endemic alpine flowers and outstanding natural beauty.",
			DurationDays:    6,
			DifficultyLevel: "easy",
			BasePrice:       22000,
			MaxAltitude:     3658,
			BestSeason:      []string{"July", "August", "September"},
			Highlights: []string{
				"UNESCO World Heritage Site",
				"Rare Himalayan flowers",
				"Hemkund Sahib pilgrimage",
				"Easy to moderate difficulty",
			},
			Inclusions: []string{
				"All accommodation",
				"Vegetarian meals",
				"Experienced guides",
				"Entry permits",
				"Transportation",
				"First aid support",
			},
			Exclusions: []string{
				"Personal gear",
				"Insurance",
				"Tips for staff",
				"Personal expenses",
			},
			FeaturedImage: "/assets/team-photo.jpg",
			GalleryImages: []string{"/assets/team-photo.jpg", "/assets/hero-himalayas.jpg"},
			IsActive:      true,
			IsFeatured:    true,
			MinGroupSize:  5,
			MaxGroupSize:  20,
		},
	}
}
