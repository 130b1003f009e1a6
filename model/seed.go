package model

import (
	"context"
	"fmt"
	"log"

	"gorm.io/gorm"
)

// DemoChiropractors returns the fixed listings inserted when the store is first created.
func DemoChiropractors() []Chiropractor {
	return []Chiropractor{
		{
			Name:            "Dr. Alex Chen",
			City:            "London, ON",
			ClinicName:      "Campus Sports Chiro",
			SportsFocus:     "soccer, weightlifting, running",
			StudentFriendly: true,
			EveningHours:    true,
			PriceRange:      "$$ (60–80)",
			Bio:             "Focus on lower-body injuries, return-to-play for field sports, and lifters with back pain.",
		},
		{
			Name:            "Dr. Maya Singh",
			City:            "Toronto, ON",
			ClinicName:      "Downtown Performance Chiro",
			SportsFocus:     "basketball, volleyball, running",
			StudentFriendly: false,
			EveningHours:    true,
			PriceRange:      "$$$ (80–110)",
			Bio:             "Works with varsity athletes. Emphasis on shoulder/knee mechanics.",
		},
		{
			Name:            "Dr. Jacob Rivera",
			City:            "London, ON",
			ClinicName:      "Flexline Student Chiro",
			SportsFocus:     "weightlifting, powerlifting",
			StudentFriendly: true,
			EveningHours:    false,
			PriceRange:      "$ (40–60)",
			Bio:             "Budget-friendly care tailored to student lifters.",
		},
	}
}

// ChiropractorStorePresent reports whether the listing table already exists.
func ChiropractorStorePresent(db *gorm.DB) bool {
	return db.Migrator().HasTable(&Chiropractor{})
}

// InitChiropractorStore creates and seeds the store if it does not exist yet.
// An existing store is left untouched, even if it is empty.
func InitChiropractorStore(ctx context.Context, db *gorm.DB) (bool, error) {
	if ChiropractorStorePresent(db) {
		return false, nil
	}

	if err := db.WithContext(ctx).AutoMigrate(&Chiropractor{}); err != nil {
		return false, fmt.Errorf("failed to create chiropractor table: %w", err)
	}

	if err := NewChiropractorRepository(db).CreateMany(ctx, DemoChiropractors()); err != nil {
		return false, fmt.Errorf("failed to seed demo chiropractors: %w", err)
	}

	log.Println("Database created and demo chiropractors added.")
	return true, nil
}
