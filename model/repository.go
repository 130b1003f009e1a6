package model

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// ErrChiropractorNotFound is returned when no listing has the requested id.
var ErrChiropractorNotFound = errors.New("chiropractor not found")

// ChiropractorRepository is the storage layer for chiropractor listings.
type ChiropractorRepository struct {
	db *gorm.DB
}

func NewChiropractorRepository(db *gorm.DB) *ChiropractorRepository {
	return &ChiropractorRepository{db: db}
}

// Create inserts one listing and fills in its assigned ID.
func (r *ChiropractorRepository) Create(ctx context.Context, chiro *Chiropractor) error {
	return r.db.WithContext(ctx).Create(chiro).Error
}

// CreateMany inserts all listings in a single transaction.
func (r *ChiropractorRepository) CreateMany(ctx context.Context, chiros []Chiropractor) error {
	if len(chiros) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&chiros).Error
	})
}

// List returns the listings matching filter in insertion order.
func (r *ChiropractorRepository) List(ctx context.Context, filter ChiropractorFilter) ([]Chiropractor, error) {
	chiros := []Chiropractor{}
	query := filter.Apply(r.db.WithContext(ctx).Model(&Chiropractor{}))
	if err := query.Order("id ASC").Find(&chiros).Error; err != nil {
		return nil, fmt.Errorf("list chiropractors: %w", err)
	}
	return chiros, nil
}

// Get fetches one listing by id, or ErrChiropractorNotFound.
func (r *ChiropractorRepository) Get(ctx context.Context, id uint) (*Chiropractor, error) {
	var chiro Chiropractor
	if err := r.db.WithContext(ctx).First(&chiro, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrChiropractorNotFound
		}
		return nil, fmt.Errorf("get chiropractor %d: %w", id, err)
	}
	return &chiro, nil
}

// Count returns the number of stored listings.
func (r *ChiropractorRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&Chiropractor{}).Count(&n).Error
	return n, err
}
