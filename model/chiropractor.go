package model

import "strings"

// Chiropractor represents a chiropractor listing
// @Description Chiropractor directory listing
type Chiropractor struct {
	ID              uint   `json:"id" gorm:"column:id;primaryKey;autoIncrement" example:"1"`
	Name            string `json:"name" gorm:"column:name;type:varchar(120);not null" example:"Dr. Alex Chen"`
	City            string `json:"city" gorm:"column:city;type:varchar(80);not null" example:"London, ON"`
	ClinicName      string `json:"clinic_name" gorm:"column:clinic_name;type:varchar(120);not null" example:"Campus Sports Chiro"`
	SportsFocus     string `json:"sports_focus" gorm:"column:sports_focus;type:varchar(200);not null" example:"soccer, running"`
	StudentFriendly bool   `json:"student_friendly" gorm:"column:student_friendly;default:false" example:"true"`
	EveningHours    bool   `json:"evening_hours" gorm:"column:evening_hours;default:false" example:"false"`
	PriceRange      string `json:"price_range" gorm:"column:price_range;type:varchar(50)" example:"$$ (60–80)"`
	Bio             string `json:"bio" gorm:"column:bio;type:text" example:"Return-to-play for field sports."`
}

// TableName pins the table name regardless of naming strategy.
func (Chiropractor) TableName() string {
	return "chiropractors"
}

// SportsList splits SportsFocus on commas, trimming each token and dropping empty ones.
func (c Chiropractor) SportsList() []string {
	parts := strings.Split(c.SportsFocus, ",")
	sports := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			sports = append(sports, s)
		}
	}
	return sports
}

// ChiropractorFields carries the caller-supplied values of a new listing.
// Zero values are the defaults: empty strings and false flags.
type ChiropractorFields struct {
	Name            string
	ClinicName      string
	City            string
	SportsFocus     string
	PriceRange      string
	Bio             string
	StudentFriendly bool
	EveningHours    bool
}

// NewChiropractor builds an unsaved listing from submitted fields.
func NewChiropractor(f ChiropractorFields) Chiropractor {
	return Chiropractor{
		Name:            f.Name,
		ClinicName:      f.ClinicName,
		City:            f.City,
		SportsFocus:     f.SportsFocus,
		PriceRange:      f.PriceRange,
		Bio:             f.Bio,
		StudentFriendly: f.StudentFriendly,
		EveningHours:    f.EveningHours,
	}
}
