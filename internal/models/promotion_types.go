package models

import "time"

// Promotion is a time-bounded banner shown on the home page.
// Start/end dates are optional; a nil bound means "no limit".
type Promotion struct {
	ID               int64      `json:"id" db:"id"`
	Title            string     `json:"title" db:"title"`
	Slug             string     `json:"slug" db:"slug"`
	Image            string     `json:"image" db:"image"`
	Description      string     `json:"description" db:"description"`
	ShortDescription string     `json:"shortDescription" db:"short_description"`
	ButtonText       string     `json:"buttonText" db:"button_text"`
	ButtonURL        string     `json:"buttonUrl" db:"button_url"`
	IsActive         bool       `json:"isActive" db:"is_active"`
	StartDate        *time.Time `json:"startDate,omitempty" db:"start_date"`
	EndDate          *time.Time `json:"endDate,omitempty" db:"end_date"`
	CreatedAt        time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt        time.Time  `json:"updatedAt" db:"updated_at"`
}

// RunsAt reports whether the promotion window covers the given moment.
// The active flag is checked separately by the query layer.
func (p Promotion) RunsAt(t time.Time) bool {
	if p.StartDate != nil && t.Before(*p.StartDate) {
		return false
	}
	if p.EndDate != nil && !t.Before(p.EndDate.AddDate(0, 0, 1)) {
		return false
	}
	return true
}
