package models

import "time"

// News categories
const (
	NewsCategoryNews  = "news"
	NewsCategoryEvent = "event"
)

// NewsItem is a school announcement or a dated event. Events carry an
// EventDate; plain news items do not.
type NewsItem struct {
	ID        int64      `json:"id" db:"id"`
	Title     string     `json:"title" db:"title"`
	Body      string     `json:"body" db:"body"`
	Category  string     `json:"category" db:"category" example:"event"`
	EventDate *time.Time `json:"eventDate,omitempty" db:"event_date"`
	Published bool       `json:"published" db:"published"`
	CreatedBy int64      `json:"createdBy" db:"created_by"`
	CreatedAt time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time  `json:"updatedAt" db:"updated_at"`
}
