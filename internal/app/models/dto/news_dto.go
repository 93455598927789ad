package dto

// CreateNewsItemRequest creates a news item or a dated event.
type CreateNewsItemRequest struct {
	Title     string `json:"title" binding:"required,min=2,max=200"`
	Body      string `json:"body" binding:"required,min=2"`
	Category  string `json:"category" binding:"required,oneof=news event"`
	EventDate string `json:"eventDate" binding:"omitempty" example:"2026-09-14"`
	Published bool   `json:"published"`
}

// UpdateNewsItemRequest edits an existing news item.
type UpdateNewsItemRequest struct {
	Title     string `json:"title" binding:"required,min=2,max=200"`
	Body      string `json:"body" binding:"required,min=2"`
	Category  string `json:"category" binding:"required,oneof=news event"`
	EventDate string `json:"eventDate" binding:"omitempty"`
	Published bool   `json:"published"`
}
