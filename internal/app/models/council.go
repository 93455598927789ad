package models

import "time"

// CouncilMember assigns a student to a council position.
// Class-scoped positions additionally carry the form/stream pair they
// represent, which must match the student's own placement.
type CouncilMember struct {
	ID               int64      `json:"id" db:"id"`
	StudentID        int64      `json:"studentId" db:"student_id"`
	Position         string     `json:"position" db:"position" example:"ClassRepresentative"`
	Department       string     `json:"department" db:"department" example:"Academics"`
	Form             *Form      `json:"form,omitempty" db:"form"`     // Only for class-scoped positions
	Stream           *Stream    `json:"stream,omitempty" db:"stream"` // Only for class-scoped positions
	StartDate        time.Time  `json:"startDate" db:"start_date"`
	EndDate          *time.Time `json:"endDate,omitempty" db:"end_date"`
	Responsibilities string     `json:"responsibilities,omitempty" db:"responsibilities"`
	Achievements     string     `json:"achievements,omitempty" db:"achievements"`
	Status           string     `json:"status" db:"status" example:"active"`
	PhotoURL         string     `json:"photoUrl,omitempty" db:"photo_url"`
	CreatedAt        time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt        time.Time  `json:"updatedAt" db:"updated_at"`

	// Populated when listed with the student join
	Student *Student `json:"student,omitempty"`
}
