package dto

// CreateCouncilMemberRequest assigns a student to a council position.
// Bound from a multipart form so a photo can accompany the assignment.
type CreateCouncilMemberRequest struct {
	StudentID        int64  `form:"studentId" binding:"required,gt=0"`
	Position         string `form:"position" binding:"required,min=2,max=60"`
	Department       string `form:"department" binding:"required,min=2,max=60"`
	Form             string `form:"form" binding:"omitempty,oneof='Form 1' 'Form 2' 'Form 3' 'Form 4'"`
	Stream           string `form:"stream" binding:"omitempty,oneof=East West North South"`
	StartDate        string `form:"startDate" binding:"required" example:"2026-01-06"`
	EndDate          string `form:"endDate" binding:"omitempty"`
	Responsibilities string `form:"responsibilities" binding:"omitempty,max=2000"`
	Achievements     string `form:"achievements" binding:"omitempty,max=2000"`
}

// UpdateCouncilMemberRequest edits an existing assignment.
type UpdateCouncilMemberRequest struct {
	Position         string `form:"position" binding:"required,min=2,max=60"`
	Department       string `form:"department" binding:"required,min=2,max=60"`
	Form             string `form:"form" binding:"omitempty,oneof='Form 1' 'Form 2' 'Form 3' 'Form 4'"`
	Stream           string `form:"stream" binding:"omitempty,oneof=East West North South"`
	StartDate        string `form:"startDate" binding:"required"`
	EndDate          string `form:"endDate" binding:"omitempty"`
	Responsibilities string `form:"responsibilities" binding:"omitempty,max=2000"`
	Achievements     string `form:"achievements" binding:"omitempty,max=2000"`
	Status           string `form:"status" binding:"required,oneof=active ended"`
}

// PositionInfo describes one catalogue entry.
type PositionInfo struct {
	Key        string `json:"key" example:"ClassRepresentative"`
	Department string `json:"department" example:"Academics"`
	Label      string `json:"label" example:"Class Representative"`
	Level      int    `json:"level" example:"3"`
	ClassScoped bool  `json:"classScoped" example:"true"`
}
