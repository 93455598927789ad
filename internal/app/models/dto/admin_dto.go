package dto

// LoginRequest authenticates a console admin.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// LoginResponse carries the issued token and its lifetime in seconds.
type LoginResponse struct {
	Token     string `json:"token"`
	ExpiresIn int    `json:"expiresIn" example:"43200"`
}

// CreateAdminRequest registers a console user / staff directory entry.
type CreateAdminRequest struct {
	Name       string `json:"name" binding:"required,min=2,max=100"`
	Email      string `json:"email" binding:"required,email"`
	Password   string `json:"password" binding:"required,min=8"`
	Role       string `json:"role" binding:"required,min=2,max=60" example:"Teacher"`
	Department string `json:"department" binding:"omitempty,max=60"`
	Position   string `json:"position" binding:"omitempty,max=100"`
	Phone      string `json:"phone" binding:"omitempty,max=20"`
}

// UpdateAdminRequest edits a staff entry. Password changes go through
// their own flow and are not part of a profile update.
type UpdateAdminRequest struct {
	Name       string `json:"name" binding:"required,min=2,max=100"`
	Role       string `json:"role" binding:"required,min=2,max=60"`
	Department string `json:"department" binding:"omitempty,max=60"`
	Position   string `json:"position" binding:"omitempty,max=100"`
	Phone      string `json:"phone" binding:"omitempty,max=20"`
	Active     *bool  `json:"active" binding:"required"`
}

// SubscribeRequest adds an email to the subscriber list.
type SubscribeRequest struct {
	Email string `json:"email" binding:"required,email"`
}
