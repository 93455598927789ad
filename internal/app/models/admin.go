package models

import "time"

// Staff role constants used by the campaign recipient resolver.
const (
	RoleTeacher         = "Teacher"
	RolePrincipal       = "Principal"
	RoleDeputyPrincipal = "Deputy Principal"
	RoleBOMMember       = "BOM Member"
	RoleSupportStaff    = "Support Staff"
	RoleLibrarian       = "Librarian"
	RoleCounselor       = "Counselor"
)

// Admin defines a console user and doubles as the staff directory entry
// consumed by the campaign recipient resolver.
type Admin struct {
	ID           int64     `json:"id" db:"id"`
	Name         string    `json:"name" db:"name"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	Role         string    `json:"role" db:"role" example:"Teacher"`
	Department   string    `json:"department,omitempty" db:"department" example:"Mathematics"`
	Position     string    `json:"position,omitempty" db:"position" example:"Board Secretary"`
	Phone        string    `json:"phone,omitempty" db:"phone"`
	Active       bool      `json:"active" db:"active"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time `json:"updatedAt" db:"updated_at"`
}
