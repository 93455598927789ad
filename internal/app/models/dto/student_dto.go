package dto

// --- Request DTOs ---

// CreateStudentRequest represents the data needed to register a student.
type CreateStudentRequest struct {
	AdmissionNo      string `json:"admissionNo" binding:"required,admissionno" example:"ADM1042"`
	Name             string `json:"name" binding:"required,min=2,max=100" example:"Wanjiku Kamau"`
	Form             string `json:"form" binding:"required,oneof='Form 1' 'Form 2' 'Form 3' 'Form 4'" example:"Form 1"`
	Stream           string `json:"stream" binding:"required,oneof=East West North South" example:"East"`
	KCPEMarks        *int   `json:"kcpeMarks" binding:"omitempty,gte=0,lte=500" example:"378"`
	Performance      string `json:"performance" binding:"omitempty,max=50"`
	AttendancePct    int    `json:"attendancePct" binding:"omitempty,gte=0,lte=100" example:"94"`
	DisciplineRecord string `json:"disciplineRecord" binding:"omitempty,max=50"`
	GuardianName     string `json:"guardianName" binding:"required,min=2,max=100"`
	GuardianEmail    string `json:"guardianEmail" binding:"omitempty,email"`
	GuardianPhone    string `json:"guardianPhone" binding:"required,min=7,max=20"`
	EmergencyContact string `json:"emergencyContact" binding:"omitempty,max=100"`
	Address          string `json:"address" binding:"omitempty,max=255"`
	EnrollmentDate   string `json:"enrollmentDate" binding:"omitempty" example:"2026-01-06"`
	DateOfBirth      string `json:"dateOfBirth" binding:"omitempty" example:"2012-03-18"`
}

// UpdateStudentRequest represents an update to a student record.
// The admission number is immutable and deliberately absent.
type UpdateStudentRequest struct {
	Name             string `json:"name" binding:"required,min=2,max=100"`
	Form             string `json:"form" binding:"required,oneof='Form 1' 'Form 2' 'Form 3' 'Form 4'"`
	Stream           string `json:"stream" binding:"required,oneof=East West North South"`
	Status           string `json:"status" binding:"required,oneof=Active Inactive Graduated Transferred"`
	KCPEMarks        *int   `json:"kcpeMarks" binding:"omitempty,gte=0,lte=500"`
	Performance      string `json:"performance" binding:"omitempty,max=50"`
	AttendancePct    int    `json:"attendancePct" binding:"omitempty,gte=0,lte=100"`
	DisciplineRecord string `json:"disciplineRecord" binding:"omitempty,max=50"`
	GuardianName     string `json:"guardianName" binding:"required,min=2,max=100"`
	GuardianEmail    string `json:"guardianEmail" binding:"omitempty,email"`
	GuardianPhone    string `json:"guardianPhone" binding:"required,min=7,max=20"`
	EmergencyContact string `json:"emergencyContact" binding:"omitempty,max=100"`
	Address          string `json:"address" binding:"omitempty,max=255"`
	DateOfBirth      string `json:"dateOfBirth" binding:"omitempty"`
}

// StudentFilterRequest carries list filters and pagination.
type StudentFilterRequest struct {
	Form     string `form:"form" binding:"omitempty,oneof='Form 1' 'Form 2' 'Form 3' 'Form 4'"`
	Stream   string `form:"stream" binding:"omitempty,oneof=East West North South"`
	Status   string `form:"status" binding:"omitempty,oneof=Active Inactive Graduated Transferred"`
	Search   string `form:"search" binding:"omitempty,max=100"`
	Page     int    `form:"page" binding:"omitempty,gte=1"`
	PageSize int    `form:"pageSize" binding:"omitempty,gte=1,lte=100"`
}

// PromotionRequest drives the bulk promote/graduate PATCH endpoint.
type PromotionRequest struct {
	Form   string `json:"form" binding:"required,oneof='Form 1' 'Form 2' 'Form 3' 'Form 4'" example:"Form 1"`
	Action string `json:"action" binding:"required,oneof=promote graduate" example:"promote"`
}

// RepeatRequest moves a graduated student back into an active class.
type RepeatRequest struct {
	Form string `json:"form" binding:"required,oneof='Form 1' 'Form 2' 'Form 3' 'Form 4'" example:"Form 4"`
}

// BulkDeleteRequest lists the ids to delete; results are settled per item.
type BulkDeleteRequest struct {
	IDs []int64 `json:"ids" binding:"required,min=1,dive,gt=0"`
}

// --- Response DTOs ---

// PromotionResponse reports the aggregate outcome of a bulk lifecycle change.
type PromotionResponse struct {
	Form     string `json:"form" example:"Form 1"`
	Action   string `json:"action" example:"promote"`
	Affected int64  `json:"affected" example:"42"`
}
