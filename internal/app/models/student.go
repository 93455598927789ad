package models

import "time"

// Student defines the student model based on the 'students' table
type Student struct {
	ID          int64  `json:"id" db:"id" example:"1"`
	AdmissionNo string `json:"admissionNo" db:"admission_no" example:"ADM1042"` // Unique, immutable admission number
	Name        string `json:"name" db:"name" example:"Wanjiku Kamau"`

	Form   Form          `json:"form" db:"form" example:"Form 2"`
	Stream Stream        `json:"stream" db:"stream" example:"East"`
	Status StudentStatus `json:"status" db:"status" example:"Active"`

	// Descriptive academic attributes
	KCPEMarks        *int   `json:"kcpeMarks,omitempty" db:"kcpe_marks" example:"378"`
	Performance      string `json:"performance,omitempty" db:"performance" example:"Above Average"`
	AttendancePct    int    `json:"attendancePct" db:"attendance_pct" example:"94"`
	DisciplineRecord string `json:"disciplineRecord,omitempty" db:"discipline_record" example:"Good"`

	// Guardian contact block
	GuardianName     string `json:"guardianName" db:"guardian_name"`
	GuardianEmail    string `json:"guardianEmail,omitempty" db:"guardian_email"`
	GuardianPhone    string `json:"guardianPhone" db:"guardian_phone"`
	EmergencyContact string `json:"emergencyContact,omitempty" db:"emergency_contact"`
	Address          string `json:"address,omitempty" db:"address"`

	EnrollmentDate time.Time  `json:"enrollmentDate" db:"enrollment_date"`
	DateOfBirth    *time.Time `json:"dateOfBirth,omitempty" db:"date_of_birth"`
	CreatedAt      time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt      time.Time  `json:"updatedAt" db:"updated_at"`
}
