package models

// Form represents a grade level. Forms are ordered; promotion moves a
// student to the next form in the sequence.
type Form string

const (
	Form1 Form = "Form 1"
	Form2 Form = "Form 2"
	Form3 Form = "Form 3"
	Form4 Form = "Form 4"
)

// OrderedForms lists all forms in promotion order. Form 4 is terminal.
var OrderedForms = []Form{Form1, Form2, Form3, Form4}

// IsValidForm reports whether f is one of the known ordered levels.
func IsValidForm(f Form) bool {
	for _, known := range OrderedForms {
		if f == known {
			return true
		}
	}
	return false
}

// NextForm returns the form after f in the ordered sequence.
// ok is false when f is the terminal form or unknown.
func NextForm(f Form) (next Form, ok bool) {
	for i, known := range OrderedForms {
		if f == known {
			if i == len(OrderedForms)-1 {
				return "", false
			}
			return OrderedForms[i+1], true
		}
	}
	return "", false
}

// IsTerminalForm reports whether f is the last form in the sequence.
func IsTerminalForm(f Form) bool {
	return len(OrderedForms) > 0 && f == OrderedForms[len(OrderedForms)-1]
}

// Stream is a class-section label orthogonal to form.
type Stream string

const (
	StreamEast  Stream = "East"
	StreamWest  Stream = "West"
	StreamNorth Stream = "North"
	StreamSouth Stream = "South"
)

// IsValidStream reports whether s is one of the known streams.
func IsValidStream(s Stream) bool {
	switch s {
	case StreamEast, StreamWest, StreamNorth, StreamSouth:
		return true
	}
	return false
}

// StudentStatus represents a student's lifecycle status
type StudentStatus string

const (
	StatusActive      StudentStatus = "Active"
	StatusInactive    StudentStatus = "Inactive"
	StatusGraduated   StudentStatus = "Graduated"
	StatusTransferred StudentStatus = "Transferred"
)

// IsValidStudentStatus reports whether s is a known lifecycle status.
func IsValidStudentStatus(s StudentStatus) bool {
	switch s {
	case StatusActive, StatusInactive, StatusGraduated, StatusTransferred:
		return true
	}
	return false
}

// PromotionAction selects the bulk lifecycle operation applied to a form.
type PromotionAction string

const (
	ActionPromote  PromotionAction = "promote"
	ActionGraduate PromotionAction = "graduate"
)

// CampaignStatus represents the lifecycle of an email campaign.
type CampaignStatus string

const (
	CampaignDraft     CampaignStatus = "draft"
	CampaignPublished CampaignStatus = "published"
)

// AccessLevel restricts who may view a learning resource.
type AccessLevel string

const (
	AccessStudent AccessLevel = "student"
	AccessTeacher AccessLevel = "teacher"
	AccessAdmin   AccessLevel = "admin"
)
