package models

import "time"

// RecipientGroup is a named audience segment resolved to a concrete
// email list when a campaign is created.
type RecipientGroup string

const (
	GroupParents        RecipientGroup = "parents"
	GroupTeachers       RecipientGroup = "teachers"
	GroupAdministration RecipientGroup = "administration"
	GroupBOM            RecipientGroup = "bom"
	GroupSupport        RecipientGroup = "support"
	GroupStaff          RecipientGroup = "staff"
	GroupAll            RecipientGroup = "all"
)

// CampaignAttachment describes a file attached to a campaign email.
type CampaignAttachment struct {
	URL      string `json:"url"`
	Name     string `json:"name"`
	Size     int64  `json:"size"`
	MimeType string `json:"mimeType,omitempty"`
}

// EmailCampaign represents a bulk email to a recipient group. The recipient
// list is materialized at creation time and never re-derived afterwards.
type EmailCampaign struct {
	ID          int64                `json:"id" db:"id"`
	Title       string               `json:"title" db:"title"`
	Subject     string               `json:"subject" db:"subject"`
	Body        string               `json:"body" db:"body"`
	Group       RecipientGroup       `json:"recipientGroup" db:"recipient_group"`
	Recipients  []string             `json:"recipients" db:"recipients"`
	Status      CampaignStatus       `json:"status" db:"status"`
	SentAt      *time.Time           `json:"sentAt,omitempty" db:"sent_at"`
	Attachments []CampaignAttachment `json:"attachments,omitempty" db:"attachments"`
	SentCount   int                  `json:"sentCount" db:"sent_count"`
	FailedCount int                  `json:"failedCount" db:"failed_count"`
	CreatedBy   int64                `json:"createdBy" db:"created_by"`
	CreatedAt   time.Time            `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time            `json:"updatedAt" db:"updated_at"`
}

// Subscriber is a newsletter subscriber: an email plus when it subscribed.
type Subscriber struct {
	ID           int64     `json:"id" db:"id"`
	Email        string    `json:"email" db:"email"`
	SubscribedAt time.Time `json:"subscribedAt" db:"subscribed_at"`
}
