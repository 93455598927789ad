package dto

import "github.com/omondi/shulehub/internal/app/models"

// --- Request DTOs ---

// CreateCampaignRequest creates a draft campaign. The recipient list is
// resolved from the group at creation time and stored with the campaign.
type CreateCampaignRequest struct {
	Title       string                      `json:"title" binding:"required,min=2,max=200"`
	Subject     string                      `json:"subject" binding:"required,min=2,max=200"`
	Body        string                      `json:"body" binding:"required,min=2"`
	Group       string                      `json:"recipientGroup" binding:"required,oneof=parents teachers administration bom support staff all"`
	Attachments []models.CampaignAttachment `json:"attachments" binding:"omitempty,dive"`
}

// UpdateCampaignRequest edits a draft campaign. Recipients are not
// re-derived; the materialized list stays as created.
type UpdateCampaignRequest struct {
	Title   string `json:"title" binding:"required,min=2,max=200"`
	Subject string `json:"subject" binding:"required,min=2,max=200"`
	Body    string `json:"body" binding:"required,min=2"`
}

// BroadcastRequest is the one-shot bulk send to the subscriber list.
type BroadcastRequest struct {
	Subject string `json:"subject" binding:"required,min=2,max=200"`
	Body    string `json:"body" binding:"required,min=2"`
}

// --- Response DTOs ---

// RecipientGroupInfo describes one selectable audience segment.
type RecipientGroupInfo struct {
	Key   string `json:"key" example:"parents"`
	Label string `json:"label" example:"Parents and Guardians"`
}

// SendReport reports delivery counters after a publish or broadcast.
type SendReport struct {
	Recipients int `json:"recipients" example:"120"`
	Sent       int `json:"sent" example:"118"`
	Failed     int `json:"failed" example:"2"`
}
