package services

import (
	"context"
	"time"

	"github.com/omondi/shulehub/internal/app/models"
	"github.com/omondi/shulehub/internal/app/models/dto"
	"github.com/omondi/shulehub/internal/app/repositories"
	"github.com/omondi/shulehub/internal/pkg/apperrors"
	"github.com/omondi/shulehub/internal/pkg/email"
	"github.com/omondi/shulehub/internal/pkg/logger"
)

// CampaignStore is the persistence surface the campaign service needs.
type CampaignStore interface {
	Create(ctx context.Context, campaign *models.EmailCampaign) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.EmailCampaign, error)
	List(ctx context.Context) ([]*models.EmailCampaign, error)
	Update(ctx context.Context, campaign *models.EmailCampaign) error
	MarkPublished(ctx context.Context, id int64, sentAt time.Time, sent, failed int) error
	Delete(ctx context.Context, id int64) error
}

// RosterStore yields the student roster consumed by the recipient resolver.
type RosterStore interface {
	List(ctx context.Context, filter repositories.StudentFilter) ([]*models.Student, error)
}

// StaffStore yields the staff directory consumed by the recipient resolver.
type StaffStore interface {
	List(ctx context.Context) ([]*models.Admin, error)
}

// SubscriberLister yields the newsletter subscriber list for broadcasts.
type SubscriberLister interface {
	List(ctx context.Context) ([]*models.Subscriber, error)
}

// CampaignService manages email campaigns: drafting, recipient
// resolution, publishing and the one-shot subscriber broadcast.
type CampaignService struct {
	store       CampaignStore
	roster      RosterStore
	staff       StaffStore
	subscribers SubscriberLister
	mailer      email.Mailer
}

// NewCampaignService creates a new CampaignService
func NewCampaignService(store CampaignStore, roster RosterStore, staff StaffStore, subscribers SubscriberLister, mailer email.Mailer) *CampaignService {
	return &CampaignService{
		store:       store,
		roster:      roster,
		staff:       staff,
		subscribers: subscribers,
		mailer:      mailer,
	}
}

// resolveGroup materializes the email list for an audience segment from
// the current rosters.
func (s *CampaignService) resolveGroup(ctx context.Context, group models.RecipientGroup) ([]string, error) {
	students, err := s.roster.List(ctx, repositories.StudentFilter{Status: models.StatusActive})
	if err != nil {
		return nil, err
	}
	staff, err := s.staff.List(ctx)
	if err != nil {
		return nil, err
	}
	return ResolveRecipients(group, students, staff), nil
}

// Create drafts a campaign. The recipient list is resolved once, here,
// and stored with the campaign; later roster changes do not affect it.
func (s *CampaignService) Create(ctx context.Context, req *dto.CreateCampaignRequest, createdBy int64) (*models.EmailCampaign, error) {
	group := models.RecipientGroup(req.Group)
	recipients, err := s.resolveGroup(ctx, group)
	if err != nil {
		return nil, err
	}
	if len(recipients) == 0 {
		return nil, apperrors.ErrNoRecipients
	}

	campaign := &models.EmailCampaign{
		Title:       req.Title,
		Subject:     req.Subject,
		Body:        req.Body,
		Group:       group,
		Recipients:  recipients,
		Status:      models.CampaignDraft,
		Attachments: req.Attachments,
		CreatedBy:   createdBy,
	}

	id, err := s.store.Create(ctx, campaign)
	if err != nil {
		return nil, err
	}
	return s.store.GetByID(ctx, id)
}

// GetByID retrieves one campaign
func (s *CampaignService) GetByID(ctx context.Context, id int64) (*models.EmailCampaign, error) {
	return s.store.GetByID(ctx, id)
}

// List retrieves all campaigns, newest first
func (s *CampaignService) List(ctx context.Context) ([]*models.EmailCampaign, error) {
	return s.store.List(ctx)
}

// Update edits a draft campaign. Published campaigns are immutable.
func (s *CampaignService) Update(ctx context.Context, id int64, req *dto.UpdateCampaignRequest) (*models.EmailCampaign, error) {
	campaign, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if campaign.Status == models.CampaignPublished {
		return nil, apperrors.ErrCampaignAlreadyPublished
	}

	campaign.Title = req.Title
	campaign.Subject = req.Subject
	campaign.Body = req.Body

	if err := s.store.Update(ctx, campaign); err != nil {
		return nil, err
	}
	return s.store.GetByID(ctx, id)
}

// Delete removes a campaign
func (s *CampaignService) Delete(ctx context.Context, id int64) error {
	return s.store.Delete(ctx, id)
}

// sendToAll delivers one message per recipient and tallies the outcome.
// A failing recipient does not stop the rest of the batch.
func (s *CampaignService) sendToAll(ctx context.Context, recipients []string, subject, body string) dto.SendReport {
	report := dto.SendReport{Recipients: len(recipients)}
	for _, to := range recipients {
		msg := email.Message{To: to, Subject: subject, HTMLBody: body}
		if err := s.mailer.Send(ctx, msg); err != nil {
			logger.Warn().Err(err).Str("to", to).Msg("Campaign send failed for recipient")
			report.Failed++
			continue
		}
		report.Sent++
	}
	return report
}

// Publish sends a draft campaign to its materialized recipient list and
// marks it published with the delivery counters.
func (s *CampaignService) Publish(ctx context.Context, id int64) (*dto.SendReport, error) {
	campaign, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if campaign.Status == models.CampaignPublished {
		return nil, apperrors.ErrCampaignAlreadyPublished
	}
	if len(campaign.Recipients) == 0 {
		return nil, apperrors.ErrNoRecipients
	}

	report := s.sendToAll(ctx, campaign.Recipients, campaign.Subject, campaign.Body)

	// The send batch and the status flip are not transactional: if
	// MarkPublished fails here the mails are already out, the campaign
	// stays draft, and a retried publish re-sends the whole list.
	if err := s.store.MarkPublished(ctx, id, time.Now(), report.Sent, report.Failed); err != nil {
		return nil, err
	}

	logger.Info().
		Int64("campaignID", id).
		Int("sent", report.Sent).
		Int("failed", report.Failed).
		Msg("Campaign published")

	return &report, nil
}

// Broadcast is the one-shot bulk send to the newsletter subscriber
// list. No campaign record is created.
func (s *CampaignService) Broadcast(ctx context.Context, req *dto.BroadcastRequest) (*dto.SendReport, error) {
	subscribers, err := s.subscribers.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(subscribers) == 0 {
		return nil, apperrors.ErrNoRecipients
	}

	recipients := make([]string, 0, len(subscribers))
	for _, sub := range subscribers {
		recipients = append(recipients, sub.Email)
	}

	report := s.sendToAll(ctx, recipients, req.Subject, req.Body)
	return &report, nil
}

// PreviewRecipients resolves a group against the current rosters
// without creating anything.
func (s *CampaignService) PreviewRecipients(ctx context.Context, group models.RecipientGroup) ([]string, error) {
	return s.resolveGroup(ctx, group)
}
