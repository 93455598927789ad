package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/omondi/shulehub/internal/app/models"
	"github.com/omondi/shulehub/internal/pkg/apperrors"
	"github.com/omondi/shulehub/internal/pkg/logger"
)

var campaignColumns = []string{
	"id", "title", "subject", "body", "recipient_group", "recipients", "status",
	"sent_at", "attachments", "sent_count", "failed_count", "created_by", "created_at", "updated_at",
}

// CampaignRepository handles email campaign database operations
type CampaignRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewCampaignRepository creates a new CampaignRepository
func NewCampaignRepository(db *pgxpool.Pool) *CampaignRepository {
	return &CampaignRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func scanCampaign(row pgx.Row) (*models.EmailCampaign, error) {
	c := &models.EmailCampaign{}
	var attachments []byte
	err := row.Scan(
		&c.ID, &c.Title, &c.Subject, &c.Body, &c.Group, &c.Recipients, &c.Status,
		&c.SentAt, &attachments, &c.SentCount, &c.FailedCount, &c.CreatedBy, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	// Malformed or absent attachment JSON degrades to an empty list.
	if len(attachments) > 0 {
		if err := json.Unmarshal(attachments, &c.Attachments); err != nil {
			logger.Warn().Err(err).Int64("campaignID", c.ID).Msg("Malformed attachment JSON, defaulting to empty list")
			c.Attachments = nil
		}
	}

	return c, nil
}

// Create inserts a new draft campaign with its materialized recipient list
func (r *CampaignRepository) Create(ctx context.Context, campaign *models.EmailCampaign) (int64, error) {
	attachments, err := json.Marshal(campaign.Attachments)
	if err != nil {
		return 0, fmt.Errorf("failed to encode attachments: %w", err)
	}

	sql, args, err := r.sb.Insert("email_campaigns").
		Columns("title", "subject", "body", "recipient_group", "recipients", "status", "attachments", "created_by").
		Values(campaign.Title, campaign.Subject, campaign.Body, campaign.Group, campaign.Recipients, campaign.Status, attachments, campaign.CreatedBy).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create campaign query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		logger.Error().Err(err).Msg("Error executing create campaign query")
		return 0, fmt.Errorf("error creating campaign: %w", err)
	}

	return id, nil
}

// GetByID retrieves a campaign by ID
func (r *CampaignRepository) GetByID(ctx context.Context, id int64) (*models.EmailCampaign, error) {
	sql, args, err := r.sb.Select(campaignColumns...).
		From("email_campaigns").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get campaign query: %w", err)
	}

	campaign, err := scanCampaign(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCampaignNotFound
		}
		return nil, fmt.Errorf("error getting campaign by ID: %w", err)
	}

	return campaign, nil
}

// List retrieves all campaigns, newest first
func (r *CampaignRepository) List(ctx context.Context) ([]*models.EmailCampaign, error) {
	sql, args, err := r.sb.Select(campaignColumns...).
		From("email_campaigns").
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list campaigns query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list campaigns query")
		return nil, fmt.Errorf("error querying campaigns: %w", err)
	}
	defer rows.Close()

	campaigns := []*models.EmailCampaign{}
	for rows.Next() {
		campaign, err := scanCampaign(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning campaign row: %w", err)
		}
		campaigns = append(campaigns, campaign)
	}

	return campaigns, rows.Err()
}

// Update edits a draft campaign's content. Recipients stay as created.
func (r *CampaignRepository) Update(ctx context.Context, campaign *models.EmailCampaign) error {
	sql, args, err := r.sb.Update("email_campaigns").
		Set("title", campaign.Title).
		Set("subject", campaign.Subject).
		Set("body", campaign.Body).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": campaign.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update campaign query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error updating campaign: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrCampaignNotFound
	}

	return nil
}

// MarkPublished flips a campaign to published and records the delivery counters
func (r *CampaignRepository) MarkPublished(ctx context.Context, id int64, sentAt time.Time, sent, failed int) error {
	sql, args, err := r.sb.Update("email_campaigns").
		Set("status", models.CampaignPublished).
		Set("sent_at", sentAt).
		Set("sent_count", sent).
		Set("failed_count", failed).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build publish campaign query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error publishing campaign: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrCampaignNotFound
	}

	return nil
}

// Delete removes a campaign by ID
func (r *CampaignRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("email_campaigns").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete campaign query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error deleting campaign: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrCampaignNotFound
	}

	return nil
}
