package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/omondi/shulehub/internal/app/models"
	"github.com/omondi/shulehub/internal/pkg/apperrors"
	"github.com/omondi/shulehub/internal/pkg/dberrors"
)

// SubscriberRepository handles newsletter subscriber database operations
type SubscriberRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewSubscriberRepository creates a new SubscriberRepository
func NewSubscriberRepository(db *pgxpool.Pool) *SubscriberRepository {
	return &SubscriberRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create adds a subscriber email
func (r *SubscriberRepository) Create(ctx context.Context, email string) (int64, error) {
	sql, args, err := r.sb.Insert("subscribers").
		Columns("email").
		Values(email).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create subscriber query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		if dberrors.IsUniqueViolation(err) {
			return 0, apperrors.ErrAlreadySubscribed
		}
		return 0, fmt.Errorf("error creating subscriber: %w", err)
	}
	return id, nil
}

// List returns all subscribers, oldest first
func (r *SubscriberRepository) List(ctx context.Context) ([]*models.Subscriber, error) {
	sql, args, err := r.sb.Select("id", "email", "subscribed_at").
		From("subscribers").
		OrderBy("subscribed_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list subscribers query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying subscribers: %w", err)
	}
	defer rows.Close()

	subscribers := []*models.Subscriber{}
	for rows.Next() {
		s := &models.Subscriber{}
		if err := rows.Scan(&s.ID, &s.Email, &s.SubscribedAt); err != nil {
			return nil, fmt.Errorf("error scanning subscriber row: %w", err)
		}
		subscribers = append(subscribers, s)
	}
	return subscribers, rows.Err()
}

// GetByEmail looks up a subscriber by address
func (r *SubscriberRepository) GetByEmail(ctx context.Context, email string) (*models.Subscriber, error) {
	sql, args, err := r.sb.Select("id", "email", "subscribed_at").
		From("subscribers").
		Where(squirrel.Eq{"email": email}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get subscriber query: %w", err)
	}

	s := &models.Subscriber{}
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&s.ID, &s.Email, &s.SubscribedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrSubscriberNotFound
		}
		return nil, fmt.Errorf("error getting subscriber by email: %w", err)
	}
	return s, nil
}

// Delete removes a subscriber by email (unsubscribe)
func (r *SubscriberRepository) Delete(ctx context.Context, email string) error {
	sql, args, err := r.sb.Delete("subscribers").Where(squirrel.Eq{"email": email}).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete subscriber query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error deleting subscriber: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrSubscriberNotFound
	}
	return nil
}
