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
	"github.com/omondi/shulehub/internal/pkg/logger"
)

var newsColumns = []string{
	"id", "title", "body", "category", "event_date", "published",
	"created_by", "created_at", "updated_at",
}

// NewsRepository handles news and event database operations
type NewsRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewNewsRepository creates a new NewsRepository
func NewNewsRepository(db *pgxpool.Pool) *NewsRepository {
	return &NewsRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func scanNewsItem(row pgx.Row) (*models.NewsItem, error) {
	n := &models.NewsItem{}
	err := row.Scan(
		&n.ID, &n.Title, &n.Body, &n.Category, &n.EventDate, &n.Published,
		&n.CreatedBy, &n.CreatedAt, &n.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return n, nil
}

// Create inserts a news item
func (r *NewsRepository) Create(ctx context.Context, item *models.NewsItem) (int64, error) {
	sql, args, err := r.sb.Insert("news_items").
		Columns("title", "body", "category", "event_date", "published", "created_by").
		Values(item.Title, item.Body, item.Category, item.EventDate, item.Published, item.CreatedBy).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create news item query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		logger.Error().Err(err).Msg("Error executing create news item query")
		return 0, fmt.Errorf("error creating news item: %w", err)
	}
	return id, nil
}

// GetByID retrieves a news item
func (r *NewsRepository) GetByID(ctx context.Context, id int64) (*models.NewsItem, error) {
	sql, args, err := r.sb.Select(newsColumns...).
		From("news_items").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get news item query: %w", err)
	}

	item, err := scanNewsItem(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNewsItemNotFound
		}
		return nil, fmt.Errorf("error getting news item by ID: %w", err)
	}
	return item, nil
}

// NewsFilter narrows List results. Zero values mean "no filter".
type NewsFilter struct {
	Category  string
	Published *bool
}

// List retrieves news items, newest first
func (r *NewsRepository) List(ctx context.Context, filter NewsFilter) ([]*models.NewsItem, error) {
	q := r.sb.Select(newsColumns...).From("news_items")
	if filter.Category != "" {
		q = q.Where(squirrel.Eq{"category": filter.Category})
	}
	if filter.Published != nil {
		q = q.Where(squirrel.Eq{"published": *filter.Published})
	}
	q = q.OrderBy("created_at DESC")

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list news items query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list news items query")
		return nil, fmt.Errorf("error querying news items: %w", err)
	}
	defer rows.Close()

	items := []*models.NewsItem{}
	for rows.Next() {
		item, err := scanNewsItem(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning news item row: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// Update edits a news item
func (r *NewsRepository) Update(ctx context.Context, item *models.NewsItem) error {
	sql, args, err := r.sb.Update("news_items").
		Set("title", item.Title).
		Set("body", item.Body).
		Set("category", item.Category).
		Set("event_date", item.EventDate).
		Set("published", item.Published).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": item.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update news item query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error updating news item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNewsItemNotFound
	}
	return nil
}

// Delete removes a news item
func (r *NewsRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("news_items").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete news item query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error deleting news item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNewsItemNotFound
	}
	return nil
}
