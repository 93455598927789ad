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

var resourceColumns = []string{
	"id", "title", "description", "subject", "class", "teacher", "category",
	"access_level", "type", "uploaded_by", "downloads", "active", "created_at", "updated_at",
}

// ResourceRepository handles learning resource database operations
type ResourceRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewResourceRepository creates a new ResourceRepository
func NewResourceRepository(db *pgxpool.Pool) *ResourceRepository {
	return &ResourceRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func scanResource(row pgx.Row) (*models.Resource, error) {
	res := &models.Resource{}
	err := row.Scan(
		&res.ID, &res.Title, &res.Description, &res.Subject, &res.Class, &res.Teacher, &res.Category,
		&res.Access, &res.Type, &res.UploadedBy, &res.Downloads, &res.Active, &res.CreatedAt, &res.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return res, nil
}

// Create inserts a resource and its attached files in one transaction
func (r *ResourceRepository) Create(ctx context.Context, resource *models.Resource) (int64, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to begin create resource transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	sql, args, err := r.sb.Insert("resources").
		Columns("title", "description", "subject", "class", "teacher", "category", "access_level", "type", "uploaded_by", "active").
		Values(resource.Title, resource.Description, resource.Subject, resource.Class, resource.Teacher,
			resource.Category, resource.Access, resource.Type, resource.UploadedBy, resource.Active).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create resource query: %w", err)
	}

	var id int64
	if err := tx.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		logger.Error().Err(err).Msg("Error executing create resource query")
		return 0, fmt.Errorf("error creating resource: %w", err)
	}

	for _, file := range resource.Files {
		fileSQL, fileArgs, err := r.sb.Insert("resource_files").
			Columns("resource_id", "file_url", "file_name", "file_size", "extension", "category").
			Values(id, file.FileURL, file.FileName, file.FileSize, file.Extension, file.Category).
			ToSql()
		if err != nil {
			return 0, fmt.Errorf("failed to build create resource file query: %w", err)
		}
		if _, err := tx.Exec(ctx, fileSQL, fileArgs...); err != nil {
			logger.Error().Err(err).Str("file", file.FileName).Msg("Error inserting resource file")
			return 0, fmt.Errorf("error creating resource file: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("failed to commit create resource transaction: %w", err)
	}

	return id, nil
}

// listFiles fetches attached files for one resource in upload order
func (r *ResourceRepository) listFiles(ctx context.Context, resourceID int64) ([]models.ResourceFile, error) {
	sql, args, err := r.sb.Select("id", "resource_id", "file_url", "file_name", "file_size", "extension", "category", "uploaded_at").
		From("resource_files").
		Where(squirrel.Eq{"resource_id": resourceID}).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list resource files query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying resource files: %w", err)
	}
	defer rows.Close()

	files := []models.ResourceFile{}
	for rows.Next() {
		f := models.ResourceFile{}
		if err := rows.Scan(&f.ID, &f.ResourceID, &f.FileURL, &f.FileName, &f.FileSize, &f.Extension, &f.Category, &f.UploadedAt); err != nil {
			return nil, fmt.Errorf("error scanning resource file: %w", err)
		}
		files = append(files, f)
	}

	return files, rows.Err()
}

// GetByID retrieves a resource with its files
func (r *ResourceRepository) GetByID(ctx context.Context, id int64) (*models.Resource, error) {
	sql, args, err := r.sb.Select(resourceColumns...).
		From("resources").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get resource query: %w", err)
	}

	resource, err := scanResource(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrLearningResourceNotFound
		}
		return nil, fmt.Errorf("error getting resource by ID: %w", err)
	}

	files, err := r.listFiles(ctx, id)
	if err != nil {
		return nil, err
	}
	resource.Files = files

	return resource, nil
}

// ResourceFilter narrows List results. Zero values mean "no filter".
type ResourceFilter struct {
	Subject string
	Class   string
	Access  models.AccessLevel
	Type    models.FileCategory
	Offset  uint64
	Limit   int
}

func (r *ResourceRepository) applyFilter(q squirrel.SelectBuilder, filter ResourceFilter) squirrel.SelectBuilder {
	q = q.Where(squirrel.Eq{"active": true})
	if filter.Subject != "" {
		q = q.Where(squirrel.Eq{"subject": filter.Subject})
	}
	if filter.Class != "" {
		q = q.Where(squirrel.Eq{"class": filter.Class})
	}
	if filter.Access != "" {
		q = q.Where(squirrel.Eq{"access_level": filter.Access})
	}
	if filter.Type != "" {
		q = q.Where(squirrel.Eq{"type": filter.Type})
	}
	return q
}

// List retrieves active resources matching the filter, newest first
func (r *ResourceRepository) List(ctx context.Context, filter ResourceFilter) ([]*models.Resource, error) {
	q := r.sb.Select(resourceColumns...).From("resources")
	q = r.applyFilter(q, filter)
	q = q.OrderBy("created_at DESC")
	if filter.Limit > 0 {
		q = q.Offset(filter.Offset).Limit(uint64(filter.Limit))
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list resources query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list resources query")
		return nil, fmt.Errorf("error querying resources: %w", err)
	}
	defer rows.Close()

	resources := []*models.Resource{}
	for rows.Next() {
		resource, err := scanResource(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning resource row: %w", err)
		}
		resources = append(resources, resource)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, resource := range resources {
		files, err := r.listFiles(ctx, resource.ID)
		if err != nil {
			return nil, err
		}
		resource.Files = files
	}

	return resources, nil
}

// Count returns the number of active resources matching the filter
func (r *ResourceRepository) Count(ctx context.Context, filter ResourceFilter) (int64, error) {
	q := r.sb.Select("COUNT(*)").From("resources")
	filter.Limit = 0
	q = r.applyFilter(q, filter)

	sql, args, err := q.ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build count resources query: %w", err)
	}

	var count int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting resources: %w", err)
	}
	return count, nil
}

// Delete removes a resource and returns the URLs of its files so the
// caller can clean up storage
func (r *ResourceRepository) Delete(ctx context.Context, id int64) ([]string, error) {
	files, err := r.listFiles(ctx, id)
	if err != nil {
		return nil, err
	}

	sql, args, err := r.sb.Delete("resources").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build delete resource query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error deleting resource: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return nil, apperrors.ErrLearningResourceNotFound
	}

	urls := make([]string, 0, len(files))
	for _, f := range files {
		urls = append(urls, f.FileURL)
	}
	return urls, nil
}

// IncrementDownloads bumps the resource download counter
func (r *ResourceRepository) IncrementDownloads(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE resources SET downloads = downloads + 1, updated_at = NOW() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error incrementing downloads: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrLearningResourceNotFound
	}
	return nil
}
