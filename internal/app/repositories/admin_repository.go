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
	"github.com/omondi/shulehub/internal/pkg/logger"
)

var adminColumns = []string{
	"id", "name", "email", "password_hash", "role", "department", "position", "phone", "active", "created_at", "updated_at",
}

// AdminRepository handles admin/staff database operations
type AdminRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewAdminRepository creates a new AdminRepository
func NewAdminRepository(db *pgxpool.Pool) *AdminRepository {
	return &AdminRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func scanAdmin(row pgx.Row) (*models.Admin, error) {
	a := &models.Admin{}
	err := row.Scan(&a.ID, &a.Name, &a.Email, &a.PasswordHash, &a.Role, &a.Department, &a.Position, &a.Phone, &a.Active, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return a, nil
}

// Create inserts a new admin
func (r *AdminRepository) Create(ctx context.Context, admin *models.Admin) (int64, error) {
	sql, args, err := r.sb.Insert("admins").
		Columns("name", "email", "password_hash", "role", "department", "position", "phone", "active").
		Values(admin.Name, admin.Email, admin.PasswordHash, admin.Role, admin.Department, admin.Position, admin.Phone, admin.Active).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create admin query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		if dberrors.IsUniqueViolation(err) {
			return 0, apperrors.ErrEmailAlreadyExists
		}
		logger.Error().Err(err).Msg("Error executing create admin query")
		return 0, fmt.Errorf("error creating admin: %w", err)
	}

	return id, nil
}

// GetByID retrieves an admin by ID
func (r *AdminRepository) GetByID(ctx context.Context, id int64) (*models.Admin, error) {
	sql, args, err := r.sb.Select(adminColumns...).
		From("admins").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get admin query: %w", err)
	}

	admin, err := scanAdmin(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrAdminNotFound
		}
		return nil, fmt.Errorf("error getting admin by ID: %w", err)
	}

	return admin, nil
}

// GetByEmail retrieves an admin by email
func (r *AdminRepository) GetByEmail(ctx context.Context, email string) (*models.Admin, error) {
	sql, args, err := r.sb.Select(adminColumns...).
		From("admins").
		Where(squirrel.Eq{"email": email}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get admin by email query: %w", err)
	}

	admin, err := scanAdmin(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrAdminNotFound
		}
		return nil, fmt.Errorf("error getting admin by email: %w", err)
	}

	return admin, nil
}

// List retrieves all admins ordered by name
func (r *AdminRepository) List(ctx context.Context) ([]*models.Admin, error) {
	sql, args, err := r.sb.Select(adminColumns...).
		From("admins").
		OrderBy("name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list admins query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list admins query")
		return nil, fmt.Errorf("error querying admins: %w", err)
	}
	defer rows.Close()

	admins := []*models.Admin{}
	for rows.Next() {
		admin, err := scanAdmin(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning admin row: %w", err)
		}
		admins = append(admins, admin)
	}

	return admins, rows.Err()
}

// Update updates an admin's profile fields
func (r *AdminRepository) Update(ctx context.Context, admin *models.Admin) error {
	sql, args, err := r.sb.Update("admins").
		Set("name", admin.Name).
		Set("role", admin.Role).
		Set("department", admin.Department).
		Set("position", admin.Position).
		Set("phone", admin.Phone).
		Set("active", admin.Active).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": admin.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update admin query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error updating admin: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrAdminNotFound
	}

	return nil
}

// Delete removes an admin by ID
func (r *AdminRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("admins").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete admin query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error deleting admin: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrAdminNotFound
	}

	return nil
}
