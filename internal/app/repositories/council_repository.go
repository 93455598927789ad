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

var councilColumns = []string{
	"id", "student_id", "position", "department", "form", "stream",
	"start_date", "end_date", "responsibilities", "achievements", "status",
	"photo_url", "created_at", "updated_at",
}

// CouncilRepository handles student council database operations
type CouncilRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewCouncilRepository creates a new CouncilRepository
func NewCouncilRepository(db *pgxpool.Pool) *CouncilRepository {
	return &CouncilRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func scanCouncilMember(row pgx.Row) (*models.CouncilMember, error) {
	m := &models.CouncilMember{}
	err := row.Scan(
		&m.ID, &m.StudentID, &m.Position, &m.Department, &m.Form, &m.Stream,
		&m.StartDate, &m.EndDate, &m.Responsibilities, &m.Achievements, &m.Status,
		&m.PhotoURL, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return m, nil
}

// Create inserts a council membership record
func (r *CouncilRepository) Create(ctx context.Context, member *models.CouncilMember) (int64, error) {
	sql, args, err := r.sb.Insert("council_members").
		Columns("student_id", "position", "department", "form", "stream",
			"start_date", "end_date", "responsibilities", "achievements", "status", "photo_url").
		Values(member.StudentID, member.Position, member.Department, member.Form, member.Stream,
			member.StartDate, member.EndDate, member.Responsibilities, member.Achievements,
			member.Status, member.PhotoURL).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create council member query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		logger.Error().Err(err).Msg("Error executing create council member query")
		return 0, fmt.Errorf("error creating council member: %w", err)
	}
	return id, nil
}

// GetByID retrieves a council member with the student record attached
func (r *CouncilRepository) GetByID(ctx context.Context, id int64) (*models.CouncilMember, error) {
	sql, args, err := r.sb.Select(councilColumns...).
		From("council_members").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get council member query: %w", err)
	}

	member, err := scanCouncilMember(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCouncilMemberNotFound
		}
		return nil, fmt.Errorf("error getting council member by ID: %w", err)
	}

	if err := r.attachStudents(ctx, []*models.CouncilMember{member}); err != nil {
		return nil, err
	}
	return member, nil
}

// CouncilFilter narrows List results. Zero values mean "no filter".
type CouncilFilter struct {
	Department string
	Status     string
	Form       models.Form
}

// List retrieves council members ordered by department then position
func (r *CouncilRepository) List(ctx context.Context, filter CouncilFilter) ([]*models.CouncilMember, error) {
	q := r.sb.Select(councilColumns...).From("council_members")
	if filter.Department != "" {
		q = q.Where(squirrel.Eq{"department": filter.Department})
	}
	if filter.Status != "" {
		q = q.Where(squirrel.Eq{"status": filter.Status})
	}
	if filter.Form != "" {
		q = q.Where(squirrel.Eq{"form": filter.Form})
	}
	q = q.OrderBy("department ASC", "position ASC")

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list council members query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list council members query")
		return nil, fmt.Errorf("error querying council members: %w", err)
	}
	defer rows.Close()

	members := []*models.CouncilMember{}
	for rows.Next() {
		member, err := scanCouncilMember(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning council member row: %w", err)
		}
		members = append(members, member)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := r.attachStudents(ctx, members); err != nil {
		return nil, err
	}
	return members, nil
}

// attachStudents loads the referenced students in one query and joins them in memory
func (r *CouncilRepository) attachStudents(ctx context.Context, members []*models.CouncilMember) error {
	if len(members) == 0 {
		return nil
	}

	ids := make([]int64, 0, len(members))
	for _, m := range members {
		ids = append(ids, m.StudentID)
	}

	sql, args, err := r.sb.Select(studentColumns...).
		From("students").
		Where(squirrel.Eq{"id": ids}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build council students query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error querying council students: %w", err)
	}
	defer rows.Close()

	byID := map[int64]*models.Student{}
	for rows.Next() {
		student, err := scanStudent(rows)
		if err != nil {
			return fmt.Errorf("error scanning council student row: %w", err)
		}
		byID[student.ID] = student
	}
	if err := rows.Err(); err != nil {
		return err
	}

	for _, m := range members {
		m.Student = byID[m.StudentID]
	}
	return nil
}

// Update modifies a council membership record
func (r *CouncilRepository) Update(ctx context.Context, member *models.CouncilMember) error {
	sql, args, err := r.sb.Update("council_members").
		Set("position", member.Position).
		Set("department", member.Department).
		Set("form", member.Form).
		Set("stream", member.Stream).
		Set("start_date", member.StartDate).
		Set("end_date", member.EndDate).
		Set("responsibilities", member.Responsibilities).
		Set("achievements", member.Achievements).
		Set("status", member.Status).
		Set("photo_url", member.PhotoURL).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": member.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update council member query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error updating council member: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrCouncilMemberNotFound
	}
	return nil
}

// Delete removes a council membership record
func (r *CouncilRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("council_members").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete council member query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error deleting council member: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrCouncilMemberNotFound
	}
	return nil
}
