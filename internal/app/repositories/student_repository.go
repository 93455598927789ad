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

var studentColumns = []string{
	"id", "admission_no", "name", "form", "stream", "status",
	"kcpe_marks", "performance", "attendance_pct", "discipline_record",
	"guardian_name", "guardian_email", "guardian_phone", "emergency_contact", "address",
	"enrollment_date", "date_of_birth", "created_at", "updated_at",
}

// StudentRepository handles student database operations
type StudentRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewStudentRepository creates a new StudentRepository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func scanStudent(row pgx.Row) (*models.Student, error) {
	s := &models.Student{}
	err := row.Scan(
		&s.ID, &s.AdmissionNo, &s.Name, &s.Form, &s.Stream, &s.Status,
		&s.KCPEMarks, &s.Performance, &s.AttendancePct, &s.DisciplineRecord,
		&s.GuardianName, &s.GuardianEmail, &s.GuardianPhone, &s.EmergencyContact, &s.Address,
		&s.EnrollmentDate, &s.DateOfBirth, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// Create inserts a new student
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) (int64, error) {
	sql, args, err := r.sb.Insert("students").
		Columns("admission_no", "name", "form", "stream", "status",
			"kcpe_marks", "performance", "attendance_pct", "discipline_record",
			"guardian_name", "guardian_email", "guardian_phone", "emergency_contact", "address",
			"enrollment_date", "date_of_birth").
		Values(student.AdmissionNo, student.Name, student.Form, student.Stream, student.Status,
			student.KCPEMarks, student.Performance, student.AttendancePct, student.DisciplineRecord,
			student.GuardianName, student.GuardianEmail, student.GuardianPhone, student.EmergencyContact, student.Address,
			student.EnrollmentDate, student.DateOfBirth).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create student SQL")
		return 0, fmt.Errorf("failed to build create student query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		if dberrors.IsUniqueViolation(err) {
			return 0, apperrors.ErrAdmissionNoExists
		}
		logger.Error().Err(err).Msg("Error executing create student query")
		return 0, fmt.Errorf("error creating student: %w", err)
	}

	return id, nil
}

// GetByID retrieves a student by ID
func (r *StudentRepository) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	sql, args, err := r.sb.Select(studentColumns...).
		From("students").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get student query: %w", err)
	}

	student, err := scanStudent(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		logger.Error().Err(err).Int64("studentID", id).Msg("Error scanning student row")
		return nil, fmt.Errorf("error getting student by ID: %w", err)
	}

	return student, nil
}

// StudentFilter narrows List results. Zero values mean "no filter".
type StudentFilter struct {
	Form   models.Form
	Stream models.Stream
	Status models.StudentStatus
	Search string
	Offset uint64
	Limit  int
}

func (r *StudentRepository) applyFilter(q squirrel.SelectBuilder, filter StudentFilter) squirrel.SelectBuilder {
	if filter.Form != "" {
		q = q.Where(squirrel.Eq{"form": filter.Form})
	}
	if filter.Stream != "" {
		q = q.Where(squirrel.Eq{"stream": filter.Stream})
	}
	if filter.Status != "" {
		q = q.Where(squirrel.Eq{"status": filter.Status})
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		q = q.Where(squirrel.Or{
			squirrel.ILike{"name": pattern},
			squirrel.ILike{"admission_no": pattern},
			squirrel.ILike{"guardian_name": pattern},
		})
	}
	return q
}

// List retrieves students matching the filter, ordered by admission number
func (r *StudentRepository) List(ctx context.Context, filter StudentFilter) ([]*models.Student, error) {
	q := r.sb.Select(studentColumns...).From("students")
	q = r.applyFilter(q, filter)
	q = q.OrderBy("admission_no ASC")
	if filter.Limit > 0 {
		q = q.Offset(filter.Offset).Limit(uint64(filter.Limit))
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list students query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list students query")
		return nil, fmt.Errorf("error querying students: %w", err)
	}
	defer rows.Close()

	students := []*models.Student{}
	for rows.Next() {
		student, err := scanStudent(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning student row: %w", err)
		}
		students = append(students, student)
	}

	return students, rows.Err()
}

// Count returns the number of students matching the filter
func (r *StudentRepository) Count(ctx context.Context, filter StudentFilter) (int64, error) {
	q := r.sb.Select("COUNT(*)").From("students")
	filter.Limit = 0
	q = r.applyFilter(q, filter)

	sql, args, err := q.ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build count students query: %w", err)
	}

	var count int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting students: %w", err)
	}
	return count, nil
}

// Update updates a mutable student record. The admission number is
// immutable and never touched.
func (r *StudentRepository) Update(ctx context.Context, student *models.Student) error {
	sql, args, err := r.sb.Update("students").
		Set("name", student.Name).
		Set("form", student.Form).
		Set("stream", student.Stream).
		Set("status", student.Status).
		Set("kcpe_marks", student.KCPEMarks).
		Set("performance", student.Performance).
		Set("attendance_pct", student.AttendancePct).
		Set("discipline_record", student.DisciplineRecord).
		Set("guardian_name", student.GuardianName).
		Set("guardian_email", student.GuardianEmail).
		Set("guardian_phone", student.GuardianPhone).
		Set("emergency_contact", student.EmergencyContact).
		Set("address", student.Address).
		Set("date_of_birth", student.DateOfBirth).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": student.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update student query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("studentID", student.ID).Msg("Error executing update student query")
		return fmt.Errorf("error updating student: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}

	return nil
}

// Delete removes a student by ID
func (r *StudentRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("students").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete student query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("studentID", id).Msg("Error executing delete student query")
		return fmt.Errorf("error deleting student: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}

	return nil
}

// PromoteForm moves every student in fromForm to toForm in one bulk
// update, appending one promotion record per affected student in the
// same transaction. Returns the number of students moved.
func (r *StudentRepository) PromoteForm(ctx context.Context, fromForm, toForm models.Form) (int64, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to begin promotion transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	// The audit rows are written first, while the roster still reflects
	// the pre-promotion state.
	_, err = tx.Exec(ctx, `
		INSERT INTO promotion_records (student_id, from_form, to_form, from_stream, to_stream, action)
		SELECT id, form, $2, stream, stream, 'promote' FROM students WHERE form = $1`,
		fromForm, toForm)
	if err != nil {
		logger.Error().Err(err).Str("fromForm", string(fromForm)).Msg("Error writing promotion records")
		return 0, fmt.Errorf("error writing promotion records: %w", err)
	}

	tag, err := tx.Exec(ctx, `UPDATE students SET form = $2, updated_at = NOW() WHERE form = $1`,
		fromForm, toForm)
	if err != nil {
		logger.Error().Err(err).Str("fromForm", string(fromForm)).Msg("Error executing bulk promote")
		return 0, fmt.Errorf("error promoting students: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("failed to commit promotion transaction: %w", err)
	}

	return tag.RowsAffected(), nil
}

// GraduateForm marks every student in the form as graduated. The form
// column is left untouched; it now records the last form attended.
func (r *StudentRepository) GraduateForm(ctx context.Context, form models.Form) (int64, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to begin graduation transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, `
		INSERT INTO promotion_records (student_id, from_form, to_form, from_stream, to_stream, action)
		SELECT id, form, form, stream, stream, 'graduate' FROM students WHERE form = $1`,
		form)
	if err != nil {
		logger.Error().Err(err).Str("form", string(form)).Msg("Error writing graduation records")
		return 0, fmt.Errorf("error writing graduation records: %w", err)
	}

	tag, err := tx.Exec(ctx, `UPDATE students SET status = $2, updated_at = NOW() WHERE form = $1`,
		form, models.StatusGraduated)
	if err != nil {
		logger.Error().Err(err).Str("form", string(form)).Msg("Error executing bulk graduate")
		return 0, fmt.Errorf("error graduating students: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("failed to commit graduation transaction: %w", err)
	}

	return tag.RowsAffected(), nil
}

// Reinstate moves a graduated student back to Active in the target form,
// preserving the stream. No promotion record is written for a repeat.
func (r *StudentRepository) Reinstate(ctx context.Context, id int64, form models.Form) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE students SET status = $3, form = $2, updated_at = NOW() WHERE id = $1 AND status = $4`,
		id, form, models.StatusActive, models.StatusGraduated)
	if err != nil {
		logger.Error().Err(err).Int64("studentID", id).Msg("Error reinstating student")
		return fmt.Errorf("error reinstating student: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotGraduated
	}

	return nil
}

// ListPromotionRecords retrieves the audit trail for one student,
// newest first
func (r *StudentRepository) ListPromotionRecords(ctx context.Context, studentID int64) ([]*models.PromotionRecord, error) {
	sql, args, err := r.sb.Select("id", "student_id", "from_form", "to_form", "from_stream", "to_stream", "action", "created_at").
		From("promotion_records").
		Where(squirrel.Eq{"student_id": studentID}).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build promotion records query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying promotion records: %w", err)
	}
	defer rows.Close()

	records := []*models.PromotionRecord{}
	for rows.Next() {
		rec := &models.PromotionRecord{}
		if err := rows.Scan(&rec.ID, &rec.StudentID, &rec.FromForm, &rec.ToForm, &rec.FromStream, &rec.ToStream, &rec.Action, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning promotion record: %w", err)
		}
		records = append(records, rec)
	}

	return records, rows.Err()
}
