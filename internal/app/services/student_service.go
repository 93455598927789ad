package services

import (
	"context"
	"io"
	"strconv"
	"time"

	"github.com/omondi/shulehub/internal/app/models"
	"github.com/omondi/shulehub/internal/app/models/dto"
	"github.com/omondi/shulehub/internal/app/repositories"
	"github.com/omondi/shulehub/internal/pkg/apperrors"
	"github.com/omondi/shulehub/internal/pkg/helpers"
	"github.com/omondi/shulehub/internal/pkg/logger"
	"github.com/omondi/shulehub/internal/pkg/validation"
)

// StudentStore is the persistence surface the student service needs.
type StudentStore interface {
	Create(ctx context.Context, student *models.Student) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.Student, error)
	List(ctx context.Context, filter repositories.StudentFilter) ([]*models.Student, error)
	Count(ctx context.Context, filter repositories.StudentFilter) (int64, error)
	Update(ctx context.Context, student *models.Student) error
	Delete(ctx context.Context, id int64) error
	PromoteForm(ctx context.Context, fromForm, toForm models.Form) (int64, error)
	GraduateForm(ctx context.Context, form models.Form) (int64, error)
	Reinstate(ctx context.Context, id int64, form models.Form) error
	ListPromotionRecords(ctx context.Context, studentID int64) ([]*models.PromotionRecord, error)
}

// StudentService implements student roster management and the
// promote/graduate/repeat lifecycle.
type StudentService struct {
	store StudentStore
}

// NewStudentService creates a new StudentService
func NewStudentService(store StudentStore) *StudentService {
	return &StudentService{store: store}
}

// Create registers a new student on the roster
func (s *StudentService) Create(ctx context.Context, req *dto.CreateStudentRequest) (*models.Student, error) {
	if !validation.IsValidAdmissionNo(req.AdmissionNo) {
		return nil, apperrors.NewValidationError("admission number must look like ADM1042")
	}

	enrollment := time.Now()
	if parsed := helpers.ParseDate(req.EnrollmentDate); parsed != nil {
		enrollment = *parsed
	}

	student := &models.Student{
		AdmissionNo:      req.AdmissionNo,
		Name:             req.Name,
		Form:             models.Form(req.Form),
		Stream:           models.Stream(req.Stream),
		Status:           models.StatusActive,
		KCPEMarks:        req.KCPEMarks,
		Performance:      req.Performance,
		AttendancePct:    req.AttendancePct,
		DisciplineRecord: req.DisciplineRecord,
		GuardianName:     req.GuardianName,
		GuardianEmail:    req.GuardianEmail,
		GuardianPhone:    req.GuardianPhone,
		EmergencyContact: req.EmergencyContact,
		Address:          req.Address,
		EnrollmentDate:   enrollment,
		DateOfBirth:      helpers.ParseDate(req.DateOfBirth),
	}

	id, err := s.store.Create(ctx, student)
	if err != nil {
		return nil, err
	}

	return s.store.GetByID(ctx, id)
}

// GetByID retrieves one student
func (s *StudentService) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	return s.store.GetByID(ctx, id)
}

// List retrieves a page of students matching the filter
func (s *StudentService) List(ctx context.Context, req *dto.StudentFilterRequest) ([]*models.Student, dto.PaginationInfo, error) {
	offset, limit := helpers.CalculateOffsetLimit(req.Page, req.PageSize)
	filter := repositories.StudentFilter{
		Form:   models.Form(req.Form),
		Stream: models.Stream(req.Stream),
		Status: models.StudentStatus(req.Status),
		Search: req.Search,
		Offset: offset,
		Limit:  limit,
	}

	students, err := s.store.List(ctx, filter)
	if err != nil {
		return nil, dto.PaginationInfo{}, err
	}
	total, err := s.store.Count(ctx, filter)
	if err != nil {
		return nil, dto.PaginationInfo{}, err
	}

	return students, helpers.NewPaginationInfo(total, req.Page, req.PageSize), nil
}

// Update edits a student record. The admission number is immutable.
func (s *StudentService) Update(ctx context.Context, id int64, req *dto.UpdateStudentRequest) (*models.Student, error) {
	student, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	student.Name = req.Name
	student.Form = models.Form(req.Form)
	student.Stream = models.Stream(req.Stream)
	student.Status = models.StudentStatus(req.Status)
	student.KCPEMarks = req.KCPEMarks
	student.Performance = req.Performance
	student.AttendancePct = req.AttendancePct
	student.DisciplineRecord = req.DisciplineRecord
	student.GuardianName = req.GuardianName
	student.GuardianEmail = req.GuardianEmail
	student.GuardianPhone = req.GuardianPhone
	student.EmergencyContact = req.EmergencyContact
	student.Address = req.Address
	student.DateOfBirth = helpers.ParseDate(req.DateOfBirth)

	if err := s.store.Update(ctx, student); err != nil {
		return nil, err
	}
	return s.store.GetByID(ctx, id)
}

// Delete removes one student
func (s *StudentService) Delete(ctx context.Context, id int64) error {
	return s.store.Delete(ctx, id)
}

// BulkDelete removes a batch of students, settling each id on its own.
// One failing id does not abort the rest.
func (s *StudentService) BulkDelete(ctx context.Context, ids []int64) dto.BulkResult {
	result := dto.BulkResult{}
	for _, id := range ids {
		if err := s.store.Delete(ctx, id); err != nil {
			logger.Warn().Err(err).Int64("studentID", id).Msg("Bulk delete: skipping student")
			result.Failed++
			result.FailedIDs = append(result.FailedIDs, id)
			continue
		}
		result.Deleted++
	}
	return result
}

// ApplyLifecycle runs a bulk promote or graduate over one form.
// Promotion out of the terminal form is rejected before any mutation.
func (s *StudentService) ApplyLifecycle(ctx context.Context, req *dto.PromotionRequest) (*dto.PromotionResponse, error) {
	form := models.Form(req.Form)
	if !models.IsValidForm(form) {
		return nil, apperrors.ErrUnknownForm
	}

	var affected int64
	var err error

	switch models.PromotionAction(req.Action) {
	case models.ActionPromote:
		next, ok := models.NextForm(form)
		if !ok {
			return nil, apperrors.ErrTerminalForm
		}
		affected, err = s.store.PromoteForm(ctx, form, next)
	case models.ActionGraduate:
		affected, err = s.store.GraduateForm(ctx, form)
	default:
		return nil, apperrors.ErrUnknownPromotionAction
	}
	if err != nil {
		return nil, err
	}

	logger.Info().
		Str("form", req.Form).
		Str("action", req.Action).
		Int64("affected", affected).
		Msg("Applied bulk lifecycle change")

	return &dto.PromotionResponse{Form: req.Form, Action: req.Action, Affected: affected}, nil
}

// Repeat moves a graduated student back into an active class. It is the
// only reverse transition and leaves the promotion audit trail untouched.
func (s *StudentService) Repeat(ctx context.Context, id int64, req *dto.RepeatRequest) (*models.Student, error) {
	form := models.Form(req.Form)
	if !models.IsValidForm(form) {
		return nil, apperrors.ErrUnknownForm
	}

	if _, err := s.store.GetByID(ctx, id); err != nil {
		return nil, err
	}
	if err := s.store.Reinstate(ctx, id, form); err != nil {
		return nil, err
	}
	return s.store.GetByID(ctx, id)
}

// PromotionHistory returns the audit trail for one student, newest first
func (s *StudentService) PromotionHistory(ctx context.Context, id int64) ([]*models.PromotionRecord, error) {
	if _, err := s.store.GetByID(ctx, id); err != nil {
		return nil, err
	}
	return s.store.ListPromotionRecords(ctx, id)
}

// ExportCSV writes the filtered roster as CSV
func (s *StudentService) ExportCSV(ctx context.Context, req *dto.StudentFilterRequest, w io.Writer) error {
	filter := repositories.StudentFilter{
		Form:   models.Form(req.Form),
		Stream: models.Stream(req.Stream),
		Status: models.StudentStatus(req.Status),
		Search: req.Search,
	}
	students, err := s.store.List(ctx, filter)
	if err != nil {
		return err
	}

	header := []string{"Admission No", "Name", "Form", "Stream", "Status", "KCPE Marks", "Guardian", "Guardian Phone", "Guardian Email"}
	rows := make([][]string, 0, len(students))
	for _, st := range students {
		kcpe := ""
		if st.KCPEMarks != nil {
			kcpe = strconv.Itoa(*st.KCPEMarks)
		}
		rows = append(rows, []string{
			st.AdmissionNo, st.Name, string(st.Form), string(st.Stream), string(st.Status),
			kcpe, st.GuardianName, st.GuardianPhone, st.GuardianEmail,
		})
	}

	return helpers.WriteCSV(w, header, rows)
}
