package services

import (
	"context"
	"mime/multipart"
	"time"

	"github.com/omondi/shulehub/internal/app/models"
	"github.com/omondi/shulehub/internal/app/models/dto"
	"github.com/omondi/shulehub/internal/app/repositories"
	"github.com/omondi/shulehub/internal/pkg/apperrors"
	"github.com/omondi/shulehub/internal/pkg/filestorage"
	"github.com/omondi/shulehub/internal/pkg/helpers"
	"github.com/omondi/shulehub/internal/pkg/logger"
)

// CouncilStore is the persistence surface the council service needs.
type CouncilStore interface {
	Create(ctx context.Context, member *models.CouncilMember) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.CouncilMember, error)
	List(ctx context.Context, filter repositories.CouncilFilter) ([]*models.CouncilMember, error)
	Update(ctx context.Context, member *models.CouncilMember) error
	Delete(ctx context.Context, id int64) error
}

// StudentLookup resolves a student id for the class-match check.
type StudentLookup interface {
	GetByID(ctx context.Context, id int64) (*models.Student, error)
}

// CouncilService manages council assignments against the static
// position catalogue.
type CouncilService struct {
	store    CouncilStore
	students StudentLookup
	storage  filestorage.FileStorage
}

// NewCouncilService creates a new CouncilService
func NewCouncilService(store CouncilStore, students StudentLookup, storage filestorage.FileStorage) *CouncilService {
	return &CouncilService{store: store, students: students, storage: storage}
}

// validateAssignment checks the position against the catalogue and, for
// class-scoped positions, that the declared form/stream matches the
// student's own placement. Storage does not enforce this, so it has to
// happen here at submission time.
func (s *CouncilService) validateAssignment(ctx context.Context, studentID int64, positionKey, formStr, streamStr string) (*models.Form, *models.Stream, error) {
	position, ok := LookupPosition(positionKey)
	if !ok {
		return nil, nil, apperrors.ErrUnknownPosition
	}

	student, err := s.students.GetByID(ctx, studentID)
	if err != nil {
		return nil, nil, err
	}

	if !position.ClassScoped {
		return nil, nil, nil
	}

	form := models.Form(formStr)
	stream := models.Stream(streamStr)
	if !models.IsValidForm(form) || !models.IsValidStream(stream) {
		return nil, nil, apperrors.NewValidationError("class-scoped positions require a form and stream")
	}
	if student.Form != form || student.Stream != stream {
		return nil, nil, apperrors.ErrClassMismatch
	}

	return &form, &stream, nil
}

// Create assigns a student to a council position
func (s *CouncilService) Create(ctx context.Context, req *dto.CreateCouncilMemberRequest, photo *multipart.FileHeader) (*models.CouncilMember, error) {
	form, stream, err := s.validateAssignment(ctx, req.StudentID, req.Position, req.Form, req.Stream)
	if err != nil {
		return nil, err
	}

	position, _ := LookupPosition(req.Position)

	startDate := time.Now()
	if parsed := helpers.ParseDate(req.StartDate); parsed != nil {
		startDate = *parsed
	}

	member := &models.CouncilMember{
		StudentID:        req.StudentID,
		Position:         req.Position,
		Department:       position.Department,
		Form:             form,
		Stream:           stream,
		StartDate:        startDate,
		EndDate:          helpers.ParseDate(req.EndDate),
		Responsibilities: req.Responsibilities,
		Achievements:     req.Achievements,
		Status:           "active",
	}

	if photo != nil {
		saved, err := s.storage.SaveFileWithPath(photo, "council")
		if err != nil {
			return nil, err
		}
		member.PhotoURL = saved.URL
	}

	id, err := s.store.Create(ctx, member)
	if err != nil {
		return nil, err
	}
	return s.store.GetByID(ctx, id)
}

// GetByID retrieves one council member with the student attached
func (s *CouncilService) GetByID(ctx context.Context, id int64) (*models.CouncilMember, error) {
	return s.store.GetByID(ctx, id)
}

// List retrieves council members matching the filter
func (s *CouncilService) List(ctx context.Context, filter repositories.CouncilFilter) ([]*models.CouncilMember, error) {
	return s.store.List(ctx, filter)
}

// Update edits a council assignment
func (s *CouncilService) Update(ctx context.Context, id int64, req *dto.UpdateCouncilMemberRequest, photo *multipart.FileHeader) (*models.CouncilMember, error) {
	member, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	form, stream, err := s.validateAssignment(ctx, member.StudentID, req.Position, req.Form, req.Stream)
	if err != nil {
		return nil, err
	}

	position, _ := LookupPosition(req.Position)

	member.Position = req.Position
	member.Department = position.Department
	member.Form = form
	member.Stream = stream
	if parsed := helpers.ParseDate(req.StartDate); parsed != nil {
		member.StartDate = *parsed
	}
	member.EndDate = helpers.ParseDate(req.EndDate)
	member.Responsibilities = req.Responsibilities
	member.Achievements = req.Achievements
	member.Status = req.Status

	if photo != nil {
		saved, err := s.storage.SaveFileWithPath(photo, "council")
		if err != nil {
			return nil, err
		}
		if member.PhotoURL != "" {
			if err := s.storage.DeleteFile(member.PhotoURL); err != nil {
				logger.Warn().Err(err).Str("file", member.PhotoURL).Msg("Failed to delete replaced council photo")
			}
		}
		member.PhotoURL = saved.URL
	}

	if err := s.store.Update(ctx, member); err != nil {
		return nil, err
	}
	return s.store.GetByID(ctx, id)
}

// Delete removes a council assignment and its photo
func (s *CouncilService) Delete(ctx context.Context, id int64) error {
	member, err := s.store.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.store.Delete(ctx, id); err != nil {
		return err
	}

	if member.PhotoURL != "" {
		if err := s.storage.DeleteFile(member.PhotoURL); err != nil {
			logger.Warn().Err(err).Str("file", member.PhotoURL).Msg("Failed to delete council photo")
		}
	}
	return nil
}

// Positions returns the static catalogue
func (s *CouncilService) Positions() []dto.PositionInfo {
	return PositionCatalogue()
}
