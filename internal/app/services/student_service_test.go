package services

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/omondi/shulehub/internal/app/models"
	"github.com/omondi/shulehub/internal/app/models/dto"
	"github.com/omondi/shulehub/internal/app/repositories"
	"github.com/omondi/shulehub/internal/pkg/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeStudentStore is an in-memory StudentStore mirroring the
// repository's bulk semantics: promote and graduate touch every student
// in the form and append one audit record each.
type fakeStudentStore struct {
	nextID   int64
	students map[int64]*models.Student
	records  []*models.PromotionRecord
}

func newFakeStudentStore() *fakeStudentStore {
	return &fakeStudentStore{nextID: 1, students: map[int64]*models.Student{}}
}

func (f *fakeStudentStore) add(form models.Form, stream models.Stream, status models.StudentStatus) *models.Student {
	s := &models.Student{
		ID:          f.nextID,
		AdmissionNo: fmt.Sprintf("ADM%04d", f.nextID),
		Name:        "Student",
		Form:        form,
		Stream:      stream,
		Status:      status,
	}
	f.students[s.ID] = s
	f.nextID++
	return s
}

func (f *fakeStudentStore) Create(_ context.Context, student *models.Student) (int64, error) {
	for _, existing := range f.students {
		if existing.AdmissionNo == student.AdmissionNo {
			return 0, apperrors.ErrAdmissionNoExists
		}
	}
	student.ID = f.nextID
	f.students[student.ID] = student
	f.nextID++
	return student.ID, nil
}

func (f *fakeStudentStore) GetByID(_ context.Context, id int64) (*models.Student, error) {
	s, ok := f.students[id]
	if !ok {
		return nil, apperrors.ErrStudentNotFound
	}
	copied := *s
	return &copied, nil
}

func (f *fakeStudentStore) List(_ context.Context, filter repositories.StudentFilter) ([]*models.Student, error) {
	out := []*models.Student{}
	for id := int64(1); id < f.nextID; id++ {
		s, ok := f.students[id]
		if !ok {
			continue
		}
		if filter.Form != "" && s.Form != filter.Form {
			continue
		}
		if filter.Status != "" && s.Status != filter.Status {
			continue
		}
		copied := *s
		out = append(out, &copied)
	}
	return out, nil
}

func (f *fakeStudentStore) Count(ctx context.Context, filter repositories.StudentFilter) (int64, error) {
	students, _ := f.List(ctx, filter)
	return int64(len(students)), nil
}

func (f *fakeStudentStore) Update(_ context.Context, student *models.Student) error {
	if _, ok := f.students[student.ID]; !ok {
		return apperrors.ErrStudentNotFound
	}
	copied := *student
	f.students[student.ID] = &copied
	return nil
}

func (f *fakeStudentStore) Delete(_ context.Context, id int64) error {
	if _, ok := f.students[id]; !ok {
		return apperrors.ErrStudentNotFound
	}
	delete(f.students, id)
	return nil
}

func (f *fakeStudentStore) PromoteForm(_ context.Context, fromForm, toForm models.Form) (int64, error) {
	var affected int64
	for _, s := range f.students {
		if s.Form != fromForm {
			continue
		}
		f.records = append(f.records, &models.PromotionRecord{
			StudentID:  s.ID,
			FromForm:   fromForm,
			ToForm:     toForm,
			FromStream: s.Stream,
			ToStream:   s.Stream,
			Action:     models.ActionPromote,
		})
		s.Form = toForm
		affected++
	}
	return affected, nil
}

func (f *fakeStudentStore) GraduateForm(_ context.Context, form models.Form) (int64, error) {
	var affected int64
	for _, s := range f.students {
		if s.Form != form {
			continue
		}
		f.records = append(f.records, &models.PromotionRecord{
			StudentID:  s.ID,
			FromForm:   form,
			ToForm:     form,
			FromStream: s.Stream,
			ToStream:   s.Stream,
			Action:     models.ActionGraduate,
		})
		s.Status = models.StatusGraduated
		affected++
	}
	return affected, nil
}

func (f *fakeStudentStore) Reinstate(_ context.Context, id int64, form models.Form) error {
	s, ok := f.students[id]
	if !ok || s.Status != models.StatusGraduated {
		return apperrors.ErrStudentNotGraduated
	}
	s.Status = models.StatusActive
	s.Form = form
	return nil
}

func (f *fakeStudentStore) ListPromotionRecords(_ context.Context, studentID int64) ([]*models.PromotionRecord, error) {
	out := []*models.PromotionRecord{}
	for _, r := range f.records {
		if r.StudentID == studentID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeStudentStore) recordsFor(studentID int64) []*models.PromotionRecord {
	records, _ := f.ListPromotionRecords(context.Background(), studentID)
	return records
}

func TestApplyLifecyclePromoteMovesWholeForm(t *testing.T) {
	store := newFakeStudentStore()
	a := store.add(models.Form1, models.StreamEast, models.StatusActive)
	b := store.add(models.Form1, models.StreamWest, models.StatusActive)
	c := store.add(models.Form2, models.StreamEast, models.StatusActive)
	svc := NewStudentService(store)

	resp, err := svc.ApplyLifecycle(context.Background(), &dto.PromotionRequest{Form: "Form 1", Action: "promote"})
	require.NoError(t, err)

	assert.Equal(t, int64(2), resp.Affected)
	assert.Equal(t, models.Form2, store.students[a.ID].Form)
	assert.Equal(t, models.Form2, store.students[b.ID].Form)
	// The untouched Form 2 student is unaffected
	assert.Equal(t, models.Form2, store.students[c.ID].Form)
	assert.Empty(t, store.recordsFor(c.ID))

	// Exactly one record per promoted student with the before/after forms
	for _, id := range []int64{a.ID, b.ID} {
		records := store.recordsFor(id)
		require.Len(t, records, 1)
		assert.Equal(t, models.Form1, records[0].FromForm)
		assert.Equal(t, models.Form2, records[0].ToForm)
		assert.Equal(t, records[0].FromStream, records[0].ToStream)
	}
}

func TestApplyLifecyclePromoteTerminalFormRejected(t *testing.T) {
	store := newFakeStudentStore()
	s := store.add(models.Form4, models.StreamNorth, models.StatusActive)
	svc := NewStudentService(store)

	_, err := svc.ApplyLifecycle(context.Background(), &dto.PromotionRequest{Form: "Form 4", Action: "promote"})

	assert.ErrorIs(t, err, apperrors.ErrTerminalForm)
	// Rejected before any mutation: no form change, no audit records
	assert.Equal(t, models.Form4, store.students[s.ID].Form)
	assert.Empty(t, store.records)
}

func TestApplyLifecycleGraduateSetsStatusOnly(t *testing.T) {
	store := newFakeStudentStore()
	a := store.add(models.Form4, models.StreamEast, models.StatusActive)
	b := store.add(models.Form4, models.StreamSouth, models.StatusActive)
	other := store.add(models.Form3, models.StreamEast, models.StatusActive)
	svc := NewStudentService(store)

	resp, err := svc.ApplyLifecycle(context.Background(), &dto.PromotionRequest{Form: "Form 4", Action: "graduate"})
	require.NoError(t, err)

	assert.Equal(t, int64(2), resp.Affected)
	for _, id := range []int64{a.ID, b.ID} {
		assert.Equal(t, models.StatusGraduated, store.students[id].Status)
		// Form stays put: it now records the last form attended
		assert.Equal(t, models.Form4, store.students[id].Form)
	}
	assert.Equal(t, models.StatusActive, store.students[other.ID].Status)
}

func TestApplyLifecycleUnknownFormRejected(t *testing.T) {
	svc := NewStudentService(newFakeStudentStore())

	_, err := svc.ApplyLifecycle(context.Background(), &dto.PromotionRequest{Form: "Form 9", Action: "promote"})

	assert.ErrorIs(t, err, apperrors.ErrUnknownForm)
}

func TestApplyLifecycleUnknownActionRejected(t *testing.T) {
	svc := NewStudentService(newFakeStudentStore())

	_, err := svc.ApplyLifecycle(context.Background(), &dto.PromotionRequest{Form: "Form 1", Action: "demote"})

	assert.ErrorIs(t, err, apperrors.ErrUnknownPromotionAction)
}

func TestRepeatReversesGraduation(t *testing.T) {
	store := newFakeStudentStore()
	s := store.add(models.Form4, models.StreamWest, models.StatusGraduated)
	svc := NewStudentService(store)

	got, err := svc.Repeat(context.Background(), s.ID, &dto.RepeatRequest{Form: "Form 4"})
	require.NoError(t, err)

	assert.Equal(t, models.StatusActive, got.Status)
	assert.Equal(t, models.Form4, got.Form)
	assert.Equal(t, models.StreamWest, got.Stream)
	// Repeat is not audited
	assert.Empty(t, store.recordsFor(s.ID))
}

func TestRepeatRejectsNonGraduatedStudent(t *testing.T) {
	store := newFakeStudentStore()
	s := store.add(models.Form2, models.StreamEast, models.StatusActive)
	svc := NewStudentService(store)

	_, err := svc.Repeat(context.Background(), s.ID, &dto.RepeatRequest{Form: "Form 2"})

	assert.ErrorIs(t, err, apperrors.ErrStudentNotGraduated)
}

func TestBulkDeleteSettlesPerID(t *testing.T) {
	store := newFakeStudentStore()
	a := store.add(models.Form1, models.StreamEast, models.StatusActive)
	b := store.add(models.Form1, models.StreamEast, models.StatusActive)
	svc := NewStudentService(store)

	result := svc.BulkDelete(context.Background(), []int64{a.ID, 999, b.ID})

	assert.Equal(t, 2, result.Deleted)
	assert.Equal(t, 1, result.Failed)
	assert.Equal(t, []int64{999}, result.FailedIDs)
	// The two successful ids are gone, the failed one never existed
	assert.NotContains(t, store.students, a.ID)
	assert.NotContains(t, store.students, b.ID)
}

func TestCreateRejectsMalformedAdmissionNo(t *testing.T) {
	svc := NewStudentService(newFakeStudentStore())

	_, err := svc.Create(context.Background(), &dto.CreateStudentRequest{
		AdmissionNo:  "12-34",
		Name:         "Wanjiku Kamau",
		Form:         "Form 1",
		Stream:       "East",
		GuardianName: "Joseph Kamau",
	})

	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestCreateDuplicateAdmissionNo(t *testing.T) {
	store := newFakeStudentStore()
	svc := NewStudentService(store)
	req := &dto.CreateStudentRequest{
		AdmissionNo:  "ADM1042",
		Name:         "Wanjiku Kamau",
		Form:         "Form 1",
		Stream:       "East",
		GuardianName: "Joseph Kamau",
	}

	_, err := svc.Create(context.Background(), req)
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), req)
	assert.ErrorIs(t, err, apperrors.ErrAdmissionNoExists)
}

func TestExportCSVWritesFilteredRoster(t *testing.T) {
	store := newFakeStudentStore()
	s := store.add(models.Form1, models.StreamEast, models.StatusActive)
	s.AdmissionNo = "ADM0001"
	store.add(models.Form2, models.StreamWest, models.StatusActive)
	svc := NewStudentService(store)

	var buf strings.Builder
	err := svc.ExportCSV(context.Background(), &dto.StudentFilterRequest{Form: "Form 1"}, &buf)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2) // header + one matching student
	assert.Contains(t, lines[0], "Admission No")
	assert.Contains(t, lines[1], "ADM0001")
}
