package services

import (
	"context"
	"testing"

	"github.com/omondi/shulehub/internal/app/models"
	"github.com/omondi/shulehub/internal/app/models/dto"
	"github.com/omondi/shulehub/internal/app/repositories"
	"github.com/omondi/shulehub/internal/pkg/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCouncilStore struct {
	nextID  int64
	members map[int64]*models.CouncilMember
}

func newFakeCouncilStore() *fakeCouncilStore {
	return &fakeCouncilStore{nextID: 1, members: map[int64]*models.CouncilMember{}}
}

func (f *fakeCouncilStore) Create(_ context.Context, member *models.CouncilMember) (int64, error) {
	member.ID = f.nextID
	copied := *member
	f.members[copied.ID] = &copied
	f.nextID++
	return copied.ID, nil
}

func (f *fakeCouncilStore) GetByID(_ context.Context, id int64) (*models.CouncilMember, error) {
	m, ok := f.members[id]
	if !ok {
		return nil, apperrors.ErrCouncilMemberNotFound
	}
	copied := *m
	return &copied, nil
}

func (f *fakeCouncilStore) List(_ context.Context, _ repositories.CouncilFilter) ([]*models.CouncilMember, error) {
	out := []*models.CouncilMember{}
	for id := int64(1); id < f.nextID; id++ {
		if m, ok := f.members[id]; ok {
			copied := *m
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (f *fakeCouncilStore) Update(_ context.Context, member *models.CouncilMember) error {
	if _, ok := f.members[member.ID]; !ok {
		return apperrors.ErrCouncilMemberNotFound
	}
	copied := *member
	f.members[copied.ID] = &copied
	return nil
}

func (f *fakeCouncilStore) Delete(_ context.Context, id int64) error {
	if _, ok := f.members[id]; !ok {
		return apperrors.ErrCouncilMemberNotFound
	}
	delete(f.members, id)
	return nil
}

type staticStudentLookup struct{ students map[int64]*models.Student }

func (l staticStudentLookup) GetByID(_ context.Context, id int64) (*models.Student, error) {
	s, ok := l.students[id]
	if !ok {
		return nil, apperrors.ErrStudentNotFound
	}
	return s, nil
}

func councilFixture() *CouncilService {
	lookup := staticStudentLookup{students: map[int64]*models.Student{
		1: {ID: 1, Form: models.Form2, Stream: models.StreamEast, Status: models.StatusActive},
	}}
	return NewCouncilService(newFakeCouncilStore(), lookup, nil)
}

func TestCouncilCreateUnknownPositionRejected(t *testing.T) {
	svc := councilFixture()

	_, err := svc.Create(context.Background(), &dto.CreateCouncilMemberRequest{
		StudentID: 1,
		Position:  "HeadBoy",
	}, nil)

	assert.ErrorIs(t, err, apperrors.ErrUnknownPosition)
}

func TestCouncilCreateClassScopedRequiresMatchingClass(t *testing.T) {
	svc := councilFixture()

	// Student 1 is in Form 2 East; the assignment claims Form 3 East
	_, err := svc.Create(context.Background(), &dto.CreateCouncilMemberRequest{
		StudentID: 1,
		Position:  PositionClassRepresentative,
		Form:      "Form 3",
		Stream:    "East",
	}, nil)

	assert.ErrorIs(t, err, apperrors.ErrClassMismatch)
}

func TestCouncilCreateClassScopedRequiresFormAndStream(t *testing.T) {
	svc := councilFixture()

	_, err := svc.Create(context.Background(), &dto.CreateCouncilMemberRequest{
		StudentID: 1,
		Position:  PositionClassAssistant,
	}, nil)

	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestCouncilCreateClassScopedMatch(t *testing.T) {
	svc := councilFixture()

	member, err := svc.Create(context.Background(), &dto.CreateCouncilMemberRequest{
		StudentID: 1,
		Position:  PositionClassRepresentative,
		Form:      "Form 2",
		Stream:    "East",
	}, nil)
	require.NoError(t, err)

	require.NotNil(t, member.Form)
	require.NotNil(t, member.Stream)
	assert.Equal(t, models.Form2, *member.Form)
	assert.Equal(t, models.StreamEast, *member.Stream)
	assert.Equal(t, "Academics", member.Department)
	assert.Equal(t, "active", member.Status)
}

func TestCouncilCreateSchoolWidePositionIgnoresClass(t *testing.T) {
	svc := councilFixture()

	// Form/stream are not required, and not stored, for school-wide roles
	member, err := svc.Create(context.Background(), &dto.CreateCouncilMemberRequest{
		StudentID: 1,
		Position:  PositionPresident,
	}, nil)
	require.NoError(t, err)

	assert.Nil(t, member.Form)
	assert.Nil(t, member.Stream)
	assert.Equal(t, "Executive", member.Department)
}

func TestCouncilCreateUnknownStudentRejected(t *testing.T) {
	svc := councilFixture()

	_, err := svc.Create(context.Background(), &dto.CreateCouncilMemberRequest{
		StudentID: 99,
		Position:  PositionPresident,
	}, nil)

	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
}

func TestPositionCatalogueFlagsClassScopedRoles(t *testing.T) {
	scoped := map[string]bool{}
	for _, p := range PositionCatalogue() {
		scoped[p.Key] = p.ClassScoped
	}

	assert.True(t, scoped[PositionClassRepresentative])
	assert.True(t, scoped[PositionClassAssistant])
	assert.False(t, scoped[PositionPresident])
	assert.False(t, scoped[PositionDormCaptain])
}
