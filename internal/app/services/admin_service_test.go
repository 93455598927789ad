package services

import (
	"context"
	"testing"
	"time"

	"github.com/omondi/shulehub/internal/app/models"
	"github.com/omondi/shulehub/internal/app/models/dto"
	"github.com/omondi/shulehub/internal/pkg/apperrors"
	"github.com/omondi/shulehub/internal/pkg/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAdminStore struct {
	nextID int64
	admins map[int64]*models.Admin
}

func newFakeAdminStore() *fakeAdminStore {
	return &fakeAdminStore{nextID: 1, admins: map[int64]*models.Admin{}}
}

func (f *fakeAdminStore) Create(_ context.Context, admin *models.Admin) (int64, error) {
	for _, existing := range f.admins {
		if existing.Email == admin.Email {
			return 0, apperrors.ErrEmailAlreadyExists
		}
	}
	admin.ID = f.nextID
	copied := *admin
	f.admins[copied.ID] = &copied
	f.nextID++
	return copied.ID, nil
}

func (f *fakeAdminStore) GetByID(_ context.Context, id int64) (*models.Admin, error) {
	a, ok := f.admins[id]
	if !ok {
		return nil, apperrors.ErrAdminNotFound
	}
	copied := *a
	return &copied, nil
}

func (f *fakeAdminStore) GetByEmail(_ context.Context, email string) (*models.Admin, error) {
	for _, a := range f.admins {
		if a.Email == email {
			copied := *a
			return &copied, nil
		}
	}
	return nil, apperrors.ErrAdminNotFound
}

func (f *fakeAdminStore) List(_ context.Context) ([]*models.Admin, error) {
	out := []*models.Admin{}
	for id := int64(1); id < f.nextID; id++ {
		if a, ok := f.admins[id]; ok {
			copied := *a
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (f *fakeAdminStore) Update(_ context.Context, admin *models.Admin) error {
	if _, ok := f.admins[admin.ID]; !ok {
		return apperrors.ErrAdminNotFound
	}
	copied := *admin
	f.admins[copied.ID] = &copied
	return nil
}

func (f *fakeAdminStore) Delete(_ context.Context, id int64) error {
	if _, ok := f.admins[id]; !ok {
		return apperrors.ErrAdminNotFound
	}
	delete(f.admins, id)
	return nil
}

func testJWTService() *auth.JWTService {
	return auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "shulehub-test",
	})
}

func adminFixture(t *testing.T) (*AdminService, *models.Admin) {
	t.Helper()

	svc := NewAdminService(newFakeAdminStore(), testJWTService())
	admin, err := svc.Create(context.Background(), &dto.CreateAdminRequest{
		Name:     "Jane Wambui",
		Email:    "j.wambui@shulehub.app",
		Password: "CorrectHorse9!",
		Role:     models.RolePrincipal,
	})
	require.NoError(t, err)
	return svc, admin
}

func TestLoginIssuesToken(t *testing.T) {
	svc, created := adminFixture(t)

	resp, admin, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "j.wambui@shulehub.app",
		Password: "CorrectHorse9!",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, int(time.Hour.Seconds()), resp.ExpiresIn)
	assert.Equal(t, created.ID, admin.ID)

	claims, err := testJWTService().ValidateToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, created.ID, claims.AdminID)
	assert.Equal(t, models.RolePrincipal, claims.Role)
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _ := adminFixture(t)

	_, _, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "j.wambui@shulehub.app",
		Password: "WrongPassword1!",
	})

	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestLoginUnknownEmailSameError(t *testing.T) {
	svc, _ := adminFixture(t)

	// Unknown email and wrong password must be indistinguishable
	_, _, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "ghost@shulehub.app",
		Password: "CorrectHorse9!",
	})

	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestLoginDisabledAccount(t *testing.T) {
	svc, admin := adminFixture(t)

	inactive := false
	_, err := svc.Update(context.Background(), admin.ID, &dto.UpdateAdminRequest{
		Name:   admin.Name,
		Role:   admin.Role,
		Active: &inactive,
	})
	require.NoError(t, err)

	_, _, err = svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "j.wambui@shulehub.app",
		Password: "CorrectHorse9!",
	})

	assert.ErrorIs(t, err, apperrors.ErrAccountDisabled)
}

func TestCreateHashesPassword(t *testing.T) {
	store := newFakeAdminStore()
	svc := NewAdminService(store, testJWTService())

	admin, err := svc.Create(context.Background(), &dto.CreateAdminRequest{
		Name:     "Jane Wambui",
		Email:    "j.wambui@shulehub.app",
		Password: "CorrectHorse9!",
		Role:     models.RoleTeacher,
	})
	require.NoError(t, err)

	stored := store.admins[admin.ID]
	assert.NotEqual(t, "CorrectHorse9!", stored.PasswordHash)
	assert.True(t, auth.CheckPassword(stored.PasswordHash, "CorrectHorse9!"))
	assert.True(t, stored.Active)
}

func TestUpdateDoesNotTouchEmail(t *testing.T) {
	svc, admin := adminFixture(t)

	updated, err := svc.Update(context.Background(), admin.ID, &dto.UpdateAdminRequest{
		Name: "Jane W. Otieno",
		Role: models.RoleDeputyPrincipal,
	})
	require.NoError(t, err)

	assert.Equal(t, "Jane W. Otieno", updated.Name)
	assert.Equal(t, models.RoleDeputyPrincipal, updated.Role)
	assert.Equal(t, admin.Email, updated.Email)
	// Active stays as-is when the request omits it
	assert.True(t, updated.Active)
}
