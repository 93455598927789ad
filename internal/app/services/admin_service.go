package services

import (
	"context"

	"github.com/omondi/shulehub/internal/app/models"
	"github.com/omondi/shulehub/internal/app/models/dto"
	"github.com/omondi/shulehub/internal/pkg/apperrors"
	"github.com/omondi/shulehub/internal/pkg/auth"
	"github.com/omondi/shulehub/internal/pkg/logger"
)

// AdminStore is the persistence surface the admin service needs.
type AdminStore interface {
	Create(ctx context.Context, admin *models.Admin) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.Admin, error)
	GetByEmail(ctx context.Context, email string) (*models.Admin, error)
	List(ctx context.Context) ([]*models.Admin, error)
	Update(ctx context.Context, admin *models.Admin) error
	Delete(ctx context.Context, id int64) error
}

// AdminService manages console users and login.
type AdminService struct {
	store AdminStore
	jwt   *auth.JWTService
}

// NewAdminService creates a new AdminService
func NewAdminService(store AdminStore, jwt *auth.JWTService) *AdminService {
	return &AdminService{store: store, jwt: jwt}
}

// Login authenticates by email and password and issues a token.
// Not-found and wrong-password collapse into the same error so the
// response does not reveal which one happened.
func (s *AdminService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, *models.Admin, error) {
	admin, err := s.store.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, nil, apperrors.ErrInvalidCredentials
	}
	if !auth.CheckPassword(admin.PasswordHash, req.Password) {
		return nil, nil, apperrors.ErrInvalidCredentials
	}
	if !admin.Active {
		return nil, nil, apperrors.ErrAccountDisabled
	}

	token, expiresIn, err := s.jwt.GenerateToken(admin)
	if err != nil {
		logger.Error().Err(err).Int64("adminID", admin.ID).Msg("Failed to generate token")
		return nil, nil, err
	}

	return &dto.LoginResponse{Token: token, ExpiresIn: expiresIn}, admin, nil
}

// Create registers a console user / staff directory entry
func (s *AdminService) Create(ctx context.Context, req *dto.CreateAdminRequest) (*models.Admin, error) {
	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	admin := &models.Admin{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         req.Role,
		Department:   req.Department,
		Position:     req.Position,
		Phone:        req.Phone,
		Active:       true,
	}

	id, err := s.store.Create(ctx, admin)
	if err != nil {
		return nil, err
	}
	return s.store.GetByID(ctx, id)
}

// GetByID retrieves one admin
func (s *AdminService) GetByID(ctx context.Context, id int64) (*models.Admin, error) {
	return s.store.GetByID(ctx, id)
}

// List retrieves the staff directory
func (s *AdminService) List(ctx context.Context) ([]*models.Admin, error) {
	return s.store.List(ctx)
}

// Update edits a staff entry. Email and password are not touched here.
func (s *AdminService) Update(ctx context.Context, id int64, req *dto.UpdateAdminRequest) (*models.Admin, error) {
	admin, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	admin.Name = req.Name
	admin.Role = req.Role
	admin.Department = req.Department
	admin.Position = req.Position
	admin.Phone = req.Phone
	if req.Active != nil {
		admin.Active = *req.Active
	}

	if err := s.store.Update(ctx, admin); err != nil {
		return nil, err
	}
	return s.store.GetByID(ctx, id)
}

// Delete removes a staff entry
func (s *AdminService) Delete(ctx context.Context, id int64) error {
	return s.store.Delete(ctx, id)
}
