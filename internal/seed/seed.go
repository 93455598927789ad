package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	appModels "github.com/omondi/shulehub/internal/app/models"
	appRepos "github.com/omondi/shulehub/internal/app/repositories"
	"github.com/omondi/shulehub/internal/pkg/apperrors"
	"github.com/omondi/shulehub/internal/pkg/auth"
)

// CreateDefaultData creates the default admin account if it doesn't exist.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	adminRepo := appRepos.NewAdminRepository(dbPool)

	lgr.Info().Msg("Checking/Creating default data...")
	var finalErr error

	_, err := adminRepo.GetByEmail(ctx, "admin@shulehub.app")
	if err != nil {
		if !errors.Is(err, apperrors.ErrAdminNotFound) {
			lgr.Error().Err(err).Msg("Error checking if default admin exists")
			return err
		}

		lgr.Info().Msg("Creating default admin account...")
		hash, err := auth.HashPassword("ChangeMe123!")
		if err != nil {
			lgr.Error().Err(err).Msg("Error hashing default admin password")
			finalErr = errors.Join(finalErr, err)
		} else {
			admin := &appModels.Admin{
				Name:         "System Administrator",
				Email:        "admin@shulehub.app",
				PasswordHash: hash,
				Role:         appModels.RolePrincipal,
				Department:   "Administration",
				Active:       true,
			}
			if _, err := adminRepo.Create(ctx, admin); err != nil && !errors.Is(err, apperrors.ErrEmailAlreadyExists) {
				lgr.Error().Err(err).Msg("Error creating default admin")
				finalErr = errors.Join(finalErr, err)
			} else {
				lgr.Info().Str("email", admin.Email).Msg("Default admin created; change the password after first login")
			}
		}
	}

	return finalErr
}
