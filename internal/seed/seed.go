package seed

import (
	"context"
	"fmt"

	"github.com/interntrack/server/internal/app/models"
	"github.com/interntrack/server/internal/app/repositories"
	"github.com/interntrack/server/internal/config"
	"github.com/interntrack/server/internal/pkg/auth"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// CreateDefaultData seeds the default faculty account so a fresh deployment
// has a reviewer to approve records. Skipped when no seed email is
// configured or the account already exists.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, cfg *config.Config, lgr zerolog.Logger) error {
	if cfg.Seed.FacultyEmail == "" {
		lgr.Debug().Msg("No seed faculty configured, skipping default data")
		return nil
	}

	repos := repositories.NewRepositories(dbPool)

	exists, err := repos.UserRepository.FacultyEmailExists(ctx, cfg.Seed.FacultyEmail)
	if err != nil {
		return fmt.Errorf("failed to check seed faculty account: %w", err)
	}
	if exists {
		lgr.Debug().Str("email", cfg.Seed.FacultyEmail).Msg("Seed faculty account already exists")
		return nil
	}

	hashedPassword, err := auth.HashPassword(cfg.Seed.FacultyPassword)
	if err != nil {
		return fmt.Errorf("failed to hash seed faculty password: %w", err)
	}

	name := cfg.Seed.FacultyName
	if name == "" {
		name = "Internship Coordinator"
	}

	email := cfg.Seed.FacultyEmail
	user := &models.User{
		Name:     name,
		Email:    &email,
		Password: hashedPassword,
		Role:     models.RoleFaculty,
	}

	if _, err := repos.UserRepository.CreateUser(ctx, user); err != nil {
		return fmt.Errorf("failed to create seed faculty account: %w", err)
	}

	lgr.Info().Str("email", email).Msg("Seed faculty account created")
	return nil
}
