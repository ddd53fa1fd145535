package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/campusops/student-registry/internal/api/metrics"
	"github.com/campusops/student-registry/internal/core/domain"
	"github.com/campusops/student-registry/internal/core/ports"
)

const genericSeedPassword = "pass1234"

// Seeder creates the bootstrap accounts at startup: ten generic users
// (user01..user10) and, when configured, one admin account.
type Seeder struct {
	repo   ports.UserRepository
	logger zerolog.Logger
}

func NewSeeder(repo ports.UserRepository, logger zerolog.Logger) *Seeder {
	return &Seeder{repo: repo, logger: logger}
}

// Seed is idempotent: accounts that already exist are skipped, and a
// duplicate-insert race with another instance is tolerated.
func (s *Seeder) Seed(ctx context.Context, adminUser, adminPass string, adminRole domain.Role) error {
	for i := 1; i <= 10; i++ {
		username := fmt.Sprintf("user%02d", i)
		if err := s.seedUser(ctx, username, genericSeedPassword, domain.RoleUser); err != nil {
			return err
		}
	}

	if adminUser == "" || adminPass == "" {
		s.logger.Info().Msg("no seed admin configured, set SEED_ADMIN_USER and SEED_ADMIN_PASS to seed one")
		return nil
	}
	if adminRole == "" {
		adminRole = domain.RoleAdmin
	}
	return s.seedUser(ctx, adminUser, adminPass, adminRole)
}

func (s *Seeder) seedUser(ctx context.Context, username, password string, role domain.Role) error {
	_, err := s.repo.FindByUsername(ctx, username)
	if err == nil {
		s.logger.Debug().Str("username", username).Msg("seed account already exists, skipping")
		return nil
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		return fmt.Errorf("seed lookup %s: %w", username, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("seed hash %s: %w", username, err)
	}

	now := time.Now().UTC()
	_, err = s.repo.Create(ctx, &domain.User{
		Username:     username,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if errors.Is(err, domain.ErrUserExists) {
		// Lost the race against a concurrent seeder; the account is there.
		return nil
	}
	if err != nil {
		return fmt.Errorf("seed create %s: %w", username, err)
	}

	metrics.UsersSeededTotal.Inc()
	s.logger.Info().Str("username", username).Str("role", string(role)).Msg("seeded account")
	return nil
}
