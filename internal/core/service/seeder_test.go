package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/campusops/student-registry/internal/core/domain"
)

func TestSeeder_SeedsGenericUsersAndAdmin(t *testing.T) {
	repo := newStubUserRepo()
	seeder := NewSeeder(repo, zerolog.Nop())

	if err := seeder.Seed(context.Background(), "boss", "topsecret", domain.RoleAdmin); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	if len(repo.users) != 11 {
		t.Fatalf("expected 11 seeded accounts, got %d", len(repo.users))
	}

	u, err := repo.FindByUsername(context.Background(), "user01")
	if err != nil {
		t.Fatalf("user01 not seeded: %v", err)
	}
	if u.Role != domain.RoleUser {
		t.Fatalf("unexpected role for generic user: %s", u.Role)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("pass1234")); err != nil {
		t.Fatalf("generic password not hashed as expected: %v", err)
	}

	admin, err := repo.FindByUsername(context.Background(), "boss")
	if err != nil {
		t.Fatalf("admin not seeded: %v", err)
	}
	if admin.Role != domain.RoleAdmin {
		t.Fatalf("unexpected admin role: %s", admin.Role)
	}
}

func TestSeeder_Idempotent(t *testing.T) {
	repo := newStubUserRepo()
	seeder := NewSeeder(repo, zerolog.Nop())

	if err := seeder.Seed(context.Background(), "", "", ""); err != nil {
		t.Fatalf("first seed failed: %v", err)
	}
	firstHash := repo.users["user01"].PasswordHash

	if err := seeder.Seed(context.Background(), "", "", ""); err != nil {
		t.Fatalf("second seed failed: %v", err)
	}

	if len(repo.users) != 10 {
		t.Fatalf("expected 10 accounts after re-seed, got %d", len(repo.users))
	}
	if repo.users["user01"].PasswordHash != firstHash {
		t.Fatalf("existing account was overwritten on re-seed")
	}
}
