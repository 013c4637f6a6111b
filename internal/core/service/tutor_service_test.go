package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/tutorhub/tutoring-system/internal/core/domain"
	"github.com/tutorhub/tutoring-system/internal/core/ports"
)

func tutorFixture(t *testing.T) (*TutorService, *stubUserRepo, *stubTutorRepo) {
	t.Helper()
	users := newStubUserRepo()
	tutors := newStubTutorRepo()
	return NewTutorService(tutors, users, zerolog.Nop()), users, tutors
}

func seedTutor(t *testing.T, users *stubUserRepo, tutors *stubTutorRepo, email string) (*domain.User, *domain.Tutor) {
	t.Helper()
	user, err := users.Create(context.Background(), &domain.User{
		FirstName: "Alice",
		LastName:  "Smith",
		Email:     email,
		Phone:     "+52155" + email,
		Role:      domain.RoleTutor,
	}, "digest")
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}
	tutor, err := tutors.Create(context.Background(), &domain.Tutor{UserID: user.ID})
	if err != nil {
		t.Fatalf("seed tutor: %v", err)
	}
	return user, tutor
}

func TestTutorService_UpdateProfile_Owner(t *testing.T) {
	svc, users, tutors := tutorFixture(t)
	user, tutor := seedTutor(t, users, tutors, "alice@example.com")

	desc := "Ten years of calculus"
	exp := 10
	updated, err := svc.UpdateProfile(context.Background(), ports.UpdateTutorInput{
		TutorID:      tutor.ID,
		CallerUserID: user.ID,
		Description:  &desc,
		Experience:   &exp,
	})
	if err != nil {
		t.Fatalf("UpdateProfile: %v", err)
	}
	if updated.Description != desc || updated.Experience != exp {
		t.Fatalf("profile not applied: %+v", updated)
	}
}

func TestTutorService_UpdateProfile_PartialLeavesOtherField(t *testing.T) {
	svc, users, tutors := tutorFixture(t)
	user, tutor := seedTutor(t, users, tutors, "alice@example.com")

	desc := "Algebra and geometry"
	if _, err := svc.UpdateProfile(context.Background(), ports.UpdateTutorInput{
		TutorID:      tutor.ID,
		CallerUserID: user.ID,
		Description:  &desc,
	}); err != nil {
		t.Fatalf("set description: %v", err)
	}

	exp := 4
	updated, err := svc.UpdateProfile(context.Background(), ports.UpdateTutorInput{
		TutorID:      tutor.ID,
		CallerUserID: user.ID,
		Experience:   &exp,
	})
	if err != nil {
		t.Fatalf("set experience: %v", err)
	}
	if updated.Description != desc {
		t.Fatalf("description clobbered by experience-only update: %q", updated.Description)
	}
	if updated.Experience != exp {
		t.Fatalf("experience = %d, want %d", updated.Experience, exp)
	}
}

func TestTutorService_UpdateProfile_ForeignProfile(t *testing.T) {
	svc, users, tutors := tutorFixture(t)
	_, tutor := seedTutor(t, users, tutors, "alice@example.com")
	other, _ := seedTutor(t, users, tutors, "bob@example.com")

	desc := "hijack"
	_, err := svc.UpdateProfile(context.Background(), ports.UpdateTutorInput{
		TutorID:      tutor.ID,
		CallerUserID: other.ID,
		Description:  &desc,
	})
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestTutorService_Get_Unknown(t *testing.T) {
	svc, _, _ := tutorFixture(t)
	if _, err := svc.Get(context.Background(), 99); !errors.Is(err, domain.ErrTutorNotFound) {
		t.Fatalf("expected ErrTutorNotFound, got %v", err)
	}
}

func TestTutorService_List_SkipsOrphans(t *testing.T) {
	svc, users, tutors := tutorFixture(t)
	seedTutor(t, users, tutors, "alice@example.com")
	if _, err := tutors.Create(context.Background(), &domain.Tutor{UserID: 999}); err != nil {
		t.Fatalf("seed orphan: %v", err)
	}

	details, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(details) != 1 {
		t.Fatalf("expected orphan skipped, got %d entries", len(details))
	}
	if details[0].User.Email != "alice@example.com" {
		t.Fatalf("unexpected join result: %+v", details[0])
	}
}
