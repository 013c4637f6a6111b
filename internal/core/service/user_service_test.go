package service

import (
	"context"
	"testing"

	"github.com/tutorhub/tutoring-system/internal/core/domain"
)

func TestUserService_Profile_Tutor(t *testing.T) {
	users := newStubUserRepo()
	tutors := newStubTutorRepo()
	students := newStubStudentRepo()
	svc := NewUserService(users, tutors, students)

	user, err := users.Create(context.Background(), &domain.User{
		Email: "alice@example.com", Phone: "+5215511111111", Role: domain.RoleTutor,
	}, "digest")
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}
	tutor, err := tutors.Create(context.Background(), &domain.Tutor{UserID: user.ID})
	if err != nil {
		t.Fatalf("seed tutor: %v", err)
	}

	profile, err := svc.Profile(context.Background(), user)
	if err != nil {
		t.Fatalf("Profile: %v", err)
	}
	if profile.TutorID == nil || *profile.TutorID != tutor.ID {
		t.Fatalf("expected tutor id %d, got %v", tutor.ID, profile.TutorID)
	}
	if profile.StudentID != nil {
		t.Fatalf("student id should be nil for tutors, got %v", *profile.StudentID)
	}
}

func TestUserService_Profile_Admin(t *testing.T) {
	users := newStubUserRepo()
	svc := NewUserService(users, newStubTutorRepo(), newStubStudentRepo())

	user, err := users.Create(context.Background(), &domain.User{
		Email: "root@example.com", Phone: "+5215522222222", Role: domain.RoleAdmin,
	}, "digest")
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}

	profile, err := svc.Profile(context.Background(), user)
	if err != nil {
		t.Fatalf("Profile: %v", err)
	}
	if profile.TutorID != nil || profile.StudentID != nil {
		t.Fatalf("admin profile must carry no role ids: %+v", profile)
	}
}

func TestUserService_List(t *testing.T) {
	users := newStubUserRepo()
	svc := NewUserService(users, newStubTutorRepo(), newStubStudentRepo())

	for _, email := range []string{"a@example.com", "b@example.com"} {
		if _, err := users.Create(context.Background(), &domain.User{
			Email: email, Phone: "+52155" + email, Role: domain.RoleStudent,
		}, "digest"); err != nil {
			t.Fatalf("seed user: %v", err)
		}
	}

	got, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 users, got %d", len(got))
	}
}
