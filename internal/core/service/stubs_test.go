package service

import (
	"context"
	"sort"

	"github.com/tutorhub/tutoring-system/internal/core/domain"
	"github.com/tutorhub/tutoring-system/internal/core/ports"
)

// In-memory fakes shared by the service tests.

type stubUserRepo struct {
	nextID    int64
	users     map[int64]*domain.User
	creds     map[int64]string
	created   int
	createErr error
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[int64]*domain.User), creds: make(map[int64]string)}
}

func (r *stubUserRepo) FindByID(_ context.Context, id int64) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, *domain.Credential, error) {
	for _, u := range r.users {
		if u.Email == email {
			clone := *u
			return &clone, &domain.Credential{UserID: u.ID, PasswordHash: r.creds[u.ID]}, nil
		}
	}
	return nil, nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByPhone(_ context.Context, phone string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Phone == phone {
			clone := *u
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User, passwordHash string) (*domain.User, error) {
	// Create models the single-transaction contract of the real
	// repository: on any failure nothing is stored.
	if r.createErr != nil {
		return nil, r.createErr
	}
	for _, u := range r.users {
		if u.Email == user.Email || u.Phone == user.Phone {
			return nil, domain.ErrUserExists
		}
	}
	r.nextID++
	clone := *user
	clone.ID = r.nextID
	r.users[clone.ID] = &clone
	r.creds[clone.ID] = passwordHash
	r.created++
	out := clone
	return &out, nil
}

func (r *stubUserRepo) List(_ context.Context) ([]*domain.User, error) {
	ids := make([]int64, 0, len(r.users))
	for id := range r.users {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	out := make([]*domain.User, 0, len(ids))
	for _, id := range ids {
		clone := *r.users[id]
		out = append(out, &clone)
	}
	return out, nil
}

type stubTutorRepo struct {
	nextID int64
	tutors map[int64]*domain.Tutor
}

func newStubTutorRepo() *stubTutorRepo {
	return &stubTutorRepo{tutors: make(map[int64]*domain.Tutor)}
}

func (r *stubTutorRepo) Create(_ context.Context, tutor *domain.Tutor) (*domain.Tutor, error) {
	r.nextID++
	clone := *tutor
	clone.ID = r.nextID
	r.tutors[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubTutorRepo) FindByID(_ context.Context, id int64) (*domain.Tutor, error) {
	t, ok := r.tutors[id]
	if !ok {
		return nil, domain.ErrTutorNotFound
	}
	clone := *t
	return &clone, nil
}

func (r *stubTutorRepo) FindByUserID(_ context.Context, userID int64) (*domain.Tutor, error) {
	for _, t := range r.tutors {
		if t.UserID == userID {
			clone := *t
			return &clone, nil
		}
	}
	return nil, domain.ErrTutorNotFound
}

func (r *stubTutorRepo) List(_ context.Context) ([]*domain.Tutor, error) {
	out := make([]*domain.Tutor, 0, len(r.tutors))
	for _, t := range r.tutors {
		clone := *t
		out = append(out, &clone)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *stubTutorRepo) UpdateProfile(_ context.Context, id int64, update ports.TutorProfileUpdate) (*domain.Tutor, error) {
	t, ok := r.tutors[id]
	if !ok {
		return nil, domain.ErrTutorNotFound
	}
	if update.Description != nil {
		t.Description = *update.Description
	}
	if update.Experience != nil {
		t.Experience = *update.Experience
	}
	clone := *t
	return &clone, nil
}

func (r *stubTutorRepo) UpdateRating(_ context.Context, id int64, rating float64) error {
	t, ok := r.tutors[id]
	if !ok {
		return domain.ErrTutorNotFound
	}
	t.Rating = rating
	return nil
}

type stubStudentRepo struct {
	nextID   int64
	students map[int64]*domain.Student
}

func newStubStudentRepo() *stubStudentRepo {
	return &stubStudentRepo{students: make(map[int64]*domain.Student)}
}

func (r *stubStudentRepo) Create(_ context.Context, student *domain.Student) (*domain.Student, error) {
	r.nextID++
	clone := *student
	clone.ID = r.nextID
	r.students[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubStudentRepo) FindByID(_ context.Context, id int64) (*domain.Student, error) {
	s, ok := r.students[id]
	if !ok {
		return nil, domain.ErrStudentNotFound
	}
	clone := *s
	return &clone, nil
}

func (r *stubStudentRepo) FindByUserID(_ context.Context, userID int64) (*domain.Student, error) {
	for _, s := range r.students {
		if s.UserID == userID {
			clone := *s
			return &clone, nil
		}
	}
	return nil, domain.ErrStudentNotFound
}

func (r *stubStudentRepo) UpdateEducationLevel(_ context.Context, id int64, level string) (*domain.Student, error) {
	s, ok := r.students[id]
	if !ok {
		return nil, domain.ErrStudentNotFound
	}
	s.EducationLevel = level
	clone := *s
	return &clone, nil
}

type stubLessonRepo struct {
	nextID  int64
	lessons map[int64]*domain.Lesson
}

func newStubLessonRepo() *stubLessonRepo {
	return &stubLessonRepo{lessons: make(map[int64]*domain.Lesson)}
}

func (r *stubLessonRepo) Create(_ context.Context, lesson *domain.Lesson) (*domain.Lesson, error) {
	r.nextID++
	clone := *lesson
	clone.ID = r.nextID
	r.lessons[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubLessonRepo) FindByID(_ context.Context, id int64) (*domain.Lesson, error) {
	l, ok := r.lessons[id]
	if !ok {
		return nil, domain.ErrLessonNotFound
	}
	clone := *l
	return &clone, nil
}

func (r *stubLessonRepo) ListByStudent(_ context.Context, studentID int64) ([]*domain.Lesson, error) {
	var out []*domain.Lesson
	for _, l := range r.lessons {
		if l.StudentID == studentID {
			clone := *l
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *stubLessonRepo) ListByTutor(_ context.Context, tutorID int64) ([]*domain.Lesson, error) {
	var out []*domain.Lesson
	for _, l := range r.lessons {
		if l.TutorID == tutorID {
			clone := *l
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *stubLessonRepo) UpdateStatus(_ context.Context, id int64, from, to domain.LessonStatus) error {
	l, ok := r.lessons[id]
	if !ok {
		return domain.ErrLessonNotFound
	}
	if l.Status != from {
		return domain.ErrInvalidTransition
	}
	l.Status = to
	return nil
}

type stubFeedbackRepo struct {
	nextID    int64
	lessons   *stubLessonRepo
	feedbacks []*domain.Feedback
}

func newStubFeedbackRepo(lessons *stubLessonRepo) *stubFeedbackRepo {
	return &stubFeedbackRepo{lessons: lessons}
}

func (r *stubFeedbackRepo) Create(_ context.Context, feedback *domain.Feedback) (*domain.Feedback, error) {
	l, ok := r.lessons.lessons[feedback.LessonID]
	if !ok || l.TutorID != feedback.TutorID || l.StudentID != feedback.StudentID {
		return nil, domain.ErrLessonMismatch
	}
	r.nextID++
	clone := *feedback
	clone.ID = r.nextID
	r.feedbacks = append(r.feedbacks, &clone)
	out := clone
	return &out, nil
}

func (r *stubFeedbackRepo) ListByTutor(_ context.Context, tutorID int64) ([]*domain.Feedback, error) {
	var out []*domain.Feedback
	for i := len(r.feedbacks) - 1; i >= 0; i-- {
		if r.feedbacks[i].TutorID == tutorID {
			clone := *r.feedbacks[i]
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *stubFeedbackRepo) AverageRatingByTutor(_ context.Context, tutorID int64) (float64, int64, error) {
	var sum, count int64
	for _, f := range r.feedbacks {
		if f.TutorID == tutorID {
			sum += int64(f.Rating)
			count++
		}
	}
	if count == 0 {
		return 0, 0, nil
	}
	return float64(sum) / float64(count), count, nil
}

type stubSubjectRepo struct {
	subjects map[int64]*domain.Subject
}

func newStubSubjectRepo(subjects ...*domain.Subject) *stubSubjectRepo {
	r := &stubSubjectRepo{subjects: make(map[int64]*domain.Subject)}
	for _, s := range subjects {
		r.subjects[s.ID] = s
	}
	return r
}

func (r *stubSubjectRepo) FindByID(_ context.Context, id int64) (*domain.Subject, error) {
	s, ok := r.subjects[id]
	if !ok {
		return nil, domain.ErrSubjectNotFound
	}
	clone := *s
	return &clone, nil
}

func (r *stubSubjectRepo) List(_ context.Context) ([]*domain.Subject, error) {
	out := make([]*domain.Subject, 0, len(r.subjects))
	for _, s := range r.subjects {
		clone := *s
		out = append(out, &clone)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// openThrottle never blocks and records nothing.
type openThrottle struct{}

func (openThrottle) Allow(context.Context, string) (bool, error) { return true, nil }
func (openThrottle) RecordFailure(context.Context, string) error { return nil }
func (openThrottle) Reset(context.Context, string) error         { return nil }

// countingThrottle blocks after max recorded failures.
type countingThrottle struct {
	max      int
	failures map[string]int
}

func newCountingThrottle(max int) *countingThrottle {
	return &countingThrottle{max: max, failures: make(map[string]int)}
}

func (t *countingThrottle) Allow(_ context.Context, email string) (bool, error) {
	return t.failures[email] < t.max, nil
}

func (t *countingThrottle) RecordFailure(_ context.Context, email string) error {
	t.failures[email]++
	return nil
}

func (t *countingThrottle) Reset(_ context.Context, email string) error {
	delete(t.failures, email)
	return nil
}

// recordingQueue captures enqueued tutor ids.
type recordingQueue struct {
	enqueued []int64
}

func (q *recordingQueue) Enqueue(tutorID int64) {
	q.enqueued = append(q.enqueued, tutorID)
}
