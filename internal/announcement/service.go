package announcement

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/campusware/school-backend/internal/teacher"
)

type CreateRequest struct {
	Message         string
	ExpirationDate  string
	StartDate       *string
	TeacherUsername string
}

type UpdateRequest struct {
	Message         string
	ExpirationDate  string
	StartDate       *string
	TeacherUsername string
}

type Service interface {
	ListActive(ctx context.Context) ([]*Announcement, error)
	ListAll(ctx context.Context, teacherUsername string) ([]*Announcement, error)
	Create(ctx context.Context, req CreateRequest) (*Announcement, error)
	Update(ctx context.Context, id string, req UpdateRequest) (*Announcement, error)
	Delete(ctx context.Context, id string, teacherUsername string) error
}

type service struct {
	repo     Repository
	teachers teacher.Service
	now      func() time.Time
}

func NewService(repo Repository, teachers teacher.Service) Service {
	return &service{
		repo:     repo,
		teachers: teachers,
		now:      time.Now,
	}
}

// ListActive returns announcements whose window covers today. The filtering
// walks the full listing and compares YYYY-MM-DD strings, so storage order
// is preserved.
func (s *service) ListActive(ctx context.Context) ([]*Announcement, error) {
	list, err := s.repo.List(ctx, Filter{})
	if err != nil {
		return nil, err
	}

	today := s.now().Format(dateLayout)

	active := make([]*Announcement, 0, len(list))
	for _, a := range list {
		if a.activeOn(today) {
			active = append(active, a)
		}
	}
	return active, nil
}

// ListAll returns every announcement, expired ones included, newest
// expiration first. Requires a known teacher.
func (s *service) ListAll(ctx context.Context, teacherUsername string) ([]*Announcement, error) {
	if err := s.authenticate(ctx, teacherUsername); err != nil {
		return nil, err
	}
	return s.repo.List(ctx, Filter{SortByExpirationDesc: true})
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Announcement, error) {
	if err := s.authenticate(ctx, req.TeacherUsername); err != nil {
		return nil, err
	}
	if strings.TrimSpace(req.Message) == "" {
		return nil, ErrMessageRequired
	}
	if err := validateDates(req.ExpirationDate, req.StartDate); err != nil {
		return nil, err
	}

	a := &Announcement{
		Message:        req.Message,
		StartDate:      req.StartDate,
		ExpirationDate: req.ExpirationDate,
		CreatedBy:      req.TeacherUsername,
	}

	if err := s.repo.Insert(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

// Update replaces message and dates wholesale. An omitted StartDate removes
// any stored one; this takes a separate clearing statement before the field
// update, with no transaction around the pair.
func (s *service) Update(ctx context.Context, id string, req UpdateRequest) (*Announcement, error) {
	if err := s.authenticate(ctx, req.TeacherUsername); err != nil {
		return nil, err
	}

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(req.Message) == "" {
		return nil, ErrMessageRequired
	}
	if err := validateDates(req.ExpirationDate, req.StartDate); err != nil {
		return nil, err
	}

	if req.StartDate == nil {
		if err := s.repo.ClearStartDate(ctx, id); err != nil {
			return nil, err
		}
	}

	a := &Announcement{
		ID:             id,
		Message:        req.Message,
		StartDate:      req.StartDate,
		ExpirationDate: req.ExpirationDate,
		CreatedBy:      existing.CreatedBy,
	}

	if err := s.repo.Update(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *service) Delete(ctx context.Context, id string, teacherUsername string) error {
	if err := s.authenticate(ctx, teacherUsername); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

// authenticate maps a failed directory lookup to ErrUnknownTeacher. The
// existence check is the whole authentication story here.
func (s *service) authenticate(ctx context.Context, username string) error {
	if username == "" {
		return ErrUnknownTeacher
	}
	if _, err := s.teachers.GetByUsername(ctx, username); err != nil {
		if errors.Is(err, teacher.ErrNotFound) {
			return ErrUnknownTeacher
		}
		return err
	}
	return nil
}

func validateDates(expiration string, start *string) error {
	if !validDate(expiration) {
		return ErrInvalidDate
	}
	if start != nil && !validDate(*start) {
		return ErrInvalidDate
	}
	return nil
}
