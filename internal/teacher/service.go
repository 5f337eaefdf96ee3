package teacher

import (
	"context"
	"strings"
)

type RegisterRequest struct {
	Username    string
	DisplayName *string
}

type Service interface {
	GetByUsername(ctx context.Context, username string) (*Teacher, error)
	List(ctx context.Context) ([]*Teacher, error)
	Register(ctx context.Context, req RegisterRequest) (*Teacher, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) GetByUsername(ctx context.Context, username string) (*Teacher, error) {
	return s.repo.GetByUsername(ctx, username)
}

func (s *service) List(ctx context.Context) ([]*Teacher, error) {
	return s.repo.List(ctx)
}

func (s *service) Register(ctx context.Context, req RegisterRequest) (*Teacher, error) {
	if strings.TrimSpace(req.Username) == "" {
		return nil, ErrUsernameRequired
	}

	t := &Teacher{
		Username:    req.Username,
		DisplayName: req.DisplayName,
	}

	if err := s.repo.Create(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}
