package teacher

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memRepository struct {
	byUsername map[string]*Teacher
}

func newMemRepository() *memRepository {
	return &memRepository{byUsername: map[string]*Teacher{}}
}

func (r *memRepository) GetByUsername(_ context.Context, username string) (*Teacher, error) {
	t, ok := r.byUsername[username]
	if !ok {
		return nil, ErrNotFound
	}
	clone := *t
	return &clone, nil
}

func (r *memRepository) List(_ context.Context) ([]*Teacher, error) {
	out := make([]*Teacher, 0, len(r.byUsername))
	for _, t := range r.byUsername {
		clone := *t
		out = append(out, &clone)
	}
	return out, nil
}

func (r *memRepository) Create(_ context.Context, t *Teacher) error {
	if _, ok := r.byUsername[t.Username]; ok {
		return ErrUsernameTaken
	}
	t.CreatedAt = time.Now()
	clone := *t
	r.byUsername[t.Username] = &clone
	return nil
}

func TestRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		svc := NewService(newMemRepository())

		name := "Maria Rodriguez"
		created, err := svc.Register(ctx, RegisterRequest{Username: "mrodriguez", DisplayName: &name})
		require.NoError(t, err)

		assert.Equal(t, "mrodriguez", created.Username)
		assert.False(t, created.CreatedAt.IsZero())
	})

	t.Run("Blank Username", func(t *testing.T) {
		svc := NewService(newMemRepository())

		_, err := svc.Register(ctx, RegisterRequest{Username: "   "})
		assert.ErrorIs(t, err, ErrUsernameRequired)
	})

	t.Run("Duplicate Username", func(t *testing.T) {
		svc := NewService(newMemRepository())

		_, err := svc.Register(ctx, RegisterRequest{Username: "mrodriguez"})
		require.NoError(t, err)

		_, err = svc.Register(ctx, RegisterRequest{Username: "mrodriguez"})
		assert.ErrorIs(t, err, ErrUsernameTaken)
	})
}

func TestGetByUsername(t *testing.T) {
	ctx := context.Background()
	svc := NewService(newMemRepository())

	_, err := svc.Register(ctx, RegisterRequest{Username: "t1"})
	require.NoError(t, err)

	t.Run("Existing Teacher", func(t *testing.T) {
		found, err := svc.GetByUsername(ctx, "t1")
		require.NoError(t, err)
		assert.Equal(t, "t1", found.Username)
	})

	t.Run("Unknown Teacher", func(t *testing.T) {
		_, err := svc.GetByUsername(ctx, "ghost")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}
