package document

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"notekeeper/internal/domain/note"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Get(ctx context.Context, userID int) (Document, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(Document), args.Error(1)
}

func (m *MockRepository) Replace(ctx context.Context, userID int, doc Document) (Document, error) {
	args := m.Called(ctx, userID, doc)
	return args.Get(0).(Document), args.Error(1)
}

func newTestService(repo Repository) *Service {
	return NewService(repo, slog.Default())
}

func TestServiceRead(t *testing.T) {
	base := time.Now()
	older := note.New("")
	older.UpdatedAt = base.Add(-time.Hour)
	newer := note.New("")
	newer.UpdatedAt = base

	repo := new(MockRepository)
	repo.On("Get", mock.Anything, 7).
		Return(Document{Notes: []note.Note{older, newer}}, nil)

	svc := newTestService(repo)

	doc, err := svc.Read(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, doc.Notes, 2)
	assert.Equal(t, newer.ID, doc.Notes[0].ID, "свежие заметки должны идти первыми")
	repo.AssertExpectations(t)
}

func TestServiceReadRepoError(t *testing.T) {
	repo := new(MockRepository)
	repo.On("Get", mock.Anything, 7).
		Return(Document{}, errors.New("connection refused"))

	svc := newTestService(repo)

	_, err := svc.Read(context.Background(), 7)
	assert.Error(t, err)
}

func TestServiceReplace(t *testing.T) {
	n := note.New("")

	t.Run("success echoes stored state", func(t *testing.T) {
		doc := Document{Notes: []note.Note{n}}

		repo := new(MockRepository)
		repo.On("Replace", mock.Anything, 7, doc).Return(doc, nil)

		svc := newTestService(repo)

		stored, err := svc.Replace(context.Background(), 7, doc)
		require.NoError(t, err)
		assert.Equal(t, n.ID, stored.Notes[0].ID)
		repo.AssertExpectations(t)
	})

	t.Run("invalid document never reaches repo", func(t *testing.T) {
		bad := n
		bad.IsLocked = true
		bad.Content = "plaintext"

		repo := new(MockRepository)
		svc := newTestService(repo)

		_, err := svc.Replace(context.Background(), 7, Document{Notes: []note.Note{bad}})
		assert.ErrorIs(t, err, ErrInvalidDocument)
		repo.AssertNotCalled(t, "Replace")
	})

	t.Run("repo failure", func(t *testing.T) {
		doc := Document{Notes: []note.Note{n}}

		repo := new(MockRepository)
		repo.On("Replace", mock.Anything, 7, doc).
			Return(Document{}, errors.New("connection refused"))

		svc := newTestService(repo)

		_, err := svc.Replace(context.Background(), 7, doc)
		assert.Error(t, err)
	})
}
