package service

import (
	"context"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/acadify/curricula-api/internal/dto"
	"github.com/acadify/curricula-api/internal/models"
	appErrors "github.com/acadify/curricula-api/pkg/errors"
)

type mockDraftRepo struct {
	drafts  map[string]*models.DraftCurriculum
	lastTTL time.Duration
}

func newMockDraftRepo() *mockDraftRepo {
	return &mockDraftRepo{drafts: make(map[string]*models.DraftCurriculum)}
}

func (m *mockDraftRepo) Get(ctx context.Context, id string) (*models.DraftCurriculum, error) {
	if draft, ok := m.drafts[id]; ok {
		return draft, nil
	}
	return nil, appErrors.Clone(appErrors.ErrCacheMiss, "")
}

func (m *mockDraftRepo) Set(ctx context.Context, draft *models.DraftCurriculum, ttl time.Duration) error {
	m.drafts[draft.ID] = draft
	m.lastTTL = ttl
	return nil
}

func (m *mockDraftRepo) Delete(ctx context.Context, id string) error {
	delete(m.drafts, id)
	return nil
}

func TestDraftServiceCreateAssignsIDAndTTL(t *testing.T) {
	repo := newMockDraftRepo()
	svc := NewDraftService(repo, validator.New(), zap.NewNop(), 2*time.Hour)

	draft, err := svc.Create(context.Background(), dto.SaveDraftRequest{
		ProgramName: "Systems Engineering",
		Subjects:    []dto.DraftSubjectRequest{{ID: "local-1", Name: "Algebra", Year: 1}},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, draft.ID)
	assert.False(t, draft.UpdatedAt.IsZero())
	assert.Equal(t, 2*time.Hour, repo.lastTTL)

	loaded, err := svc.Get(context.Background(), draft.ID)
	require.NoError(t, err)
	assert.Equal(t, "Systems Engineering", loaded.ProgramName)
}

func TestDraftServiceGetUnknownIsNotFound(t *testing.T) {
	svc := NewDraftService(newMockDraftRepo(), validator.New(), zap.NewNop(), 0)

	_, err := svc.Get(context.Background(), "nope")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}

func TestDraftServiceUpdateReplacesContent(t *testing.T) {
	repo := newMockDraftRepo()
	svc := NewDraftService(repo, validator.New(), zap.NewNop(), 0)

	draft, err := svc.Create(context.Background(), dto.SaveDraftRequest{ProgramName: "Before"})
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), draft.ID, dto.SaveDraftRequest{
		ProgramName: "After",
		Subjects:    []dto.DraftSubjectRequest{{ID: "local-1", Name: "Algebra"}},
	})
	require.NoError(t, err)
	assert.Equal(t, draft.ID, updated.ID)
	assert.Equal(t, "After", updated.ProgramName)
	assert.Len(t, updated.Subjects, 1)
}

func TestDraftServiceUpdateUnknownIsNotFound(t *testing.T) {
	svc := NewDraftService(newMockDraftRepo(), validator.New(), zap.NewNop(), 0)

	_, err := svc.Update(context.Background(), "nope", dto.SaveDraftRequest{ProgramName: "X"})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}

func TestDraftServiceDelete(t *testing.T) {
	repo := newMockDraftRepo()
	svc := NewDraftService(repo, validator.New(), zap.NewNop(), 0)

	draft, err := svc.Create(context.Background(), dto.SaveDraftRequest{ProgramName: "Gone"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), draft.ID))
	_, err = svc.Get(context.Background(), draft.ID)
	require.Error(t, err)
}

func TestDraftServiceRejectsMissingProgramName(t *testing.T) {
	svc := NewDraftService(newMockDraftRepo(), validator.New(), zap.NewNop(), 0)

	_, err := svc.Create(context.Background(), dto.SaveDraftRequest{})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}
