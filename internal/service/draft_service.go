package service

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/acadify/curricula-api/internal/dto"
	"github.com/acadify/curricula-api/internal/models"
	appErrors "github.com/acadify/curricula-api/pkg/errors"
)

type draftRepository interface {
	Get(ctx context.Context, id string) (*models.DraftCurriculum, error)
	Set(ctx context.Context, draft *models.DraftCurriculum, ttl time.Duration) error
	Delete(ctx context.Context, id string) error
}

// DraftService owns draft curriculum sessions: the state of the authoring
// wizard between steps, persisted opaquely with a TTL. A draft only becomes
// remote state when handed to the creation transaction.
type DraftService struct {
	repo      draftRepository
	validator *validator.Validate
	logger    *zap.Logger
	ttl       time.Duration
}

// NewDraftService creates a new draft service.
func NewDraftService(repo draftRepository, validate *validator.Validate, logger *zap.Logger, ttl time.Duration) *DraftService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if ttl <= 0 {
		ttl = 7 * 24 * time.Hour
	}
	return &DraftService{repo: repo, validator: validate, logger: logger, ttl: ttl}
}

// Create opens a new draft session.
func (s *DraftService) Create(ctx context.Context, req dto.SaveDraftRequest) (*models.DraftCurriculum, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid draft payload")
	}

	draft := draftFromSaveRequest(req)
	draft.ID = uuid.NewString()
	draft.UpdatedAt = time.Now().UTC()

	if err := s.repo.Set(ctx, draft, s.ttl); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to store draft")
	}
	return draft, nil
}

// Get loads a draft session.
func (s *DraftService) Get(ctx context.Context, id string) (*models.DraftCurriculum, error) {
	draft, err := s.repo.Get(ctx, id)
	if err != nil {
		appErr := appErrors.FromError(err)
		if appErr.Code == appErrors.ErrCacheMiss.Code {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "draft not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load draft")
	}
	return draft, nil
}

// Update replaces a draft session's content, refreshing its TTL.
func (s *DraftService) Update(ctx context.Context, id string, req dto.SaveDraftRequest) (*models.DraftCurriculum, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid draft payload")
	}

	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}

	draft := draftFromSaveRequest(req)
	draft.ID = id
	draft.UpdatedAt = time.Now().UTC()

	if err := s.repo.Set(ctx, draft, s.ttl); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to store draft")
	}
	return draft, nil
}

// Delete discards a draft session.
func (s *DraftService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete draft")
	}
	return nil
}

func draftFromSaveRequest(req dto.SaveDraftRequest) *models.DraftCurriculum {
	draft := draftFromRequest(dto.CreateCurriculumRequest{
		ProgramName:   req.ProgramName,
		UniversityID:  req.UniversityID,
		Subjects:      req.Subjects,
		ElectivePools: req.ElectivePools,
		ElectiveRules: req.ElectiveRules,
	})
	return &draft
}
