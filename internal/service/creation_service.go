package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/acadify/curricula-api/internal/dto"
	"github.com/acadify/curricula-api/internal/models"
	"github.com/acadify/curricula-api/internal/saga"
	appErrors "github.com/acadify/curricula-api/pkg/errors"
)

type curriculumCreator interface {
	Create(ctx context.Context, draft models.DraftCurriculum) (*saga.Result, error)
}

// CreationService validates curriculum drafts and runs the creation
// transaction. Reference integrity between draft subjects is deliberately
// left to the transaction itself, which reports a dangling reference and
// compensates; the service only rejects structurally invalid payloads.
type CreationService struct {
	tx        curriculumCreator
	validator *validator.Validate
	logger    *zap.Logger
}

// NewCreationService creates a new creation service.
func NewCreationService(tx curriculumCreator, validate *validator.Validate, logger *zap.Logger) *CreationService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CreationService{tx: tx, validator: validate, logger: logger}
}

// Create persists a new curriculum as a unit. The returned error is either a
// validation error, a creation failure (already compensated), or a dangling
// reference failure (also compensated). It is never retried here: a retry
// could duplicate remote entities.
func (s *CreationService) Create(ctx context.Context, req dto.CreateCurriculumRequest) (*saga.Result, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid curriculum payload")
	}

	result, err := s.tx.Create(ctx, draftFromRequest(req))
	if err != nil {
		s.logger.Warn("curriculum creation failed",
			zap.String("program", req.ProgramName),
			zap.Error(err))
		return nil, err
	}

	s.logger.Info("curriculum created",
		zap.String("program_id", result.ProgramID),
		zap.Int("subjects", len(result.SubjectIDs)),
		zap.Int("pools", len(result.PoolIDs)))
	return result, nil
}

func draftFromRequest(req dto.CreateCurriculumRequest) models.DraftCurriculum {
	draft := models.DraftCurriculum{
		ProgramName:  req.ProgramName,
		UniversityID: req.UniversityID,
	}

	draft.Subjects = make([]models.DraftSubject, 0, len(req.Subjects))
	for _, subject := range req.Subjects {
		draft.Subjects = append(draft.Subjects, draftSubjectFromRequest(subject))
	}

	for _, pool := range req.ElectivePools {
		draft.ElectivePools = append(draft.ElectivePools, models.DraftElectivePool{
			ID:          pool.ID,
			Name:        pool.Name,
			Description: pool.Description,
			SubjectIDs:  pool.SubjectIDs,
		})
	}

	for _, rule := range req.ElectiveRules {
		draft.ElectiveRules = append(draft.ElectiveRules, models.DraftElectiveRule{
			ID:              rule.ID,
			PoolID:          rule.PoolID,
			AppliesFromYear: rule.AppliesFromYear,
			AppliesToYear:   rule.AppliesToYear,
			RequirementType: models.RequirementType(rule.RequirementType),
			MinimumValue:    rule.MinimumValue,
		})
	}

	return draft
}

func draftSubjectFromRequest(req dto.DraftSubjectRequest) models.DraftSubject {
	subject := models.DraftSubject{
		ID:         req.ID,
		Name:       req.Name,
		Year:       req.Year,
		Term:       models.Term(req.Term),
		IsElective: req.IsElective,
	}
	for _, prereq := range req.Prerequisites {
		minStatus := models.MinStatus(prereq.MinStatus)
		if !minStatus.Valid() {
			minStatus = models.MinStatusPassed
		}
		subject.Prerequisites = append(subject.Prerequisites, models.DraftPrerequisite{
			SubjectID: prereq.SubjectID,
			MinStatus: minStatus,
		})
	}
	return subject
}
