package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/acadify/curricula-api/internal/dto"
	"github.com/acadify/curricula-api/internal/models"
	"github.com/acadify/curricula-api/internal/planner"
)

type planStore interface {
	FetchProgram(ctx context.Context, programID string) (*models.DegreeProgram, error)
	FetchElectivePools(ctx context.Context, programID string) ([]models.ElectivePool, error)
	FetchElectiveRules(ctx context.Context, programID string) ([]models.ElectiveRule, error)
}

// PlanService serves availability-resolved study plans and elective progress.
type PlanService struct {
	store  planStore
	logger *zap.Logger
}

// NewPlanService creates a new plan service.
func NewPlanService(store planStore, logger *zap.Logger) *PlanService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PlanService{store: store, logger: logger}
}

// ProgramPlan fetches a program's subjects and derives their availability.
func (s *PlanService) ProgramPlan(ctx context.Context, programID string) (*dto.PlanResponse, error) {
	program, err := s.store.FetchProgram(ctx, programID)
	if err != nil {
		return nil, err
	}

	return &dto.PlanResponse{
		ProgramID:  program.ID,
		Name:       program.Name,
		University: program.University,
		Subjects:   s.Resolve(program.Subjects),
	}, nil
}

// Resolve derives availability for a subject snapshot. Unknown status values
// degrade to not_available before resolution so malformed store data can
// never escalate.
func (s *PlanService) Resolve(subjects []models.Subject) []models.Subject {
	sanitized := make([]models.Subject, len(subjects))
	for i, subject := range subjects {
		sanitized[i] = subject
		if !subject.Status.Valid() {
			sanitized[i].Status = models.StatusNotAvailable
		}
	}
	return planner.Resolve(sanitized)
}

// ElectiveProgress scores every elective rule of a program against the
// student's resolved statuses. Rules are independent; pools may overlap.
func (s *PlanService) ElectiveProgress(ctx context.Context, programID string, includeFinalPending bool) (*dto.ElectiveProgressResponse, error) {
	program, err := s.store.FetchProgram(ctx, programID)
	if err != nil {
		return nil, err
	}

	pools, err := s.store.FetchElectivePools(ctx, programID)
	if err != nil {
		return nil, err
	}

	rules, err := s.store.FetchElectiveRules(ctx, programID)
	if err != nil {
		return nil, err
	}

	statusByID := planner.StatusIndex(s.Resolve(program.Subjects))

	poolByID := make(map[string]models.ElectivePool, len(pools))
	for _, pool := range pools {
		poolByID[pool.ID] = pool
	}

	progress := make([]models.ElectiveProgress, 0, len(rules))
	for _, rule := range rules {
		pool, ok := poolByID[rule.PoolID]
		if !ok {
			if rule.Pool != nil {
				pool = *rule.Pool
			} else {
				s.logger.Warn("elective rule references unknown pool",
					zap.String("rule_id", rule.ID),
					zap.String("pool_id", rule.PoolID))
				pool = models.ElectivePool{ID: rule.PoolID}
			}
		}
		progress = append(progress, planner.Progress(rule, pool, statusByID, includeFinalPending))
	}

	return &dto.ElectiveProgressResponse{
		ProgramID:           programID,
		IncludeFinalPending: includeFinalPending,
		Rules:               progress,
	}, nil
}
