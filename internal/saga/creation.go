// Package saga implements the curriculum creation transaction. The store
// only offers per-entity CRUD, so a whole curriculum is created as an
// ordered sequence of remote calls with best-effort compensating deletes on
// any failure.
package saga

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/acadify/curricula-api/internal/models"
	"github.com/acadify/curricula-api/internal/storeclient"
	appErrors "github.com/acadify/curricula-api/pkg/errors"
)

// Store is the subset of the store client the transaction drives.
type Store interface {
	CreateProgram(ctx context.Context, req storeclient.CreateProgramRequest) (string, error)
	CreateSubject(ctx context.Context, req storeclient.CreateSubjectRequest) (string, error)
	UpdateSubjectRequirements(ctx context.Context, subjectID string, requirements []models.Requirement) error
	CreateElectivePool(ctx context.Context, programID string, req storeclient.CreateElectivePoolRequest) (string, error)
	AddPoolSubject(ctx context.Context, programID, poolID, subjectID string) error
	CreateElectiveRule(ctx context.Context, programID string, req storeclient.CreateElectiveRuleRequest) (string, error)
	DeleteSubject(ctx context.Context, subjectID string) error
	DeleteElectivePool(ctx context.Context, programID, poolID string) error
	DeleteProgram(ctx context.Context, programID string) error
}

// Transaction creates a program and its curriculum as a unit.
type Transaction struct {
	store  Store
	logger *zap.Logger
}

// NewTransaction builds a creation transaction.
func NewTransaction(store Store, logger *zap.Logger) *Transaction {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Transaction{store: store, logger: logger}
}

// record tracks what has been created so far. Compensation is a function of
// this record alone, never of control flow.
type record struct {
	programID  string
	subjectIDs []string
	poolIDs    []string
}

// Result reports the server-side identifiers of a completed creation.
type Result struct {
	ProgramID  string            `json:"program_id"`
	SubjectIDs map[string]string `json:"subject_ids"`
	PoolIDs    map[string]string `json:"pool_ids,omitempty"`
}

// Create persists the draft curriculum against the store. Subjects are
// created sequentially in draft order and their prerequisite edges are
// remapped from client-local ids to the assigned server ids. On any failure
// everything created so far is deleted best-effort and the original error is
// returned; a draft edge naming an unknown client id yields a
// dangling-reference error distinguishable from store failures.
func (t *Transaction) Create(ctx context.Context, draft models.DraftCurriculum) (*Result, error) {
	programID, err := t.store.CreateProgram(ctx, storeclient.CreateProgramRequest{
		Name:         draft.ProgramName,
		UniversityID: draft.UniversityID,
	})
	if err != nil {
		// Nothing created yet, nothing to clean.
		return nil, creationErr(err, "failed to create degree program")
	}

	rec := record{programID: programID}
	idMap := make(map[string]string, len(draft.Subjects))

	for _, subject := range draft.Subjects {
		serverID, err := t.store.CreateSubject(ctx, storeclient.CreateSubjectRequest{
			Name:            subject.Name,
			Year:            subject.Year,
			SubjectYear:     subject.Year,
			DegreeProgramID: programID,
			IsElective:      subject.IsElective,
		})
		if err != nil {
			t.compensate(ctx, rec)
			return nil, creationErr(err, "failed to create all subjects")
		}
		rec.subjectIDs = append(rec.subjectIDs, serverID)
		idMap[subject.ID] = serverID
	}

	for _, subject := range draft.Subjects {
		if len(subject.Prerequisites) == 0 {
			continue
		}

		serverID, ok := idMap[subject.ID]
		if !ok {
			t.compensate(ctx, rec)
			return nil, danglingErr(subject.ID)
		}

		requirements := make([]models.Requirement, 0, len(subject.Prerequisites))
		for _, prereq := range subject.Prerequisites {
			target, ok := idMap[prereq.SubjectID]
			if !ok {
				t.compensate(ctx, rec)
				return nil, danglingErr(prereq.SubjectID)
			}
			minStatus := prereq.MinStatus
			if !minStatus.Valid() {
				minStatus = models.MinStatusPassed
			}
			requirements = append(requirements, models.Requirement{ID: target, MinStatus: minStatus})
		}

		if err := t.store.UpdateSubjectRequirements(ctx, serverID, requirements); err != nil {
			t.compensate(ctx, rec)
			return nil, creationErr(err, "failed to attach subject requirements")
		}
	}

	poolIDMap := make(map[string]string, len(draft.ElectivePools))
	for _, pool := range draft.ElectivePools {
		poolID, err := t.store.CreateElectivePool(ctx, programID, storeclient.CreateElectivePoolRequest{
			Name:        pool.Name,
			Description: pool.Description,
		})
		if err != nil {
			t.compensate(ctx, rec)
			return nil, creationErr(err, "failed to create elective pools")
		}
		rec.poolIDs = append(rec.poolIDs, poolID)
		poolIDMap[pool.ID] = poolID

		for _, subjectID := range pool.SubjectIDs {
			member, ok := idMap[subjectID]
			if !ok {
				t.compensate(ctx, rec)
				return nil, danglingErr(subjectID)
			}
			if err := t.store.AddPoolSubject(ctx, programID, poolID, member); err != nil {
				t.compensate(ctx, rec)
				return nil, creationErr(err, "failed to assign electives to pools")
			}
		}
	}

	for _, rule := range draft.ElectiveRules {
		poolID, ok := poolIDMap[rule.PoolID]
		if !ok {
			t.compensate(ctx, rec)
			return nil, danglingErr(rule.PoolID)
		}
		_, err := t.store.CreateElectiveRule(ctx, programID, storeclient.CreateElectiveRuleRequest{
			PoolID:          poolID,
			AppliesFromYear: rule.AppliesFromYear,
			AppliesToYear:   rule.AppliesToYear,
			RequirementType: rule.RequirementType,
			MinimumValue:    rule.MinimumValue,
		})
		if err != nil {
			t.compensate(ctx, rec)
			return nil, creationErr(err, "failed to create elective rules")
		}
	}

	return &Result{ProgramID: programID, SubjectIDs: idMap, PoolIDs: poolIDMap}, nil
}

// compensate deletes everything in the record best-effort. Subject deletes
// run concurrently, then pool deletes, then the program strictly last.
// Individual delete failures are logged and swallowed so they cannot mask
// the error that triggered compensation.
func (t *Transaction) compensate(ctx context.Context, rec record) {
	t.deleteAll(rec.subjectIDs, func(id string) error {
		return t.store.DeleteSubject(ctx, id)
	})
	t.deleteAll(rec.poolIDs, func(id string) error {
		return t.store.DeleteElectivePool(ctx, rec.programID, id)
	})
	if rec.programID != "" {
		if err := t.store.DeleteProgram(ctx, rec.programID); err != nil {
			t.logger.Warn("compensation delete failed",
				zap.String("entity", "program"),
				zap.String("id", rec.programID),
				zap.Error(err))
		}
	}
}

func (t *Transaction) deleteAll(ids []string, deleteFn func(string) error) {
	var wg sync.WaitGroup
	for _, id := range ids {
		wg.Add(1)
		go func(id string) {
			defer wg.Done()
			if err := deleteFn(id); err != nil {
				t.logger.Warn("compensation delete failed",
					zap.String("id", id),
					zap.Error(err))
			}
		}(id)
	}
	wg.Wait()
}

func creationErr(err error, message string) error {
	return appErrors.Wrap(err, appErrors.ErrCreationFailed.Code, appErrors.ErrCreationFailed.Status, message)
}

func danglingErr(clientID string) error {
	return appErrors.Clone(appErrors.ErrDanglingReference, "draft reference "+clientID+" does not map to a created entity")
}
