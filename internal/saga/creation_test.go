package saga

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acadify/curricula-api/internal/models"
	"github.com/acadify/curricula-api/internal/storeclient"
	appErrors "github.com/acadify/curricula-api/pkg/errors"
)

type mockStore struct {
	mu sync.Mutex

	nextID          int
	failSubjectAt   int // 1-based index of the subject POST that fails, 0 = never
	failUpdate      bool
	failPool        bool
	failProgram     bool
	failDeletes     bool
	subjectCreates  []storeclient.CreateSubjectRequest
	updates         map[string][]models.Requirement
	poolLinks       []string
	ruleCreates     []storeclient.CreateElectiveRuleRequest
	deletedSubjects []string
	deletedPools    []string
	deletedPrograms []string
}

func newMockStore() *mockStore {
	return &mockStore{updates: make(map[string][]models.Requirement)}
}

func (m *mockStore) assign(prefix string) string {
	m.nextID++
	return fmt.Sprintf("%s-%d", prefix, m.nextID)
}

func (m *mockStore) CreateProgram(ctx context.Context, req storeclient.CreateProgramRequest) (string, error) {
	if m.failProgram {
		return "", errors.New("store down")
	}
	return m.assign("prog"), nil
}

func (m *mockStore) CreateSubject(ctx context.Context, req storeclient.CreateSubjectRequest) (string, error) {
	m.subjectCreates = append(m.subjectCreates, req)
	if m.failSubjectAt > 0 && len(m.subjectCreates) == m.failSubjectAt {
		return "", errors.New("store down")
	}
	return m.assign("subj"), nil
}

func (m *mockStore) UpdateSubjectRequirements(ctx context.Context, subjectID string, requirements []models.Requirement) error {
	if m.failUpdate {
		return errors.New("store down")
	}
	m.updates[subjectID] = requirements
	return nil
}

func (m *mockStore) CreateElectivePool(ctx context.Context, programID string, req storeclient.CreateElectivePoolRequest) (string, error) {
	if m.failPool {
		return "", errors.New("store down")
	}
	return m.assign("pool"), nil
}

func (m *mockStore) AddPoolSubject(ctx context.Context, programID, poolID, subjectID string) error {
	m.poolLinks = append(m.poolLinks, poolID+":"+subjectID)
	return nil
}

func (m *mockStore) CreateElectiveRule(ctx context.Context, programID string, req storeclient.CreateElectiveRuleRequest) (string, error) {
	m.ruleCreates = append(m.ruleCreates, req)
	return m.assign("rule"), nil
}

func (m *mockStore) DeleteSubject(ctx context.Context, subjectID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.deletedSubjects = append(m.deletedSubjects, subjectID)
	if m.failDeletes {
		return errors.New("delete failed")
	}
	return nil
}

func (m *mockStore) DeleteElectivePool(ctx context.Context, programID, poolID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.deletedPools = append(m.deletedPools, poolID)
	return nil
}

func (m *mockStore) DeleteProgram(ctx context.Context, programID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.deletedPrograms = append(m.deletedPrograms, programID)
	if m.failDeletes {
		return errors.New("delete failed")
	}
	return nil
}

func draftWithSubjects() models.DraftCurriculum {
	return models.DraftCurriculum{
		ProgramName:  "Systems Engineering",
		UniversityID: "u1",
		Subjects: []models.DraftSubject{
			{ID: "local-1", Name: "Algebra", Year: 1},
			{ID: "local-2", Name: "Calculus", Year: 1},
			{ID: "local-3", Name: "Calculus II", Year: 2, Prerequisites: []models.DraftPrerequisite{
				{SubjectID: "local-2", MinStatus: models.MinStatusPassed},
				{SubjectID: "local-1", MinStatus: models.MinStatusFinalPending},
			}},
		},
	}
}

func TestCreateRemapsPrerequisitesToServerIDs(t *testing.T) {
	store := newMockStore()
	tx := NewTransaction(store, nil)

	result, err := tx.Create(context.Background(), draftWithSubjects())
	require.NoError(t, err)
	require.NotNil(t, result)

	// Subjects were created sequentially in draft order.
	require.Len(t, store.subjectCreates, 3)
	assert.Equal(t, "Algebra", store.subjectCreates[0].Name)
	assert.Equal(t, "Calculus II", store.subjectCreates[2].Name)

	// The third subject's edges point at assigned server ids.
	serverID := result.SubjectIDs["local-3"]
	reqs, ok := store.updates[serverID]
	require.True(t, ok)
	require.Len(t, reqs, 2)
	assert.Equal(t, result.SubjectIDs["local-2"], reqs[0].ID)
	assert.Equal(t, models.MinStatusPassed, reqs[0].MinStatus)
	assert.Equal(t, result.SubjectIDs["local-1"], reqs[1].ID)
	assert.Equal(t, models.MinStatusFinalPending, reqs[1].MinStatus)

	assert.Empty(t, store.deletedSubjects)
	assert.Empty(t, store.deletedPrograms)
}

func TestCreateSubjectFailureCompensatesPrefix(t *testing.T) {
	store := newMockStore()
	store.failSubjectAt = 2
	tx := NewTransaction(store, nil)

	_, err := tx.Create(context.Background(), draftWithSubjects())
	require.Error(t, err)

	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrCreationFailed.Code, appErr.Code)
	assert.NotEqual(t, appErrors.ErrDanglingReference.Code, appErr.Code)

	// Exactly the one already-created subject and the program are deleted.
	assert.Len(t, store.deletedSubjects, 1)
	assert.Len(t, store.deletedPrograms, 1)
	assert.Empty(t, store.updates)
}

func TestCreateProgramFailureNeedsNoCleanup(t *testing.T) {
	store := newMockStore()
	store.failProgram = true
	tx := NewTransaction(store, nil)

	_, err := tx.Create(context.Background(), draftWithSubjects())
	require.Error(t, err)
	assert.Empty(t, store.deletedSubjects)
	assert.Empty(t, store.deletedPrograms)
	assert.Empty(t, store.subjectCreates)
}

func TestCreateDanglingReferenceAbortsWithoutAttachment(t *testing.T) {
	store := newMockStore()
	tx := NewTransaction(store, nil)

	draft := draftWithSubjects()
	draft.Subjects[2].Prerequisites = []models.DraftPrerequisite{
		{SubjectID: "never-created", MinStatus: models.MinStatusPassed},
	}

	_, err := tx.Create(context.Background(), draft)
	require.Error(t, err)

	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrDanglingReference.Code, appErr.Code)

	// No requirement PUT was issued for the broken edge, and everything
	// created so far was compensated.
	assert.Empty(t, store.updates)
	assert.Len(t, store.deletedSubjects, 3)
	assert.Len(t, store.deletedPrograms, 1)
}

func TestCreateAttachmentFailureCompensatesAllSubjects(t *testing.T) {
	store := newMockStore()
	store.failUpdate = true
	tx := NewTransaction(store, nil)

	_, err := tx.Create(context.Background(), draftWithSubjects())
	require.Error(t, err)

	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrCreationFailed.Code, appErr.Code)
	assert.Len(t, store.deletedSubjects, 3)
	assert.Len(t, store.deletedPrograms, 1)
}

func TestCreateCompensationFailuresDoNotMaskOriginalError(t *testing.T) {
	store := newMockStore()
	store.failSubjectAt = 3
	store.failDeletes = true
	tx := NewTransaction(store, nil)

	_, err := tx.Create(context.Background(), draftWithSubjects())
	require.Error(t, err)

	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrCreationFailed.Code, appErr.Code)
	// Deletes were still attempted for both created subjects and the program.
	assert.Len(t, store.deletedSubjects, 2)
	assert.Len(t, store.deletedPrograms, 1)
}

func TestCreateWithElectivePoolsAndRules(t *testing.T) {
	store := newMockStore()
	tx := NewTransaction(store, nil)

	draft := draftWithSubjects()
	draft.ElectivePools = []models.DraftElectivePool{
		{ID: "pool-local", Name: "Humanities", SubjectIDs: []string{"local-1", "local-2"}},
	}
	draft.ElectiveRules = []models.DraftElectiveRule{
		{ID: "rule-local", PoolID: "pool-local", AppliesFromYear: 1, RequirementType: models.RequirementSubjectCount, MinimumValue: 2},
	}

	result, err := tx.Create(context.Background(), draft)
	require.NoError(t, err)

	require.Len(t, store.poolLinks, 2)
	poolID := result.PoolIDs["pool-local"]
	assert.Equal(t, poolID+":"+result.SubjectIDs["local-1"], store.poolLinks[0])

	require.Len(t, store.ruleCreates, 1)
	assert.Equal(t, poolID, store.ruleCreates[0].PoolID)
}

func TestCreatePoolFailureCompensatesSubjects(t *testing.T) {
	store := newMockStore()
	store.failPool = true
	tx := NewTransaction(store, nil)

	draft := draftWithSubjects()
	draft.ElectivePools = []models.DraftElectivePool{{ID: "pool-local", Name: "Humanities"}}

	_, err := tx.Create(context.Background(), draft)
	require.Error(t, err)
	assert.Len(t, store.deletedSubjects, 3)
	assert.Len(t, store.deletedPrograms, 1)
}

func TestCreateRuleWithUnknownPoolIsDangling(t *testing.T) {
	store := newMockStore()
	tx := NewTransaction(store, nil)

	draft := draftWithSubjects()
	draft.ElectiveRules = []models.DraftElectiveRule{
		{ID: "rule-local", PoolID: "ghost-pool", AppliesFromYear: 1, RequirementType: models.RequirementHours, MinimumValue: 80},
	}

	_, err := tx.Create(context.Background(), draft)
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrDanglingReference.Code, appErr.Code)
}
