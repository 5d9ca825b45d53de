package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acadify/curricula-api/internal/models"
	appErrors "github.com/acadify/curricula-api/pkg/errors"
)

func exportFixtureStore() *mockPlanStore {
	return &mockPlanStore{
		program: &models.DegreeProgram{
			ID:   "p1",
			Name: "Systems Engineering",
			Subjects: []models.Subject{
				{ID: "s1", Name: "Algebra", Year: 1, Term: models.TermAnnual, Status: models.StatusPassed},
				{ID: "s2", Name: "Calculus II", Year: 2, Status: models.StatusNotAvailable,
					Requirements: []models.Requirement{{ID: "s1", MinStatus: models.MinStatusPassed}}},
			},
		},
		pools: []models.ElectivePool{
			{ID: "pool1", Name: "Humanities", Subjects: []models.Subject{{ID: "s1", Hours: 40}}},
		},
		rules: []models.ElectiveRule{
			{ID: "r1", PoolID: "pool1", RequirementType: models.RequirementHours, MinimumValue: 80},
		},
	}
}

func TestPlanExportCSV(t *testing.T) {
	svc := NewExportService(NewPlanService(exportFixtureStore(), nil), nil)

	result, err := svc.PlanExport(context.Background(), "p1", FormatCSV)
	require.NoError(t, err)
	assert.Equal(t, "text/csv", result.ContentType)
	assert.Equal(t, "plan-p1.csv", result.Filename)

	body := string(result.Content)
	assert.True(t, strings.HasPrefix(body, "Subject,Year,Term,Status"))
	assert.Contains(t, body, "Algebra,1,annual,passed")
	// Availability was resolved before rendering.
	assert.Contains(t, body, "Calculus II,2,,available")
}

func TestPlanExportPDF(t *testing.T) {
	svc := NewExportService(NewPlanService(exportFixtureStore(), nil), nil)

	result, err := svc.PlanExport(context.Background(), "p1", FormatPDF)
	require.NoError(t, err)
	assert.Equal(t, "application/pdf", result.ContentType)
	assert.True(t, strings.HasPrefix(string(result.Content), "%PDF"))
}

func TestElectivesExportCSV(t *testing.T) {
	svc := NewExportService(NewPlanService(exportFixtureStore(), nil), nil)

	result, err := svc.ElectivesExport(context.Background(), "p1", false, FormatCSV)
	require.NoError(t, err)

	body := string(result.Content)
	assert.Contains(t, body, "Humanities,hours,40,80,50%")
}

func TestExportRejectsUnknownFormat(t *testing.T) {
	svc := NewExportService(NewPlanService(exportFixtureStore(), nil), nil)

	_, err := svc.PlanExport(context.Background(), "p1", ExportFormat("xml"))
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestExportPropagatesStoreFailure(t *testing.T) {
	store := exportFixtureStore()
	store.err = appErrors.Clone(appErrors.ErrStoreUnavailable, "")
	svc := NewExportService(NewPlanService(store, nil), nil)

	_, err := svc.PlanExport(context.Background(), "p1", FormatCSV)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrStoreUnavailable.Code, appErrors.FromError(err).Code)
}
