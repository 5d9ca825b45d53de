package storeclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acadify/curricula-api/internal/models"
	"github.com/acadify/curricula-api/pkg/config"
	appErrors "github.com/acadify/curricula-api/pkg/errors"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	client := New(config.StoreConfig{BaseURL: server.URL, Timeout: 5 * time.Second}, nil, nil)
	return client, server
}

func TestFetchProgramDecodesMixedRequirementForms(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/degreeProgram/p1/subjects", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": "p1",
			"name": "Systems Engineering",
			"subjects": [
				{"id": "s1", "name": "Algebra", "subjectYear": 1, "status": "passed", "requirements": []},
				{"id": "s2", "name": "Calculus II", "subjectYear": 2, "status": "not_available",
				 "requirements": ["s1", {"id": "s1", "minStatus": "final_pending"}]}
			]
		}`))
	})

	program, err := client.FetchProgram(context.Background(), "p1")
	require.NoError(t, err)
	require.Len(t, program.Subjects, 2)

	reqs := program.Subjects[1].Requirements
	require.Len(t, reqs, 2)
	assert.Equal(t, "s1", reqs[0].ID)
	assert.Equal(t, models.MinStatusPassed, reqs[0].MinStatus)
	assert.Equal(t, models.MinStatusFinalPending, reqs[1].MinStatus)
}

func TestCreateProgramReturnsAssignedID(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/degreeProgram", r.URL.Path)

		var payload map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "Systems Engineering", payload["name"])
		assert.Equal(t, "u1", payload["universityID"])

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id": "srv-p1"}`))
	})

	id, err := client.CreateProgram(context.Background(), CreateProgramRequest{Name: "Systems Engineering", UniversityID: "u1"})
	require.NoError(t, err)
	assert.Equal(t, "srv-p1", id)
}

func TestUpdateSubjectRequirementsSendsFullReplacement(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/subjects/srv-s2", r.URL.Path)

		var payload struct {
			Requirements []map[string]string `json:"requirements"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		require.Len(t, payload.Requirements, 1)
		assert.Equal(t, "srv-s1", payload.Requirements[0]["id"])
		assert.Equal(t, "final_pending", payload.Requirements[0]["minStatus"])

		w.WriteHeader(http.StatusOK)
	})

	err := client.UpdateSubjectRequirements(context.Background(), "srv-s2", []models.Requirement{
		{ID: "srv-s1", MinStatus: models.MinStatusFinalPending},
	})
	require.NoError(t, err)
}

func TestNon2xxMapsToStoreUnavailable(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})

	_, err := client.FetchElectivePools(context.Background(), "p1")
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrStoreUnavailable.Code, appErr.Code)
}

func TestMissingBaseURLIsConfigurationError(t *testing.T) {
	client := New(config.StoreConfig{}, nil, nil)

	_, err := client.FetchProgram(context.Background(), "p1")
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrStoreNotConfigured.Code, appErr.Code)
}

func TestDeleteHelpersHitExpectedRoutes(t *testing.T) {
	var paths []string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		paths = append(paths, r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	})

	ctx := context.Background()
	require.NoError(t, client.DeleteSubject(ctx, "s1"))
	require.NoError(t, client.DeleteElectivePool(ctx, "p1", "pool1"))
	require.NoError(t, client.DeleteProgram(ctx, "p1"))

	assert.Equal(t, []string{
		"/subjects/s1",
		"/degreeProgram/p1/electivePools/pool1",
		"/degreeProgram/p1",
	}, paths)
}
