// Package storeclient talks to the remote curriculum store, a plain
// per-entity CRUD service over HTTP. It offers no transactions; the creation
// saga in internal/saga builds on these primitives.
package storeclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/acadify/curricula-api/internal/models"
	"github.com/acadify/curricula-api/pkg/config"
	appErrors "github.com/acadify/curricula-api/pkg/errors"
)

// RequestObserver receives one observation per store round-trip.
type RequestObserver interface {
	ObserveStoreRequest(method, route string, status int, duration time.Duration)
}

// Client is an HTTP client for the curriculum store.
type Client struct {
	baseURL  string
	http     *http.Client
	logger   *zap.Logger
	observer RequestObserver
}

// New builds a store client from configuration. The observer may be nil.
func New(cfg config.StoreConfig, logger *zap.Logger, observer RequestObserver) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		baseURL:  cfg.BaseURL,
		http:     &http.Client{Timeout: cfg.Timeout},
		logger:   logger,
		observer: observer,
	}
}

// CreateProgramRequest is the program creation payload.
type CreateProgramRequest struct {
	Name         string `json:"name"`
	UniversityID string `json:"universityID"`
}

// CreateSubjectRequest is the subject creation payload. The store expects the
// year under both keys.
type CreateSubjectRequest struct {
	Name            string `json:"name"`
	Year            int    `json:"year"`
	SubjectYear     int    `json:"subjectYear"`
	DegreeProgramID string `json:"degreeProgramID"`
	IsElective      bool   `json:"is_elective"`
}

// CreateElectivePoolRequest is the pool creation payload.
type CreateElectivePoolRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// CreateElectiveRuleRequest is the rule creation payload.
type CreateElectiveRuleRequest struct {
	PoolID          string                 `json:"pool_id"`
	AppliesFromYear int                    `json:"applies_from_year"`
	AppliesToYear   *int                   `json:"applies_to_year"`
	RequirementType models.RequirementType `json:"requirement_type"`
	MinimumValue    float64                `json:"minimum_value"`
}

type created struct {
	ID string `json:"id"`
}

// FetchProgram returns a program with its subject list.
func (c *Client) FetchProgram(ctx context.Context, programID string) (*models.DegreeProgram, error) {
	var program models.DegreeProgram
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/degreeProgram/%s/subjects", programID), nil, &program); err != nil {
		return nil, err
	}
	return &program, nil
}

// FetchElectivePools returns a program's elective pools with embedded members.
func (c *Client) FetchElectivePools(ctx context.Context, programID string) ([]models.ElectivePool, error) {
	var pools []models.ElectivePool
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/degreeProgram/%s/electivePools", programID), nil, &pools); err != nil {
		return nil, err
	}
	return pools, nil
}

// FetchElectiveRules returns a program's elective rules.
func (c *Client) FetchElectiveRules(ctx context.Context, programID string) ([]models.ElectiveRule, error) {
	var rules []models.ElectiveRule
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/degreeProgram/%s/electiveRules", programID), nil, &rules); err != nil {
		return nil, err
	}
	return rules, nil
}

// CreateProgram creates a degree program and returns its assigned id.
func (c *Client) CreateProgram(ctx context.Context, req CreateProgramRequest) (string, error) {
	var out created
	if err := c.do(ctx, http.MethodPost, "/degreeProgram", req, &out); err != nil {
		return "", err
	}
	return out.ID, nil
}

// CreateSubject creates a subject and returns its assigned id.
func (c *Client) CreateSubject(ctx context.Context, req CreateSubjectRequest) (string, error) {
	var out created
	if err := c.do(ctx, http.MethodPost, "/subjects", req, &out); err != nil {
		return "", err
	}
	return out.ID, nil
}

// UpdateSubjectRequirements replaces a subject's full requirement list.
func (c *Client) UpdateSubjectRequirements(ctx context.Context, subjectID string, requirements []models.Requirement) error {
	body := map[string][]models.Requirement{"requirements": requirements}
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/subjects/%s", subjectID), body, nil)
}

// DeleteSubject removes a subject. Used only for compensation.
func (c *Client) DeleteSubject(ctx context.Context, subjectID string) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/subjects/%s", subjectID), nil, nil)
}

// DeleteProgram removes a degree program. Used only for compensation.
func (c *Client) DeleteProgram(ctx context.Context, programID string) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/degreeProgram/%s", programID), nil, nil)
}

// CreateElectivePool creates an elective pool under a program.
func (c *Client) CreateElectivePool(ctx context.Context, programID string, req CreateElectivePoolRequest) (string, error) {
	var out created
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/degreeProgram/%s/electivePools", programID), req, &out); err != nil {
		return "", err
	}
	return out.ID, nil
}

// AddPoolSubject links a subject into an elective pool.
func (c *Client) AddPoolSubject(ctx context.Context, programID, poolID, subjectID string) error {
	body := map[string]string{"subject_id": subjectID}
	return c.do(ctx, http.MethodPost, fmt.Sprintf("/degreeProgram/%s/electivePools/%s/subjects", programID, poolID), body, nil)
}

// DeleteElectivePool removes an elective pool. Used only for compensation.
func (c *Client) DeleteElectivePool(ctx context.Context, programID, poolID string) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/degreeProgram/%s/electivePools/%s", programID, poolID), nil, nil)
}

// CreateElectiveRule creates an elective rule under a program.
func (c *Client) CreateElectiveRule(ctx context.Context, programID string, req CreateElectiveRuleRequest) (string, error) {
	var out created
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/degreeProgram/%s/electiveRules", programID), req, &out); err != nil {
		return "", err
	}
	return out.ID, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	if c.baseURL == "" {
		return appErrors.Clone(appErrors.ErrStoreNotConfigured, "")
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to encode store payload")
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to build store request")
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.observe(method, path, 0, time.Since(start))
		return appErrors.Wrap(err, appErrors.ErrStoreUnavailable.Code, appErrors.ErrStoreUnavailable.Status,
			fmt.Sprintf("store request %s %s failed", method, path))
	}
	defer resp.Body.Close()

	c.observe(method, path, resp.StatusCode, time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		c.logger.Warn("store request rejected",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", resp.StatusCode))
		return appErrors.Wrap(fmt.Errorf("unexpected status %d", resp.StatusCode),
			appErrors.ErrStoreUnavailable.Code, appErrors.ErrStoreUnavailable.Status,
			fmt.Sprintf("store request %s %s failed", method, path))
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return appErrors.Wrap(err, appErrors.ErrStoreUnavailable.Code, appErrors.ErrStoreUnavailable.Status,
			fmt.Sprintf("store response %s %s could not be decoded", method, path))
	}
	return nil
}

func (c *Client) observe(method, route string, status int, duration time.Duration) {
	if c.observer != nil {
		c.observer.ObserveStoreRequest(method, route, status, duration)
	}
}
