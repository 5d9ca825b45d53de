package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/acadify/curricula-api/internal/dto"
	"github.com/acadify/curricula-api/internal/models"
	appErrors "github.com/acadify/curricula-api/pkg/errors"
	"github.com/acadify/curricula-api/pkg/response"
)

type planService interface {
	ProgramPlan(ctx context.Context, programID string) (*dto.PlanResponse, error)
	Resolve(subjects []models.Subject) []models.Subject
	ElectiveProgress(ctx context.Context, programID string, includeFinalPending bool) (*dto.ElectiveProgressResponse, error)
}

// PlanHandler serves resolved study plans and elective progress.
type PlanHandler struct {
	service planService
}

// NewPlanHandler constructs a plan handler.
func NewPlanHandler(svc planService) *PlanHandler {
	return &PlanHandler{service: svc}
}

// Plan godoc
// @Summary Get a program's resolved study plan
// @Tags Plans
// @Produce json
// @Param id path string true "Program ID"
// @Success 200 {object} response.Envelope
// @Router /programs/{id}/plan [get]
func (h *PlanHandler) Plan(c *gin.Context) {
	plan, err := h.service.ProgramPlan(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, plan, nil)
}

// Resolve godoc
// @Summary Resolve availability for a client-side subject snapshot
// @Tags Plans
// @Accept json
// @Produce json
// @Param payload body dto.ResolveRequest true "Subject snapshot"
// @Success 200 {object} response.Envelope
// @Router /plan/resolve [post]
func (h *PlanHandler) Resolve(c *gin.Context) {
	var req dto.ResolveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	response.JSON(c, http.StatusOK, h.service.Resolve(req.Subjects), nil)
}

// ElectiveProgress godoc
// @Summary Score a program's elective rules
// @Tags Electives
// @Produce json
// @Param id path string true "Program ID"
// @Param includeFinalPending query bool false "Count pending finals as completed"
// @Success 200 {object} response.Envelope
// @Router /programs/{id}/electives/progress [get]
func (h *PlanHandler) ElectiveProgress(c *gin.Context) {
	includeFinalPending, _ := strconv.ParseBool(c.DefaultQuery("includeFinalPending", "false"))

	progress, err := h.service.ElectiveProgress(c.Request.Context(), c.Param("id"), includeFinalPending)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, progress, nil)
}
