package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/acadify/curricula-api/internal/dto"
	"github.com/acadify/curricula-api/internal/saga"
	appErrors "github.com/acadify/curricula-api/pkg/errors"
	"github.com/acadify/curricula-api/pkg/response"
)

type creationService interface {
	Create(ctx context.Context, req dto.CreateCurriculumRequest) (*saga.Result, error)
}

// CurriculumHandler runs the curriculum creation transaction.
type CurriculumHandler struct {
	service creationService
}

// NewCurriculumHandler constructs a curriculum handler.
func NewCurriculumHandler(svc creationService) *CurriculumHandler {
	return &CurriculumHandler{service: svc}
}

// Create godoc
// @Summary Create a program and its subjects as a unit
// @Tags Curricula
// @Accept json
// @Produce json
// @Param payload body dto.CreateCurriculumRequest true "Curriculum draft"
// @Success 201 {object} response.Envelope
// @Router /curricula [post]
func (h *CurriculumHandler) Create(c *gin.Context) {
	var req dto.CreateCurriculumRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	result, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, result)
}
