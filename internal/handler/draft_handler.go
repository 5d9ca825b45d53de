package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/acadify/curricula-api/internal/dto"
	"github.com/acadify/curricula-api/internal/models"
	appErrors "github.com/acadify/curricula-api/pkg/errors"
	"github.com/acadify/curricula-api/pkg/response"
)

type draftService interface {
	Create(ctx context.Context, req dto.SaveDraftRequest) (*models.DraftCurriculum, error)
	Get(ctx context.Context, id string) (*models.DraftCurriculum, error)
	Update(ctx context.Context, id string, req dto.SaveDraftRequest) (*models.DraftCurriculum, error)
	Delete(ctx context.Context, id string) error
}

// DraftHandler manages draft curriculum sessions.
type DraftHandler struct {
	service draftService
}

// NewDraftHandler constructs a draft handler.
func NewDraftHandler(svc draftService) *DraftHandler {
	return &DraftHandler{service: svc}
}

// Create godoc
// @Summary Open a new draft curriculum session
// @Tags Drafts
// @Accept json
// @Produce json
// @Param payload body dto.SaveDraftRequest true "Draft content"
// @Success 201 {object} response.Envelope
// @Router /drafts [post]
func (h *DraftHandler) Create(c *gin.Context) {
	var req dto.SaveDraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	draft, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, draft)
}

// Get godoc
// @Summary Load a draft curriculum session
// @Tags Drafts
// @Produce json
// @Param id path string true "Draft ID"
// @Success 200 {object} response.Envelope
// @Router /drafts/{id} [get]
func (h *DraftHandler) Get(c *gin.Context) {
	draft, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, draft, nil)
}

// Update godoc
// @Summary Replace a draft curriculum session
// @Tags Drafts
// @Accept json
// @Produce json
// @Param id path string true "Draft ID"
// @Param payload body dto.SaveDraftRequest true "Draft content"
// @Success 200 {object} response.Envelope
// @Router /drafts/{id} [put]
func (h *DraftHandler) Update(c *gin.Context) {
	var req dto.SaveDraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	draft, err := h.service.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, draft, nil)
}

// Delete godoc
// @Summary Discard a draft curriculum session
// @Tags Drafts
// @Produce json
// @Param id path string true "Draft ID"
// @Success 204
// @Router /drafts/{id} [delete]
func (h *DraftHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
