package handler

import (
	"context"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/acadify/curricula-api/internal/service"
	"github.com/acadify/curricula-api/pkg/response"
)

type exportService interface {
	PlanExport(ctx context.Context, programID string, format service.ExportFormat) (*service.ExportResult, error)
	ElectivesExport(ctx context.Context, programID string, includeFinalPending bool, format service.ExportFormat) (*service.ExportResult, error)
}

// ExportHandler streams CSV/PDF renditions of plans and elective progress.
type ExportHandler struct {
	service exportService
}

// NewExportHandler constructs an export handler.
func NewExportHandler(svc exportService) *ExportHandler {
	return &ExportHandler{service: svc}
}

// Plan godoc
// @Summary Export a program's resolved study plan
// @Tags Exports
// @Produce text/csv,application/pdf
// @Param id path string true "Program ID"
// @Param format query string false "csv or pdf" default(csv)
// @Success 200
// @Router /programs/{id}/plan/export [get]
func (h *ExportHandler) Plan(c *gin.Context) {
	result, err := h.service.PlanExport(c.Request.Context(), c.Param("id"), exportFormat(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	serveExport(c, result)
}

// Electives godoc
// @Summary Export a program's elective progress
// @Tags Exports
// @Produce text/csv,application/pdf
// @Param id path string true "Program ID"
// @Param format query string false "csv or pdf" default(csv)
// @Param includeFinalPending query bool false "Count pending finals as completed"
// @Success 200
// @Router /programs/{id}/electives/export [get]
func (h *ExportHandler) Electives(c *gin.Context) {
	includeFinalPending, _ := strconv.ParseBool(c.DefaultQuery("includeFinalPending", "false"))

	result, err := h.service.ElectivesExport(c.Request.Context(), c.Param("id"), includeFinalPending, exportFormat(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	serveExport(c, result)
}

func exportFormat(c *gin.Context) service.ExportFormat {
	return service.ExportFormat(c.DefaultQuery("format", "csv"))
}

func serveExport(c *gin.Context, result *service.ExportResult) {
	c.Header("Content-Disposition", `attachment; filename="`+result.Filename+`"`)
	c.Data(200, result.ContentType, result.Content)
}
