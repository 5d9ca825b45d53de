package service

import (
	"context"
	"fmt"
	"strconv"

	"go.uber.org/zap"

	appErrors "github.com/acadify/curricula-api/pkg/errors"
	"github.com/acadify/curricula-api/pkg/export"
)

// ExportFormat selects the rendered output type.
type ExportFormat string

const (
	FormatCSV ExportFormat = "csv"
	FormatPDF ExportFormat = "pdf"
)

// ExportResult carries rendered bytes with response metadata.
type ExportResult struct {
	Content     []byte
	ContentType string
	Filename    string
}

// ExportService renders study plans and elective progress as CSV or PDF.
type ExportService struct {
	plans  *PlanService
	csv    *export.CSVExporter
	pdf    *export.PDFExporter
	logger *zap.Logger
}

// NewExportService creates a new export service.
func NewExportService(plans *PlanService, logger *zap.Logger) *ExportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExportService{
		plans:  plans,
		csv:    export.NewCSVExporter(),
		pdf:    export.NewPDFExporter(),
		logger: logger,
	}
}

// PlanExport renders the resolved study plan of a program.
func (s *ExportService) PlanExport(ctx context.Context, programID string, format ExportFormat) (*ExportResult, error) {
	plan, err := s.plans.ProgramPlan(ctx, programID)
	if err != nil {
		return nil, err
	}

	dataset := export.Dataset{Headers: []string{"Subject", "Year", "Term", "Status"}}
	for _, subject := range plan.Subjects {
		year := ""
		if subject.Year > 0 {
			year = strconv.Itoa(subject.Year)
		}
		dataset.Rows = append(dataset.Rows, map[string]string{
			"Subject": subject.Name,
			"Year":    year,
			"Term":    string(subject.Term),
			"Status":  string(subject.Status),
		})
	}

	title := plan.Name
	if title == "" {
		title = "study plan"
	}
	return s.render(dataset, format, "plan-"+programID, title)
}

// ElectivesExport renders per-rule elective progress of a program.
func (s *ExportService) ElectivesExport(ctx context.Context, programID string, includeFinalPending bool, format ExportFormat) (*ExportResult, error) {
	progress, err := s.plans.ElectiveProgress(ctx, programID, includeFinalPending)
	if err != nil {
		return nil, err
	}

	dataset := export.Dataset{Headers: []string{"Pool", "Requirement", "Achieved", "Target", "Percent"}}
	for _, rule := range progress.Rules {
		dataset.Rows = append(dataset.Rows, map[string]string{
			"Pool":        rule.PoolName,
			"Requirement": string(rule.RequirementType),
			"Achieved":    formatNumber(rule.Achieved),
			"Target":      formatNumber(rule.Target),
			"Percent":     strconv.Itoa(rule.Percent) + "%",
		})
	}

	return s.render(dataset, format, "electives-"+programID, "elective progress")
}

func (s *ExportService) render(dataset export.Dataset, format ExportFormat, basename, title string) (*ExportResult, error) {
	switch format {
	case FormatCSV:
		content, err := s.csv.Render(dataset)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render csv")
		}
		return &ExportResult{Content: content, ContentType: "text/csv", Filename: basename + ".csv"}, nil
	case FormatPDF:
		content, err := s.pdf.Render(dataset, title)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render pdf")
		}
		return &ExportResult{Content: content, ContentType: "application/pdf", Filename: basename + ".pdf"}, nil
	default:
		return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unsupported export format %q", format))
	}
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
