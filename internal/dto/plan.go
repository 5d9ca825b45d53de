package dto

import "github.com/acadify/curricula-api/internal/models"

// ResolveRequest carries a client-side subject snapshot for pure resolution.
type ResolveRequest struct {
	Subjects []models.Subject `json:"subjects" binding:"required"`
}

// PlanResponse is a program with availability-resolved subjects.
type PlanResponse struct {
	ProgramID  string           `json:"program_id"`
	Name       string           `json:"name,omitempty"`
	University string           `json:"university,omitempty"`
	Subjects   []models.Subject `json:"subjects"`
}

// ElectiveProgressResponse scores every elective rule of a program.
type ElectiveProgressResponse struct {
	ProgramID           string                    `json:"program_id"`
	IncludeFinalPending bool                      `json:"include_final_pending"`
	Rules               []models.ElectiveProgress `json:"rules"`
}
