package dto

// SaveDraftRequest creates or replaces a draft curriculum session.
type SaveDraftRequest struct {
	ProgramName   string                     `json:"programName" validate:"required"`
	UniversityID  string                     `json:"universityId"`
	Subjects      []DraftSubjectRequest      `json:"subjects" validate:"omitempty,dive"`
	ElectivePools []DraftElectivePoolRequest `json:"electivePools" validate:"omitempty,dive"`
	ElectiveRules []DraftElectiveRuleRequest `json:"electiveRules" validate:"omitempty,dive"`
}
