package dto

// DraftPrerequisiteRequest references another draft subject by client-local id.
type DraftPrerequisiteRequest struct {
	SubjectID string `json:"subjectId" validate:"required"`
	MinStatus string `json:"minStatus" validate:"omitempty,oneof=passed final_pending"`
}

// DraftSubjectRequest is one subject of a curriculum being created.
type DraftSubjectRequest struct {
	ID            string                     `json:"id" validate:"required"`
	Name          string                     `json:"name" validate:"required"`
	Year          int                        `json:"year" validate:"omitempty,min=1"`
	Term          string                     `json:"term" validate:"omitempty,oneof=annual semester quarterly bimonthly"`
	IsElective    bool                       `json:"isElective"`
	Prerequisites []DraftPrerequisiteRequest `json:"prerequisites" validate:"omitempty,dive"`
}

// DraftElectivePoolRequest groups draft subjects into an elective pool.
type DraftElectivePoolRequest struct {
	ID          string   `json:"id" validate:"required"`
	Name        string   `json:"name" validate:"required"`
	Description string   `json:"description"`
	SubjectIDs  []string `json:"subjectIds"`
}

// DraftElectiveRuleRequest scopes a quantitative requirement to a draft pool.
type DraftElectiveRuleRequest struct {
	ID              string  `json:"id" validate:"required"`
	PoolID          string  `json:"poolId" validate:"required"`
	AppliesFromYear int     `json:"appliesFromYear" validate:"min=0"`
	AppliesToYear   *int    `json:"appliesToYear"`
	RequirementType string  `json:"requirementType" validate:"required,oneof=hours credits subject_count"`
	MinimumValue    float64 `json:"minimumValue" validate:"min=0"`
}

// CreateCurriculumRequest is the full payload of the creation transaction.
type CreateCurriculumRequest struct {
	ProgramName   string                     `json:"programName" validate:"required"`
	UniversityID  string                     `json:"universityId" validate:"required"`
	Subjects      []DraftSubjectRequest      `json:"subjects" validate:"required,min=1,dive"`
	ElectivePools []DraftElectivePoolRequest `json:"electivePools" validate:"omitempty,dive"`
	ElectiveRules []DraftElectiveRuleRequest `json:"electiveRules" validate:"omitempty,dive"`
}
