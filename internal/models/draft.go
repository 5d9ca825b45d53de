package models

import "time"

// DraftPrerequisite references another draft subject by its client-local id.
type DraftPrerequisite struct {
	SubjectID string    `json:"subjectId"`
	MinStatus MinStatus `json:"minStatus"`
}

// DraftSubject is a subject being authored, identified only client-side
// until the creation transaction assigns server ids.
type DraftSubject struct {
	ID            string              `json:"id"`
	Name          string              `json:"name"`
	Year          int                 `json:"year"`
	Term          Term                `json:"term,omitempty"`
	IsElective    bool                `json:"isElective,omitempty"`
	Prerequisites []DraftPrerequisite `json:"prerequisites,omitempty"`
}

// DraftElectivePool groups draft subjects by their client-local ids.
type DraftElectivePool struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	SubjectIDs  []string `json:"subjectIds,omitempty"`
}

// DraftElectiveRule scopes a quantitative requirement to a draft pool.
type DraftElectiveRule struct {
	ID              string          `json:"id"`
	PoolID          string          `json:"poolId"`
	AppliesFromYear int             `json:"appliesFromYear"`
	AppliesToYear   *int            `json:"appliesToYear,omitempty"`
	RequirementType RequirementType `json:"requirementType"`
	MinimumValue    float64         `json:"minimumValue"`
}

// DraftCurriculum is the explicit session object carried across the
// multi-step authoring wizard. It is persisted opaquely and only becomes
// remote state through the creation transaction.
type DraftCurriculum struct {
	ID            string              `json:"id"`
	ProgramName   string              `json:"programName"`
	UniversityID  string              `json:"universityId"`
	Subjects      []DraftSubject      `json:"subjects"`
	ElectivePools []DraftElectivePool `json:"electivePools,omitempty"`
	ElectiveRules []DraftElectiveRule `json:"electiveRules,omitempty"`
	UpdatedAt     time.Time           `json:"updatedAt"`
}
