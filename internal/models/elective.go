package models

// RequirementType selects how an elective rule measures progress.
type RequirementType string

const (
	RequirementHours        RequirementType = "hours"
	RequirementCredits      RequirementType = "credits"
	RequirementSubjectCount RequirementType = "subject_count"
)

// Valid reports whether the requirement type is one of the known values.
func (t RequirementType) Valid() bool {
	switch t {
	case RequirementHours, RequirementCredits, RequirementSubjectCount:
		return true
	}
	return false
}

// ElectivePool is a named group of interchangeable elective subjects.
type ElectivePool struct {
	ID          string    `json:"id"`
	ProgramID   string    `json:"degree_program_id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Subjects    []Subject `json:"subjects,omitempty"`
}

// ElectiveRule is a quantitative requirement scoped to a pool and year range.
type ElectiveRule struct {
	ID              string          `json:"id"`
	ProgramID       string          `json:"degree_program_id"`
	PoolID          string          `json:"pool_id"`
	AppliesFromYear int             `json:"applies_from_year"`
	AppliesToYear   *int            `json:"applies_to_year,omitempty"`
	RequirementType RequirementType `json:"requirement_type"`
	MinimumValue    float64         `json:"minimum_value"`
	Pool            *ElectivePool   `json:"pool,omitempty"`
}

// ElectiveProgress is the score of one rule against the student's statuses.
type ElectiveProgress struct {
	RuleID          string          `json:"rule_id"`
	PoolID          string          `json:"pool_id"`
	PoolName        string          `json:"pool_name,omitempty"`
	RequirementType RequirementType `json:"requirement_type"`
	Achieved        float64         `json:"achieved"`
	Target          float64         `json:"target"`
	Percent         int             `json:"percent"`
}
