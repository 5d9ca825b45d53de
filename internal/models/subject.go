package models

import "encoding/json"

// Requirement is a directed prerequisite edge to another subject.
type Requirement struct {
	ID        string    `json:"id"`
	MinStatus MinStatus `json:"minStatus,omitempty"`
}

// UnmarshalJSON accepts the store's two wire forms: a bare subject id string
// (threshold defaults to passed) or an {id, minStatus} object.
func (r *Requirement) UnmarshalJSON(data []byte) error {
	var id string
	if err := json.Unmarshal(data, &id); err == nil {
		r.ID = id
		r.MinStatus = MinStatusPassed
		return nil
	}

	type alias Requirement
	var obj alias
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	*r = Requirement(obj)
	if !r.MinStatus.Valid() {
		r.MinStatus = MinStatusPassed
	}
	return nil
}

// Threshold returns the effective minimum status, defaulting to passed.
func (r Requirement) Threshold() MinStatus {
	if r.MinStatus.Valid() {
		return r.MinStatus
	}
	return MinStatusPassed
}

// Subject is a curriculum subject together with the student's status for it.
type Subject struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	Year         int           `json:"subjectYear,omitempty"`
	Term         Term          `json:"term,omitempty"`
	IsElective   bool          `json:"is_elective,omitempty"`
	Hours        float64       `json:"hours,omitempty"`
	Credits      float64       `json:"credits,omitempty"`
	Status       Status        `json:"status"`
	Requirements []Requirement `json:"requirements"`
}

// DegreeProgram groups the subjects of one curriculum.
type DegreeProgram struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	University string    `json:"university,omitempty"`
	Subjects   []Subject `json:"subjects,omitempty"`
}
