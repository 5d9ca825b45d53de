package models

// Status captures the lifecycle of a subject inside a study plan.
type Status string

const (
	StatusNotAvailable          Status = "not_available"
	StatusAvailable             Status = "available"
	StatusInProgress            Status = "in_progress"
	StatusFinalPending          Status = "final_pending"
	StatusPassed                Status = "passed"
	StatusPassedWithDistinction Status = "passed_with_distinction"
)

// Valid reports whether the status is one of the known values.
func (s Status) Valid() bool {
	switch s {
	case StatusNotAvailable, StatusAvailable, StatusInProgress,
		StatusFinalPending, StatusPassed, StatusPassedWithDistinction:
		return true
	}
	return false
}

// Strong reports whether the status was set by user action and must never be
// overwritten by availability resolution.
func (s Status) Strong() bool {
	switch s {
	case StatusInProgress, StatusFinalPending, StatusPassed, StatusPassedWithDistinction:
		return true
	}
	return false
}

// Approved reports whether the status counts as a fully passed subject.
func (s Status) Approved() bool {
	return s == StatusPassed || s == StatusPassedWithDistinction
}

// MinStatus is the threshold a prerequisite subject must reach.
type MinStatus string

const (
	MinStatusPassed       MinStatus = "passed"
	MinStatusFinalPending MinStatus = "final_pending"
)

// Valid reports whether the threshold is one of the known values.
func (m MinStatus) Valid() bool {
	return m == MinStatusPassed || m == MinStatusFinalPending
}

// Satisfied reports whether a prerequisite holding the given status clears
// this threshold. Passing the final counts for both thresholds; final_pending
// additionally accepts a pending final.
func (m MinStatus) Satisfied(s Status) bool {
	if s.Approved() {
		return true
	}
	return m == MinStatusFinalPending && s == StatusFinalPending
}

// Term is the scheduling cadence of a subject.
type Term string

const (
	TermAnnual    Term = "annual"
	TermSemester  Term = "semester"
	TermQuarterly Term = "quarterly"
	TermBimonthly Term = "bimonthly"
)

// Valid reports whether the term is one of the known values.
func (t Term) Valid() bool {
	switch t {
	case TermAnnual, TermSemester, TermQuarterly, TermBimonthly:
		return true
	}
	return false
}
