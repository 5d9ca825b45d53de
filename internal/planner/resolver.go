// Package planner holds the pure computations of the progress engine:
// availability resolution over the prerequisite graph and elective rule
// scoring. Nothing here performs I/O or mutates its inputs.
package planner

import "github.com/acadify/curricula-api/internal/models"

// Resolve derives the effective status of every subject from its
// prerequisite edges. It returns a new slice of the same length and order.
//
// Statuses are looked up against a snapshot taken before the pass, so one
// invocation propagates dependency information a single hop. Callers
// re-resolve after every status mutation; derived statuses from the previous
// pass then feed the next one as settled inputs. Strong statuses are
// authoritative and pass through untouched.
func Resolve(subjects []models.Subject) []models.Subject {
	statusByID := make(map[string]models.Status, len(subjects))
	for _, s := range subjects {
		statusByID[s.ID] = s.Status
	}

	resolved := make([]models.Subject, len(subjects))
	for i, subject := range subjects {
		resolved[i] = subject

		if subject.Status.Strong() {
			continue
		}

		if allRequirementsMet(subject, statusByID) {
			resolved[i].Status = models.StatusAvailable
		} else {
			resolved[i].Status = models.StatusNotAvailable
		}
	}
	return resolved
}

// StatusIndex builds a subject id to status lookup from resolved subjects.
func StatusIndex(subjects []models.Subject) map[string]models.Status {
	index := make(map[string]models.Status, len(subjects))
	for _, s := range subjects {
		index[s.ID] = s.Status
	}
	return index
}

func allRequirementsMet(subject models.Subject, statusByID map[string]models.Status) bool {
	for _, req := range subject.Requirements {
		// A subject can never gate itself.
		if req.ID == subject.ID {
			return false
		}
		status, ok := statusByID[req.ID]
		if !ok {
			return false
		}
		if !req.Threshold().Satisfied(status) {
			return false
		}
	}
	return true
}
