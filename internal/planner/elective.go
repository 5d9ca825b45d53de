package planner

import (
	"math"

	"github.com/acadify/curricula-api/internal/models"
)

// Progress scores one elective rule against a pool and the student's
// resolved statuses. Subjects qualify once approved; a pending final also
// qualifies when includeFinalPending is set. Missing hours/credits count as
// zero and an unknown requirement type contributes nothing, so the function
// never fails.
func Progress(rule models.ElectiveRule, pool models.ElectivePool, statusByID map[string]models.Status, includeFinalPending bool) models.ElectiveProgress {
	var achieved float64
	for _, subject := range pool.Subjects {
		status := statusByID[subject.ID]
		if !qualifies(status, includeFinalPending) {
			continue
		}
		switch rule.RequirementType {
		case models.RequirementHours:
			achieved += subject.Hours
		case models.RequirementCredits:
			achieved += subject.Credits
		case models.RequirementSubjectCount:
			achieved++
		}
	}

	return models.ElectiveProgress{
		RuleID:          rule.ID,
		PoolID:          pool.ID,
		PoolName:        pool.Name,
		RequirementType: rule.RequirementType,
		Achieved:        achieved,
		Target:          rule.MinimumValue,
		Percent:         percent(achieved, rule.MinimumValue),
	}
}

func qualifies(status models.Status, includeFinalPending bool) bool {
	if status.Approved() {
		return true
	}
	return includeFinalPending && status == models.StatusFinalPending
}

func percent(achieved, target float64) int {
	if target <= 0 {
		return 0
	}
	p := int(math.Round(achieved / target * 100))
	if p > 100 {
		return 100
	}
	return p
}
