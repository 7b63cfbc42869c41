package verification

import (
	"time"

	"github.com/Derojuu/MediCheck-sub000/internal/provenance/model"
)

const (
	AllChecksPassed = "All checks passed."

	ActionNotSafe   = "Do not use this medicine. Return it to the pharmacy and contact the regulator to report a suspected counterfeit."
	ActionAuthentic = "This medicine is authentic and safe to use as prescribed."
)

// BuildVerdict assembles check results. Any failed check makes the verdict
// NOT_SAFE; nothing overrides a failure.
func BuildVerdict(results []model.CheckResult, now time.Time) model.Verdict {
	var reasons []string
	for _, r := range results {
		if !r.Passed {
			reasons = append(reasons, r.Reason)
		}
	}

	v := model.Verdict{
		Status:            model.VerdictAuthentic,
		Reasons:           []string{AllChecksPassed},
		RecommendedAction: ActionAuthentic,
		Checks:            results,
		EvaluatedAt:       now,
	}
	if len(reasons) > 0 {
		v.Status = model.VerdictNotSafe
		v.Reasons = reasons
		v.RecommendedAction = ActionNotSafe
	}
	return v
}
