package retrieval

import (
	"persona-assistant-be/pkg/assistant/classify"
	"persona-assistant-be/pkg/role"
)

// Plan describes what one exchange should retrieve: whether code-augmented
// retrieval is requested and how many snippets of each kind. The role adapts
// what is retrieved here, not just how the answer is phrased.
type Plan struct {
	WantCode bool
	TopKText int
	TopKCode int
}

// PlanFor derives the retrieval plan from the visitor role and the query
// type. Code retrieval is requested only when the role's capability flag
// permits it AND the query is technical; every other combination gets a
// text-only plan. Shortcut types (confession, mma) never reach the gateway,
// but they still get a well-defined zero plan so the function is total.
func PlanFor(visitorRole role.Role, queryType string) Plan {
	switch queryType {
	case classify.TypeConfession, classify.TypeMMA:
		return Plan{}
	case classify.TypeTechnical:
		plan := Plan{TopKText: 5}
		if visitorRole.AllowCode() {
			plan.WantCode = true
			plan.TopKCode = 2
		}
		return plan
	case classify.TypeFun:
		return Plan{TopKText: 3}
	default: // career, general
		return Plan{TopKText: 4}
	}
}
