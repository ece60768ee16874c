package retrieval

import (
	"testing"

	"persona-assistant-be/pkg/assistant/classify"
	"persona-assistant-be/pkg/role"

	"github.com/stretchr/testify/assert"
)

func TestPlanForTechnicalWithCodeCapability(t *testing.T) {
	for _, r := range []role.Role{role.TechnicalHiringManager, role.SoftwareEngineer} {
		plan := PlanFor(r, classify.TypeTechnical)
		assert.True(t, plan.WantCode, "role %q", r)
		assert.Equal(t, 5, plan.TopKText)
		assert.Equal(t, 2, plan.TopKCode)
	}
}

func TestPlanForNeverRequestsCodeWithoutCapability(t *testing.T) {
	types := []string{
		classify.TypeCareer, classify.TypeTechnical, classify.TypeFun,
		classify.TypeGeneral, classify.TypeMMA, classify.TypeConfession,
	}
	for _, r := range role.All() {
		if r.AllowCode() {
			continue
		}
		for _, qt := range types {
			plan := PlanFor(r, qt)
			assert.False(t, plan.WantCode, "role %q type %q", r, qt)
			assert.Zero(t, plan.TopKCode, "role %q type %q", r, qt)
		}
	}
}

func TestPlanForCodeOnlyOnTechnicalQueries(t *testing.T) {
	// Even code-capable roles get text-only retrieval for non-technical asks.
	for _, qt := range []string{classify.TypeCareer, classify.TypeFun, classify.TypeGeneral} {
		plan := PlanFor(role.SoftwareEngineer, qt)
		assert.False(t, plan.WantCode, "type %q", qt)
	}
}

func TestPlanForShortcutTypesAreZero(t *testing.T) {
	for _, qt := range []string{classify.TypeConfession, classify.TypeMMA} {
		plan := PlanFor(role.SoftwareEngineer, qt)
		assert.Zero(t, plan, "type %q", qt)
	}
}

func TestPlanForTextTopKStaysInReferenceRange(t *testing.T) {
	for _, r := range role.All() {
		for _, qt := range []string{classify.TypeCareer, classify.TypeTechnical, classify.TypeFun, classify.TypeGeneral} {
			plan := PlanFor(r, qt)
			assert.GreaterOrEqual(t, plan.TopKText, 3, "role %q type %q", r, qt)
			assert.LessOrEqual(t, plan.TopKText, 5, "role %q type %q", r, qt)
		}
	}
}
