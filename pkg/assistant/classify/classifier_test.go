package classify

import (
	"testing"

	"persona-assistant-be/pkg/role"

	"github.com/stretchr/testify/assert"
)

func TestClassifyIsDeterministic(t *testing.T) {
	queries := []string{
		"Tell me about your work experience",
		"How does the retrieval pipeline work?",
		"Do you train MMA?",
		"",
		"   ",
		"What's your favorite food?",
		"random gibberish xyzzy",
	}
	for _, q := range queries {
		for _, r := range role.All() {
			first := Classify(q, r)
			second := Classify(q, r)
			assert.Equal(t, first, second, "query %q role %q", q, r)
		}
	}
}

func TestConfessionRoleShortCircuits(t *testing.T) {
	// Any query under the confession role is tagged confession, even ones
	// that would otherwise match technical or career keywords.
	for _, q := range []string{"I like someone", "tell me about the codebase", "experience?"} {
		assert.Equal(t, TypeConfession, Classify(q, role.Confession), "query %q", q)
	}
}

func TestClassifyPriorityOrder(t *testing.T) {
	cases := []struct {
		query string
		want  string
	}{
		// hobby fan-out beats the technical keyword set
		{"what was your MMA training pipeline", TypeMMA},
		{"I want to confess something about your code", TypeConfession},
		{"how is the vector database architected", TypeTechnical},
		{"what projects have you worked on", TypeCareer},
		{"any fun fact about you", TypeFun},
		{"hello there", TypeGeneral},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Classify(tc.query, role.SoftwareEngineer), "query %q", tc.query)
	}
}

func TestTechnicalDowngradeForNonCodeRoles(t *testing.T) {
	query := "walk me through the codebase architecture"

	assert.Equal(t, TypeTechnical, Classify(query, role.TechnicalHiringManager))
	assert.Equal(t, TypeTechnical, Classify(query, role.SoftwareEngineer))

	// Roles without the code capability get the career framing instead.
	assert.Equal(t, TypeCareer, Classify(query, role.NonTechnicalHiringManager))
	assert.Equal(t, TypeCareer, Classify(query, role.CasualVisitor))
}

func TestEmptyQueryClassifiesToGeneral(t *testing.T) {
	for _, q := range []string{"", " ", "\t\n"} {
		assert.Equal(t, TypeGeneral, Classify(q, role.CasualVisitor), "query %q", q)
	}
}
