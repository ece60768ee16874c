package prompt

import (
	"strings"
	"testing"

	"persona-assistant-be/pkg/role"
	"persona-assistant-be/pkg/store"

	"github.com/stretchr/testify/assert"
)

func TestBuildVariesStyleByRole(t *testing.T) {
	engineer := NewBuilder(role.SoftwareEngineer, "q", "", nil).Build()
	manager := NewBuilder(role.NonTechnicalHiringManager, "q", "", nil).Build()

	assert.Contains(t, engineer, "Peer-to-peer register")
	assert.Contains(t, manager, "No jargon, no code")
	assert.NotEqual(t, engineer, manager)
}

func TestBuildThirdPersonFraming(t *testing.T) {
	p := NewBuilder(role.CasualVisitor, "who are you", "", nil).Build()
	assert.Contains(t, p, "third person")
	assert.Contains(t, p, role.CasualVisitor.Label())
}

func TestBuildWithEmptyContextOmitsReferenceBlock(t *testing.T) {
	p := NewBuilder(role.CasualVisitor, "q", "", &store.RetrievalContext{}).Build()
	assert.NotContains(t, p, "<reference_material>")
	assert.Contains(t, p, "<visitor_question>")
}

func TestBuildRendersSnippetsAndCode(t *testing.T) {
	ctx := &store.RetrievalContext{
		Snippets: []store.Snippet{
			{Content: "worked on an ingestion pipeline", Source: "resume", Score: 0.9},
		},
		CodeSnippets: []store.CodeSnippet{
			{Name: "router", Citation: "router.go:42", Content: "func Route() {}", Score: 0.8},
		},
	}
	p := NewBuilder(role.SoftwareEngineer, "how does routing work", "", ctx).Build()

	assert.Contains(t, p, "--- SOURCE: resume ---")
	assert.Contains(t, p, "worked on an ingestion pipeline")
	assert.Contains(t, p, "--- CODE: router (router.go:42) ---")
	assert.Contains(t, p, "func Route() {}")
}

func TestBuildIncludesPreambleBeforeQuestion(t *testing.T) {
	preamble := "<previous_conversation>\nVisitor: hi\n</previous_conversation>\n"
	p := NewBuilder(role.CasualVisitor, "and now?", preamble, nil).Build()

	pre := strings.Index(p, "<previous_conversation>")
	q := strings.Index(p, "<visitor_question>")
	assert.GreaterOrEqual(t, pre, 0)
	assert.Greater(t, q, pre)
}
