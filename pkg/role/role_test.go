package role

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCapabilityTableIsComplete(t *testing.T) {
	// Every variant of the closed set must have an explicit capability entry.
	for _, r := range All() {
		c, ok := capabilities[r]
		assert.True(t, ok, "role %q has no capability entry", r)
		assert.NotEmpty(t, c.Label, "role %q has no label", r)
	}
}

func TestParseKnownRoles(t *testing.T) {
	for _, r := range All() {
		assert.Equal(t, r, Parse(string(r)))
	}
}

func TestParseAliases(t *testing.T) {
	cases := map[string]Role{
		"Technical Hiring Manager":     TechnicalHiringManager,
		"non-technical hiring manager": NonTechnicalHiringManager,
		"Software Engineer":            SoftwareEngineer,
		"just browsing":                CasualVisitor,
		"secret_admirer":               Confession,
	}
	for raw, want := range cases {
		assert.Equal(t, want, Parse(raw), "alias %q", raw)
	}
}

func TestParseUnknownRoleIsConservative(t *testing.T) {
	for _, raw := range []string{"Unknown Role X", "", "   ", "admin", "root"} {
		got := Parse(raw)
		assert.Equal(t, CasualVisitor, got, "raw %q", raw)
		assert.False(t, got.AllowCode(), "unknown role %q must not allow code", raw)
	}
}

func TestCodeCapabilityFlags(t *testing.T) {
	assert.True(t, TechnicalHiringManager.AllowCode())
	assert.True(t, SoftwareEngineer.AllowCode())
	assert.False(t, NonTechnicalHiringManager.AllowCode())
	assert.False(t, CasualVisitor.AllowCode())
	assert.False(t, Confession.AllowCode())
}
