package role

import "strings"

// Role identifies the visitor category. The set is closed: every variant
// must have an entry in the capability table below.
type Role string

const (
	TechnicalHiringManager    Role = "technical_hiring_manager"
	NonTechnicalHiringManager Role = "nontechnical_hiring_manager"
	SoftwareEngineer          Role = "software_engineer"
	CasualVisitor             Role = "casual_visitor"
	Confession                Role = "confession"
)

// Capability holds the behavior flags a role grants.
type Capability struct {
	// AllowCode controls whether code-level snippets may be retrieved
	// and included in answers for this role.
	AllowCode bool
	// Label is the user-facing display name.
	Label string
}

// capabilities is the closed lookup table. Completeness is enforced by test.
var capabilities = map[Role]Capability{
	TechnicalHiringManager:    {AllowCode: true, Label: "Technical Hiring Manager"},
	NonTechnicalHiringManager: {AllowCode: false, Label: "Hiring Manager (Non-Technical)"},
	SoftwareEngineer:          {AllowCode: true, Label: "Software Engineer"},
	CasualVisitor:             {AllowCode: false, Label: "Just Browsing"},
	Confession:                {AllowCode: false, Label: "I Have a Confession"},
}

// aliases maps loose inputs (UI labels, legacy values) onto canonical roles.
var aliases = map[string]Role{
	"technical hiring manager":     TechnicalHiringManager,
	"hiring_manager_technical":     TechnicalHiringManager,
	"non-technical hiring manager": NonTechnicalHiringManager,
	"hiring_manager_nontechnical":  NonTechnicalHiringManager,
	"non_technical_hiring_manager": NonTechnicalHiringManager,
	"software engineer":            SoftwareEngineer,
	"engineer":                     SoftwareEngineer,
	"just browsing":                CasualVisitor,
	"casual":                       CasualVisitor,
	"visitor":                      CasualVisitor,
	"secret_admirer":               Confession,
}

// All returns the closed role set in a stable order.
func All() []Role {
	return []Role{
		TechnicalHiringManager,
		NonTechnicalHiringManager,
		SoftwareEngineer,
		CasualVisitor,
		Confession,
	}
}

// Parse normalizes a raw role string. Unrecognized input resolves to the most
// conservative role (CasualVisitor: no code, generic framing) rather than
// failing; a request must never be rejected solely for an unknown role.
func Parse(raw string) Role {
	normalized := strings.ToLower(strings.TrimSpace(raw))
	if normalized == "" {
		return CasualVisitor
	}

	r := Role(normalized)
	if _, ok := capabilities[r]; ok {
		return r
	}
	if mapped, ok := aliases[normalized]; ok {
		return mapped
	}
	return CasualVisitor
}

// Capabilities returns the capability entry for a role. Unknown roles get the
// conservative default so a missing table entry can never widen access.
func (r Role) Capabilities() Capability {
	if c, ok := capabilities[r]; ok {
		return c
	}
	return Capability{AllowCode: false, Label: "Visitor"}
}

// AllowCode is a shorthand for the capability flag.
func (r Role) AllowCode() bool {
	return r.Capabilities().AllowCode
}

// Label returns the display name.
func (r Role) Label() string {
	return r.Capabilities().Label
}
