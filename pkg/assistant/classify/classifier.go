package classify

import (
	"strings"

	"persona-assistant-be/pkg/role"
)

// QueryType is the internal dispatch tag produced by classification.
// It is never exposed to the end caller as-is; it only selects a strategy.
const (
	TypeCareer     = "career"
	TypeTechnical  = "technical"
	TypeMMA        = "mma"
	TypeFun        = "fun"
	TypeConfession = "confession"
	TypeGeneral    = "general"
)

// rule is one (predicate, tag) pair. Rules are evaluated in declaration
// order; the first match wins.
type rule struct {
	tag      string
	keywords []string
}

// rules is the ordered cascade. Priority matters: the hobby fan-out set is
// checked before the generic technical set, and technical before career, so
// "how did you train for your last MMA fight" never lands in technical.
var rules = []rule{
	{tag: TypeConfession, keywords: []string{
		"confess", "confession", "crush on", "secret admirer", "i like you", "i love you",
	}},
	{tag: TypeMMA, keywords: []string{
		"mma", "ufc", "martial arts", "jiu jitsu", "jiu-jitsu", "muay thai",
		"kickboxing", "grappling", "sparring", "cage fight",
	}},
	{tag: TypeFun, keywords: []string{
		"hobby", "hobbies", "fun fact", "for fun", "free time", "music",
		"movie", "travel", "favorite food", "outside of work",
	}},
	{tag: TypeTechnical, keywords: []string{
		"code", "codebase", "architecture", "rag", "retrieval", "pipeline",
		"embedding", "vector", "database", "api", "deploy", "infrastructure",
		"stack", "golang", "python", "llm", "algorithm", "implementation",
		"repository", "source",
	}},
	{tag: TypeCareer, keywords: []string{
		"experience", "job", "work history", "career", "role", "hire",
		"hiring", "resume", "cv", "skills", "education", "project",
		"background", "qualification", "salary", "interview",
	}},
}

// Classify maps a free-text query and a role to a query type. It is a pure
// function of its inputs: no state, deterministic, and total. Unmatched or
// empty input falls through to "general".
func Classify(query string, visitorRole role.Role) string {
	// The confession role short-circuits before any text inspection; the
	// novelty path owns every query sent under that role.
	if visitorRole == role.Confession {
		return TypeConfession
	}

	normalized := strings.ToLower(strings.TrimSpace(query))
	if normalized == "" {
		return TypeGeneral
	}

	for _, r := range rules {
		for _, kw := range r.keywords {
			if strings.Contains(normalized, kw) {
				return gate(r.tag, visitorRole)
			}
		}
	}

	return TypeGeneral
}

// gate applies role-specific downgrades. A keyword-matched "technical" tag is
// only honored when the role's capability flag permits code content; other
// roles get the career framing instead, so code-oriented responses never
// leak to roles that should not see them.
func gate(tag string, visitorRole role.Role) string {
	if tag == TypeTechnical && !visitorRole.AllowCode() {
		return TypeCareer
	}
	return tag
}
