package prompt

import (
	"fmt"
	"strings"

	"persona-assistant-be/pkg/role"
	"persona-assistant-be/pkg/store"
)

// Builder assembles the role-conditioned generation prompt for one exchange.
type Builder struct {
	visitorRole role.Role
	query       string
	preamble    string
	context     *store.RetrievalContext
}

func NewBuilder(visitorRole role.Role, query, preamble string, context *store.RetrievalContext) *Builder {
	return &Builder{
		visitorRole: visitorRole,
		query:       query,
		preamble:    preamble,
		context:     context,
	}
}

// Build renders the full prompt. The structure mirrors the answer contract:
// persona framing, prior conversation, grounded reference material, then the
// question. An empty context still yields a coherent prompt; the model is
// told to answer honestly from what it knows about the subject.
func (b *Builder) Build() string {
	var p strings.Builder

	p.WriteString("<persona>\n")
	p.WriteString("You are the assistant on the subject's portfolio site. You answer questions about the subject; always speak about the subject in third person.\n")
	p.WriteString(fmt.Sprintf("The visitor identified as: %s.\n", b.visitorRole.Label()))
	p.WriteString(b.styleGuidance())
	p.WriteString("</persona>\n\n")

	if b.preamble != "" {
		p.WriteString(b.preamble)
		p.WriteString("\n")
	}

	b.writeReferenceMaterial(&p)

	p.WriteString("<guidelines>\n")
	p.WriteString("1. Base your answer on the reference material when it is present.\n")
	p.WriteString("2. If the material does not contain what is being asked, say so honestly and offer what you do know about the subject.\n")
	p.WriteString("3. Keep the answer self-contained; citations are rendered separately by the system.\n")
	p.WriteString("</guidelines>\n\n")

	p.WriteString("<visitor_question>\n")
	p.WriteString(b.query)
	p.WriteString("\n</visitor_question>\n\n")
	p.WriteString("Answer:")

	return p.String()
}

func (b *Builder) styleGuidance() string {
	switch b.visitorRole {
	case role.TechnicalHiringManager:
		return "Lead with impact, back it with technical specifics. Assume the reader evaluates engineering depth.\n"
	case role.NonTechnicalHiringManager:
		return "Plain language only: outcomes, collaboration, growth. No jargon, no code.\n"
	case role.SoftwareEngineer:
		return "Peer-to-peer register: architecture, trade-offs, and concrete implementation detail are welcome.\n"
	default:
		return "Friendly and concise. Keep it light and accessible.\n"
	}
}

func (b *Builder) writeReferenceMaterial(p *strings.Builder) {
	if b.context.Empty() {
		return
	}

	p.WriteString("<reference_material>\n")
	for _, s := range b.context.Snippets {
		p.WriteString(fmt.Sprintf("--- SOURCE: %s ---\n", s.Source))
		p.WriteString(s.Content)
		p.WriteString("\n")
	}
	for _, c := range b.context.CodeSnippets {
		p.WriteString(fmt.Sprintf("--- CODE: %s (%s) ---\n", c.Name, c.Citation))
		p.WriteString(c.Content)
		p.WriteString("\n")
	}
	p.WriteString("</reference_material>\n\n")
}
