package history

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"persona-assistant-be/pkg/store"
)

// Budget bounds the "previous conversation" preamble injected ahead of
// generation. Both limits apply; the tighter one wins.
type Budget struct {
	MaxTurns   int
	CharBudget int
}

// DefaultBudget mirrors the limits used in production.
func DefaultBudget() Budget {
	return Budget{
		MaxTurns:   6,
		CharBudget: 2000,
	}
}

// BuildPreamble concatenates the most recent turns into a single preamble
// block, newest-last. When the budget is exceeded the oldest turns are
// dropped first, and a turn is never split: it is either fully included or
// fully dropped. The one exception is the hard floor: the latest user turn
// is always retained, truncated on its own if it alone exceeds the budget.
func BuildPreamble(turns []store.Turn, budget Budget) string {
	if len(turns) == 0 {
		return ""
	}
	if budget.MaxTurns <= 0 || budget.CharBudget <= 0 {
		return ""
	}

	if len(turns) > budget.MaxTurns {
		turns = turns[len(turns)-budget.MaxTurns:]
	}

	// Walk backwards from the newest turn, keeping whole turns while they fit.
	var kept []store.Turn
	used := 0
	for i := len(turns) - 1; i >= 0; i-- {
		line := renderTurn(turns[i])
		if used+len(line) > budget.CharBudget {
			break
		}
		kept = append([]store.Turn{turns[i]}, kept...)
		used += len(line)
	}

	// Hard floor: if even the newest turn alone blew the budget, keep it
	// truncated rather than returning nothing.
	if len(kept) == 0 {
		last := turns[len(turns)-1]
		line := renderTurn(last)
		if len(line) > budget.CharBudget {
			line = truncateAtRuneBoundary(line, budget.CharBudget)
		}
		return wrap(line)
	}

	var b strings.Builder
	for _, turn := range kept {
		b.WriteString(renderTurn(turn))
	}
	return wrap(b.String())
}

func renderTurn(t store.Turn) string {
	speaker := "Visitor"
	if t.Speaker == store.SpeakerAssistant {
		speaker = "Assistant"
	}
	return fmt.Sprintf("%s: %s\n", speaker, t.Text)
}

// truncateAtRuneBoundary cuts s to at most limit bytes without splitting a
// multi-byte rune.
func truncateAtRuneBoundary(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	cut := limit
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}

func wrap(body string) string {
	return "<previous_conversation>\n" + body + "</previous_conversation>\n"
}
