package history

import (
	"fmt"
	"strings"
	"testing"
	"unicode/utf8"

	"persona-assistant-be/pkg/store"

	"github.com/stretchr/testify/assert"
)

func turn(speaker, text string) store.Turn {
	return store.Turn{Speaker: speaker, Text: text}
}

func TestBuildPreambleEmptyHistory(t *testing.T) {
	assert.Equal(t, "", BuildPreamble(nil, DefaultBudget()))
	assert.Equal(t, "", BuildPreamble([]store.Turn{}, DefaultBudget()))
}

func TestBuildPreambleKeepsNewestLast(t *testing.T) {
	turns := []store.Turn{
		turn(store.SpeakerUser, "first question"),
		turn(store.SpeakerAssistant, "first answer"),
		turn(store.SpeakerUser, "second question"),
	}
	out := BuildPreamble(turns, DefaultBudget())

	assert.Contains(t, out, "Visitor: first question")
	assert.Contains(t, out, "Assistant: first answer")
	assert.Contains(t, out, "Visitor: second question")
	assert.Less(t,
		strings.Index(out, "first question"),
		strings.Index(out, "second question"),
		"chronological order must be preserved")
}

func TestBuildPreambleTurnCap(t *testing.T) {
	var turns []store.Turn
	for i := 0; i < 20; i++ {
		turns = append(turns, turn(store.SpeakerUser, fmt.Sprintf("question %d", i)))
	}
	out := BuildPreamble(turns, Budget{MaxTurns: 4, CharBudget: 10000})

	assert.NotContains(t, out, "question 15")
	for i := 16; i < 20; i++ {
		assert.Contains(t, out, fmt.Sprintf("question %d", i))
	}
}

func TestBuildPreambleDropsOldestWholeTurnsOnCharBudget(t *testing.T) {
	turns := []store.Turn{
		turn(store.SpeakerUser, strings.Repeat("a", 200)),
		turn(store.SpeakerAssistant, strings.Repeat("b", 50)),
		turn(store.SpeakerUser, strings.Repeat("c", 50)),
	}
	out := BuildPreamble(turns, Budget{MaxTurns: 10, CharBudget: 150})

	// The oldest turn does not fit and must be dropped in full, not split.
	assert.NotContains(t, out, strings.Repeat("a", 200))
	assert.NotContains(t, out, "aaa")
	assert.Contains(t, out, strings.Repeat("b", 50))
	assert.Contains(t, out, strings.Repeat("c", 50))
}

func TestBuildPreambleHardFloorKeepsLatestTurnTruncated(t *testing.T) {
	turns := []store.Turn{
		turn(store.SpeakerAssistant, "earlier answer"),
		turn(store.SpeakerUser, strings.Repeat("x", 500)),
	}
	out := BuildPreamble(turns, Budget{MaxTurns: 10, CharBudget: 100})

	assert.NotContains(t, out, "earlier answer")
	assert.Contains(t, out, "x", "latest user turn must survive even when it alone exceeds the budget")
	body := strings.TrimSuffix(strings.TrimPrefix(out, "<previous_conversation>\n"), "</previous_conversation>\n")
	assert.LessOrEqual(t, len(body), 100)
}

func TestBuildPreambleHardFloorCutsAtRuneBoundary(t *testing.T) {
	turns := []store.Turn{
		turn(store.SpeakerUser, strings.Repeat("é", 200)),
	}
	out := BuildPreamble(turns, Budget{MaxTurns: 10, CharBudget: 100})

	assert.True(t, utf8.ValidString(out), "truncation must not split a multi-byte rune")
	body := strings.TrimSuffix(strings.TrimPrefix(out, "<previous_conversation>\n"), "</previous_conversation>\n")
	assert.LessOrEqual(t, len(body), 100)
	assert.Contains(t, body, "é")
}
