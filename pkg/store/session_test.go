package store

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruncateHistoryUnderCap(t *testing.T) {
	history := []Turn{
		{Speaker: SpeakerUser, Text: "a"},
		{Speaker: SpeakerAssistant, Text: "b"},
	}
	assert.Equal(t, history, TruncateHistory(history))
	assert.Nil(t, TruncateHistory(nil))
}

func TestTruncateHistoryKeepsChronologicallyLast(t *testing.T) {
	var history []Turn
	for i := 0; i < MaxHistoryTurns+7; i++ {
		history = append(history, Turn{Speaker: SpeakerUser, Text: fmt.Sprintf("turn-%d", i)})
	}

	got := TruncateHistory(history)
	assert.Len(t, got, MaxHistoryTurns)
	assert.Equal(t, "turn-7", got[0].Text)
	assert.Equal(t, fmt.Sprintf("turn-%d", MaxHistoryTurns+6), got[len(got)-1].Text)
}

func TestRetrievalContextEmpty(t *testing.T) {
	var nilCtx *RetrievalContext
	assert.True(t, nilCtx.Empty())
	assert.True(t, (&RetrievalContext{}).Empty())
	assert.False(t, (&RetrievalContext{Snippets: []Snippet{{Content: "x"}}}).Empty())
	assert.False(t, (&RetrievalContext{CodeSnippets: []CodeSnippet{{Name: "x"}}}).Empty())
}
