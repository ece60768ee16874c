package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitTextShortInputIsSingleSlice(t *testing.T) {
	slices := SplitText("short note", 1500, 200)
	require.Len(t, slices, 1)
	assert.Equal(t, "short note", slices[0])
}

func TestSplitTextOverlappingSlices(t *testing.T) {
	text := "abcdefghijklmnopqrstuvwxyz"
	slices := SplitText(text, 10, 3)

	require.Len(t, slices, 4)
	assert.Equal(t, "abcdefghij", slices[0])
	assert.Equal(t, "vwxyz", slices[3])

	// Consecutive slices share the overlap region
	for i := 1; i < len(slices); i++ {
		prev := slices[i-1]
		assert.True(t, strings.HasPrefix(slices[i], prev[len(prev)-3:]))
	}
}

func TestSplitTextPrefersWordBoundaries(t *testing.T) {
	text := strings.TrimSpace(strings.Repeat("word ", 100))
	slices := SplitText(text, 90, 20)

	require.Greater(t, len(slices), 1)
	for _, s := range slices[:len(slices)-1] {
		assert.True(t, strings.HasSuffix(s, " "), "slice should end on a word boundary: %q", s)
	}
}
