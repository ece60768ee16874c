package utils

import "unicode"

// SplitText cuts text into overlapping slices of at most chunkSize runes.
// Each cut prefers a whitespace boundary close to the limit so words stay
// intact; a slice is only cut mid-word when its tail has no whitespace.
func SplitText(text string, chunkSize int, overlap int) []string {
	runes := []rune(text)
	if len(runes) <= chunkSize {
		return []string{text}
	}

	step := chunkSize - overlap
	if step <= 0 {
		step = chunkSize
	}

	// Never search further back than the overlap, or slices stop covering
	// the full text.
	window := chunkSize / 10
	if window > overlap {
		window = overlap
	}

	var slices []string
	for start := 0; start < len(runes); start += step {
		end := start + chunkSize
		if end >= len(runes) {
			slices = append(slices, string(runes[start:]))
			break
		}

		cut := end
		for i := end; i > end-window; i-- {
			if unicode.IsSpace(runes[i-1]) {
				cut = i
				break
			}
		}
		slices = append(slices, string(runes[start:cut]))
	}

	return slices
}
