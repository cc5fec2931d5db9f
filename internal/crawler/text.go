package crawler

import (
	"strings"
	"unicode/utf8"
)

const (
	segmentWidth = 1000
	segmentCount = 3
)

// splitDescription collapses whitespace and wraps the text into exactly three
// segments of at most segmentWidth characters each, padding with empty
// strings when the text is short. Wrapping is greedy at word boundaries; a
// word longer than the width stays whole in its own segment rather than being
// broken mid-word or at hyphens. Text beyond the third segment is dropped,
// which bounds downstream payload size. Widths count runes, not bytes, so
// Thai text wraps at the same character budget as English.
func splitDescription(text string) (string, string, string) {
	words := strings.Fields(text)

	var segments []string
	var current []string
	width := 0
	for _, word := range words {
		wordWidth := utf8.RuneCountInString(word)
		if len(current) > 0 && width+1+wordWidth > segmentWidth {
			segments = append(segments, strings.Join(current, " "))
			current = current[:0]
			width = 0
		}
		if len(current) > 0 {
			width++ // joining space
		}
		current = append(current, word)
		width += wordWidth
	}
	if len(current) > 0 {
		segments = append(segments, strings.Join(current, " "))
	}

	for len(segments) < segmentCount {
		segments = append(segments, "")
	}
	return segments[0], segments[1], segments[2]
}
