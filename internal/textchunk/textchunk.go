// Package textchunk splits text into fixed word-count segments for
// unit-at-a-time summarization.
package textchunk

import (
	"iter"
	"strings"
)

// DefaultWordsPerSegment is the segment size used when none is configured.
const DefaultWordsPerSegment = 500

// Segment is one word-bounded slice of the source text.
type Segment struct {
	Index int
	Text  string
}

// Split yields segments of at most wordsPerSegment words, in order. Words
// are whitespace-delimited; each segment rejoins its words with single
// spaces, so internal whitespace runs collapse. The sequence is finite and
// can be ranged over more than once. Empty or whitespace-only text yields
// nothing.
func Split(text string, wordsPerSegment int) iter.Seq[Segment] {
	if wordsPerSegment <= 0 {
		wordsPerSegment = DefaultWordsPerSegment
	}
	return func(yield func(Segment) bool) {
		words := strings.Fields(text)
		index := 0
		for i := 0; i < len(words); i += wordsPerSegment {
			end := min(i+wordsPerSegment, len(words))
			if !yield(Segment{Index: index, Text: strings.Join(words[i:end], " ")}) {
				return
			}
			index++
		}
	}
}

// Collect materializes Split into a slice.
func Collect(text string, wordsPerSegment int) []Segment {
	var segments []Segment
	for seg := range Split(text, wordsPerSegment) {
		segments = append(segments, seg)
	}
	return segments
}

// Count returns the number of segments Split would yield.
func Count(text string, wordsPerSegment int) int {
	if wordsPerSegment <= 0 {
		wordsPerSegment = DefaultWordsPerSegment
	}
	words := len(strings.Fields(text))
	return (words + wordsPerSegment - 1) / wordsPerSegment
}
