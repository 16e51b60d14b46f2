// Package chunk cuts resume text into word-bounded windows for embedding.
package chunk

import "strings"

// Defaults sized for sentence-embedding models: windows short enough to
// embed well, overlapping so statements spanning a boundary stay intact in
// at least one chunk.
const (
	DefaultWords   = 180
	DefaultOverlap = 40
)

// Split cuts text into windows of at most targetWords words, each starting
// targetWords-overlapWords words after the previous one. Non-positive or
// inconsistent parameters fall back to sane values. Empty text yields no
// chunks.
func Split(text string, targetWords, overlapWords int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	if targetWords <= 0 {
		targetWords = DefaultWords
	}
	if overlapWords < 0 || overlapWords >= targetWords {
		overlapWords = targetWords / 4
	}
	step := targetWords - overlapWords

	var chunks []string
	for start := 0; ; start += step {
		end := start + targetWords
		if end > len(words) {
			end = len(words)
		}
		chunks = append(chunks, strings.Join(words[start:end], " "))
		if end == len(words) {
			break
		}
	}
	return chunks
}
