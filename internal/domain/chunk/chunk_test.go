package chunk

import (
	"strings"
	"testing"
)

func nWords(n int) string {
	words := make([]string, n)
	for i := range words {
		words[i] = "w" + string(rune('a'+i%26))
	}
	return strings.Join(words, " ")
}

func TestSplit_ShortTextSingleChunk(t *testing.T) {
	text := "Senior backend engineer with Go and Postgres experience"
	chunks := Split(text, 180, 40)
	if len(chunks) != 1 {
		t.Fatalf("expected one chunk, got %d", len(chunks))
	}
	if chunks[0] != text {
		t.Errorf("chunk = %q, want input text", chunks[0])
	}
}

func TestSplit_Empty(t *testing.T) {
	if got := Split("", 180, 40); got != nil {
		t.Errorf("Split(empty) = %v, want nil", got)
	}
	if got := Split("   \n\t  ", 180, 40); got != nil {
		t.Errorf("Split(whitespace) = %v, want nil", got)
	}
}

func TestSplit_WindowsOverlap(t *testing.T) {
	const total, target, overlap = 25, 10, 4
	chunks := Split(nWords(total), target, overlap)

	// step is 6, so windows start at 0, 6, 12, 18 and the last one ends
	// at word 25.
	if len(chunks) != 4 {
		t.Fatalf("expected 4 chunks, got %d: %v", len(chunks), chunks)
	}
	for i, c := range chunks[:len(chunks)-1] {
		if n := len(strings.Fields(c)); n != target {
			t.Errorf("chunk %d has %d words, want %d", i, n, target)
		}
	}

	first := strings.Fields(chunks[0])
	second := strings.Fields(chunks[1])
	tail := strings.Join(first[len(first)-overlap:], " ")
	head := strings.Join(second[:overlap], " ")
	if tail != head {
		t.Errorf("overlap mismatch: tail %q, head %q", tail, head)
	}
}

func TestSplit_CoversEveryWord(t *testing.T) {
	const total = 101
	chunks := Split(nWords(total), 20, 5)

	last := strings.Fields(chunks[len(chunks)-1])
	want := strings.Fields(nWords(total))
	if got := last[len(last)-1]; got != want[len(want)-1] {
		t.Errorf("final chunk ends with %q, want %q", got, want[len(want)-1])
	}
}

func TestSplit_BadParametersFallBack(t *testing.T) {
	text := nWords(400)
	if got := Split(text, 0, 0); len(got) == 0 {
		t.Error("zero target should fall back to defaults, got no chunks")
	}
	// Overlap at or above the window size must not loop forever.
	if got := Split(text, 10, 10); len(got) == 0 {
		t.Error("overlap >= target should be clamped, got no chunks")
	}
}
