package transcript

import (
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// EditSummary counts the lines an edit added and removed.
type EditSummary struct {
	Added   int
	Removed int
}

// Changed reports whether the edit touched any line.
func (s EditSummary) Changed() bool {
	return s.Added > 0 || s.Removed > 0
}

func (s EditSummary) String() string {
	if !s.Changed() {
		return "no changes"
	}
	return fmt.Sprintf("+%d -%d", s.Added, s.Removed)
}

// Summarize diffs before and after line by line.
func Summarize(before, after string) EditSummary {
	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(terminate(before), terminate(after))
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	var s EditSummary
	for _, d := range diffs {
		n := strings.Count(d.Text, "\n")
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			s.Added += n
		case diffmatchpatch.DiffDelete:
			s.Removed += n
		}
	}
	return s
}

// terminate ends non-empty text with a newline so the last line diffs like
// the others.
func terminate(s string) string {
	if s == "" || strings.HasSuffix(s, "\n") {
		return s
	}
	return s + "\n"
}
