// Package vimtextarea provides a vim-style text editing component.
//
// This file provides grapheme cluster helpers for Unicode-aware text operations.
//
// Columns (Position.Col) are grapheme indices, not byte offsets and not display
// cells. A grapheme may span several bytes and one or two terminal cells; the
// helpers here translate between those units.
package vimtextarea

import (
	"unicode"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// WordClass is the character class used by word motions.
type WordClass int

const (
	// ClassSpace is whitespace.
	ClassSpace WordClass = iota
	// ClassWord is letters and digits.
	ClassWord
	// ClassPunct is every other non-space character.
	ClassPunct
)

// GraphemeCount returns the number of grapheme clusters in a string.
// For example: "hello" = 5, "h😀llo" = 5.
func GraphemeCount(s string) int {
	return uniseg.GraphemeClusterCount(s)
}

// Graphemes splits s into its grapheme clusters.
func Graphemes(s string) []string {
	if s == "" {
		return nil
	}
	out := make([]string, 0, len(s))
	state := -1
	for len(s) > 0 {
		cluster, rest, _, newState := uniseg.StepString(s, state)
		out = append(out, cluster)
		s = rest
		state = newState
	}
	return out
}

// GraphemeToByteOffset converts a grapheme index to byte offset.
// Returns len(s) if graphemeIdx >= grapheme count and 0 if graphemeIdx <= 0.
func GraphemeToByteOffset(s string, graphemeIdx int) int {
	if graphemeIdx <= 0 {
		return 0
	}

	idx := 0
	state := -1
	original := s
	for len(s) > 0 {
		_, rest, _, newState := uniseg.StepString(s, state)
		idx++
		if idx == graphemeIdx {
			return len(original) - len(rest)
		}
		s = rest
		state = newState
	}
	return len(original)
}

// SliceByGraphemes returns a substring from grapheme index start to end (exclusive).
// Out of range indices are clamped; an empty string is returned for inverted ranges.
func SliceByGraphemes(s string, start, end int) string {
	if start < 0 {
		start = 0
	}
	if end <= start {
		return ""
	}

	startByte := GraphemeToByteOffset(s, start)
	endByte := GraphemeToByteOffset(s, end)
	if startByte >= len(s) {
		return ""
	}
	return s[startByte:endByte]
}

// InsertAtGrapheme inserts text before the grapheme at graphemeIdx.
func InsertAtGrapheme(s string, graphemeIdx int, insert string) string {
	at := GraphemeToByteOffset(s, graphemeIdx)
	return s[:at] + insert + s[at:]
}

// DeleteGraphemeRange removes graphemes [start, end) from s.
func DeleteGraphemeRange(s string, start, end int) string {
	if end <= start {
		return s
	}
	startByte := GraphemeToByteOffset(s, start)
	endByte := GraphemeToByteOffset(s, end)
	return s[:startByte] + s[endByte:]
}

// GraphemeDisplayWidth returns the display width of a single grapheme cluster
// in terminal cells. ASCII = 1, emoji = 2, CJK = 2. Control characters such as
// tab are reported as one cell so the cursor always has somewhere to sit.
func GraphemeDisplayWidth(cluster string) int {
	if cluster == "" {
		return 0
	}
	if w := runewidth.StringWidth(cluster); w > 0 {
		return w
	}
	return 1
}

// classOf classifies a grapheme for word motions, based on its first rune.
func classOf(cluster string) WordClass {
	for _, r := range cluster {
		switch {
		case unicode.IsSpace(r):
			return ClassSpace
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			return ClassWord
		default:
			return ClassPunct
		}
	}
	return ClassSpace
}
