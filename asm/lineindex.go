package asm

import (
	"sort"
	"strings"
	"unicode"
)

// LineIndex maps line numbers to text, and labels to the line declaring them.
type LineIndex struct {
	lines  []string       // Trimmed text of each line.
	starts []int          // Byte offset of the first character of each line.
	labels map[string]int // Map of "name:" substrings to the first line holding them.
}

// NewLineIndex builds the index of a source text. Line numbers are 0-based.
func NewLineIndex(text string) (idx *LineIndex) {
	raw := strings.Split(text, "\n")

	idx = &LineIndex{
		lines:  make([]string, 0, len(raw)),
		starts: make([]int, 0, len(raw)),
		labels: make(map[string]int, 16),
	}

	offset := 0
	for lineno, line := range raw {
		idx.lines = append(idx.lines, strings.TrimSpace(line))
		idx.starts = append(idx.starts, offset)
		offset += len(line) + 1
		idx.addLabels(line, lineno)
	}

	return
}

// addLabels records every name that "name:" matches as a substring of
// line. For each colon, that is every suffix of the non-blank run ending
// at it, so "MAINLOOP:" also declares "LOOP" and "P".
func (idx *LineIndex) addLabels(line string, lineno int) {
	for colon := strings.IndexByte(line, ':'); colon >= 0; {
		run := strings.LastIndexFunc(line[:colon], unicode.IsSpace) + 1
		for start := run; start < colon; start++ {
			name := line[start:colon]
			if _, ok := idx.labels[name]; !ok {
				idx.labels[name] = lineno
			}
		}

		next := strings.IndexByte(line[colon+1:], ':')
		if next < 0 {
			break
		}
		colon += next + 1
	}
}

// Len returns the number of lines.
func (idx *LineIndex) Len() int {
	return len(idx.lines)
}

// Line returns the trimmed text of a line, or "" if out of range.
func (idx *LineIndex) Line(lineno int) string {
	if lineno < 0 || lineno >= len(idx.lines) {
		return ""
	}
	return idx.lines[lineno]
}

// LineNumberOf returns the first line containing "label:".
//
// The match is on substrings, not whole words: a "MAINLOOP:" declared
// before "LOOP:" satisfies a lookup of LOOP.
func (idx *LineIndex) LineNumberOf(label string) (lineno int, err error) {
	lineno, ok := idx.labels[label]
	if !ok || len(label) == 0 {
		lineno = 0
		err = ErrLabelNotFound(label)
		return
	}
	return
}

// CurrentLineNumber returns the line holding the byte at offset.
func (idx *LineIndex) CurrentLineNumber(offset int) int {
	lineno := sort.Search(len(idx.starts), func(n int) bool {
		return idx.starts[n] > offset
	}) - 1
	if lineno < 0 {
		lineno = 0
	}
	return lineno
}
