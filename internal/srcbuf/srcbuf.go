// Package srcbuf provides a read-once, line-indexed view of a source file.
//
// The buffer is built exactly once per analyzed file and shared read-only
// across every literal extraction of the pass. There is no re-reading per
// node and no open file handle behind it.
package srcbuf

import (
	"go/token"
	"strings"
)

// Buffer is an immutable line index over one source file's text.
type Buffer struct {
	lines []string
}

// New builds a buffer from the file's full content.
func New(content []byte) *Buffer {
	return &Buffer{lines: strings.Split(string(content), "\n")}
}

// Span reconstructs the source text between two positions, start
// inclusive, end exclusive. Line and Column are 1-based as in
// token.Position. A span covering several lines is joined from the
// per-line pieces with surrounding whitespace trimmed, so a literal
// broken over a continuation still comes back as one contiguous text.
// Positions outside the buffer yield an empty string.
func (b *Buffer) Span(start, end token.Position) string {
	if start.Line < 1 || end.Line < start.Line || end.Line > len(b.lines) {
		return ""
	}

	if start.Line == end.Line {
		return cut(b.lines[start.Line-1], start.Column-1, end.Column-1)
	}

	var sb strings.Builder
	for line := start.Line; line <= end.Line; line++ {
		text := b.lines[line-1]
		switch line {
		case start.Line:
			text = cut(text, start.Column-1, len(text))
		case end.Line:
			text = cut(text, 0, end.Column-1)
		}

		sb.WriteString(strings.TrimSpace(text))
	}

	return sb.String()
}

func cut(line string, from, to int) string {
	if from < 0 {
		from = 0
	}
	if to > len(line) {
		to = len(line)
	}
	if from >= to {
		return ""
	}

	return line[from:to]
}
