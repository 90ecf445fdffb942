package srcbuf_test

import (
	"go/token"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sirkon/numgroup/internal/srcbuf"
)

func pos(line, column int) token.Position {
	return token.Position{Line: line, Column: column}
}

func TestSpanSingleLine(t *testing.T) {
	buf := srcbuf.New([]byte("const answer = 100_000\nconst other = 42\n"))

	assert.Equal(t, "100_000", buf.Span(pos(1, 16), pos(1, 23)))
	assert.Equal(t, "42", buf.Span(pos(2, 15), pos(2, 17)))
}

func TestSpanMultiLine(t *testing.T) {
	// A literal written over a continuation comes back as one contiguous
	// text, per-line whitespace trimmed away.
	buf := srcbuf.New([]byte("value = 123456789.\\\n    123456789\n"))

	assert.Equal(t, "123456789.\\123456789", buf.Span(pos(1, 9), pos(2, 14)))
}

func TestSpanOutOfRange(t *testing.T) {
	buf := srcbuf.New([]byte("x = 1\n"))

	assert.Equal(t, "", buf.Span(pos(0, 1), pos(0, 2)))
	assert.Equal(t, "", buf.Span(pos(5, 1), pos(6, 2)))
	assert.Equal(t, "", buf.Span(pos(1, 10), pos(1, 20)))
}
