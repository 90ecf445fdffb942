package grouping

import (
	"go/token"

	"github.com/sirkon/numgroup/internal/numrules"
)

// Literal is one numeric constant exactly as written in source.
type Literal struct {
	// Text is the literal's source text, sign, prefix, case, separators,
	// decimal point and exponent marker included.
	Text string

	// Pos is where the literal starts. It only stamps findings and never
	// influences the check itself.
	Pos token.Position
}

// Segment is one independently checked digit run of a literal (the
// integer part, the fractional part or the exponent part), kept as the
// ordered list of its underscore-delimited parts.
type Segment []string

// Finding is a single rule violation produced by Validate.
type Finding struct {
	Rule    numrules.Rule
	Pos     token.Position
	Literal string
	Message string
}
