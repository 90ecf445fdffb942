// Package discover is the source front end of numgroup: it walks a parsed
// file and yields every numeric literal as raw text plus position, leaving
// all judgement about the text to the grouping core.
package discover

import (
	"go/ast"
	"go/token"
	"iter"
	"strings"

	"github.com/sirkon/numgroup/internal/grouping"
	"github.com/sirkon/numgroup/internal/srcbuf"
)

// LiteralText reports the checkable source text of a basic literal.
// Non-numeric literals are rejected. Imaginary literals and hexadecimal
// floats carry no grouping convention and are skipped as well.
func LiteralText(lit *ast.BasicLit) (string, bool) {
	if lit.Kind != token.INT && lit.Kind != token.FLOAT {
		return "", false
	}

	if hexFloat(lit.Value) {
		return "", false
	}

	return lit.Value, true
}

func hexFloat(text string) bool {
	if len(text) < 2 || text[0] != '0' || (text[1]|0x20) != 'x' {
		return false
	}

	return strings.ContainsAny(text[2:], ".pP")
}

// Literals yields every numeric literal of the file in source order as a
// lazy, restartable sequence. A literal negated (or explicitly signed)
// with a unary operator is yielded once, sign folded into its text and
// position set to the sign. When buf is given, literal text is recovered
// from the file's line buffer by span, the way a front end without token
// values in its syntax tree would do it; otherwise the token value is
// used directly.
func Literals(fset *token.FileSet, file *ast.File, buf *srcbuf.Buffer) iter.Seq[grouping.Literal] {
	return func(yield func(grouping.Literal) bool) {
		stop := false
		ast.Inspect(file, func(node ast.Node) bool {
			if stop {
				return false
			}

			switch n := node.(type) {
			case *ast.UnaryExpr:
				if n.Op != token.SUB && n.Op != token.ADD {
					return true
				}
				lit, ok := n.X.(*ast.BasicLit)
				if !ok {
					return true
				}
				if _, ok := LiteralText(lit); !ok {
					return false
				}

				stop = !yield(extract(fset, buf, n.Pos(), n.End(), n.Op.String()+lit.Value))

				// The literal under the sign is already yielded.
				return false

			case *ast.BasicLit:
				text, ok := LiteralText(n)
				if !ok {
					return true
				}

				stop = !yield(extract(fset, buf, n.Pos(), n.End(), text))
			}

			return !stop
		})
	}
}

func extract(fset *token.FileSet, buf *srcbuf.Buffer, start, end token.Pos, value string) grouping.Literal {
	pos := fset.Position(start)

	text := value
	if buf != nil {
		if spanned := buf.Span(pos, fset.Position(end)); spanned != "" {
			text = spanned
		}
	}

	return grouping.Literal{Text: text, Pos: pos}
}
