package grouping

import "strings"

// Split decomposes a literal into its ordered segments. The text must be
// sign-free, see Classify. Segments keep the literal's underscore
// structure: Split never strips separators, Validate works on the
// `_`-split parts directly.
//
// Decomposition per shape:
//
//   - prefixed plain integer: one segment, the text after the two
//     prefix characters;
//   - decimal plain integer: one segment, the whole text;
//   - floating point: two segments, split at the decimal point;
//   - scientific notation: the exponent marker splits off the exponent
//     segment, then the mantissa splits at its decimal point if it has
//     one. Segment order is integer part, fractional part, exponent.
func Split(text string, sys NumeralSystem, shape Shape) []Segment {
	if sys != Decimal {
		return []Segment{segment(text[2:])}
	}

	switch shape {
	case ScientificNotation:
		mantissa, exponent := cutExponent(text)
		if intPart, fracPart, ok := strings.Cut(mantissa, "."); ok {
			return []Segment{segment(intPart), segment(fracPart), segment(exponent)}
		}

		return []Segment{segment(mantissa), segment(exponent)}

	case FloatingPoint:
		intPart, fracPart, _ := strings.Cut(text, ".")
		return []Segment{segment(intPart), segment(fracPart)}

	default:
		return []Segment{segment(text)}
	}
}

func segment(digits string) Segment {
	return Segment(strings.Split(digits, "_"))
}

// cutExponent splits a scientific literal at its e/E marker. The
// exponent's own sign is not a digit and is dropped, segments hold digit
// characters and underscores only.
func cutExponent(text string) (mantissa, exponent string) {
	i := strings.IndexAny(text, "eE")
	mantissa, exponent = text[:i], text[i+1:]
	exponent = stripSign(exponent)

	return mantissa, exponent
}
