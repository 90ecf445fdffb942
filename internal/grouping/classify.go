package grouping

import "strings"

// Classify determines the numeral system and shape of a literal from its
// source text. A leading sign is ignored. The text must be a valid
// numeric literal, the upstream front end guarantees that.
func Classify(text string) (NumeralSystem, Shape) {
	text = stripSign(text)

	if len(text) >= 2 && text[0] == '0' {
		switch text[1] | 0x20 {
		case 'b':
			return Binary, PlainInteger
		case 'o':
			return Octal, PlainInteger
		case 'x':
			return Hexadecimal, PlainInteger
		}
	}

	// Fractional and exponent syntax is only ever recognized for decimal
	// literals. The exponent marker wins over the decimal point: "1.5e10"
	// is scientific, not floating point.
	switch {
	case strings.ContainsAny(text, "eE"):
		return Decimal, ScientificNotation
	case strings.Contains(text, "."):
		return Decimal, FloatingPoint
	default:
		return Decimal, PlainInteger
	}
}

// stripSign removes one leading sign character. Sign never takes part in
// classification or segmentation; findings always quote the original text.
func stripSign(text string) string {
	if len(text) > 0 && (text[0] == '-' || text[0] == '+') {
		return text[1:]
	}

	return text
}
