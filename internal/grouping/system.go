package grouping

import (
	"encoding"
	"fmt"
	"maps"
)

// NumeralSystem describes the radix family of a numeric literal.
type NumeralSystem int

const (
	numeralSystemInvalid NumeralSystem = iota

	Binary
	Octal
	Hexadecimal
	Decimal
)

var numeralSystemValueMap = map[NumeralSystem]string{
	Binary:      "binary",
	Octal:       "octal",
	Hexadecimal: "hexadecimal",
	Decimal:     "decimal",
}

// GroupWidth returns the default separator group width of the system.
// Binary, octal and hexadecimal literals group by 4 digits, decimal
// ones by 3. Octal shares the width of binary and hexadecimal, not of
// decimal.
func (s NumeralSystem) GroupWidth() int {
	if s == Decimal {
		return 3
	}

	return 4
}

func (s NumeralSystem) String() string {
	v, ok := numeralSystemValueMap[s]
	if !ok {
		return fmt.Sprintf("numeral-system-invalid(%d)", int(s))
	}

	return v
}

var _ encoding.TextMarshaler = NumeralSystem(0)

// MarshalText for rendering values in configs, reports, etc.
func (s NumeralSystem) MarshalText() ([]byte, error) {
	v, ok := numeralSystemValueMap[s]
	if !ok {
		return nil, fmt.Errorf("cannot marshal invalid NumeralSystem(%d)", int(s))
	}

	return []byte(v), nil
}

var _ encoding.TextUnmarshaler = (*NumeralSystem)(nil)

// UnmarshalText for setting values with configs, CLI, etc.
func (s *NumeralSystem) UnmarshalText(rawtext []byte) error {
	text := string(rawtext)
	for k, v := range numeralSystemValueMap {
		if v == text {
			*s = k
			return nil
		}
	}

	return fmt.Errorf("unknown numeral system %q", text)
}

// Shape describes the lexical shape of a numeric literal.
// Only decimal literals can be floating point or scientific; prefixed
// literals are always plain integers.
type Shape int

const (
	shapeInvalid Shape = iota

	PlainInteger
	FloatingPoint
	ScientificNotation
)

func (s Shape) String() string {
	switch s {
	case PlainInteger:
		return "plain-integer"
	case FloatingPoint:
		return "floating-point"
	case ScientificNotation:
		return "scientific-notation"
	default:
		return fmt.Sprintf("shape-invalid(%d)", int(s))
	}
}

// Widths maps numeral systems to their required separator group width.
type Widths map[NumeralSystem]int

// DefaultWidths returns the standard width table.
func DefaultWidths() Widths {
	return Widths{
		Binary:      4,
		Octal:       4,
		Hexadecimal: 4,
		Decimal:     3,
	}
}

// Merge returns a copy of the defaults with the given overrides applied.
func (w Widths) Merge(overrides Widths) Widths {
	merged := maps.Clone(w)
	maps.Insert(merged, maps.All(overrides))

	return merged
}
