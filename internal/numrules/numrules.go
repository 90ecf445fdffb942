// Package numrules defines the canonical rule codes (NUM-series) reported by numgroup.
//
// Rule numbering scheme:
//
//	001–049  Digit grouping and separator placement
//	050–099  Reserved for future literal readability rules
package numrules

import "fmt"

// Rule represents a numgroup rule code (NUM-series).
type Rule int

const (
	ruleInvalid Rule = iota

	NUM001UngroupedDigits
)

// Code returns the bare code of the rule. Example: "NUM001".
func (r Rule) Code() string {
	switch r {
	case NUM001UngroupedDigits:
		return "NUM001"
	default:
		return fmt.Sprintf("rule-unknown(%d)", int(r))
	}
}

// String returns the canonical code and short name of the rule.
// Example: "NUM001: UngroupedDigits"
func (r Rule) String() string {
	switch r {
	case NUM001UngroupedDigits:
		return "NUM001: UngroupedDigits"
	default:
		return fmt.Sprintf("rule-unknown(%d)", int(r))
	}
}

// Description returns the human-readable explanation of the rule.
func (r Rule) Description() string {
	switch r {
	case NUM001UngroupedDigits:
		return "Large numeric literals must separate digit groups with underscores at the numeral system's group width."
	default:
		return fmt.Sprintf("unknown-rule(%d)", int(r))
	}
}

// Canonical constructor — for readability and stable call sites.

func UngroupedDigits() Rule { return NUM001UngroupedDigits }
