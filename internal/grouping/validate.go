package grouping

import (
	"fmt"

	"github.com/sirkon/numgroup/internal/numrules"
)

// Validate checks one literal against the default group widths. It
// returns nil when every segment is properly grouped, otherwise the
// first violation found. It never fails over well-formed input.
func Validate(lit Literal) *Finding {
	return ValidateWith(nil, lit)
}

// ValidateWith is Validate with a custom width table. Systems missing
// from the table fall back to their default width. A nil table means
// all defaults.
func ValidateWith(widths Widths, lit Literal) *Finding {
	switch lit.Text {
	case "True", "False", "true", "false":
		// Boolean spellings are excluded upstream. No-op in case one
		// slips through anyway.
		return nil
	}

	text := stripSign(lit.Text)
	sys, shape := Classify(text)

	width, ok := widths[sys]
	if !ok {
		width = sys.GroupWidth()
	}

	// Segments are checked in source order and the first bad one ends
	// the whole literal's check.
	for _, seg := range Split(text, sys, shape) {
		if checkSegment(seg, width) {
			continue
		}

		return &Finding{
			Rule:    numrules.UngroupedDigits(),
			Pos:     lit.Pos,
			Literal: lit.Text,
			Message: fmt.Sprintf(
				"use underscores every %d digits in large numeric literals (%s) for better readability",
				width, lit.Text,
			),
		}
	}

	return nil
}

// checkSegment reports whether every part of the segment obeys the
// group width: the leading part may hold up to width digits, every
// subsequent part must hold exactly width. A segment without any
// underscore is thereby valid only while its single part is short
// enough, which is how long ungrouped digit runs get flagged.
func checkSegment(seg Segment, width int) bool {
	for i, part := range seg {
		if i == 0 && len(part) > width {
			return false
		}
		if i != 0 && len(part) != width {
			return false
		}
	}

	return true
}
