// Package grouping implements the digit grouping check for numeric literals.
//
// The check runs in three stages, each a pure function of the literal's
// source text:
//
//   - Classify
//     Determines the numeral system (binary, octal, hexadecimal, decimal)
//     and the literal shape (plain integer, floating point, scientific
//     notation) from the raw text.
//
//   - Split
//     Decomposes the literal into its independently checked segments:
//     the integer part, the fractional part, and the exponent part,
//     depending on shape. Each segment keeps its underscore structure
//     as an ordered list of `_`-delimited parts.
//
//   - Validate
//     Checks every segment's parts against the numeral system's group
//     width: the leading part may be short (up to the width), every
//     later part must have exactly the width. The first violating
//     segment produces the finding; later segments are not examined.
//
// Group widths are 4 for binary, octal and hexadecimal literals and 3
// for decimal ones. The whole pipeline holds no state and performs no
// I/O, so Validate may be called concurrently for any number of
// literals without coordination.
package grouping
