// Package numrules is the single source of truth for numgroup rule codes.
//
// Every finding produced by the analyzer carries exactly one Rule value,
// giving it a stable numeric and textual identity across the analysis
// entry point, the standalone CLI, and any host tool mapping findings
// into its own diagnostic schema.
//
// Rule codes follow the format “NUM<NNN>: <Name>”:
//
//	numrules.NUM001UngroupedDigits.String()      → "NUM001: UngroupedDigits"
//	numrules.NUM001UngroupedDigits.Description() → explanation text
//
// Rule identifiers are stable; never renumber existing codes. New rules
// must take the next available NUM-range slot.
package numrules
