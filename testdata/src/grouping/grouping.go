package grouping

const (
	small     = 100
	grouped   = 100_000
	ungrouped = 1000   // want `use underscores every 3 digits`
	badGroup  = 100_00 // want `use underscores every 3 digits`
)

const (
	hexGood = 0xDEAD_BEEF
	hexBad  = 0xDEADBEEF // want `use underscores every 4 digits`
	octGood = 0o1740_1234
	octBad  = 0o171_234 // want `use underscores every 4 digits`
	binGood = 0b1010_1010
	binBad  = 0b10101010 // want `use underscores every 4 digits`
)

const (
	fracGood = 123_456_789.123_456_789
	fracBad  = 123_456_789.123456789 // want `use underscores every 3 digits`
	sciGood  = 1.5e10
	sciBadM  = 12345.6e10 // want `use underscores every 3 digits`
	sciBadE  = 1e1234     // want `use underscores every 3 digits`
)

var negated = -1000 // want `use underscores every 3 digits`

var (
	imagSkipped     = 5000i
	hexFloatSkipped = 0x1p-2
	stringSkipped   = "10000"
)
