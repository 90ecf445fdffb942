package customwidths

const (
	fine    = 1000
	alsoOk  = 123_4567
	tooLong = 12345 // want `use underscores every 4 digits`
	offGrid = 1_000 // want `use underscores every 4 digits`
)

// Systems absent from the config keep their defaults.
const hexStillDefault = 0xDEADBEEF // want `use underscores every 4 digits`
