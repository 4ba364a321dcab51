package epidemicgo

// Message format constants used by Validate methods and tests across the
// package. Kept as %-style templates, not error values, so both
// errors.Errorf and t.Errorf can use them directly.
const (
	InvalidFloatParameterError  = "invalid %s %f, %s"
	InvalidIntParameterError    = "invalid %s %d, %s"
	InvalidStringParameterError = "invalid %s %s, %s"
	UnrecognizedKeywordError    = "%s is not a recognized value for %s"

	IntKeyNotFoundError = "key %d not found"
	IntKeyExists        = "key %d already exists"

	UnequalFloatParameterError  = "expected %s %f, instead got %f"
	UnequalIntParameterError    = "expected %s %d, instead got %d"
	UnequalStringParameterError = "expected %s %s, instead got %s"
	UnexpectedErrorWhileError   = "encountered error while %s: %s"
	ExpectedErrorWhileError     = "expected an error while %s, instead got %s"

	// DataNotLoadedError is returned verbatim as the sole error delta
	// when the contact stream given to a driver is empty or absent.
	DataNotLoadedError = "Data not loaded"

	// UnsortedContactStreamError is returned when a contact event has an
	// earlier timestamp than one already consumed.
	UnsortedContactStreamError = "contact stream is not sorted by timestamp at index %d"
)
