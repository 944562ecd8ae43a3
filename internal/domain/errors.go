package domain

import "errors"

// Calculation failures. Operations wrap these with context; callers match
// them with errors.Is.
var (
	// ErrInvalidInput reports a non-positive value where a positive one is required.
	ErrInvalidInput = errors.New("invalid input")
	// ErrInvalidRatio reports a dilution that would raise the concentration,
	// or a channel ratio outside [0, 1].
	ErrInvalidRatio = errors.New("invalid ratio")
	// ErrAgeOutOfRange reports an age outside the supported 0-19 year span.
	ErrAgeOutOfRange = errors.New("age out of range")
	// ErrMissingHeight reports a BMI-for-age query without a height.
	ErrMissingHeight = errors.New("missing height")
	// ErrDataNotFound reports a missing reference entry at the required month.
	ErrDataNotFound = errors.New("reference data not found")
)

var errorCodes = []struct {
	err  error
	code string
}{
	{ErrInvalidInput, "InvalidInput"},
	{ErrInvalidRatio, "InvalidRatio"},
	{ErrAgeOutOfRange, "AgeOutOfRange"},
	{ErrMissingHeight, "MissingHeight"},
	{ErrDataNotFound, "DataNotFound"},
}

// ErrorCode returns the stable tag for a calculation failure, or "" when err
// is nil or not one of the calculation sentinels.
func ErrorCode(err error) string {
	if err == nil {
		return ""
	}
	for _, ec := range errorCodes {
		if errors.Is(err, ec.err) {
			return ec.code
		}
	}
	return ""
}
