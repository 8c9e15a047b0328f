package curves

// ErrorKind identifies a kind of error. It has full support for errors.Is
// and errors.As, so the caller can directly check against an error kind
// when determining the reason for an error.
type ErrorKind string

// These constants are used to identify a specific Error.
const (
	// ErrDegenerateGeometry is returned when an operation would need the
	// point at infinity, which Point cannot represent: adding two points
	// with the same x coordinate, or multiplying by a zero scalar.
	ErrDegenerateGeometry = ErrorKind("ErrDegenerateGeometry")

	// ErrPointNotOnCurve is returned when coordinates do not satisfy the
	// curve equation or are not reduced modulo the field prime.
	ErrPointNotOnCurve = ErrorKind("ErrPointNotOnCurve")

	// ErrCurveMismatch is returned when an operation combines points of
	// different curves, or a conversion is asked of the wrong curve.
	ErrCurveMismatch = ErrorKind("ErrCurveMismatch")

	// ErrUnknownCurve is returned when looking up a curve name that is not
	// registered.
	ErrUnknownCurve = ErrorKind("ErrUnknownCurve")

	// ErrInvalidCurve is returned when curve parameters are inconsistent,
	// such as a generator that is not on the curve.
	ErrInvalidCurve = ErrorKind("ErrInvalidCurve")
)

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}

// Error identifies an error related to elliptic curve operations.
type Error struct {
	Err         error
	Description string
}

// Error satisfies the error interface and prints human-readable errors.
func (e Error) Error() string {
	return e.Description
}

// Unwrap returns the underlying wrapped error.
func (e Error) Unwrap() error {
	return e.Err
}

// makeError creates an Error given a set of arguments.
func makeError(kind ErrorKind, desc string) Error {
	return Error{Err: kind, Description: desc}
}
