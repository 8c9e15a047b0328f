package bignum

// ErrorKind identifies a kind of error. It has full support for errors.Is
// and errors.As, so the caller can directly check against an error kind
// when determining the reason for an error.
type ErrorKind string

// These constants are used to identify a specific Error.
const (
	// ErrDivideByZero is returned when the divisor of an integer division is
	// zero.
	ErrDivideByZero = ErrorKind("ErrDivideByZero")

	// ErrWidthOverflow is returned when a value does not fit in the
	// requested fixed width, such as narrowing a Uint512 whose upper words
	// are in use or parsing a string with too many digits.
	ErrWidthOverflow = ErrorKind("ErrWidthOverflow")

	// ErrUnsupported is returned when parsing text in a base other than
	// decimal or hexadecimal.
	ErrUnsupported = ErrorKind("ErrUnsupported")

	// ErrInvalidString is returned when text does not describe a number.
	ErrInvalidString = ErrorKind("ErrInvalidString")

	// ErrNegativeValue is returned when a negative value is converted to an
	// unsigned type.
	ErrNegativeValue = ErrorKind("ErrNegativeValue")
)

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}

// Error identifies an error related to fixed-width integer arithmetic. It
// has full support for errors.Is and errors.As, so the caller can ascertain
// the specific reason for the error by checking the underlying error.
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
