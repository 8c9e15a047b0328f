package field

import "github.com/smallyu/go-ecarith/pkg/bignum"

// ErrorKind identifies a kind of error. It has full support for errors.Is
// and errors.As, so the caller can directly check against an error kind
// when determining the reason for an error.
type ErrorKind string

// These constants are used to identify a specific Error.
const (
	// ErrNoModularInverse is returned when the divisor shares a factor with
	// the modulus, so the extended Euclidean algorithm does not end on a
	// remainder of one.
	ErrNoModularInverse = ErrorKind("ErrNoModularInverse")

	// ErrInvalidModulus is returned when a Field is created with a modulus
	// that cannot be an odd prime.
	ErrInvalidModulus = ErrorKind("ErrInvalidModulus")
)

// ErrDivideByZero is returned when dividing by the zero element. It is the
// same kind the integer layer uses, so errors.Is matches either name.
const ErrDivideByZero = bignum.ErrDivideByZero

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}

// Error identifies an error related to modular arithmetic.
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
func makeError(kind error, desc string) Error {
	return Error{Err: kind, Description: desc}
}
