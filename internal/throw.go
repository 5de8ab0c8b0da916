package internal

import "github.com/pkg/errors"

// Threading errors up and down the mesh surgery (events, fills, flips,
// pseudo-polygon recursion) would add a ton of noise to the code. Instead, we
// panic with a TriangulateError, and the public API recovers to convert it to
// an error.

type TriangulateError struct {
	err error
}

func (e TriangulateError) Error() string { return e.err.Error() }
func (e TriangulateError) Unwrap() error { return e.err }
func (e TriangulateError) Cause() error  { return e.err }

// Panic with a TriangulateError.
func fatalf(format string, args ...interface{}) {
	panic(TriangulateError{errors.Errorf(format, args...)})
}

// Panic with a TriangulateError of the given kind, so callers can still match
// it with errors.Is.
func throw(kind error, format string, args ...interface{}) {
	panic(TriangulateError{errors.Wrapf(kind, format, args...)})
}

func HandleTriangulatePanicRecover(r interface{}) error {
	if r != nil {
		if triangulateError, ok := r.(TriangulateError); ok {
			return triangulateError.err
		}
		panic(r)
	}
	return nil
}
