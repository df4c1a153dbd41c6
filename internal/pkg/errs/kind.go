package errs

import "errors"

// ErrorKind is the coarse classification callers branch on.
type ErrorKind int

const (
	KindUnknown ErrorKind = iota
	KindInvalidInput
	KindNotFound
	KindConflict
	KindStorageFailure
	KindUnexpected
)

func (k ErrorKind) String() string {
	switch k {
	case KindInvalidInput:
		return "InvalidInput"
	case KindNotFound:
		return "NotFound"
	case KindConflict:
		return "Conflict"
	case KindStorageFailure:
		return "StorageFailure"
	case KindUnexpected:
		return "Unexpected"
	default:
		return "Unknown"
	}
}

// Kind classifies err. Business kinds win over StorageFailure so that a
// not-found wrapped by a repository still reads as NotFound.
func Kind(err error) ErrorKind {
	switch {
	case err == nil:
		return KindUnknown
	case errors.Is(err, ErrObjectNotFound):
		return KindNotFound
	case errors.Is(err, ErrConflict):
		return KindConflict
	case errors.Is(err, ErrValueIsInvalid),
		errors.Is(err, ErrValueIsRequired),
		errors.Is(err, ErrValueIsOutOfRange):
		return KindInvalidInput
	case errors.Is(err, ErrStorageFailure):
		return KindStorageFailure
	case errors.Is(err, ErrUnexpected):
		return KindUnexpected
	default:
		return KindUnknown
	}
}
