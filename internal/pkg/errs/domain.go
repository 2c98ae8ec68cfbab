package errs

import (
	"errors"

	cr "github.com/cockroachdb/errors"
)

type Kind string

const (
	KindValidation   Kind = "VALIDATION"
	KindReference    Kind = "REFERENCE"
	KindDuplicate    Kind = "DUPLICATE"
	KindPastSchedule Kind = "PAST_SCHEDULE"
	KindConflict     Kind = "CONFLICT"
)

// DomainError is a client-input failure carrying the message shown to the caller.
type DomainError struct {
	Kind    Kind
	Message string
	cause   error
}

// Sentinels for errors.Is; they match any DomainError of the same kind.
var (
	ErrValidation   = &DomainError{Kind: KindValidation}
	ErrReference    = &DomainError{Kind: KindReference}
	ErrDuplicate    = &DomainError{Kind: KindDuplicate}
	ErrPastSchedule = &DomainError{Kind: KindPastSchedule}
	ErrConflict     = &DomainError{Kind: KindConflict}
)

func (e *DomainError) Error() string {
	if e.Message == "" {
		return string(e.Kind)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.cause
}

func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && (t.Message == "" || t.Message == e.Message)
}

func newDomainError(kind Kind, msg string, cause error) *DomainError {
	if cause == nil {
		cause = cr.NewWithDepth(2, msg)
	}
	return &DomainError{Kind: kind, Message: msg, cause: cause}
}

func Validation(msg string) error   { return newDomainError(KindValidation, msg, nil) }
func Reference(msg string) error    { return newDomainError(KindReference, msg, nil) }
func Duplicate(msg string) error    { return newDomainError(KindDuplicate, msg, nil) }
func PastSchedule(msg string) error { return newDomainError(KindPastSchedule, msg, nil) }
func Conflict(msg string) error     { return newDomainError(KindConflict, msg, nil) }

// DuplicateFrom and ConflictFrom keep the storage failure as the cause.
func DuplicateFrom(cause error, msg string) error {
	return newDomainError(KindDuplicate, msg, cause)
}

func ConflictFrom(cause error, msg string) error {
	return newDomainError(KindConflict, msg, cause)
}

// AsDomain reports whether err carries a DomainError and returns it.
func AsDomain(err error) (*DomainError, bool) {
	var de *DomainError
	if errors.As(err, &de) {
		return de, true
	}
	return nil, false
}
