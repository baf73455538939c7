package service

import "errors"

// Kind classifies business failures so handlers can pick an HTTP status
// without string matching. Anything unclassified is an internal error.
type Kind int

const (
	KindNotFound Kind = iota + 1
	KindConflict
	KindValidation
)

// DomainError carries a user-facing message plus its classification.
type DomainError struct {
	Kind    Kind
	Message string
}

func (e *DomainError) Error() string { return e.Message }

func NotFound(msg string) error { return &DomainError{Kind: KindNotFound, Message: msg} }
func Conflict(msg string) error { return &DomainError{Kind: KindConflict, Message: msg} }
func Invalid(msg string) error  { return &DomainError{Kind: KindValidation, Message: msg} }

// KindOf returns the classification of err, or 0 for unexpected errors.
func KindOf(err error) Kind {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Kind
	}
	return 0
}
