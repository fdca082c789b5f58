// Package failure holds the single tagged error type shared by the ingest
// pipeline, the store and the query API.
package failure

import (
	"errors"
	"strings"
)

type Kind uint8

const (
	KindUnknown Kind = iota
	KindConnection
	KindMissingContent
	KindValidation
	KindPersistence
	KindDuplicate
	KindNotFound
	KindInvalidArgument
	KindConsumer
)

func (k Kind) String() string {
	switch k {
	case KindConnection:
		return "connection"
	case KindMissingContent:
		return "missing_content"
	case KindValidation:
		return "validation"
	case KindPersistence:
		return "persistence"
	case KindDuplicate:
		return "duplicate"
	case KindNotFound:
		return "not_found"
	case KindInvalidArgument:
		return "invalid_argument"
	case KindConsumer:
		return "consumer"
	default:
		return "unknown"
	}
}

// Error carries a Kind plus the operation that produced it. Op follows the
// "Pkg:Method" convention used across the repo.
type Error struct {
	Kind    Kind
	Op      string
	Message string
	Err     error
}

// Kind sentinels. errors.Is(err, ErrValidation) matches any *Error of that
// kind anywhere in the chain.
var (
	ErrConnection      = &Error{Kind: KindConnection}
	ErrMissingContent  = &Error{Kind: KindMissingContent}
	ErrValidation      = &Error{Kind: KindValidation}
	ErrPersistence     = &Error{Kind: KindPersistence}
	ErrDuplicate       = &Error{Kind: KindDuplicate}
	ErrNotFound        = &Error{Kind: KindNotFound}
	ErrInvalidArgument = &Error{Kind: KindInvalidArgument}
	ErrConsumer        = &Error{Kind: KindConsumer}
)

func New(kind Kind, op, message string, err error) error {
	return &Error{Kind: kind, Op: op, Message: message, Err: err}
}

func (e *Error) Error() string {
	parts := make([]string, 0, 3)
	if e.Op != "" {
		parts = append(parts, e.Op)
	}
	if e.Message != "" {
		parts = append(parts, e.Message)
	} else {
		parts = append(parts, e.Kind.String())
	}
	if e.Err != nil {
		parts = append(parts, e.Err.Error())
	}
	return strings.Join(parts, ":")
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports a match against a bare kind sentinel only.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t.Op != "" || t.Message != "" || t.Err != nil {
		return false
	}
	return t.Kind == e.Kind
}

// KindOf returns the kind of the outermost *Error in err's chain.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// Has reports whether any *Error of the given kind is in err's chain.
func Has(err error, kind Kind) bool {
	return errors.Is(err, &Error{Kind: kind})
}

// MessageOf returns the message of the innermost *Error of the given kind.
func MessageOf(err error, kind Kind) string {
	msg := ""
	for err != nil {
		var e *Error
		if !errors.As(err, &e) {
			break
		}
		if e.Kind == kind {
			msg = e.Message
		}
		err = e.Err
	}
	return msg
}
