package core

import (
	"errors"
	"fmt"
	"strconv"
)

// Kind names an entity collection.
type Kind string

const (
	KindCategory    Kind = "category"
	KindAccount     Kind = "account"
	KindTransaction Kind = "transaction"
	KindClient      Kind = "client"
	KindVendor      Kind = "vendor"
	KindBudget      Kind = "budget"
)

var (
	ErrNotFound   = errors.New("not found")
	ErrValidation = errors.New("validation failed")
	ErrConflict   = errors.New("conflict")
)

// Title returns the display form used in API messages ("Category").
func (k Kind) Title() string {
	if k == "" {
		return ""
	}
	b := []byte(k)
	if b[0] >= 'a' && b[0] <= 'z' {
		b[0] -= 'a' - 'A'
	}
	return string(b)
}

// NotFoundError reports a missing record of a given kind.
type NotFoundError struct {
	Kind Kind
	Key  int64
}

func NotFound(kind Kind, key int64) *NotFoundError {
	return &NotFoundError{Kind: kind, Key: key}
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Kind, e.Key)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// Detail is the message surfaced to API clients.
func (e *NotFoundError) Detail() string {
	return e.Kind.Title() + " not found"
}

// ValidationError reports a malformed field in a create or update payload.
type ValidationError struct {
	Field  string
	Reason string
}

func Invalid(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return e.Field + " " + e.Reason
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// ConflictError reports an insert whose key is already taken.
type ConflictError struct {
	Kind Kind
	Key  int64
}

func Conflict(kind Kind, key int64) *ConflictError {
	return &ConflictError{Kind: kind, Key: key}
}

func (e *ConflictError) Error() string {
	return string(e.Kind) + " " + strconv.FormatInt(e.Key, 10) + " already exists"
}

func (e *ConflictError) Is(target error) bool {
	return target == ErrConflict
}
