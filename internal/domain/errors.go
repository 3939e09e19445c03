package domain

import (
	"errors"
	"fmt"
)

// ValidationError malformed or missing input field
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// NewValidation creates a field-level validation failure
func NewValidation(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// AuthorizationError caller lacks the required role or ownership
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

// NewAuthorization creates an authorization failure
func NewAuthorization(message string) error {
	return &AuthorizationError{Message: message}
}

// ConflictError caller tried to set a server-controlled or immutable field
type ConflictError struct {
	Field   string
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

// NewConflict creates a conflict failure naming the offending field
func NewConflict(field, message string) error {
	return &ConflictError{Field: field, Message: message}
}

// NotFoundError referenced entity does not exist
type NotFoundError struct {
	Entity string
	Id     int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Entity, e.Id)
}

// NewNotFound creates a not-found failure
func NewNotFound(entity string, id int64) error {
	return &NotFoundError{Entity: entity, Id: id}
}

// UpstreamError persistence or identity store failure
type UpstreamError struct {
	Op  string
	Err error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// NewUpstream wraps a storage-layer failure
func NewUpstream(op string, err error) error {
	return &UpstreamError{Op: op, Err: err}
}

// IsNotFound reports whether err is a NotFoundError
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}
