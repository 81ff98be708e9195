// Package domain contains the insurance pricing rules, catalogs, and errors.
// Domain errors represent business-level failures, NOT HTTP errors.
// They are infrastructure-agnostic and can be mapped to HTTP/gRPC/etc by adapters.
package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
var (
	// ErrValidation indicates a malformed or out-of-range driver or vehicle attribute.
	ErrValidation = errors.New("validation failed")

	// ErrUnknownInsurer indicates the requested insurer is not on the carrier panel.
	ErrUnknownInsurer = errors.New("unknown insurer")

	// ErrUnknownTier indicates the requested coverage tier does not exist.
	ErrUnknownTier = errors.New("unknown tier")

	// ErrNotFound indicates the requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrUnavailable indicates a required dependency is unavailable.
	ErrUnavailable = errors.New("unavailable")
)

// ValidationError provides context for validation errors.
type ValidationError struct {
	Field   string
	Message string
	Value   any
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for %s: %s", e.Field, e.Message)
	}

	return "validation failed: " + e.Message
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// NewValidationError creates a validation error with context.
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewValidationErrorWithValue creates a validation error including the invalid value.
func NewValidationErrorWithValue(field, message string, value any) error {
	return &ValidationError{Field: field, Message: message, Value: value}
}

// UnknownInsurerError provides context for unknown insurer errors.
type UnknownInsurerError struct {
	Name string
}

// Error implements the error interface.
func (e *UnknownInsurerError) Error() string {
	return fmt.Sprintf("unknown insurer: %q", e.Name)
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *UnknownInsurerError) Unwrap() error {
	return ErrUnknownInsurer
}

// NewUnknownInsurerError creates an unknown insurer error.
func NewUnknownInsurerError(name string) error {
	return &UnknownInsurerError{Name: name}
}

// UnknownTierError provides context for unknown coverage tier errors.
type UnknownTierError struct {
	Name string
}

// Error implements the error interface.
func (e *UnknownTierError) Error() string {
	return fmt.Sprintf("unknown coverage tier: %q", e.Name)
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *UnknownTierError) Unwrap() error {
	return ErrUnknownTier
}

// NewUnknownTierError creates an unknown tier error.
func NewUnknownTierError(name string) error {
	return &UnknownTierError{Name: name}
}

// NotFoundError provides context for not found errors.
type NotFoundError struct {
	Entity string
	ID     string
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("%s with id %q not found", e.Entity, e.ID)
	}

	return e.Entity + " not found"
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

// NewNotFoundError creates a not found error with context.
func NewNotFoundError(entity, id string) error {
	return &NotFoundError{Entity: entity, ID: id}
}

// UnavailableError provides context for unavailable errors.
type UnavailableError struct {
	Service string
	Reason  string
}

// Error implements the error interface.
func (e *UnavailableError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("service %q unavailable: %s", e.Service, e.Reason)
	}

	return fmt.Sprintf("service %q unavailable", e.Service)
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *UnavailableError) Unwrap() error {
	return ErrUnavailable
}

// NewUnavailableError creates an unavailable error with context.
func NewUnavailableError(service, reason string) error {
	return &UnavailableError{Service: service, Reason: reason}
}

// IsValidation checks if an error is a validation error.
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}

// IsUnknownInsurer checks if an error is an unknown insurer error.
func IsUnknownInsurer(err error) bool {
	return errors.Is(err, ErrUnknownInsurer)
}

// IsUnknownTier checks if an error is an unknown tier error.
func IsUnknownTier(err error) bool {
	return errors.Is(err, ErrUnknownTier)
}

// IsNotFound checks if an error is a not found error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsUnavailable checks if an error is an unavailable error.
func IsUnavailable(err error) bool {
	return errors.Is(err, ErrUnavailable)
}
