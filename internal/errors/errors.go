package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found. It is also
// returned for resources outside the caller's tenant so that existence is
// never disambiguated from permission.
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ConflictError represents an invariant violation: unique name, cycle,
// WIP limit, illegal state transition, stale optimistic lock.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

// Is enables errors.Is() comparison for ConflictError
func (e *ConflictError) Is(target error) bool {
	t, ok := target.(*ConflictError)
	if !ok {
		return false
	}
	return t.Message == "" || e.Message == t.Message
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// AuthorizationError represents authorization-related errors
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

// NotImplementedError marks a placeholder surface.
type NotImplementedError struct {
	Feature string
}

func (e *NotImplementedError) Error() string {
	return fmt.Sprintf("%s not implemented", e.Feature)
}

// Entity Not Found Errors
var (
	ErrUserNotFound       = &NotFoundError{Entity: "user"}
	ErrCompanyNotFound    = &NotFoundError{Entity: "company"}
	ErrTokenNotFound      = &NotFoundError{Entity: "token"}
	ErrPortfolioNotFound  = &NotFoundError{Entity: "portfolio"}
	ErrProgrammeNotFound  = &NotFoundError{Entity: "programme"}
	ErrProjectNotFound    = &NotFoundError{Entity: "project"}
	ErrArtifactNotFound   = &NotFoundError{Entity: "artifact"}
	ErrResourceNotFound   = &NotFoundError{Entity: "resource"}
	ErrDependencyNotFound = &NotFoundError{Entity: "dependency"}
	ErrMilestoneNotFound  = &NotFoundError{Entity: "milestone"}
	ErrIterationNotFound  = &NotFoundError{Entity: "iteration"}
	ErrBoardNotFound      = &NotFoundError{Entity: "board"}
	ErrColumnNotFound     = &NotFoundError{Entity: "column"}
	ErrCardNotFound       = &NotFoundError{Entity: "card"}
	ErrStageNotFound      = &NotFoundError{Entity: "stage"}
	ErrTrancheNotFound    = &NotFoundError{Entity: "tranche"}
	ErrBenefitNotFound    = &NotFoundError{Entity: "benefit"}
	ErrBlueprintNotFound  = &NotFoundError{Entity: "blueprint"}
)

// Conflict Errors
var (
	ErrUserExists            = &ConflictError{Message: "user already exists with this email"}
	ErrCompanyExists         = &ConflictError{Message: "company already exists with this name"}
	ErrIllegalTransition     = &ConflictError{Message: "illegal status transition"}
	ErrWIPLimitExceeded      = &ConflictError{Message: "WIP limit exceeded"}
	ErrStageOrderViolation   = &ConflictError{Message: "stage order violation"}
	ErrDMAICOrderViolation   = &ConflictError{Message: "DMAIC order violation"}
	ErrDependencyCycle       = &ConflictError{Message: "dependency would create a cycle"}
	ErrIterationOverlap      = &ConflictError{Message: "iterations overlap"}
	ErrBacklogOrderTaken     = &ConflictError{Message: "backlog order already taken"}
	ErrTrancheSequenceTaken  = &ConflictError{Message: "tranche sequence already taken"}
	ErrBlueprintActiveExists = &ConflictError{Message: "an active blueprint already exists"}
	ErrProductCriteriaOpen   = &ConflictError{Message: "product has unchecked quality criteria"}
	ErrStaleVersion          = &ConflictError{Message: "stale version, retry"}
	ErrAllocationExceeded    = &ConflictError{Message: "resource allocation exceeds 100%"}
	ErrDailyUpdateExists     = &ConflictError{Message: "daily update already exists for this date"}
	ErrMethodologyMismatch   = &ConflictError{Message: "artifact methodology not allowed for this parent"}
)

// Authentication / authorization errors
var (
	ErrInvalidCredentials = &AuthenticationError{Message: "invalid email or password"}
	ErrTokenExpired       = &AuthenticationError{Message: "token expired or already used"}
	ErrForbidden          = &AuthorizationError{Message: "forbidden"}
	ErrCompanyRequired    = &ValidationError{Field: "company_id", Message: "company required"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsConflict checks if an error is a ConflictError
func IsConflict(err error) bool {
	var conflictErr *ConflictError
	return errors.As(err, &conflictErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// IsAuthorization checks if an error is an AuthorizationError
func IsAuthorization(err error) bool {
	var authzErr *AuthorizationError
	return errors.As(err, &authzErr)
}

// IsNotImplemented checks if an error is a NotImplementedError
func IsNotImplemented(err error) bool {
	var niErr *NotImplementedError
	return errors.As(err, &niErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewConflictError creates a new ConflictError
func NewConflictError(message string) error {
	return &ConflictError{Message: message}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewAuthenticationError creates a new AuthenticationError
func NewAuthenticationError(message string) error {
	return &AuthenticationError{Message: message}
}

// NewAuthorizationError creates a new AuthorizationError
func NewAuthorizationError(message string) error {
	return &AuthorizationError{Message: message}
}

// NewNotImplementedError creates a new NotImplementedError
func NewNotImplementedError(feature string) error {
	return &NotImplementedError{Feature: feature}
}
