// Package errors defines the error kinds the service and handler layers
// agree on. Handlers map kinds to status codes; nothing below the service
// layer returns these except the configuration errors of the rule table.
package errors

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is matches any NotFoundError for the same entity
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	return ok && e.Entity == t.Entity
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string // e.g. "with this name for this user"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is matches any AlreadyExistsError for the same entity
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	return ok && e.Entity == t.Entity
}

// FieldViolation is one structural problem with a submitted team, addressed
// by dot-path (e.g. "pokemon.2.moves").
type FieldViolation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// TeamValidationError is returned when a team fails shape/range checks.
type TeamValidationError struct {
	Fields []FieldViolation
}

func (e *TeamValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Message)
	}
	return "team validation failed: " + strings.Join(parts, "; ")
}

// FormatLegalityError is returned when a structurally valid team is illegal
// under its format. PokemonErrors only holds slots with at least one error.
type FormatLegalityError struct {
	FormatID      string
	Errors        []string
	PokemonErrors map[int][]string
}

func (e *FormatLegalityError) Error() string {
	count := len(e.Errors)
	slots := make([]int, 0, len(e.PokemonErrors))
	for slot, errs := range e.PokemonErrors {
		count += len(errs)
		slots = append(slots, slot)
	}
	sort.Ints(slots)
	return fmt.Sprintf("team is not legal in %s: %d problem(s), slots %v", e.FormatID, count, slots)
}

// AuthenticationError means the caller could not be identified
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// AuthorizationError means the caller is known but may not act on the entity
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

// ConfigurationError marks a format or rule table problem. These are
// operator faults, never a user mistake.
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

var (
	ErrTeamNotFound  = &NotFoundError{Entity: "team"}
	ErrFormatUnknown = &NotFoundError{Entity: "format"}

	ErrTeamExists = &AlreadyExistsError{Entity: "team", Context: "with this name for this user"}

	ErrUserIDNotFound   = &AuthenticationError{Message: "user id not found in context"}
	ErrTeamAccessDenied = &AuthorizationError{Message: "team belongs to another user"}
)

// Configuration errors of the rule table. Load failures wrap the cause, so
// a caller may match both ErrRulesetLoadFailed and ErrGameDataInvalid.
var (
	ErrMalformedFormatID = &ConfigurationError{Message: "malformed format id"}
	ErrFormatNotFound    = &ConfigurationError{Message: "unknown format"}
	ErrRulesetLoadFailed = &ConfigurationError{Message: "failed to load format rules"}
	ErrGameDataInvalid   = &ConfigurationError{Message: "invalid game data"}
)

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var target *NotFoundError
	return errors.As(err, &target)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var target *AlreadyExistsError
	return errors.As(err, &target)
}

// IsTeamValidation checks if an error is a TeamValidationError
func IsTeamValidation(err error) bool {
	var target *TeamValidationError
	return errors.As(err, &target)
}

// IsFormatLegality checks if an error is a FormatLegalityError
func IsFormatLegality(err error) bool {
	var target *FormatLegalityError
	return errors.As(err, &target)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var target *AuthenticationError
	return errors.As(err, &target)
}

// IsAuthorization checks if an error is an AuthorizationError
func IsAuthorization(err error) bool {
	var target *AuthorizationError
	return errors.As(err, &target)
}

// IsConfiguration checks if an error is a ConfigurationError
func IsConfiguration(err error) bool {
	var target *ConfigurationError
	return errors.As(err, &target)
}
