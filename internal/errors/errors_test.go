package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		err := &NotFoundError{Entity: "team"}
		assert.Equal(t, "team not found", err.Error())
	})

	t.Run("errors.Is comparison with same entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "team"}
		err2 := &NotFoundError{Entity: "team"}
		assert.True(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is comparison with different entity", func(t *testing.T) {
		assert.False(t, errors.Is(ErrTeamNotFound, ErrFormatUnknown))
	})

	t.Run("IsNotFound helper", func(t *testing.T) {
		assert.True(t, IsNotFound(ErrTeamNotFound))
		assert.True(t, IsNotFound(fmt.Errorf("lookup: %w", ErrTeamNotFound)))
		assert.False(t, IsNotFound(ErrTeamExists))
	})
}

func TestAlreadyExistsError(t *testing.T) {
	t.Run("Error message with context", func(t *testing.T) {
		assert.Equal(t, "team already exists with this name for this user", ErrTeamExists.Error())
	})

	t.Run("Error message without context", func(t *testing.T) {
		err := &AlreadyExistsError{Entity: "team"}
		assert.Equal(t, "team already exists", err.Error())
	})

	t.Run("IsAlreadyExists helper", func(t *testing.T) {
		assert.True(t, IsAlreadyExists(ErrTeamExists))
		assert.False(t, IsAlreadyExists(ErrTeamNotFound))
	})
}

func TestTeamValidationError(t *testing.T) {
	err := &TeamValidationError{Fields: []FieldViolation{
		{Field: "name", Message: "name is required"},
		{Field: "pokemon.0.evs", Message: "EV total must not exceed 510"},
	}}

	assert.Equal(t, "team validation failed: name: name is required; pokemon.0.evs: EV total must not exceed 510", err.Error())
	assert.True(t, IsTeamValidation(fmt.Errorf("create: %w", err)))
	assert.False(t, IsTeamValidation(ErrTeamNotFound))
	assert.False(t, IsFormatLegality(err))
}

func TestFormatLegalityError(t *testing.T) {
	err := &FormatLegalityError{
		FormatID: "gen9ou",
		Errors:   []string{"Species Clause: You cannot have more than one Pikachu"},
		PokemonErrors: map[int][]string{
			2: {"Mewtwo is banned in gen9ou"},
			0: {"Baton Pass is banned in gen9ou", "King's Rock is banned in gen9ou"},
		},
	}

	assert.Equal(t, "team is not legal in gen9ou: 4 problem(s), slots [0 2]", err.Error())
	assert.True(t, IsFormatLegality(err))
	assert.False(t, IsConfiguration(err))
}

func TestConfigurationErrors(t *testing.T) {
	wrapped := fmt.Errorf("%w: %q", ErrFormatNotFound, "gen9zz")

	assert.True(t, IsConfiguration(wrapped))
	assert.True(t, errors.Is(wrapped, ErrFormatNotFound))
	assert.False(t, errors.Is(wrapped, ErrMalformedFormatID))
	assert.True(t, IsConfiguration(ErrRulesetLoadFailed))
	assert.False(t, IsConfiguration(ErrTeamNotFound))

	t.Run("Load failure keeps its cause", func(t *testing.T) {
		cause := fmt.Errorf("%w: duplicate species %q", ErrGameDataInvalid, "Pikachu")
		err := fmt.Errorf("%w: %w", ErrRulesetLoadFailed, cause)

		assert.ErrorIs(t, err, ErrRulesetLoadFailed)
		assert.ErrorIs(t, err, ErrGameDataInvalid)
		assert.Contains(t, err.Error(), "Pikachu")
	})
}

func TestAuthErrors(t *testing.T) {
	assert.True(t, IsAuthentication(ErrUserIDNotFound))
	assert.True(t, IsAuthorization(ErrTeamAccessDenied))
	assert.False(t, IsAuthorization(ErrUserIDNotFound))
	assert.False(t, IsAuthentication(ErrTeamNotFound))
	assert.Equal(t, "team belongs to another user", ErrTeamAccessDenied.Error())
}
