// Package validation implements the two-phase team validator: a
// format-agnostic structural check followed by a format legality check,
// merged into one field-addressable report.
package validation

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"pokehub-backend/internal/formats"
	"pokehub-backend/internal/pokemon"

	"github.com/go-playground/validator/v10"
)

// RootField addresses errors about the payload as a whole.
const RootField = "_root"

// FieldError is one violated shape/range rule, addressed by dot-path with
// numeric array indices (e.g. "pokemon.2.moves").
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationResult is the outcome of the structural check.
type ValidationResult struct {
	IsValid bool         `json:"isValid"`
	Errors  []FieldError `json:"errors"`
}

// StructuralValidator checks a team against the struct tags of the pokemon
// package plus the rules tags cannot express (EV total, duplicate moves by id).
type StructuralValidator struct {
	validate *validator.Validate
}

// NewStructuralValidator registers the team rules on v. Registration is not
// safe for concurrent use, so build the validator once at startup; Validate
// may then be called from any goroutine. A nil v gets a fresh instance.
// It panics if a rule cannot be registered.
func NewStructuralValidator(v *validator.Validate) *StructuralValidator {
	if v == nil {
		v = validator.New()
	}
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	for tag, fn := range map[string]validator.Func{
		"distinct_ids": distinctIDs,
		"notblank":     notBlank,
	} {
		if err := v.RegisterValidation(tag, fn); err != nil {
			panic(fmt.Sprintf("validation: register %s: %v", tag, err))
		}
	}
	v.RegisterStructValidation(validateEVTotal, pokemon.PokemonInTeam{})
	return &StructuralValidator{validate: v}
}

var defaultStructural = NewStructuralValidator(nil)

// ValidateTeam runs the structural check with the package default validator.
func ValidateTeam(team *pokemon.Team) ValidationResult {
	return defaultStructural.Validate(team)
}

// Validate checks shape and ranges. It never panics and never modifies team.
func (s *StructuralValidator) Validate(team *pokemon.Team) ValidationResult {
	if team == nil {
		return ValidationResult{
			IsValid: false,
			Errors:  []FieldError{{Field: RootField, Message: "Team is required"}},
		}
	}

	err := s.validate.Struct(team)
	if err == nil {
		return ValidationResult{IsValid: true, Errors: []FieldError{}}
	}

	var fieldErrs validator.ValidationErrors
	if !asValidationErrors(err, &fieldErrs) {
		return ValidationResult{
			IsValid: false,
			Errors:  []FieldError{{Field: RootField, Message: err.Error()}},
		}
	}

	errs := make([]FieldError, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		errs = append(errs, FieldError{
			Field:   fieldPath(fe.Namespace()),
			Message: fieldMessage(fe),
		})
	}
	return ValidationResult{IsValid: false, Errors: errs}
}

// Addressable reports whether the team can be checked slot by slot: the
// roster exists and the format id built from it is well formed. Teams that
// fail here are reported by the structural phase alone.
func Addressable(team *pokemon.Team) bool {
	if team == nil || len(team.Pokemon) == 0 {
		return false
	}
	if team.Generation < pokemon.MinGeneration || team.Generation > pokemon.MaxGeneration {
		return false
	}
	_, _, err := formats.ParseFormatID(team.FormatID())
	return err == nil
}

func asValidationErrors(err error, target *validator.ValidationErrors) bool {
	fieldErrs, ok := err.(validator.ValidationErrors)
	if ok {
		*target = fieldErrs
	}
	return ok
}

func validateEVTotal(sl validator.StructLevel) {
	p, ok := sl.Current().Interface().(pokemon.PokemonInTeam)
	if !ok {
		return
	}
	if p.EVs.Total() > pokemon.MaxEVTotal {
		sl.ReportError(p.EVs, "evs", "EVs", "evtotal", strconv.Itoa(pokemon.MaxEVTotal))
	}
}

// distinctIDs rejects lists where two entries normalise to the same id,
// so "Thunderbolt" and "thunderbolt" count as the same move.
func distinctIDs(fl validator.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() != reflect.Slice {
		return false
	}
	seen := make(map[string]struct{}, field.Len())
	for i := 0; i < field.Len(); i++ {
		id := pokemon.ToID(field.Index(i).String())
		if id == "" {
			continue
		}
		if _, dup := seen[id]; dup {
			return false
		}
		seen[id] = struct{}{}
	}
	return true
}

// notBlank rejects strings that are empty once surrounding whitespace is
// trimmed.
func notBlank(fl validator.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() != reflect.String {
		return false
	}
	return strings.TrimSpace(field.String()) != ""
}

// fieldPath turns "Team.pokemon[2].moves[0]" into "pokemon.2.moves.0".
func fieldPath(namespace string) string {
	if i := strings.IndexByte(namespace, '.'); i >= 0 {
		namespace = namespace[i+1:]
	}
	namespace = strings.ReplaceAll(namespace, "[", ".")
	return strings.ReplaceAll(namespace, "]", "")
}

func fieldMessage(fe validator.FieldError) string {
	path := fieldPath(fe.Namespace())
	segments := strings.Split(path, ".")
	parent := ""
	if len(segments) > 1 {
		parent = segments[len(segments)-2]
	}

	switch {
	case fe.Tag() == "evtotal":
		return fmt.Sprintf("Total EVs must not exceed %d", pokemon.MaxEVTotal)
	case parent == "evs":
		return fmt.Sprintf("%s EVs must be between 0 and %d", statLabel(fe.Field()), pokemon.MaxEVPerStat)
	case parent == "ivs":
		return fmt.Sprintf("%s IVs must be between 0 and %d", statLabel(fe.Field()), pokemon.MaxIVPerStat)
	case parent == "moves":
		return "Move cannot be empty"
	}

	switch fe.Field() {
	case "name":
		if fe.Tag() == "required" || fe.Tag() == "notblank" {
			return "Team name is required"
		}
		return fmt.Sprintf("Team name must be at most %d characters", pokemon.MaxTeamNameLen)
	case "generation":
		return fmt.Sprintf("Generation must be between %d and %d", pokemon.MinGeneration, pokemon.MaxGeneration)
	case "format":
		if fe.Tag() == "required" {
			return "Format is required"
		}
		return "Format must be lowercase letters and digits"
	case "pokemon":
		return fmt.Sprintf("Team must have between %d and %d Pokémon", pokemon.MinTeamSize, pokemon.MaxTeamSize)
	case "species":
		return "Species is required"
	case "level":
		return fmt.Sprintf("Level must be between %d and %d", pokemon.MinLevel, pokemon.MaxLevel)
	case "gender":
		return "Gender must be M, F or N"
	case "moves":
		if fe.Tag() == "distinct_ids" {
			return "Moves must not contain duplicates"
		}
		return fmt.Sprintf("Pokémon must have between %d and %d moves", pokemon.MinMoves, pokemon.MaxMoves)
	}
	return fmt.Sprintf("%s failed the %s check", path, fe.Tag())
}

func statLabel(stat string) string {
	switch stat {
	case "hp":
		return "HP"
	case "atk":
		return "Attack"
	case "def":
		return "Defense"
	case "spa":
		return "Sp. Atk"
	case "spd":
		return "Sp. Def"
	case "spe":
		return "Speed"
	}
	return stat
}
