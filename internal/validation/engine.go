package validation

import (
	"context"

	"pokehub-backend/internal/formats"
	"pokehub-backend/internal/pokemon"
)

//go:generate mockgen -source=engine.go -destination=../mocks/validation_mocks.go -package=mocks

// RulesetResolver resolves a fully-qualified format id to its ruleset.
// *formats.Registry satisfies it.
type RulesetResolver interface {
	Ruleset(ctx context.Context, formatID string) (*formats.Ruleset, error)
}

// Engine runs both validation phases. It holds no per-call state and is
// safe for concurrent use.
type Engine struct {
	structural *StructuralValidator
	rulesets   RulesetResolver
}

// NewEngine wires a structural validator and a ruleset resolver. A nil
// structural validator uses the package default.
func NewEngine(structural *StructuralValidator, rulesets RulesetResolver) *Engine {
	if structural == nil {
		structural = defaultStructural
	}
	return &Engine{structural: structural, rulesets: rulesets}
}

// ValidateTeam runs the structural phase only.
func (e *Engine) ValidateTeam(team *pokemon.Team) ValidationResult {
	return e.structural.Validate(team)
}

// Ruleset resolves formatID without validating anything, for callers that
// check many teams against one format.
func (e *Engine) Ruleset(ctx context.Context, formatID string) (*formats.Ruleset, error) {
	return e.rulesets.Ruleset(ctx, formatID)
}

// ValidateTeamForFormat runs the semantic phase against formatID. The
// returned error is always a configuration error (malformed or unknown id,
// or a failed rule table load) or the caller's context error; problems with
// the team itself are reported in the result.
func (e *Engine) ValidateTeamForFormat(ctx context.Context, team *pokemon.Team, formatID string) (*FormatValidationResult, error) {
	rs, err := e.rulesets.Ruleset(ctx, formatID)
	if err != nil {
		return nil, err
	}
	return ValidateAgainstRuleset(team, rs), nil
}

// Validate runs the structural phase, then the semantic phase against the
// team's own format when the roster can be addressed by slot, and merges
// both into one report.
func (e *Engine) Validate(ctx context.Context, team *pokemon.Team) (*Report, error) {
	structural := e.ValidateTeam(team)
	if !Addressable(team) {
		return Aggregate(structural, nil), nil
	}

	semantic, err := e.ValidateTeamForFormat(ctx, team, team.FormatID())
	if err != nil {
		return nil, err
	}
	return Aggregate(structural, semantic), nil
}
