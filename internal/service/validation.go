package service

import (
	"context"
	"errors"

	apperrors "pokehub-backend/internal/errors"
	"pokehub-backend/internal/formats"
	"pokehub-backend/internal/logger"
	"pokehub-backend/internal/pokemon"
	"pokehub-backend/internal/validation"
)

// ValidationService backs the live team editor and the format catalogue.
type ValidationService struct {
	engine   *validation.Engine
	registry *formats.Registry
}

// NewValidationService creates a validation service. The engine must
// resolve rulesets through registry.
func NewValidationService(engine *validation.Engine, registry *formats.Registry) *ValidationService {
	return &ValidationService{
		engine:   engine,
		registry: registry,
	}
}

// ValidationResponse is the merged report as the editor consumes it.
// Ready is false until the rule table is resident; the editor keeps Save
// disabled until both Ready and IsValid hold.
type ValidationResponse struct {
	IsValid       bool                             `json:"isValid"`
	FormatID      string                           `json:"formatId,omitempty"`
	TeamErrors    []validation.ReportEntry         `json:"teamErrors"`
	PokemonErrors map[int][]validation.ReportEntry `json:"pokemonErrors"`
	Errors        []validation.ReportEntry         `json:"errors"`
	Warnings      []validation.ReportEntry         `json:"warnings"`
	Ready         bool                             `json:"ready"`
}

// FormatResponse describes one format in the catalogue
type FormatResponse struct {
	ID         string           `json:"id"`
	Name       string           `json:"name"`
	Generation int              `json:"generation"`
	Tier       string           `json:"tier"`
	MaxLevel   int              `json:"maxLevel"`
	Clauses    []formats.Clause `json:"clauses"`
}

// FormatDetailResponse adds the usable species of a format
type FormatDetailResponse struct {
	FormatResponse
	LegalSpecies []string `json:"legalSpecies"`
}

// Validate runs both phases on team and shapes the report for the editor.
func (s *ValidationService) Validate(ctx context.Context, team *pokemon.Team) (*ValidationResponse, error) {
	report, err := s.engine.Validate(ctx, team)
	if err != nil {
		s.logFailure(ctx, team, err)
		return nil, err
	}
	return s.toResponse(report), nil
}

// NewSession starts a memoised editing session.
func (s *ValidationService) NewSession() LiveSession {
	return &liveSession{service: s, memo: validation.NewMemo(s.engine)}
}

// State returns the lifecycle stage of the rule table.
func (s *ValidationService) State() formats.State {
	return s.registry.State()
}

// Preload loads the rule table ahead of the first request.
func (s *ValidationService) Preload(ctx context.Context) error {
	return s.registry.Load(ctx)
}

// ListFormats lists every format of the rule table
func (s *ValidationService) ListFormats(ctx context.Context) ([]FormatResponse, error) {
	rulesets, err := s.registry.Formats(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]FormatResponse, 0, len(rulesets))
	for _, rs := range rulesets {
		out = append(out, formatResponse(rs))
	}
	return out, nil
}

// GetFormat describes one format. Ids that are malformed or missing from
// the table are reported as not found, since here they come from a URL.
func (s *ValidationService) GetFormat(ctx context.Context, formatID string) (*FormatDetailResponse, error) {
	rs, err := s.registry.Ruleset(ctx, formatID)
	if err != nil {
		if errors.Is(err, apperrors.ErrMalformedFormatID) || errors.Is(err, apperrors.ErrFormatNotFound) {
			return nil, apperrors.ErrFormatUnknown
		}
		return nil, err
	}

	return &FormatDetailResponse{
		FormatResponse: formatResponse(rs),
		LegalSpecies:   rs.LegalSpecies(),
	}, nil
}

func (s *ValidationService) toResponse(report *validation.Report) *ValidationResponse {
	resp := &ValidationResponse{
		IsValid:       report.IsValid,
		FormatID:      report.FormatID,
		TeamErrors:    report.TeamErrors(),
		PokemonErrors: make(map[int][]validation.ReportEntry),
		Errors:        report.Errors,
		Warnings:      report.Warnings,
		Ready:         s.registry.Ready(),
	}
	for _, e := range report.Errors {
		if e.PokemonSlot != nil {
			resp.PokemonErrors[*e.PokemonSlot] = append(resp.PokemonErrors[*e.PokemonSlot], e)
		}
	}
	return resp
}

func (s *ValidationService) logFailure(ctx context.Context, team *pokemon.Team, err error) {
	if !apperrors.IsConfiguration(err) {
		return
	}
	log := logger.WithContext(ctx).WithError(err)
	if team != nil {
		log = log.WithField("format_id", team.FormatID())
	}
	log.Error("Team validation failed on format rules")
}

func formatResponse(rs *formats.Ruleset) FormatResponse {
	return FormatResponse{
		ID:         rs.ID(),
		Name:       rs.Name(),
		Generation: rs.Generation(),
		Tier:       rs.Tier(),
		MaxLevel:   rs.MaxLevel(),
		Clauses:    rs.Clauses(),
	}
}

type liveSession struct {
	service *ValidationService
	memo    *validation.Memo
}

// Validate returns the report for this state of the team and whether it was
// served from the session cache.
func (l *liveSession) Validate(ctx context.Context, team *pokemon.Team) (*ValidationResponse, bool, error) {
	report, cached, err := l.memo.Validate(ctx, team)
	if err != nil {
		l.service.logFailure(ctx, team, err)
		return nil, false, err
	}
	return l.service.toResponse(report), cached, nil
}
