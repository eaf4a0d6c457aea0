package service

import (
	"context"

	"pokehub-backend/internal/formats"
	"pokehub-backend/internal/pokemon"
	"pokehub-backend/internal/validation"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// TeamValidator runs the two validation phases. *validation.Engine satisfies it.
type TeamValidator interface {
	ValidateTeam(team *pokemon.Team) validation.ValidationResult
	ValidateTeamForFormat(ctx context.Context, team *pokemon.Team, formatID string) (*validation.FormatValidationResult, error)
	Ruleset(ctx context.Context, formatID string) (*formats.Ruleset, error)
}

// TeamServiceInterface defines the interface for team service
type TeamServiceInterface interface {
	CreateTeam(ctx context.Context, userID string, team *pokemon.Team) (*TeamResponse, error)
	UpdateTeam(ctx context.Context, userID string, id uuid.UUID, team *pokemon.Team) (*TeamResponse, error)
	GetTeam(ctx context.Context, userID string, id uuid.UUID) (*TeamResponse, error)
	GetTeamsByUserID(ctx context.Context, userID string, page, pageSize int) (*TeamListResponse, error)
	DeleteTeam(ctx context.Context, userID string, id uuid.UUID) error
	AuditFormat(ctx context.Context, userID, formatID string) (*FormatAuditResponse, error)
}

// ValidationServiceInterface defines the interface for the live editor and
// format catalogue
type ValidationServiceInterface interface {
	Validate(ctx context.Context, team *pokemon.Team) (*ValidationResponse, error)
	NewSession() LiveSession
	State() formats.State
	Preload(ctx context.Context) error
	ListFormats(ctx context.Context) ([]FormatResponse, error)
	GetFormat(ctx context.Context, formatID string) (*FormatDetailResponse, error)
}

// LiveSession validates the successive states of one editing session and
// skips work when the team has not changed.
type LiveSession interface {
	Validate(ctx context.Context, team *pokemon.Team) (*ValidationResponse, bool, error)
}
