package service

import (
	"context"
	"errors"
	"fmt"

	"pokehub-backend/internal/database/models"
	apperrors "pokehub-backend/internal/errors"
	"pokehub-backend/internal/logger"
	"pokehub-backend/internal/pokemon"
	"pokehub-backend/internal/repository"
	"pokehub-backend/internal/validation"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const auditPageSize = 100

// TeamService handles business logic for saved teams. Every write runs the
// structural and then the format check before the repository is touched.
type TeamService struct {
	repo      repository.TeamRepositoryInterface
	validator TeamValidator
}

// NewTeamService creates a new team service
func NewTeamService(repo repository.TeamRepositoryInterface, validator TeamValidator) *TeamService {
	return &TeamService{
		repo:      repo,
		validator: validator,
	}
}

// TeamResponse represents the response for team operations
type TeamResponse struct {
	ID         uuid.UUID               `json:"id"`
	UserID     string                  `json:"user_id"`
	Name       string                  `json:"name"`
	Generation int                     `json:"generation"`
	Format     string                  `json:"format"`
	FormatID   string                  `json:"format_id"`
	Pokemon    []pokemon.PokemonInTeam `json:"pokemon"`
	Warnings   []string                `json:"warnings,omitempty"`
	CreatedAt  string                  `json:"created_at"`
	UpdatedAt  string                  `json:"updated_at"`
}

// TeamListResponse represents a paginated list of teams
type TeamListResponse struct {
	Teams    []TeamResponse `json:"teams"`
	Total    int64          `json:"total"`
	Page     int            `json:"page"`
	PageSize int            `json:"page_size"`
}

// IllegalTeam is a saved team that no longer passes its format check
type IllegalTeam struct {
	ID            uuid.UUID        `json:"id"`
	UserID        string           `json:"user_id"`
	Name          string           `json:"name"`
	Errors        []string         `json:"errors"`
	PokemonErrors map[int][]string `json:"pokemon_errors"`
}

// FormatAuditResponse lists the saved teams of a format that are now illegal
type FormatAuditResponse struct {
	FormatID string        `json:"format_id"`
	Checked  int           `json:"checked"`
	Illegal  []IllegalTeam `json:"illegal"`
}

// CreateTeam validates and stores a new team for userID
func (s *TeamService) CreateTeam(ctx context.Context, userID string, team *pokemon.Team) (*TeamResponse, error) {
	warnings, err := s.checkTeam(ctx, team)
	if err != nil {
		return nil, err
	}

	// Check if the user already has a team with this name
	existing, err := s.repo.GetByName(userID, team.Name)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing team by name: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrTeamExists
	}

	row, err := models.NewTeam(userID, team)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(row); err != nil {
		return nil, fmt.Errorf("failed to create team: %w", err)
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"team_id":   row.ID,
		"format_id": row.FormatID,
	}).Info("Team created")

	return toResponse(row, team, warnings), nil
}

// UpdateTeam validates and replaces a team owned by userID
func (s *TeamService) UpdateTeam(ctx context.Context, userID string, id uuid.UUID, team *pokemon.Team) (*TeamResponse, error) {
	row, err := s.ownedTeam(userID, id)
	if err != nil {
		return nil, err
	}

	warnings, err := s.checkTeam(ctx, team)
	if err != nil {
		return nil, err
	}

	if team.Name != row.Name {
		existing, err := s.repo.GetByName(userID, team.Name)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to check existing team by name: %w", err)
		}
		if existing != nil && existing.ID != row.ID {
			return nil, apperrors.ErrTeamExists
		}
	}

	if err := row.SetTeam(team); err != nil {
		return nil, err
	}
	if err := s.repo.Update(row); err != nil {
		return nil, fmt.Errorf("failed to update team: %w", err)
	}

	return toResponse(row, team, warnings), nil
}

// GetTeam retrieves a team owned by userID
func (s *TeamService) GetTeam(ctx context.Context, userID string, id uuid.UUID) (*TeamResponse, error) {
	row, err := s.ownedTeam(userID, id)
	if err != nil {
		return nil, err
	}
	team, err := row.Decode()
	if err != nil {
		return nil, err
	}
	return toResponse(row, team, nil), nil
}

// GetTeamsByUserID retrieves a user's teams with pagination
func (s *TeamService) GetTeamsByUserID(ctx context.Context, userID string, page, pageSize int) (*TeamListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	offset := (page - 1) * pageSize
	rows, total, err := s.repo.GetByUserID(userID, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get teams: %w", err)
	}

	responses := make([]TeamResponse, 0, len(rows))
	for i := range rows {
		team, err := rows[i].Decode()
		if err != nil {
			return nil, err
		}
		responses = append(responses, *toResponse(&rows[i], team, nil))
	}

	return &TeamListResponse{
		Teams:    responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// DeleteTeam deletes a team owned by userID
func (s *TeamService) DeleteTeam(ctx context.Context, userID string, id uuid.UUID) error {
	if _, err := s.ownedTeam(userID, id); err != nil {
		return err
	}
	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete team: %w", err)
	}
	return nil
}

// AuditFormat re-checks userID's saved teams of a format against the current
// rules and returns the ones that have become illegal, e.g. after a ban.
// The format is resolved once up front, so an unknown id is reported even
// when no team uses it.
func (s *TeamService) AuditFormat(ctx context.Context, userID, formatID string) (*FormatAuditResponse, error) {
	rs, err := s.validator.Ruleset(ctx, formatID)
	if err != nil {
		if errors.Is(err, apperrors.ErrMalformedFormatID) || errors.Is(err, apperrors.ErrFormatNotFound) {
			return nil, apperrors.ErrFormatUnknown
		}
		return nil, err
	}

	resp := &FormatAuditResponse{FormatID: rs.ID(), Illegal: []IllegalTeam{}}

	for offset := 0; ; offset += auditPageSize {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		rows, total, err := s.repo.GetByFormatID(userID, formatID, auditPageSize, offset)
		if err != nil {
			return nil, fmt.Errorf("failed to get teams: %w", err)
		}

		for i := range rows {
			team, err := rows[i].Decode()
			if err != nil {
				return nil, err
			}
			result := validation.ValidateAgainstRuleset(team, rs)
			resp.Checked++
			if !result.IsValid {
				resp.Illegal = append(resp.Illegal, IllegalTeam{
					ID:            rows[i].ID,
					UserID:        rows[i].UserID,
					Name:          rows[i].Name,
					Errors:        result.Errors,
					PokemonErrors: result.PokemonErrors(),
				})
			}
		}

		if len(rows) == 0 || int64(offset+len(rows)) >= total {
			break
		}
	}

	return resp, nil
}

// checkTeam runs both validation phases and returns the format warnings.
// User-data problems come back as TeamValidationError or
// FormatLegalityError; anything else is a configuration or context error.
func (s *TeamService) checkTeam(ctx context.Context, team *pokemon.Team) ([]string, error) {
	log := logger.WithContext(ctx)

	structural := s.validator.ValidateTeam(team)
	if !structural.IsValid {
		fields := make([]apperrors.FieldViolation, 0, len(structural.Errors))
		for _, fe := range structural.Errors {
			fields = append(fields, apperrors.FieldViolation{Field: fe.Field, Message: fe.Message})
		}
		log.WithField("errors", len(fields)).Debug("Team rejected by structural validation")
		return nil, &apperrors.TeamValidationError{Fields: fields}
	}

	formatID := team.FormatID()
	semantic, err := s.validator.ValidateTeamForFormat(ctx, team, formatID)
	if err != nil {
		if apperrors.IsConfiguration(err) {
			log.WithError(err).WithField("format_id", formatID).Error("Format rules unavailable")
		}
		return nil, err
	}
	if !semantic.IsValid {
		log.WithField("format_id", formatID).Debug("Team rejected by format validation")
		return nil, &apperrors.FormatLegalityError{
			FormatID:      formatID,
			Errors:        semantic.Errors,
			PokemonErrors: semantic.PokemonErrors(),
		}
	}

	return semantic.Warnings, nil
}

func (s *TeamService) ownedTeam(userID string, id uuid.UUID) (*models.Team, error) {
	row, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}
	if row.UserID != userID {
		return nil, apperrors.ErrTeamAccessDenied
	}
	return row, nil
}

func toResponse(row *models.Team, team *pokemon.Team, warnings []string) *TeamResponse {
	return &TeamResponse{
		ID:         row.ID,
		UserID:     row.UserID,
		Name:       row.Name,
		Generation: row.Generation,
		Format:     row.Format,
		FormatID:   row.FormatID,
		Pokemon:    team.Pokemon,
		Warnings:   warnings,
		CreatedAt:  row.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:  row.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
