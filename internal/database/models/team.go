package models

import (
	"encoding/json"
	"fmt"

	"pokehub-backend/internal/pokemon"
)

// Team is a saved competitive team. The roster is stored as a JSON array
// of slots in submission order; slot indices are array positions.
type Team struct {
	BaseModel
	UserID     string          `json:"user_id" gorm:"size:64;not null;index;uniqueIndex:idx_teams_user_name"`
	Name       string          `json:"name" gorm:"size:100;not null;uniqueIndex:idx_teams_user_name"`
	Generation int             `json:"generation" gorm:"not null"`
	Format     string          `json:"format" gorm:"size:40;not null"`
	FormatID   string          `json:"format_id" gorm:"size:48;not null;index"`
	Pokemon    json.RawMessage `json:"pokemon" gorm:"type:jsonb;not null"`
}

// TableName returns the table name for Team
func (Team) TableName() string {
	return "teams"
}

// NewTeam builds a row for userID from a submitted team.
func NewTeam(userID string, team *pokemon.Team) (*Team, error) {
	row := &Team{UserID: userID}
	if err := row.SetTeam(team); err != nil {
		return nil, err
	}
	return row, nil
}

// SetTeam copies the submitted team into the row.
func (t *Team) SetTeam(team *pokemon.Team) error {
	roster, err := json.Marshal(team.Pokemon)
	if err != nil {
		return fmt.Errorf("encode roster: %w", err)
	}
	t.Name = team.Name
	t.Generation = team.Generation
	t.Format = team.Format
	t.FormatID = team.FormatID()
	t.Pokemon = roster
	return nil
}

// Decode turns the row back into the domain type.
func (t *Team) Decode() (*pokemon.Team, error) {
	team := &pokemon.Team{
		Name:       t.Name,
		Generation: t.Generation,
		Format:     t.Format,
	}
	if len(t.Pokemon) > 0 {
		if err := json.Unmarshal(t.Pokemon, &team.Pokemon); err != nil {
			return nil, fmt.Errorf("decode roster of team %s: %w", t.ID, err)
		}
	}
	return team, nil
}
