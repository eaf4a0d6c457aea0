package repository

import (
	"pokehub-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TeamRepository stores saved teams. Rosters are opaque JSON to this layer;
// legality is checked by the service before anything is written.
type TeamRepository struct {
	db *gorm.DB
}

// NewTeamRepository creates a new team repository
func NewTeamRepository(db *gorm.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

// Create inserts a team. A second team with the same name for the same
// user violates idx_teams_user_name.
func (r *TeamRepository) Create(team *models.Team) error {
	return r.db.Create(team).Error
}

// GetByID retrieves a team by ID
func (r *TeamRepository) GetByID(id uuid.UUID) (*models.Team, error) {
	var team models.Team
	if err := r.db.Where("id = ?", id).Take(&team).Error; err != nil {
		return nil, err
	}
	return &team, nil
}

// GetByName retrieves a team by name among one user's teams
func (r *TeamRepository) GetByName(userID, name string) (*models.Team, error) {
	var team models.Team
	if err := r.db.Where("user_id = ? AND name = ?", userID, name).Take(&team).Error; err != nil {
		return nil, err
	}
	return &team, nil
}

// GetByUserID lists a user's teams, most recently edited first
func (r *TeamRepository) GetByUserID(userID string, limit, offset int) ([]models.Team, int64, error) {
	return r.page(r.db.Where("user_id = ?", userID), "updated_at DESC", limit, offset)
}

// GetByFormatID lists a user's teams saved for a format in creation order,
// so an audit can walk them page by page
func (r *TeamRepository) GetByFormatID(userID, formatID string, limit, offset int) ([]models.Team, int64, error) {
	return r.page(r.db.Where("user_id = ? AND format_id = ?", userID, formatID), "created_at, id", limit, offset)
}

// Update writes every column of the team back
func (r *TeamRepository) Update(team *models.Team) error {
	return r.db.Save(team).Error
}

// Delete removes a team. Deleting a missing team is not an error.
func (r *TeamRepository) Delete(id uuid.UUID) error {
	return r.db.Where("id = ?", id).Delete(&models.Team{}).Error
}

func (r *TeamRepository) page(scope *gorm.DB, order string, limit, offset int) ([]models.Team, int64, error) {
	scope = scope.Model(&models.Team{}).Session(&gorm.Session{})

	var total int64
	if err := scope.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	teams := []models.Team{}
	if total == 0 {
		return teams, 0, nil
	}
	if err := scope.Order(order).Limit(limit).Offset(offset).Find(&teams).Error; err != nil {
		return nil, 0, err
	}
	return teams, total, nil
}
