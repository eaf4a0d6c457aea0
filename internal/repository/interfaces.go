package repository

import (
	"pokehub-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// TeamRepositoryInterface defines the interface for team repository operations
type TeamRepositoryInterface interface {
	Create(team *models.Team) error
	GetByID(id uuid.UUID) (*models.Team, error)
	GetByName(userID, name string) (*models.Team, error)
	GetByUserID(userID string, limit, offset int) ([]models.Team, int64, error)
	GetByFormatID(userID, formatID string, limit, offset int) ([]models.Team, int64, error)
	Update(team *models.Team) error
	Delete(id uuid.UUID) error
}

var _ TeamRepositoryInterface = (*TeamRepository)(nil)
