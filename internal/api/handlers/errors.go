package handlers

import (
	"errors"
	"net/http"
	"strconv"

	apperrors "pokehub-backend/internal/errors"
	"pokehub-backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// TeamValidationResponse is the 400 body for a structurally invalid team
type TeamValidationResponse struct {
	Message string                     `json:"message" example:"Team validation failed"`
	Errors  []apperrors.FieldViolation `json:"errors"`
}

// FormatLegalityResponse is the 400 body for a team that is illegal in its
// format. PokemonErrors is keyed by slot and lists only slots with errors.
type FormatLegalityResponse struct {
	Message       string              `json:"message" example:"Team is not legal in gen9ou"`
	FormatID      string              `json:"formatId" example:"gen9ou"`
	Errors        []string            `json:"errors"`
	PokemonErrors map[string][]string `json:"pokemonErrors"`
}

// respondError maps service errors onto HTTP responses. Configuration
// errors are operator faults: logged in full, reported generically.
func respondError(c *gin.Context, err error) {
	var teamErr *apperrors.TeamValidationError
	var legalityErr *apperrors.FormatLegalityError

	switch {
	case errors.As(err, &teamErr):
		c.JSON(http.StatusBadRequest, TeamValidationResponse{
			Message: "Team validation failed",
			Errors:  teamErr.Fields,
		})
	case errors.As(err, &legalityErr):
		pokemonErrors := make(map[string][]string, len(legalityErr.PokemonErrors))
		for slot, errs := range legalityErr.PokemonErrors {
			pokemonErrors[strconv.Itoa(slot)] = errs
		}
		c.JSON(http.StatusBadRequest, FormatLegalityResponse{
			Message:       "Team is not legal in " + legalityErr.FormatID,
			FormatID:      legalityErr.FormatID,
			Errors:        legalityErr.Errors,
			PokemonErrors: pokemonErrors,
		})
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case apperrors.IsAlreadyExists(err):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case apperrors.IsAuthentication(err):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case apperrors.IsAuthorization(err):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case apperrors.IsConfiguration(err):
		logger.WithContext(c).WithError(err).Error("Format configuration error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Format rules are unavailable"})
	default:
		logger.WithContext(c).WithError(err).Error("Request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
