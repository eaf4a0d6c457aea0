package handlers

import (
	"net/http"
	"strconv"

	"pokehub-backend/internal/auth"
	apperrors "pokehub-backend/internal/errors"
	"pokehub-backend/internal/pokemon"
	"pokehub-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TeamHandler handles HTTP requests for saved teams
type TeamHandler struct {
	teamService service.TeamServiceInterface
}

// NewTeamHandler creates a new team handler
func NewTeamHandler(teamService service.TeamServiceInterface) *TeamHandler {
	return &TeamHandler{
		teamService: teamService,
	}
}

// CreateTeam handles POST /teams
// @Summary Create a new team
// @Description Validate a team against its format and save it for the acting user
// @Tags teams
// @Accept json
// @Produce json
// @Param team body pokemon.Team true "Team data"
// @Success 201 {object} service.TeamResponse "Successfully created team"
// @Failure 400 {object} TeamValidationResponse "Structurally invalid team"
// @Failure 400 {object} FormatLegalityResponse "Team is not legal in its format"
// @Failure 401 {object} map[string]interface{} "Authentication required"
// @Failure 409 {object} map[string]interface{} "Team name already used"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /teams [post]
func (h *TeamHandler) CreateTeam(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		respondError(c, apperrors.ErrUserIDNotFound)
		return
	}

	var team pokemon.Team
	if err := c.ShouldBindJSON(&team); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	resp, err := h.teamService.CreateTeam(c, userID, &team)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// GetTeam handles GET /teams/:id
// @Summary Get team by ID
// @Description Get one of the acting user's teams by its UUID
// @Tags teams
// @Produce json
// @Param id path string true "Team ID (UUID)"
// @Success 200 {object} service.TeamResponse "Successfully retrieved team"
// @Failure 400 {object} map[string]interface{} "Invalid team ID"
// @Failure 403 {object} map[string]interface{} "Team belongs to another user"
// @Failure 404 {object} map[string]interface{} "Team not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /teams/{id} [get]
func (h *TeamHandler) GetTeam(c *gin.Context) {
	userID, id, ok := teamTarget(c)
	if !ok {
		return
	}

	resp, err := h.teamService.GetTeam(c, userID, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ListTeams handles GET /teams
// @Summary List the acting user's teams
// @Description Most recently updated first
// @Tags teams
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.TeamListResponse "Successfully retrieved teams"
// @Failure 401 {object} map[string]interface{} "Authentication required"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /teams [get]
func (h *TeamHandler) ListTeams(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		respondError(c, apperrors.ErrUserIDNotFound)
		return
	}

	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	pageSize, err := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if err != nil || pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	resp, err := h.teamService.GetTeamsByUserID(c, userID, page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// UpdateTeam handles PUT /teams/:id
// @Summary Update a team
// @Description Validate the new team state against its format and replace the stored team
// @Tags teams
// @Accept json
// @Produce json
// @Param id path string true "Team ID (UUID)"
// @Param team body pokemon.Team true "Team data"
// @Success 200 {object} service.TeamResponse "Successfully updated team"
// @Failure 400 {object} FormatLegalityResponse "Invalid or illegal team"
// @Failure 403 {object} map[string]interface{} "Team belongs to another user"
// @Failure 404 {object} map[string]interface{} "Team not found"
// @Failure 409 {object} map[string]interface{} "Team name already used"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /teams/{id} [put]
func (h *TeamHandler) UpdateTeam(c *gin.Context) {
	userID, id, ok := teamTarget(c)
	if !ok {
		return
	}

	var team pokemon.Team
	if err := c.ShouldBindJSON(&team); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	resp, err := h.teamService.UpdateTeam(c, userID, id, &team)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// DeleteTeam handles DELETE /teams/:id
// @Summary Delete a team
// @Tags teams
// @Param id path string true "Team ID (UUID)"
// @Success 204 "Successfully deleted team"
// @Failure 400 {object} map[string]interface{} "Invalid team ID"
// @Failure 403 {object} map[string]interface{} "Team belongs to another user"
// @Failure 404 {object} map[string]interface{} "Team not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /teams/{id} [delete]
func (h *TeamHandler) DeleteTeam(c *gin.Context) {
	userID, id, ok := teamTarget(c)
	if !ok {
		return
	}

	if err := h.teamService.DeleteTeam(c, userID, id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// AuditFormat handles GET /formats/:id/audit
// @Summary Audit your saved teams of a format
// @Description Re-check the caller's saved teams of the format against the current rules and list those that became illegal
// @Tags formats
// @Produce json
// @Param id path string true "Format ID" example(gen9ou)
// @Success 200 {object} service.FormatAuditResponse "Audit result"
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Failure 404 {object} map[string]interface{} "Format not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /formats/{id}/audit [get]
func (h *TeamHandler) AuditFormat(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		respondError(c, apperrors.ErrUserIDNotFound)
		return
	}

	resp, err := h.teamService.AuditFormat(c, userID, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func teamTarget(c *gin.Context) (string, uuid.UUID, bool) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		respondError(c, apperrors.ErrUserIDNotFound)
		return "", uuid.Nil, false
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid team ID"})
		return "", uuid.Nil, false
	}
	return userID, id, true
}
