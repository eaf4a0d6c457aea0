package handlers

import (
	"net/http"

	"pokehub-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// FormatHandler serves the format catalogue
type FormatHandler struct {
	validationService service.ValidationServiceInterface
}

// NewFormatHandler creates a new format handler
func NewFormatHandler(validationService service.ValidationServiceInterface) *FormatHandler {
	return &FormatHandler{validationService: validationService}
}

// ListFormats handles GET /formats
// @Summary List formats
// @Description List every format of the rule table with its clauses and level cap
// @Tags formats
// @Produce json
// @Success 200 {array} service.FormatResponse "Formats sorted by id"
// @Failure 500 {object} map[string]interface{} "Format rules are unavailable"
// @Router /formats [get]
func (h *FormatHandler) ListFormats(c *gin.Context) {
	list, err := h.validationService.ListFormats(c)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, list)
}

// GetFormat handles GET /formats/:id
// @Summary Get format by ID
// @Description Describe one format including the species usable in it
// @Tags formats
// @Produce json
// @Param id path string true "Format ID" example(gen9ou)
// @Success 200 {object} service.FormatDetailResponse "Format details"
// @Failure 404 {object} map[string]interface{} "Format not found"
// @Failure 500 {object} map[string]interface{} "Format rules are unavailable"
// @Router /formats/{id} [get]
func (h *FormatHandler) GetFormat(c *gin.Context) {
	detail, err := h.validationService.GetFormat(c, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, detail)
}
