package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"pokehub-backend/internal/api/middleware"
	apperrors "pokehub-backend/internal/errors"
	"pokehub-backend/internal/formats"
	"pokehub-backend/internal/logger"
	"pokehub-backend/internal/pokemon"
	"pokehub-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// Live message statuses.
const (
	LiveStatusLoading   = "loading"
	LiveStatusReady     = "ready"
	LiveStatusReport    = "report"
	LiveStatusError     = "error"
	LiveStatusThrottled = "throttled"
)

const (
	liveReadLimit    = 64 << 10
	liveWriteTimeout = 10 * time.Second
	liveIdleTimeout  = 5 * time.Minute
)

// LiveMessage is one server frame on the live validation socket.
type LiveMessage struct {
	Status string                      `json:"status"`
	Cached bool                        `json:"cached,omitempty"`
	Report *service.ValidationResponse `json:"report,omitempty"`
	Error  string                      `json:"error,omitempty"`
}

// ValidationHandler serves the live team editor
type ValidationHandler struct {
	validationService service.ValidationServiceInterface
	limiter           *middleware.ClientLimiter
	upgrader          websocket.Upgrader
}

// NewValidationHandler creates a new validation handler. limiter throttles
// frames on the live socket and may be nil. Origins follow the CORS list; an
// empty list or "*" accepts any origin.
func NewValidationHandler(validationService service.ValidationServiceInterface, limiter *middleware.ClientLimiter, allowedOrigins []string) *ValidationHandler {
	h := &ValidationHandler{
		validationService: validationService,
		limiter:           limiter,
	}
	h.upgrader = websocket.Upgrader{
		ReadBufferSize:  4096,
		WriteBufferSize: 4096,
		CheckOrigin:     originChecker(allowedOrigins),
	}
	return h
}

// ValidateTeam handles POST /teams/validate
// @Summary Validate a team
// @Description Run structural and format validation and return the merged report. Invalid teams are a normal 200 outcome.
// @Tags validation
// @Accept json
// @Produce json
// @Param team body pokemon.Team true "Team state"
// @Success 200 {object} service.ValidationResponse "Validation report"
// @Failure 400 {object} map[string]interface{} "Body is not a team"
// @Failure 429 {object} map[string]interface{} "Too many requests"
// @Failure 500 {object} map[string]interface{} "Format rules are unavailable"
// @Router /teams/validate [post]
func (h *ValidationHandler) ValidateTeam(c *gin.Context) {
	var team pokemon.Team
	if err := c.ShouldBindJSON(&team); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	resp, err := h.validationService.Validate(c, &team)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// LiveValidation handles GET /teams/validate/live
// @Summary Live validation socket
// @Description Upgrades to a websocket. Each inbound frame is a team state; each outbound frame is a LiveMessage. While the rule table loads the first frame is {"status":"loading"}, followed by {"status":"ready"}.
// @Tags validation
// @Success 101 "Switching protocols"
// @Router /teams/validate/live [get]
func (h *ValidationHandler) LiveValidation(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logger.WithContext(c).WithError(err).Warn("Live validation upgrade failed")
		return
	}
	defer conn.Close()

	log := logger.WithContext(c)
	ctx := c.Request.Context()
	key := middleware.ClientKey(c)

	conn.SetReadLimit(liveReadLimit)

	if h.validationService.State() != formats.StateReady {
		if err := h.write(conn, LiveMessage{Status: LiveStatusLoading}); err != nil {
			return
		}
		if err := h.validationService.Preload(ctx); err != nil {
			log.WithError(err).Error("Format rules failed to load for live session")
			h.write(conn, LiveMessage{Status: LiveStatusError, Error: "Format rules are unavailable"})
			return
		}
	}
	if err := h.write(conn, LiveMessage{Status: LiveStatusReady}); err != nil {
		return
	}

	session := h.validationService.NewSession()
	for {
		conn.SetReadDeadline(time.Now().Add(liveIdleTimeout))
		_, payload, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.WithError(err).Debug("Live validation socket closed")
			}
			return
		}

		msg := h.handleFrame(ctx, session, key, payload)
		if err := h.write(conn, msg); err != nil {
			return
		}
	}
}

func (h *ValidationHandler) handleFrame(ctx context.Context, session service.LiveSession, key string, payload []byte) LiveMessage {
	if h.limiter != nil && !h.limiter.Allow(key) {
		return LiveMessage{Status: LiveStatusThrottled}
	}

	var team pokemon.Team
	if err := json.Unmarshal(payload, &team); err != nil {
		return LiveMessage{Status: LiveStatusError, Error: "invalid team payload"}
	}

	resp, cached, err := session.Validate(ctx, &team)
	if err != nil {
		if apperrors.IsConfiguration(err) {
			return LiveMessage{Status: LiveStatusError, Error: "Format rules are unavailable"}
		}
		return LiveMessage{Status: LiveStatusError, Error: "validation failed"}
	}
	return LiveMessage{Status: LiveStatusReport, Cached: cached, Report: resp}
}

func (h *ValidationHandler) write(conn *websocket.Conn, msg LiveMessage) error {
	conn.SetWriteDeadline(time.Now().Add(liveWriteTimeout))
	return conn.WriteJSON(msg)
}

func originChecker(allowed []string) func(r *http.Request) bool {
	set := make(map[string]struct{}, len(allowed))
	allowAll := len(allowed) == 0
	for _, origin := range allowed {
		if origin == "*" {
			allowAll = true
		}
		set[origin] = struct{}{}
	}

	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" || allowAll {
			return true
		}
		_, ok := set[origin]
		return ok
	}
}
