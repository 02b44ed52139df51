package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "cashflow/internal/errors"
	"cashflow/internal/middleware"
	"cashflow/internal/services"
)

const (
	defaultLogLimit = 50
	maxImportBytes  = 4 << 20
)

// GameHandler handles game session requests.
type GameHandler struct {
	gameService  services.GameServicer
	auditService services.AuditServicer
	tokens       *middleware.SessionTokens
}

// NewGameHandler creates a new GameHandler.
func NewGameHandler(gameService services.GameServicer, auditService services.AuditServicer, tokens *middleware.SessionTokens) *GameHandler {
	return &GameHandler{gameService: gameService, auditService: auditService, tokens: tokens}
}

// CreateGameRequest represents the request payload for starting a game.
type CreateGameRequest struct {
	RoleID string `json:"role_id" binding:"required,max=64"`
	Seed   *int64 `json:"seed"`
}

// ResetGameRequest represents the optional payload for resetting a game.
type ResetGameRequest struct {
	RoleID string `json:"role_id" binding:"omitempty,max=64"`
	Seed   *int64 `json:"seed"`
}

// LogQuery holds the query parameters of the log endpoint.
type LogQuery struct {
	Limit *int `form:"limit" binding:"omitempty,min=0,max=1000"`
}

// SessionResponse carries the token that authorizes requests for a session.
type SessionResponse struct {
	SessionID string    `json:"session_id"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// CreateGameResponse is returned when a new session is started.
type CreateGameResponse struct {
	Session SessionResponse    `json:"session"`
	Game    *services.GameView `json:"game"`
}

// CreateGame handles starting a new game session.
// @Summary     Start a game
// @Description Start a new game with the chosen role and return a session token
// @Tags        games
// @Accept      json
// @Produce     json
// @Param       request body CreateGameRequest true "Role and optional seed"
// @Success     201 {object} CreateGameResponse "Game started"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Role not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /games [post]
func (h *GameHandler) CreateGame(c *gin.Context) {
	var req CreateGameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	view, err := h.gameService.NewGame(req.RoleID, req.Seed)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.respondWithSession(c, view, services.AuditStartGame, map[string]interface{}{"role_id": view.RoleID})
}

// ImportGame handles starting a session from an exported save.
// @Summary     Import a game
// @Description Start a new session from a previously exported save file
// @Tags        games
// @Accept      json
// @Produce     json
// @Param       request body object true "Save file"
// @Success     201 {object} CreateGameResponse "Game imported"
// @Failure     400 {object} ErrorResponse "Malformed save"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /games/import [post]
func (h *GameHandler) ImportGame(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxImportBytes)
	data, err := c.GetRawData()
	if err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "Could not read save file"))
		return
	}

	view, err := h.gameService.ImportGame(data)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.respondWithSession(c, view, services.AuditImportGame, map[string]interface{}{"role_id": view.RoleID, "month": view.Month})
}

func (h *GameHandler) respondWithSession(c *gin.Context, view *services.GameView, action string, detail map[string]interface{}) {
	token, expiresAt, err := h.tokens.Generate(view.SessionID)
	if err != nil {
		respondWithError(c, apperrors.Wrap(apperrors.ErrInternalServer, err))
		return
	}

	h.auditService.Log(view.SessionID, action, c.ClientIP(), detail)

	c.JSON(http.StatusCreated, CreateGameResponse{
		Session: SessionResponse{SessionID: view.SessionID, Token: token, ExpiresAt: expiresAt},
		Game:    view,
	})
}

// GetGame handles fetching the full view of the session's game.
// @Summary     Get game
// @Description Get the phase, figures, event, offers, portfolio and recent log of the session's game
// @Tags        game
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} services.GameView "Game view"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Session not found"
// @Router      /game [get]
func (h *GameHandler) GetGame(c *gin.Context) {
	sessionID, err := getSessionID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	view, err := h.gameService.GetGame(sessionID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"game": view})
}

// GetSummary handles fetching the session's financial summary.
// @Summary     Get summary
// @Description Get cash, monthly figures, net monthly cash flow and win state
// @Tags        game
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} services.SummaryView "Summary"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Session not found"
// @Router      /game/summary [get]
func (h *GameHandler) GetSummary(c *gin.Context) {
	sessionID, err := getSessionID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	summary, err := h.gameService.GetSummary(sessionID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"summary": summary})
}

// GetLog handles fetching the tail of the game log.
// @Summary     Get log
// @Description Get the most recent log lines, oldest first
// @Tags        game
// @Produce     json
// @Security    BearerAuth
// @Param       limit query int false "Number of lines (default 50, max 1000)"
// @Success     200 {object} map[string][]string "Log lines"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /game/log [get]
func (h *GameHandler) GetLog(c *gin.Context) {
	sessionID, err := getSessionID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var q LogQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}
	limit := defaultLogLimit
	if q.Limit != nil {
		limit = *q.Limit
	}

	lines, err := h.gameService.GetLog(sessionID, limit)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"log": lines})
}

// BeginMonth handles starting the next month.
// @Summary     Start month
// @Description Collect income, pay fixed expenses, draw and apply this month's event and draw offers
// @Tags        game
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} services.GameView "Game view"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     409 {object} ErrorResponse "Wrong phase, empty deck or game over"
// @Router      /game/month/start [post]
func (h *GameHandler) BeginMonth(c *gin.Context) {
	sessionID, err := getSessionID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	view, err := h.gameService.BeginMonth(sessionID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"game": view})
}

// PurchaseOffer handles buying one of this month's offers.
// @Summary     Purchase offer
// @Description Buy the offer candidate at the given index
// @Tags        game
// @Produce     json
// @Security    BearerAuth
// @Param       index path int true "Offer index"
// @Success     200 {object} services.PurchaseResult "Purchased"
// @Failure     400 {object} ErrorResponse "Insufficient funds or offer not offered"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     409 {object} ErrorResponse "Wrong phase or game over"
// @Router      /game/offers/{index}/purchase [post]
func (h *GameHandler) PurchaseOffer(c *gin.Context) {
	sessionID, err := getSessionID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	index, err := parsePathIndex(c, "index")
	if err != nil {
		respondWithError(c, err)
		return
	}

	result, err := h.gameService.PurchaseOffer(sessionID, index)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(sessionID, services.AuditPurchaseOffer, c.ClientIP(), map[string]interface{}{
		"offer_id":     result.Item.ID,
		"down_payment": result.Item.DownPayment,
		"month":        result.Game.Month,
	})

	c.JSON(http.StatusOK, result)
}

// DeclineOffers handles passing on this month's offers.
// @Summary     Decline offers
// @Description Pass on the remaining offers of this month
// @Tags        game
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} services.GameView "Game view"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     409 {object} ErrorResponse "Wrong phase or game over"
// @Router      /game/offers/decline [post]
func (h *GameHandler) DeclineOffers(c *gin.Context) {
	sessionID, err := getSessionID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	view, err := h.gameService.DeclineOffers(sessionID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"game": view})
}

// EndMonth handles closing the month in progress.
// @Summary     End month
// @Description Close the month in progress and record a month-end snapshot
// @Tags        game
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} services.GameView "Game view"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     409 {object} ErrorResponse "No month in progress or game over"
// @Router      /game/month/end [post]
func (h *GameHandler) EndMonth(c *gin.Context) {
	sessionID, err := getSessionID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	view, err := h.gameService.EndMonth(sessionID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(sessionID, services.AuditEndMonth, c.ClientIP(), map[string]interface{}{
		"month": view.Month - 1,
		"cash":  view.Summary.Cash,
		"won":   view.Won,
	})

	c.JSON(http.StatusOK, gin.H{"game": view})
}

// ResetGame handles replacing the session's game with a fresh one.
// @Summary     Reset game
// @Description Start over in the same session, optionally with another role or seed
// @Tags        game
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body ResetGameRequest false "Optional role and seed"
// @Success     200 {object} services.GameView "Game view"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Role not found"
// @Router      /game/reset [post]
func (h *GameHandler) ResetGame(c *gin.Context) {
	sessionID, err := getSessionID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req ResetGameRequest
	if err := bindOptionalJSON(c, &req); err != nil {
		respondWithError(c, err)
		return
	}

	view, err := h.gameService.ResetGame(sessionID, req.RoleID, req.Seed)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(sessionID, services.AuditResetGame, c.ClientIP(), map[string]interface{}{"role_id": view.RoleID})

	c.JSON(http.StatusOK, gin.H{"game": view})
}

// ExportGame handles downloading the session's game as a save file.
// @Summary     Export game
// @Description Download the session's game as a JSON save file
// @Tags        game
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} object "Save file"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Session not found"
// @Router      /game/export [get]
func (h *GameHandler) ExportGame(c *gin.Context) {
	sessionID, err := getSessionID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	data, err := h.gameService.ExportGame(sessionID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="cashflow-%s.json"`, sessionID))
	c.Data(http.StatusOK, "application/json", data)
}
