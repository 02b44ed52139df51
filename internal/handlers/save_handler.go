package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "cashflow/internal/errors"
	"cashflow/internal/pagination"
	"cashflow/internal/services"
)

// SaveHandler handles save slot requests.
type SaveHandler struct {
	saveService  services.SaveServicer
	auditService services.AuditServicer
}

// NewSaveHandler creates a new SaveHandler.
func NewSaveHandler(saveService services.SaveServicer, auditService services.AuditServicer) *SaveHandler {
	return &SaveHandler{saveService: saveService, auditService: auditService}
}

// CreateSaveRequest represents the request payload for storing a save slot.
type CreateSaveRequest struct {
	Name string `json:"name" binding:"required,save_name"`
}

// CreateSave handles storing the session's game in a save slot.
// @Summary     Save game
// @Description Store the session's current game under a name
// @Tags        saves
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateSaveRequest true "Slot name"
// @Success     201 {object} models.SaveSlot "Save slot created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /game/saves [post]
func (h *SaveHandler) CreateSave(c *gin.Context) {
	sessionID, err := getSessionID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateSaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	slot, err := h.saveService.CreateSave(sessionID, req.Name)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(sessionID, services.AuditCreateSave, c.ClientIP(),
		map[string]interface{}{"save_id": slot.ID, "name": slot.Name, "month": slot.Month})

	c.JSON(http.StatusCreated, gin.H{"save": slot})
}

// GetSaves handles listing the session's save slots.
// @Summary     List saves
// @Description Get a paginated list of the session's save slots, newest first
// @Tags        saves
// @Produce     json
// @Security    BearerAuth
// @Param       page      query int false "Page number (default 1)"
// @Param       page_size query int false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.SaveSlot] "Paginated saves"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /game/saves [get]
func (h *SaveHandler) GetSaves(c *gin.Context) {
	sessionID, err := getSessionID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	result, err := h.saveService.GetSaves(sessionID, page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// LoadSave handles replacing the session's game with a save slot.
// @Summary     Load save
// @Description Replace the session's game with the one stored in the slot
// @Tags        saves
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Save slot ID"
// @Success     200 {object} services.GameView "Game view"
// @Failure     400 {object} ErrorResponse "Invalid input or malformed save"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Save not found"
// @Router      /game/saves/{id}/load [post]
func (h *SaveHandler) LoadSave(c *gin.Context) {
	sessionID, err := getSessionID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	saveID, err := parsePathUUID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	view, err := h.saveService.LoadSave(sessionID, saveID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(sessionID, services.AuditLoadSave, c.ClientIP(),
		map[string]interface{}{"save_id": saveID, "month": view.Month})

	c.JSON(http.StatusOK, gin.H{"game": view})
}
