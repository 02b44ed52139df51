package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "cashflow/internal/errors"
	"cashflow/internal/pagination"
	"cashflow/internal/services"
)

// SnapshotHandler handles month-end snapshot requests.
type SnapshotHandler struct {
	snapshotService services.SnapshotServicer
}

// NewSnapshotHandler creates a new SnapshotHandler.
func NewSnapshotHandler(snapshotService services.SnapshotServicer) *SnapshotHandler {
	return &SnapshotHandler{snapshotService: snapshotService}
}

// GetSnapshots handles listing the session's month-end snapshots.
// @Summary     List snapshots
// @Description Get the session's month-end figures, oldest month first
// @Tags        game
// @Produce     json
// @Security    BearerAuth
// @Param       page      query int false "Page number (default 1)"
// @Param       page_size query int false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.MonthlySnapshot] "Paginated snapshots"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /game/snapshots [get]
func (h *SnapshotHandler) GetSnapshots(c *gin.Context) {
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

	result, err := h.snapshotService.GetSnapshots(sessionID, page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
