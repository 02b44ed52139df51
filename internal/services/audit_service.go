package services

import (
	"encoding/json"

	"cashflow/internal/logger"
	"cashflow/internal/models"

	"gorm.io/gorm"
)

// Audit actions recorded for game sessions.
const (
	AuditStartGame     = "START_GAME"
	AuditImportGame    = "IMPORT_GAME"
	AuditPurchaseOffer = "PURCHASE_OFFER"
	AuditEndMonth      = "END_MONTH"
	AuditResetGame     = "RESET_GAME"
	AuditCreateSave    = "CREATE_SAVE"
	AuditLoadSave      = "LOAD_SAVE"
)

// auditService handles audit log recording.
type auditService struct {
	db *gorm.DB
}

// NewAuditService creates a new AuditServicer.
func NewAuditService(db *gorm.DB) AuditServicer {
	return &auditService{db: db}
}

// Log records an audit event. Errors are logged but never propagate
// to avoid disrupting the main operation.
func (s *auditService) Log(sessionID, action, ipAddress string, detail map[string]any) {
	var detailJSON string
	if detail != nil {
		data, err := json.Marshal(detail)
		if err != nil {
			logger.Get().Errorw("failed to marshal audit log detail", "error", err, "action", action)
			detailJSON = "{}"
		} else {
			detailJSON = string(data)
		}
	}

	entry := &models.AuditLog{
		SessionID: sessionID,
		Action:    action,
		IPAddress: ipAddress,
		Detail:    detailJSON,
	}

	if err := s.db.Create(entry).Error; err != nil {
		logger.ForSession(sessionID).Errorw("failed to create audit log entry",
			"error", err,
			"action", action,
		)
	}
}
