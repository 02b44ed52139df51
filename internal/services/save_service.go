package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	apperrors "cashflow/internal/errors"
	"cashflow/internal/game"
	"cashflow/internal/logger"
	"cashflow/internal/models"
	"cashflow/internal/pagination"
)

// saveService stores session games as save slots.
type saveService struct {
	db      *gorm.DB
	store   *SessionStore
	logTail int
}

// NewSaveService creates a new SaveServicer.
func NewSaveService(db *gorm.DB, store *SessionStore, logTail int) SaveServicer {
	return &saveService{db: db, store: store, logTail: logTail}
}

// CreateSave stores the session's current game under name.
func (s *saveService) CreateSave(sessionID, name string) (*models.SaveSlot, error) {
	var slot *models.SaveSlot
	err := s.store.do(sessionID, func(sess *session) error {
		data, err := game.Serialize(sess.state)
		if err != nil {
			return err
		}
		sum := sess.state.Summarize()
		slot = &models.SaveSlot{
			SessionID:     sessionID,
			Name:          name,
			RoleID:        sess.state.RoleID,
			RoleName:      sess.state.RoleName,
			Month:         sess.state.Month,
			Cash:          sum.Cash,
			PassiveIncome: sum.PassiveIncome,
			FixedExpenses: sum.FixedExpenses,
			Won:           sess.won,
			Payload:       string(data),
		}
		if err := s.db.Create(slot).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.ForSession(sessionID).Infow("game saved", "save_id", slot.ID, "name", name, "month", slot.Month)
	return slot, nil
}

// GetSaves returns the session's save slots, newest first.
func (s *saveService) GetSaves(sessionID string, page pagination.PageRequest) (*pagination.PageResponse[models.SaveSlot], error) {
	query := s.db.Model(&models.SaveSlot{}).Where("session_id = ?", sessionID)
	result, err := pagination.List[models.SaveSlot](query, "created_at DESC", page)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return result, nil
}

// LoadSave replaces the session's game with the one stored in the slot.
// Slots belonging to other sessions are reported as not found.
func (s *saveService) LoadSave(sessionID, saveID string) (*GameView, error) {
	var slot models.SaveSlot
	if err := s.db.Where("id = ? AND session_id = ?", saveID, sessionID).First(&slot).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.WithMessage(apperrors.ErrSaveNotFound, fmt.Sprintf("Save slot %s not found", saveID))
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	state, err := game.Deserialize([]byte(slot.Payload))
	if err != nil {
		return nil, err
	}

	var view *GameView
	err = s.store.do(sessionID, func(sess *session) error {
		sess.replace(state)
		view = buildView(sess, s.logTail)
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.ForSession(sessionID).Infow("game loaded", "save_id", slot.ID, "month", state.Month)
	return view, nil
}
