package services

import (
	"time"

	"gorm.io/gorm"

	apperrors "cashflow/internal/errors"
	"cashflow/internal/game"
	"cashflow/internal/models"
	"cashflow/internal/pagination"
)

// snapshotService handles month-end snapshot operations.
type snapshotService struct {
	db *gorm.DB
}

// NewSnapshotService creates a new SnapshotServicer.
func NewSnapshotService(db *gorm.DB) SnapshotServicer {
	return &snapshotService{db: db}
}

// RecordSnapshot stores the figures of a finished month. A session that
// replays a month after loading an earlier save overwrites that month's row.
func (s *snapshotService) RecordSnapshot(sessionID string, month int, summary game.Summary, recordedAt time.Time) (*models.MonthlySnapshot, error) {
	snapshot := &models.MonthlySnapshot{
		SessionID:     sessionID,
		Month:         month,
		RecordedAt:    recordedAt,
		Cash:          summary.Cash,
		Salary:        summary.Salary,
		FixedExpenses: summary.FixedExpenses,
		PassiveIncome: summary.PassiveIncome,
		NetMonthly:    summary.NetMonthly,
		NetWorth:      summary.NetWorth,
	}

	var existing models.MonthlySnapshot
	result := s.db.Where("session_id = ? AND month = ?", sessionID, month).First(&existing)
	if result.Error == nil {
		if err := s.db.Model(&existing).Updates(map[string]interface{}{
			"recorded_at":    snapshot.RecordedAt,
			"cash":           snapshot.Cash,
			"salary":         snapshot.Salary,
			"fixed_expenses": snapshot.FixedExpenses,
			"passive_income": snapshot.PassiveIncome,
			"net_monthly":    snapshot.NetMonthly,
			"net_worth":      snapshot.NetWorth,
		}).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		snapshot.ID = existing.ID
		return snapshot, nil
	}

	if err := s.db.Create(snapshot).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return snapshot, nil
}

// GetSnapshots returns a session's snapshots, oldest month first.
func (s *snapshotService) GetSnapshots(sessionID string, page pagination.PageRequest) (*pagination.PageResponse[models.MonthlySnapshot], error) {
	query := s.db.Model(&models.MonthlySnapshot{}).Where("session_id = ?", sessionID)
	result, err := pagination.List[models.MonthlySnapshot](query, "month ASC", page)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return result, nil
}
