package models

import (
	"time"

	"cashflow/internal/uuid"

	"gorm.io/gorm"
)

// MonthlySnapshot records a session's figures at the end of a month.
// This is immutable time-series data, with no Base embed and no soft deletes.
type MonthlySnapshot struct {
	ID            string    `gorm:"type:uuid;primaryKey" json:"id"`
	SessionID     string    `gorm:"type:uuid;not null;index:idx_snapshot_session_month" json:"session_id"`
	Month         int       `gorm:"not null;index:idx_snapshot_session_month" json:"month"`
	RecordedAt    time.Time `gorm:"not null" json:"recorded_at"`
	Cash          int64     `gorm:"type:bigint;not null" json:"cash"`
	Salary        int64     `gorm:"type:bigint;not null" json:"salary"`
	FixedExpenses int64     `gorm:"type:bigint;not null" json:"fixed_expenses"`
	PassiveIncome int64     `gorm:"type:bigint;not null" json:"passive_income"`
	NetMonthly    int64     `gorm:"type:bigint;not null" json:"net_monthly"`
	NetWorth      int64     `gorm:"type:bigint;not null" json:"net_worth"`
}

// BeforeCreate hook generates a UUIDv7 for new records
func (s *MonthlySnapshot) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.New()
	}
	return nil
}
