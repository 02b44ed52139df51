package models

import (
	"time"

	"gorm.io/gorm"

	"cashflow/internal/uuid"
)

// Base holds the id and bookkeeping columns of save slots and audit
// entries. Rows are soft-deleted through DeletedAt.
type Base struct {
	ID        string         `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

// BeforeCreate assigns a time-ordered id to records created without one.
func (b *Base) BeforeCreate(_ *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.New()
	}
	return nil
}
