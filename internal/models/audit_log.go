package models

// AuditLog records notable game session operations.
type AuditLog struct {
	Base
	SessionID string `gorm:"type:uuid;not null;index" json:"session_id"`
	Action    string `gorm:"not null" json:"action"`
	IPAddress string `json:"ip_address"`
	Detail    string `json:"detail,omitempty"`
}
