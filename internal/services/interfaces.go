package services

import (
	"time"

	"cashflow/internal/catalog"
	"cashflow/internal/game"
	"cashflow/internal/models"
	"cashflow/internal/pagination"
)

// EventView is the current month's event with a readable effect line.
type EventView struct {
	game.EventCard
	Effect string `json:"effect"`
}

// OfferView is one of the current month's offer candidates.
type OfferView struct {
	game.OfferCard
	Index      int    `json:"index"`
	KindLabel  string `json:"kind_label"`
	Affordable bool   `json:"affordable"`
}

// GameView is everything a client needs to render a session.
type GameView struct {
	SessionID string               `json:"session_id"`
	RoleID    string               `json:"role_id"`
	RoleName  string               `json:"role_name"`
	Month     int                  `json:"month"`
	Phase     game.Phase           `json:"phase"`
	Summary   game.Summary         `json:"summary"`
	Won       bool                 `json:"won"`
	Event     *EventView           `json:"event"`
	Offers    []OfferView          `json:"offers"`
	Portfolio []game.PortfolioItem `json:"portfolio"`
	Log       []string             `json:"log"`
}

// SummaryView is the financial summary of a session together with its win state.
type SummaryView struct {
	game.Summary
	Month int  `json:"month"`
	Won   bool `json:"won"`
}

// PurchaseResult is the outcome of buying one of the month's offers.
type PurchaseResult struct {
	Item game.PortfolioItem `json:"item"`
	Game *GameView          `json:"game"`
}

// GameServicer defines the contract for running game sessions.
type GameServicer interface {
	NewGame(roleID string, seed *int64) (*GameView, error)
	ImportGame(data []byte) (*GameView, error)
	GetGame(sessionID string) (*GameView, error)
	GetSummary(sessionID string) (*SummaryView, error)
	GetLog(sessionID string, limit int) ([]string, error)
	BeginMonth(sessionID string) (*GameView, error)
	PurchaseOffer(sessionID string, index int) (*PurchaseResult, error)
	DeclineOffers(sessionID string) (*GameView, error)
	EndMonth(sessionID string) (*GameView, error)
	ResetGame(sessionID, roleID string, seed *int64) (*GameView, error)
	ExportGame(sessionID string) ([]byte, error)
}

// CatalogServicer defines the contract for the card catalog used by new games.
type CatalogServicer interface {
	Current() *catalog.Catalog
	Reload() (*catalog.Catalog, error)
}

// SaveServicer defines the contract for stored save slots.
type SaveServicer interface {
	CreateSave(sessionID, name string) (*models.SaveSlot, error)
	GetSaves(sessionID string, page pagination.PageRequest) (*pagination.PageResponse[models.SaveSlot], error)
	LoadSave(sessionID, saveID string) (*GameView, error)
}

// SnapshotServicer defines the contract for month-end snapshots.
type SnapshotServicer interface {
	RecordSnapshot(sessionID string, month int, summary game.Summary, recordedAt time.Time) (*models.MonthlySnapshot, error)
	GetSnapshots(sessionID string, page pagination.PageRequest) (*pagination.PageResponse[models.MonthlySnapshot], error)
}

// AuditServicer defines the contract for audit logging.
type AuditServicer interface {
	Log(sessionID, action, ipAddress string, detail map[string]interface{})
}
