package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"

	"cashflow/internal/catalog"
	"cashflow/internal/game"
	"cashflow/internal/models"
	"cashflow/internal/uuid"

	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// TestCatalog returns a small catalog whose draws are fully predictable:
// a single offer and a single event with no effect.
//
// The "clerk" role nets 50,000 a month and can afford the offer from the
// first month. The "collector" role wins by buying the offer once.
func TestCatalog() *catalog.Catalog {
	return &catalog.Catalog{
		Roles: []game.Role{
			{ID: "clerk", Name: "Clerk", Salary: 300000, FixedExpenses: 250000, StartingCash: 100000},
			{ID: "collector", Name: "Collector", Salary: 100000, FixedExpenses: 40000, StartingCash: 100000, StartingPassiveIncome: 20000},
		},
		Offers: []game.OfferCard{
			{ID: "index_fund", Name: "Index Fund", Kind: game.OfferKindInvestment, DownPayment: 50000, PassiveIncomeDelta: 20000, NetWorthDelta: 50000},
		},
		Events: []game.EventCard{
			{ID: "quiet", Name: "Quiet Month"},
		},
	}
}

// NewTestGame starts a game for roleID from TestCatalog with a fixed seed.
func NewTestGame(t *testing.T, roleID string) *game.State {
	t.Helper()

	c := TestCatalog()
	seed := int64(42)
	state, err := game.NewGame(c.Roles, roleID, c.Offers, c.Events, &seed)
	if err != nil {
		t.Fatalf("failed to start test game: %v", err)
	}
	return state
}

// CreateTestSaveSlot stores state as a save slot for sessionID.
func CreateTestSaveSlot(t *testing.T, db *gorm.DB, sessionID string, state *game.State) *models.SaveSlot {
	t.Helper()

	data, err := game.Serialize(state)
	if err != nil {
		t.Fatalf("failed to serialize test game: %v", err)
	}
	sum := state.Summarize()
	slot := &models.SaveSlot{
		SessionID:     sessionID,
		Name:          fmt.Sprintf("slot %d", nextID()),
		RoleID:        state.RoleID,
		RoleName:      state.RoleName,
		Month:         state.Month,
		Cash:          sum.Cash,
		PassiveIncome: sum.PassiveIncome,
		FixedExpenses: sum.FixedExpenses,
		Won:           state.CheckWin(),
		Payload:       string(data),
	}
	if err := db.Create(slot).Error; err != nil {
		t.Fatalf("failed to create test save slot: %v", err)
	}
	return slot
}

// CreateTestSnapshot stores a month-end snapshot for sessionID.
func CreateTestSnapshot(t *testing.T, db *gorm.DB, sessionID string, month int, cash int64) *models.MonthlySnapshot {
	t.Helper()

	snap := &models.MonthlySnapshot{
		SessionID: sessionID,
		Month:     month,
		Cash:      cash,
	}
	if err := db.Create(snap).Error; err != nil {
		t.Fatalf("failed to create test snapshot: %v", err)
	}
	return snap
}

// NewSessionID returns a fresh session id.
func NewSessionID() string {
	return uuid.New()
}
