package testutil_test

import (
	"testing"

	"cashflow/internal/errors"
	"cashflow/internal/game"
	"cashflow/internal/models"
	"cashflow/internal/testutil"
)

func TestSetupTestDB(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	// Verify all tables exist by doing a simple count query on each model.
	var count int64
	for _, table := range []string{"save_slots", "monthly_snapshots", "audit_logs"} {
		if err := db.Table(table).Count(&count).Error; err != nil {
			t.Errorf("table %q should exist after migration: %v", table, err)
		}
	}
}

func TestSetupTestDBIsolated(t *testing.T) {
	a := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, a)
	b := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, b)

	testutil.CreateTestSnapshot(t, a, testutil.NewSessionID(), 1, 100)

	var count int64
	b.Model(&models.MonthlySnapshot{}).Count(&count)
	if count != 0 {
		t.Errorf("expected separate databases, found %d rows", count)
	}
}

func TestFixtures(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	state := testutil.NewTestGame(t, "clerk")
	if state.Cash != 100000 {
		t.Errorf("expected starting cash 100000, got %d", state.Cash)
	}

	sessionID := testutil.NewSessionID()
	slot := testutil.CreateTestSaveSlot(t, db, sessionID, state)
	if slot.ID == "" {
		t.Fatal("save slot should have an ID")
	}
	if _, err := game.Deserialize([]byte(slot.Payload)); err != nil {
		t.Errorf("save slot payload should deserialize: %v", err)
	}

	snap := testutil.CreateTestSnapshot(t, db, sessionID, 3, 5000)
	if snap.ID == "" || snap.Month != 3 {
		t.Errorf("unexpected snapshot: %+v", snap)
	}
}

func TestAssertAppError(t *testing.T) {
	err := errors.WithMessage(errors.ErrSaveNotFound, "custom message")
	testutil.AssertAppError(t, err, "SAVE_NOT_FOUND")
}

func TestAssertNoError(t *testing.T) {
	testutil.AssertNoError(t, nil)
}
