package router

import (
	"net/http"
	"testing"

	"cashflow/internal/models"
	"cashflow/internal/services"
)

func TestGameFlow_MonthCycleWithPurchase(t *testing.T) {
	app := setupApp(t)
	token, sessionID := app.startGame(t, "clerk")

	// Step 1: Open month 1: 100,000 + 300,000 salary - 250,000 expenses
	g := gameOf(t, app.request("POST", "/api/v1/game/month/start", "", token))
	if g["phase"] != "offers_pending" {
		t.Fatalf("expected offers_pending, got %v", g["phase"])
	}
	summary := g["summary"].(map[string]interface{})
	if summary["cash"] != float64(150000) {
		t.Errorf("expected cash 150000, got %v", summary["cash"])
	}
	offers := g["offers"].([]interface{})
	if len(offers) == 0 {
		t.Fatal("expected offers")
	}

	// Step 2: Buy the first offer
	rec := app.request("POST", "/api/v1/game/offers/0/purchase", "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	if result["item"].(map[string]interface{})["id"] != "index_fund" {
		t.Errorf("unexpected item: %v", result["item"])
	}

	// Step 3: Close the month
	app.request("POST", "/api/v1/game/offers/decline", "", token)
	g = gameOf(t, app.request("POST", "/api/v1/game/month/end", "", token))
	if g["month"] != float64(2) || g["phase"] != "awaiting_month_start" {
		t.Errorf("expected month 2 awaiting start, got month %v phase %v", g["month"], g["phase"])
	}

	// Step 4: The closed month was snapshotted
	rec = app.request("GET", "/api/v1/game/snapshots", "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	snaps := parseJSON(t, rec)["data"].([]interface{})
	if len(snaps) != 1 {
		t.Fatalf("expected 1 snapshot, got %d", len(snaps))
	}
	snap := snaps[0].(map[string]interface{})
	if snap["month"] != float64(1) || snap["cash"] != float64(100000) || snap["passive_income"] != float64(20000) {
		t.Errorf("unexpected snapshot: %v", snap)
	}

	// Step 5: Summary reflects the purchase
	rec = app.request("GET", "/api/v1/game/summary", "", token)
	s := parseJSON(t, rec)["summary"].(map[string]interface{})
	if s["net_monthly"] != float64(70000) || s["won"] != false {
		t.Errorf("unexpected summary: %v", s)
	}

	// Step 6: Audit trail was written
	var actions []string
	if err := app.DB.Model(&models.AuditLog{}).Where("session_id = ?", sessionID).Pluck("action", &actions).Error; err != nil {
		t.Fatal(err)
	}
	want := map[string]bool{services.AuditStartGame: false, services.AuditPurchaseOffer: false, services.AuditEndMonth: false}
	for _, a := range actions {
		if _, ok := want[a]; ok {
			want[a] = true
		}
	}
	for a, seen := range want {
		if !seen {
			t.Errorf("expected audit action %s", a)
		}
	}
}

func TestGameFlow_PhaseErrors(t *testing.T) {
	app := setupApp(t)
	token, _ := app.startGame(t, "clerk")

	tests := []struct {
		name   string
		method string
		path   string
		status int
		code   string
	}{
		{"purchase before month", "POST", "/api/v1/game/offers/0/purchase", http.StatusConflict, "INVALID_PHASE"},
		{"end before month", "POST", "/api/v1/game/month/end", http.StatusConflict, "NOT_IN_MONTH"},
		{"negative log limit", "GET", "/api/v1/game/log?limit=-1", http.StatusBadRequest, "INVALID_INPUT"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := app.request(tt.method, tt.path, "", token)
			if rec.Code != tt.status {
				t.Fatalf("expected %d, got %d: %s", tt.status, rec.Code, rec.Body.String())
			}
			if code := errorCode(t, rec); code != tt.code {
				t.Errorf("expected %s, got %s", tt.code, code)
			}
		})
	}

	t.Run("offer index out of range", func(t *testing.T) {
		app.request("POST", "/api/v1/game/month/start", "", token)
		rec := app.request("POST", "/api/v1/game/offers/9/purchase", "", token)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		if code := errorCode(t, rec); code != "OFFER_NOT_OFFERED" {
			t.Errorf("expected OFFER_NOT_OFFERED, got %s", code)
		}
	})
}

func TestGameFlow_WinStopsTheGame(t *testing.T) {
	app := setupApp(t)
	token, _ := app.startGame(t, "collector")

	app.request("POST", "/api/v1/game/month/start", "", token)
	rec := app.request("POST", "/api/v1/game/offers/0/purchase", "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	g := parseJSON(t, rec)["game"].(map[string]interface{})
	if g["won"] != true {
		t.Fatal("expected the game to be won")
	}

	gameOf(t, app.request("POST", "/api/v1/game/month/end", "", token))

	rec = app.request("POST", "/api/v1/game/month/start", "", token)
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}
	if code := errorCode(t, rec); code != "GAME_OVER" {
		t.Errorf("expected GAME_OVER, got %s", code)
	}

	// Reset starts a fresh game in the same session
	g = gameOf(t, app.request("POST", "/api/v1/game/reset", "", token))
	if g["won"] != false || g["month"] != float64(1) || g["role_id"] != "collector" {
		t.Errorf("unexpected game after reset: %v", g)
	}
}

func TestGameFlow_ExportImport(t *testing.T) {
	app := setupApp(t)
	token, sessionID := app.startGame(t, "clerk")
	app.request("POST", "/api/v1/game/month/start", "", token)

	rec := app.request("GET", "/api/v1/game/export", "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	save := rec.Body.String()

	rec = app.request("POST", "/api/v1/games/import", save, "")
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	sess := result["session"].(map[string]interface{})
	if sess["session_id"] == sessionID {
		t.Error("import should start a new session")
	}
	imported := result["game"].(map[string]interface{})
	if imported["phase"] != "offers_pending" {
		t.Errorf("expected offers_pending, got %v", imported["phase"])
	}
	if app.Store.Len() != 2 {
		t.Errorf("expected 2 sessions, got %d", app.Store.Len())
	}

	rec = app.request("POST", "/api/v1/games/import", `{"version":1}`, "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if code := errorCode(t, rec); code != "MALFORMED_SAVE" {
		t.Errorf("expected MALFORMED_SAVE, got %s", code)
	}
}

func TestGameFlow_SaveSlots(t *testing.T) {
	app := setupApp(t)
	token, _ := app.startGame(t, "clerk")
	otherToken, _ := app.startGame(t, "clerk")

	// Step 1: Save at the start of the game
	rec := app.request("POST", "/api/v1/game/saves", `{"name":"fresh start"}`, token)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	saveID := parseJSON(t, rec)["save"].(map[string]interface{})["id"].(string)

	// Step 2: Play a month
	app.request("POST", "/api/v1/game/month/start", "", token)
	app.request("POST", "/api/v1/game/offers/decline", "", token)
	gameOf(t, app.request("POST", "/api/v1/game/month/end", "", token))

	// Step 3: The slot is listed for this session only
	rec = app.request("GET", "/api/v1/game/saves", "", token)
	if total := parseJSON(t, rec)["total_items"]; total != float64(1) {
		t.Errorf("expected 1 save, got %v", total)
	}
	rec = app.request("GET", "/api/v1/game/saves", "", otherToken)
	if total := parseJSON(t, rec)["total_items"]; total != float64(0) {
		t.Errorf("expected no saves for the other session, got %v", total)
	}

	// Step 4: Another session cannot load it
	rec = app.request("POST", "/api/v1/game/saves/"+saveID+"/load", "", otherToken)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}

	// Step 5: Loading rewinds the game
	g := gameOf(t, app.request("POST", "/api/v1/game/saves/"+saveID+"/load", "", token))
	if g["month"] != float64(1) || g["phase"] != "awaiting_month_start" {
		t.Errorf("expected month 1 awaiting start, got month %v phase %v", g["month"], g["phase"])
	}
}
