package services

import (
	"time"

	apperrors "cashflow/internal/errors"
	"cashflow/internal/game"
	"cashflow/internal/logger"
)

// gameService runs the game sessions held in a SessionStore.
type gameService struct {
	store     *SessionStore
	catalogs  CatalogServicer
	snapshots SnapshotServicer
	logTail   int
}

// NewGameService creates a new GameServicer. logTail is the number of log
// lines included in a GameView.
func NewGameService(store *SessionStore, catalogs CatalogServicer, snapshots SnapshotServicer, logTail int) GameServicer {
	return &gameService{store: store, catalogs: catalogs, snapshots: snapshots, logTail: logTail}
}

// NewGame starts a game with the current catalog in a new session.
func (s *gameService) NewGame(roleID string, seed *int64) (*GameView, error) {
	state, err := s.startGame(roleID, seed)
	if err != nil {
		return nil, err
	}
	id := s.store.create(state)
	logger.ForSession(id).Infow("game started", "role_id", state.RoleID, "seed", state.RNG.Seed)
	return s.GetGame(id)
}

// ImportGame restores a serialized game into a new session.
func (s *gameService) ImportGame(data []byte) (*GameView, error) {
	state, err := game.Deserialize(data)
	if err != nil {
		return nil, err
	}
	id := s.store.create(state)
	logger.ForSession(id).Infow("game imported", "role_id", state.RoleID, "month", state.Month)
	return s.GetGame(id)
}

// GetGame returns the session's current view.
func (s *gameService) GetGame(sessionID string) (*GameView, error) {
	var view *GameView
	err := s.store.do(sessionID, func(sess *session) error {
		view = buildView(sess, s.logTail)
		return nil
	})
	return view, err
}

// GetSummary returns the session's financial summary and win state.
func (s *gameService) GetSummary(sessionID string) (*SummaryView, error) {
	var out *SummaryView
	err := s.store.do(sessionID, func(sess *session) error {
		out = &SummaryView{Summary: sess.state.Summarize(), Month: sess.state.Month, Won: sess.won}
		return nil
	})
	return out, err
}

// GetLog returns the last limit log lines of the session.
func (s *gameService) GetLog(sessionID string, limit int) ([]string, error) {
	if limit < 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "limit must not be negative")
	}
	var lines []string
	err := s.store.do(sessionID, func(sess *session) error {
		lines = sess.state.LogTail(limit)
		return nil
	})
	return lines, err
}

// BeginMonth opens the next month: income, expenses, event and offers.
func (s *gameService) BeginMonth(sessionID string) (*GameView, error) {
	return s.mutate(sessionID, func(sess *session) error {
		if sess.won {
			return apperrors.ErrGameOver
		}
		return sess.state.BeginMonth()
	})
}

// PurchaseOffer buys the offer candidate at index.
func (s *gameService) PurchaseOffer(sessionID string, index int) (*PurchaseResult, error) {
	var item game.PortfolioItem
	view, err := s.mutate(sessionID, func(sess *session) error {
		if sess.won {
			return apperrors.ErrGameOver
		}
		var err error
		item, err = sess.state.PurchaseCandidate(index)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &PurchaseResult{Item: item, Game: view}, nil
}

// DeclineOffers passes on the month's offers.
func (s *gameService) DeclineOffers(sessionID string) (*GameView, error) {
	return s.mutate(sessionID, func(sess *session) error {
		if sess.won {
			return apperrors.ErrGameOver
		}
		return sess.state.DeclineOffers()
	})
}

// EndMonth closes the month in progress and records a month-end snapshot.
// A month that was open when the game was won may still be closed.
func (s *gameService) EndMonth(sessionID string) (*GameView, error) {
	return s.mutate(sessionID, func(sess *session) error {
		if sess.won && !sess.state.InMonth() {
			return apperrors.ErrGameOver
		}
		month := sess.state.Month
		if err := sess.state.EndMonth(); err != nil {
			return err
		}

		log := logger.ForSession(sess.id)
		summary := sess.state.Summarize()
		log.Infow("month ended", "month", month, "cash", summary.Cash, "net_monthly", summary.NetMonthly)
		if _, err := s.snapshots.RecordSnapshot(sess.id, month, summary, time.Now()); err != nil {
			log.Errorw("failed to record month snapshot", "month", month, "error", err)
		}
		return nil
	})
}

// ResetGame replaces the session's game with a fresh one. An empty roleID
// keeps the current role.
func (s *gameService) ResetGame(sessionID, roleID string, seed *int64) (*GameView, error) {
	return s.mutate(sessionID, func(sess *session) error {
		if roleID == "" {
			roleID = sess.state.RoleID
		}
		state, err := s.startGame(roleID, seed)
		if err != nil {
			return err
		}
		sess.replace(state)
		logger.ForSession(sess.id).Infow("game reset", "role_id", state.RoleID, "seed", state.RNG.Seed)
		return nil
	})
}

// ExportGame serializes the session's game.
func (s *gameService) ExportGame(sessionID string) ([]byte, error) {
	var data []byte
	err := s.store.do(sessionID, func(sess *session) error {
		var err error
		data, err = game.Serialize(sess.state)
		return err
	})
	return data, err
}

func (s *gameService) startGame(roleID string, seed *int64) (*game.State, error) {
	c := s.catalogs.Current()
	return game.NewGame(c.Roles, roleID, c.Offers, c.Events, seed)
}

// mutate applies fn to the session, settles the win flag and returns the new view.
func (s *gameService) mutate(sessionID string, fn func(sess *session) error) (*GameView, error) {
	var view *GameView
	err := s.store.do(sessionID, func(sess *session) error {
		if err := fn(sess); err != nil {
			return err
		}
		sess.settle()
		view = buildView(sess, s.logTail)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

func buildView(sess *session, logTail int) *GameView {
	st := sess.state
	view := &GameView{
		SessionID: sess.id,
		RoleID:    st.RoleID,
		RoleName:  st.RoleName,
		Month:     st.Month,
		Phase:     st.Phase(),
		Summary:   st.Summarize(),
		Won:       sess.won,
		Offers:    []OfferView{},
		Portfolio: append([]game.PortfolioItem{}, st.Portfolio...),
		Log:       st.LogTail(logTail),
	}
	if ev := st.CurrentEvent(); ev != nil {
		view.Event = &EventView{EventCard: *ev, Effect: ev.EffectSummary()}
	}
	for i, o := range st.CurrentOffers() {
		view.Offers = append(view.Offers, OfferView{
			OfferCard:  o,
			Index:      i,
			KindLabel:  o.Kind.Label(),
			Affordable: st.CanAffordOffer(o),
		})
	}
	return view
}
