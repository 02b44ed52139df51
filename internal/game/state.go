// Package game implements the Cashflow Steps engine: a turn-based state
// machine that moves a player through monthly income and expenses, a random
// event each month and optional offer purchases, until passive income covers
// fixed expenses.
//
// A State is owned by exactly one session and is not safe for concurrent use.
package game

// Phase is the position of a game within the monthly cycle.
type Phase string

const (
	PhaseAwaitingMonthStart Phase = "awaiting_month_start"
	PhaseEventPending       Phase = "event_pending"
	PhaseOffersPending      Phase = "offers_pending"
	PhaseAwaitingMonthEnd   Phase = "awaiting_month_end"
)

// OffersPerMonth is how many offer candidates are drawn each month.
const OffersPerMonth = 2

// turn holds the scratch data of the month in progress.
// event is nil only while the month's event has not been drawn; offers and
// closed are meaningful only once it has.
type turn struct {
	event  *EventCard
	offers []OfferCard
	closed bool
}

// State is the complete state of one game.
type State struct {
	RoleID   string
	RoleName string
	Month    int

	Cash          int64
	Salary        int64
	FixedExpenses int64
	PassiveIncome int64
	NetWorth      int64

	RNG Generator

	OffersDeck []OfferCard
	EventsDeck []EventCard

	Portfolio []PortfolioItem
	Log       []string

	turn *turn
}

// Phase returns the current phase.
func (s *State) Phase() Phase {
	switch {
	case s.turn == nil:
		return PhaseAwaitingMonthStart
	case s.turn.event == nil:
		return PhaseEventPending
	case s.turn.closed:
		return PhaseAwaitingMonthEnd
	default:
		return PhaseOffersPending
	}
}

// InMonth reports whether a month is in progress.
func (s *State) InMonth() bool {
	return s.turn != nil
}

// CurrentEvent returns this month's event, or nil if none has been drawn.
func (s *State) CurrentEvent() *EventCard {
	if s.turn == nil || s.turn.event == nil {
		return nil
	}
	ev := *s.turn.event
	return &ev
}

// CurrentOffers returns a copy of this month's offer candidates.
func (s *State) CurrentOffers() []OfferCard {
	if s.turn == nil || len(s.turn.offers) == 0 {
		return nil
	}
	out := make([]OfferCard, len(s.turn.offers))
	copy(out, s.turn.offers)
	return out
}

// LogTail returns the last n log lines, oldest first.
func (s *State) LogTail(n int) []string {
	if n <= 0 || len(s.Log) == 0 {
		return []string{}
	}
	start := len(s.Log) - n
	if start < 0 {
		start = 0
	}
	out := make([]string, len(s.Log)-start)
	copy(out, s.Log[start:])
	return out
}

func (s *State) record(line string) {
	s.Log = append(s.Log, line)
}
