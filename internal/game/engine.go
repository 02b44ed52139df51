package game

import (
	"fmt"

	apperrors "cashflow/internal/errors"
)

// NewGame starts a game for the role with roleID. The offers and events
// catalogs become the game's decks. A nil seed picks a random one, which is
// recorded in the generator so the game can still be saved and replayed.
func NewGame(roles []Role, roleID string, offers []OfferCard, events []EventCard, seed *int64) (*State, error) {
	var role *Role
	for i := range roles {
		if roles[i].ID == roleID {
			role = &roles[i]
			break
		}
	}
	if role == nil {
		return nil, apperrors.WithMessage(apperrors.ErrRoleNotFound, fmt.Sprintf("Unknown role_id: %s", roleID))
	}

	var sd int64
	if seed != nil {
		sd = *seed
	} else {
		sd = RandomSeed()
	}

	s := &State{
		RoleID:        role.ID,
		RoleName:      role.Name,
		Month:         1,
		Cash:          role.StartingCash,
		Salary:        role.Salary,
		FixedExpenses: role.FixedExpenses,
		PassiveIncome: role.StartingPassiveIncome,
		NetWorth:      role.StartingNetWorth,
		RNG:           NewGenerator(sd),
		OffersDeck:    append([]OfferCard(nil), offers...),
		EventsDeck:    append([]EventCard(nil), events...),
		Portfolio:     []PortfolioItem{},
		Log:           []string{},
	}
	s.record(fmt.Sprintf("Game started: %s (cash %s)", s.RoleName, money(s.Cash)))
	return s, nil
}

// ProcessMonthStart collects salary and passive income and pays fixed
// expenses. Cash is allowed to go negative. It does nothing if a month is
// already in progress.
func (s *State) ProcessMonthStart() {
	if s.InMonth() {
		return
	}
	income := s.Salary + s.PassiveIncome
	s.Cash += income
	s.Cash -= s.FixedExpenses
	s.record(fmt.Sprintf("Month %d started: income %s (salary %s + passive %s) - fixed expenses %s => cash %s",
		s.Month, money(income), money(s.Salary), money(s.PassiveIncome), money(s.FixedExpenses), money(s.Cash)))
	s.turn = &turn{}
}

// DrawEvents draws n events with replacement from the events deck.
func (s *State) DrawEvents(n int) ([]EventCard, error) {
	return DrawCards(s, s.EventsDeck, n)
}

// DrawOffers draws n offers with replacement from the offers deck.
func (s *State) DrawOffers(n int) ([]OfferCard, error) {
	return DrawCards(s, s.OffersDeck, n)
}

// DrawCards draws n cards with replacement from deck using the game's
// generator and stores the advanced generator back in s.
func DrawCards[T any](s *State, deck []T, n int) ([]T, error) {
	if len(deck) == 0 {
		return nil, apperrors.ErrEmptyDeck
	}
	if n < 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "draw count must not be negative")
	}
	cards, g := Sample(s.RNG, deck, n)
	s.RNG = g
	return cards, nil
}

// ApplyEvent adds the event's deltas to the running totals and clamps the
// monthly rates at zero. Cash is not clamped.
func (s *State) ApplyEvent(ev EventCard) {
	s.Cash += ev.CashDelta
	s.Salary += ev.SalaryDelta
	s.FixedExpenses += ev.FixedExpensesDelta
	s.PassiveIncome += ev.PassiveIncomeDelta
	s.record(fmt.Sprintf("Event: %s (%s)", ev.Name, ev.EffectSummary()))

	s.Salary = max(0, s.Salary)
	s.FixedExpenses = max(0, s.FixedExpenses)
	s.PassiveIncome = max(0, s.PassiveIncome)
}

// CanAffordOffer reports whether cash covers the offer's down payment.
func (s *State) CanAffordOffer(o OfferCard) bool {
	return s.Cash >= o.DownPayment
}

// PurchaseOffer buys o and adds it to the portfolio. The state is left
// untouched if cash does not cover the down payment. The same offer may be
// bought any number of times.
func (s *State) PurchaseOffer(o OfferCard) (PortfolioItem, error) {
	if !s.CanAffordOffer(o) {
		return PortfolioItem{}, apperrors.WithMessage(apperrors.ErrInsufficientFunds,
			fmt.Sprintf("Not enough cash for down payment: have %s, need %s", money(s.Cash), money(o.DownPayment)))
	}

	s.Cash -= o.DownPayment
	s.Cash += o.CashDelta
	s.PassiveIncome += o.PassiveIncomeDelta
	s.Salary += o.SalaryDelta
	s.NetWorth += o.NetWorthDelta

	item := newPortfolioItem(o)
	s.Portfolio = append(s.Portfolio, item)
	s.record(fmt.Sprintf("Purchased: %s (down payment %s / passive %s/mo / salary %s/mo)",
		o.Name, money(o.DownPayment), signed(o.PassiveIncomeDelta), signed(o.SalaryDelta)))

	s.Salary = max(0, s.Salary)
	s.PassiveIncome = max(0, s.PassiveIncome)
	return item, nil
}

// EndMonth closes the month in progress and advances the month counter.
// No purchase is required first.
func (s *State) EndMonth() error {
	if !s.InMonth() {
		return apperrors.ErrNotInMonth
	}
	s.turn = nil
	s.Month++
	s.record(fmt.Sprintf("Month ended: next is month %d", s.Month))
	return nil
}

// Summary is the derived financial overview of a game.
type Summary struct {
	Cash          int64 `json:"cash"`
	Salary        int64 `json:"salary"`
	FixedExpenses int64 `json:"fixed_expenses"`
	PassiveIncome int64 `json:"passive_income"`
	NetMonthly    int64 `json:"net_monthly"`
	NetWorth      int64 `json:"net_worth"`
}

// Summarize returns the current figures and monthly net cash flow.
func (s *State) Summarize() Summary {
	return Summary{
		Cash:          s.Cash,
		Salary:        s.Salary,
		FixedExpenses: s.FixedExpenses,
		PassiveIncome: s.PassiveIncome,
		NetMonthly:    s.Salary + s.PassiveIncome - s.FixedExpenses,
		NetWorth:      s.NetWorth,
	}
}

// CheckWin reports whether passive income covers fixed expenses. Zero fixed
// expenses never count as a win.
func (s *State) CheckWin() bool {
	return s.PassiveIncome >= s.FixedExpenses && s.FixedExpenses > 0
}
