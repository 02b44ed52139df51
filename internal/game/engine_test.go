package game

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "cashflow/internal/errors"
)

func testRoles() []Role {
	return []Role{
		{ID: "office_worker", Name: "Office Worker", Salary: 300000, FixedExpenses: 250000, StartingCash: 100000},
		{ID: "freelancer", Name: "Freelancer", Salary: 200000, FixedExpenses: 150000, StartingCash: 50000, StartingPassiveIncome: 5000, StartingNetWorth: 20000},
	}
}

func testOffers() []OfferCard {
	return []OfferCard{
		{ID: "index_fund", Name: "Index Fund", Kind: OfferKindInvestment, DownPayment: 50000, PassiveIncomeDelta: 20000, NetWorthDelta: 50000},
		{ID: "blog", Name: "Blog", Kind: OfferKindSideHustle, DownPayment: 10000, PassiveIncomeDelta: 3000},
		{ID: "course", Name: "Course", Kind: OfferKindSkill, DownPayment: 30000, SalaryDelta: 10000},
	}
}

func testEvents() []EventCard {
	return []EventCard{
		{ID: "dividend", Name: "Dividend", CashDelta: -5000, PassiveIncomeDelta: 10000},
		{ID: "repair", Name: "Car Repair", CashDelta: -40000},
		{ID: "quiet", Name: "Quiet Month"},
	}
}

func newTestGame(t *testing.T, seed int64) *State {
	t.Helper()
	s, err := NewGame(testRoles(), "office_worker", testOffers(), testEvents(), &seed)
	require.NoError(t, err)
	return s
}

func TestNewGame(t *testing.T) {
	t.Run("copies_role_figures", func(t *testing.T) {
		s := newTestGame(t, 42)

		assert.Equal(t, "office_worker", s.RoleID)
		assert.Equal(t, "Office Worker", s.RoleName)
		assert.Equal(t, 1, s.Month)
		assert.Equal(t, int64(100000), s.Cash)
		assert.Equal(t, int64(300000), s.Salary)
		assert.Equal(t, int64(250000), s.FixedExpenses)
		assert.Equal(t, int64(0), s.PassiveIncome)
		assert.False(t, s.InMonth())
		assert.Equal(t, PhaseAwaitingMonthStart, s.Phase())
		assert.Nil(t, s.CurrentEvent())
		assert.Empty(t, s.CurrentOffers())
		assert.Empty(t, s.Portfolio)
		require.Len(t, s.Log, 1)
		assert.Equal(t, "Game started: Office Worker (cash 100,000)", s.Log[0])
	})

	t.Run("optional_role_fields", func(t *testing.T) {
		seed := int64(1)
		s, err := NewGame(testRoles(), "freelancer", testOffers(), testEvents(), &seed)
		require.NoError(t, err)
		assert.Equal(t, int64(5000), s.PassiveIncome)
		assert.Equal(t, int64(20000), s.NetWorth)
	})

	t.Run("unknown_role", func(t *testing.T) {
		_, err := NewGame(testRoles(), "astronaut", testOffers(), testEvents(), nil)
		assert.True(t, errors.Is(err, apperrors.ErrRoleNotFound))
	})

	t.Run("nil_seed_is_recorded", func(t *testing.T) {
		s, err := NewGame(testRoles(), "office_worker", testOffers(), testEvents(), nil)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, s.RNG.Seed, int64(0))
		assert.Zero(t, s.RNG.Counter)
	})

	t.Run("decks_are_copied", func(t *testing.T) {
		offers := testOffers()
		seed := int64(3)
		s, err := NewGame(testRoles(), "office_worker", offers, testEvents(), &seed)
		require.NoError(t, err)
		offers[0].Name = "changed"
		assert.Equal(t, "Index Fund", s.OffersDeck[0].Name)
	})
}

func TestProcessMonthStart(t *testing.T) {
	t.Run("collects_income_and_pays_expenses", func(t *testing.T) {
		s := newTestGame(t, 42)
		s.ProcessMonthStart()

		assert.Equal(t, int64(150000), s.Cash)
		assert.True(t, s.InMonth())
		assert.Equal(t, PhaseEventPending, s.Phase())
		assert.Equal(t, "Month 1 started: income 300,000 (salary 300,000 + passive 0) - fixed expenses 250,000 => cash 150,000", s.Log[len(s.Log)-1])
	})

	t.Run("idempotent_within_month", func(t *testing.T) {
		s := newTestGame(t, 42)
		s.ProcessMonthStart()
		cash, logLen := s.Cash, len(s.Log)

		s.ProcessMonthStart()
		assert.Equal(t, cash, s.Cash)
		assert.Len(t, s.Log, logLen)
	})

	t.Run("cash_may_go_negative", func(t *testing.T) {
		s := newTestGame(t, 42)
		s.Cash = 0
		s.Salary = 0
		s.ProcessMonthStart()
		assert.Equal(t, int64(-250000), s.Cash)
	})
}

func TestDrawCards(t *testing.T) {
	t.Run("same_seed_same_sequence", func(t *testing.T) {
		a := newTestGame(t, 2024)
		b := newTestGame(t, 2024)

		for i := 0; i < 20; i++ {
			evA, err := a.DrawEvents(1)
			require.NoError(t, err)
			evB, err := b.DrawEvents(1)
			require.NoError(t, err)
			assert.Equal(t, evA, evB)

			offA, err := a.DrawOffers(2)
			require.NoError(t, err)
			offB, err := b.DrawOffers(2)
			require.NoError(t, err)
			assert.Equal(t, offA, offB)
		}
		assert.Equal(t, a.RNG, b.RNG)
	})

	t.Run("state_advances_between_draws", func(t *testing.T) {
		s := newTestGame(t, 7)
		before := s.RNG
		_, err := s.DrawOffers(3)
		require.NoError(t, err)
		assert.NotEqual(t, before, s.RNG)
	})

	t.Run("returns_n_cards_with_replacement", func(t *testing.T) {
		s := newTestGame(t, 7)
		s.OffersDeck = s.OffersDeck[:1]
		cards, err := s.DrawOffers(5)
		require.NoError(t, err)
		require.Len(t, cards, 5)
		for _, c := range cards {
			assert.Equal(t, "index_fund", c.ID)
		}
	})

	t.Run("empty_deck", func(t *testing.T) {
		s := newTestGame(t, 7)
		s.EventsDeck = nil
		_, err := s.DrawEvents(1)
		assert.True(t, errors.Is(err, apperrors.ErrEmptyDeck))
	})

	t.Run("different_seeds_diverge", func(t *testing.T) {
		a := newTestGame(t, 1)
		b := newTestGame(t, 2)
		ca, _ := a.DrawEvents(16)
		cb, _ := b.DrawEvents(16)
		assert.NotEqual(t, ca, cb)
	})
}

func TestApplyEvent(t *testing.T) {
	t.Run("applies_deltas", func(t *testing.T) {
		s := newTestGame(t, 1)
		cash := s.Cash
		s.ApplyEvent(EventCard{Name: "Dividend", CashDelta: -5000, PassiveIncomeDelta: 10000})

		assert.Equal(t, int64(10000), s.PassiveIncome)
		assert.Equal(t, cash-5000, s.Cash)
		assert.Equal(t, "Event: Dividend (cash -5,000 / passive +10,000/mo)", s.Log[len(s.Log)-1])
	})

	t.Run("clamps_rates_at_zero", func(t *testing.T) {
		s := newTestGame(t, 1)
		s.ApplyEvent(EventCard{Name: "Disaster", CashDelta: -1 << 40, SalaryDelta: -1 << 40, FixedExpensesDelta: -1 << 40, PassiveIncomeDelta: -1 << 40})

		assert.Zero(t, s.Salary)
		assert.Zero(t, s.FixedExpenses)
		assert.Zero(t, s.PassiveIncome)
		assert.Less(t, s.Cash, int64(0))
	})

	t.Run("no_effect_summary", func(t *testing.T) {
		s := newTestGame(t, 1)
		s.ApplyEvent(EventCard{Name: "Quiet Month"})
		assert.Equal(t, "Event: Quiet Month (no effect)", s.Log[len(s.Log)-1])
	})
}

func TestPurchaseOffer(t *testing.T) {
	offer := OfferCard{ID: "index_fund", Name: "Index Fund", Kind: OfferKindInvestment, DownPayment: 50000, PassiveIncomeDelta: 20000}

	t.Run("success", func(t *testing.T) {
		s := newTestGame(t, 1)
		s.Cash = 150000

		item, err := s.PurchaseOffer(offer)
		require.NoError(t, err)

		assert.Equal(t, int64(100000), s.Cash)
		assert.Equal(t, int64(20000), s.PassiveIncome)
		require.Len(t, s.Portfolio, 1)
		assert.Equal(t, int64(50000), s.Portfolio[0].DownPayment)
		assert.Equal(t, item, s.Portfolio[0])
	})

	t.Run("insufficient_funds_leaves_state", func(t *testing.T) {
		s := newTestGame(t, 1)
		s.Cash = 49999
		logLen := len(s.Log)

		_, err := s.PurchaseOffer(offer)
		assert.True(t, errors.Is(err, apperrors.ErrInsufficientFunds))
		assert.Equal(t, int64(49999), s.Cash)
		assert.Empty(t, s.Portfolio)
		assert.Len(t, s.Log, logLen)
		assert.Zero(t, s.PassiveIncome)
	})

	t.Run("exact_cash_is_enough", func(t *testing.T) {
		s := newTestGame(t, 1)
		s.Cash = 50000
		assert.True(t, s.CanAffordOffer(offer))
		_, err := s.PurchaseOffer(offer)
		require.NoError(t, err)
		assert.Zero(t, s.Cash)
	})

	t.Run("repurchase_allowed", func(t *testing.T) {
		s := newTestGame(t, 1)
		s.Cash = 1000000
		for i := 0; i < 3; i++ {
			_, err := s.PurchaseOffer(offer)
			require.NoError(t, err)
		}
		assert.Len(t, s.Portfolio, 3)
		assert.Equal(t, int64(60000), s.PassiveIncome)
	})

	t.Run("clamps_salary_and_passive_not_net_worth", func(t *testing.T) {
		s := newTestGame(t, 1)
		s.Cash = 1000
		_, err := s.PurchaseOffer(OfferCard{ID: "bad", Name: "Bad Deal", SalaryDelta: -1 << 40, PassiveIncomeDelta: -1 << 40, NetWorthDelta: -500, CashDelta: -2000})
		require.NoError(t, err)
		assert.Zero(t, s.Salary)
		assert.Zero(t, s.PassiveIncome)
		assert.Equal(t, int64(-500), s.NetWorth)
		assert.Equal(t, int64(-1000), s.Cash)
	})
}

func TestSummarizeAndWin(t *testing.T) {
	s := newTestGame(t, 1)
	s.PassiveIncome = 40000

	sum := s.Summarize()
	assert.Equal(t, int64(300000+40000-250000), sum.NetMonthly)
	assert.Equal(t, s.Cash, sum.Cash)

	s.PassiveIncome = 250000
	assert.True(t, s.CheckWin())

	s.PassiveIncome = 249999
	assert.False(t, s.CheckWin())

	s.FixedExpenses = 0
	s.PassiveIncome = 0
	assert.False(t, s.CheckWin())

	s.PassiveIncome = 100
	assert.False(t, s.CheckWin())
}

func TestEndMonth(t *testing.T) {
	t.Run("requires_month_in_progress", func(t *testing.T) {
		s := newTestGame(t, 1)
		assert.True(t, errors.Is(s.EndMonth(), apperrors.ErrNotInMonth))
		assert.Equal(t, 1, s.Month)
	})

	t.Run("clears_turn_and_advances", func(t *testing.T) {
		s := newTestGame(t, 1)
		require.NoError(t, s.BeginMonth())
		require.NoError(t, s.EndMonth())

		assert.Equal(t, 2, s.Month)
		assert.False(t, s.InMonth())
		assert.Nil(t, s.CurrentEvent())
		assert.Empty(t, s.CurrentOffers())
		assert.Equal(t, "Month ended: next is month 2", s.Log[len(s.Log)-1])
	})
}

func TestLogTail(t *testing.T) {
	s := newTestGame(t, 1)
	for i := 0; i < 5; i++ {
		require.NoError(t, s.BeginMonth())
		require.NoError(t, s.EndMonth())
	}
	tail := s.LogTail(3)
	require.Len(t, tail, 3)
	assert.Equal(t, s.Log[len(s.Log)-3:], tail)
	assert.Len(t, s.LogTail(1000), len(s.Log))
	assert.Empty(t, s.LogTail(0))
}
