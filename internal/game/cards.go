package game

import (
	"regexp"
	"strings"
)

// Role is a starting financial profile chosen once at game start.
type Role struct {
	ID                    string `json:"id" yaml:"id" validate:"required"`
	Name                  string `json:"name" yaml:"name" validate:"required"`
	Salary                int64  `json:"salary" yaml:"salary" validate:"gte=0"`
	FixedExpenses         int64  `json:"fixed_expenses" yaml:"fixed_expenses" validate:"gte=0"`
	StartingCash          int64  `json:"starting_cash" yaml:"starting_cash"`
	StartingPassiveIncome int64  `json:"starting_passive_income,omitempty" yaml:"starting_passive_income" validate:"gte=0"`
	StartingNetWorth      int64  `json:"starting_net_worth,omitempty" yaml:"starting_net_worth"`
}

// OfferKind is the category of an offer card.
type OfferKind string

const (
	OfferKindInvestment OfferKind = "investment"
	OfferKindSideHustle OfferKind = "side_hustle"
	OfferKindSkill      OfferKind = "skill"
	OfferKindSafety     OfferKind = "safety"
)

var offerKindLabels = map[OfferKind]string{
	OfferKindInvestment: "Investment",
	OfferKindSideHustle: "Side hustle",
	OfferKindSkill:      "Skill",
	OfferKindSafety:     "Safety",
}

var offerKindPattern = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)

// WellFormed reports whether k is a usable kind name. Kinds outside the
// built-in set are allowed so catalogs can add categories.
func (k OfferKind) WellFormed() bool {
	return offerKindPattern.MatchString(string(k))
}

// Known reports whether k is one of the built-in kinds.
func (k OfferKind) Known() bool {
	_, ok := offerKindLabels[k]
	return ok
}

// Label returns the display label for the kind. Unknown kinds are shown as-is.
func (k OfferKind) Label() string {
	if l, ok := offerKindLabels[k]; ok {
		return l
	}
	return string(k)
}

// OfferCard is a purchasable opportunity. Buying it costs DownPayment once
// and permanently shifts the player's monthly figures.
type OfferCard struct {
	ID                 string    `json:"id" yaml:"id" validate:"required"`
	Name               string    `json:"name" yaml:"name" validate:"required"`
	Kind               OfferKind `json:"kind" yaml:"kind" validate:"required,offer_kind"`
	Description        string    `json:"description" yaml:"description"`
	DownPayment        int64     `json:"down_payment" yaml:"down_payment" validate:"gte=0"`
	CashDelta          int64     `json:"cash_delta" yaml:"cash_delta"`
	PassiveIncomeDelta int64     `json:"passive_income_delta" yaml:"passive_income_delta"`
	SalaryDelta        int64     `json:"salary_delta" yaml:"salary_delta"`
	NetWorthDelta      int64     `json:"net_worth_delta" yaml:"net_worth_delta"`
}

// EventCard is a mandatory occurrence drawn at the start of every month.
type EventCard struct {
	ID                 string `json:"id" yaml:"id" validate:"required"`
	Name               string `json:"name" yaml:"name" validate:"required"`
	Description        string `json:"description" yaml:"description"`
	CashDelta          int64  `json:"cash_delta" yaml:"cash_delta"`
	SalaryDelta        int64  `json:"salary_delta" yaml:"salary_delta"`
	FixedExpensesDelta int64  `json:"fixed_expenses_delta" yaml:"fixed_expenses_delta"`
	PassiveIncomeDelta int64  `json:"passive_income_delta" yaml:"passive_income_delta"`
}

// EffectSummary describes the non-zero deltas of the event, e.g.
// "cash -5,000 / passive +10,000/mo". An event with no deltas reads "no effect".
func (e EventCard) EffectSummary() string {
	var parts []string
	if e.CashDelta != 0 {
		parts = append(parts, "cash "+signed(e.CashDelta))
	}
	if e.SalaryDelta != 0 {
		parts = append(parts, "salary "+signed(e.SalaryDelta)+"/mo")
	}
	if e.FixedExpensesDelta != 0 {
		parts = append(parts, "fixed expenses "+signed(e.FixedExpensesDelta)+"/mo")
	}
	if e.PassiveIncomeDelta != 0 {
		parts = append(parts, "passive "+signed(e.PassiveIncomeDelta)+"/mo")
	}
	if len(parts) == 0 {
		return "no effect"
	}
	return strings.Join(parts, " / ")
}

// PortfolioItem records one purchase with the offer's figures at the time it was bought.
type PortfolioItem struct {
	ID                 string    `json:"id"`
	Name               string    `json:"name"`
	Kind               OfferKind `json:"kind"`
	DownPayment        int64     `json:"down_payment"`
	CashDelta          int64     `json:"cash_delta"`
	PassiveIncomeDelta int64     `json:"passive_income_delta"`
	SalaryDelta        int64     `json:"salary_delta"`
	NetWorthDelta      int64     `json:"net_worth_delta"`
}

func newPortfolioItem(o OfferCard) PortfolioItem {
	return PortfolioItem{
		ID:                 o.ID,
		Name:               o.Name,
		Kind:               o.Kind,
		DownPayment:        o.DownPayment,
		CashDelta:          o.CashDelta,
		PassiveIncomeDelta: o.PassiveIncomeDelta,
		SalaryDelta:        o.SalaryDelta,
		NetWorthDelta:      o.NetWorthDelta,
	}
}
