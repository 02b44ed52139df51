package game

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"

	apperrors "cashflow/internal/errors"
)

// SaveVersion is written into every save file.
const SaveVersion = 1

// Required keys of the flat card and role records, shared with the catalog loader.
var (
	RoleKeys  = []string{"id", "name", "salary", "fixed_expenses", "starting_cash"}
	OfferKeys = []string{"id", "name", "kind", "description", "down_payment", "cash_delta", "passive_income_delta", "salary_delta", "net_worth_delta"}
	EventKeys = []string{"id", "name", "description", "cash_delta", "salary_delta", "fixed_expenses_delta", "passive_income_delta"}
)

var saveKeys = []string{
	"role_id", "role_name", "month", "cash", "salary", "fixed_expenses",
	"passive_income", "net_worth", "rng_seed", "offers_deck", "events_deck",
}

// SaveFile is the serialized form of a State.
type SaveFile struct {
	Version       int             `json:"version"`
	RoleID        string          `json:"role_id" validate:"required"`
	RoleName      string          `json:"role_name" validate:"required"`
	Month         int             `json:"month" validate:"min=1"`
	InMonth       bool            `json:"in_month"`
	OffersClosed  bool            `json:"offers_closed,omitempty"`
	Cash          int64           `json:"cash"`
	Salary        int64           `json:"salary" validate:"gte=0"`
	FixedExpenses int64           `json:"fixed_expenses" validate:"gte=0"`
	PassiveIncome int64           `json:"passive_income" validate:"gte=0"`
	NetWorth      int64           `json:"net_worth"`
	RNGSeed       int64           `json:"rng_seed"`
	RNGState      uint64          `json:"rng_state"`
	OffersDeck    []OfferCard     `json:"offers_deck"`
	EventsDeck    []EventCard     `json:"events_deck"`
	CurrentEvent  *EventCard      `json:"current_event"`
	CurrentOffers []OfferCard     `json:"current_offers"`
	Portfolio     []PortfolioItem `json:"portfolio"`
	Log           []string        `json:"log"`
}

var saveValidator = newSaveValidator()

func newSaveValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("offer_kind", func(fl validator.FieldLevel) bool {
		return OfferKind(fl.Field().String()).WellFormed()
	})
	return v
}

// ToSaveFile captures every field of s, including the generator position.
func (s *State) ToSaveFile() SaveFile {
	f := SaveFile{
		Version:       SaveVersion,
		RoleID:        s.RoleID,
		RoleName:      s.RoleName,
		Month:         s.Month,
		InMonth:       s.InMonth(),
		Cash:          s.Cash,
		Salary:        s.Salary,
		FixedExpenses: s.FixedExpenses,
		PassiveIncome: s.PassiveIncome,
		NetWorth:      s.NetWorth,
		RNGSeed:       s.RNG.Seed,
		RNGState:      s.RNG.Counter,
		OffersDeck:    nonNil(s.OffersDeck),
		EventsDeck:    nonNil(s.EventsDeck),
		CurrentEvent:  s.CurrentEvent(),
		CurrentOffers: nonNil(s.CurrentOffers()),
		Portfolio:     nonNil(s.Portfolio),
		Log:           nonNil(s.Log),
	}
	if s.turn != nil {
		f.OffersClosed = s.turn.closed
	}
	return f
}

// Serialize encodes s as JSON.
func Serialize(s *State) ([]byte, error) {
	data, err := json.MarshalIndent(s.ToSaveFile(), "", "  ")
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return data, nil
}

// Deserialize rebuilds a State from Serialize output. Missing required keys,
// wrongly typed values and phase data that contradicts in_month all fail
// with ErrMalformedSave.
func Deserialize(data []byte) (*State, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, malformed("save is not a JSON object: %v", err)
	}
	if missing := MissingKeys(raw, saveKeys); len(missing) > 0 {
		return nil, malformed("save is missing keys %s", strings.Join(missing, ", "))
	}
	if err := checkCardList(raw, "offers_deck", OfferKeys); err != nil {
		return nil, err
	}
	if err := checkCardList(raw, "events_deck", EventKeys); err != nil {
		return nil, err
	}
	if err := checkCardList(raw, "current_offers", OfferKeys); err != nil {
		return nil, err
	}
	if ev, ok := raw["current_event"]; ok && string(ev) != "null" {
		var rec map[string]json.RawMessage
		if err := json.Unmarshal(ev, &rec); err != nil {
			return nil, malformed("current_event is not an object: %v", err)
		}
		if missing := MissingKeys(rec, EventKeys); len(missing) > 0 {
			return nil, malformed("current_event is missing keys %s", strings.Join(missing, ", "))
		}
	}

	var f SaveFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, malformed("save has invalid field values: %v", err)
	}
	return FromSaveFile(f)
}

// FromSaveFile rebuilds a State from an already decoded save.
func FromSaveFile(f SaveFile) (*State, error) {
	if err := saveValidator.Struct(f); err != nil {
		return nil, malformed("save failed validation: %v", err)
	}

	s := &State{
		RoleID:        f.RoleID,
		RoleName:      f.RoleName,
		Month:         f.Month,
		Cash:          f.Cash,
		Salary:        f.Salary,
		FixedExpenses: f.FixedExpenses,
		PassiveIncome: f.PassiveIncome,
		NetWorth:      f.NetWorth,
		RNG:           Generator{Seed: f.RNGSeed, Counter: f.RNGState},
		OffersDeck:    nonNil(f.OffersDeck),
		EventsDeck:    nonNil(f.EventsDeck),
		Portfolio:     nonNil(f.Portfolio),
		Log:           nonNil(f.Log),
	}

	switch {
	case !f.InMonth:
		if f.CurrentEvent != nil || len(f.CurrentOffers) > 0 || f.OffersClosed {
			return nil, malformed("save has month data while no month is in progress")
		}
	case f.CurrentEvent == nil:
		if len(f.CurrentOffers) > 0 || f.OffersClosed {
			return nil, malformed("save has offers but no event for the current month")
		}
		s.turn = &turn{}
	default:
		ev := *f.CurrentEvent
		s.turn = &turn{
			event:  &ev,
			offers: append([]OfferCard(nil), f.CurrentOffers...),
			closed: f.OffersClosed,
		}
	}
	return s, nil
}

func checkCardList(raw map[string]json.RawMessage, key string, required []string) error {
	data, ok := raw[key]
	if !ok || string(data) == "null" {
		return nil
	}
	var recs []map[string]json.RawMessage
	if err := json.Unmarshal(data, &recs); err != nil {
		return malformed("%s must be a list of objects: %v", key, err)
	}
	for i, rec := range recs {
		if missing := MissingKeys(rec, required); len(missing) > 0 {
			return malformed("%s[%d] is missing keys %s", key, i, strings.Join(missing, ", "))
		}
	}
	return nil
}

// MissingKeys returns the required keys absent from rec, sorted.
func MissingKeys[V any](rec map[string]V, required []string) []string {
	var missing []string
	for _, k := range required {
		if _, ok := rec[k]; !ok {
			missing = append(missing, k)
		}
	}
	sort.Strings(missing)
	return missing
}

func malformed(format string, args ...any) error {
	return apperrors.WithMessage(apperrors.ErrMalformedSave, fmt.Sprintf(format, args...))
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
