package game

import (
	"fmt"

	apperrors "cashflow/internal/errors"
)

// BeginMonth runs the fixed opening sequence of a month: collect income and
// pay expenses, draw and apply one event, then draw OffersPerMonth offer
// candidates. A game left in PhaseEventPending (for example by a bare
// ProcessMonthStart) resumes from the event draw.
//
// Both decks are checked before anything changes, so an empty deck leaves
// the state untouched.
func (s *State) BeginMonth() error {
	switch p := s.Phase(); p {
	case PhaseAwaitingMonthStart, PhaseEventPending:
	default:
		return apperrors.WithMessage(apperrors.ErrInvalidPhase,
			fmt.Sprintf("Month %d is already under way (%s)", s.Month, p))
	}
	if len(s.EventsDeck) == 0 || len(s.OffersDeck) == 0 {
		return apperrors.ErrEmptyDeck
	}

	s.ProcessMonthStart()
	if _, err := s.ResolveEvent(); err != nil {
		return err
	}
	_, err := s.PresentOffers(OffersPerMonth)
	return err
}

// ResolveEvent draws the month's event and applies it.
func (s *State) ResolveEvent() (EventCard, error) {
	if p := s.Phase(); p != PhaseEventPending {
		return EventCard{}, apperrors.WithMessage(apperrors.ErrInvalidPhase,
			fmt.Sprintf("No event is due in phase %s", p))
	}
	events, err := s.DrawEvents(1)
	if err != nil {
		return EventCard{}, err
	}
	ev := events[0]
	s.turn.event = &ev
	s.ApplyEvent(ev)
	return ev, nil
}

// PresentOffers draws n offer candidates for the month. It is legal once,
// after the event has been resolved.
func (s *State) PresentOffers(n int) ([]OfferCard, error) {
	if p := s.Phase(); p != PhaseOffersPending || len(s.turn.offers) > 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidPhase,
			fmt.Sprintf("Offers cannot be drawn in phase %s", p))
	}
	offers, err := s.DrawOffers(n)
	if err != nil {
		return nil, err
	}
	s.turn.offers = offers
	return s.CurrentOffers(), nil
}

// PurchaseCandidate buys the index-th offer candidate of the current month.
// Candidates stay on the table after a purchase and may be bought again.
func (s *State) PurchaseCandidate(index int) (PortfolioItem, error) {
	if p := s.Phase(); p != PhaseOffersPending {
		return PortfolioItem{}, apperrors.WithMessage(apperrors.ErrInvalidPhase,
			fmt.Sprintf("Offers cannot be bought in phase %s", p))
	}
	if index < 0 || index >= len(s.turn.offers) {
		return PortfolioItem{}, apperrors.WithMessage(apperrors.ErrOfferNotOffered,
			fmt.Sprintf("No offer candidate at index %d", index))
	}
	return s.PurchaseOffer(s.turn.offers[index])
}

// DeclineOffers closes this month's offers. The month can then only be ended.
func (s *State) DeclineOffers() error {
	if p := s.Phase(); p != PhaseOffersPending {
		return apperrors.WithMessage(apperrors.ErrInvalidPhase,
			fmt.Sprintf("There are no open offers in phase %s", p))
	}
	s.turn.closed = true
	s.record("Passed on this month's offers")
	return nil
}
