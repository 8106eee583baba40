package game

import (
	"strings"

	"github.com/mpsalisbury/foxforest/pkg/cards"
)

// Claim ties a played card to the seat that played it.
type Claim struct {
	Card cards.Card
	Seat Seat
}

func (c Claim) String() string {
	return c.Card.String() + "(" + c.Seat.String() + ")"
}

// Trick holds the claims of one trick in play order.
type Trick struct {
	Claims []Claim
}

func (t *Trick) Add(s Seat, c cards.Card) {
	t.Claims = append(t.Claims, Claim{Card: c, Seat: s})
}

func (t Trick) Size() int {
	return len(t.Claims)
}

// Returns false if the trick is empty.
func (t Trick) Lead() (Claim, bool) {
	if len(t.Claims) > 0 {
		return t.Claims[0], true
	}
	return Claim{}, false
}

// Returns false if no such card.
func (t Trick) LeadSuit() (cards.Suit, bool) {
	if lead, ok := t.Lead(); ok {
		return lead.Card.Suit, true
	}
	return cards.Bells, false
}

func (t Trick) Cards() cards.Cards {
	cs := make(cards.Cards, 0, len(t.Claims))
	for _, c := range t.Claims {
		cs = append(cs, c.Card)
	}
	return cs
}

func (t Trick) Copy() Trick {
	if t.Claims == nil {
		return Trick{}
	}
	claims := make([]Claim, len(t.Claims))
	copy(claims, t.Claims)
	return Trick{Claims: claims}
}

func (t Trick) String() string {
	ss := make([]string, 0, len(t.Claims))
	for _, c := range t.Claims {
		ss = append(ss, c.String())
	}
	return strings.Join(ss, " ")
}

// CopyTricks deep-copies a list of tricks.
func CopyTricks(ts []Trick) []Trick {
	out := make([]Trick, 0, len(ts))
	for _, t := range ts {
		out = append(out, t.Copy())
	}
	return out
}
