package cards

import (
	"errors"
	"fmt"
	"math/rand"
)

// Sizes of a deal. The stock keeps what is left after both hands and the decree.
const (
	DeckSize  = 33
	HandSize  = 13
	StockSize = DeckSize - 2*HandSize - 1
)

var ErrDeckExhausted = errors.New("deck exhausted")

// Deck is an ordered stock of cards, drawn from the front.
type Deck struct {
	cards Cards
}

// NewDeck returns the canonical, unshuffled 33-card deck.
func NewDeck() *Deck {
	return &Deck{cards: MakeDeck()}
}

// NewDeckOf returns a deck holding exactly cs, top card first.
func NewDeckOf(cs Cards) *Deck {
	return &Deck{cards: cs.Copy()}
}

func (d *Deck) Len() int {
	return len(d.cards)
}

// Cards returns a copy of the remaining cards, top first.
func (d *Deck) Cards() Cards {
	return d.cards.Copy()
}

func (d *Deck) Clone() *Deck {
	return &Deck{cards: d.cards.Copy()}
}

func (d *Deck) Shuffle(rng *rand.Rand) {
	d.cards.Shuffle(rng)
}

// DrawTop removes and returns the first n cards.
func (d *Deck) DrawTop(n int) (Cards, error) {
	if n < 0 || n > len(d.cards) {
		return nil, fmt.Errorf("%w: drawing %d of %d cards", ErrDeckExhausted, n, len(d.cards))
	}
	drawn := d.cards[:n].Copy()
	d.cards = d.cards[n:].Copy()
	return drawn, nil
}
