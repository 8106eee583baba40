package fox

import (
	"github.com/mpsalisbury/foxforest/pkg/cards"
	"github.com/mpsalisbury/foxforest/pkg/game"
)

// Play is a proposed move. It has no effect until the round accepts it.
type Play struct {
	Seat        game.Seat
	Card        cards.Card
	UseAbility  bool       // only meaningful for a Fox
	AbilityCard cards.Card // hand card exchanged with the decree
}

func NewPlay(s game.Seat, c cards.Card) Play {
	return Play{Seat: s, Card: c}
}

// NewExchangePlay plays a Fox and exchanges target with the decree card.
func NewExchangePlay(s game.Seat, fox, target cards.Card) Play {
	return Play{Seat: s, Card: fox, UseAbility: true, AbilityCard: target}
}

// NewDiscard names the card to give up while a discard is pending.
func NewDiscard(s game.Seat, c cards.Card) Play {
	return Play{Seat: s, Card: c}
}

func (p Play) String() string {
	if p.UseAbility {
		return p.Card.String() + " exchanging " + p.AbilityCard.String()
	}
	return p.Card.String()
}
