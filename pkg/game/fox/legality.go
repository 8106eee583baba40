package fox

import (
	"fmt"

	"github.com/mpsalisbury/foxforest/pkg/cards"
	"github.com/mpsalisbury/foxforest/pkg/game"
)

// ValidatePlay reports whether p may be played by the seat holding the turn,
// given that seat's hand and the trick so far. Checks run in order and the
// first failure is returned, wrapping ErrInvalidPlay.
func ValidatePlay(p Play, turn game.Seat, hand cards.Cards, trick game.Trick) error {
	if p.Seat != turn {
		return fmt.Errorf("%w: it is not %s's turn", ErrInvalidPlay, p.Seat)
	}
	if !hand.ContainsCard(p.Card) {
		return fmt.Errorf("%w: %s does not hold %s", ErrInvalidPlay, p.Seat, p.Card)
	}
	if p.Card.Value == cards.Fox && p.UseAbility {
		if p.AbilityCard == p.Card || !hand.ContainsCard(p.AbilityCard) {
			return fmt.Errorf("%w: %s cannot exchange %s with the decree", ErrInvalidPlay, p.Seat, p.AbilityCard)
		}
	}
	lead, ok := trick.Lead()
	if !ok {
		return nil
	}
	leadSuit := lead.Card.Suit
	if p.Card.Suit != leadSuit {
		if hand.ContainsSuit(leadSuit) {
			return fmt.Errorf("%w: %s must follow %s", ErrInvalidPlay, p.Seat, leadSuit)
		}
		return nil
	}
	// A led Monarch must be answered with a 1 or the highest card of its suit.
	if lead.Card.Value == cards.Monarch && p.Card.Value != cards.Swan {
		if higher := hand.FilterBySuit(leadSuit).FilterGT(p.Card.Value); len(higher) > 0 {
			return fmt.Errorf("%w: %s must answer %s with a 1 or %s", ErrInvalidPlay, p.Seat, lead.Card, higher.Highest())
		}
	}
	return nil
}

// LegalPlays lists every move seat s could make: one plain play per legal
// card, plus one exchange play per possible target when the card is a Fox.
func LegalPlays(s game.Seat, turn game.Seat, hand cards.Cards, trick game.Trick) []Play {
	var plays []Play
	for _, c := range hand {
		p := NewPlay(s, c)
		if ValidatePlay(p, turn, hand, trick) != nil {
			continue
		}
		plays = append(plays, p)
		if c.Value != cards.Fox {
			continue
		}
		for _, target := range hand {
			if target != c {
				plays = append(plays, NewExchangePlay(s, c, target))
			}
		}
	}
	return plays
}
