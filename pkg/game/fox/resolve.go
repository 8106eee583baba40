package fox

import (
	"fmt"

	"github.com/mpsalisbury/foxforest/pkg/cards"
	"github.com/mpsalisbury/foxforest/pkg/game"
)

// ResolveTrick returns the seat that wins a two-card trick under the decree's suit.
func ResolveTrick(t game.Trick, decree cards.Card) (game.Seat, error) {
	if t.Size() != 2 {
		return game.First, fmt.Errorf("%w: trick holds %d cards, want 2", ErrInconsistentTrick, t.Size())
	}
	led, followed := t.Claims[0], t.Claims[1]
	if !led.Seat.Valid() || !followed.Seat.Valid() || led.Seat == followed.Seat {
		return game.First, fmt.Errorf("%w: claims %s do not name both seats", ErrInconsistentTrick, t)
	}
	trump := decree.Suit

	// A lone Witch is treated as trump; only a genuine trump of higher value beats it.
	witchLed := led.Card.Value == cards.Witch
	witchFollowed := followed.Card.Value == cards.Witch
	if witchLed != witchFollowed {
		witch, other := led, followed
		if witchFollowed {
			witch, other = followed, led
		}
		if other.Card.Suit == trump && other.Card.Value > witch.Card.Value {
			return other.Seat, nil
		}
		return witch.Seat, nil
	}

	if led.Card.Suit == followed.Card.Suit {
		if followed.Card.Value > led.Card.Value {
			return followed.Seat, nil
		}
		return led.Seat, nil
	}
	if followed.Card.Suit == trump {
		return followed.Seat, nil
	}
	return led.Seat, nil
}

// NextLead returns who leads after winner takes t: the winner, unless the
// other seat lost the trick with a Swan. Claims are scanned in play order and
// the last qualifying Swan decides; with one claim per seat only the loser's
// card can qualify.
func NextLead(t game.Trick, winner game.Seat) game.Seat {
	next := winner
	for _, c := range t.Claims {
		if c.Card.Value == cards.Swan && c.Seat != winner {
			next = c.Seat
		}
	}
	return next
}
