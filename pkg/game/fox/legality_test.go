package fox

import (
	"errors"
	"testing"

	"github.com/mpsalisbury/foxforest/pkg/cards"
	"github.com/mpsalisbury/foxforest/pkg/game"
)

func TestValidatePlayTurnAndHand(t *testing.T) {
	hand := cards.Cards{cards.C4m, cards.C9k}
	tests := []struct {
		name string
		play Play
	}{
		{"not this seat's turn", NewPlay(game.Second, cards.C4m)},
		{"card not in hand", NewPlay(game.First, cards.C5m)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidatePlay(tc.play, game.First, hand, game.Trick{})
			if !errors.Is(err, ErrInvalidPlay) {
				t.Errorf("ValidatePlay(%s)=%v, want ErrInvalidPlay", tc.play, err)
			}
		})
	}
}

func TestValidatePlayOpeningLead(t *testing.T) {
	hand := cards.Cards{cards.C4m, cards.C9k, cards.C11b}
	for _, c := range hand {
		if err := ValidatePlay(NewPlay(game.First, c), game.First, hand, game.Trick{}); err != nil {
			t.Errorf("ValidatePlay(lead %s)=%v, want nil", c, err)
		}
	}
}

func TestValidatePlaySecondCard(t *testing.T) {
	tests := []struct {
		name   string
		lead   cards.Card
		follow cards.Card
		hand   cards.Cards
		valid  bool
	}{
		{"card not in hand", cards.C7k, cards.C9k, cards.Cards{cards.C8k}, false},
		{"card not in hand with other suit", cards.C7k, cards.C9k, cards.Cards{cards.C8k, cards.C9m}, false},
		{"higher key held after monarch", cards.C11k, cards.C9k, cards.Cards{cards.C9k, cards.C10k}, false},
		{"higher key held over low card after monarch", cards.C11k, cards.C2k, cards.Cards{cards.C4k, cards.C2k, cards.C1k}, false},
		{"must follow suit", cards.C7k, cards.C4b, cards.Cards{cards.C4b, cards.C2k}, false},
		{"follows suit", cards.C7k, cards.C2k, cards.Cards{cards.C4b, cards.C2k, cards.C10k}, true},
		{"may discard off suit when void", cards.C7k, cards.C4b, cards.Cards{cards.C4b, cards.C2m}, true},
		{"highest key after monarch", cards.C11k, cards.C9k, cards.Cards{cards.C3k, cards.C5k, cards.C9k}, true},
		{"swan after monarch", cards.C11k, cards.C1k, cards.Cards{cards.C8k, cards.C1k}, true},
		{"void after monarch", cards.C11k, cards.C4b, cards.Cards{cards.C4b}, true},
		{"monarch rule only binds its own suit", cards.C11k, cards.C10b, cards.Cards{cards.C10b, cards.C11b}, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			trick := trickOf(claim(game.First, tc.lead))
			err := ValidatePlay(NewPlay(game.Second, tc.follow), game.Second, tc.hand, trick)
			if tc.valid && err != nil {
				t.Errorf("ValidatePlay(%s after %s, hand %s)=%v, want nil", tc.follow, tc.lead, tc.hand, err)
			}
			if !tc.valid && !errors.Is(err, ErrInvalidPlay) {
				t.Errorf("ValidatePlay(%s after %s, hand %s)=%v, want ErrInvalidPlay", tc.follow, tc.lead, tc.hand, err)
			}
		})
	}
}

func TestValidatePlayExchange(t *testing.T) {
	hand := cards.Cards{cards.C3k, cards.C8b}
	tests := []struct {
		name  string
		play  Play
		valid bool
	}{
		{"target in hand", NewExchangePlay(game.First, cards.C3k, cards.C8b), true},
		{"target not in hand", NewExchangePlay(game.First, cards.C3k, cards.C9m), false},
		{"target is the fox itself", NewExchangePlay(game.First, cards.C3k, cards.C3k), false},
		{"ability ignored off a fox", Play{Seat: game.First, Card: cards.C8b, UseAbility: true, AbilityCard: cards.C9m}, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidatePlay(tc.play, game.First, hand, game.Trick{})
			if tc.valid != (err == nil) {
				t.Errorf("ValidatePlay(%s)=%v, want valid=%t", tc.play, err, tc.valid)
			}
		})
	}
}

func TestLegalPlays(t *testing.T) {
	hand := cards.Cards{cards.C3k, cards.C8b, cards.C2m}
	got := LegalPlays(game.First, game.First, hand, game.Trick{})
	want := []Play{
		NewPlay(game.First, cards.C3k),
		NewExchangePlay(game.First, cards.C3k, cards.C8b),
		NewExchangePlay(game.First, cards.C3k, cards.C2m),
		NewPlay(game.First, cards.C8b),
		NewPlay(game.First, cards.C2m),
	}
	if len(got) != len(want) {
		t.Fatalf("LegalPlays(%s)=%v, want %v", hand, got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("LegalPlays(%s)[%d]=%s, want %s", hand, i, got[i], want[i])
		}
	}

	following := LegalPlays(game.Second, game.Second, cards.Cards{cards.C4b, cards.C6b, cards.C9m}, trickOf(claim(game.First, cards.C2b)))
	if len(following) != 2 {
		t.Errorf("LegalPlays following 2B=%v, want the two bells", following)
	}
	if others := LegalPlays(game.First, game.Second, hand, game.Trick{}); len(others) != 0 {
		t.Errorf("LegalPlays out of turn=%v, want none", others)
	}
}
