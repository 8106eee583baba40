package player

import (
	"context"
	"math/rand"
	"testing"

	"github.com/mpsalisbury/foxforest/pkg/cards"
	"github.com/mpsalisbury/foxforest/pkg/game"
	"github.com/mpsalisbury/foxforest/pkg/game/fox"
)

func TestStrategiesPlayLegalRounds(t *testing.T) {
	for seed := int64(1); seed <= 50; seed++ {
		rng := rand.New(rand.NewSource(seed))
		choosers := [2]fox.Chooser{NewBasicStrategy(), NewRandomStrategy(rng)}
		if seed%2 == 0 {
			choosers = [2]fox.Chooser{NewRandomStrategy(rng), NewBasicStrategy()}
		}
		m := fox.NewMatch(fox.Config{Rand: rand.New(rand.NewSource(seed))}, choosers)
		if _, err := m.PlayRound(context.Background()); err != nil {
			t.Fatalf("seed %d: PlayRound()=%v", seed, err)
		}
	}
}

func TestBasicAgainstBasic(t *testing.T) {
	m := fox.NewMatch(fox.Config{Rand: rand.New(rand.NewSource(7))}, [2]fox.Chooser{NewBasicStrategy(), NewBasicStrategy()})
	for i := 0; i < 10; i++ {
		if _, err := m.PlayRound(context.Background()); err != nil {
			t.Fatalf("round %d: PlayRound()=%v", i+1, err)
		}
	}
}

func followState(decree cards.Card, hand cards.Cards, lead cards.Card, won int) fox.State {
	trick := game.Trick{}
	trick.Add(game.First, lead)
	st := fox.State{
		Phase:  fox.AwaitingFollow,
		Seat:   game.Second,
		Turn:   game.Second,
		Decree: decree,
		Trick:  trick,
		Hand:   hand,
	}
	for i := 0; i < won; i++ {
		st.WonTricks[game.Second] = append(st.WonTricks[game.Second], game.Trick{})
	}
	st.Turns = won
	st.LegalPlays = fox.LegalPlays(game.Second, game.Second, hand, trick)
	return st
}

func TestBasicFollow(t *testing.T) {
	tests := []struct {
		name string
		st   fox.State
		want cards.Card
	}{
		{"wins cheaply when short of tricks", followState(cards.C1k, cards.Cards{cards.C4b, cards.C8b, cards.C10b}, cards.C6b, 2), cards.C8b},
		{"ducks once enough tricks are won", followState(cards.C1k, cards.Cards{cards.C4b, cards.C8b, cards.C2b}, cards.C6b, 7), cards.C4b},
		{"wins with a witch before a trump", followState(cards.C1k, cards.Cards{cards.C9b, cards.C6k}, cards.C2m, 2), cards.C9b},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := NewBasicStrategy().ChooseMove(tc.st)
			if got.Card != tc.want {
				t.Errorf("ChooseMove(hand %s, trick %s)=%s, want %s", tc.st.Hand, tc.st.Trick, got, tc.want)
			}
		})
	}
}

func TestBasicDiscardKeepsTrumps(t *testing.T) {
	st := followState(cards.C1k, cards.Cards{cards.C2k, cards.C9b, cards.C4m, cards.C6b}, cards.C6m, 2)
	if got := NewBasicStrategy().ChooseDiscard(st); got != cards.C4m {
		t.Errorf("ChooseDiscard(%s)=%s, want 4M", st.Hand, got)
	}
}

func TestNewPlayerFromFlag(t *testing.T) {
	for _, kind := range []string{"", "basic", "term", "random"} {
		if _, err := NewPlayerFromFlag(kind, rand.New(rand.NewSource(1)), false); err != nil {
			t.Errorf("NewPlayerFromFlag(%q)=%v", kind, err)
		}
	}
	if _, err := NewPlayerFromFlag("oracle", nil, false); err == nil {
		t.Errorf("NewPlayerFromFlag(oracle)=nil error, want error")
	}
}

func TestLongestSuit(t *testing.T) {
	tests := []struct {
		hand cards.Cards
		want cards.Suit
	}{
		{cards.Cards{cards.C2m, cards.C4m, cards.C1b}, cards.Moons},
		{cards.Cards{cards.C2m, cards.C6k, cards.C1b}, cards.Bells},
		{cards.Cards{cards.C8m, cards.C6k, cards.C2m, cards.C10k}, cards.Keys},
	}
	for _, tc := range tests {
		if got := longestSuit(tc.hand); got != tc.want {
			t.Errorf("longestSuit(%s)=%s, want %s", tc.hand, got, tc.want)
		}
	}
}
