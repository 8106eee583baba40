package player

import (
	"github.com/mpsalisbury/foxforest/pkg/cards"
	"github.com/mpsalisbury/foxforest/pkg/game/fox"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// BasicStrategy aims for the seven to nine tricks that score best. It wins
// tricks cheaply while short of seven and sheds them once there.

func NewBasicStrategy() fox.Chooser {
	return basicStrategy{}
}

type basicStrategy struct{}

const (
	minTargetTricks = 7
	// Four to six tricks still beat three or fewer once seven is out of reach.
	minConsolationTricks = 4
)

func wantsTricks(st fox.State) bool {
	won := st.TricksWon(st.Seat)
	remaining := fox.TricksPerRound - st.Turns
	if won+remaining < minTargetTricks {
		return won >= minConsolationTricks
	}
	return won < minTargetTricks
}

func (b basicStrategy) ChooseMove(st fox.State) fox.Play {
	plays := plainPlays(st.LegalPlays)
	var card cards.Card
	if st.Trick.Size() > 0 {
		card = chooseFollowCard(st, plays)
	} else {
		card = chooseLeadCard(st, plays)
	}
	return withExchange(st, fox.NewPlay(st.Seat, card))
}

// Publicly expose basic strategy.
func ChooseBasicStrategyMove(st fox.State) fox.Play {
	return basicStrategy{}.ChooseMove(st)
}

func plainPlays(plays []fox.Play) cards.Cards {
	var cs cards.Cards
	for _, p := range plays {
		if !p.UseAbility {
			cs = append(cs, p.Card)
		}
	}
	return cs
}

func isTrump(st fox.State) func(cards.Card) bool {
	return func(c cards.Card) bool { return c.Suit == st.Decree.Suit }
}

func notTrump(st fox.State) func(cards.Card) bool {
	return func(c cards.Card) bool { return c.Suit != st.Decree.Suit }
}

func chooseLeadCard(st fox.State, plays cards.Cards) cards.Card {
	if len(plays) == 1 {
		return plays[0]
	}
	if wantsTricks(st) {
		// Lead the strongest trump, else the strongest card.
		if trumps := plays.Filter(isTrump(st)); len(trumps) > 0 {
			return trumps.Highest()
		}
		return plays.Highest()
	}
	// Lead low off suit so the opponent is likely to take it.
	if others := plays.Filter(notTrump(st)); len(others) > 0 {
		return others.Lowest()
	}
	return plays.Lowest()
}

func chooseFollowCard(st fox.State, plays cards.Cards) cards.Card {
	if len(plays) == 1 {
		return plays[0]
	}
	winners, losers := splitByOutcome(st, plays)
	if wantsTricks(st) {
		if len(winners) > 0 {
			// Win as cheaply as possible, sparing trumps.
			if others := winners.Filter(notTrump(st)); len(others) > 0 {
				return others.Lowest()
			}
			return winners.Lowest()
		}
		return losers.Lowest()
	}
	if len(losers) > 0 {
		// Dump the strongest card that still loses.
		return losers.Highest()
	}
	return winners.Lowest()
}

// splitByOutcome divides plays by whether following with them takes the trick.
func splitByOutcome(st fox.State, plays cards.Cards) (winners, losers cards.Cards) {
	for _, c := range plays {
		t := st.Trick.Copy()
		t.Add(st.Seat, c)
		winner, err := fox.ResolveTrick(t, st.Decree)
		if err == nil && winner == st.Seat {
			winners = append(winners, c)
		} else {
			losers = append(losers, c)
		}
	}
	return winners, losers
}

// withExchange adds a decree exchange to a Fox play when it helps: either
// trading the lowest trump for a higher decree, or moving trumps to our
// longest suit.
func withExchange(st fox.State, p fox.Play) fox.Play {
	if p.Card.Value != cards.Fox || !wantsTricks(st) {
		return p
	}
	rest := st.Hand.Copy().Remove(p.Card)
	if len(rest) == 0 {
		return p
	}
	long := longestSuit(rest)
	target := rest.FilterBySuit(long).Lowest()
	if long == st.Decree.Suit && target.Value >= st.Decree.Value {
		return p
	}
	exchange := fox.NewExchangePlay(st.Seat, p.Card, target)
	if !slices.Contains(st.LegalPlays, exchange) {
		return p
	}
	return exchange
}

// longestSuit returns the suit with the most cards, ties to the lower suit.
func longestSuit(hand cards.Cards) cards.Suit {
	bySuit := hand.SplitBySuit()
	suits := maps.Keys(bySuit)
	slices.Sort(suits)
	hands := make([]cards.Cards, 0, len(suits))
	for _, s := range suits {
		hands = append(hands, bySuit[s])
	}
	longest := cards.GetExtremeCards(hands, func(c1, c2 cards.Cards) bool {
		return len(c1) > len(c2)
	})
	return longest[0].Suit
}

func (b basicStrategy) ChooseDiscard(st fox.State) cards.Card {
	hand := st.Hand
	if wantsTricks(st) {
		// Keep trumps and Witches; give up the weakest of the rest.
		weak := hand.Filter(func(c cards.Card) bool {
			return c.Suit != st.Decree.Suit && c.Value != cards.Witch
		})
		if len(weak) > 0 {
			return weak.Lowest()
		}
		return hand.Lowest()
	}
	// Give up strength we no longer need, trumps first.
	if trumps := hand.Filter(isTrump(st)); len(trumps) > 0 {
		return trumps.Highest()
	}
	return hand.Highest()
}
