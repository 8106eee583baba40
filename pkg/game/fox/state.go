package fox

import (
	"github.com/mpsalisbury/foxforest/pkg/cards"
	"github.com/mpsalisbury/foxforest/pkg/game"
)

// TricksPerRound is the number of tricks played before a round is scored.
const TricksPerRound = cards.HandSize

// event is a report held back until the change that produced it is committed.
type event func(r game.Reporter)

type roundState struct {
	id       string
	phase    Phase
	turn     game.Seat
	turns    int // tricks completed
	decree   cards.Card
	stock    *cards.Deck
	discards cards.Cards
	hands    [2]cards.Cards
	won      [2][]game.Trick
	trick    game.Trick
	history  []game.Trick
	events   []event
}

func newRoundState() *roundState {
	return &roundState{
		phase: Unstarted,
		stock: cards.NewDeckOf(nil),
	}
}

// clone returns a deep copy that shares no slices with st. Pending events are not copied.
func (st *roundState) clone() *roundState {
	c := &roundState{
		id:       st.id,
		phase:    st.phase,
		turn:     st.turn,
		turns:    st.turns,
		decree:   st.decree,
		stock:    st.stock.Clone(),
		discards: st.discards.Copy(),
		trick:    st.trick.Copy(),
		history:  game.CopyTricks(st.history),
	}
	for _, s := range game.Seats {
		c.hands[s] = st.hands[s].Copy()
		c.won[s] = game.CopyTricks(st.won[s])
	}
	return c
}

func (st *roundState) emit(e event) {
	st.events = append(st.events, e)
}

func (st *roundState) tricksWon() [2]int {
	return [2]int{len(st.won[game.First]), len(st.won[game.Second])}
}

// State is what one seat can see of a round.
type State struct {
	RoundID       string
	Phase         Phase
	Seat          game.Seat // whose view this is
	Turn          game.Seat
	Turns         int
	Decree        cards.Card
	Trick         game.Trick
	Hand          cards.Cards
	OpponentCards int
	WonTricks     [2][]game.Trick
	StockSize     int
	LegalPlays    []Play // empty unless Seat may play a card now
}

func (s State) IsMyTurn() bool {
	return s.Turn == s.Seat && (s.Phase.acceptsPlay() || s.Phase == AwaitingDiscard)
}

func (s State) TricksWon(seat game.Seat) int {
	return len(s.WonTricks[seat])
}

func (st *roundState) view(s game.Seat) State {
	v := State{
		RoundID:       st.id,
		Phase:         st.phase,
		Seat:          s,
		Turn:          st.turn,
		Turns:         st.turns,
		Decree:        st.decree,
		Trick:         st.trick.Copy(),
		Hand:          st.hands[s].Copy(),
		OpponentCards: len(st.hands[s.Other()]),
		StockSize:     st.stock.Len(),
	}
	for _, seat := range game.Seats {
		v.WonTricks[seat] = game.CopyTricks(st.won[seat])
	}
	if st.phase.acceptsPlay() && st.turn == s {
		v.LegalPlays = LegalPlays(s, st.turn, st.hands[s], st.trick)
	}
	return v
}

// allCards gathers every card the round accounts for.
func (st *roundState) allCards() cards.Cards {
	all := cards.Combine(st.stock.Cards(), st.discards, st.hands[game.First], st.hands[game.Second], st.trick.Cards())
	for _, s := range game.Seats {
		for _, t := range st.won[s] {
			all = append(all, t.Cards()...)
		}
	}
	if st.phase != Unstarted {
		all = append(all, st.decree)
	}
	return all
}
