package fox

import (
	"math/rand"
	"testing"

	"github.com/mpsalisbury/foxforest/pkg/cards"
	"github.com/mpsalisbury/foxforest/pkg/game"
)

// newTestState builds a round in the middle of play. The trick's claims decide
// whether it waits for a lead or a follow.
func newTestState(turn game.Seat, decree cards.Card, hands [2]cards.Cards, trick game.Trick, stock cards.Cards) *roundState {
	st := newRoundState()
	st.id = "test"
	st.turn = turn
	st.decree = decree
	st.hands = [2]cards.Cards{hands[0].Copy(), hands[1].Copy()}
	st.trick = trick.Copy()
	st.stock = cards.NewDeckOf(stock)
	st.phase = AwaitingLead
	if trick.Size() == 1 {
		st.phase = AwaitingFollow
	}
	return st
}

func trickOf(claims ...game.Claim) game.Trick {
	return game.Trick{Claims: claims}
}

func claim(s game.Seat, c cards.Card) game.Claim {
	return game.Claim{Card: c, Seat: s}
}

// checkConservation fails t unless st accounts for every card of the deck exactly once.
func checkConservation(t *testing.T, st *roundState) {
	t.Helper()
	all := st.allCards()
	if len(all) != cards.DeckSize || !all.Equals(cards.MakeDeck()) {
		t.Fatalf("round accounts for %d cards (%s), want the %d-card deck", len(all), all, cards.DeckSize)
	}
}

// randomChooser plays uniformly among legal moves.
type randomChooser struct {
	rng *rand.Rand
}

func newRandomChooser(seed int64) *randomChooser {
	return &randomChooser{rng: rand.New(rand.NewSource(seed))}
}

func (c *randomChooser) ChooseMove(s State) Play {
	return s.LegalPlays[c.rng.Intn(len(s.LegalPlays))]
}

func (c *randomChooser) ChooseDiscard(s State) cards.Card {
	return s.Hand[c.rng.Intn(len(s.Hand))]
}

// countingReporter tallies reports.
type countingReporter struct {
	game.UnimplementedReporter
	started    int
	played     int
	exchanged  int
	drawn      int
	discarded  int
	tricks     int
	finished   int
	lastPoints [2]int
}

func (c *countingReporter) ReportRoundStarted(string, cards.Card) {
	c.started++
}

func (c *countingReporter) ReportCardPlayed(string, game.Seat, cards.Card) {
	c.played++
}

func (c *countingReporter) ReportDecreeExchanged(string, game.Seat, cards.Card, cards.Card) {
	c.exchanged++
}

func (c *countingReporter) ReportCardDrawn(string, game.Seat) {
	c.drawn++
}

func (c *countingReporter) ReportCardDiscarded(string, game.Seat) {
	c.discarded++
}

func (c *countingReporter) ReportTrickCompleted(string, game.Trick, game.Seat, game.Seat) {
	c.tricks++
}

func (c *countingReporter) ReportRoundFinished(_ string, _ [2]int, points [2]int) {
	c.finished++
	c.lastPoints = points
}
