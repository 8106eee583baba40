package game

import (
	"github.com/mpsalisbury/foxforest/pkg/cards"
)

// Report activity of a round back to observers.
type Reporter interface {
	ReportRoundStarted(roundId string, decree cards.Card)
	ReportCardPlayed(roundId string, s Seat, card cards.Card)
	ReportDecreeExchanged(roundId string, s Seat, oldDecree, newDecree cards.Card)
	ReportCardDrawn(roundId string, s Seat)
	ReportCardDiscarded(roundId string, s Seat)
	ReportTrickCompleted(roundId string, trick Trick, winner, nextLead Seat)
	ReportRoundFinished(roundId string, tricksWon [2]int, points [2]int)
}

// Embed to implement only the reports you care about.
type UnimplementedReporter struct{}

func (UnimplementedReporter) ReportRoundStarted(roundId string, decree cards.Card) {}

func (UnimplementedReporter) ReportCardPlayed(roundId string, s Seat, card cards.Card) {}

func (UnimplementedReporter) ReportDecreeExchanged(roundId string, s Seat, oldDecree, newDecree cards.Card) {}

func (UnimplementedReporter) ReportCardDrawn(roundId string, s Seat) {}

func (UnimplementedReporter) ReportCardDiscarded(roundId string, s Seat) {}

func (UnimplementedReporter) ReportTrickCompleted(roundId string, trick Trick, winner, nextLead Seat) {}

func (UnimplementedReporter) ReportRoundFinished(roundId string, tricksWon [2]int, points [2]int) {}

// MultiReporter fans every report out to all of its members in order.
type MultiReporter []Reporter

func (m MultiReporter) ReportRoundStarted(roundId string, decree cards.Card) {
	for _, r := range m {
		r.ReportRoundStarted(roundId, decree)
	}
}
func (m MultiReporter) ReportCardPlayed(roundId string, s Seat, card cards.Card) {
	for _, r := range m {
		r.ReportCardPlayed(roundId, s, card)
	}
}
func (m MultiReporter) ReportDecreeExchanged(roundId string, s Seat, oldDecree, newDecree cards.Card) {
	for _, r := range m {
		r.ReportDecreeExchanged(roundId, s, oldDecree, newDecree)
	}
}
func (m MultiReporter) ReportCardDrawn(roundId string, s Seat) {
	for _, r := range m {
		r.ReportCardDrawn(roundId, s)
	}
}
func (m MultiReporter) ReportCardDiscarded(roundId string, s Seat) {
	for _, r := range m {
		r.ReportCardDiscarded(roundId, s)
	}
}
func (m MultiReporter) ReportTrickCompleted(roundId string, trick Trick, winner, nextLead Seat) {
	for _, r := range m {
		r.ReportTrickCompleted(roundId, trick, winner, nextLead)
	}
}
func (m MultiReporter) ReportRoundFinished(roundId string, tricksWon [2]int, points [2]int) {
	for _, r := range m {
		r.ReportRoundFinished(roundId, tricksWon, points)
	}
}
