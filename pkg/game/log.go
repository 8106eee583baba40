package game

import (
	"github.com/mpsalisbury/foxforest/pkg/cards"
	"go.uber.org/zap"
)

// NewLogReporter writes every report to logger as a structured entry.
func NewLogReporter(logger *zap.Logger) Reporter {
	return &logReporter{logger: logger}
}

type logReporter struct {
	logger *zap.Logger
}

func (l *logReporter) ReportRoundStarted(roundId string, decree cards.Card) {
	l.logger.Info("round started",
		zap.String("round_id", roundId),
		zap.Stringer("decree", decree),
	)
}

func (l *logReporter) ReportCardPlayed(roundId string, s Seat, card cards.Card) {
	l.logger.Debug("card played",
		zap.String("round_id", roundId),
		zap.Stringer("seat", s),
		zap.Stringer("card", card),
	)
}

func (l *logReporter) ReportDecreeExchanged(roundId string, s Seat, oldDecree, newDecree cards.Card) {
	l.logger.Debug("decree exchanged",
		zap.String("round_id", roundId),
		zap.Stringer("seat", s),
		zap.Stringer("old_decree", oldDecree),
		zap.Stringer("new_decree", newDecree),
	)
}

func (l *logReporter) ReportCardDrawn(roundId string, s Seat) {
	l.logger.Debug("card drawn",
		zap.String("round_id", roundId),
		zap.Stringer("seat", s),
	)
}

func (l *logReporter) ReportCardDiscarded(roundId string, s Seat) {
	l.logger.Debug("card discarded",
		zap.String("round_id", roundId),
		zap.Stringer("seat", s),
	)
}

func (l *logReporter) ReportTrickCompleted(roundId string, trick Trick, winner, nextLead Seat) {
	l.logger.Debug("trick completed",
		zap.String("round_id", roundId),
		zap.Stringer("trick", trick),
		zap.Stringer("winner", winner),
		zap.Stringer("next_lead", nextLead),
	)
}

func (l *logReporter) ReportRoundFinished(roundId string, tricksWon [2]int, points [2]int) {
	l.logger.Info("round finished",
		zap.String("round_id", roundId),
		zap.Ints("tricks_won", tricksWon[:]),
		zap.Ints("points", points[:]),
	)
}
