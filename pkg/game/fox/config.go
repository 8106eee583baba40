package fox

import (
	"math/rand"
	"time"

	"github.com/mpsalisbury/foxforest/pkg/cards"
	"github.com/mpsalisbury/foxforest/pkg/game"
	"go.uber.org/zap"
)

// Chooser decides moves for one seat. It is only asked when that seat must act.
type Chooser interface {
	ChooseMove(State) Play
	ChooseDiscard(State) cards.Card
}

// Config holds the collaborators of a round. Zero values get defaults.
type Config struct {
	Rand     *rand.Rand    // shuffles the deck
	Logger   *zap.Logger   // engine diagnostics; also receives every report
	Reporter game.Reporter // optional observer of round events
}

func (c Config) withDefaults() Config {
	if c.Rand == nil {
		c.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if c.Logger == nil {
		c.Logger = zap.NewNop()
	}
	return c
}

func (c Config) reporter() game.Reporter {
	rs := game.MultiReporter{game.NewLogReporter(c.Logger)}
	if c.Reporter != nil {
		rs = append(rs, c.Reporter)
	}
	return rs
}
