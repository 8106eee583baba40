package fox

import (
	"errors"

	"github.com/mpsalisbury/foxforest/pkg/cards"
)

var (
	// ErrInvalidPlay is returned for a move the rules do not allow. The round is unchanged.
	ErrInvalidPlay = errors.New("invalid play")

	// ErrDeckExhausted means a draw found the stock empty.
	ErrDeckExhausted = cards.ErrDeckExhausted

	// ErrInconsistentTrick means a trick could not be resolved from its claims.
	ErrInconsistentTrick = errors.New("inconsistent trick state")

	// ErrRoundInProgress is returned for requests that need a finished (or unstarted) round.
	ErrRoundInProgress = errors.New("round in progress")

	// ErrNotDealt is returned by Run before Setup.
	ErrNotDealt = errors.New("round not dealt")

	// ErrNoChooser means Run reached a seat that has no Chooser.
	ErrNoChooser = errors.New("no chooser for seat")
)
