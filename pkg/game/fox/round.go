package fox

import (
	"context"
	"fmt"
	"math/rand"
	"sync"

	"github.com/google/uuid"
	"github.com/mpsalisbury/foxforest/pkg/cards"
	"github.com/mpsalisbury/foxforest/pkg/game"
	"go.uber.org/zap"
)

// Round runs one round of play between two seats. A seat with a Chooser is
// driven automatically; a seat without one waits for Step or ApplyPlay.
type Round struct {
	mu       sync.Mutex // guards st
	rng      *rand.Rand
	logger   *zap.Logger
	reporter game.Reporter
	choosers [2]Chooser
	st       *roundState
}

func NewRound(cfg Config, choosers [2]Chooser) *Round {
	cfg = cfg.withDefaults()
	return &Round{
		rng:      cfg.Rand,
		logger:   cfg.Logger,
		reporter: cfg.reporter(),
		choosers: choosers,
		st:       newRoundState(),
	}
}

// Setup shuffles and deals a new round, replacing a completed one. When a seat
// is driven externally, automated seats then play up to the first decision it
// has to make; a fully automated round waits for Run.
func (r *Round) Setup() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.st.phase != Unstarted && r.st.phase != RoundComplete {
		return fmt.Errorf("%w: cannot deal while %s", ErrRoundInProgress, r.st.phase)
	}
	st, err := r.deal()
	if err != nil {
		return err
	}
	if r.hasExternalSeat() {
		if err := r.drive(st); err != nil {
			return err
		}
	}
	r.commit(st)
	return nil
}

func (r *Round) hasExternalSeat() bool {
	return r.choosers[game.First] == nil || r.choosers[game.Second] == nil
}

func (r *Round) deal() (*roundState, error) {
	deck := cards.NewDeck()
	deck.Shuffle(r.rng)
	st := newRoundState()
	st.id = uuid.NewString()
	for _, s := range game.Seats {
		hand, err := deck.DrawTop(cards.HandSize)
		if err != nil {
			return nil, err
		}
		hand.Sort()
		st.hands[s] = hand
	}
	decree, err := deck.DrawTop(1)
	if err != nil {
		return nil, err
	}
	st.decree = decree[0]
	st.stock = deck
	st.turn = game.First
	st.phase = AwaitingLead
	id, d := st.id, st.decree
	st.emit(func(rep game.Reporter) { rep.ReportRoundStarted(id, d) })
	return st, nil
}

// commit makes st the round's state and delivers the reports it collected.
func (r *Round) commit(st *roundState) {
	events := st.events
	st.events = nil
	r.st = st
	for _, e := range events {
		e(r.reporter)
	}
}

func (r *Round) reject(p Play, err error) {
	r.logger.Debug("rejected play",
		zap.String("round_id", r.st.id),
		zap.Stringer("seat", p.Seat),
		zap.Stringer("play", p),
		zap.Stringer("phase", r.st.phase),
		zap.Error(err),
	)
}

// CheckPlay returns nil if p is a legal card play right now.
func (r *Round) CheckPlay(p Play) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.checkPlay(p)
}

func (r *Round) checkPlay(p Play) error {
	if !r.st.phase.acceptsPlay() {
		return fmt.Errorf("%w: cannot play a card while %s", ErrInvalidPlay, r.st.phase)
	}
	if !p.Seat.Valid() {
		return fmt.Errorf("%w: unknown %s", ErrInvalidPlay, p.Seat)
	}
	return ValidatePlay(p, r.st.turn, r.st.hands[p.Seat], r.st.trick)
}

func (r *Round) IsValidPlay(p Play) bool {
	return r.CheckPlay(p) == nil
}

// ApplyPlay plays p without driving automated seats afterwards.
func (r *Round) ApplyPlay(p Play) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	st := r.st.clone()
	if err := st.applyPlay(p); err != nil {
		r.reject(p, err)
		return err
	}
	r.commit(st)
	return nil
}

// ApplyDiscard settles a pending Woodcutter discard without driving automated seats afterwards.
func (r *Round) ApplyDiscard(s game.Seat, c cards.Card) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	st := r.st.clone()
	if err := st.applyDiscard(s, c); err != nil {
		r.reject(NewDiscard(s, c), err)
		return err
	}
	r.commit(st)
	return nil
}

// Step applies one external move (a discard if one is pending) and then lets
// automated seats play until an external seat must act or the round ends.
// Either all of it happens or, on error, none of it does.
func (r *Round) Step(p Play) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	st := r.st.clone()
	var err error
	if st.phase == AwaitingDiscard {
		err = st.applyDiscard(p.Seat, p.Card)
	} else {
		err = st.applyPlay(p)
	}
	if err != nil {
		r.reject(p, err)
		return err
	}
	if err := r.drive(st); err != nil {
		return err
	}
	r.commit(st)
	return nil
}

// Run plays the round to completion; every seat needs a Chooser.
func (r *Round) Run(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.st.phase == Unstarted {
		return fmt.Errorf("%w: round has not been dealt", ErrNotDealt)
	}
	for r.st.phase != RoundComplete {
		if err := ctx.Err(); err != nil {
			return err
		}
		c := r.choosers[r.st.turn]
		if c == nil {
			return fmt.Errorf("%w: %s is driven externally", ErrNoChooser, r.st.turn)
		}
		st := r.st.clone()
		if err := r.move(st, c); err != nil {
			return err
		}
		r.commit(st)
	}
	return nil
}

// drive lets automated seats act on st until an external seat is to move.
func (r *Round) drive(st *roundState) error {
	for st.phase != RoundComplete {
		c := r.choosers[st.turn]
		if c == nil {
			return nil
		}
		if err := r.move(st, c); err != nil {
			return err
		}
	}
	return nil
}

// move asks c for the next move of the seat holding the turn and applies it to st.
func (r *Round) move(st *roundState, c Chooser) error {
	seat := st.turn
	if st.phase == AwaitingDiscard {
		card := c.ChooseDiscard(st.view(seat))
		if err := st.applyDiscard(seat, card); err != nil {
			return fmt.Errorf("%s chose discard %s: %w", seat, card, err)
		}
		return nil
	}
	p := c.ChooseMove(st.view(seat))
	if err := st.applyPlay(p); err != nil {
		return fmt.Errorf("%s chose %s: %w", seat, p, err)
	}
	return nil
}

// Points returns each seat's score for a completed round.
func (r *Round) Points() ([2]int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.st.phase != RoundComplete {
		return [2]int{}, fmt.Errorf("%w: %d of %d tricks played", ErrRoundInProgress, r.st.turns, TricksPerRound)
	}
	return ComputePoints(r.st.won), nil
}

func (r *Round) ID() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.st.id
}

func (r *Round) Phase() Phase {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.st.phase
}

func (r *Round) Complete() bool {
	return r.Phase() == RoundComplete
}

// Turn returns the seat expected to act next.
func (r *Round) Turn() game.Seat {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.st.turn
}

// TricksPlayed returns the number of completed tricks.
func (r *Round) TricksPlayed() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.st.turns
}

func (r *Round) Decree() cards.Card {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.st.decree
}

func (r *Round) CurrentTrick() game.Trick {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.st.trick.Copy()
}

func (r *Round) Hand(s game.Seat) cards.Cards {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.st.hands[s].Copy()
}

func (r *Round) WonTricks(s game.Seat) []game.Trick {
	r.mu.Lock()
	defer r.mu.Unlock()
	return game.CopyTricks(r.st.won[s])
}

// History returns the completed tricks in the order they were played.
func (r *Round) History() []game.Trick {
	r.mu.Lock()
	defer r.mu.Unlock()
	return game.CopyTricks(r.st.history)
}

func (r *Round) StockSize() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.st.stock.Len()
}

func (r *Round) Discards() cards.Cards {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.st.discards.Copy()
}

// StateFor returns the round as seat s sees it.
func (r *Round) StateFor(s game.Seat) State {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.st.view(s)
}

func (r *Round) LegalPlays(s game.Seat) []Play {
	return r.StateFor(s).LegalPlays
}
