package fox

import (
	"fmt"

	"github.com/mpsalisbury/foxforest/pkg/cards"
	"github.com/mpsalisbury/foxforest/pkg/game"
)

// applyPlay validates p and applies it. A rejected play leaves st unchanged.
func (st *roundState) applyPlay(p Play) error {
	if !st.phase.acceptsPlay() {
		return fmt.Errorf("%w: cannot play a card while %s", ErrInvalidPlay, st.phase)
	}
	if !p.Seat.Valid() {
		return fmt.Errorf("%w: unknown %s", ErrInvalidPlay, p.Seat)
	}
	if err := ValidatePlay(p, st.turn, st.hands[p.Seat], st.trick); err != nil {
		return err
	}
	if p.Card.Value == cards.Woodcutter && st.stock.Len() == 0 {
		return fmt.Errorf("%w: %s has nothing to draw", ErrDeckExhausted, p.Card)
	}

	id, seat, card := st.id, p.Seat, p.Card
	hand := st.hands[seat].Remove(card)
	st.trick.Add(seat, card)
	st.emit(func(r game.Reporter) { r.ReportCardPlayed(id, seat, card) })

	if card.Value == cards.Fox && p.UseAbility {
		oldDecree, newDecree := st.decree, p.AbilityCard
		hand = append(hand.Remove(newDecree), oldDecree)
		hand.Sort()
		st.decree = newDecree
		st.emit(func(r game.Reporter) { r.ReportDecreeExchanged(id, seat, oldDecree, newDecree) })
	}
	st.hands[seat] = hand

	if card.Value == cards.Woodcutter {
		drawn, err := st.stock.DrawTop(1)
		if err != nil {
			return err
		}
		hand = append(st.hands[seat], drawn...)
		hand.Sort()
		st.hands[seat] = hand
		st.phase = AwaitingDiscard
		st.emit(func(r game.Reporter) { r.ReportCardDrawn(id, seat) })
		return nil
	}
	if st.trick.Size() == 1 {
		st.turn = st.turn.Other()
		st.phase = AwaitingFollow
		return nil
	}
	return st.completeTrick()
}

// applyDiscard finishes a Woodcutter: s gives up card and the turn moves on.
func (st *roundState) applyDiscard(s game.Seat, card cards.Card) error {
	if st.phase != AwaitingDiscard {
		return fmt.Errorf("%w: no discard is pending", ErrInvalidPlay)
	}
	if s != st.turn {
		return fmt.Errorf("%w: %s is not the one to discard", ErrInvalidPlay, s)
	}
	if !st.hands[s].ContainsCard(card) {
		return fmt.Errorf("%w: %s does not hold %s to discard", ErrInvalidPlay, s, card)
	}
	st.hands[s] = st.hands[s].Remove(card)
	st.discards = append(st.discards, card)
	id := st.id
	st.emit(func(r game.Reporter) { r.ReportCardDiscarded(id, s) })

	st.turn = st.turn.Other()
	if st.trick.Size() == 1 {
		st.phase = AwaitingFollow
		return nil
	}
	return st.completeTrick()
}

// completeTrick resolves the full trick, hands it to its winner and sets up the next lead.
func (st *roundState) completeTrick() error {
	winner, err := ResolveTrick(st.trick, st.decree)
	if err != nil {
		return err
	}
	trick := st.trick
	next := NextLead(trick, winner)
	st.won[winner] = append(st.won[winner], trick)
	st.history = append(st.history, trick.Copy())
	st.trick = game.Trick{}
	st.turns++
	st.turn = next

	id := st.id
	st.emit(func(r game.Reporter) { r.ReportTrickCompleted(id, trick.Copy(), winner, next) })
	if st.turns < TricksPerRound {
		st.phase = AwaitingLead
		return nil
	}
	st.phase = RoundComplete
	tricksWon, points := st.tricksWon(), ComputePoints(st.won)
	st.emit(func(r game.Reporter) { r.ReportRoundFinished(id, tricksWon, points) })
	return nil
}
