package player

import (
	"math/rand"
	"time"

	"github.com/mpsalisbury/foxforest/pkg/cards"
	"github.com/mpsalisbury/foxforest/pkg/game/fox"
)

// Plays a random (legal) move.

func NewRandomStrategy(rng *rand.Rand) fox.Chooser {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &randomStrategy{rng: rng}
}

type randomStrategy struct {
	rng *rand.Rand
}

func (s *randomStrategy) ChooseMove(st fox.State) fox.Play {
	legalPlays := st.LegalPlays
	return legalPlays[s.rng.Intn(len(legalPlays))]
}

func (s *randomStrategy) ChooseDiscard(st fox.State) cards.Card {
	return st.Hand[s.rng.Intn(len(st.Hand))]
}
