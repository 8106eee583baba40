package fox

import (
	"context"
	"fmt"
)

// Match plays successive rounds between the same two choosers and keeps a running score.
type Match struct {
	cfg      Config
	choosers [2]Chooser
	scores   [2]int
	rounds   int
}

func NewMatch(cfg Config, choosers [2]Chooser) *Match {
	return &Match{cfg: cfg.withDefaults(), choosers: choosers}
}

// PlayRound deals and plays one full round, adding its points to the match.
func (m *Match) PlayRound(ctx context.Context) ([2]int, error) {
	r := NewRound(m.cfg, m.choosers)
	if err := r.Setup(); err != nil {
		return [2]int{}, err
	}
	if err := r.Run(ctx); err != nil {
		return [2]int{}, fmt.Errorf("round %d: %w", m.rounds+1, err)
	}
	points, err := r.Points()
	if err != nil {
		return [2]int{}, err
	}
	m.rounds++
	m.scores[0] += points[0]
	m.scores[1] += points[1]
	return points, nil
}

func (m *Match) Scores() [2]int {
	return m.scores
}

func (m *Match) Rounds() int {
	return m.rounds
}
