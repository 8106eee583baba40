package fox

import (
	"github.com/mpsalisbury/foxforest/pkg/cards"
	"github.com/mpsalisbury/foxforest/pkg/game"
)

// Round points for each seat, indexed by the number of tricks the first seat won.
var trickPoints = [TricksPerRound + 1][2]int{
	0:  {6, 0},
	1:  {6, 0},
	2:  {6, 0},
	3:  {6, 0},
	4:  {1, 6},
	5:  {2, 6},
	6:  {3, 6},
	7:  {6, 3},
	8:  {6, 2},
	9:  {6, 1},
	10: {0, 6},
	11: {0, 6},
	12: {0, 6},
	13: {0, 6},
}

// ComputePoints scores a round from the tricks each seat won: one point per
// Treasure taken plus the trick-count table.
func ComputePoints(won [2][]game.Trick) [2]int {
	var points [2]int
	for _, s := range game.Seats {
		for _, t := range won[s] {
			points[s] += t.Cards().CountValue(cards.Treasure)
		}
	}
	n := len(won[game.First])
	if n > TricksPerRound {
		n = TricksPerRound
	}
	points[game.First] += trickPoints[n][game.First]
	points[game.Second] += trickPoints[n][game.Second]
	return points
}
