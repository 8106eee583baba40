package player

import (
	"fmt"
	"math/rand"

	"github.com/mpsalisbury/foxforest/pkg/game/fox"
)

var playerTypes = []string{"basic", "term", "random"}

// Creates a flag for specifying the player type to use.
func AddPlayerFlag(target *string, name string) {
	EnumFlag(target, name, playerTypes, "Type of player logic to use")
}

// Constructs a chooser from a player flag value. A "term" player asks the
// user at the terminal; hints shows the basic strategy's suggestion there.
func NewPlayerFromFlag(playerType string, rng *rand.Rand, hints bool) (fox.Chooser, error) {
	switch playerType {
	case "", "basic":
		return NewBasicStrategy(), nil
	case "term":
		return NewTerminalPlayer(hints), nil
	case "random":
		return NewRandomStrategy(rng), nil
	default:
		return nil, fmt.Errorf("invalid player type %s", playerType)
	}
}
