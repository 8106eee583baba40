package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/mpsalisbury/foxforest/pkg/game/fox"
	"github.com/mpsalisbury/foxforest/pkg/game/fox/player"
	"github.com/pterm/pterm"
	"go.uber.org/zap"
)

var (
	verbose     = flag.Bool("verbose", false, "Log every round event")
	rounds      = flag.Int("rounds", 1, "Number of rounds to play")
	seed        = flag.Int64("seed", 0, "Seed for shuffling and random players, 0 picks one from the clock")
	player1Type = "basic"
	player2Type = "basic"
)

func init() {
	player.AddPlayerFlag(&player1Type, "p1")
	player.AddPlayerFlag(&player2Type, "p2")
}

func main() {
	flag.Parse()
	err := runMatch()
	if err != nil {
		log.Fatal(err)
	}
}

func runMatch() error {
	logger := zap.NewNop()
	if *verbose {
		l, err := zap.NewDevelopment()
		if err != nil {
			return fmt.Errorf("couldn't create logger: %w", err)
		}
		logger = l
	}
	defer logger.Sync()

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(*seed))
	p1, err := newAutoPlayer(player1Type, rng)
	if err != nil {
		return err
	}
	p2, err := newAutoPlayer(player2Type, rng)
	if err != nil {
		return err
	}

	m := fox.NewMatch(fox.Config{Rand: rng, Logger: logger}, [2]fox.Chooser{p1, p2})
	data := pterm.TableData{{"Round", "player1", "player2"}}
	for i := 0; i < *rounds; i++ {
		points, err := m.PlayRound(context.Background())
		if err != nil {
			return err
		}
		data = append(data, []string{fmt.Sprint(i + 1), fmt.Sprint(points[0]), fmt.Sprint(points[1])})
	}
	scores := m.Scores()
	data = append(data, []string{"Total", fmt.Sprint(scores[0]), fmt.Sprint(scores[1])})
	pterm.Info.Printfln("seed %d, %s vs %s", *seed, player1Type, player2Type)
	return pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

func newAutoPlayer(playerType string, rng *rand.Rand) (fox.Chooser, error) {
	if playerType == "term" {
		return nil, fmt.Errorf("autoplay needs automated players, not %s", playerType)
	}
	p, err := player.NewPlayerFromFlag(playerType, rng, false)
	if err != nil {
		return nil, fmt.Errorf("couldn't create player: %w", err)
	}
	return p, nil
}
