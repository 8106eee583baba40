package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/mpsalisbury/foxforest/pkg/game"
	"github.com/mpsalisbury/foxforest/pkg/game/fox"
	"github.com/mpsalisbury/foxforest/pkg/game/fox/player"
	"github.com/pterm/pterm"
	"go.uber.org/zap"
)

var (
	verbose    = flag.Bool("verbose", false, "Log engine diagnostics")
	hints      = flag.Bool("hints", true, "Preselect the suggested move")
	playerType = "basic"
)

func init() {
	player.AddPlayerFlag(&playerType, "opponent")
}

func main() {
	flag.Parse()
	err := runSolo()
	if err != nil {
		log.Fatal(err)
	}
}

// The user plays the first seat at the terminal against an automated opponent.
func runSolo() error {
	logger := zap.NewNop()
	if *verbose {
		l, err := zap.NewDevelopment()
		if err != nil {
			return fmt.Errorf("couldn't create logger: %w", err)
		}
		logger = l
	}
	defer logger.Sync()

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	if playerType == "term" {
		return fmt.Errorf("opponent must be automated, not %s", playerType)
	}
	opponent, err := player.NewPlayerFromFlag(playerType, rng, false)
	if err != nil {
		return fmt.Errorf("couldn't create opponent: %w", err)
	}
	you := player.NewTerminalPlayer(*hints)

	r := fox.NewRound(fox.Config{
		Rand:     rng,
		Logger:   logger,
		Reporter: player.NewTerminalReporter(game.First),
	}, [2]fox.Chooser{nil, opponent})
	if err := r.Setup(); err != nil {
		return err
	}
	for !r.Complete() {
		st := r.StateFor(game.First)
		var p fox.Play
		if st.Phase == fox.AwaitingDiscard {
			p = fox.NewDiscard(game.First, you.ChooseDiscard(st))
		} else {
			p = you.ChooseMove(st)
		}
		err := r.Step(p)
		if errors.Is(err, fox.ErrInvalidPlay) {
			pterm.Warning.Printfln("Can't play %s: %v. Try again", p, err)
			continue
		}
		if err != nil {
			return err
		}
	}
	return nil
}
