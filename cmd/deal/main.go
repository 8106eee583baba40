package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/mpsalisbury/foxforest/pkg/cards"
	"github.com/mpsalisbury/foxforest/pkg/game"
)

var seed = flag.Int64("seed", 0, "Seed for the shuffle, 0 picks one from the clock")

// Prints one shuffled deal: both hands, the decree card and the stock.
func main() {
	flag.Parse()
	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	deck := cards.NewDeck()
	deck.Shuffle(rand.New(rand.NewSource(*seed)))
	for _, s := range game.Seats {
		hand, err := deck.DrawTop(cards.HandSize)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("%7s: %s\n", s, hand.HandString())
	}
	decree, err := deck.DrawTop(1)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("%7s: %s\n", "decree", decree[0])
	fmt.Printf("%7s: %s\n", "stock", deck.Cards())
}
