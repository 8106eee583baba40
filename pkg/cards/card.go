package cards

import (
	"fmt"
	"strconv"
	"strings"
)

// A card's suit.
type Suit int8

const (
	Bells Suit = iota
	Keys
	Moons
)

var Suits = []Suit{
	Bells,
	Keys,
	Moons,
}

func (s Suit) String() string {
	switch s {
	case Bells:
		return "B"
	case Keys:
		return "K"
	case Moons:
		return "M"
	}
	panic("Unknown Suit")
}

func parseSuit(s string) (Suit, error) {
	switch strings.ToUpper(s) {
	case "B":
		return Bells, nil
	case "K":
		return Keys, nil
	case "M":
		return Moons, nil
	}
	return Bells, fmt.Errorf("no such suit '%s'", s)
}

// A card's value: 1-11.
type Value int8

const (
	MinValue Value = 1
	MaxValue Value = 11
)

// Ranks with a rule attached to them.
const (
	Swan       Value = 1  // loser of the trick leads next
	Fox        Value = 3  // may exchange a hand card with the decree card
	Woodcutter Value = 5  // draws a card, then discards one
	Treasure   Value = 7  // worth a point to whoever wins it
	Witch      Value = 9  // counts as trump when it is the only 9 in the trick
	Monarch    Value = 11 // forces the follower to overtake or play a 1
)

var Values = func() []Value {
	vs := make([]Value, 0, MaxValue)
	for v := MinValue; v <= MaxValue; v++ {
		vs = append(vs, v)
	}
	return vs
}()

func (v Value) String() string {
	return strconv.Itoa(int(v))
}

func parseValue(v string) (Value, error) {
	n, err := strconv.Atoi(v)
	if err != nil || n < int(MinValue) || n > int(MaxValue) {
		return MinValue, fmt.Errorf("no such value '%s'", v)
	}
	return Value(n), nil
}

type Card struct {
	Value
	Suit
}

func (c Card) String() string {
	return c.Value.String() + c.Suit.String()
}

// ParseCard reads a card written as value then suit letter, e.g. "9K" or "11m".
func ParseCard(c string) (Card, error) {
	if len(c) < 2 || len(c) > 3 {
		return Card{}, fmt.Errorf("can't parse card '%s'", c)
	}
	v, verr := parseValue(c[:len(c)-1])
	s, serr := parseSuit(c[len(c)-1:])
	if verr != nil || serr != nil {
		return Card{}, fmt.Errorf("can't parse card '%s'", c)
	}
	return Card{v, s}, nil
}

func (c1 Card) LessThan(c2 Card) bool {
	if c1.Suit == c2.Suit {
		return c1.Value < c2.Value
	}
	return c1.Suit < c2.Suit
}
