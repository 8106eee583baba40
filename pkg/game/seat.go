package game

import "fmt"

// Seat identifies one of the two players of a round.
type Seat int8

const (
	First Seat = iota
	Second
)

var Seats = []Seat{First, Second}

func (s Seat) Valid() bool {
	return s == First || s == Second
}

func (s Seat) Other() Seat {
	if s == First {
		return Second
	}
	return First
}

func (s Seat) String() string {
	switch s {
	case First:
		return "player1"
	case Second:
		return "player2"
	}
	return fmt.Sprintf("seat(%d)", int8(s))
}
