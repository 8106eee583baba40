package cards

// Card literals
var (
	C1b  = Card{Value: 1, Suit: Bells}
	C2b  = Card{Value: 2, Suit: Bells}
	C3b  = Card{Value: 3, Suit: Bells}
	C4b  = Card{Value: 4, Suit: Bells}
	C5b  = Card{Value: 5, Suit: Bells}
	C6b  = Card{Value: 6, Suit: Bells}
	C7b  = Card{Value: 7, Suit: Bells}
	C8b  = Card{Value: 8, Suit: Bells}
	C9b  = Card{Value: 9, Suit: Bells}
	C10b = Card{Value: 10, Suit: Bells}
	C11b = Card{Value: 11, Suit: Bells}
	C1k  = Card{Value: 1, Suit: Keys}
	C2k  = Card{Value: 2, Suit: Keys}
	C3k  = Card{Value: 3, Suit: Keys}
	C4k  = Card{Value: 4, Suit: Keys}
	C5k  = Card{Value: 5, Suit: Keys}
	C6k  = Card{Value: 6, Suit: Keys}
	C7k  = Card{Value: 7, Suit: Keys}
	C8k  = Card{Value: 8, Suit: Keys}
	C9k  = Card{Value: 9, Suit: Keys}
	C10k = Card{Value: 10, Suit: Keys}
	C11k = Card{Value: 11, Suit: Keys}
	C1m  = Card{Value: 1, Suit: Moons}
	C2m  = Card{Value: 2, Suit: Moons}
	C3m  = Card{Value: 3, Suit: Moons}
	C4m  = Card{Value: 4, Suit: Moons}
	C5m  = Card{Value: 5, Suit: Moons}
	C6m  = Card{Value: 6, Suit: Moons}
	C7m  = Card{Value: 7, Suit: Moons}
	C8m  = Card{Value: 8, Suit: Moons}
	C9m  = Card{Value: 9, Suit: Moons}
	C10m = Card{Value: 10, Suit: Moons}
	C11m = Card{Value: 11, Suit: Moons}
)
