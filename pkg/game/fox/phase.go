package fox

// Phase is the point a round has reached, and so which input it waits for.
type Phase int8

const (
	Unstarted Phase = iota
	AwaitingLead
	AwaitingFollow
	AwaitingDiscard
	RoundComplete
)

func (ph Phase) String() string {
	switch ph {
	case Unstarted:
		return "unstarted"
	case AwaitingLead:
		return "awaiting lead"
	case AwaitingFollow:
		return "awaiting follow"
	case AwaitingDiscard:
		return "awaiting discard"
	case RoundComplete:
		return "round complete"
	}
	return "unknown"
}

// Returns true if the phase accepts a card played to the trick.
func (ph Phase) acceptsPlay() bool {
	return ph == AwaitingLead || ph == AwaitingFollow
}
