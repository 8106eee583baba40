package player

import (
	"fmt"

	"github.com/mpsalisbury/foxforest/pkg/cards"
	"github.com/mpsalisbury/foxforest/pkg/game"
	"github.com/mpsalisbury/foxforest/pkg/game/fox"
	"github.com/pterm/pterm"
)

// TerminalPlayer has the user pick moves at the terminal.

func NewTerminalPlayer(hints bool) fox.Chooser {
	return &terminalPlayer{hints: hints}
}

type terminalPlayer struct {
	hints bool
}

func (p terminalPlayer) ChooseMove(st fox.State) fox.Play {
	showGame(st)
	recommended := ChooseBasicStrategyMove(st)
	options := make([]string, len(st.LegalPlays))
	for i, lp := range st.LegalPlays {
		options[i] = lp.String()
	}
	choice, err := p.selectOption("Choose a card to play", options, recommended.String())
	if err != nil {
		pterm.Error.Printfln("Couldn't read a play, playing %s: %v", recommended, err)
		return recommended
	}
	for _, lp := range st.LegalPlays {
		if lp.String() == choice {
			return lp
		}
	}
	return recommended
}

func (p terminalPlayer) ChooseDiscard(st fox.State) cards.Card {
	showGame(st)
	recommended := basicStrategy{}.ChooseDiscard(st)
	choice, err := p.selectOption("Your Woodcutter drew a card. Choose a card to discard", st.Hand.Strings(), recommended.String())
	if err != nil {
		pterm.Error.Printfln("Couldn't read a discard, discarding %s: %v", recommended, err)
		return recommended
	}
	card, err := cards.ParseCard(choice)
	if err != nil {
		return recommended
	}
	return card
}

func (p terminalPlayer) selectOption(prompt string, options []string, recommended string) (string, error) {
	sel := pterm.DefaultInteractiveSelect.WithDefaultText(prompt).WithOptions(options)
	if p.hints {
		sel = sel.WithDefaultOption(recommended)
	}
	return sel.Show()
}

func showGame(st fox.State) {
	pterm.Println()
	pterm.Info.Printfln("Decree: %s   Tricks won: you %d, opponent %d   Stock: %d",
		cardStyle(st.Decree), st.TricksWon(st.Seat), st.TricksWon(st.Seat.Other()), st.StockSize)
	trick := "(you lead)"
	if st.Trick.Size() > 0 {
		trick = st.Trick.Cards().String()
	}
	pterm.DefaultBox.WithTitle(pterm.LightYellow("|TRICK|")).WithTitleTopCenter().Println(trick)
	pterm.DefaultBox.WithTitle(pterm.LightCyan("|YOUR HAND|")).WithTitleTopCenter().Println(st.Hand.HandString())
}

func cardStyle(c cards.Card) string {
	switch c.Suit {
	case cards.Bells:
		return pterm.LightYellow(c.String())
	case cards.Keys:
		return pterm.LightBlue(c.String())
	default:
		return pterm.LightMagenta(c.String())
	}
}

// NewTerminalReporter prints a round's progress as seen from viewer.
func NewTerminalReporter(viewer game.Seat) game.Reporter {
	return &terminalReporter{viewer: viewer}
}

type terminalReporter struct {
	game.UnimplementedReporter
	viewer game.Seat
}

func (t terminalReporter) name(s game.Seat) string {
	if s == t.viewer {
		return "You"
	}
	return "Opponent"
}

func (t terminalReporter) ReportRoundStarted(roundId string, decree cards.Card) {
	pterm.DefaultSection.Printfln("Round %s, decree %s", roundId, cardStyle(decree))
}

func (t terminalReporter) ReportCardPlayed(roundId string, s game.Seat, card cards.Card) {
	pterm.Printfln("%s played %s", t.name(s), cardStyle(card))
}

func (t terminalReporter) ReportDecreeExchanged(roundId string, s game.Seat, oldDecree, newDecree cards.Card) {
	pterm.Printfln("%s took the decree %s, new decree %s", t.name(s), cardStyle(oldDecree), cardStyle(newDecree))
}

func (t terminalReporter) ReportCardDrawn(roundId string, s game.Seat) {
	pterm.Printfln("%s drew a card", t.name(s))
}

func (t terminalReporter) ReportCardDiscarded(roundId string, s game.Seat) {
	pterm.Printfln("%s discarded a card", t.name(s))
}

func (t terminalReporter) ReportTrickCompleted(roundId string, trick game.Trick, winner, nextLead game.Seat) {
	msg := fmt.Sprintf("Trick %s won by %s", trick.Cards(), t.name(winner))
	if nextLead != winner {
		msg += fmt.Sprintf(", %s leads next", t.name(nextLead))
	}
	pterm.Success.Println(msg)
}

func (t terminalReporter) ReportRoundFinished(roundId string, tricksWon [2]int, points [2]int) {
	data := pterm.TableData{{"", "Tricks", "Points"}}
	for _, s := range game.Seats {
		data = append(data, []string{t.name(s), fmt.Sprint(tricksWon[s]), fmt.Sprint(points[s])})
	}
	if err := pterm.DefaultTable.WithHasHeader().WithData(data).Render(); err != nil {
		pterm.Error.Println(err)
	}
}
