package game

import (
	"testing"

	"github.com/mpsalisbury/foxforest/pkg/cards"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestSeatOther(t *testing.T) {
	tests := []struct {
		s    Seat
		want Seat
	}{
		{First, Second},
		{Second, First},
	}
	for _, tc := range tests {
		if got := tc.s.Other(); got != tc.want {
			t.Errorf("%s.Other()=%s, want %s", tc.s, got, tc.want)
		}
	}
	if Seat(2).Valid() {
		t.Errorf("Seat(2).Valid()=true, want false")
	}
}

func TestTrickCopyIsIndependent(t *testing.T) {
	var trick Trick
	trick.Add(First, cards.C9k)
	c := trick.Copy()
	c.Add(Second, cards.C2k)
	if trick.Size() != 1 || c.Size() != 2 {
		t.Errorf("sizes after copy: original %d, copy %d, want 1 and 2", trick.Size(), c.Size())
	}
	if got, want := c.String(), "9K(player1) 2K(player2)"; got != want {
		t.Errorf("String()=%q, want %q", got, want)
	}
	if suit, ok := c.LeadSuit(); !ok || suit != cards.Keys {
		t.Errorf("LeadSuit()=%s,%t, want K,true", suit, ok)
	}
}

type countingReporter struct {
	UnimplementedReporter
	played int
}

func (c *countingReporter) ReportCardPlayed(string, Seat, cards.Card) {
	c.played++
}

func TestMultiReporterFansOut(t *testing.T) {
	a, b := &countingReporter{}, &countingReporter{}
	m := MultiReporter{a, b}
	m.ReportCardPlayed("r", First, cards.C1b)
	m.ReportRoundStarted("r", cards.C1b)
	if a.played != 1 || b.played != 1 {
		t.Errorf("played reports %d and %d, want 1 each", a.played, b.played)
	}
}

func TestLogReporter(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	r := NewLogReporter(zap.New(core))
	r.ReportRoundStarted("r1", cards.C4m)
	r.ReportCardPlayed("r1", Second, cards.C7b)
	r.ReportRoundFinished("r1", [2]int{8, 5}, [2]int{7, 2})

	if n := logs.Len(); n != 3 {
		t.Fatalf("%d entries logged, want 3", n)
	}
	if got := logs.FilterMessage("card played").FilterField(zap.Stringer("card", cards.C7b)).Len(); got != 1 {
		t.Errorf("card played entries with card=7B: %d, want 1", got)
	}
	finished := logs.FilterMessage("round finished").All()
	if len(finished) != 1 || finished[0].Level != zapcore.InfoLevel {
		t.Fatalf("round finished entries %v, want one at info", finished)
	}
	if id := finished[0].ContextMap()["round_id"]; id != "r1" {
		t.Errorf("round_id=%v, want r1", id)
	}
}
