package ui

import (
	"testing"

	"github.com/automoto/shapefighter/components"
)

func TestSeatLines(t *testing.T) {
	seats := []components.SeatData{
		{Name: "peer-b", PeerID: "peer-b"},
		{Name: "Ann", PeerID: "peer-a", IsLocal: true},
		{Name: "Player 2", IsLocal: true},
	}
	want := []string{"1. peer-b", "2. Ann (you)", "3. Player 2"}

	got := SeatLines(seats)
	if len(got) != len(want) {
		t.Fatalf("lines = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestSeatLinesAreCapped(t *testing.T) {
	seats := make([]components.SeatData, maxSeatRows+3)
	if n := len(SeatLines(seats)); n != maxSeatRows {
		t.Errorf("lines = %d, want %d", n, maxSeatRows)
	}
}

func TestOptionLabels(t *testing.T) {
	if got := VolumeText(0.75); got != "Volume  75%" {
		t.Errorf("VolumeText = %q", got)
	}
	if MuteText(true) == MuteText(false) {
		t.Error("mute label does not change")
	}
}
