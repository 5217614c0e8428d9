package game

import (
	"encoding/json"
	"testing"
)

func TestStarsThresholds(t *testing.T) {
	tests := []struct {
		score int
		want  int
	}{
		{0, 0},
		{1, 1},
		{89, 1},
		{90, 2},
		{149, 2},
		{150, 3},
		{209, 3},
		{210, 4},
		{269, 4},
		{270, 5},
		{300, 5},
	}
	for _, tt := range tests {
		if got := Stars(tt.score); got != tt.want {
			t.Errorf("Stars(%d) = %d, want %d", tt.score, got, tt.want)
		}
	}
}

func TestAdvanceRound(t *testing.T) {
	g := NewGameState("2024-01-15")

	if g.AdvanceRound() {
		t.Error("advanced past an active round")
	}

	g.CurrentRound().SubmitGuess("a", []string{"a"})
	if !g.AdvanceRound() {
		t.Error("could not advance past a completed round")
	}
	if g.CurrentRoundIndex != 1 {
		t.Errorf("round index %d, want 1", g.CurrentRoundIndex)
	}

	g.CurrentRound().GiveUp()
	g.AdvanceRound()
	if g.CurrentRoundIndex != 2 {
		t.Errorf("round index %d, want 2", g.CurrentRoundIndex)
	}

	// No advance past the last round; completing it completes the game.
	g.CurrentRound().SubmitGuess("a", []string{"a"})
	if g.AdvanceRound() {
		t.Error("advanced past the last round")
	}
	if !g.GameComplete() {
		t.Error("game should be complete once round three ends")
	}
}

func TestTotalScore(t *testing.T) {
	g := NewGameState("2024-01-15")
	g.Rounds[0].SubmitGuess("a", []string{"a"}) // 100
	g.Rounds[1].RevealNextClue()
	g.Rounds[1].SubmitGuess("b", []string{"b"}) // 80
	g.Rounds[2].GiveUp()                        // 0
	if got := g.TotalScore(); got != 180 {
		t.Errorf("total %d, want 180", got)
	}
}

func TestLoadGameStateDiscardsStaleDate(t *testing.T) {
	stale := NewGameState("2024-01-14")
	stale.CurrentRoundIndex = 2
	stale.Rounds[0].SubmitGuess("a", []string{"a"})
	raw, err := json.Marshal(stale)
	if err != nil {
		t.Fatal(err)
	}

	g := LoadGameState(raw, "2024-01-15")
	if g.Date != "2024-01-15" {
		t.Errorf("date %q, want fresh 2024-01-15 state", g.Date)
	}
	if g.CurrentRoundIndex != 0 || g.TotalScore() != 0 {
		t.Error("stale progress leaked into fresh state")
	}
}

func TestLoadGameStateKeepsSameDay(t *testing.T) {
	saved := NewGameState("2024-01-15")
	saved.Rounds[0].SubmitGuess("a", []string{"a"})
	saved.AdvanceRound()
	raw, _ := json.Marshal(saved)

	g := LoadGameState(raw, "2024-01-15")
	if g.CurrentRoundIndex != 1 {
		t.Errorf("same-day state not restored: round index %d", g.CurrentRoundIndex)
	}
	if g.TotalScore() != 100 {
		t.Errorf("same-day score not restored: %d", g.TotalScore())
	}
}

func TestLoadGameStateHandlesGarbage(t *testing.T) {
	for _, raw := range [][]byte{nil, {}, []byte("{"), []byte(`"nope"`)} {
		g := LoadGameState(raw, "2024-01-15")
		if g == nil || g.Date != "2024-01-15" {
			t.Errorf("garbage input %q should yield fresh state", raw)
		}
	}
}
