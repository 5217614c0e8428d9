package game

import "testing"

func TestShareTextExactFormat(t *testing.T) {
	// The template is a compatibility surface for screenshots and
	// pasted results; it must match byte for byte.
	g := NewGameState("2024-01-15")
	g.Rounds[0].SubmitGuess("a", []string{"a"}) // clean win, 100
	g.Rounds[1].SubmitGuess("b", []string{"b"})
	g.Rounds[2].SubmitGuess("c", []string{"c"})

	got := ShareText(15, g, "https://playday.example")
	want := "SQUADDLE #15\n" +
		"⭐⭐⭐⭐⭐\n" +
		"Score: 300/300\n" +
		"\n" +
		"🟢 🟢 🟢\n" +
		"\n" +
		"Play at: https://playday.example/squaddle"
	if got != want {
		t.Errorf("share text mismatch:\n got %q\nwant %q", got, want)
	}
}

func TestShareTextMixedOutcome(t *testing.T) {
	g := NewGameState("2024-01-15")

	// Won with 3 clues revealed: yellow.
	g.Rounds[0].RevealNextClue()
	g.Rounds[0].RevealNextClue()
	g.Rounds[0].SubmitGuess("a", []string{"a"}) // 60

	// Won with 5 clues: orange.
	for i := 0; i < 4; i++ {
		g.Rounds[1].RevealNextClue()
	}
	g.Rounds[1].SubmitGuess("b", []string{"b"}) // 20

	// Lost: cross.
	g.Rounds[2].GiveUp()

	got := ShareText(71, g, "https://playday.example")
	want := "SQUADDLE #71\n" +
		"⭐\n" +
		"Score: 80/300\n" +
		"\n" +
		"🟡 🟠 ❌\n" +
		"\n" +
		"Play at: https://playday.example/squaddle"
	if got != want {
		t.Errorf("share text mismatch:\n got %q\nwant %q", got, want)
	}
}

func TestRoundMarkers(t *testing.T) {
	clean := NewRoundState()
	clean.SubmitGuess("a", []string{"a"})
	if RoundMarker(&clean) != "🟢" {
		t.Errorf("clean win marker: %q", RoundMarker(&clean))
	}

	// Clue one, but with a wrong guess first: no longer green.
	missed := NewRoundState()
	missed.SubmitGuess("x", []string{"a"})
	missed.SubmitGuess("a", []string{"a"})
	if RoundMarker(&missed) != "🟡" {
		t.Errorf("win with wrong guess marker: %q", RoundMarker(&missed))
	}

	lost := NewRoundState()
	lost.GiveUp()
	if RoundMarker(&lost) != "❌" {
		t.Errorf("loss marker: %q", RoundMarker(&lost))
	}
}

func TestStarString(t *testing.T) {
	if StarString(0) != "" {
		t.Errorf("StarString(0) = %q", StarString(0))
	}
	if StarString(3) != "⭐⭐⭐" {
		t.Errorf("StarString(3) = %q", StarString(3))
	}
}
