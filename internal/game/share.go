package game

import (
	"fmt"
	"strings"

	"github.com/enescakir/emoji"
)

// Round markers for the shareable summary. The exact glyphs are a
// compatibility surface: players screenshot and paste this text, so the
// template below must be reproduced verbatim.
var (
	markerClean = emoji.GreenCircle.String()  // won on the free clue, no wrong guesses
	markerGood  = emoji.YellowCircle.String() // won with three or fewer clues revealed
	markerLate  = emoji.OrangeCircle.String() // won with four or more clues
	markerLost  = emoji.CrossMark.String()
)

// RoundMarker returns the color-coded summary marker for one round.
func RoundMarker(r *RoundState) string {
	if !r.Won {
		return markerLost
	}
	if r.RevealedClueCount == 1 && r.WrongGuesses() == 0 {
		return markerClean
	}
	if r.RevealedClueCount <= 3 {
		return markerGood
	}
	return markerLate
}

// StarString renders a star rating as repeated star glyphs.
func StarString(stars int) string {
	return strings.Repeat(emoji.Star.String(), stars)
}

// ShareText builds the fixed-format Squaddle share summary for a
// finished game.
func ShareText(dayNumber int, state *GameState, baseURL string) string {
	total := state.TotalScore()
	return fmt.Sprintf("SQUADDLE #%d\n%s\nScore: %d/%d\n\n%s %s %s\n\nPlay at: %s/squaddle",
		dayNumber,
		StarString(Stars(total)),
		total,
		GameMaxScore,
		RoundMarker(&state.Rounds[0]),
		RoundMarker(&state.Rounds[1]),
		RoundMarker(&state.Rounds[2]),
		baseURL,
	)
}
