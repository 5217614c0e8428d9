package game

import "strings"

// cluePenalty maps revealedClueCount-1 to the score penalty. The first
// clue is free; revealing all six costs 90 of the 100 round points.
var cluePenalty = [SquaddleClueCount]int{0, 20, 40, 60, 80, 90}

// wrongGuessPenalty is deducted per incorrect guess.
const wrongGuessPenalty = 10

// roundMaxScore is the score of a round won on the free clue with no
// wrong guesses.
const roundMaxScore = 100

// RoundState tracks one round of play for one difficulty slot. Once
// Completed is true the round is terminal and every field is frozen;
// further operations are silent no-ops.
type RoundState struct {
	RevealedClueCount int      `json:"revealedClueCount"`
	GuessHistory      []string `json:"guessHistory"`
	Completed         bool     `json:"completed"`
	Won               bool     `json:"won"`
	Score             int      `json:"score"`
}

// NewRoundState returns a fresh active round with the free first clue
// already revealed.
func NewRoundState() RoundState {
	return RoundState{RevealedClueCount: 1}
}

// RevealNextClue reveals one more clue, capped at the clue count. No-op
// on a terminal round. Revealing has no score effect until completion.
func (r *RoundState) RevealNextClue() {
	if r.Completed || r.RevealedClueCount >= SquaddleClueCount {
		return
	}
	r.RevealedClueCount++
}

// NormalizeGuess trims surrounding whitespace and lower-cases a guess.
// The same normalization is applied to stored aliases before comparing.
func NormalizeGuess(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// CheckGuess reports whether text matches any accepted-answer alias
// after normalizing both sides. Partial matches do not count.
func CheckGuess(text string, acceptedAnswers []string) bool {
	guess := NormalizeGuess(text)
	if guess == "" {
		return false
	}
	for _, alias := range acceptedAnswers {
		if guess == NormalizeGuess(alias) {
			return true
		}
	}
	return false
}

// SubmitGuess records a guess against the round's accepted answers and
// returns whether it was correct. Empty input and guesses against a
// terminal round are silently ignored; those are expected races between
// rapid UI input and already-resolved state, not errors.
//
// A correct guess ends the round won and fixes the score at
// max(0, 100 - cluePenalty - 10 per wrong guess so far). An incorrect
// guess accumulates in the history and the round stays active; only a
// correct guess or an explicit give-up ends a round.
func (r *RoundState) SubmitGuess(text string, acceptedAnswers []string) bool {
	if r.Completed {
		return false
	}
	guess := NormalizeGuess(text)
	if guess == "" {
		return false
	}

	if CheckGuess(guess, acceptedAnswers) {
		wrongSoFar := len(r.GuessHistory)
		r.GuessHistory = append(r.GuessHistory, guess)
		r.Completed = true
		r.Won = true
		r.Score = CalculateScore(r.RevealedClueCount, wrongSoFar, true)
		return true
	}

	r.GuessHistory = append(r.GuessHistory, guess)
	return false
}

// GiveUp ends the round lost with a score of zero. No-op on a terminal
// round.
func (r *RoundState) GiveUp() {
	if r.Completed {
		return
	}
	r.Completed = true
	r.Won = false
	r.Score = 0
}

// WrongGuesses returns how many incorrect guesses the round holds. For
// a won round the final history entry is the correct guess and is not
// counted.
func (r *RoundState) WrongGuesses() int {
	if r.Won {
		return len(r.GuessHistory) - 1
	}
	return len(r.GuessHistory)
}

// CalculateScore computes a round score in [0, 100]. Lost rounds always
// score zero. The score is non-increasing in both revealed clues and
// wrong guesses and never negative.
func CalculateScore(revealedClues, wrongGuesses int, won bool) int {
	if !won {
		return 0
	}
	if revealedClues < 1 {
		revealedClues = 1
	}
	if revealedClues > SquaddleClueCount {
		revealedClues = SquaddleClueCount
	}
	score := roundMaxScore - cluePenalty[revealedClues-1] - wrongGuessPenalty*wrongGuesses
	if score < 0 {
		return 0
	}
	return score
}
