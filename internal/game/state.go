package game

import "encoding/json"

// GameMaxScore is the highest achievable daily total across the three
// rounds.
const GameMaxScore = SlotCount * roundMaxScore

// GameState aggregates the three rounds of one day's play, in fixed
// easy, medium, hard order. It lives in client storage as one JSON blob
// per game per local date and is replaced wholesale when the date rolls
// over; stale state is never resumed or merged.
type GameState struct {
	Date              string                `json:"date"`
	CurrentRoundIndex int                   `json:"currentRoundIndex"`
	Rounds            [SlotCount]RoundState `json:"rounds"`
}

// NewGameState creates fresh state for a calendar date.
func NewGameState(date string) *GameState {
	state := &GameState{Date: date}
	for i := range state.Rounds {
		state.Rounds[i] = NewRoundState()
	}
	return state
}

// LoadGameState restores persisted state for today's date. Anything
// unreadable or carrying a different embedded date is discarded and
// replaced with fresh state; the self-healing is silent.
func LoadGameState(raw []byte, today string) *GameState {
	if len(raw) > 0 {
		var state GameState
		if err := json.Unmarshal(raw, &state); err == nil && state.Date == today {
			return &state
		}
	}
	return NewGameState(today)
}

// CurrentRound returns the round the player is on.
func (g *GameState) CurrentRound() *RoundState {
	return &g.Rounds[g.CurrentRoundIndex]
}

// AdvanceRound moves to the next round and reports whether it did.
// Valid only while the active round is completed and is not the last;
// the game finishes implicitly when round three completes, with no
// advance past it.
func (g *GameState) AdvanceRound() bool {
	if !g.Rounds[g.CurrentRoundIndex].Completed || g.CurrentRoundIndex >= SlotCount-1 {
		return false
	}
	g.CurrentRoundIndex++
	return true
}

// TotalScore sums the round scores. It may be read incrementally but is
// only final once the game is complete.
func (g *GameState) TotalScore() int {
	total := 0
	for i := range g.Rounds {
		total += g.Rounds[i].Score
	}
	return total
}

// GameComplete reports whether the last round has ended.
func (g *GameState) GameComplete() bool {
	return g.Rounds[SlotCount-1].Completed
}

// Stars maps a daily total to a 0-5 star rating. Thresholds are 90%,
// 70%, 50% and 30% of the 300-point maximum; any positive score earns
// at least one star.
func Stars(totalScore int) int {
	switch {
	case totalScore >= 270:
		return 5
	case totalScore >= 210:
		return 4
	case totalScore >= 150:
		return 3
	case totalScore >= 90:
		return 2
	case totalScore > 0:
		return 1
	}
	return 0
}
