package game

// Squaddle: guess the footballer from six progressively easier clues,
// three rounds a day.

// SquaddleEpoch is day 1 of the Squaddle numbering.
const SquaddleEpoch = "2024-01-01"

// SquaddleClueCount is the number of ordered clues per player card.
const SquaddleClueCount = 6

// ClueCard is the content contract a player row must satisfy to be
// resolvable into a Squaddle round.
type ClueCard interface {
	Schedulable
	CardID() int64
	CardName() string
	// Answers returns the accepted-answer aliases, raw (normalization
	// happens at guess-check time).
	Answers() []string
	// ClueTexts returns the six clues in reveal order.
	ClueTexts() []string
}

// SquaddleRound is one resolved difficulty slot of the daily puzzle.
type SquaddleRound struct {
	ItemID          int64    `json:"itemId"`
	Name            string   `json:"name"`
	AcceptedAnswers []string `json:"acceptedAnswers"`
	Clues           []string `json:"clues"`
}

// SquaddlePuzzle is the payload served for one calendar date.
type SquaddlePuzzle struct {
	DayNumber int                      `json:"dayNumber"`
	Rounds    [SlotCount]SquaddleRound `json:"rounds"`
}

// BuildSquaddle resolves the daily Squaddle puzzle from the full player
// pool. All three slots share one generator seeded from the date, with
// draws consumed in easy, medium, hard order. Returns
// ErrNotEnoughContent if any slot has no eligible player.
func BuildSquaddle[T ClueCard](pool []T, date string) (*SquaddlePuzzle, error) {
	slots, err := ResolveDaily(pool, date, SeedShared)
	if err != nil {
		return nil, err
	}

	day, err := DayNumber(date, SquaddleEpoch)
	if err != nil {
		return nil, err
	}

	puzzle := &SquaddlePuzzle{DayNumber: day}
	for i, slot := range slots {
		if !slot.OK {
			return nil, ErrNotEnoughContent
		}
		card := slot.Item
		puzzle.Rounds[i] = SquaddleRound{
			ItemID:          card.CardID(),
			Name:            card.CardName(),
			AcceptedAnswers: card.Answers(),
			Clues:           card.ClueTexts(),
		}
	}
	return puzzle, nil
}
