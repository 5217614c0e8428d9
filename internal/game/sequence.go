package game

// Sequence: repeat an ever-longer pad sequence from memory. The daily
// content is derived purely from the seed; there is no stored pool.

// SequenceEpoch is day 1 of the Sequence numbering.
const SequenceEpoch = "2023-12-18"

const (
	// SequencePads is the number of pads on the board.
	SequencePads = 4
	// SequenceLength is how many steps the full daily sequence holds;
	// the client reveals a growing prefix level by level.
	SequenceLength = 20
)

// SequencePuzzle is the payload served for one calendar date.
type SequencePuzzle struct {
	DayNumber int   `json:"dayNumber"`
	PadCount  int   `json:"padCount"`
	Steps     []int `json:"steps"`
}

// BuildSequence generates the daily pad sequence for the given date.
// Every step is one draw from a generator seeded with the date, so the
// whole sequence is reproducible on any device.
func BuildSequence(date string) (*SequencePuzzle, error) {
	seed, err := DateSeed(date)
	if err != nil {
		return nil, err
	}
	day, err := DayNumber(date, SequenceEpoch)
	if err != nil {
		return nil, err
	}

	rng := NewRNG(seed)
	steps := make([]int, SequenceLength)
	for i := range steps {
		steps[i] = rng.Intn(SequencePads)
	}

	return &SequencePuzzle{
		DayNumber: day,
		PadCount:  SequencePads,
		Steps:     steps,
	}, nil
}
