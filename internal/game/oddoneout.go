package game

// Odd One Out: five words on a theme, one doesn't belong.

// OddOneOutEpoch is day 1 of the Odd One Out numbering.
const OddOneOutEpoch = "2023-11-06"

const (
	// oddOneOutBelongs is how many in-theme items are shown per round.
	oddOneOutBelongs = 4
	// OddOneOutItems is the total number of items displayed per round.
	OddOneOutItems = oddOneOutBelongs + 1
)

// WordGroup is the content contract a themed word set must satisfy.
type WordGroup interface {
	Schedulable
	GroupTheme() string
	// Belongs returns the in-theme candidate items.
	Belongs() []string
	// Outliers returns the does-not-belong candidate items.
	Outliers() []string
}

// OddOneOutRound is one resolved difficulty slot: five display items and
// the index of the outlier among them.
type OddOneOutRound struct {
	Items           []string `json:"items"`
	OutlierIndex    int      `json:"outlierIndex"`
	ConnectionTheme string   `json:"connectionTheme"`
}

// OddOneOutPuzzle is the payload served for one calendar date.
type OddOneOutPuzzle struct {
	DayNumber int                    `json:"dayNumber"`
	Rounds    [SlotCount]OddOneOutRound `json:"rounds"`
}

// BuildOddOneOut resolves the daily Odd One Out puzzle. Each slot is
// drawn from its own offset-seeded generator; after the theme is picked
// the same generator keeps running to draw 4 in-theme items, 1 outlier,
// and the final display order, so the outlier's position is itself
// deterministic. Returns ErrNotEnoughContent when a slot has no
// eligible set or a set is too thin to fill a round.
func BuildOddOneOut[T WordGroup](pool []T, date string) (*OddOneOutPuzzle, error) {
	slots, err := ResolveDaily(pool, date, SeedPerSlot)
	if err != nil {
		return nil, err
	}

	day, err := DayNumber(date, OddOneOutEpoch)
	if err != nil {
		return nil, err
	}

	puzzle := &OddOneOutPuzzle{DayNumber: day}
	for i, slot := range slots {
		if !slot.OK {
			return nil, ErrNotEnoughContent
		}
		round, err := buildOddOneOutRound(slot.Item, slot.RNG)
		if err != nil {
			return nil, err
		}
		puzzle.Rounds[i] = round
	}
	return puzzle, nil
}

func buildOddOneOutRound[T WordGroup](group T, rng *RNG) (OddOneOutRound, error) {
	if len(group.Belongs()) < oddOneOutBelongs || len(group.Outliers()) < 1 {
		return OddOneOutRound{}, ErrNotEnoughContent
	}

	belongs := Shuffle(group.Belongs(), rng)[:oddOneOutBelongs]
	outlier := Shuffle(group.Outliers(), rng)[0]

	display := make([]string, 0, OddOneOutItems)
	display = append(display, belongs...)
	display = append(display, outlier)
	display = Shuffle(display, rng)

	round := OddOneOutRound{
		Items:           display,
		OutlierIndex:    -1,
		ConnectionTheme: group.GroupTheme(),
	}
	for idx, item := range display {
		if item == outlier {
			round.OutlierIndex = idx
			break
		}
	}
	return round, nil
}
