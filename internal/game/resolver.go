package game

import "errors"

// Difficulty partitions a content pool into the three daily slots.
type Difficulty int

const (
	Easy Difficulty = iota + 1
	Medium
	Hard
)

// SlotCount is the number of difficulty slots each game resolves per day.
const SlotCount = 3

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Medium:
		return "medium"
	case Hard:
		return "hard"
	}
	return "unknown"
}

// Valid reports whether d is one of the three playable difficulties.
func (d Difficulty) Valid() bool {
	return d >= Easy && d <= Hard
}

// ErrNotEnoughContent is returned when a game cannot fill all three
// difficulty slots for a date. Callers surface it as a distinct
// content-unavailable condition rather than serving a partial puzzle.
var ErrNotEnoughContent = errors.New("not enough content to fill all difficulty slots")

// Schedulable is implemented by content rows eligible for daily
// selection: anything with a difficulty and an optional date pin.
type Schedulable interface {
	// SlotDifficulty returns the difficulty slot this row belongs to.
	SlotDifficulty() Difficulty
	// ScheduledFor returns the YYYY-MM-DD date this row is pinned to,
	// or "" when the row is part of the random fallback pool.
	ScheduledFor() string
}

// SeedMode selects how per-slot generators are derived from the date.
// The two modes are different decorrelation strategies for the same
// problem; consolidating them would reshuffle future daily content, so
// each game keeps its historical mode.
type SeedMode int

const (
	// SeedShared drives all three slots from one generator seeded with
	// the base date seed, consuming draws across slots in easy, medium,
	// hard order (Squaddle).
	SeedShared SeedMode = iota
	// SeedPerSlot seeds a fresh generator per slot with a 1000-stride
	// offset from the base seed (Odd One Out).
	SeedPerSlot
)

// Slot is the resolved assignment of one content row to one difficulty
// for one date.
type Slot[T Schedulable] struct {
	Item T
	// OK is false when the pool had no eligible row for this slot.
	OK bool
	// Scheduled reports whether the row won by an explicit date pin
	// rather than the random draw.
	Scheduled bool
	// RNG is the generator in the state it was left after this slot's
	// draw. Games that derive further per-slot content (Odd One Out's
	// item picks) continue consuming from it so the joint sequence
	// stays reproducible.
	RNG *RNG
}

// ResolveDaily resolves one content row per difficulty slot for the
// given date. The result is indexed 0=easy, 1=medium, 2=hard.
//
// Per slot, an item pinned to exactly this date always wins. Otherwise
// the unscheduled rows of the slot's difficulty are shuffled with the
// slot's generator and the first element is taken. Rows pinned to a
// different date are excluded from the random pool entirely; a pinned
// item never appears as filler on any other day.
//
// Resolution is a pure function of (pool, date): no state is shared
// across calls, so different dates and games may be resolved
// concurrently without coordination.
func ResolveDaily[T Schedulable](pool []T, date string, mode SeedMode) ([]Slot[T], error) {
	base, err := DateSeed(date)
	if err != nil {
		return nil, err
	}

	var shared *RNG
	if mode == SeedShared {
		shared = NewRNG(base)
	}

	slots := make([]Slot[T], SlotCount)
	for i := range slots {
		rng := shared
		if mode == SeedPerSlot {
			rng = NewRNG(SlotSeed(base, i+1))
		}
		slots[i] = resolveSlot(pool, Difficulty(i+1), date, rng)
	}
	return slots, nil
}

// resolveSlot applies the override-then-random rule for one slot.
// When several rows are pinned to the same (difficulty, date) the first
// in pool order wins; the admin service rejects such conflicts at write
// time, so hitting that path means the store predates validation.
func resolveSlot[T Schedulable](pool []T, diff Difficulty, date string, rng *RNG) Slot[T] {
	slot := Slot[T]{RNG: rng}

	for _, item := range pool {
		if item.SlotDifficulty() == diff && item.ScheduledFor() == date {
			slot.Item = item
			slot.OK = true
			slot.Scheduled = true
			return slot
		}
	}

	var eligible []T
	for _, item := range pool {
		if item.SlotDifficulty() == diff && item.ScheduledFor() == "" {
			eligible = append(eligible, item)
		}
	}
	if len(eligible) == 0 {
		return slot
	}

	slot.Item = Shuffle(eligible, rng)[0]
	slot.OK = true
	return slot
}
