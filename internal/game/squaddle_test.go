package game

import (
	"errors"
	"reflect"
	"testing"
)

type testCard struct {
	id      int64
	name    string
	answers []string
	clues   []string
	diff    Difficulty
	sched   string
}

func (c testCard) SlotDifficulty() Difficulty { return c.diff }
func (c testCard) ScheduledFor() string       { return c.sched }
func (c testCard) CardID() int64              { return c.id }
func (c testCard) CardName() string           { return c.name }
func (c testCard) Answers() []string          { return c.answers }
func (c testCard) ClueTexts() []string        { return c.clues }

func sixClues(prefix string) []string {
	return []string{prefix + "1", prefix + "2", prefix + "3", prefix + "4", prefix + "5", prefix + "6"}
}

func squaddleTestPool() []testCard {
	return []testCard{
		{1, "Alpha", []string{"alpha"}, sixClues("a"), Easy, ""},
		{2, "Bravo", []string{"bravo"}, sixClues("b"), Easy, ""},
		{3, "Charlie", []string{"charlie"}, sixClues("c"), Medium, ""},
		{4, "Delta", []string{"delta"}, sixClues("d"), Hard, ""},
	}
}

func TestBuildSquaddleGolden(t *testing.T) {
	// End-to-end 2024-01-15 scenario: seed 20240115, one shared draw,
	// the two-item easy pool resolves to the second item.
	puzzle, err := BuildSquaddle(squaddleTestPool(), "2024-01-15")
	if err != nil {
		t.Fatal(err)
	}

	if puzzle.DayNumber != 15 {
		t.Errorf("day number: got %d, want 15", puzzle.DayNumber)
	}
	wantNames := []string{"Bravo", "Charlie", "Delta"}
	for i, want := range wantNames {
		if puzzle.Rounds[i].Name != want {
			t.Errorf("round %d: got %q, want %q", i, puzzle.Rounds[i].Name, want)
		}
	}
	if len(puzzle.Rounds[0].Clues) != SquaddleClueCount {
		t.Errorf("clue count: got %d, want %d", len(puzzle.Rounds[0].Clues), SquaddleClueCount)
	}
}

func TestBuildSquaddleRepeatResolutionIsIdentical(t *testing.T) {
	first, err := BuildSquaddle(squaddleTestPool(), "2024-01-15")
	if err != nil {
		t.Fatal(err)
	}
	second, err := BuildSquaddle(squaddleTestPool(), "2024-01-15")
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeat resolution differs:\n%+v\n%+v", first, second)
	}
}

func TestBuildSquaddleScheduledOverride(t *testing.T) {
	pool := append(squaddleTestPool(),
		testCard{9, "Pinned", []string{"pinned"}, sixClues("p"), Easy, "2024-01-15"})

	puzzle, err := BuildSquaddle(pool, "2024-01-15")
	if err != nil {
		t.Fatal(err)
	}
	if puzzle.Rounds[0].Name != "Pinned" {
		t.Errorf("easy round: got %q, want the scheduled card", puzzle.Rounds[0].Name)
	}

	// On any other day the pinned card must not appear.
	puzzle, err = BuildSquaddle(pool, "2024-01-16")
	if err != nil {
		t.Fatal(err)
	}
	if puzzle.Rounds[0].Name == "Pinned" {
		t.Error("pinned card leaked onto a different date")
	}
}

func TestBuildSquaddleNotEnoughContent(t *testing.T) {
	pool := []testCard{
		{1, "Alpha", []string{"alpha"}, sixClues("a"), Easy, ""},
		{3, "Charlie", []string{"charlie"}, sixClues("c"), Medium, ""},
		// no hard card
	}
	if _, err := BuildSquaddle(pool, "2024-01-15"); !errors.Is(err, ErrNotEnoughContent) {
		t.Errorf("expected ErrNotEnoughContent, got %v", err)
	}
}

func TestBuildSquaddleRejectsMalformedDate(t *testing.T) {
	if _, err := BuildSquaddle(squaddleTestPool(), "2024.01.15"); !errors.Is(err, ErrInvalidDate) {
		t.Errorf("expected ErrInvalidDate, got %v", err)
	}
}
