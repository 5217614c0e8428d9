package game

import "testing"

func TestAggregateStatsTotals(t *testing.T) {
	events := []PlayEvent{
		{Game: "squaddle", Date: "2024-01-13", Won: true, Score: 250, Stars: 4},
		{Game: "squaddle", Date: "2024-01-14", Won: false, Score: 0, Stars: 0},
		{Game: "squaddle", Date: "2024-01-15", Won: true, Score: 300, Stars: 5},
		{Game: "squaddle", Date: "bogus", Won: true, Score: 300, Stars: 5}, // skipped
	}

	stats := AggregateStats(events, "2024-01-15")
	if stats.GamesPlayed != 3 {
		t.Errorf("played %d, want 3", stats.GamesPlayed)
	}
	if stats.GamesWon != 2 {
		t.Errorf("won %d, want 2", stats.GamesWon)
	}
	if stats.TotalStars != 9 {
		t.Errorf("stars %d, want 9", stats.TotalStars)
	}
	if stats.WinRate < 0.66 || stats.WinRate > 0.67 {
		t.Errorf("win rate %v, want 2/3", stats.WinRate)
	}
}

func TestAggregateStatsStreaks(t *testing.T) {
	tests := []struct {
		name        string
		dates       []string
		today       string
		wantCurrent int
		wantBest    int
	}{
		{
			name:        "alive streak through today",
			dates:       []string{"2024-01-13", "2024-01-14", "2024-01-15"},
			today:       "2024-01-15",
			wantCurrent: 3,
			wantBest:    3,
		},
		{
			name:        "alive streak ending yesterday",
			dates:       []string{"2024-01-13", "2024-01-14"},
			today:       "2024-01-15",
			wantCurrent: 2,
			wantBest:    2,
		},
		{
			name:        "broken streak",
			dates:       []string{"2024-01-10", "2024-01-11", "2024-01-12"},
			today:       "2024-01-15",
			wantCurrent: 0,
			wantBest:    3,
		},
		{
			name:        "best remembers an older longer run",
			dates:       []string{"2024-01-05", "2024-01-06", "2024-01-07", "2024-01-08", "2024-01-14", "2024-01-15"},
			today:       "2024-01-15",
			wantCurrent: 2,
			wantBest:    4,
		},
		{
			name:        "month boundary",
			dates:       []string{"2024-01-31", "2024-02-01"},
			today:       "2024-02-01",
			wantCurrent: 2,
			wantBest:    2,
		},
		{
			name:        "no events",
			dates:       nil,
			today:       "2024-01-15",
			wantCurrent: 0,
			wantBest:    0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var events []PlayEvent
			for _, d := range tt.dates {
				events = append(events, PlayEvent{Game: "squaddle", Date: d, Won: true, Stars: 3})
			}
			stats := AggregateStats(events, tt.today)
			if stats.CurrentStreak != tt.wantCurrent {
				t.Errorf("current streak %d, want %d", stats.CurrentStreak, tt.wantCurrent)
			}
			if stats.BestStreak != tt.wantBest {
				t.Errorf("best streak %d, want %d", stats.BestStreak, tt.wantBest)
			}
		})
	}
}

func TestAggregateStatsDuplicateDayCountsOnceForStreak(t *testing.T) {
	events := []PlayEvent{
		{Game: "squaddle", Date: "2024-01-15", Won: true, Stars: 5},
		{Game: "oddoneout", Date: "2024-01-15", Won: true, Stars: 4},
	}
	stats := AggregateStats(events, "2024-01-15")
	if stats.GamesPlayed != 2 {
		t.Errorf("played %d, want 2", stats.GamesPlayed)
	}
	if stats.CurrentStreak != 1 {
		t.Errorf("current streak %d, want 1", stats.CurrentStreak)
	}
}
