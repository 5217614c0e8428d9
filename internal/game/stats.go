package game

import "time"

// PlayEvent is one entry of the client's append-only play log: a game
// finished on a date with a result. The client stores these instead of
// scanning ad hoc storage keys, so the local data model is explicit and
// the aggregation below can be tested on its own.
type PlayEvent struct {
	Game  string `json:"game"`
	Date  string `json:"date"`
	Won   bool   `json:"won"`
	Score int    `json:"score"`
	Stars int    `json:"stars"`
}

// PlayStats is the aggregate view of a play log.
type PlayStats struct {
	GamesPlayed   int     `json:"gamesPlayed"`
	GamesWon      int     `json:"gamesWon"`
	WinRate       float64 `json:"winRate"`
	TotalStars    int     `json:"totalStars"`
	CurrentStreak int     `json:"currentStreak"`
	BestStreak    int     `json:"bestStreak"`
}

// AggregateStats folds a play log into totals and streaks. Streaks count
// consecutive calendar days with at least one event; the current streak
// is only alive if the log reaches today or yesterday. Events with
// malformed dates are skipped. The input order does not matter and
// duplicate same-day events count once toward streaks.
func AggregateStats(events []PlayEvent, today string) PlayStats {
	stats := PlayStats{}
	days := map[string]bool{}

	for _, ev := range events {
		if _, _, _, err := ParseDate(ev.Date); err != nil {
			continue
		}
		stats.GamesPlayed++
		if ev.Won {
			stats.GamesWon++
		}
		stats.TotalStars += ev.Stars
		days[ev.Date] = true
	}

	if stats.GamesPlayed > 0 {
		stats.WinRate = float64(stats.GamesWon) / float64(stats.GamesPlayed)
	}

	stats.CurrentStreak, stats.BestStreak = streaks(days, today)
	return stats
}

func streaks(days map[string]bool, today string) (current, best int) {
	if len(days) == 0 {
		return 0, 0
	}

	run := 0
	for day := range days {
		t, err := time.Parse(DateLayout, day)
		if err != nil {
			continue
		}
		// Count only the start of each run to avoid rescanning.
		if days[t.AddDate(0, 0, -1).Format(DateLayout)] {
			continue
		}
		length := 0
		for cursor := t; days[cursor.Format(DateLayout)]; cursor = cursor.AddDate(0, 0, 1) {
			length++
		}
		if length > best {
			best = length
		}
	}

	// The current streak must reach today or yesterday to still be alive.
	t, err := time.Parse(DateLayout, today)
	if err != nil {
		return 0, best
	}
	anchor := t
	if !days[anchor.Format(DateLayout)] {
		anchor = anchor.AddDate(0, 0, -1)
	}
	for days[anchor.Format(DateLayout)] {
		run++
		anchor = anchor.AddDate(0, 0, -1)
	}
	return run, best
}
