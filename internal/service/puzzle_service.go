package service

import (
	"context"
	"errors"
	"fmt"

	lru "github.com/hashicorp/golang-lru"

	"playday/internal/game"
	"playday/internal/repository"
)

// Game names as they appear in URLs and analytics rows.
const (
	GameSquaddle  = "squaddle"
	GameOddOneOut = "oddoneout"
	GameSequence  = "sequence"
)

// ValidGame reports whether name is a known game
func ValidGame(name string) bool {
	return name == GameSquaddle || name == GameOddOneOut || name == GameSequence
}

// puzzleCacheSize bounds the daily-puzzle cache. Days are small, so
// this holds months of traffic including admin previews.
const puzzleCacheSize = 256

// PuzzleService builds daily puzzles from the content pools. Built days
// are cached: selection is deterministic, so a cached day never goes
// stale short of a content edit, and edits mid-day are rare enough that
// the admin preview invalidation covers them.
type PuzzleService struct {
	players  *repository.PlayerRepository
	wordSets *repository.WordSetRepository
	alerts   *AlertService
	cache    *lru.ARCCache
}

// NewPuzzleService creates a new puzzle service
func NewPuzzleService(players *repository.PlayerRepository, wordSets *repository.WordSetRepository, alerts *AlertService) (*PuzzleService, error) {
	cache, err := lru.NewARC(puzzleCacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create puzzle cache: %w", err)
	}
	return &PuzzleService{
		players:  players,
		wordSets: wordSets,
		alerts:   alerts,
		cache:    cache,
	}, nil
}

// InvalidateCache drops all cached days. Called after admin content
// edits so future requests see the new pools.
func (s *PuzzleService) InvalidateCache() {
	s.cache.Purge()
}

// GetSquaddle returns the Squaddle puzzle for a date
func (s *PuzzleService) GetSquaddle(ctx context.Context, date string) (*game.SquaddlePuzzle, error) {
	key := GameSquaddle + "|" + date
	if cached, ok := s.cache.Get(key); ok {
		return cached.(*game.SquaddlePuzzle), nil
	}

	pool, err := s.players.GetAllPlayers()
	if err != nil {
		return nil, fmt.Errorf("failed to load player pool: %w", err)
	}

	puzzle, err := game.BuildSquaddle(pool, date)
	if err != nil {
		s.reportIfLowContent(ctx, GameSquaddle, date, err)
		return nil, err
	}

	s.cache.Add(key, puzzle)
	return puzzle, nil
}

// GetOddOneOut returns the Odd One Out puzzle for a date
func (s *PuzzleService) GetOddOneOut(ctx context.Context, date string) (*game.OddOneOutPuzzle, error) {
	key := GameOddOneOut + "|" + date
	if cached, ok := s.cache.Get(key); ok {
		return cached.(*game.OddOneOutPuzzle), nil
	}

	pool, err := s.wordSets.GetAllWordSets()
	if err != nil {
		return nil, fmt.Errorf("failed to load word set pool: %w", err)
	}

	puzzle, err := game.BuildOddOneOut(pool, date)
	if err != nil {
		s.reportIfLowContent(ctx, GameOddOneOut, date, err)
		return nil, err
	}

	s.cache.Add(key, puzzle)
	return puzzle, nil
}

// GetSequence returns the Sequence puzzle for a date. Sequence needs no
// content pool; the steps derive from the date alone.
func (s *PuzzleService) GetSequence(date string) (*game.SequencePuzzle, error) {
	key := GameSequence + "|" + date
	if cached, ok := s.cache.Get(key); ok {
		return cached.(*game.SequencePuzzle), nil
	}

	puzzle, err := game.BuildSequence(date)
	if err != nil {
		return nil, err
	}

	s.cache.Add(key, puzzle)
	return puzzle, nil
}

// reportIfLowContent raises a low-content alert naming the difficulty
// pools that are empty for the game.
func (s *PuzzleService) reportIfLowContent(ctx context.Context, gameName, date string, err error) {
	if s.alerts == nil || !errors.Is(err, game.ErrNotEnoughContent) {
		return
	}

	var counts map[game.Difficulty]int
	var countErr error
	switch gameName {
	case GameSquaddle:
		counts, countErr = s.players.CountByDifficulty()
	case GameOddOneOut:
		counts, countErr = s.wordSets.CountByDifficulty()
	default:
		return
	}
	if countErr != nil {
		counts = nil
	}

	var missing []string
	for _, d := range []game.Difficulty{game.Easy, game.Medium, game.Hard} {
		if counts[d] == 0 {
			missing = append(missing, d.String())
		}
	}
	s.alerts.LowContent(ctx, gameName, date, missing)
}
