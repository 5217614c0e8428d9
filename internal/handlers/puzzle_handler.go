package handlers

import (
	"errors"
	"net/http"

	"playday/internal/game"
	"playday/internal/service"
)

// PuzzleHandler serves the public daily puzzle endpoints
type PuzzleHandler struct {
	puzzles *service.PuzzleService
}

// NewPuzzleHandler creates a new puzzle handler
func NewPuzzleHandler(puzzles *service.PuzzleService) *PuzzleHandler {
	return &PuzzleHandler{puzzles: puzzles}
}

// requestDate returns the date query parameter, falling back to the
// server-local calendar date. Clients pass their own local date so a
// player near midnight sees the day their device shows.
func requestDate(r *http.Request) string {
	if date := r.URL.Query().Get("date"); date != "" {
		return date
	}
	return game.Today()
}

// Squaddle handles GET /api/games/squaddle/daily
func (h *PuzzleHandler) Squaddle(w http.ResponseWriter, r *http.Request) {
	date := requestDate(r)
	puzzle, err := h.puzzles.GetSquaddle(r.Context(), date)
	if err != nil {
		h.respondPuzzleError(w, date, err)
		return
	}
	respondWithJSON(w, http.StatusOK, puzzle)
}

// OddOneOut handles GET /api/games/oddoneout/daily
func (h *PuzzleHandler) OddOneOut(w http.ResponseWriter, r *http.Request) {
	date := requestDate(r)
	puzzle, err := h.puzzles.GetOddOneOut(r.Context(), date)
	if err != nil {
		h.respondPuzzleError(w, date, err)
		return
	}
	respondWithJSON(w, http.StatusOK, puzzle)
}

// Sequence handles GET /api/games/sequence/daily
func (h *PuzzleHandler) Sequence(w http.ResponseWriter, r *http.Request) {
	date := requestDate(r)
	puzzle, err := h.puzzles.GetSequence(date)
	if err != nil {
		h.respondPuzzleError(w, date, err)
		return
	}
	respondWithJSON(w, http.StatusOK, puzzle)
}

func (h *PuzzleHandler) respondPuzzleError(w http.ResponseWriter, date string, err error) {
	switch {
	case errors.Is(err, game.ErrInvalidDate):
		respondWithError(w, http.StatusBadRequest, ErrInvalidDate, "", nil)
	case errors.Is(err, game.ErrNotEnoughContent):
		respondContentUnavailable(w)
	default:
		respondWithError(w, http.StatusInternalServerError, ErrInternalServerError, "Failed to build puzzle for "+date, err)
	}
}
