package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"

	"playday/internal/game"
	"playday/internal/service"
)

// AdminHandler serves the content management endpoints
type AdminHandler struct {
	admin *service.AdminService
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(admin *service.AdminService) *AdminHandler {
	return &AdminHandler{admin: admin}
}

func pathID(r *http.Request) (int64, error) {
	return strconv.ParseInt(r.PathValue("id"), 10, 64)
}

// respondAdminError maps service errors onto API statuses
func respondAdminError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	switch {
	case errors.As(err, &validationErrs):
		respondWithError(w, http.StatusUnprocessableEntity, "Validation failed: "+validationErrs.Error(), "", nil)
	case errors.Is(err, service.ErrOutlierOverlap):
		respondWithError(w, http.StatusUnprocessableEntity, err.Error(), "", nil)
	case errors.Is(err, service.ErrNotFound):
		respondWithError(w, http.StatusNotFound, ErrNotFoundMsg, "", nil)
	case errors.Is(err, service.ErrScheduleConflict):
		respondWithError(w, http.StatusConflict, err.Error(), "", nil)
	case errors.Is(err, service.ErrBulkTooLarge),
		errors.Is(err, service.ErrPreviewTooLong),
		errors.Is(err, service.ErrUnknownGame):
		respondWithError(w, http.StatusBadRequest, err.Error(), "", nil)
	case errors.Is(err, game.ErrInvalidDate):
		respondWithError(w, http.StatusBadRequest, ErrInvalidDate, "", nil)
	default:
		respondWithError(w, http.StatusInternalServerError, ErrInternalServerError, "Admin operation failed", err)
	}
}

// ListPlayers handles GET /api/admin/players
func (h *AdminHandler) ListPlayers(w http.ResponseWriter, r *http.Request) {
	players, err := h.admin.ListPlayers()
	if err != nil {
		respondAdminError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]interface{}{"players": players})
}

// GetPlayer handles GET /api/admin/players/{id}
func (h *AdminHandler) GetPlayer(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid id", "", nil)
		return
	}
	player, err := h.admin.GetPlayer(id)
	if err != nil {
		respondAdminError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, player)
}

// CreatePlayer handles POST /api/admin/players
func (h *AdminHandler) CreatePlayer(w http.ResponseWriter, r *http.Request) {
	var input service.PlayerInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, ErrInvalidRequestBody, "", nil)
		return
	}
	player, err := h.admin.CreatePlayer(input)
	if err != nil {
		respondAdminError(w, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, player)
}

// UpdatePlayer handles PUT /api/admin/players/{id}
func (h *AdminHandler) UpdatePlayer(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid id", "", nil)
		return
	}
	var input service.PlayerInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, ErrInvalidRequestBody, "", nil)
		return
	}
	player, err := h.admin.UpdatePlayer(id, input)
	if err != nil {
		respondAdminError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, player)
}

// DeletePlayer handles DELETE /api/admin/players/{id}
func (h *AdminHandler) DeletePlayer(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid id", "", nil)
		return
	}
	if err := h.admin.DeletePlayer(id); err != nil {
		respondAdminError(w, err)
		return
	}
	respondWithJSON(w, http.StatusNoContent, nil)
}

// ListWordSets handles GET /api/admin/wordsets
func (h *AdminHandler) ListWordSets(w http.ResponseWriter, r *http.Request) {
	sets, err := h.admin.ListWordSets()
	if err != nil {
		respondAdminError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]interface{}{"wordSets": sets})
}

// GetWordSet handles GET /api/admin/wordsets/{id}
func (h *AdminHandler) GetWordSet(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid id", "", nil)
		return
	}
	set, err := h.admin.GetWordSet(id)
	if err != nil {
		respondAdminError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, set)
}

// CreateWordSet handles POST /api/admin/wordsets
func (h *AdminHandler) CreateWordSet(w http.ResponseWriter, r *http.Request) {
	var input service.WordSetInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, ErrInvalidRequestBody, "", nil)
		return
	}
	set, err := h.admin.CreateWordSet(input)
	if err != nil {
		respondAdminError(w, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, set)
}

// UpdateWordSet handles PUT /api/admin/wordsets/{id}
func (h *AdminHandler) UpdateWordSet(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid id", "", nil)
		return
	}
	var input service.WordSetInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, ErrInvalidRequestBody, "", nil)
		return
	}
	set, err := h.admin.UpdateWordSet(id, input)
	if err != nil {
		respondAdminError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, set)
}

// DeleteWordSet handles DELETE /api/admin/wordsets/{id}
func (h *AdminHandler) DeleteWordSet(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid id", "", nil)
		return
	}
	if err := h.admin.DeleteWordSet(id); err != nil {
		respondAdminError(w, err)
		return
	}
	respondWithJSON(w, http.StatusNoContent, nil)
}

// BulkImport handles POST /api/admin/bulk
func (h *AdminHandler) BulkImport(w http.ResponseWriter, r *http.Request) {
	var input service.BulkInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, ErrInvalidRequestBody, "", nil)
		return
	}
	result, err := h.admin.BulkImport(input)
	if err != nil {
		respondAdminError(w, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, result)
}

// Preview handles GET /api/admin/preview?game=...&start=...&days=N
func (h *AdminHandler) Preview(w http.ResponseWriter, r *http.Request) {
	gameName := r.URL.Query().Get("game")
	start := r.URL.Query().Get("start")
	if start == "" {
		start = game.Today()
	}
	days := 7
	if raw := r.URL.Query().Get("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid days parameter", "", nil)
			return
		}
		days = parsed
	}

	preview, err := h.admin.Preview(gameName, start, days)
	if err != nil {
		respondAdminError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]interface{}{"days": preview})
}
