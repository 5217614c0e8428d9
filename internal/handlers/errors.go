package handlers

import (
	"encoding/json"
	"log"
	"net/http"
)

// errorBody is the JSON error envelope for all API responses.
type errorBody struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

func respondWithJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}

func respondWithError(w http.ResponseWriter, status int, userMsg, logMsg string, err error) {
	if err != nil {
		if logMsg == "" {
			logMsg = userMsg
		}
		log.Printf("%s: %v", logMsg, err)
	}

	respondWithJSON(w, status, errorBody{Error: userMsg})
}

// respondContentUnavailable is the distinct 503 body served when a day
// cannot be filled from the content pools.
func respondContentUnavailable(w http.ResponseWriter) {
	respondWithJSON(w, http.StatusServiceUnavailable, errorBody{
		Error: ErrContentUnavailable,
		Code:  "CONTENT_UNAVAILABLE",
	})
}
