package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/labstack/gommon/log"
)

func writeJSON(w http.ResponseWriter, code int, resp APIResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		log.Errorf("[Handler] Failed to encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, code int, message string) {
	writeJSON(w, code, APIResponse{
		Status:  "error",
		Message: message,
	})
}

func parseLogID(r *http.Request) (int64, string) {
	logIDStr := r.URL.Query().Get("log_id")
	if logIDStr == "" {
		return 0, "log_id is required"
	}

	logID, err := strconv.ParseInt(logIDStr, 10, 64)
	if err != nil || logID <= 0 {
		return 0, "log_id must be a valid integer"
	}
	return logID, ""
}
