package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/gommon/log"
	"github.com/radhian/ledger-engine/entity"
	"github.com/radhian/ledger-engine/infra/csvio"
)

func (h *LedgerHandler) GetResult(w http.ResponseWriter, r *http.Request) {
	logID, msg := parseLogID(r)
	if msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	result, err := h.Usecase.GetLedgerProcessResult(logID)
	if errors.Is(err, entity.ErrProcessLogNotFound) {
		writeError(w, http.StatusNotFound, "log not found")
		return
	}
	if err != nil {
		log.Errorf("[Handler] Failed to get result %d: %v", logID, err)
		writeError(w, http.StatusInternalServerError, "Failed to get result")
		return
	}

	writeJSON(w, http.StatusOK, APIResponse{
		Status: "success",
		Data:   result,
	})
}

// GetResultCSV returns the accounts of a finished job in the CLI's CSV layout.
func (h *LedgerHandler) GetResultCSV(w http.ResponseWriter, r *http.Request) {
	logID, msg := parseLogID(r)
	if msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	accounts, err := h.Usecase.GetLedgerProcessAccounts(logID)
	switch {
	case errors.Is(err, entity.ErrProcessLogNotFound):
		writeError(w, http.StatusNotFound, "log not found")
		return
	case errors.Is(err, entity.ErrProcessNotFinished):
		writeError(w, http.StatusConflict, "ledger process is not finished")
		return
	case err != nil:
		log.Errorf("[Handler] Failed to get accounts %d: %v", logID, err)
		writeError(w, http.StatusInternalServerError, "Failed to get result")
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.WriteHeader(http.StatusOK)
	if err := csvio.WriteAccounts(w, accounts); err != nil {
		log.Errorf("[Handler] Failed to write CSV for %d: %v", logID, err)
	}
}

func (h *LedgerHandler) GetProcessLogs(w http.ResponseWriter, r *http.Request) {
	logs, err := h.Usecase.GetLedgerProcessResults()
	if err != nil {
		log.Errorf("[Handler] Failed to list process logs: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to get results")
		return
	}

	writeJSON(w, http.StatusOK, APIResponse{
		Status: "success",
		Data:   logs,
	})
}
