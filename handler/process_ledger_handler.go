package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"strings"

	"github.com/labstack/gommon/log"
	"github.com/radhian/ledger-engine/entity"
)

func (h *LedgerHandler) ProcessLedger(w http.ResponseWriter, r *http.Request) {
	var req entity.ProcessLedgerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := validateProcessLedgerRequest(req); err != nil {
		log.Warnf("[Handler] Invalid input: %v", err)
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	res, err := h.Usecase.ProcessLedgerInit(req.TransactionCSVPath, req.Operator)
	if err != nil {
		log.Errorf("[Handler] Failed to init ledger process: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to process ledger")
		return
	}

	writeJSON(w, http.StatusOK, APIResponse{
		Status: "success",
		Data:   res,
	})
}

func validateProcessLedgerRequest(req entity.ProcessLedgerRequest) error {
	if strings.TrimSpace(req.TransactionCSVPath) == "" {
		return errors.New("transaction CSV path is required")
	}
	info, err := os.Stat(req.TransactionCSVPath)
	if os.IsNotExist(err) {
		return errors.New("transaction CSV file does not exist")
	}
	if err != nil {
		return err
	}
	if info.IsDir() {
		return errors.New("transaction CSV path is a directory")
	}
	if strings.TrimSpace(req.Operator) == "" {
		return errors.New("operator must be specified")
	}
	return nil
}
