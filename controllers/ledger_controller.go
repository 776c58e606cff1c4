package controllers

import (
	"github.com/radhian/ledger-engine/handler"

	"github.com/gorilla/mux"
)

func RegisterLedgerRoutes(router *mux.Router, h *handler.LedgerHandler) {
	router.HandleFunc("/process_ledger", h.ProcessLedger).Methods("POST")
	router.HandleFunc("/get_result", h.GetResult).Methods("GET")
	router.HandleFunc("/get_result_csv", h.GetResultCSV).Methods("GET")
	router.HandleFunc("/process_logs", h.GetProcessLogs).Methods("GET")
}
