package handler

import (
	usecase "github.com/radhian/ledger-engine/usecase/ledgerprocess"
)

type LedgerHandler struct {
	Usecase usecase.LedgerProcessUsecase
}

func NewLedgerHandler(uc usecase.LedgerProcessUsecase) *LedgerHandler {
	return &LedgerHandler{Usecase: uc}
}

type APIResponse struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}
