package controllers

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/labstack/gommon/log"
	"github.com/radhian/ledger-engine/handler"
	"github.com/radhian/ledger-engine/middlewares"
)

// NewRouter wires the ledger routes behind the shared middlewares.
func NewRouter(h *handler.LedgerHandler) *mux.Router {
	router := mux.NewRouter().StrictSlash(true)
	router.Use(middlewares.SetContentTypeMiddleware)
	RegisterLedgerRoutes(router, h)
	return router
}

func RunServer(port string, router http.Handler) error {
	log.Infof("Server starting on port %v", port)
	return http.ListenAndServe(":"+port, router)
}
