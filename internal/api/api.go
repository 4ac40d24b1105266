// Package api exposes the khata services as a JSON HTTP API.
package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/mmynk/khata/internal/message"
	"github.com/mmynk/khata/internal/middleware"
	"github.com/mmynk/khata/internal/models"
	"github.com/mmynk/khata/internal/service"
	"github.com/mmynk/khata/internal/storage"
)

// Server holds the services behind the HTTP handlers.
type Server struct {
	people   *service.PersonService
	ledger   *service.LedgerService
	backups  *service.BackupService
	settings *service.SettingsService
	messages *message.Builder
}

// New creates an API server over the given store and message builder.
func New(store storage.Store, messages *message.Builder) *Server {
	return &Server{
		people:   service.NewPersonService(store),
		ledger:   service.NewLedgerService(store),
		backups:  service.NewBackupService(store),
		settings: service.NewSettingsService(store),
		messages: messages,
	}
}

// Routes builds the route table.
func (s *Server) Routes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/people", s.handleListPeople)
	mux.HandleFunc("POST /api/people", s.handleAddPerson)
	mux.HandleFunc("GET /api/people/{id}", s.handleGetPerson)
	mux.HandleFunc("DELETE /api/people/{id}", s.handleDeletePerson)

	mux.HandleFunc("POST /api/people/{id}/taken", s.handleRecordTaken)
	mux.HandleFunc("POST /api/people/{id}/received", s.handleRecordReceived)
	mux.HandleFunc("GET /api/people/{id}/transactions", s.handleListTransactions)

	mux.HandleFunc("GET /api/people/{id}/reminder", s.handleReminder)
	mux.HandleFunc("GET /api/people/{id}/history", s.handleHistory)

	mux.HandleFunc("GET /api/backup", s.handleBackup)
	mux.HandleFunc("POST /api/restore", s.handleRestore)

	mux.HandleFunc("GET /api/settings/shop", s.handleGetShopName)
	mux.HandleFunc("PUT /api/settings/shop", s.handleSetShopName)

	mux.Handle("GET /metrics", middleware.MetricsHandler())
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	return mux
}

type errorResponse struct {
	Error string `json:"error"`
}

// writeError maps service and storage errors onto HTTP statuses.
// Anything unrecognized is a storage failure: logged in full, reported
// generically.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, storage.ErrNotFound),
		errors.Is(err, message.ErrNoTransactions):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
	case errors.Is(err, service.ErrInvalidAmount),
		errors.Is(err, service.ErrNegativeOpening),
		errors.Is(err, service.ErrEmptyField),
		errors.Is(err, service.ErrInvalidType):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
	case errors.Is(err, models.ErrInvalidBackup):
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: err.Error()})
	default:
		slog.Error("Internal error", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return false
	}
	return true
}
