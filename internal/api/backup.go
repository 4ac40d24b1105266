package api

import (
	"io"
	"net/http"
)

// Restore documents are small local exports; cap the body to keep a
// corrupt upload from ballooning memory.
const maxRestoreBytes = 32 << 20

func (s *Server) handleBackup(w http.ResponseWriter, r *http.Request) {
	_, data, err := s.backups.Export(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", `attachment; filename="khata-backup.json"`)
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

func (s *Server) handleRestore(w http.ResponseWriter, r *http.Request) {
	// Read one byte past the cap so an over-limit upload is reported
	// as too large instead of failing to parse as a truncated document.
	data, err := io.ReadAll(io.LimitReader(r.Body, maxRestoreBytes+1))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "failed to read request body"})
		return
	}
	if len(data) > maxRestoreBytes {
		writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse{Error: "backup document too large"})
		return
	}

	if err := s.backups.Import(r.Context(), data); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
