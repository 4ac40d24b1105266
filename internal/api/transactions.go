package api

import (
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/mmynk/khata/internal/models"
)

type amountRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

type recordResponse struct {
	Person      *models.Person      `json:"person"`
	Transaction *models.Transaction `json:"transaction"`
}

type transactionsResponse struct {
	Transactions []*models.Transaction `json:"transactions"`
}

func (s *Server) handleRecordTaken(w http.ResponseWriter, r *http.Request) {
	var req amountRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	person, entry, err := s.ledger.RecordTaken(r.Context(), r.PathValue("id"), req.Amount)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, recordResponse{Person: person, Transaction: entry})
}

func (s *Server) handleRecordReceived(w http.ResponseWriter, r *http.Request) {
	var req amountRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	person, entry, err := s.ledger.RecordReceived(r.Context(), r.PathValue("id"), req.Amount)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, recordResponse{Person: person, Transaction: entry})
}

func (s *Server) handleListTransactions(w http.ResponseWriter, r *http.Request) {
	// Verify the person exists so an unknown id is a 404, not an
	// empty list.
	if _, err := s.people.GetPerson(r.Context(), r.PathValue("id")); err != nil {
		writeError(w, err)
		return
	}

	transactions, err := s.ledger.ListTransactions(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}
	if transactions == nil {
		transactions = []*models.Transaction{}
	}
	writeJSON(w, http.StatusOK, transactionsResponse{Transactions: transactions})
}
