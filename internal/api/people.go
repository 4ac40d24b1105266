package api

import (
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/mmynk/khata/internal/models"
)

type addPersonRequest struct {
	Name          string                 `json:"name"`
	OpeningAmount decimal.Decimal        `json:"openingAmount"`
	Type          models.TransactionType `json:"type"`
	MobileNumber  string                 `json:"mobileNumber"`
	Description   string                 `json:"description"`
}

type peopleResponse struct {
	People []*models.Person `json:"people"`
}

func (s *Server) handleListPeople(w http.ResponseWriter, r *http.Request) {
	people, err := s.people.ListPeople(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	if people == nil {
		people = []*models.Person{}
	}
	writeJSON(w, http.StatusOK, peopleResponse{People: people})
}

func (s *Server) handleAddPerson(w http.ResponseWriter, r *http.Request) {
	var req addPersonRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	person, err := s.people.AddPerson(r.Context(), req.Name, req.OpeningAmount, req.Type, req.MobileNumber, req.Description)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, person)
}

func (s *Server) handleGetPerson(w http.ResponseWriter, r *http.Request) {
	person, err := s.people.GetPerson(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, person)
}

func (s *Server) handleDeletePerson(w http.ResponseWriter, r *http.Request) {
	if err := s.people.DeletePerson(r.Context(), r.PathValue("id")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
