package api

import "net/http"

type messageResponse struct {
	Message     string `json:"message"`
	CopyText    string `json:"copyText,omitempty"`
	WhatsAppURL string `json:"whatsappUrl"`
}

func (s *Server) handleReminder(w http.ResponseWriter, r *http.Request) {
	person, err := s.people.GetPerson(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}

	shopName, err := s.settings.ShopName(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	reminder := s.messages.Reminder(person, shopName)
	writeJSON(w, http.StatusOK, messageResponse{
		Message:     reminder,
		CopyText:    s.messages.DueNote(person),
		WhatsAppURL: s.messages.WhatsAppURL(person.MobileNumber, reminder),
	})
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	person, err := s.people.GetPerson(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}

	transactions, err := s.ledger.ListTransactions(r.Context(), person.ID)
	if err != nil {
		writeError(w, err)
		return
	}

	history, err := s.messages.History(person, transactions)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, messageResponse{
		Message:     history,
		WhatsAppURL: s.messages.WhatsAppURL(person.MobileNumber, history),
	})
}
