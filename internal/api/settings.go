package api

import "net/http"

type shopNameBody struct {
	ShopName string `json:"shopName"`
}

func (s *Server) handleGetShopName(w http.ResponseWriter, r *http.Request) {
	shopName, err := s.settings.ShopName(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, shopNameBody{ShopName: shopName})
}

func (s *Server) handleSetShopName(w http.ResponseWriter, r *http.Request) {
	var req shopNameBody
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := s.settings.SetShopName(r.Context(), req.ShopName); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
