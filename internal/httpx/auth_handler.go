package httpx

import (
	"encoding/json"
	"net/http"
)

type registerReq struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var req registerReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid json")
		return
	}
	if req.Name == "" || req.Email == "" || req.Password == "" {
		badRequest(w, "missing fields")
		return
	}
	if req.ConfirmPassword != "" && req.ConfirmPassword != req.Password {
		badRequest(w, "konfirmasi password tidak sama")
		return
	}

	user, err := h.Store.RegisterUser(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		h.writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, user)
}

type loginReq struct {
	Identifier string `json:"identifier"`
	Password   string `json:"password"`
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req loginReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid json")
		return
	}
	if req.Identifier == "" || req.Password == "" {
		badRequest(w, "missing fields")
		return
	}

	session, err := h.Store.LoginUser(r.Context(), req.Identifier, req.Password)
	if err != nil {
		h.writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, session)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	if err := h.Store.LogoutUser(r.Context()); err != nil {
		h.writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "logout berhasil"})
}

func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	session, err := h.Store.GetCurrentUser(r.Context())
	if err != nil {
		h.writeErr(w, err)
		return
	}
	if session == nil {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "belum login"})
		return
	}
	writeJSON(w, http.StatusOK, session)
}
