package httpx

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/bahtiarrahman/your-i-scent/internal/shop"
)

func (h *Handler) getPaymentSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.Store.GetPaymentSettings(r.Context())
	if err != nil {
		h.writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, settings)
}

func (h *Handler) savePaymentSettings(w http.ResponseWriter, r *http.Request) {
	var settings shop.PaymentSettings
	if err := json.NewDecoder(r.Body).Decode(&settings); err != nil {
		badRequest(w, "invalid json")
		return
	}
	if err := h.Store.SavePaymentSettings(r.Context(), settings); err != nil {
		h.writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, settings)
}

func (h *Handler) addBank(w http.ResponseWriter, r *http.Request) {
	var acc shop.BankAccount
	if err := json.NewDecoder(r.Body).Decode(&acc); err != nil {
		badRequest(w, "invalid json")
		return
	}
	if acc.Name == "" || acc.AccountNumber == "" || acc.AccountName == "" {
		badRequest(w, "missing fields")
		return
	}
	settings, err := h.Store.AddBankAccount(r.Context(), acc)
	if err != nil {
		h.writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, settings)
}

func (h *Handler) updateBank(w http.ResponseWriter, r *http.Request) {
	var acc shop.BankAccount
	if err := json.NewDecoder(r.Body).Decode(&acc); err != nil {
		badRequest(w, "invalid json")
		return
	}
	settings, err := h.Store.UpdateBankAccount(r.Context(), chi.URLParam(r, "id"), acc)
	if err != nil {
		h.writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, settings)
}

func (h *Handler) deleteBank(w http.ResponseWriter, r *http.Request) {
	settings, err := h.Store.DeleteBankAccount(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, settings)
}

func (h *Handler) addEwallet(w http.ResponseWriter, r *http.Request) {
	var acc shop.EwalletAccount
	if err := json.NewDecoder(r.Body).Decode(&acc); err != nil {
		badRequest(w, "invalid json")
		return
	}
	if acc.Name == "" || acc.Number == "" {
		badRequest(w, "missing fields")
		return
	}
	settings, err := h.Store.AddEwalletAccount(r.Context(), acc)
	if err != nil {
		h.writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, settings)
}

func (h *Handler) updateEwallet(w http.ResponseWriter, r *http.Request) {
	var acc shop.EwalletAccount
	if err := json.NewDecoder(r.Body).Decode(&acc); err != nil {
		badRequest(w, "invalid json")
		return
	}
	settings, err := h.Store.UpdateEwalletAccount(r.Context(), chi.URLParam(r, "id"), acc)
	if err != nil {
		h.writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, settings)
}

func (h *Handler) deleteEwallet(w http.ResponseWriter, r *http.Request) {
	settings, err := h.Store.DeleteEwalletAccount(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, settings)
}

func (h *Handler) updateQris(w http.ResponseWriter, r *http.Request) {
	var qris shop.QrisSettings
	if err := json.NewDecoder(r.Body).Decode(&qris); err != nil {
		badRequest(w, "invalid json")
		return
	}
	settings, err := h.Store.UpdateQrisSettings(r.Context(), qris)
	if err != nil {
		h.writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, settings)
}

type whatsappReq struct {
	Number string `json:"number"`
}

func (h *Handler) updateWhatsApp(w http.ResponseWriter, r *http.Request) {
	var req whatsappReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid json")
		return
	}
	if req.Number == "" {
		badRequest(w, "missing fields")
		return
	}
	settings, err := h.Store.UpdateWhatsAppAdmin(r.Context(), req.Number)
	if err != nil {
		h.writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, settings)
}
