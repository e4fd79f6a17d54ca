package httpx

import (
	"net/http"

	"github.com/bahtiarrahman/your-i-scent/internal/shop"
)

// requireAdmin menolak request tanpa session admin. Session dibaca dari
// store, bukan dari header: model auth-nya single-profile seperti aslinya.
func (h *Handler) requireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, err := h.Store.GetCurrentUser(r.Context())
		if err != nil {
			h.writeErr(w, err)
			return
		}
		if session == nil {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "belum login"})
			return
		}
		if session.Role != shop.RoleAdmin {
			writeJSON(w, http.StatusForbidden, map[string]string{"error": "khusus admin"})
			return
		}
		next.ServeHTTP(w, r)
	})
}

// requireSession untuk operasi user biasa (riwayat pesanan, checkout).
func (h *Handler) requireSession(w http.ResponseWriter, r *http.Request) (ok bool) {
	session, err := h.Store.GetCurrentUser(r.Context())
	if err != nil {
		h.writeErr(w, err)
		return false
	}
	if session == nil {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "belum login"})
		return false
	}
	return true
}
