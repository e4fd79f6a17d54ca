package httpx

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/bahtiarrahman/your-i-scent/internal/shop"
)

// Handler meng-expose store + cart service sebagai JSON API; ini permukaan
// yang dipakai halaman storefront dan back-office admin.
type Handler struct {
	Store   *shop.Store
	Cart    *shop.CartService
	Events  shop.Publisher
	Service string
	Log     zerolog.Logger
}

func (h *Handler) Register(r *chi.Mux) {
	r.Get("/products", h.listProducts)
	r.Get("/products/{id}", h.getProduct)
	r.Get("/categories", h.listCategories)
	r.Get("/payment-settings", h.getPaymentSettings)

	r.Post("/auth/register", h.register)
	r.Post("/auth/login", h.login)
	r.Post("/auth/logout", h.logout)
	r.Get("/auth/me", h.me)

	r.Get("/cart", h.getCart)
	r.Post("/cart/items", h.addCartItem)
	r.Put("/cart/items/{id}", h.updateCartItem)
	r.Delete("/cart/items/{id}", h.removeCartItem)
	r.Delete("/cart", h.clearCart)

	r.Post("/checkout", h.checkout)
	r.Get("/orders/me", h.myOrders)

	// back-office, butuh session admin
	r.Group(func(r chi.Router) {
		r.Use(h.requireAdmin)
		r.Post("/products", h.createProduct)
		r.Put("/products/{id}", h.updateProduct)
		r.Delete("/products/{id}", h.deleteProduct)

		r.Get("/orders", h.listOrders)
		r.Put("/orders/{id}/status", h.updateOrderStatus)
		r.Delete("/orders/{id}", h.deleteOrder)

		r.Put("/payment-settings", h.savePaymentSettings)
		r.Post("/payment-settings/bank", h.addBank)
		r.Put("/payment-settings/bank/{id}", h.updateBank)
		r.Delete("/payment-settings/bank/{id}", h.deleteBank)
		r.Post("/payment-settings/ewallet", h.addEwallet)
		r.Put("/payment-settings/ewallet/{id}", h.updateEwallet)
		r.Delete("/payment-settings/ewallet/{id}", h.deleteEwallet)
		r.Put("/payment-settings/qris", h.updateQris)
		r.Put("/payment-settings/whatsapp", h.updateWhatsApp)
	})
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func errStatus(err error) int {
	switch {
	case errors.Is(err, shop.ErrDuplicateEmail):
		return http.StatusConflict
	case errors.Is(err, shop.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, shop.ErrOrderNotFound), errors.Is(err, shop.ErrEntryNotFound):
		return http.StatusNotFound
	case errors.Is(err, shop.ErrInvalidTransition):
		return http.StatusConflict
	case errors.Is(err, shop.ErrEmptyCart):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func (h *Handler) writeErr(w http.ResponseWriter, err error) {
	code := errStatus(err)
	if code == http.StatusInternalServerError {
		h.Log.Error().Err(err).Msg("operasi store gagal")
	}
	writeJSON(w, code, map[string]string{"error": err.Error()})
}

func badRequest(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusBadRequest, map[string]string{"error": msg})
}
