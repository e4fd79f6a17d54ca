package httpx

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/bahtiarrahman/your-i-scent/internal/shop"
)

type checkoutReq struct {
	Name       string             `json:"name"`
	Email      string             `json:"email"`
	Phone      string             `json:"phone"`
	Address    string             `json:"address"`
	Payment    shop.PaymentMethod `json:"payment"`
	CheckoutID string             `json:"checkoutId"`
}

type checkoutResp struct {
	Order       shop.Order `json:"order"`
	WhatsappURL string     `json:"whatsappUrl"`
}

func (h *Handler) checkout(w http.ResponseWriter, r *http.Request) {
	if !h.requireSession(w, r) {
		return
	}
	var req checkoutReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid json")
		return
	}
	if req.Name == "" || req.Email == "" || req.Phone == "" || req.Address == "" {
		badRequest(w, "missing fields")
		return
	}
	switch req.Payment {
	case shop.PaymentBank, shop.PaymentEwallet, shop.PaymentCOD:
	default:
		badRequest(w, "metode pembayaran tidak dikenal")
		return
	}

	customer := shop.Customer{Name: req.Name, Email: req.Email, Phone: req.Phone, Address: req.Address}
	order, err := h.Cart.Checkout(r.Context(), customer, req.Payment, req.CheckoutID)
	if err != nil {
		h.writeErr(w, err)
		return
	}

	settings, err := h.Store.GetPaymentSettings(r.Context())
	if err != nil {
		h.writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, checkoutResp{
		Order:       order,
		WhatsappURL: shop.WhatsAppOrderURL(settings.WhatsappAdmin, order),
	})
}

func (h *Handler) myOrders(w http.ResponseWriter, r *http.Request) {
	session, err := h.Store.GetCurrentUser(r.Context())
	if err != nil {
		h.writeErr(w, err)
		return
	}
	if session == nil {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "belum login"})
		return
	}
	orders, err := h.Store.GetOrdersByUser(r.Context(), session.Email)
	if err != nil {
		h.writeErr(w, err)
		return
	}
	if orders == nil {
		orders = []shop.Order{}
	}
	writeJSON(w, http.StatusOK, orders)
}

func (h *Handler) listOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.Store.GetOrders(r.Context())
	if err != nil {
		h.writeErr(w, err)
		return
	}
	if orders == nil {
		orders = []shop.Order{}
	}
	writeJSON(w, http.StatusOK, orders)
}

type updateStatusReq struct {
	Status shop.Status `json:"status"`
}

func (h *Handler) updateOrderStatus(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "id")
	var req updateStatusReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid json")
		return
	}
	if !shop.ValidStatus(req.Status) {
		badRequest(w, "status tidak dikenal")
		return
	}

	// status lama diperlukan untuk event perubahan
	var from shop.Status
	orders, err := h.Store.GetOrders(r.Context())
	if err != nil {
		h.writeErr(w, err)
		return
	}
	for _, o := range orders {
		if o.ID == orderID {
			from = o.Status
			break
		}
	}

	order, err := h.Store.UpdateOrderStatus(r.Context(), orderID, req.Status)
	if err != nil {
		h.writeErr(w, err)
		return
	}

	if h.Events != nil {
		ev := shop.NewEnvelope(shop.EventOrderStatusChanged, h.Service, order.ID, shop.OrderStatusChangedPayload{
			OrderID: order.ID,
			From:    from,
			To:      order.Status,
		})
		h.Events.Publish(shop.TopicOrderStatus, shop.PartitionKey(order.ID), shop.MustMarshal(ev))
	}
	writeJSON(w, http.StatusOK, order)
}

func (h *Handler) deleteOrder(w http.ResponseWriter, r *http.Request) {
	if err := h.Store.DeleteOrder(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "pesanan dihapus"})
}
