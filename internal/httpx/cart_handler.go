package httpx

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/bahtiarrahman/your-i-scent/internal/shop"
)

type cartResp struct {
	Items []shop.CartItem `json:"items"`
	Total int             `json:"total"`
	Count int             `json:"count"`
}

func newCartResp(items []shop.CartItem) cartResp {
	resp := cartResp{Items: items}
	if resp.Items == nil {
		resp.Items = []shop.CartItem{}
	}
	for _, item := range items {
		resp.Total += item.Price * item.Quantity
		resp.Count += item.Quantity
	}
	return resp
}

func (h *Handler) getCart(w http.ResponseWriter, r *http.Request) {
	cart, err := h.Store.GetCart(r.Context())
	if err != nil {
		h.writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, newCartResp(cart))
}

type addCartItemReq struct {
	ProductID int  `json:"productId"`
	Size      *int `json:"size"`
	Quantity  int  `json:"quantity"`
	Price     *int `json:"price"`
}

func (h *Handler) addCartItem(w http.ResponseWriter, r *http.Request) {
	var req addCartItemReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid json")
		return
	}

	products, err := h.Store.GetProducts(r.Context())
	if err != nil {
		h.writeErr(w, err)
		return
	}
	var product *shop.Product
	for i := range products {
		if products[i].ID == req.ProductID {
			product = &products[i]
			break
		}
	}
	if product == nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "produk tidak ditemukan"})
		return
	}

	cart, err := h.Cart.AddToCart(r.Context(), *product, req.Size, req.Quantity, req.Price)
	if err != nil {
		h.writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, newCartResp(cart))
}

type updateQuantityReq struct {
	Quantity int `json:"quantity"`
}

func (h *Handler) updateCartItem(w http.ResponseWriter, r *http.Request) {
	lineID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		badRequest(w, "invalid id")
		return
	}
	var req updateQuantityReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid json")
		return
	}
	cart, err := h.Cart.UpdateQuantity(r.Context(), lineID, req.Quantity)
	if err != nil {
		h.writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, newCartResp(cart))
}

func (h *Handler) removeCartItem(w http.ResponseWriter, r *http.Request) {
	lineID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		badRequest(w, "invalid id")
		return
	}
	cart, err := h.Cart.RemoveFromCart(r.Context(), lineID)
	if err != nil {
		h.writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, newCartResp(cart))
}

func (h *Handler) clearCart(w http.ResponseWriter, r *http.Request) {
	if err := h.Cart.ClearCart(r.Context()); err != nil {
		h.writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, newCartResp(nil))
}
