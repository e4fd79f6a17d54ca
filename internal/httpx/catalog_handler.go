package httpx

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/bahtiarrahman/your-i-scent/internal/shop"
)

func (h *Handler) listProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.Store.GetProducts(r.Context())
	if err != nil {
		h.writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, products)
}

func (h *Handler) getProduct(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		badRequest(w, "invalid id")
		return
	}
	products, err := h.Store.GetProducts(r.Context())
	if err != nil {
		h.writeErr(w, err)
		return
	}
	for _, p := range products {
		if p.ID == id {
			writeJSON(w, http.StatusOK, p)
			return
		}
	}
	writeJSON(w, http.StatusNotFound, map[string]string{"error": "produk tidak ditemukan"})
}

func (h *Handler) listCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.Store.GetCategories(r.Context())
	if err != nil {
		h.writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, categories)
}

// validasi seperti form admin: nama wajib, harga harus positif sesuai
// skema tipe produk.
func validateProduct(p shop.Product) string {
	if p.Name == "" || p.Brand == "" {
		return "nama dan brand wajib diisi"
	}
	switch p.Type {
	case shop.TypeDecant:
		if len(p.Prices) == 0 {
			return "produk decant butuh minimal satu harga ukuran"
		}
		for label, price := range p.Prices {
			if price <= 0 {
				return "harga ukuran " + label + " harus positif"
			}
		}
	case shop.TypePreloved, shop.TypeBNIB:
		if p.Price <= 0 {
			return "harga harus positif"
		}
	default:
		return "tipe produk tidak dikenal"
	}
	return ""
}

func (h *Handler) createProduct(w http.ResponseWriter, r *http.Request) {
	var p shop.Product
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		badRequest(w, "invalid json")
		return
	}
	if msg := validateProduct(p); msg != "" {
		badRequest(w, msg)
		return
	}

	products, err := h.Store.GetProducts(r.Context())
	if err != nil {
		h.writeErr(w, err)
		return
	}
	// id baru = max(id yang ada) + 1
	maxID := 0
	for _, existing := range products {
		if existing.ID > maxID {
			maxID = existing.ID
		}
	}
	p.ID = maxID + 1
	products = append(products, p)
	if err := h.Store.SaveProducts(r.Context(), products); err != nil {
		h.writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, p)
}

func (h *Handler) updateProduct(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		badRequest(w, "invalid id")
		return
	}
	var p shop.Product
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		badRequest(w, "invalid json")
		return
	}
	if msg := validateProduct(p); msg != "" {
		badRequest(w, msg)
		return
	}

	products, err := h.Store.GetProducts(r.Context())
	if err != nil {
		h.writeErr(w, err)
		return
	}
	for i := range products {
		if products[i].ID == id {
			p.ID = id
			products[i] = p
			if err := h.Store.SaveProducts(r.Context(), products); err != nil {
				h.writeErr(w, err)
				return
			}
			writeJSON(w, http.StatusOK, p)
			return
		}
	}
	writeJSON(w, http.StatusNotFound, map[string]string{"error": "produk tidak ditemukan"})
}

func (h *Handler) deleteProduct(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		badRequest(w, "invalid id")
		return
	}
	products, err := h.Store.GetProducts(r.Context())
	if err != nil {
		h.writeErr(w, err)
		return
	}
	filtered := products[:0]
	for _, p := range products {
		if p.ID != id {
			filtered = append(filtered, p)
		}
	}
	if err := h.Store.SaveProducts(r.Context(), filtered); err != nil {
		h.writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "produk dihapus"})
}
