package shop

import (
	"fmt"
	"net/url"
	"strconv"
)

// FormatRupiah menampilkan nominal bulat dengan pemisah ribuan gaya id-ID:
// 35000 -> "Rp 35.000".
func FormatRupiah(amount int) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	digits := strconv.Itoa(amount)
	var out []byte
	for i, d := range []byte(digits) {
		if i > 0 && (len(digits)-i)%3 == 0 {
			out = append(out, '.')
		}
		out = append(out, d)
	}
	return "Rp " + sign + string(out)
}

func PaymentMethodLabel(m PaymentMethod) string {
	switch m {
	case PaymentBank:
		return "Transfer Bank"
	case PaymentEwallet:
		return "E-Wallet"
	case PaymentCOD:
		return "COD (Bayar di Tempat)"
	default:
		return string(m)
	}
}

// WhatsAppOrderURL membangun deep link konfirmasi pesanan ke admin.
// Template pesan dipertahankan persis; jangan ubah nama field-nya.
func WhatsAppOrderURL(adminNumber string, order Order) string {
	message := fmt.Sprintf(`Halo Admin your.i scent,

Saya sudah melakukan pemesanan.

ID Pesanan: %s
Nama: %s
No HP: %s
Alamat: %s
Metode Pembayaran: %s
Total: %s

Saya akan kirim bukti transfer ya. Terima kasih`,
		order.ID,
		order.Customer.Name,
		order.Customer.Phone,
		order.Customer.Address,
		PaymentMethodLabel(order.Payment),
		FormatRupiah(order.Total),
	)
	return "https://wa.me/" + adminNumber + "?text=" + url.QueryEscape(message)
}
