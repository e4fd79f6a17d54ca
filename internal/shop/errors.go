package shop

import "errors"

var (
	ErrDuplicateEmail     = errors.New("email sudah terdaftar")
	ErrInvalidCredentials = errors.New("email/password salah")
	ErrOrderNotFound      = errors.New("pesanan tidak ditemukan")
	ErrEntryNotFound      = errors.New("entri pembayaran tidak ditemukan")
	ErrInvalidTransition  = errors.New("transisi status tidak valid")
	ErrEmptyCart          = errors.New("keranjang kosong")
)
