package shop

import (
	"encoding/json"
	"time"
)

type ProductType string

const (
	TypeDecant   ProductType = "decant"
	TypePreloved ProductType = "preloved"
	TypeBNIB     ProductType = "bnib"
)

type PaymentMethod string

const (
	PaymentBank    PaymentMethod = "bank"
	PaymentEwallet PaymentMethod = "ewallet"
	PaymentCOD     PaymentMethod = "cod"
)

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

type Category struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Notes adalah piramida aroma sebuah parfum.
type Notes struct {
	Top    string `json:"top"`
	Middle string `json:"middle"`
	Base   string `json:"base"`
}

// LegacySize adalah bentuk lama harga decant (array of {size, price}),
// sebelum diganti map prices. Masih bisa muncul di data tersimpan lama.
type LegacySize struct {
	Size  int `json:"size"`
	Price int `json:"price"`
}

// Product memakai satu skema harga per tipe: decant pakai Prices
// (label ukuran ml -> harga), selain itu pakai Price tunggal.
type Product struct {
	ID          int            `json:"id"`
	Name        string         `json:"name"`
	Brand       string         `json:"brand"`
	CategoryID  int            `json:"categoryId"`
	Description string         `json:"description"`
	Image       string         `json:"image"`
	Type        ProductType    `json:"type"`
	Price       int            `json:"price,omitempty"`
	Prices      map[string]int `json:"prices,omitempty"`
	Sizes       []LegacySize   `json:"sizes,omitempty"`
	Notes       Notes          `json:"notes"`
	Quantity    int            `json:"quantity"`
}

// UnmarshalJSON adalah satu-satunya titik normalisasi skema lama:
// quantity yang absen jadi 1 (0 eksplisit tetap 0), notes yang absen jadi
// string kosong lewat zero value. Array sizes lama dibiarkan di field-nya;
// pembacaan harga selalu lewat UnitPrice.
func (p *Product) UnmarshalJSON(b []byte) error {
	type alias Product
	aux := struct {
		*alias
		Quantity *int `json:"quantity"`
	}{alias: (*alias)(p)}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	if aux.Quantity != nil {
		p.Quantity = *aux.Quantity
	} else {
		p.Quantity = 1
	}
	return nil
}

// CartItem meng-snapshot field display dan harga produk saat dimasukkan;
// perubahan harga produk setelahnya tidak mengubah item yang sudah ada.
type CartItem struct {
	ID           int64       `json:"id"`
	ProductID    int         `json:"productId"`
	ProductName  string      `json:"productName"`
	ProductImage string      `json:"productImage"`
	Brand        string      `json:"brand"`
	Type         ProductType `json:"type"`
	Size         *int        `json:"size"`
	Price        int         `json:"price"`
	Quantity     int         `json:"quantity"`
}

type Customer struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// Order bersifat immutable setelah dibuat kecuali Status.
// Field email legacy (customerEmail/userEmail/email) masih dibaca untuk
// pesanan lama yang direkam sebelum bentuk customer dipakai.
type Order struct {
	ID         string        `json:"id"`
	Customer   Customer      `json:"customer"`
	Items      []CartItem    `json:"items"`
	Total      int           `json:"total"`
	Payment    PaymentMethod `json:"payment"`
	Status     Status        `json:"status"`
	Date       time.Time     `json:"date"`
	CheckoutID string        `json:"checkoutId,omitempty"`

	CustomerEmail string `json:"customerEmail,omitempty"`
	UserEmail     string `json:"userEmail,omitempty"`
	Email         string `json:"email,omitempty"`
}

// customerEmail mencari email pemesan di semua bentuk field historis.
func (o Order) customerEmail() string {
	for _, e := range []string{o.Customer.Email, o.CustomerEmail, o.UserEmail, o.Email} {
		if e != "" {
			return e
		}
	}
	return ""
}

type User struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Password  string    `json:"password"`
	CreatedAt time.Time `json:"createdAt"`
}

// Session adalah identitas yang sedang login; nil berarti belum login.
type Session struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

type BankAccount struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	AccountNumber string `json:"accountNumber"`
	AccountName   string `json:"accountName"`
}

type EwalletAccount struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Number string `json:"number"`
}

type QrisSettings struct {
	Enabled      bool   `json:"enabled"`
	MerchantName string `json:"merchantName"`
	Image        string `json:"image"`
}

type PaymentSettings struct {
	Bank          []BankAccount    `json:"bank"`
	Ewallet       []EwalletAccount `json:"ewallet"`
	Qris          QrisSettings     `json:"qris"`
	WhatsappAdmin string           `json:"whatsappAdmin"`
}
