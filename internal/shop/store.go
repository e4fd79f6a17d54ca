package shop

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/bahtiarrahman/your-i-scent/internal/kv"
)

// Nama slot di backing store. Jangan diubah: data lama dibaca lewat
// key yang sama supaya normalisasi skema tetap jalan.
const (
	slotProducts        = "perfume_products"
	slotCategories      = "perfume_categories"
	slotOrders          = "perfume_orders"
	slotCart            = "perfume_cart"
	slotUsers           = "perfume_users"
	slotCurrentUser     = "perfume_current_user"
	slotPaymentSettings = "perfume_payment_settings"
)

// Kredensial admin tetap, di luar koleksi users. Dipakai apa adanya
// demi kompatibilitas workflow admin lama.
const (
	adminIdentifier = "yori"
	adminPassword   = "lemineral"
	adminEmail      = "admin@youriscent.com"
)

// Store adalah sumber kebenaran semua entitas toko di atas satu kv.Store.
type Store struct {
	kv  kv.Store
	now func() time.Time
}

func NewStore(backend kv.Store) *Store {
	return &Store{kv: backend, now: time.Now}
}

func (s *Store) read(ctx context.Context, key string, out any) (bool, error) {
	raw, found, err := s.kv.Get(ctx, key)
	if err != nil {
		return false, fmt.Errorf("baca slot %s: %w", key, err)
	}
	if !found {
		return false, nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return false, fmt.Errorf("decode slot %s: %w", key, err)
	}
	return true, nil
}

func (s *Store) write(ctx context.Context, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode slot %s: %w", key, err)
	}
	if err := s.kv.Set(ctx, key, raw); err != nil {
		return fmt.Errorf("tulis slot %s: %w", key, err)
	}
	return nil
}

// Initialize menulis seed ke setiap slot yang belum ada. Idempotent,
// aman dipanggil di tiap start.
func (s *Store) Initialize(ctx context.Context) error {
	defaults := []struct {
		key   string
		value any
	}{
		{slotCategories, seedCategories},
		{slotProducts, seedProducts},
		{slotOrders, []Order{}},
		{slotCart, []CartItem{}},
		{slotUsers, []User{}},
		{slotCurrentUser, (*Session)(nil)},
		{slotPaymentSettings, defaultPaymentSettings()},
	}
	for _, d := range defaults {
		_, found, err := s.kv.Get(ctx, d.key)
		if err != nil {
			return fmt.Errorf("baca slot %s: %w", d.key, err)
		}
		if found {
			continue
		}
		if err := s.write(ctx, d.key, d.value); err != nil {
			return err
		}
	}
	return nil
}

// ---- Products ----

// GetProducts mengembalikan produk dalam bentuk kanonik: quantity/notes
// yang absen sudah di-default saat decode, Prices dilengkapi dari array
// sizes lama. Hasil normalisasi tidak ditulis balik.
func (s *Store) GetProducts(ctx context.Context) ([]Product, error) {
	var products []Product
	if _, err := s.read(ctx, slotProducts, &products); err != nil {
		return nil, err
	}
	for i := range products {
		products[i] = normalizeProduct(products[i])
	}
	return products, nil
}

func normalizeProduct(p Product) Product {
	if len(p.Sizes) > 0 {
		if p.Prices == nil {
			p.Prices = make(map[string]int, len(p.Sizes))
		}
		for _, sz := range p.Sizes {
			label := fmt.Sprintf("%d", sz.Size)
			if _, ok := p.Prices[label]; !ok {
				p.Prices[label] = sz.Price
			}
		}
		p.Sizes = nil
	}
	return p
}

// SaveProducts menimpa seluruh koleksi. Keunikan id tanggung jawab caller.
func (s *Store) SaveProducts(ctx context.Context, products []Product) error {
	return s.write(ctx, slotProducts, products)
}

func (s *Store) GetCategories(ctx context.Context) ([]Category, error) {
	var categories []Category
	if _, err := s.read(ctx, slotCategories, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// ---- Orders ----

func (s *Store) GetOrders(ctx context.Context) ([]Order, error) {
	var orders []Order
	if _, err := s.read(ctx, slotOrders, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (s *Store) SaveOrder(ctx context.Context, order Order) error {
	orders, err := s.GetOrders(ctx)
	if err != nil {
		return err
	}
	orders = append(orders, order)
	return s.write(ctx, slotOrders, orders)
}

// GetOrdersByUser mengembalikan pesanan milik satu email, terbaru dulu.
// Pencocokan exact dan case-sensitive: normalisasi bisa diam-diam
// menggabungkan record historis yang berbeda.
func (s *Store) GetOrdersByUser(ctx context.Context, email string) ([]Order, error) {
	if email == "" {
		return nil, nil
	}
	orders, err := s.GetOrders(ctx)
	if err != nil {
		return nil, err
	}
	var out []Order
	for i := len(orders) - 1; i >= 0; i-- {
		if orders[i].customerEmail() == email {
			out = append(out, orders[i])
		}
	}
	return out, nil
}

// UpdateOrderStatus hanya menyentuh field status. Transisi di luar tabel
// validNext ditolak dengan ErrInvalidTransition.
func (s *Store) UpdateOrderStatus(ctx context.Context, orderID string, newStatus Status) (Order, error) {
	orders, err := s.GetOrders(ctx)
	if err != nil {
		return Order{}, err
	}
	for i := range orders {
		if orders[i].ID != orderID {
			continue
		}
		if !CanTransition(orders[i].Status, newStatus) {
			return Order{}, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, orders[i].Status, newStatus)
		}
		orders[i].Status = newStatus
		if err := s.write(ctx, slotOrders, orders); err != nil {
			return Order{}, err
		}
		return orders[i], nil
	}
	return Order{}, ErrOrderNotFound
}

// DeleteOrder menghapus pesanan; no-op kalau id tidak ada.
func (s *Store) DeleteOrder(ctx context.Context, orderID string) error {
	orders, err := s.GetOrders(ctx)
	if err != nil {
		return err
	}
	filtered := orders[:0]
	for _, o := range orders {
		if o.ID != orderID {
			filtered = append(filtered, o)
		}
	}
	return s.write(ctx, slotOrders, filtered)
}

// ---- Cart ----

func (s *Store) GetCart(ctx context.Context) ([]CartItem, error) {
	var cart []CartItem
	if _, err := s.read(ctx, slotCart, &cart); err != nil {
		return nil, err
	}
	return cart, nil
}

func (s *Store) SaveCart(ctx context.Context, cart []CartItem) error {
	if cart == nil {
		cart = []CartItem{}
	}
	return s.write(ctx, slotCart, cart)
}

func (s *Store) ClearCart(ctx context.Context) error {
	return s.write(ctx, slotCart, []CartItem{})
}

// ---- Users & session ----

func (s *Store) getUsers(ctx context.Context) ([]User, error) {
	var users []User
	if _, err := s.read(ctx, slotUsers, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// RegisterUser menolak email yang sudah terpakai (compare exact).
// Record yang dikembalikan tidak membawa password.
func (s *Store) RegisterUser(ctx context.Context, name, email, password string) (User, error) {
	users, err := s.getUsers(ctx)
	if err != nil {
		return User{}, err
	}
	for _, u := range users {
		if u.Email == email {
			return User{}, ErrDuplicateEmail
		}
	}
	now := s.now()
	user := User{
		ID:        now.UnixMilli(),
		Name:      name,
		Email:     email,
		Password:  password, // plaintext, sengaja: bukan sistem auth sungguhan
		CreatedAt: now,
	}
	users = append(users, user)
	if err := s.write(ctx, slotUsers, users); err != nil {
		return User{}, err
	}
	user.Password = ""
	return user, nil
}

// LoginUser mengecek kredensial admin tetap dulu, lalu koleksi users
// (identifier boleh email atau nama). Sukses = session tersimpan.
func (s *Store) LoginUser(ctx context.Context, identifier, password string) (Session, error) {
	if identifier == adminIdentifier && password == adminPassword {
		session := Session{ID: 0, Name: "Administrator", Email: adminEmail, Role: RoleAdmin}
		if err := s.setSession(ctx, &session); err != nil {
			return Session{}, err
		}
		return session, nil
	}

	users, err := s.getUsers(ctx)
	if err != nil {
		return Session{}, err
	}
	for _, u := range users {
		if (u.Email == identifier || u.Name == identifier) && u.Password == password {
			session := Session{ID: u.ID, Name: u.Name, Email: u.Email, Role: RoleUser}
			if err := s.setSession(ctx, &session); err != nil {
				return Session{}, err
			}
			return session, nil
		}
	}
	return Session{}, ErrInvalidCredentials
}

func (s *Store) setSession(ctx context.Context, session *Session) error {
	return s.write(ctx, slotCurrentUser, session)
}

func (s *Store) LogoutUser(ctx context.Context) error {
	return s.setSession(ctx, nil)
}

func (s *Store) GetCurrentUser(ctx context.Context) (*Session, error) {
	var session *Session
	if _, err := s.read(ctx, slotCurrentUser, &session); err != nil {
		return nil, err
	}
	return session, nil
}

func (s *Store) IsLoggedIn(ctx context.Context) (bool, error) {
	session, err := s.GetCurrentUser(ctx)
	return session != nil, err
}

func (s *Store) IsAdmin(ctx context.Context) (bool, error) {
	session, err := s.GetCurrentUser(ctx)
	if err != nil {
		return false, err
	}
	return session != nil && session.Role == RoleAdmin, nil
}

// ---- Payment settings ----

func (s *Store) GetPaymentSettings(ctx context.Context) (PaymentSettings, error) {
	var settings PaymentSettings
	found, err := s.read(ctx, slotPaymentSettings, &settings)
	if err != nil {
		return PaymentSettings{}, err
	}
	if !found {
		return defaultPaymentSettings(), nil
	}
	return settings, nil
}

func (s *Store) SavePaymentSettings(ctx context.Context, settings PaymentSettings) error {
	return s.write(ctx, slotPaymentSettings, settings)
}

// mutateSettings menjalankan read-modify-write atas singleton settings.
// Aman tanpa lock di model eksekusi single-process.
func (s *Store) mutateSettings(ctx context.Context, fn func(*PaymentSettings) error) (PaymentSettings, error) {
	settings, err := s.GetPaymentSettings(ctx)
	if err != nil {
		return PaymentSettings{}, err
	}
	if err := fn(&settings); err != nil {
		return PaymentSettings{}, err
	}
	if err := s.SavePaymentSettings(ctx, settings); err != nil {
		return PaymentSettings{}, err
	}
	return settings, nil
}

func (s *Store) AddBankAccount(ctx context.Context, acc BankAccount) (PaymentSettings, error) {
	return s.mutateSettings(ctx, func(ps *PaymentSettings) error {
		if acc.ID == "" {
			acc.ID = fmt.Sprintf("bank_%d", s.now().UnixMilli())
		}
		ps.Bank = append(ps.Bank, acc)
		return nil
	})
}

func (s *Store) UpdateBankAccount(ctx context.Context, id string, acc BankAccount) (PaymentSettings, error) {
	return s.mutateSettings(ctx, func(ps *PaymentSettings) error {
		for i := range ps.Bank {
			if ps.Bank[i].ID == id {
				acc.ID = id
				ps.Bank[i] = acc
				return nil
			}
		}
		return ErrEntryNotFound
	})
}

func (s *Store) DeleteBankAccount(ctx context.Context, id string) (PaymentSettings, error) {
	return s.mutateSettings(ctx, func(ps *PaymentSettings) error {
		filtered := ps.Bank[:0]
		for _, b := range ps.Bank {
			if b.ID != id {
				filtered = append(filtered, b)
			}
		}
		ps.Bank = filtered
		return nil
	})
}

func (s *Store) AddEwalletAccount(ctx context.Context, acc EwalletAccount) (PaymentSettings, error) {
	return s.mutateSettings(ctx, func(ps *PaymentSettings) error {
		if acc.ID == "" {
			acc.ID = fmt.Sprintf("ewallet_%d", s.now().UnixMilli())
		}
		ps.Ewallet = append(ps.Ewallet, acc)
		return nil
	})
}

func (s *Store) UpdateEwalletAccount(ctx context.Context, id string, acc EwalletAccount) (PaymentSettings, error) {
	return s.mutateSettings(ctx, func(ps *PaymentSettings) error {
		for i := range ps.Ewallet {
			if ps.Ewallet[i].ID == id {
				acc.ID = id
				ps.Ewallet[i] = acc
				return nil
			}
		}
		return ErrEntryNotFound
	})
}

func (s *Store) DeleteEwalletAccount(ctx context.Context, id string) (PaymentSettings, error) {
	return s.mutateSettings(ctx, func(ps *PaymentSettings) error {
		filtered := ps.Ewallet[:0]
		for _, e := range ps.Ewallet {
			if e.ID != id {
				filtered = append(filtered, e)
			}
		}
		ps.Ewallet = filtered
		return nil
	})
}

func (s *Store) UpdateQrisSettings(ctx context.Context, qris QrisSettings) (PaymentSettings, error) {
	return s.mutateSettings(ctx, func(ps *PaymentSettings) error {
		ps.Qris = qris
		return nil
	})
}

func (s *Store) UpdateWhatsAppAdmin(ctx context.Context, number string) (PaymentSettings, error) {
	return s.mutateSettings(ctx, func(ps *PaymentSettings) error {
		ps.WhatsappAdmin = number
		return nil
	})
}
