package shop

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bahtiarrahman/your-i-scent/internal/kv"
)

func newTestStore(t *testing.T) (*Store, context.Context) {
	t.Helper()
	s := NewStore(kv.NewMemory())
	ctx := context.Background()
	require.NoError(t, s.Initialize(ctx))
	return s, ctx
}

func TestInitializeIdempotent(t *testing.T) {
	s, ctx := newTestStore(t)

	// mutasi setelah init pertama tidak boleh hilang karena init kedua
	_, err := s.RegisterUser(ctx, "Budi", "budi@example.com", "rahasia")
	require.NoError(t, err)
	products, err := s.GetProducts(ctx)
	require.NoError(t, err)
	products = products[:len(products)-1]
	require.NoError(t, s.SaveProducts(ctx, products))

	require.NoError(t, s.Initialize(ctx))

	after, err := s.GetProducts(ctx)
	require.NoError(t, err)
	assert.Equal(t, products, after)
	users, err := s.getUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestInitializeSeedsDefaults(t *testing.T) {
	s, ctx := newTestStore(t)

	products, err := s.GetProducts(ctx)
	require.NoError(t, err)
	assert.Len(t, products, 10)

	categories, err := s.GetCategories(ctx)
	require.NoError(t, err)
	assert.Equal(t, seedCategories, categories)

	cart, err := s.GetCart(ctx)
	require.NoError(t, err)
	assert.Empty(t, cart)

	settings, err := s.GetPaymentSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, "6281234567890", settings.WhatsappAdmin)
	assert.Len(t, settings.Bank, 2)
	assert.Len(t, settings.Ewallet, 3)
}

func TestGetProductsNormalizesLegacyShape(t *testing.T) {
	s, ctx := newTestStore(t)

	// record lama: harga di array sizes, tanpa notes dan quantity
	raw := json.RawMessage(`[
		{"id":1,"name":"Lama","brand":"X","categoryId":1,"type":"decant",
		 "sizes":[{"size":2,"price":30000},{"size":5,"price":60000}]},
		{"id":2,"name":"Stok Nol","brand":"Y","categoryId":1,"type":"bnib",
		 "price":500000,"quantity":0}
	]`)
	require.NoError(t, s.kv.Set(ctx, slotProducts, raw))

	products, err := s.GetProducts(ctx)
	require.NoError(t, err)
	require.Len(t, products, 2)

	legacy := products[0]
	assert.Equal(t, map[string]int{"2": 30000, "5": 60000}, legacy.Prices)
	assert.Nil(t, legacy.Sizes)
	assert.Equal(t, Notes{}, legacy.Notes)
	assert.Equal(t, 1, legacy.Quantity, "quantity absen di-default jadi 1")

	// quantity 0 eksplisit tetap 0, bukan di-default
	assert.Equal(t, 0, products[1].Quantity)

	// normalisasi tidak ditulis balik ke store
	persisted, found, err := s.kv.Get(ctx, slotProducts)
	require.NoError(t, err)
	require.True(t, found)
	assert.Contains(t, string(persisted), `"sizes"`)
}

func TestRegisterUser(t *testing.T) {
	s, ctx := newTestStore(t)

	user, err := s.RegisterUser(ctx, "Budi", "budi@example.com", "rahasia")
	require.NoError(t, err)
	assert.Equal(t, "Budi", user.Name)
	assert.Empty(t, user.Password, "record hasil register tidak membawa password")
	assert.NotZero(t, user.ID)

	// email ganda ditolak tanpa mengubah koleksi
	_, err = s.RegisterUser(ctx, "Budi Lain", "budi@example.com", "lain")
	assert.ErrorIs(t, err, ErrDuplicateEmail)
	users, err := s.getUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestLoginAdminReservedCredential(t *testing.T) {
	s, ctx := newTestStore(t)

	// koleksi users kosong; kredensial admin tetap harus dikenali
	session, err := s.LoginUser(ctx, "yori", "lemineral")
	require.NoError(t, err)
	assert.Equal(t, RoleAdmin, session.Role)
	assert.Equal(t, "Administrator", session.Name)

	isAdmin, err := s.IsAdmin(ctx)
	require.NoError(t, err)
	assert.True(t, isAdmin)
}

func TestLoginUser(t *testing.T) {
	s, ctx := newTestStore(t)
	_, err := s.RegisterUser(ctx, "Budi", "budi@example.com", "rahasia")
	require.NoError(t, err)

	// login pakai email
	session, err := s.LoginUser(ctx, "budi@example.com", "rahasia")
	require.NoError(t, err)
	assert.Equal(t, RoleUser, session.Role)
	assert.Equal(t, "budi@example.com", session.Email)

	// login pakai nama
	session, err = s.LoginUser(ctx, "Budi", "rahasia")
	require.NoError(t, err)
	assert.Equal(t, "Budi", session.Name)

	// password salah: tidak login, session lama tidak tersentuh
	require.NoError(t, s.LogoutUser(ctx))
	_, err = s.LoginUser(ctx, "budi@example.com", "salah")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	current, err := s.GetCurrentUser(ctx)
	require.NoError(t, err)
	assert.Nil(t, current)
}

func TestSessionLifecycle(t *testing.T) {
	s, ctx := newTestStore(t)

	loggedIn, err := s.IsLoggedIn(ctx)
	require.NoError(t, err)
	assert.False(t, loggedIn)

	_, err = s.RegisterUser(ctx, "Budi", "budi@example.com", "rahasia")
	require.NoError(t, err)
	_, err = s.LoginUser(ctx, "budi@example.com", "rahasia")
	require.NoError(t, err)

	loggedIn, err = s.IsLoggedIn(ctx)
	require.NoError(t, err)
	assert.True(t, loggedIn)
	isAdmin, err := s.IsAdmin(ctx)
	require.NoError(t, err)
	assert.False(t, isAdmin)

	require.NoError(t, s.LogoutUser(ctx))
	current, err := s.GetCurrentUser(ctx)
	require.NoError(t, err)
	assert.Nil(t, current)
}

func TestGetOrdersByUserLegacyEmailShapes(t *testing.T) {
	s, ctx := newTestStore(t)

	// pesanan terekam dalam beberapa bentuk field email historis
	require.NoError(t, s.SaveOrder(ctx, Order{ID: "ORD-1", Customer: Customer{Email: "budi@example.com"}, Status: StatusMenunggu}))
	require.NoError(t, s.SaveOrder(ctx, Order{ID: "ORD-2", CustomerEmail: "budi@example.com", Status: StatusMenunggu}))
	require.NoError(t, s.SaveOrder(ctx, Order{ID: "ORD-3", UserEmail: "budi@example.com", Status: StatusMenunggu}))
	require.NoError(t, s.SaveOrder(ctx, Order{ID: "ORD-4", Email: "budi@example.com", Status: StatusMenunggu}))
	require.NoError(t, s.SaveOrder(ctx, Order{ID: "ORD-5", Customer: Customer{Email: "lain@example.com"}, Status: StatusMenunggu}))

	orders, err := s.GetOrdersByUser(ctx, "budi@example.com")
	require.NoError(t, err)
	require.Len(t, orders, 4)
	// terbaru dulu
	assert.Equal(t, []string{"ORD-4", "ORD-3", "ORD-2", "ORD-1"},
		[]string{orders[0].ID, orders[1].ID, orders[2].ID, orders[3].ID})

	// compare exact & case-sensitive
	orders, err = s.GetOrdersByUser(ctx, "Budi@example.com")
	require.NoError(t, err)
	assert.Empty(t, orders)

	orders, err = s.GetOrdersByUser(ctx, "")
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestUpdateOrderStatusOnlyTouchesStatus(t *testing.T) {
	s, ctx := newTestStore(t)

	size := 2
	original := Order{
		ID:       "ORD-100",
		Customer: Customer{Name: "Budi", Email: "budi@example.com", Phone: "0812", Address: "Jl. Melati 1"},
		Items: []CartItem{
			{ID: 1, ProductID: 1, ProductName: "Dior Sauvage", Type: TypeDecant, Size: &size, Price: 35000, Quantity: 2},
		},
		Total:   70000,
		Payment: PaymentBank,
		Status:  StatusMenunggu,
		Date:    time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC),
	}
	require.NoError(t, s.SaveOrder(ctx, original))

	updated, err := s.UpdateOrderStatus(ctx, "ORD-100", StatusDiproses)
	require.NoError(t, err)
	assert.Equal(t, StatusDiproses, updated.Status)

	want := original
	want.Status = StatusDiproses
	assert.Equal(t, want, updated)
}

func TestUpdateOrderStatusTransitions(t *testing.T) {
	s, ctx := newTestStore(t)
	require.NoError(t, s.SaveOrder(ctx, Order{ID: "ORD-200", Status: StatusMenunggu}))

	// menunggu -> dikirim melompati diproses, ditolak
	_, err := s.UpdateOrderStatus(ctx, "ORD-200", StatusDikirim)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	_, err = s.UpdateOrderStatus(ctx, "ORD-200", StatusDiproses)
	require.NoError(t, err)
	_, err = s.UpdateOrderStatus(ctx, "ORD-200", StatusDikirim)
	require.NoError(t, err)
	_, err = s.UpdateOrderStatus(ctx, "ORD-200", StatusSelesai)
	require.NoError(t, err)

	// selesai terminal
	_, err = s.UpdateOrderStatus(ctx, "ORD-200", StatusDibatalkan)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	_, err = s.UpdateOrderStatus(ctx, "ORD-tidak-ada", StatusDiproses)
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestDeleteOrder(t *testing.T) {
	s, ctx := newTestStore(t)
	require.NoError(t, s.SaveOrder(ctx, Order{ID: "ORD-300", Status: StatusMenunggu}))

	require.NoError(t, s.DeleteOrder(ctx, "ORD-300"))
	orders, err := s.GetOrders(ctx)
	require.NoError(t, err)
	assert.Empty(t, orders)

	// id tidak ada: no-op tanpa error
	require.NoError(t, s.DeleteOrder(ctx, "ORD-300"))
}

func TestPaymentSettingsDefaultWhenAbsent(t *testing.T) {
	s := NewStore(kv.NewMemory())
	ctx := context.Background()

	settings, err := s.GetPaymentSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, defaultPaymentSettings(), settings)
}

func TestBankAccountCRUD(t *testing.T) {
	s, ctx := newTestStore(t)

	settings, err := s.AddBankAccount(ctx, BankAccount{Name: "BNI", AccountNumber: "555", AccountName: "Toko"})
	require.NoError(t, err)
	require.Len(t, settings.Bank, 3)
	added := settings.Bank[2]
	assert.True(t, strings.HasPrefix(added.ID, "bank_"))

	settings, err = s.UpdateBankAccount(ctx, added.ID, BankAccount{Name: "BNI Baru", AccountNumber: "556", AccountName: "Toko"})
	require.NoError(t, err)
	assert.Equal(t, "BNI Baru", settings.Bank[2].Name)
	assert.Equal(t, added.ID, settings.Bank[2].ID, "id tidak berubah saat update")

	_, err = s.UpdateBankAccount(ctx, "bank_tidak_ada", BankAccount{Name: "X"})
	assert.ErrorIs(t, err, ErrEntryNotFound)

	settings, err = s.DeleteBankAccount(ctx, added.ID)
	require.NoError(t, err)
	assert.Len(t, settings.Bank, 2)

	// delete id tidak ada: no-op
	settings, err = s.DeleteBankAccount(ctx, "bank_tidak_ada")
	require.NoError(t, err)
	assert.Len(t, settings.Bank, 2)
}

func TestEwalletAccountCRUD(t *testing.T) {
	s, ctx := newTestStore(t)

	settings, err := s.AddEwalletAccount(ctx, EwalletAccount{Name: "ShopeePay", Number: "0813"})
	require.NoError(t, err)
	require.Len(t, settings.Ewallet, 4)
	added := settings.Ewallet[3]
	assert.True(t, strings.HasPrefix(added.ID, "ewallet_"))

	settings, err = s.UpdateEwalletAccount(ctx, added.ID, EwalletAccount{Name: "ShopeePay", Number: "0899"})
	require.NoError(t, err)
	assert.Equal(t, "0899", settings.Ewallet[3].Number)

	_, err = s.UpdateEwalletAccount(ctx, "ewallet_tidak_ada", EwalletAccount{Name: "X"})
	assert.ErrorIs(t, err, ErrEntryNotFound)

	settings, err = s.DeleteEwalletAccount(ctx, added.ID)
	require.NoError(t, err)
	assert.Len(t, settings.Ewallet, 3)
}

func TestQrisAndWhatsAppUpdates(t *testing.T) {
	s, ctx := newTestStore(t)

	settings, err := s.UpdateQrisSettings(ctx, QrisSettings{Enabled: false, MerchantName: "Toko Baru"})
	require.NoError(t, err)
	assert.False(t, settings.Qris.Enabled)
	assert.Equal(t, "Toko Baru", settings.Qris.MerchantName)

	settings, err = s.UpdateWhatsAppAdmin(ctx, "6289999999999")
	require.NoError(t, err)
	assert.Equal(t, "6289999999999", settings.WhatsappAdmin)

	// mutator lain tidak menimpa perubahan sebelumnya
	assert.False(t, settings.Qris.Enabled)
}
