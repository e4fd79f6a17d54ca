package shop

import (
	"context"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// Publisher menerima event pesanan. Boleh nil (event dimatikan).
type Publisher interface {
	Publish(topic string, key, value []byte)
}

// CartService memegang aturan merge item, resolusi harga per ukuran,
// dan materialisasi keranjang jadi pesanan saat checkout.
type CartService struct {
	Store   *Store
	Events  Publisher
	Service string

	now func() time.Time
}

func NewCartService(store *Store, events Publisher, service string) *CartService {
	return &CartService{Store: store, Events: events, Service: service, now: time.Now}
}

// UnitPrice me-resolve harga satuan dengan prioritas: harga eksplisit,
// lalu prices[size] (termasuk array sizes bentuk lama), lalu price tunggal.
// Tidak ketemu = 0; degrade diam-diam, mengikuti perilaku lama.
func UnitPrice(p Product, size *int, explicit *int) int {
	if explicit != nil {
		return *explicit
	}
	if size != nil {
		label := strconv.Itoa(*size)
		if price, ok := p.Prices[label]; ok {
			return price
		}
		for _, sz := range p.Sizes {
			if sz.Size == *size {
				return sz.Price
			}
		}
		return 0
	}
	return p.Price
}

func sameSize(a, b *int) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

// newLineID memakai timestamp millis seperti data lama, tapi dijaga tetap
// unik terhadap item yang sudah ada di keranjang.
func (c *CartService) newLineID(cart []CartItem) int64 {
	id := c.now().UnixMilli()
	for _, item := range cart {
		if item.ID >= id {
			id = item.ID + 1
		}
	}
	return id
}

// AddToCart menambahkan produk ke keranjang. Item dengan (productId, size)
// sama di-merge dengan menjumlah quantity; size nil hanya mencocokkan
// productId. Field display dan harga di-snapshot saat penambahan.
func (c *CartService) AddToCart(ctx context.Context, product Product, size *int, quantity int, explicitPrice *int) ([]CartItem, error) {
	if quantity < 1 {
		quantity = 1
	}
	cart, err := c.Store.GetCart(ctx)
	if err != nil {
		return nil, err
	}

	for i := range cart {
		if cart[i].ProductID != product.ID {
			continue
		}
		if size != nil && !sameSize(cart[i].Size, size) {
			continue
		}
		cart[i].Quantity += quantity
		if err := c.Store.SaveCart(ctx, cart); err != nil {
			return nil, err
		}
		return cart, nil
	}

	cart = append(cart, CartItem{
		ID:           c.newLineID(cart),
		ProductID:    product.ID,
		ProductName:  product.Name,
		ProductImage: product.Image,
		Brand:        product.Brand,
		Type:         product.Type,
		Size:         size,
		Price:        UnitPrice(product, size, explicitPrice),
		Quantity:     quantity,
	})
	if err := c.Store.SaveCart(ctx, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// UpdateQuantity mengganti jumlah satu item; <= 0 berarti hapus.
func (c *CartService) UpdateQuantity(ctx context.Context, lineID int64, quantity int) ([]CartItem, error) {
	if quantity <= 0 {
		return c.RemoveFromCart(ctx, lineID)
	}
	cart, err := c.Store.GetCart(ctx)
	if err != nil {
		return nil, err
	}
	for i := range cart {
		if cart[i].ID == lineID {
			cart[i].Quantity = quantity
			break
		}
	}
	if err := c.Store.SaveCart(ctx, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// RemoveFromCart menghapus satu item; no-op kalau id tidak ada.
func (c *CartService) RemoveFromCart(ctx context.Context, lineID int64) ([]CartItem, error) {
	cart, err := c.Store.GetCart(ctx)
	if err != nil {
		return nil, err
	}
	filtered := cart[:0]
	for _, item := range cart {
		if item.ID != lineID {
			filtered = append(filtered, item)
		}
	}
	if err := c.Store.SaveCart(ctx, filtered); err != nil {
		return nil, err
	}
	return filtered, nil
}

func (c *CartService) ClearCart(ctx context.Context) error {
	return c.Store.ClearCart(ctx)
}

func sumTotal(cart []CartItem) int {
	total := 0
	for _, item := range cart {
		total += item.Price * item.Quantity
	}
	return total
}

func sumCount(cart []CartItem) int {
	count := 0
	for _, item := range cart {
		count += item.Quantity
	}
	return count
}

// CartTotal menjumlah price*quantity semua item.
func (c *CartService) CartTotal(ctx context.Context) (int, error) {
	cart, err := c.Store.GetCart(ctx)
	if err != nil {
		return 0, err
	}
	return sumTotal(cart), nil
}

// CartCount menjumlah quantity, bukan jumlah baris.
func (c *CartService) CartCount(ctx context.Context) (int, error) {
	cart, err := c.Store.GetCart(ctx)
	if err != nil {
		return 0, err
	}
	return sumCount(cart), nil
}

// Checkout mematerialkan keranjang jadi satu Order lalu mengosongkan
// keranjang. checkoutID membuat operasi replay-safe: retry dengan id yang
// sama tidak membuat pesanan ganda, hanya melanjutkan pengosongan cart.
func (c *CartService) Checkout(ctx context.Context, customer Customer, payment PaymentMethod, checkoutID string) (Order, error) {
	if checkoutID == "" {
		checkoutID = uuid.NewString()
	}

	// retry setelah gagal di tengah: pesanan mungkin sudah terekam
	orders, err := c.Store.GetOrders(ctx)
	if err != nil {
		return Order{}, err
	}
	for _, o := range orders {
		if o.CheckoutID == checkoutID {
			if err := c.Store.ClearCart(ctx); err != nil {
				return Order{}, err
			}
			return o, nil
		}
	}

	cart, err := c.Store.GetCart(ctx)
	if err != nil {
		return Order{}, err
	}
	if len(cart) == 0 {
		return Order{}, ErrEmptyCart
	}

	now := c.now()
	order := Order{
		ID:         "ORD-" + strconv.FormatInt(now.UnixMilli(), 10),
		Customer:   customer,
		Items:      cart,
		Total:      sumTotal(cart),
		Payment:    payment,
		Status:     StatusMenunggu,
		Date:       now,
		CheckoutID: checkoutID,
	}
	if err := c.Store.SaveOrder(ctx, order); err != nil {
		return Order{}, err
	}
	if err := c.Store.ClearCart(ctx); err != nil {
		return Order{}, err
	}

	c.publishCreated(order)
	return order, nil
}

func (c *CartService) publishCreated(order Order) {
	if c.Events == nil {
		return
	}
	ev := NewEnvelope(EventOrderCreated, c.Service, order.ID, OrderCreatedPayload{
		OrderID:       order.ID,
		CheckoutID:    order.CheckoutID,
		CustomerEmail: order.Customer.Email,
		ItemCount:     len(order.Items),
		Total:         order.Total,
	})
	c.Events.Publish(TopicOrderCreated, PartitionKey(order.ID), MustMarshal(ev))
}
