// Package kv menyediakan slot store key-value untuk seluruh state toko.
// Satu key = satu koleksi (products, orders, cart, dst) berisi JSON utuh.
package kv

import (
	"context"
	"encoding/json"
)

// Store adalah kontrak backend penyimpanan. Semua operasi read-modify-write
// di layer atas bekerja lewat interface ini, jadi backend bisa ditukar
// (memory untuk test, file untuk single-user, redis/postgres untuk shared).
type Store interface {
	// Get mengembalikan isi slot. found=false kalau slot belum pernah ditulis.
	Get(ctx context.Context, key string) (value json.RawMessage, found bool, err error)
	Set(ctx context.Context, key string, value json.RawMessage) error
	Delete(ctx context.Context, key string) error
	Close() error
}
