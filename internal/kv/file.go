package kv

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
)

// FileDB menyimpan semua slot dalam satu file JSON, padanan localStorage
// untuk pemakaian single-process. Setiap write langsung di-flush + fsync.
type FileDB struct {
	mu   sync.RWMutex
	file *os.File
	data map[string]json.RawMessage
}

func OpenFileDB(path string) (*FileDB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0o600)
	if err != nil {
		return nil, err
	}
	db := &FileDB{file: f}
	if err := db.load(); err != nil {
		_ = f.Close()
		return nil, err
	}
	return db, nil
}

func (db *FileDB) load() error {
	info, err := db.file.Stat()
	if err != nil {
		return err
	}
	if info.Size() == 0 {
		db.data = map[string]json.RawMessage{}
		return db.flushLocked()
	}
	dec := json.NewDecoder(db.file)
	var data map[string]json.RawMessage
	if err := dec.Decode(&data); err != nil {
		return fmt.Errorf("decode %s: %w", db.file.Name(), err)
	}
	db.data = data
	return nil
}

func (db *FileDB) flushLocked() error {
	if _, err := db.file.Seek(0, io.SeekStart); err != nil {
		return err
	}
	enc := json.NewEncoder(db.file)
	enc.SetIndent("", "  ")
	if err := enc.Encode(db.data); err != nil {
		return err
	}
	// truncate kalau isi baru lebih pendek dari sebelumnya
	pos, _ := db.file.Seek(0, io.SeekCurrent)
	if err := db.file.Truncate(pos); err != nil {
		return err
	}
	return db.file.Sync()
}

func (db *FileDB) Get(_ context.Context, key string) (json.RawMessage, bool, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()
	v, ok := db.data[key]
	if !ok {
		return nil, false, nil
	}
	out := make(json.RawMessage, len(v))
	copy(out, v)
	return out, true, nil
}

func (db *FileDB) Set(_ context.Context, key string, value json.RawMessage) error {
	db.mu.Lock()
	defer db.mu.Unlock()
	v := make(json.RawMessage, len(value))
	copy(v, value)
	db.data[key] = v
	return db.flushLocked()
}

func (db *FileDB) Delete(_ context.Context, key string) error {
	db.mu.Lock()
	defer db.mu.Unlock()
	delete(db.data, key)
	return db.flushLocked()
}

func (db *FileDB) Close() error { return db.file.Close() }
