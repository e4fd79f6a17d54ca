package kv

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/redis/go-redis/v9"
)

// Redis menaruh tiap slot sebagai string key ber-prefix. Dipakai kalau
// store di-share lebih dari satu instance.
type Redis struct {
	rdb    *redis.Client
	prefix string
}

func OpenRedis(addr, prefix string) *Redis {
	return &Redis{
		rdb:    redis.NewClient(&redis.Options{Addr: addr}),
		prefix: prefix,
	}
}

func (r *Redis) key(k string) string { return r.prefix + k }

func (r *Redis) Get(ctx context.Context, key string) (json.RawMessage, bool, error) {
	v, err := r.rdb.Get(ctx, r.key(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return json.RawMessage(v), true, nil
}

func (r *Redis) Set(ctx context.Context, key string, value json.RawMessage) error {
	return r.rdb.Set(ctx, r.key(key), []byte(value), 0).Err()
}

func (r *Redis) Delete(ctx context.Context, key string) error {
	return r.rdb.Del(ctx, r.key(key)).Err()
}

func (r *Redis) Close() error { return r.rdb.Close() }
