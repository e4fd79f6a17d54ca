package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/bahtiarrahman/your-i-scent/internal/config"
	"github.com/bahtiarrahman/your-i-scent/internal/httpx"
	kafkax "github.com/bahtiarrahman/your-i-scent/internal/kafka"
	"github.com/bahtiarrahman/your-i-scent/internal/kv"
	"github.com/bahtiarrahman/your-i-scent/internal/shop"
)

func openBackend(ctx context.Context, cfg config.Config) (kv.Store, error) {
	switch cfg.Backend {
	case "memory":
		return kv.NewMemory(), nil
	case "file":
		return kv.OpenFileDB(cfg.DataFile)
	case "redis":
		return kv.OpenRedis(cfg.RedisAddr, cfg.RedisPrefix), nil
	case "postgres":
		return kv.OpenPostgres(ctx, cfg.PostgresDSN)
	default:
		return nil, fmt.Errorf("storage backend tidak dikenal: %s", cfg.Backend)
	}
}

func main() {
	_ = godotenv.Load()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		With().Timestamp().Logger()

	cfg := config.Load()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	backend, err := openBackend(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("buka storage backend")
	}
	defer backend.Close()

	store := shop.NewStore(backend)
	if err := store.Initialize(ctx); err != nil {
		log.Fatal().Err(err).Msg("seed data awal")
	}

	// Kafka producer opsional: tanpa broker, event pesanan dimatikan.
	var events shop.Publisher
	var prod *kafkax.Producer
	if cfg.EventsOn && len(cfg.KafkaBrokers) > 0 {
		prod = kafkax.NewProducer(cfg.KafkaBrokers, 1024)
		prod.Start(ctx)
		events = prod
		log.Info().Strs("brokers", cfg.KafkaBrokers).Msg("order events aktif")
	}

	cart := shop.NewCartService(store, events, cfg.ServiceName)
	router := httpx.NewRouter()
	h := &httpx.Handler{
		Store:   store,
		Cart:    cart,
		Events:  events,
		Service: cfg.ServiceName,
		Log:     log,
	}
	h.Register(router)

	srv := &http.Server{Addr: cfg.HTTPAddr, Handler: router}

	go func() {
		log.Info().Str("addr", cfg.HTTPAddr).Str("backend", cfg.Backend).Msg("HTTP listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("listen")
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
	log.Info().Msg("shutting down...")

	ctx2, cancel2 := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel2()
	_ = srv.Shutdown(ctx2)
	if prod != nil {
		prod.Close() // tutup inbox -> flush & close writer
		prod.WaitClosed()
	}
}
