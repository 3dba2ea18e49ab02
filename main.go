package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"net/http/pprof"
	"runtime"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/matst80/slask-storefront/pkg/cart"
	"github.com/matst80/slask-storefront/pkg/catalog"
	"github.com/matst80/slask-storefront/pkg/common"
	"github.com/matst80/slask-storefront/pkg/messaging"
	"github.com/matst80/slask-storefront/pkg/pricing"
	"github.com/matst80/slask-storefront/pkg/promotions"
	"github.com/matst80/slask-storefront/pkg/storefront"
	"github.com/matst80/slask-storefront/pkg/tracking"
)

var enableProfiling = flag.Bool("profiling", true, "enable profiling endpoints")
var envFile = flag.String("env", ".env", "environment file to load before reading config")

func main() {
	flag.Parse()

	cfg, err := common.LoadConfig(*envFile)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	var hooks []common.ShutdownHook

	var cache catalog.Cache
	if cfg.RedisUrl != "" {
		redisCache := catalog.NewRedisCache(cfg.RedisUrl, cfg.RedisPassword, cfg.RedisDB)
		if err := redisCache.Ping(context.Background()); err != nil {
			log.Printf("Redis not reachable, running without query cache: %v", err)
		} else {
			cache = redisCache
			log.Printf("Using redis query cache at %s", cfg.RedisUrl)
		}
		hooks = append(hooks, func(ctx context.Context) error {
			return redisCache.Close()
		})
	}

	store := catalog.NewStore(cache, cfg.QueryCacheTTL)
	svc := &storefront.Service{
		Catalog:    store,
		Aggregator: cart.NewAggregator(pricing.NewEngine(), cfg.MaxMarkupRatio),
		Currency:   cfg.Currency,
	}
	if cfg.PromotionsFile != "" {
		svc.Promotions = &promotions.DiskPromotionStorage{Path: cfg.PromotionsFile}
	}

	if cfg.RabbitUrl != "" {
		conn, err := messaging.Connect(messaging.RabbitConfig{
			Url:    cfg.RabbitUrl,
			VHost:  cfg.RabbitVHost,
			Prefix: cfg.TopicPrefix,
		})
		if err != nil {
			log.Fatalf("Failed to connect to RabbitMQ: %v", err)
		}
		ch, err := conn.Channel()
		if err != nil {
			log.Fatalf("Failed to open channel: %v", err)
		}
		if err := messaging.DefineTopic(ch, cfg.TopicPrefix, messaging.CatalogSnapshotTopic); err != nil {
			log.Fatalf("Failed to define snapshot topic: %v", err)
		}
		err = messaging.ListenForSnapshots(ch, cfg.TopicPrefix, func(snapshot messaging.CatalogSnapshot) error {
			store.Replace(snapshot.Version, snapshot.Products)
			return nil
		})
		if err != nil {
			log.Fatalf("Failed to listen for catalog snapshots: %v", err)
		}
		publisher, err := storefront.NewAmqpQuotePublisher(conn, cfg.TopicPrefix)
		if err != nil {
			log.Fatalf("Failed to set up quote publisher: %v", err)
		}
		svc.Publisher = publisher
		tracker, err := tracking.NewRabbitTracking(conn, cfg.TopicPrefix)
		if err != nil {
			log.Printf("Tracking disabled: %v", err)
		} else {
			svc.Tracking = tracker
		}
		hooks = append(hooks, func(ctx context.Context) error {
			return conn.Close()
		})
	} else {
		log.Printf("No RABBIT_URL set, catalog snapshots will not be received")
	}

	if *enableProfiling {
		go func() {
			runtime.SetBlockProfileRate(1)
			debugMux := http.NewServeMux()
			debugMux.HandleFunc("/debug/pprof/", pprof.Index)
			debugMux.HandleFunc("/debug/pprof/cmdline", pprof.Cmdline)
			debugMux.HandleFunc("/debug/pprof/profile", pprof.Profile)
			debugMux.HandleFunc("/debug/pprof/symbol", pprof.Symbol)
			debugMux.HandleFunc("/debug/pprof/trace", pprof.Trace)
			log.Printf("Starting debug server on %s", cfg.DebugAddress)
			if err := http.ListenAndServe(cfg.DebugAddress, debugMux); err != nil {
				log.Printf("Debug server stopped: %v", err)
			}
		}()
	}

	mux := http.NewServeMux()
	mux.Handle("/api/", http.StripPrefix("/api", svc.Handler()))
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		if _, err := store.Snapshot(); err != nil {
			http.Error(w, err.Error(), http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	server := common.NewServerWithTimeouts(cfg.ListenAddress, mux, cfg.Timeouts)
	common.RunServerWithShutdown(server, "storefront", cfg.Timeouts.Shutdown, cfg.Timeouts.Hook, hooks...)
}
