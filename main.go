package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"time"

	"main/internal/catalog"
	"main/internal/client"
	"main/internal/config"
	"main/internal/handlers"
	"main/internal/icon"
	"main/internal/middleware"
	"main/internal/transport"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	// Build the catalog from the built-in resource icon set
	iconCatalog := catalog.NewCatalog()
	if err := iconCatalog.RegisterAll(catalog.Builtins()); err != nil {
		log.Fatalf("Error registering built-in icons: %v", err)
	}

	// Optional extra icons from a catalog file
	if cfg.CatalogFile != "" {
		data, err := os.ReadFile(cfg.CatalogFile)
		if err != nil {
			log.Fatalf("Error reading catalog file %s: %v", cfg.CatalogFile, err)
		}
		extra, err := icon.DecodeCatalog(data)
		if err != nil {
			log.Fatalf("Error decoding catalog file %s: %v", cfg.CatalogFile, err)
		}
		if err := iconCatalog.RegisterAll(extra); err != nil {
			log.Fatalf("Error registering catalog file icons: %v", err)
		}
	}

	scaleCache := catalog.NewScaleCache()
	limits := middleware.NewLimits(cfg.MaxMessageSize, cfg.MaxBatchSize, cfg.MaxClients, cfg.MessagesPerSecond, cfg.BurstSize)
	ipRateLimiter := middleware.NewIPRateLimit(cfg.ConnectionsPerMinute, cfg.ConnectionBurst)
	clientMgr := client.NewManager()

	msgRouter := handlers.NewMessageRouter(iconCatalog, scaleCache, limits)
	synchronizer := handlers.NewSynchronizer(iconCatalog)

	mux := http.NewServeMux()
	transport.NewIconServer(iconCatalog, scaleCache).RegisterRoutes(mux)
	mux.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		transport.HandleWebSocket(w, r, ipRateLimiter, limits, clientMgr, msgRouter, synchronizer)
	})

	go cleanupLoop(ctx, cfg.CleanupInterval, cfg.CacheTTL, cfg.IdleTTL, scaleCache, ipRateLimiter, clientMgr)

	log.Printf("Icon catalog server started on %s (%d icons)", cfg.Addr, iconCatalog.Count())
	if err := http.ListenAndServe(cfg.Addr, mux); err != nil {
		log.Fatalf("Error starting server: %v", err)
	}
}

// cleanupLoop: routine to expire cached scales, idle IP limiters and
// silent clients
func cleanupLoop(ctx context.Context, interval, cacheTTL, idleTTL time.Duration, scaleCache *catalog.ScaleCache, ipRateLimiter *middleware.IPRateLimit, clientMgr *client.Manager) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			scaleCache.Cleanup(cacheTTL)
			ipRateLimiter.Cleanup(idleTTL)
			clientMgr.Cleanup(idleTTL)
		}
	}
}
