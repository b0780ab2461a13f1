package transport

import (
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"main/internal/client"
	"main/internal/handlers"
	"main/internal/middleware"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	// CORS
	CheckOrigin: func(r *http.Request) bool {
		origin := r.Header.Get("origin")

		allowedDomains := strings.Split(os.Getenv("DOMAINS"), ",")

		for _, allowed := range allowedDomains {
			if origin == strings.TrimSpace(allowed) {
				return true
			}
		}

		return false
	},
}

// GetClientIP: extracts the real client IP from the request
func GetClientIP(r *http.Request) string {
	// Use RemoteAddr only - cannot be spoofed by client
	ip := r.RemoteAddr
	if idx := strings.LastIndex(ip, ":"); idx != -1 {
		ip = ip[:idx] // Remove port
	}
	return ip
}

// HandleWebSocket: upgrades HTTP to WebSocket and serves icon requests
func HandleWebSocket(
	w http.ResponseWriter,
	r *http.Request,
	ipRateLimiter *middleware.IPRateLimit,
	limits *middleware.Limits,
	clientMgr *client.Manager,
	msgRouter *handlers.MessageRouter,
	synchronizer *handlers.Synchronizer,
) {
	// Check if rate limited
	clientIP := GetClientIP(r)
	if !ipRateLimiter.Allow(clientIP) {
		log.Printf("Rate limit exceeded for IP: %s", clientIP)
		http.Error(w, "Too many connections", http.StatusTooManyRequests)
		return
	}

	// Check connection capacity before upgrading
	if !limits.CanAcceptClient(clientMgr) {
		log.Printf("Server at maximum client capacity, rejecting %s", clientIP)
		http.Error(w, "Server at capacity", http.StatusServiceUnavailable)
		return
	}

	// Set security headers before upgrade
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")

	// Upgrade connection
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("Error: Failed to upgrade connection - %v", err)
		return
	}
	defer conn.Close()

	c := clientMgr.Add(conn, limits.MessagesPerSecond, limits.BurstSize)
	defer clientMgr.Remove(c.ID)

	// Send catalog snapshot so the client knows what it can request
	if err := synchronizer.SyncNewClient(c); err != nil {
		log.Printf("Error: Failed to sync client %s - %v", c.ID, err)
		return
	}

	run(conn, c, clientMgr, limits, msgRouter)
}

// run: message loop for WebSocket connections
func run(conn *websocket.Conn, c *client.Client, clientMgr *client.Manager, limits *middleware.Limits, msgRouter *handlers.MessageRouter) {
	const (
		pongWait   = 60 * time.Second
		pingPeriod = (pongWait * 9) / 10 // Send pings at 90% of pong deadline
	)

	// Set up pong handler to extend deadline when pong received
	conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	// Start ping ticker in background
	pingTicker := time.NewTicker(pingPeriod)
	defer pingTicker.Stop()

	// Channel to signal when read loop exits
	done := make(chan struct{})
	defer close(done)

	// Ping goroutine
	go func() {
		for {
			select {
			case <-pingTicker.C:
				conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
				if err := c.WriteMessage(websocket.PingMessage, nil); err != nil {
					return // Connection dead, ping goroutine exits
				}
			case <-done:
				return // Main loop exited, stop pinging
			}
		}
	}()

	// Main read loop
	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			log.Println("Error: Reading message", err)
			break // Connection dead
		}

		clientMgr.Touch(c.ID)

		// Validate message size
		if !limits.ValidateMessageSize(len(msg)) {
			log.Printf("Message too large from client %s: %d bytes", c.ID, len(msg))
			continue // Drop oversized message
		}

		// Check rate limit for this client
		if !c.RateLimiter.Allow() {
			log.Printf("Rate limit exceeded for client: %s", c.ID)
			continue // Drop message
		}

		if err := msgRouter.Route(c, msg); err != nil {
			log.Printf("Error handling message from client %s: %v", c.ID, err)
			continue // Skip message
		}
	}
}
