package main

import (
	"flag"
	"log"
	"net/http"
	"os"

	"github.com/gorilla/mux"

	"github.com/lukev/innovation_server/internal/api"
	"github.com/lukev/innovation_server/internal/config"
	"github.com/lukev/innovation_server/internal/game"
	"github.com/lukev/innovation_server/internal/lobby"
	"github.com/lukev/innovation_server/internal/replay"
	"github.com/lukev/innovation_server/internal/websocket"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to the server config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	if err := os.MkdirAll(cfg.RecordDir, 0o755); err != nil {
		log.Fatalf("failed to create record directory: %v", err)
	}

	// Create WebSocket hub
	hub := websocket.NewHub()
	go hub.Run()

	// Create managers
	gameMgr := game.NewManager()
	lobbyMgr := lobby.NewManager()
	replayMgr := replay.NewReplayManager(cfg.RecordDir)
	replayHandler := api.NewReplayHandler(replayMgr, gameMgr)

	deps := websocket.ServerDeps{
		Lobby: lobbyMgr,
		Games: gameMgr,
	}

	if unimpl := game.UnimplementedCards(); len(unimpl) > 0 {
		log.Printf("Cards without effect scripts (dogma is a no-op): %v", unimpl)
	}

	// Set up router
	router := mux.NewRouter()

	// WebSocket endpoint
	router.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		websocket.ServeWs(hub, deps, w, r)
	})

	// Health check endpoint
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	// CORS middleware for development
	router.Use(corsMiddleware(cfg.CORSOrigin))

	// Register replay routes
	replayHandler.RegisterRoutes(router)

	// Start server
	log.Printf("Innovation server starting on %s", cfg.ListenAddr)
	if err := http.ListenAndServe(cfg.ListenAddr, router); err != nil {
		log.Fatal("ListenAndServe: ", err)
	}
}

func corsMiddleware(origin string) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

			if r.Method == "OPTIONS" {
				w.WriteHeader(http.StatusOK)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
