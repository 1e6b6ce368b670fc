package server

import (
	"context"
	"fmt"
	"log"
	"net"
	"net/http"
	"time"

	"sakay-router/internal/geocoding"
	"sakay-router/internal/handlers"
	"sakay-router/internal/routing"
	"sakay-router/internal/sqlite"
	"sakay-router/internal/transit"
)

// Config holds server configuration
type Config struct {
	Addr           string // e.g., "127.0.0.1:8080" or "127.0.0.1:0" for random port
	GeocoderURL    string // base URL of the mapping provider; empty for default
	GeocoderAPIKey string
	CacheDBPath    string // path to the SQLite directions cache
}

// Server wraps the HTTP server and all dependencies
type Server struct {
	httpServer *http.Server
	handler    *handlers.Handler
	store      *sqlite.Store
	listener   net.Listener
	addr       string
}

// New creates and initializes a new server (does not start it)
func New(cfg Config) (*Server, error) {
	log.Printf("Initializing directions cache...")
	store, err := sqlite.New(cfg.CacheDBPath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize directions cache: %w", err)
	}

	graph := transit.Diliman()
	log.Printf("Loaded transit graph: terminals=%d", graph.Len())

	gateway := geocoding.NewGateway(geocoding.Config{
		BaseURL:         cfg.GeocoderURL,
		APIKey:          cfg.GeocoderAPIKey,
		DirectionsCache: store.DirectionsCache(),
	})

	handler := &handlers.Handler{
		Graph:      graph,
		Pathfinder: routing.NewPathfinder(graph),
		Gateway:    gateway,
	}

	mux := setupRoutes(handler)

	httpServer := &http.Server{
		Addr:         cfg.Addr,
		Handler:      loggingMiddleware(mux),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	return &Server{
		httpServer: httpServer,
		handler:    handler,
		store:      store,
		addr:       cfg.Addr,
	}, nil
}

// Start starts the server and returns the actual address (useful for random port)
func (s *Server) Start() (string, error) {
	listener, err := net.Listen("tcp", s.addr)
	if err != nil {
		return "", fmt.Errorf("failed to listen: %w", err)
	}

	s.listener = listener
	actualAddr := listener.Addr().String()
	log.Printf("Starting server on %s", actualAddr)

	go func() {
		if err := s.httpServer.Serve(listener); err != nil && err != http.ErrServerClosed {
			log.Printf("Server error: %v", err)
		}
	}()

	return actualAddr, nil
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return err
	}
	return s.store.Close()
}

func setupRoutes(handler *handlers.Handler) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("/healthz", handler.HandleHealth)
	mux.HandleFunc("/api/v1/route", handler.HandleGraphRoute)
	mux.HandleFunc("/api/v1/directions", handler.HandleLiveDirections)
	mux.HandleFunc("/api/v1/place-search", handler.HandlePlaceSearch)
	mux.HandleFunc("/api/v1/reverse-geocode", handler.HandleReverseGeocode)
	mux.HandleFunc("/api/v1/terminals", handler.HandleTerminals)

	return mux
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		lrw := &loggingResponseWriter{ResponseWriter: w, statusCode: http.StatusOK}

		next.ServeHTTP(lrw, r)

		duration := time.Since(start)
		log.Printf("%s %s %d %v", r.Method, r.URL.Path, lrw.statusCode, duration)
	})
}

type loggingResponseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (lrw *loggingResponseWriter) WriteHeader(code int) {
	lrw.statusCode = code
	lrw.ResponseWriter.WriteHeader(code)
}
