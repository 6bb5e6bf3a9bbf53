package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/cbodonnell/scorekeeper/pkg/api/handlers"
	"github.com/cbodonnell/scorekeeper/pkg/api/middleware"
	"github.com/cbodonnell/scorekeeper/pkg/log"
	"github.com/gorilla/mux"
)

type APIServer struct {
	server *http.Server
	tls    *TLSConfig
}

type TLSConfig struct {
	CertFile string
	KeyFile  string
}

type NewAPIServerOptions struct {
	Port        int
	AllowOrigin string
	TLS         *TLSConfig
	Tracker     handlers.GameTracker
}

// NewRouter returns the API routes for t.
func NewRouter(t handlers.GameTracker, allowOrigin string) *mux.Router {
	// titles may contain "/", which clients send as %2F
	r := mux.NewRouter().UseEncodedPath()
	r.Use(middleware.LogRequests)
	r.Use(middleware.NewCORSMiddleware(allowOrigin))

	r.HandleFunc("/ping", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("pong"))
	}).Methods(http.MethodGet)

	r.HandleFunc("/app", handlers.HandleGetApp(t)).Methods(http.MethodGet, http.MethodOptions)
	r.HandleFunc("/app/reset", handlers.HandleReset(t)).Methods(http.MethodPost, http.MethodOptions)

	r.HandleFunc("/games", handlers.HandleListGames(t)).Methods(http.MethodGet, http.MethodOptions)
	r.HandleFunc("/games", handlers.HandleCreateGame(t)).Methods(http.MethodPost)

	games := r.PathPrefix("/games/{title}").Subrouter()
	games.HandleFunc("", handlers.HandleGetGame(t)).Methods(http.MethodGet, http.MethodOptions)
	games.HandleFunc("", handlers.HandleDeleteGame(t)).Methods(http.MethodDelete)
	games.HandleFunc("/guesses", handlers.HandleRecordGuesses(t)).Methods(http.MethodPost, http.MethodOptions)
	games.HandleFunc("/sets-won", handlers.HandleRecordSetsWon(t)).Methods(http.MethodPost, http.MethodOptions)
	games.HandleFunc("/next-round", handlers.HandleNextRound(t)).Methods(http.MethodPost, http.MethodOptions)
	games.HandleFunc("/standings", handlers.HandleStandings(t)).Methods(http.MethodGet, http.MethodOptions)

	return r
}

// NewAPIServer creates a new http.Server for handling API requests
func NewAPIServer(opts NewAPIServerOptions) *APIServer {
	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", opts.Port),
		Handler: NewRouter(opts.Tracker, opts.AllowOrigin),
	}
	return &APIServer{
		server: server,
		tls:    opts.TLS,
	}
}

// Start serves until the server is stopped or fails to listen.
// It returns nil after Stop.
func (s *APIServer) Start() error {
	var listenAndServe func() error
	if s.tls != nil {
		log.Info("API server listening on %s with TLS", s.server.Addr)
		listenAndServe = func() error {
			return s.server.ListenAndServeTLS(s.tls.CertFile, s.tls.KeyFile)
		}
	} else {
		log.Info("API server listening on %s", s.server.Addr)
		listenAndServe = s.server.ListenAndServe
	}
	if err := listenAndServe(); err != nil {
		if errors.Is(err, http.ErrServerClosed) {
			log.Info("API server closed")
			return nil
		}
		return fmt.Errorf("api server: %w", err)
	}
	return nil
}

// Stop stops the APIServer
func (s *APIServer) Stop(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}
