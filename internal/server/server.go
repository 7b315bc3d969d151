package server

import (
	"context"
	"net/http"

	"playlistport/internal/config"
	"playlistport/internal/handler"
)

type Server struct {
	httpServer *http.Server
	config     *config.ServerConfig
}

func New(cfg *config.Config, h *handler.Handler) *Server {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/playlists", h.CreatePlaylist())
	mux.HandleFunc("POST /api/playlists/{id}/scan", h.ScanPlaylist())
	mux.HandleFunc("GET /api/playlists/{id}/artists", h.ListArtists())
	mux.HandleFunc("POST /api/playlists/{id}/tracks/remove", h.RemoveTrack())
	mux.HandleFunc("POST /api/playlists/{id}/save", h.SavePlaylist())

	srv := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      mux,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	return &Server{
		httpServer: srv,
		config:     &cfg.Server,
	}
}

func (s *Server) Start() error {
	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
