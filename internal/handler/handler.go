package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"playlistport/internal/model"
	"playlistport/internal/service/playlist"
)

// Playlist is the scan session the handler drives.
type Playlist interface {
	Scan() ([]*model.Artist, error)
	Artists() []*model.Artist
	PopFile(name string)
	Save()
}

type Handler struct {
	newPlaylist func(path string) Playlist
	logger      zerolog.Logger

	mu       sync.Mutex
	sessions map[string]Playlist
}

func New(newPlaylist func(path string) Playlist, logger zerolog.Logger) *Handler {
	return &Handler{
		newPlaylist: newPlaylist,
		logger:      logger,
		sessions:    make(map[string]Playlist),
	}
}

func (h *Handler) CreatePlaylist() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Path string `json:"path"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Path == "" {
			http.Error(w, "path is required", http.StatusBadRequest)
			return
		}

		id := uuid.NewString()
		h.mu.Lock()
		h.sessions[id] = h.newPlaylist(req.Path)
		h.mu.Unlock()

		h.logger.Info().Str("id", id).Str("path", req.Path).Msg("playlist session created")

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]string{
			"id":   id,
			"path": req.Path,
		})
	}
}

func (h *Handler) ScanPlaylist() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")

		// Holding the lock across the scan serializes access to the
		// session, which is not safe for concurrent use.
		h.mu.Lock()
		pl, ok := h.sessions[id]
		if !ok {
			h.mu.Unlock()
			http.Error(w, "unknown playlist", http.StatusNotFound)
			return
		}
		artists, err := pl.Scan()
		h.mu.Unlock()

		if err != nil {
			h.logger.Warn().Str("id", id).Err(err).Msg("scan failed")
			switch {
			case errors.Is(err, playlist.ErrInvalidPlaylistPath):
				http.Error(w, err.Error(), http.StatusBadRequest)
			case errors.Is(err, playlist.ErrTrackNotFound):
				http.Error(w, err.Error(), http.StatusConflict)
			default:
				http.Error(w, err.Error(), http.StatusInternalServerError)
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"artists": artists,
		})
	}
}

func (h *Handler) ListArtists() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Artists() reads session state that Scan writes, so it needs the
		// same serialization as the mutating endpoints.
		h.mu.Lock()
		pl, ok := h.sessions[r.PathValue("id")]
		if !ok {
			h.mu.Unlock()
			http.Error(w, "unknown playlist", http.StatusNotFound)
			return
		}
		artists := pl.Artists()
		h.mu.Unlock()

		if artists == nil {
			http.Error(w, "playlist has not been scanned", http.StatusNotFound)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"artists": artists,
		})
	}
}

func (h *Handler) RemoveTrack() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		pl, ok := h.playlist(r.PathValue("id"))
		if !ok {
			http.Error(w, "unknown playlist", http.StatusNotFound)
			return
		}

		var req struct {
			File string `json:"file"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.File == "" {
			http.Error(w, "file is required", http.StatusBadRequest)
			return
		}

		h.mu.Lock()
		pl.PopFile(req.File)
		h.mu.Unlock()

		w.WriteHeader(http.StatusNoContent)
	}
}

func (h *Handler) SavePlaylist() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		pl, ok := h.playlist(r.PathValue("id"))
		if !ok {
			http.Error(w, "unknown playlist", http.StatusNotFound)
			return
		}

		h.mu.Lock()
		pl.Save()
		h.mu.Unlock()

		w.WriteHeader(http.StatusNoContent)
	}
}

func (h *Handler) playlist(id string) (Playlist, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	pl, ok := h.sessions[id]
	return pl, ok
}
