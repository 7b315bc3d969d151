package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/rs/zerolog"

	"playlistport/internal/model"
	"playlistport/internal/service/playlist"
)

type stubPlaylist struct {
	scanErr error
	result  []*model.Artist
	popped  []string
	saved   bool
}

func (s *stubPlaylist) Scan() ([]*model.Artist, error) {
	if s.scanErr != nil {
		return nil, s.scanErr
	}
	return s.result, nil
}

func (s *stubPlaylist) Artists() []*model.Artist { return s.result }
func (s *stubPlaylist) PopFile(name string)      { s.popped = append(s.popped, name) }
func (s *stubPlaylist) Save()                    { s.saved = true }

func newTestHandler(stub *stubPlaylist) *Handler {
	return New(func(path string) Playlist { return stub }, zerolog.Nop())
}

func createSession(t *testing.T, h *Handler, path string) string {
	t.Helper()
	body, err := json.Marshal(map[string]string{"path": path})
	if err != nil {
		t.Fatalf("marshal create request: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, "/api/playlists", strings.NewReader(string(body)))
	rr := httptest.NewRecorder()
	h.CreatePlaylist()(rr, req)
	if rr.Code != http.StatusCreated {
		t.Fatalf("create status = %d, want %d", rr.Code, http.StatusCreated)
	}
	var resp struct {
		ID string `json:"id"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("decode create response: %v", err)
	}
	if resp.ID == "" {
		t.Fatalf("create response has empty id")
	}
	return resp.ID
}

func TestCreatePlaylistRequiresPath(t *testing.T) {
	h := newTestHandler(&stubPlaylist{})
	req := httptest.NewRequest(http.MethodPost, "/api/playlists", strings.NewReader(`{}`))
	rr := httptest.NewRecorder()
	h.CreatePlaylist()(rr, req)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusBadRequest)
	}
}

func TestScanPlaylist(t *testing.T) {
	artist := model.NewArtist("Aphex Twin")
	album := model.NewAlbum("Drukqs")
	album.AddSong(model.NewSong("Vordhosbn"))
	artist.AddAlbum(album)

	stub := &stubPlaylist{result: []*model.Artist{artist}}
	h := newTestHandler(stub)
	id := createSession(t, h, "mix.m3u")

	req := httptest.NewRequest(http.MethodPost, "/api/playlists/"+id+"/scan", nil)
	req.SetPathValue("id", id)
	rr := httptest.NewRecorder()
	h.ScanPlaylist()(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d: %s", rr.Code, http.StatusOK, rr.Body.String())
	}
	var resp struct {
		Artists []struct {
			Name   string `json:"name"`
			Albums []struct {
				Title string `json:"title"`
				Songs []struct {
					Title string `json:"title"`
				} `json:"songs"`
			} `json:"albums"`
		} `json:"artists"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("decode scan response: %v", err)
	}
	if len(resp.Artists) != 1 || resp.Artists[0].Name != "Aphex Twin" {
		t.Fatalf("unexpected artists: %+v", resp.Artists)
	}
	if len(resp.Artists[0].Albums) != 1 || resp.Artists[0].Albums[0].Title != "Drukqs" {
		t.Fatalf("unexpected albums: %+v", resp.Artists[0].Albums)
	}
	if len(resp.Artists[0].Albums[0].Songs) != 1 || resp.Artists[0].Albums[0].Songs[0].Title != "Vordhosbn" {
		t.Fatalf("unexpected songs: %+v", resp.Artists[0].Albums[0].Songs)
	}
}

func TestScanPlaylistErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{
			name:       "invalid playlist path",
			err:        fmt.Errorf("%w: mix.m3u", playlist.ErrInvalidPlaylistPath),
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "missing track file",
			err:        fmt.Errorf("%w: b.mp3", playlist.ErrTrackNotFound),
			wantStatus: http.StatusConflict,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			h := newTestHandler(&stubPlaylist{scanErr: tc.err})
			id := createSession(t, h, "mix.m3u")

			req := httptest.NewRequest(http.MethodPost, "/api/playlists/"+id+"/scan", nil)
			req.SetPathValue("id", id)
			rr := httptest.NewRecorder()
			h.ScanPlaylist()(rr, req)
			if rr.Code != tc.wantStatus {
				t.Fatalf("status = %d, want %d", rr.Code, tc.wantStatus)
			}
		})
	}
}

func TestScanPlaylistUnknownID(t *testing.T) {
	h := newTestHandler(&stubPlaylist{})
	req := httptest.NewRequest(http.MethodPost, "/api/playlists/nope/scan", nil)
	req.SetPathValue("id", "nope")
	rr := httptest.NewRecorder()
	h.ScanPlaylist()(rr, req)
	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusNotFound)
	}
}

func TestListArtistsBeforeScan(t *testing.T) {
	h := newTestHandler(&stubPlaylist{}) // Artists() returns nil
	id := createSession(t, h, "mix.m3u")

	req := httptest.NewRequest(http.MethodGet, "/api/playlists/"+id+"/artists", nil)
	req.SetPathValue("id", id)
	rr := httptest.NewRecorder()
	h.ListArtists()(rr, req)
	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusNotFound)
	}
}

func TestRemoveTrack(t *testing.T) {
	stub := &stubPlaylist{}
	h := newTestHandler(stub)
	id := createSession(t, h, "mix.m3u")

	req := httptest.NewRequest(
		http.MethodPost,
		"/api/playlists/"+id+"/tracks/remove",
		strings.NewReader(`{"file":"b.mp3"}`),
	)
	req.SetPathValue("id", id)
	rr := httptest.NewRecorder()
	h.RemoveTrack()(rr, req)

	if rr.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusNoContent)
	}
	if len(stub.popped) != 1 || stub.popped[0] != "b.mp3" {
		t.Fatalf("popped = %v, want [b.mp3]", stub.popped)
	}
}

type fixedReader struct{}

func (fixedReader) ReadTrack(string) (*model.TrackInfo, error) {
	return &model.TrackInfo{Title: "Xtal", Artist: "Aphex Twin", Album: "Selected Ambient Works 85-92"}, nil
}

// Scanning and reading artists on the same session from different requests
// must not race; run with -race.
func TestConcurrentScanAndListArtists(t *testing.T) {
	dir := t.TempDir()
	track := filepath.Join(dir, "a.mp3")
	if err := os.WriteFile(track, []byte("audio"), 0o644); err != nil {
		t.Fatalf("write track: %v", err)
	}
	plsPath := filepath.Join(dir, "mix.m3u")
	if err := os.WriteFile(plsPath, []byte(track+"\n"), 0o644); err != nil {
		t.Fatalf("write playlist: %v", err)
	}

	h := New(func(path string) Playlist {
		return playlist.New(path, fixedReader{}, zerolog.Nop())
	}, zerolog.Nop())
	id := createSession(t, h, plsPath)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 25; i++ {
			req := httptest.NewRequest(http.MethodPost, "/api/playlists/"+id+"/scan", nil)
			req.SetPathValue("id", id)
			h.ScanPlaylist()(httptest.NewRecorder(), req)
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 25; i++ {
			req := httptest.NewRequest(http.MethodGet, "/api/playlists/"+id+"/artists", nil)
			req.SetPathValue("id", id)
			h.ListArtists()(httptest.NewRecorder(), req)
		}
	}()
	wg.Wait()
}

func TestSavePlaylist(t *testing.T) {
	stub := &stubPlaylist{}
	h := newTestHandler(stub)
	id := createSession(t, h, "mix.m3u")

	req := httptest.NewRequest(http.MethodPost, "/api/playlists/"+id+"/save", nil)
	req.SetPathValue("id", id)
	rr := httptest.NewRecorder()
	h.SavePlaylist()(rr, req)

	if rr.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusNoContent)
	}
	if !stub.saved {
		t.Fatalf("save was not delegated to the session")
	}
}
