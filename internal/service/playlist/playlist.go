// Package playlist implements the scan session for one playlist file:
// line-oriented parsing, pending-list management, tag extraction with
// progress reporting, and hierarchy aggregation.
package playlist

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"playlistport/internal/model"
)

// TagReader extracts tag metadata from a single audio file.
type TagReader interface {
	ReadTrack(filePath string) (*model.TrackInfo, error)
}

// Playlist is a mutable scan session for one playlist file. It is not safe
// for concurrent use; callers must serialize Scan and PopFile.
type Playlist struct {
	path      string
	reader    TagReader
	logger    zerolog.Logger
	listeners []ProgressListener

	trackFiles []string
	removed    map[string]struct{}
	artists    []*model.Artist
}

func New(path string, reader TagReader, logger zerolog.Logger) *Playlist {
	return &Playlist{
		path:    path,
		reader:  reader,
		logger:  logger,
		removed: make(map[string]struct{}),
	}
}

// Scan reads the playlist file, appends its non-comment lines to the
// pending track list, then processes the pending list in order: each entry
// must exist on disk (a missing file aborts the whole scan), and its tags
// are read with extraction failures tolerated as absent records. On success
// the stored hierarchy is replaced and returned. A failed scan leaves the
// previous hierarchy untouched.
func (p *Playlist) Scan() ([]*model.Artist, error) {
	info, err := os.Stat(p.path)
	if err != nil || !info.Mode().IsRegular() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidPlaylistPath, p.path)
	}

	if err := p.collectTrackFiles(); err != nil {
		return nil, err
	}

	records := make([]*model.TrackInfo, 0, len(p.trackFiles))
	for i, name := range p.trackFiles {
		p.fireProgress(i-1, i)

		if _, err := os.Stat(name); err != nil {
			return nil, fmt.Errorf("%w: %s", ErrTrackNotFound, name)
		}

		record, err := p.reader.ReadTrack(name)
		if err != nil {
			p.logger.Warn().Str("file", name).Err(err).Msg("unreadable tag, track skipped")
			records = append(records, nil)
			continue
		}
		records = append(records, record)
	}

	p.artists = buildArtistList(records)
	return p.artists, nil
}

func (p *Playlist) collectTrackFiles() error {
	file, err := os.Open(p.path)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidPlaylistPath, p.path)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(line, "#") {
			continue
		}
		if _, ok := p.removed[line]; ok {
			continue
		}
		p.trackFiles = append(p.trackFiles, line)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read playlist %s: %w", p.path, err)
	}
	return nil
}

// PopFile removes the first occurrence of name from the pending track list
// and bars it from being re-collected by later scans. Unknown names are a
// no-op for the pending list.
func (p *Playlist) PopFile(name string) {
	p.removed[name] = struct{}{}
	for i, have := range p.trackFiles {
		if have == name {
			p.trackFiles = append(p.trackFiles[:i], p.trackFiles[i+1:]...)
			return
		}
	}
}

// Artists returns the hierarchy produced by the last successful scan, or
// nil when no scan has completed yet.
func (p *Playlist) Artists() []*model.Artist {
	if p.artists == nil {
		return nil
	}
	artists := make([]*model.Artist, len(p.artists))
	copy(artists, p.artists)
	return artists
}

// TrackFiles returns a copy of the pending track list.
func (p *Playlist) TrackFiles() []string {
	files := make([]string, len(p.trackFiles))
	copy(files, p.trackFiles)
	return files
}

// Save persists the playlist. The persistence backend is not wired up yet;
// the method is kept so the session interface is complete.
func (p *Playlist) Save() {
	p.logger.Debug().Str("playlist", p.path).Msg("save requested, persistence not implemented")
}
