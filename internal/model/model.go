package model

import (
	"encoding/json"
	"strings"
)

// TrackInfo is the raw tag data read from one audio file. All fields may be
// empty when the tag itself is sparse.
type TrackInfo struct {
	Title       string `json:"title"`
	Artist      string `json:"artist"`
	Album       string `json:"album"`
	ReleaseDate string `json:"releaseDate"`
}

// Song is a single track as displayed in the hierarchy.
type Song struct {
	title string
}

func NewSong(title string) Song {
	return Song{title: title}
}

func (s Song) Title() string {
	return s.title
}

// Equal compares song titles exactly, case included.
func (s Song) Equal(other Song) bool {
	return s.title == other.title
}

func (s Song) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Title string `json:"title"`
	}{Title: s.title})
}

// Album owns an ordered collection of songs. Songs are only added through
// AddSong, which keeps titles unique within the album.
type Album struct {
	title string
	songs []Song
}

func NewAlbum(title string) *Album {
	return &Album{title: title}
}

func (a *Album) Title() string {
	return a.title
}

// Songs returns the album's songs in insertion order.
func (a *Album) Songs() []Song {
	songs := make([]Song, len(a.songs))
	copy(songs, a.songs)
	return songs
}

// AddSong appends the song unless an equal one is already present.
// It reports whether the song was added.
func (a *Album) AddSong(s Song) bool {
	if a.Contains(s) {
		return false
	}
	a.songs = append(a.songs, s)
	return true
}

func (a *Album) Contains(s Song) bool {
	for _, have := range a.songs {
		if have.Equal(s) {
			return true
		}
	}
	return false
}

// Equal compares album titles ignoring case.
func (a *Album) Equal(other *Album) bool {
	return strings.EqualFold(a.title, other.title)
}

func (a *Album) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Title string `json:"title"`
		Songs []Song `json:"songs"`
	}{Title: a.title, Songs: a.songs})
}

// Artist owns an ordered collection of albums. Albums are only added through
// AddAlbum, which rejects case-insensitive title duplicates.
type Artist struct {
	name   string
	albums []*Album
}

func NewArtist(name string) *Artist {
	return &Artist{name: name}
}

func (ar *Artist) Name() string {
	return ar.name
}

// Albums returns the artist's albums in insertion order.
func (ar *Artist) Albums() []*Album {
	albums := make([]*Album, len(ar.albums))
	copy(albums, ar.albums)
	return albums
}

// AddAlbum appends the album unless an equal one is already held.
// It reports whether the album was added.
func (ar *Artist) AddAlbum(a *Album) bool {
	if ar.HasAlbum(a) {
		return false
	}
	ar.albums = append(ar.albums, a)
	return true
}

func (ar *Artist) HasAlbum(a *Album) bool {
	for _, have := range ar.albums {
		if have.Equal(a) {
			return true
		}
	}
	return false
}

func (ar *Artist) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Name   string   `json:"name"`
		Albums []*Album `json:"albums"`
	}{Name: ar.name, Albums: ar.albums})
}
