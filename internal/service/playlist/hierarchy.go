package playlist

import (
	"strings"

	"playlistport/internal/model"
)

// buildArtistList aggregates track records into the deduplicated
// Artist -> Album -> Song hierarchy in a single order-preserving pass.
//
// Dedup is global and first-match wins: a record whose song title was seen
// anywhere earlier in the run is skipped entirely, and likewise for a record
// whose album title (case-insensitive) was seen. Only records that introduce
// both a new song and a new album reach their artist. Artists are compared
// by name. Nil records (unreadable tags) are skipped.
func buildArtistList(records []*model.TrackInfo) []*model.Artist {
	seenSongs := make(map[string]struct{})
	seenAlbums := make(map[string]struct{})
	seenArtists := make(map[string]*model.Artist)
	result := make([]*model.Artist, 0)

	for _, record := range records {
		if record == nil {
			continue
		}

		if _, ok := seenSongs[record.Title]; ok {
			continue
		}
		seenSongs[record.Title] = struct{}{}

		albumKey := strings.ToLower(record.Album)
		if _, ok := seenAlbums[albumKey]; ok {
			continue
		}
		seenAlbums[albumKey] = struct{}{}

		album := model.NewAlbum(record.Album)
		album.AddSong(model.NewSong(record.Title))

		artist, ok := seenArtists[record.Artist]
		if !ok {
			artist = model.NewArtist(record.Artist)
			seenArtists[record.Artist] = artist
			result = append(result, artist)
		}
		artist.AddAlbum(album)
	}

	return result
}
