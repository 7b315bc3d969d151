package playlist

import "errors"

var (
	// ErrInvalidPlaylistPath is returned when the playlist path does not
	// refer to an existing regular file.
	ErrInvalidPlaylistPath = errors.New("playlist path is not an existing file")

	// ErrTrackNotFound is returned when a listed track file is missing on
	// disk. It aborts the whole scan.
	ErrTrackNotFound = errors.New("track file not found")
)
