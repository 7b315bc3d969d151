package audio

import "playlistport/internal/model"

// TagReader is a format-specific fallback used when the generic parser
// cannot read a file.
type TagReader interface {
	ReadTags(filePath string) (*model.TrackInfo, error)
	Format() string
}
