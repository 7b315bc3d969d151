package audio

import (
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"playlistport/internal/model"
)

// Service reads tag metadata from audio files. It tries the generic tag
// parser first and falls back to a format-specific reader chosen by file
// extension.
type Service struct {
	logger zerolog.Logger
}

func NewService(logger zerolog.Logger) *Service {
	return &Service{logger: logger}
}

// ReadTrack extracts title/artist/album/release date from the file at
// filePath. It returns an error when no reader can make sense of the file;
// the file itself is expected to exist.
func (s *Service) ReadTrack(filePath string) (*model.TrackInfo, error) {
	info, primaryErr := readNative(filePath)
	if primaryErr == nil {
		return info, nil
	}

	ext := strings.TrimPrefix(filepath.Ext(filePath), ".")
	if reader := getTagReaderByExtension(ext); reader != nil {
		info, err := reader.ReadTags(filePath)
		if err == nil {
			return info, nil
		}
		s.logger.Debug().
			Str("file", filePath).
			Str("format", reader.Format()).
			Err(err).
			Msg("fallback tag read failed")
	}

	return nil, primaryErr
}

func getTagReaderByExtension(ext string) TagReader {
	ext = strings.ToUpper(ext)
	if reader := getMP3Reader(ext); reader != nil {
		return reader
	}
	if reader := getFLACReader(ext); reader != nil {
		return reader
	}
	return nil
}
