package audio

import (
	"fmt"

	"github.com/bogem/id3v2/v2"

	"playlistport/internal/model"
)

type mp3Reader struct{}

func newMP3Reader() *mp3Reader {
	return &mp3Reader{}
}

func (r *mp3Reader) Format() string {
	return "MP3"
}

func (r *mp3Reader) ReadTags(filePath string) (*model.TrackInfo, error) {
	tagFile, err := id3v2.Open(filePath, id3v2.Options{Parse: true})
	if err != nil {
		return nil, fmt.Errorf("failed to open MP3 file: %w", err)
	}
	defer tagFile.Close()

	if tagFile.Count() == 0 {
		return nil, fmt.Errorf("no ID3v2 frames in file")
	}

	return &model.TrackInfo{
		Title:       tagFile.Title(),
		Artist:      tagFile.Artist(),
		Album:       tagFile.Album(),
		ReleaseDate: tagFile.Year(),
	}, nil
}

func getMP3Reader(ext string) TagReader {
	if ext == "MP3" || ext == "MPEG" {
		return newMP3Reader()
	}
	return nil
}
