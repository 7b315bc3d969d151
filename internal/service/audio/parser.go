package audio

import (
	"fmt"
	"os"
	"strconv"

	"github.com/dhowden/tag"

	"playlistport/internal/model"
)

func readNative(filePath string) (*model.TrackInfo, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	metadata, err := tag.ReadFrom(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read tags from file: %w", err)
	}

	return extractTrackInfo(metadata), nil
}

func extractTrackInfo(metadata tag.Metadata) *model.TrackInfo {
	info := &model.TrackInfo{
		Title:  metadata.Title(),
		Artist: metadata.Artist(),
		Album:  metadata.Album(),
	}
	if year := metadata.Year(); year != 0 {
		info.ReleaseDate = strconv.Itoa(year)
	}
	return info
}
