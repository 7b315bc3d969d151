package audio

import (
	"fmt"

	"github.com/go-flac/flacvorbis"
	"github.com/go-flac/go-flac"
	"github.com/tallenh/audiometa"

	"playlistport/internal/model"
)

type flacReader struct{}

func newFLACReader() *flacReader {
	return &flacReader{}
}

func (r *flacReader) Format() string {
	return "FLAC"
}

func (r *flacReader) ReadTags(filePath string) (*model.TrackInfo, error) {
	info, err := r.readVorbisComments(filePath)
	if err == nil {
		return info, nil
	}
	return r.readWithAudiometa(filePath)
}

func (r *flacReader) readVorbisComments(filePath string) (*model.TrackInfo, error) {
	f, err := flac.ParseFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to parse FLAC file: %w", err)
	}

	for _, meta := range f.Meta {
		if meta.Type != flac.VorbisComment {
			continue
		}
		comment, err := flacvorbis.ParseFromMetaDataBlock(*meta)
		if err != nil {
			continue
		}
		return &model.TrackInfo{
			Title:       firstComment(comment, flacvorbis.FIELD_TITLE),
			Artist:      firstComment(comment, flacvorbis.FIELD_ARTIST),
			Album:       firstComment(comment, flacvorbis.FIELD_ALBUM),
			ReleaseDate: firstComment(comment, flacvorbis.FIELD_DATE),
		}, nil
	}

	return nil, fmt.Errorf("no vorbis comment block found")
}

func (r *flacReader) readWithAudiometa(filePath string) (*model.TrackInfo, error) {
	flacTag, err := audiometa.OpenTag(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open FLAC tag: %w", err)
	}

	return &model.TrackInfo{
		Title:       flacTag.Title(),
		Artist:      flacTag.Artist(),
		Album:       flacTag.Album(),
		ReleaseDate: flacTag.Year(),
	}, nil
}

func firstComment(comment *flacvorbis.MetaDataBlockVorbisComment, field string) string {
	values, err := comment.Get(field)
	if err != nil || len(values) == 0 {
		return ""
	}
	return values[0]
}

func getFLACReader(ext string) TagReader {
	if ext == "FLAC" {
		return newFLACReader()
	}
	return nil
}
