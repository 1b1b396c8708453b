package assets

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

// ErrNoMusic is returned when none of the candidate music files exist.
var ErrNoMusic = errors.New("no music file found")

// AudioLoader loads audio from a file system.
type AudioLoader struct {
	fsys    fs.FS
	context *audio.Context
}

// NewAudioLoader creates a new audio loader reading from fsys
func NewAudioLoader(ctx *audio.Context, fsys fs.FS) *AudioLoader {
	return &AudioLoader{
		fsys:    fsys,
		context: ctx,
	}
}

type lengthStream interface {
	io.ReadSeeker
	Length() int64
}

func (l *AudioLoader) decode(path string, data []byte) (lengthStream, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".ogg":
		stream, err := vorbis.DecodeWithSampleRate(l.context.SampleRate(), bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("failed to decode ogg %s: %w", path, err)
		}
		return stream, nil
	case ".wav":
		stream, err := wav.DecodeWithSampleRate(l.context.SampleRate(), bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("failed to decode wav %s: %w", path, err)
		}
		return stream, nil
	}
	return nil, fmt.Errorf("unsupported audio format: %s", path)
}

// LoadMusic returns a looping player for the music file at path.
func (l *AudioLoader) LoadMusic(path string) (*audio.Player, error) {
	data, err := fs.ReadFile(l.fsys, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read music file %s: %w", path, err)
	}

	stream, err := l.decode(path, data)
	if err != nil {
		return nil, err
	}

	loop := audio.NewInfiniteLoop(stream, stream.Length())
	return l.context.NewPlayer(loop)
}

// LoadFirstMusic tries each path in order and returns the first that loads.
func (l *AudioLoader) LoadFirstMusic(paths []string) (*audio.Player, string, error) {
	for _, path := range paths {
		player, err := l.LoadMusic(path)
		if err == nil {
			return player, path, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			log.Printf("Warning: %v", err)
		}
	}
	return nil, "", ErrNoMusic
}
