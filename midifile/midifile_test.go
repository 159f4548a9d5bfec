package midifile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jacobtrombetta/pedal-steel/model"
	"github.com/jacobtrombetta/pedal-steel/theory"
)

func eMajorVoicing() []model.NeckPosition {
	return []model.NeckPosition{
		{Pitch: theory.Pitch{Class: 4}, Name: "E", String: 0, Fret: 0},
		{Pitch: theory.Pitch{Class: 8}, Name: "G#", String: 1, Fret: 0},
		{Pitch: theory.Pitch{Class: 11}, Name: "B", String: 2, Fret: 0},
	}
}

func TestCreateVoicingTrack(t *testing.T) {
	s := Create(eMajorVoicing())

	assert := assert.New(t)
	assert.Len(s.Tracks, 1)
	// tempo + 3 note ons + 3 note offs + end of track
	assert.Len(s.Tracks[0], 8)
}

func TestWriteProducesAFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "voicing.mid")
	assert.NoError(t, Write(path, eMajorVoicing()))

	info, err := os.Stat(path)
	assert.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}
