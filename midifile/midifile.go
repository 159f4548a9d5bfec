package midifile

import (
	"os"

	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"

	"github.com/jacobtrombetta/pedal-steel/model"
)

// basePitch anchors exported voicings around C3. Octave placement is
// cosmetic; only the pitch classes matter to the engine.
const basePitch = 48

const ticksPerQuarter = 960

const voicingTicks = ticksPerQuarter * 2 // hold the voicing for a half note

func key(pos model.NeckPosition) uint8 {
	return basePitch + uint8(pos.Pitch.Class%12)
}

// Create builds a one-track MIDI file sounding the given voicing: every
// cell's pitch starts together and is held for a half note.
func Create(positions []model.NeckPosition) *smf.SMF {
	var s smf.SMF
	s.TimeFormat = smf.MetricTicks(ticksPerQuarter)

	var track smf.Track
	track = append(track, smf.Event{Delta: 0, Message: smf.MetaTempo(120)})

	for _, pos := range positions {
		track = append(track, smf.Event{
			Delta:   0,
			Message: smf.Message(midi.NoteOn(0, key(pos), 100)),
		})
	}
	for i, pos := range positions {
		var delta uint32
		if i == 0 {
			delta = voicingTicks
		}
		track = append(track, smf.Event{
			Delta:   delta,
			Message: smf.Message(midi.NoteOff(0, key(pos))),
		})
	}
	track.Close(0)

	s.Tracks = append(s.Tracks, track)
	return &s
}

// Write saves a voicing as a MIDI file at path.
func Write(path string, positions []model.NeckPosition) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = Create(positions).WriteTo(f)
	return err
}
