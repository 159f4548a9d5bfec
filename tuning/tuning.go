package tuning

import (
	"sort"
	"strings"

	"github.com/jacobtrombetta/pedal-steel/theory"
)

// Parse turns a comma separated note list like "F#, D#, G#, E, B" into
// pitches, one per string, low string number first. Unrecognized tokens
// are dropped silently, so the result can be shorter than the input.
func Parse(notes string) []theory.Pitch {
	var pitches []theory.Pitch
	for _, raw := range strings.Split(notes, ",") {
		if p, ok := theory.ParseNote(raw); ok {
			pitches = append(pitches, p)
		}
	}
	return pitches
}

// Common factory tunings, keyed by the name players use for them.
var presets = map[string]string{
	"E9": "F#, D#, G#, E, B, G#, F#, E, D, B",
	"C6": "D, E, C, A, G, E, C, A, F, C",
	"A6": "E, C#, A, F#, E, C#, A, F#",
}

// Preset resolves a named factory tuning. Name match is case insensitive.
func Preset(name string) ([]theory.Pitch, bool) {
	notes, ok := presets[strings.ToUpper(strings.TrimSpace(name))]
	if !ok {
		return nil, false
	}
	return Parse(notes), true
}

// PresetNames returns the known preset names for display.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
