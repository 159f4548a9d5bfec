package theory

import "strings"

// Direction picks the spelling used when a pitch class is rendered as a
// note name. It never affects pitch identity or matching.
type Direction int

const (
	Ascending  Direction = iota // prefer sharps
	Descending                  // prefer flats
)

var sharpNames = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}
var flatNames = [12]string{"C", "Db", "D", "Eb", "E", "F", "Gb", "G", "Ab", "A", "Bb", "B"}

// Pitch is a pitch class (0-11, C == 0) plus a display spelling preference.
// Two pitches are the same note iff their classes match, regardless of
// spelling.
type Pitch struct {
	Class uint8
	Flat  bool
}

// FromClass wraps any semitone value into a pitch class, spelled per
// direction.
func FromClass(v int, direction Direction) Pitch {
	class := uint8(((v % 12) + 12) % 12)
	return Pitch{Class: class, Flat: direction == Descending}
}

func (p Pitch) Name() string {
	if p.Flat {
		return flatNames[p.Class%12]
	}
	return sharpNames[p.Class%12]
}

// Equal compares pitch-class identity only. G# and Ab are equal.
func (p Pitch) Equal(o Pitch) bool {
	return p.Class%12 == o.Class%12
}

// PreferredDirection returns Descending iff any note in the set is spelled
// with a flat.
func PreferredDirection(notes []Pitch) Direction {
	for _, n := range notes {
		if n.Flat {
			return Descending
		}
	}
	return Ascending
}

var letterClass = map[byte]int{
	'A': 9, 'B': 11, 'C': 0, 'D': 2, 'E': 4, 'F': 5, 'G': 7,
}

// Only the spellings that appear on real charts are accepted: no E#, B#,
// Cb or Fb.
var validSharps = "ACDFG"
var validFlats = "ABDEG"

// ParseNote parses a single note token like "F#", "bb" or " Ab ". Case
// insensitive, surrounding whitespace ignored. Returns false for anything
// unrecognized.
func ParseNote(raw string) (Pitch, bool) {
	token := strings.ToUpper(strings.TrimSpace(raw))
	if len(token) == 0 || len(token) > 2 {
		return Pitch{}, false
	}

	class, ok := letterClass[token[0]]
	if !ok {
		return Pitch{}, false
	}
	if len(token) == 1 {
		return Pitch{Class: uint8(class)}, true
	}

	switch token[1] {
	case '#':
		if !strings.ContainsRune(validSharps, rune(token[0])) {
			return Pitch{}, false
		}
		return Pitch{Class: uint8((class + 1) % 12)}, true
	case 'B':
		if !strings.ContainsRune(validFlats, rune(token[0])) {
			return Pitch{}, false
		}
		return Pitch{Class: uint8((class + 11) % 12), Flat: true}, true
	}
	return Pitch{}, false
}
