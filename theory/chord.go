package theory

import (
	"errors"
	"strings"
)

// Chord and scale qualities are interval formulas in semitones above the
// root. Extensions past the octave fold back to pitch-class identity when
// the notes are generated.

var chordIntervals = map[string][]int{
	"major":                   {0, 4, 7},
	"major triad":             {0, 4, 7},
	"minor":                   {0, 3, 7},
	"minor triad":             {0, 3, 7},
	"suspended2":              {0, 2, 7},
	"suspended2 triad":        {0, 2, 7},
	"sus2":                    {0, 2, 7},
	"suspended4":              {0, 5, 7},
	"suspended4 triad":        {0, 5, 7},
	"sus4":                    {0, 5, 7},
	"augmented":               {0, 4, 8},
	"augmented triad":         {0, 4, 8},
	"diminished":              {0, 3, 6},
	"diminished triad":        {0, 3, 6},
	"major seventh":           {0, 4, 7, 11},
	"minor seventh":           {0, 3, 7, 10},
	"augmented seventh":       {0, 4, 8, 10},
	"augmented major seventh": {0, 4, 8, 11},
	"diminished seventh":      {0, 3, 6, 9},
	"half diminished seventh": {0, 3, 6, 10},
	"minor major seventh":     {0, 3, 7, 11},
	"dominant seventh":        {0, 4, 7, 10},
	"dominant ninth":          {0, 4, 7, 10, 14},
	"major ninth":             {0, 4, 7, 11, 14},
	"dominant eleventh":       {0, 4, 7, 10, 14, 17},
	"major eleventh":          {0, 4, 7, 11, 14, 17},
	"minor eleventh":          {0, 3, 7, 10, 14, 17},
	"dominant thirteenth":     {0, 4, 7, 10, 14, 17, 21},
	"major thirteenth":        {0, 4, 7, 11, 14, 17, 21},
	"minor thirteenth":        {0, 3, 7, 10, 14, 17, 21},
}

var scaleIntervals = map[string][]int{
	"major":            {0, 2, 4, 5, 7, 9, 11},
	"ionian":           {0, 2, 4, 5, 7, 9, 11},
	"minor":            {0, 2, 3, 5, 7, 8, 10},
	"aeolian":          {0, 2, 3, 5, 7, 8, 10},
	"dorian":           {0, 2, 3, 5, 7, 9, 10},
	"phrygian":         {0, 1, 3, 5, 7, 8, 10},
	"lydian":           {0, 2, 4, 6, 7, 9, 11},
	"mixolydian":       {0, 2, 4, 5, 7, 9, 10},
	"locrian":          {0, 1, 3, 5, 6, 8, 10},
	"harmonic minor":   {0, 2, 3, 5, 7, 8, 11},
	"melodic minor":    {0, 2, 3, 5, 7, 9, 11},
	"pentatonic major": {0, 2, 4, 7, 9},
	"pentatonic minor": {0, 3, 5, 7, 10},
	"blues":            {0, 3, 5, 6, 7, 10},
	"chromatic":        {0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11},
	"whole tone":       {0, 2, 4, 6, 8, 10},
}

// AvailableScales lists the scale names the engine understands, for the
// list subcommand.
var AvailableScales = []string{
	"Major|Ionian",
	"Minor|Aeolian",
	"Dorian",
	"Phrygian",
	"Lydian",
	"Mixolydian",
	"Locrian",
	"Harmonic Minor",
	"Melodic Minor",
	"Pentatonic Major",
	"Pentatonic Minor",
	"Blues",
	"Chromatic",
	"Whole Tone",
}

// AvailableChords lists the chord qualities the engine understands.
var AvailableChords = []string{
	"Major Triad",
	"Minor Triad",
	"Suspended2 Triad",
	"Suspended4 Triad",
	"Augmented Triad",
	"Diminished Triad",
	"Major Seventh",
	"Minor Seventh",
	"Augmented Seventh",
	"Augmented Major Seventh",
	"Diminished Seventh",
	"Half Diminished Seventh",
	"Minor Major Seventh",
	"Dominant Seventh",
	"Dominant Ninth",
	"Major Ninth",
	"Dominant Eleventh",
	"Major Eleventh",
	"Minor Eleventh",
	"Dominant Thirteenth",
	"Major Thirteenth",
	"Minor Thirteenth",
}

type Chord struct {
	Root      Pitch
	Quality   string
	intervals []int
}

type Scale struct {
	Root      Pitch
	Mode      string
	intervals []int
}

// Notes returns the chord's constituent pitch classes. Spelling follows
// the root: a flat root yields flat-spelled tones.
func (c Chord) Notes() []Pitch {
	return notesFrom(c.Root, c.intervals)
}

// Notes returns the scale's constituent pitch classes.
func (s Scale) Notes() []Pitch {
	return notesFrom(s.Root, s.intervals)
}

func notesFrom(root Pitch, intervals []int) []Pitch {
	direction := Ascending
	if root.Flat {
		direction = Descending
	}
	notes := make([]Pitch, 0, len(intervals))
	for _, iv := range intervals {
		notes = append(notes, FromClass(int(root.Class)+iv, direction))
	}
	return notes
}

// splitRoot peels the leading note token ("Eb", "F#", "c") off an
// identifier like "Eb minor seventh" and normalizes the remainder.
func splitRoot(id string) (Pitch, string, bool) {
	fields := strings.Fields(strings.TrimSpace(id))
	if len(fields) == 0 {
		return Pitch{}, "", false
	}
	root, ok := ParseNote(fields[0])
	if !ok {
		return Pitch{}, "", false
	}
	rest := strings.ToLower(strings.Join(fields[1:], " "))
	return root, rest, true
}

// ParseChord parses identifiers like "E major" or "c# half diminished
// seventh". A bare root means a major triad.
func ParseChord(id string) (Chord, error) {
	root, rest, ok := splitRoot(id)
	if !ok {
		return Chord{}, errors.New("unrecognized chord root in: " + id)
	}
	if rest == "" {
		rest = "major"
	}
	intervals, ok := chordIntervals[rest]
	if !ok {
		return Chord{}, errors.New("unrecognized chord quality: " + rest)
	}
	return Chord{Root: root, Quality: rest, intervals: intervals}, nil
}

// ParseScale parses identifiers like "C major" or "a harmonic minor".
func ParseScale(id string) (Scale, error) {
	root, rest, ok := splitRoot(id)
	if !ok {
		return Scale{}, errors.New("unrecognized scale root in: " + id)
	}
	if rest == "" {
		rest = "major"
	}
	intervals, ok := scaleIntervals[rest]
	if !ok {
		return Scale{}, errors.New("unrecognized scale mode: " + rest)
	}
	return Scale{Root: root, Mode: rest, intervals: intervals}, nil
}
