package neck

import (
	"github.com/jacobtrombetta/pedal-steel/copedent"
	"github.com/jacobtrombetta/pedal-steel/model"
	"github.com/jacobtrombetta/pedal-steel/theory"
	"github.com/jacobtrombetta/pedal-steel/tuning"
	"github.com/jacobtrombetta/pedal-steel/util"
)

// FretCount is how far up the neck the engine looks. Everything past fret
// 11 repeats an octave up.
const FretCount = 12

// Guitar is a steel guitar or similar stringed instrument: a name and one
// open pitch per string.
type Guitar struct {
	Name   string
	Tuning []theory.Pitch
}

// NewGuitar builds a guitar from a comma separated note list. Bad tokens
// in the list are dropped, so the guitar may end up with fewer strings
// than intended.
func NewGuitar(name, notes string) Guitar {
	return Guitar{Name: name, Tuning: tuning.Parse(notes)}
}

// Generate computes the pitch sounding at every (string, fret) cell for
// the given tuning and per-string offset vector. Offsets can exceed 11;
// the pitch lookup wraps. Only strings present in both the tuning and the
// offset vector are produced, so a short tuning never panics.
func Generate(tun []theory.Pitch, offsets []int, direction theory.Direction) [][]theory.Pitch {
	n := util.Min(len(tun), len(offsets))
	grid := make([][]theory.Pitch, 0, n)
	for i := 0; i < n; i++ {
		row := make([]theory.Pitch, FretCount)
		for j := 0; j < FretCount; j++ {
			row[j] = theory.FromClass(int(tun[i].Class)+offsets[i]+j, direction)
		}
		grid = append(grid, row)
	}
	return grid
}

// Locate scans the grid string by string, fret by fret, and returns every
// cell whose pitch class matches a target note. Matching ignores spelling:
// a G# cell matches an Ab target.
func Locate(grid [][]theory.Pitch, notes []theory.Pitch) []model.NeckPosition {
	var positions []model.NeckPosition
	for i, row := range grid {
		for j, pitch := range row {
			for _, note := range notes {
				if note.Equal(pitch) {
					positions = append(positions, model.NeckPosition{
						Pitch:  pitch,
						Name:   pitch.Name(),
						String: i,
						Fret:   j,
					})
					break
				}
			}
		}
	}
	return positions
}

// Identify finds every cell on the guitar's neck sounding one of the
// target notes while the given pedal/lever positions are engaged.
func Identify(g Guitar, positions []copedent.Position, notes []theory.Pitch) []model.NeckPosition {
	direction := theory.PreferredDirection(notes)
	offsets := copedent.Compose(positions)
	grid := Generate(g.Tuning, offsets, direction)
	return Locate(grid, notes)
}

// FretsWithAllChordTones keeps only the cells at frets where every chord
// tone sounds somewhere across the strings. Extra tones and doubled tones
// at a fret do not disqualify it. Fret groups come back in ascending fret
// order, cells within a group in scan order.
func FretsWithAllChordTones(positions []model.NeckPosition, chordTones []theory.Pitch) []model.NeckPosition {
	byFret := make(map[int][]model.NeckPosition)
	for _, pos := range positions {
		byFret[pos.Fret] = append(byFret[pos.Fret], pos)
	}

	var res []model.NeckPosition
	for _, fret := range util.GetKeysSorted(byFret) {
		group := byFret[fret]
		present := make(map[uint8]bool)
		for _, pos := range group {
			present[pos.Pitch.Class%12] = true
		}
		complete := true
		for _, tone := range chordTones {
			if !present[tone.Class%12] {
				complete = false
				break
			}
		}
		if complete {
			res = append(res, group...)
		}
	}
	return res
}
