package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jacobtrombetta/pedal-steel/copedent"
	"github.com/jacobtrombetta/pedal-steel/model"
	"github.com/jacobtrombetta/pedal-steel/neck"
	"github.com/jacobtrombetta/pedal-steel/theory"
	"github.com/jacobtrombetta/pedal-steel/tuning"
)

func TestTuningListsStringsFromOne(t *testing.T) {
	out := Tuning(tuning.Parse("F#, D#, G#"))
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")

	assert := assert.New(t)
	assert.Len(lines, 3)
	assert.Equal(" 1 F#", lines[0])
	assert.Equal(" 2 D#", lines[1])
	assert.Equal(" 3 G#", lines[2])
}

func TestCopedentChartShape(t *testing.T) {
	out := Copedent()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")

	assert := assert.New(t)
	// header plus one row per string
	assert.Len(lines, copedent.NumStrings+1)
	assert.Contains(lines[0], "LKL")
	assert.NotContains(lines[0], "Open")
	// pedal A raises string 10 a whole tone
	assert.Contains(lines[10], "++")
	// LKV lowers string 5 a half tone
	assert.Contains(lines[5], "-")
}

func TestNeckTablePlacesMatches(t *testing.T) {
	g := neck.Guitar{Name: "Test Guitar", Tuning: tuning.Parse("E")}
	positions := []model.NeckPosition{
		{Pitch: theory.Pitch{Class: 4}, Name: "E", String: 0, Fret: 0},
		{Pitch: theory.Pitch{Class: 8}, Name: "G#", String: 0, Fret: 4},
	}

	out := Neck(g, positions, "Open")
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")

	assert := assert.New(t)
	assert.Equal("Test Guitar", lines[0])
	assert.Equal(" Open", lines[1])
	assert.Contains(lines[2], "11")
	row := lines[3]
	assert.Equal("  E -- -- -- G# -- -- -- -- -- -- --", row)
}

func TestNeckTableEmptyMatches(t *testing.T) {
	g := neck.Guitar{Name: "Test Guitar", Tuning: tuning.Parse("E, A")}
	out := Neck(g, nil, "A & B")

	assert := assert.New(t)
	assert.Contains(out, " A & B\n")
	assert.Equal(2, strings.Count(out, strings.Repeat(" --", neck.FretCount)))
}
