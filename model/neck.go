package model

import "github.com/jacobtrombetta/pedal-steel/theory"

// NeckPosition is one cell on the neck whose pitch matched a queried note
// set. String is 0-indexed (string 1 on the chart is String 0 here), Fret
// is 0-11.
type NeckPosition struct {
	Pitch  theory.Pitch `json:"-"`
	Name   string       `json:"note"`
	String int          `json:"string"`
	Fret   int          `json:"fret"`
}
