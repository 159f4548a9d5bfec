package render

import (
	"fmt"
	"strings"

	"github.com/jacobtrombetta/pedal-steel/copedent"
	"github.com/jacobtrombetta/pedal-steel/model"
	"github.com/jacobtrombetta/pedal-steel/neck"
	"github.com/jacobtrombetta/pedal-steel/theory"
)

// Tuning renders a numbered string list, string 1 first.
func Tuning(tun []theory.Pitch) string {
	var b strings.Builder
	for i, p := range tun {
		fmt.Fprintf(&b, "%2v %v\n", i+1, p.Name())
	}
	return b.String()
}

func changeSymbol(semitones int) string {
	switch semitones {
	case 2:
		return " ++"
	case 1:
		return "  +"
	case -1:
		return "  -"
	case -2:
		return " --"
	}
	return "   "
}

// Copedent renders the pedal/lever chart: one column per position, one row
// per string, +/- symbols for raises and lowers.
func Copedent() string {
	var b strings.Builder

	fmt.Fprintf(&b, "%4v", "")
	for _, pos := range copedent.AllPositions {
		if pos != copedent.Open {
			fmt.Fprintf(&b, "%4v", pos.String())
		}
	}
	b.WriteString("\n")

	for s := 1; s <= copedent.NumStrings; s++ {
		fmt.Fprintf(&b, "%4v", s)
		for _, pos := range copedent.AllPositions {
			if pos == copedent.Open {
				continue
			}
			symbol := "   "
			for _, ch := range copedent.Changes(pos) {
				if ch.String == s {
					symbol = changeSymbol(ch.Semitones)
				}
			}
			fmt.Fprintf(&b, "%4v", symbol)
		}
		b.WriteString("\n")
	}
	return b.String()
}

// Neck renders a 12-fret table of matched cells for one position
// combination, "--" where nothing matched.
func Neck(g neck.Guitar, positions []model.NeckPosition, header string) string {
	var b strings.Builder
	b.WriteString(g.Name + "\n")
	if header != "" {
		b.WriteString(" " + header + "\n")
	}
	for j := 0; j < neck.FretCount; j++ {
		fmt.Fprintf(&b, "%2v ", j)
	}
	b.WriteString("\n")

	for i := range g.Tuning {
		for j := 0; j < neck.FretCount; j++ {
			name := " --"
			for _, pos := range positions {
				if pos.String == i && pos.Fret == j {
					name = fmt.Sprintf("%3v", pos.Name)
					break
				}
			}
			b.WriteString(name)
		}
		b.WriteString("\n")
	}
	return b.String()
}
