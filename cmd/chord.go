package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jacobtrombetta/pedal-steel/copedent"
	"github.com/jacobtrombetta/pedal-steel/neck"
	"github.com/jacobtrombetta/pedal-steel/render"
	"github.com/jacobtrombetta/pedal-steel/theory"
)

var chordTuningName string
var chordTuningNotes string
var chordName string

func init() {
	chordCmd.Flags().StringVar(&chordTuningName, "tuning-name", "", "tuning name (preset or saved)")
	chordCmd.Flags().StringVar(&chordTuningNotes, "tuning", "", "comma separated notes, overrides --tuning-name")
	chordCmd.Flags().StringVar(&chordName, "chord", "", `chord, e.g. "E major seventh"`)
	chordCmd.MarkFlagRequired("chord")
	rootCmd.AddCommand(chordCmd)
}

var chordCmd = &cobra.Command{
	Use:   "chord",
	Short: "Shows chord positions for every pedal/lever combination",
	Long:  `Shows chord positions for every pedal/lever combination`,
	Run: func(cmd *cobra.Command, args []string) {
		g := neck.Guitar{
			Name:   chordTuningName,
			Tuning: resolveTuning(chordTuningNotes, chordTuningName),
		}
		chord, err := theory.ParseChord(chordName)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Invalid chord: %v\n", chordName)
			os.Exit(1)
		}
		notes := chord.Notes()
		for _, combo := range copedent.PossiblePositions() {
			positions := neck.Identify(g, combo, notes)
			fmt.Print(render.Neck(g, positions, copedent.Name(combo)))
			full := neck.FretsWithAllChordTones(positions, notes)
			fmt.Print(render.Neck(g, full, copedent.Name(combo)))
		}
	},
}
