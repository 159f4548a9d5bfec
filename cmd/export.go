package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jacobtrombetta/pedal-steel/copedent"
	"github.com/jacobtrombetta/pedal-steel/midifile"
	"github.com/jacobtrombetta/pedal-steel/model"
	"github.com/jacobtrombetta/pedal-steel/neck"
	"github.com/jacobtrombetta/pedal-steel/theory"
)

var exportTuningName string
var exportTuningNotes string
var exportChordName string
var exportOut string

func init() {
	exportCmd.Flags().StringVar(&exportTuningName, "tuning-name", "", "tuning name (preset or saved)")
	exportCmd.Flags().StringVar(&exportTuningNotes, "tuning", "", "comma separated notes, overrides --tuning-name")
	exportCmd.Flags().StringVar(&exportChordName, "chord", "", `chord, e.g. "E major"`)
	exportCmd.Flags().StringVar(&exportOut, "out", "voicing.mid", "output MIDI file path")
	exportCmd.MarkFlagRequired("chord")
	rootCmd.AddCommand(exportCmd)
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Writes the lowest full-chord voicing as a MIDI file",
	Long:  `Writes the lowest full-chord voicing as a MIDI file`,
	Run: func(cmd *cobra.Command, args []string) {
		g := neck.Guitar{
			Name:   exportTuningName,
			Tuning: resolveTuning(exportTuningNotes, exportTuningName),
		}
		chord, err := theory.ParseChord(exportChordName)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Invalid chord: %v\n", exportChordName)
			os.Exit(1)
		}
		notes := chord.Notes()

		open := []copedent.Position{copedent.Open}
		positions := neck.Identify(g, open, notes)
		full := neck.FretsWithAllChordTones(positions, notes)
		if len(full) == 0 {
			fmt.Println("No fret carries every chord tone for this tuning")
			return
		}

		// full is ordered by ascending fret group, so the first group is
		// the lowest playable voicing.
		var voicing []model.NeckPosition
		for _, pos := range full {
			if pos.Fret != full[0].Fret {
				break
			}
			voicing = append(voicing, pos)
		}

		if err := midifile.Write(exportOut, voicing); err != nil {
			fmt.Fprintf(os.Stderr, "Could not write %v: %v\n", exportOut, err)
			os.Exit(1)
		}
		fmt.Printf("Wrote %v positions at fret %v to %v\n", len(voicing), full[0].Fret, exportOut)
	},
}
