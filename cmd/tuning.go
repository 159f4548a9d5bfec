package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jacobtrombetta/pedal-steel/db"
	"github.com/jacobtrombetta/pedal-steel/render"
	"github.com/jacobtrombetta/pedal-steel/tuning"
)

var tuningNotes string
var tuningSaveName string

func init() {
	tuningCmd.Flags().StringVar(&tuningNotes, "notes", "", `comma separated notes, e.g. "F#, D#, G#, E, B, G#, F#, E, D, B"`)
	tuningCmd.Flags().StringVar(&tuningSaveName, "save", "", "save the tuning under this name")
	tuningCmd.MarkFlagRequired("notes")
	rootCmd.AddCommand(tuningCmd)
}

var tuningCmd = &cobra.Command{
	Use:   "tuning",
	Short: "Prints a tuning, one line per string",
	Long:  `Prints a tuning, one line per string`,
	Run: func(cmd *cobra.Command, args []string) {
		pitches := tuning.Parse(tuningNotes)
		fmt.Print(render.Tuning(pitches))
		if tuningSaveName != "" {
			db.PutTuning(tuningSaveName, tuningNotes)
			fmt.Printf("Saved tuning %v\n", tuningSaveName)
		}
	},
}
