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

var scaleTuningName string
var scaleTuningNotes string
var scaleName string

func init() {
	scaleCmd.Flags().StringVar(&scaleTuningName, "tuning-name", "", "tuning name (preset or saved)")
	scaleCmd.Flags().StringVar(&scaleTuningNotes, "tuning", "", "comma separated notes, overrides --tuning-name")
	scaleCmd.Flags().StringVar(&scaleName, "scale", "", `scale, e.g. "E major"`)
	scaleCmd.MarkFlagRequired("scale")
	rootCmd.AddCommand(scaleCmd)
}

var scaleCmd = &cobra.Command{
	Use:   "scale",
	Short: "Shows a scale's notes on the neck for a tuning",
	Long:  `Shows a scale's notes on the neck for a tuning`,
	Run: func(cmd *cobra.Command, args []string) {
		g := neck.Guitar{
			Name:   scaleTuningName,
			Tuning: resolveTuning(scaleTuningNotes, scaleTuningName),
		}
		scale, err := theory.ParseScale(scaleName)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Invalid scale: %v\n", scaleName)
			os.Exit(1)
		}
		open := []copedent.Position{copedent.Open}
		positions := neck.Identify(g, open, scale.Notes())
		fmt.Print(render.Neck(g, positions, copedent.Name(open)))
	},
}
