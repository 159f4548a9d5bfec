package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jacobtrombetta/pedal-steel/theory"
	"github.com/jacobtrombetta/pedal-steel/tuning"
)

func init() {
	rootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:       "list [scales|chords|tunings]",
	Short:     "Lists available scales, chords or preset tunings",
	Long:      `Lists available scales, chords or preset tunings`,
	Args:      cobra.ExactValidArgs(1),
	ValidArgs: []string{"scales", "chords", "tunings"},
	Run: func(cmd *cobra.Command, args []string) {
		switch args[0] {
		case "scales":
			for _, s := range theory.AvailableScales {
				fmt.Println(s)
			}
		case "chords":
			for _, c := range theory.AvailableChords {
				fmt.Println(c)
			}
		case "tunings":
			for _, t := range tuning.PresetNames() {
				fmt.Println(t)
			}
		}
	},
}
