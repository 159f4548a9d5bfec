package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jacobtrombetta/pedal-steel/db"
	"github.com/jacobtrombetta/pedal-steel/theory"
	"github.com/jacobtrombetta/pedal-steel/tuning"
)

var rootCmd = &cobra.Command{
	Use:   "pedal-steel",
	Short: "Pedal steel neck and copedent explorer",
	Long:  `Finds chord and scale positions on a pedal steel neck across pedal and lever combinations.`,
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

// resolveTuning turns CLI flags into string pitches: explicit notes win,
// then preset names, then the saved-tunings store.
func resolveTuning(notes string, name string) []theory.Pitch {
	if notes != "" {
		return tuning.Parse(notes)
	}
	if pitches, ok := tuning.Preset(name); ok {
		return pitches
	}
	if saved, ok := db.GetTuning(name); ok {
		return tuning.Parse(saved)
	}
	fmt.Fprintf(os.Stderr, "Unknown tuning: %v\n", name)
	os.Exit(1)
	return nil
}
