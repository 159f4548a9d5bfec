package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jacobtrombetta/pedal-steel/render"
)

func init() {
	rootCmd.AddCommand(copedentCmd)
}

var copedentCmd = &cobra.Command{
	Use:   "copedent",
	Short: "Prints the copedent chart",
	Long:  `Prints the copedent chart`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Print(render.Copedent())
	},
}
