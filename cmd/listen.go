package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"sync"
	"time"

	"github.com/bep/debounce"
	"github.com/spf13/cobra"
	"gitlab.com/gomidi/midi/v2"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv" // autoregisters driver

	"github.com/jacobtrombetta/pedal-steel/copedent"
	"github.com/jacobtrombetta/pedal-steel/neck"
	"github.com/jacobtrombetta/pedal-steel/render"
	"github.com/jacobtrombetta/pedal-steel/theory"
	"github.com/jacobtrombetta/pedal-steel/util"
)

var listenTuningName string
var listenTuningNotes string

func init() {
	listenCmd.Flags().StringVar(&listenTuningName, "tuning-name", "E9", "tuning name (preset or saved)")
	listenCmd.Flags().StringVar(&listenTuningNotes, "tuning", "", "comma separated notes, overrides --tuning-name")
	rootCmd.AddCommand(listenCmd)
}

var listenCmd = &cobra.Command{
	Use:   "listen",
	Short: "Listens to a MIDI input and shows where the held notes live on the neck",
	Long:  `Listens to a MIDI input and shows where the held notes live on the neck`,
	Run: func(cmd *cobra.Command, args []string) {
		listen()
	},
}

func listen() {
	defer midi.CloseDriver()

	in, err := midi.InPort(0)
	if err != nil {
		fmt.Println("no MIDI input port found")
		return
	}

	g := neck.Guitar{
		Name:   listenTuningName,
		Tuning: resolveTuning(listenTuningNotes, listenTuningName),
	}

	var mu sync.Mutex
	held := make(map[uint8]bool)

	// Every key change retriggers a search; debouncing keeps fast chord
	// rolls from printing a table per key.
	debounced := debounce.New(50 * time.Millisecond)
	search := func() {
		mu.Lock()
		var notes []theory.Pitch
		for _, key := range util.GetKeysSorted(held) {
			notes = append(notes, theory.FromClass(int(key%12), theory.Ascending))
		}
		mu.Unlock()

		if len(notes) == 0 {
			return
		}
		for _, combo := range copedent.PossiblePositions() {
			positions := neck.Identify(g, combo, notes)
			full := neck.FretsWithAllChordTones(positions, notes)
			if len(full) > 0 {
				fmt.Print(render.Neck(g, full, copedent.Name(combo)))
			}
		}
	}

	stop, err := midi.ListenTo(in, func(msg midi.Message, timestampms int32) {
		var ch, key, vel uint8
		switch {
		case msg.GetNoteStart(&ch, &key, &vel):
			mu.Lock()
			held[key] = true
			mu.Unlock()
			debounced(search)
		case msg.GetNoteEnd(&ch, &key):
			mu.Lock()
			delete(held, key)
			mu.Unlock()
			debounced(search)
		}
	})
	if err != nil {
		fmt.Printf("ERROR: %s\n", err)
		return
	}

	fmt.Printf("Listening on %v, tuning %v\n", in.String(), g.Name)
	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, os.Interrupt)
	<-sigc
	stop()
}
