package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/spf13/cobra"

	"github.com/jacobtrombetta/pedal-steel/copedent"
	"github.com/jacobtrombetta/pedal-steel/model"
	"github.com/jacobtrombetta/pedal-steel/neck"
	"github.com/jacobtrombetta/pedal-steel/theory"
	"github.com/jacobtrombetta/pedal-steel/tuning"
)

var serveAddr string

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8080", "listen address")
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the chord position search API",
	Long:  `Serves the chord position search API`,
	Run: func(cmd *cobra.Command, args []string) {
		serve()
	},
}

func writeError(w http.ResponseWriter, status int, detail string) {
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(model.ErrorResponse{Error: detail})
}

// HandleSearch answers POST /search: a tuning (note list or preset name)
// plus a chord name in, matched neck positions per pedal/lever combination
// out.
func HandleSearch(w http.ResponseWriter, r *http.Request) {
	reqBody, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, 400, "could not read request body")
		return
	}

	var input model.SearchRequestBody
	if err := json.Unmarshal(reqBody, &input); err != nil {
		writeError(w, 400, "could not parse request body: "+err.Error())
		return
	}

	pitches := tuning.Parse(input.Tuning)
	if len(pitches) == 0 {
		if preset, ok := tuning.Preset(input.Tuning); ok {
			pitches = preset
		} else {
			writeError(w, 400, "no playable strings in tuning: "+input.Tuning)
			return
		}
	}

	chord, err := theory.ParseChord(input.Chord)
	if err != nil {
		writeError(w, 400, "invalid chord: "+input.Chord)
		return
	}
	notes := chord.Notes()

	g := neck.Guitar{Name: input.Tuning, Tuning: pitches}
	res := model.SearchResponse{
		RequestId: uuid.New().String(),
		Chord:     input.Chord,
	}
	for _, n := range notes {
		res.Notes = append(res.Notes, n.Name())
	}
	for _, combo := range copedent.PossiblePositions() {
		positions := neck.Identify(g, combo, notes)
		res.Results = append(res.Results, model.PositionResult{
			Position:  copedent.Name(combo),
			Matches:   positions,
			FullFrets: neck.FretsWithAllChordTones(positions, notes),
		})
	}

	json.NewEncoder(w).Encode(res)
}

func serve() {
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/search", HandleSearch).Methods("POST")
	handler := cors.Default().Handler(router)
	fmt.Printf("Listening on %v\n", serveAddr)
	log.Fatal(http.ListenAndServe(serveAddr, handler))
}
