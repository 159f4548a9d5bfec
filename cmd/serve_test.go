package cmd

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jacobtrombetta/pedal-steel/model"
)

func postSearch(t *testing.T, body io.Reader) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/search", body)
	w := httptest.NewRecorder()
	HandleSearch(w, req)
	return w.Result()
}

func searchBody(t *testing.T, tuning string, chord string) io.Reader {
	t.Helper()
	data, err := json.Marshal(model.SearchRequestBody{Tuning: tuning, Chord: chord})
	assert.NoError(t, err)
	return bytes.NewReader(data)
}

func TestHandleSearchEMajor(t *testing.T) {
	resp := postSearch(t, searchBody(t, "E, G#, B", "E major"))

	assert := assert.New(t)
	assert.Equal(200, resp.StatusCode)

	var res model.SearchResponse
	assert.NoError(json.NewDecoder(resp.Body).Decode(&res))

	assert.NotEmpty(res.RequestId)
	assert.Equal("E major", res.Chord)
	assert.Equal([]string{"E", "G#", "B"}, res.Notes)
	assert.Len(res.Results, 16)

	open := res.Results[0]
	assert.Equal("Open", open.Position)
	assert.Len(open.FullFrets, 3)
	for i, pos := range open.FullFrets {
		assert.Equal(i, pos.String)
		assert.Equal(0, pos.Fret)
	}
}

func TestHandleSearchResolvesPresetTuning(t *testing.T) {
	resp := postSearch(t, searchBody(t, "E9", "E major"))

	assert := assert.New(t)
	assert.Equal(200, resp.StatusCode)

	var res model.SearchResponse
	assert.NoError(json.NewDecoder(resp.Body).Decode(&res))
	assert.NotEmpty(res.Results[0].Matches)
}

func TestHandleSearchInvalidChord(t *testing.T) {
	resp := postSearch(t, searchBody(t, "E, G#, B", "E wrong"))

	assert := assert.New(t)
	assert.Equal(400, resp.StatusCode)

	var errRes model.ErrorResponse
	assert.NoError(json.NewDecoder(resp.Body).Decode(&errRes))
	assert.Contains(errRes.Error, "invalid chord")
}

func TestHandleSearchUnparseableTuning(t *testing.T) {
	resp := postSearch(t, searchBody(t, "Xb, BD", "E major"))
	assert.Equal(t, 400, resp.StatusCode)
}

func TestHandleSearchMalformedBody(t *testing.T) {
	resp := postSearch(t, strings.NewReader("{not json"))
	assert.Equal(t, 400, resp.StatusCode)
}
