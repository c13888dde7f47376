//nolint:funlen // ok for tests
package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/startrack/startrack-sim-go/pkg/model"
)

func doRequest(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	rec := httptest.NewRecorder()
	NewServer().Mux().ServeHTTP(rec, req)
	return rec
}

func inlineCircuit() model.Circuit {
	return model.Circuit{
		Name: "test",
		Segments: []model.CircuitSegment{
			{ID: "s1", Kind: model.SegmentStraight, Length: 500, Radius: 0},
			{ID: "s2", Kind: model.SegmentCorner, Length: 100, Radius: 40},
		},
	}
}

func TestHealth(t *testing.T) {
	rec := doRequest(t, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestRoot(t *testing.T) {
	rec := doRequest(t, http.MethodGet, "/", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "active", body["status"])
	assert.NotEmpty(t, body["disclaimer"])
}

func TestTracks(t *testing.T) {
	rec := doRequest(t, http.MethodGet, "/api/v1/tracks", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	var tracks []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &tracks))
	assert.Len(t, tracks, 3)
}

func TestTrackByID(t *testing.T) {
	rec := doRequest(t, http.MethodGet, "/api/v1/tracks/monaco", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, http.MethodGet, "/api/v1/tracks/unknown", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestTires(t *testing.T) {
	rec := doRequest(t, http.MethodGet, "/api/v1/tires", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	var tires []model.TireCompound
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &tires))
	assert.Len(t, tires, 5)
}

func TestSimulateLap(t *testing.T) {
	rec := doRequest(t, http.MethodPost, "/api/v1/simulation/lap", lapRequest{
		Circuit:      inlineCircuit(),
		TireCompound: "hard",
		Weather:      "dry",
		LapNumber:    1,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var result model.LapResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, 1, result.LapNumber)
	assert.Positive(t, result.LapTime)
	assert.Len(t, result.Telemetry, 2)
	assert.Len(t, result.SectorTimes, 3)
}

func TestSimulateLap_TrackTemplate(t *testing.T) {
	rec := doRequest(t, http.MethodPost, "/api/v1/simulation/lap", lapRequest{
		TrackID: "monaco",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var result model.LapResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Len(t, result.Telemetry, 10)
}

func TestSimulateLap_EmptyCircuit(t *testing.T) {
	rec := doRequest(t, http.MethodPost, "/api/v1/simulation/lap", lapRequest{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSimulateLap_BadSegment(t *testing.T) {
	circuit := inlineCircuit()
	circuit.Segments[0].Length = -5
	rec := doRequest(t, http.MethodPost, "/api/v1/simulation/lap",
		lapRequest{Circuit: circuit})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSimulateRace(t *testing.T) {
	rec := doRequest(t, http.MethodPost, "/api/v1/simulation/race", raceRequest{
		Circuit: inlineCircuit(),
		Strategy: model.RaceStrategy{
			TotalLaps:    3,
			StartingTire: "soft",
			StartingFuel: 100,
			PitStops:     []model.PitStop{{Lap: 2, Tire: "hard"}},
		},
		Weather: "dry",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp raceResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.RunID)
	require.Len(t, resp.Results, 3)
	assert.True(t, resp.Results[1].PitStop)
}

func TestSimulateRace_InvalidStrategy(t *testing.T) {
	rec := doRequest(t, http.MethodPost, "/api/v1/simulation/race", raceRequest{
		Circuit:  inlineCircuit(),
		Strategy: model.RaceStrategy{TotalLaps: 0},
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doRequest(t, http.MethodPost, "/api/v1/simulation/race", raceRequest{
		Circuit: inlineCircuit(),
		Strategy: model.RaceStrategy{
			TotalLaps: 3,
			PitStops:  []model.PitStop{{Lap: 7, Tire: "hard"}},
		},
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCompare(t *testing.T) {
	strategy := model.RaceStrategy{TotalLaps: 2, StartingTire: "soft", StartingFuel: 100}
	rec := doRequest(t, http.MethodPost, "/api/v1/simulation/compare", compareRequest{
		Circuit:   inlineCircuit(),
		StrategyA: strategy,
		StrategyB: strategy,
		Weather:   "dry",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var comparison model.StrategyComparison
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &comparison))
	assert.Equal(t, "B", comparison.Winner)
}

func TestOptimalLine(t *testing.T) {
	rec := doRequest(t, http.MethodPost, "/api/v1/simulation/line", lineRequest{
		TrackID: "monaco",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp lineResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.Apexes, 5)
}

func TestRecommend(t *testing.T) {
	rec := doRequest(t, http.MethodPost, "/api/v1/strategy/recommend", recommendRequest{
		TrackID:   "spa",
		TotalLaps: 10,
		Weather:   "dry",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var recommendation model.StrategyRecommendation
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &recommendation))
	require.Len(t, recommendation.PitStops, 1)
	assert.Equal(t, model.PitStop{Lap: 5, Tire: "hard"}, recommendation.PitStops[0])
}

func TestRecommend_InvalidLaps(t *testing.T) {
	rec := doRequest(t, http.MethodPost, "/api/v1/strategy/recommend", recommendRequest{
		TrackID:   "spa",
		TotalLaps: 0,
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
