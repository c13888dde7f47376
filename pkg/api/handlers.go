package api

import (
	"encoding/json"
	"net/http"

	"github.com/gofrs/uuid/v5"

	"github.com/startrack/startrack-sim-go/log"
	"github.com/startrack/startrack-sim-go/pkg/catalog"
	"github.com/startrack/startrack-sim-go/pkg/model"
	"github.com/startrack/startrack-sim-go/pkg/simulation/strategy"
)

//nolint:tagliatelle // wire format of the original API
type (
	lapRequest struct {
		Circuit      model.Circuit `json:"circuit"`
		TrackID      string        `json:"track_id"`
		TireCompound string        `json:"tire_compound"`
		Weather      string        `json:"weather"`
		LapNumber    int           `json:"lap_number"`
	}
	raceRequest struct {
		Circuit  model.Circuit      `json:"circuit"`
		TrackID  string             `json:"track_id"`
		Strategy model.RaceStrategy `json:"strategy"`
		Weather  string             `json:"weather"`
	}
	raceResponse struct {
		RunID   string                `json:"run_id"`
		Results []model.RaceLapResult `json:"results"`
	}
	compareRequest struct {
		Circuit   model.Circuit      `json:"circuit"`
		TrackID   string             `json:"track_id"`
		StrategyA model.RaceStrategy `json:"strategy_a"`
		StrategyB model.RaceStrategy `json:"strategy_b"`
		Weather   string             `json:"weather"`
	}
	lineRequest struct {
		Circuit      model.Circuit `json:"circuit"`
		TrackID      string        `json:"track_id"`
		TireCompound string        `json:"tire_compound"`
	}
	lineResponse struct {
		Apexes []model.ApexPoint `json:"apexes"`
	}
	recommendRequest struct {
		Circuit   model.Circuit `json:"circuit"`
		TrackID   string        `json:"track_id"`
		TotalLaps int           `json:"total_laps"`
		Weather   string        `json:"weather"`
	}
	errorResponse struct {
		Error string `json:"error"`
	}
)

func (s *Server) handleRoot(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{
		"message":    "Welcome to the StarTrack simulation API",
		"disclaimer": disclaimer,
		"status":     "active",
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleTracks(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, catalog.TrackPreviews(r.Context()))
}

func (s *Server) handleTrack(w http.ResponseWriter, r *http.Request) {
	track, ok := catalog.Track(r.PathValue("id"))
	if !ok {
		s.writeError(w, http.StatusNotFound, ErrUnknownTrack)
		return
	}
	s.writeJSON(w, http.StatusOK, track)
}

func (s *Server) handleTires(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, catalog.Tires())
}

func (s *Server) handleSimulateLap(w http.ResponseWriter, r *http.Request) {
	var req lapRequest
	if !s.decode(w, r, &req) {
		return
	}
	segments, err := s.resolveCircuit(req.Circuit, req.TrackID)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}
	_, span := s.tracer.Start(r.Context(), "simulation.lap")
	defer span.End()

	compound := defaultString(req.TireCompound, "soft")
	lapNumber := req.LapNumber
	if lapNumber < 1 {
		lapNumber = 1
	}
	state := model.NewVehicleState(100, compound)
	_, result := s.laps.Run(state, segments, compound,
		defaultString(req.Weather, "dry"), lapNumber)
	s.logTelemetry(result.Telemetry)

	s.writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleSimulateRace(w http.ResponseWriter, r *http.Request) {
	var req raceRequest
	if !s.decode(w, r, &req) {
		return
	}
	segments, err := s.resolveCircuit(req.Circuit, req.TrackID)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}
	if err := validateStrategy(req.Strategy); err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}
	_, span := s.tracer.Start(r.Context(), "simulation.race")
	defer span.End()

	runID := uuid.Must(uuid.NewV4())
	results := s.races.Run(segments, req.Strategy, defaultString(req.Weather, "dry"))
	s.log.Debug("race simulated",
		log.String("runId", runID.String()),
		log.Int("laps", len(results)))
	for _, lapResult := range results {
		s.logTelemetry(lapResult.Telemetry)
	}

	s.writeJSON(w, http.StatusOK, raceResponse{RunID: runID.String(), Results: results})
}

func (s *Server) handleCompare(w http.ResponseWriter, r *http.Request) {
	var req compareRequest
	if !s.decode(w, r, &req) {
		return
	}
	segments, err := s.resolveCircuit(req.Circuit, req.TrackID)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}
	for _, strat := range []model.RaceStrategy{req.StrategyA, req.StrategyB} {
		if err := validateStrategy(strat); err != nil {
			s.writeError(w, http.StatusBadRequest, err)
			return
		}
	}
	_, span := s.tracer.Start(r.Context(), "simulation.compare")
	defer span.End()

	comparison := s.races.Compare(segments, req.StrategyA, req.StrategyB,
		defaultString(req.Weather, "dry"))
	s.writeJSON(w, http.StatusOK, comparison)
}

func (s *Server) handleOptimalLine(w http.ResponseWriter, r *http.Request) {
	var req lineRequest
	if !s.decode(w, r, &req) {
		return
	}
	segments, err := s.resolveCircuit(req.Circuit, req.TrackID)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}
	_, span := s.tracer.Start(r.Context(), "simulation.line")
	defer span.End()

	state := model.NewVehicleState(100, defaultString(req.TireCompound, "soft"))
	apexes := s.line.Calculate(segments, state)
	s.writeJSON(w, http.StatusOK, lineResponse{Apexes: apexes})
}

func (s *Server) handleRecommend(w http.ResponseWriter, r *http.Request) {
	var req recommendRequest
	if !s.decode(w, r, &req) {
		return
	}
	segments, err := s.resolveCircuit(req.Circuit, req.TrackID)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}
	if req.TotalLaps < 1 {
		s.writeError(w, http.StatusBadRequest, ErrInvalidLaps)
		return
	}
	recommendation := strategy.Recommend(segments, req.TotalLaps, defaultString(req.Weather, "dry"))
	s.writeJSON(w, http.StatusOK, recommendation)
}

// resolveCircuit picks explicit segments when given, otherwise falls back
// to the referenced track template.
func (s *Server) resolveCircuit(circuit model.Circuit, trackID string) ([]model.CircuitSegment, error) {
	segments := circuit.Segments
	if len(segments) == 0 && trackID != "" {
		track, ok := catalog.Track(trackID)
		if !ok {
			return nil, ErrUnknownTrack
		}
		segments = track.Segments
	}
	if err := validateSegments(segments); err != nil {
		return nil, err
	}
	return segments, nil
}

func (s *Server) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return false
	}
	return true
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Error("could not write response", log.ErrorField(err))
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, err error) {
	s.writeJSON(w, status, errorResponse{Error: err.Error()})
}

func (s *Server) logTelemetry(points []model.TelemetryPoint) {
	if !s.printTelemetry || !s.log.DebugEnabled() {
		return
	}
	for _, p := range points {
		s.log.Debug("telemetry", log.Any("point", p))
	}
}

func defaultString(val, fallback string) string {
	if val == "" {
		return fallback
	}
	return val
}
