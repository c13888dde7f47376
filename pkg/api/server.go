// Package api exposes the simulation engine over a JSON HTTP API.
// Every request constructs its own fresh vehicle state, so concurrent
// requests never share mutable simulation data.
package api

import (
	"net/http"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/startrack/startrack-sim-go/log"
	"github.com/startrack/startrack-sim-go/pkg/simulation/lap"
	"github.com/startrack/startrack-sim-go/pkg/simulation/race"
	"github.com/startrack/startrack-sim-go/pkg/simulation/strategy"
)

const disclaimer = "StarTrack is an independent open-source project and is " +
	"not affiliated with, endorsed by, or connected to Formula 1, " +
	"Formula One Management, or the FIA."

type Server struct {
	laps           *lap.Simulator
	races          *race.Simulator
	line           *strategy.LineCalculator
	log            *log.Logger
	tracer         trace.Tracer
	printTelemetry bool
}

type Option func(*Server)

func WithLapSimulator(s *lap.Simulator) Option {
	return func(srv *Server) {
		srv.laps = s
	}
}

func WithRaceSimulator(s *race.Simulator) Option {
	return func(srv *Server) {
		srv.races = s
	}
}

func WithLineCalculator(c *strategy.LineCalculator) Option {
	return func(srv *Server) {
		srv.line = c
	}
}

func WithTracer(tracer trace.Tracer) Option {
	return func(srv *Server) {
		srv.tracer = tracer
	}
}

// WithTelemetryLogging logs per-segment telemetry on debug level.
func WithTelemetryLogging(enabled bool) Option {
	return func(srv *Server) {
		srv.printTelemetry = enabled
	}
}

func NewServer(opts ...Option) *Server {
	ret := &Server{
		log: log.Default().Named("api"),
	}
	for _, opt := range opts {
		opt(ret)
	}
	if ret.laps == nil {
		ret.laps = lap.New()
	}
	if ret.races == nil {
		ret.races = race.New(race.WithLapSimulator(ret.laps))
	}
	if ret.line == nil {
		ret.line = strategy.NewLineCalculator(strategy.WithPhysics(ret.laps.Physics()))
	}
	if ret.tracer == nil {
		ret.tracer = otel.Tracer("startrack-sim")
	}
	return ret
}

// Mux returns the route table of the API.
func (s *Server) Mux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleRoot)
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("GET /api/v1/tracks", s.handleTracks)
	mux.HandleFunc("GET /api/v1/tracks/{id}", s.handleTrack)
	mux.HandleFunc("GET /api/v1/tires", s.handleTires)
	mux.HandleFunc("POST /api/v1/simulation/lap", s.handleSimulateLap)
	mux.HandleFunc("POST /api/v1/simulation/race", s.handleSimulateRace)
	mux.HandleFunc("POST /api/v1/simulation/compare", s.handleCompare)
	mux.HandleFunc("POST /api/v1/simulation/line", s.handleOptimalLine)
	mux.HandleFunc("POST /api/v1/strategy/recommend", s.handleRecommend)
	return mux
}
