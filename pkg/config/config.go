package config

// this holds the resolved configuration values from CLI
var (
	ServerAddr        string // listen addr for the HTTP API server
	LogLevel          string // sets the log level (zap log level values)
	LogFormat         string // text vs json
	LogConfig         string // zapfilter rules restricting log output
	EnableTelemetry   bool   // enable telemetry
	TelemetryEndpoint string // endpoint that receives open telemetry data
	ProfilingPort     int    // port for profiling
)

// Config holds the configuration values which are used by the application
type Config struct {
	PrintTelemetry bool // if true, per-segment telemetry is logged on debug level
}
