package epidemicgo

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// InitLogging configures the package-level zerolog logger, grounded on
// the init pattern in leemwalker-thousand-worlds/internal/logging. It
// is the caller's (cmd/epidemicgo's) responsibility to call this once at
// startup; the engine and driver never call it themselves, keeping
// logging an ambient concern rather than something the core depends on.
func InitLogging(debug bool) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
}

// RunLogger returns a logger tagged with this run's id and model, so
// every line it emits can be correlated back to a single Driver.Run call.
func (d *Driver) RunLogger() zerolog.Logger {
	return log.With().
		Str("run_id", d.RunID.String()).
		Str("model", string(d.params.Model)).
		Logger()
}

// LogSink is a DeltaSink that writes one structured log line per delta.
type LogSink struct {
	logger zerolog.Logger
}

// NewLogSink wraps a logger (typically from Driver.RunLogger) as a sink.
func NewLogSink(logger zerolog.Logger) *LogSink {
	return &LogSink{logger: logger}
}

func (s *LogSink) Handle(d Delta) error {
	if d.Err != "" {
		s.logger.Error().Str("error", d.Err).Msg("simulation aborted")
		return nil
	}
	if d.Done {
		s.logger.Info().Msg("simulation complete")
		return nil
	}
	s.logger.Info().
		Int64("time", d.Time).
		Int("new_exposed", len(d.NewExposed)).
		Int("new_infected", len(d.NewInfected)).
		Int("new_recovered", len(d.NewRecovered)).
		Int("new_dead", len(d.NewDead)).
		Int("total_infected", d.TotalInfected).
		Msg("step")
	return nil
}
