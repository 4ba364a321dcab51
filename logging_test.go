package epidemicgo

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestLogSink_HandleWritesStepLine(t *testing.T) {
	var buf bytes.Buffer
	sink := NewLogSink(zerolog.New(&buf))

	err := sink.Handle(Delta{Time: 100, NewExposed: []int{1, 2}, TotalInfected: 5})
	if err != nil {
		t.Fatalf(UnexpectedErrorWhileError, "handling a step delta", err)
	}

	out := buf.String()
	if !strings.Contains(out, `"message":"step"`) {
		t.Errorf(UnequalStringParameterError, "log line message", "step", out)
	}
	if !strings.Contains(out, `"total_infected":5`) {
		t.Errorf(UnequalStringParameterError, "log line total_infected field", "5", out)
	}
}

func TestLogSink_HandleWritesErrorLine(t *testing.T) {
	var buf bytes.Buffer
	sink := NewLogSink(zerolog.New(&buf))

	if err := sink.Handle(Delta{Err: "data not loaded"}); err != nil {
		t.Fatalf(UnexpectedErrorWhileError, "handling an error delta", err)
	}

	out := buf.String()
	if !strings.Contains(out, "simulation aborted") {
		t.Errorf(UnequalStringParameterError, "log line message", "simulation aborted", out)
	}
	if !strings.Contains(out, `"error":"data not loaded"`) {
		t.Errorf(UnequalStringParameterError, "log line error field", "data not loaded", out)
	}
}

func TestLogSink_HandleWritesDoneLine(t *testing.T) {
	var buf bytes.Buffer
	sink := NewLogSink(zerolog.New(&buf))

	if err := sink.Handle(Delta{Done: true}); err != nil {
		t.Fatalf(UnexpectedErrorWhileError, "handling a done delta", err)
	}
	if !strings.Contains(buf.String(), "simulation complete") {
		t.Errorf(UnequalStringParameterError, "log line message", "simulation complete", buf.String())
	}
}
