package epidemicgo

import "github.com/pkg/errors"

// Model selects which stepper variant an engine runs.
type Model string

const (
	ModelSEIR     Model = "seir"
	ModelAirborne Model = "measles"
)

// Parameters holds every input the engine needs beyond the contact
// stream and community assignment. TOML-tagged for config_loader.go;
// Validate enforces each parameter's domain.
type Parameters struct {
	Model Model `toml:"model"`

	PatientZeroCount int     `toml:"patient_zero_count"`
	TransmissionProb float64 `toml:"transmission_prob"`
	RecoveryDays     float64 `toml:"recovery_days"`
	IncubationDays   float64 `toml:"incubation_days"`
	Seed             int64   `toml:"seed"`

	// Airborne-only.
	VentilationRate float64 `toml:"ventilation_rate"`
	SheddingRate    float64 `toml:"shedding_rate"`
	BetaAir         float64 `toml:"beta_air"`
	MortalityRate   float64 `toml:"mortality_rate"`

	validated bool
}

// Validate checks that every parameter is within its required domain,
// returning the first violation found.
func (p *Parameters) Validate() error {
	switch p.Model {
	case ModelSEIR, ModelAirborne:
	default:
		return errors.Errorf(UnrecognizedKeywordError, p.Model, "model")
	}
	if p.PatientZeroCount < 1 {
		return errors.Errorf(InvalidIntParameterError, "patient_zero_count", p.PatientZeroCount, "must be greater than or equal to 1")
	}
	if p.TransmissionProb < 0 || p.TransmissionProb > 1 {
		return errors.Errorf(InvalidFloatParameterError, "transmission_prob", p.TransmissionProb, "must be in [0, 1]")
	}
	if p.RecoveryDays < 1 {
		return errors.Errorf(InvalidFloatParameterError, "recovery_days", p.RecoveryDays, "must be greater than or equal to 1")
	}
	if p.IncubationDays < 0 {
		return errors.Errorf(InvalidFloatParameterError, "incubation_days", p.IncubationDays, "cannot be negative")
	}
	if p.Model == ModelAirborne {
		if p.VentilationRate < 0 || p.VentilationRate > 1 {
			return errors.Errorf(InvalidFloatParameterError, "ventilation_rate", p.VentilationRate, "must be in [0, 1]")
		}
		if p.SheddingRate < 0 {
			return errors.Errorf(InvalidFloatParameterError, "shedding_rate", p.SheddingRate, "cannot be negative")
		}
		if p.BetaAir < 0 {
			return errors.Errorf(InvalidFloatParameterError, "beta_air", p.BetaAir, "cannot be negative")
		}
		if p.MortalityRate < 0 || p.MortalityRate > 1 {
			return errors.Errorf(InvalidFloatParameterError, "mortality_rate", p.MortalityRate, "must be in [0, 1]")
		}
	}
	p.validated = true
	return nil
}

// durationFloorDays is the lower bound (in days) imposed on sampled
// incubation/recovery durations regardless of the configured mean, so a
// zero (or near-zero) incubation_days still yields a usable duration.
const durationFloorDays = 1.0

func (p *Parameters) recoverySample(s *Stream) float64 {
	return s.TruncatedNormal(p.RecoveryDays, 0.2*p.RecoveryDays, durationFloorDays)
}

func (p *Parameters) incubationSample(s *Stream) float64 {
	return s.TruncatedNormal(p.IncubationDays, 0.2*p.IncubationDays, durationFloorDays)
}
