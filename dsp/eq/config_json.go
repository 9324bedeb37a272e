package eq

import (
	"encoding/json"
	"fmt"
)

// configState is the JSON-serializable form of a Config:
//
//	{"sampleRate": 44100, "name": "...", "subdivisions": [
//	    {"startFreq": 0, "endFreq": 1000, "scale": 1.25}, ...]}
type configState struct {
	SampleRate   float64            `json:"sampleRate"`
	Name         string             `json:"name,omitempty"`
	Subdivisions []subdivisionState `json:"subdivisions"`
}

type subdivisionState struct {
	StartFreq float64 `json:"startFreq"`
	EndFreq   float64 `json:"endFreq"`
	// Scale is a pointer so that a missing field can default to 1.
	Scale *float64 `json:"scale"`
}

// ParseConfig is the lenient configuration loader. Unknown fields are
// ignored and optional fields (name, a subdivision's scale) may be
// absent, but malformed JSON and invalid band values fail with an error
// and leave no partial state behind.
func ParseConfig(data []byte) (Config, error) {
	var state configState
	if err := json.Unmarshal(data, &state); err != nil {
		return Config{}, fmt.Errorf("eq: invalid config json: %w", err)
	}

	cfg := Config{
		SampleRate: state.SampleRate,
		Name:       state.Name,
	}

	for i, sub := range state.Subdivisions {
		scale := 1.0
		if sub.Scale != nil {
			scale = *sub.Scale
		}

		band := Band{StartFreq: sub.StartFreq, EndFreq: sub.EndFreq, Gain: scale}
		if err := band.validateRange(); err != nil {
			return Config{}, fmt.Errorf("eq: subdivision %d: %w", i, err)
		}
		if band.Gain > MaxGain {
			return Config{}, fmt.Errorf("eq: subdivision %d: gain %g exceeds load contract [0, %g]", i, band.Gain, MaxGain)
		}

		cfg.Bands = append(cfg.Bands, band)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// EncodeConfig is the strict configuration saver: it validates the full
// construction contract (including the [0, MaxGain] gain bound) before
// emitting JSON.
func EncodeConfig(cfg Config) ([]byte, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	state := configState{
		SampleRate:   cfg.SampleRate,
		Name:         cfg.Name,
		Subdivisions: make([]subdivisionState, len(cfg.Bands)),
	}

	for i, b := range cfg.Bands {
		if b.Gain > MaxGain {
			return nil, fmt.Errorf("eq: band %d: gain %g exceeds save contract [0, %g]", i, b.Gain, MaxGain)
		}
		scale := b.Gain
		state.Subdivisions[i] = subdivisionState{
			StartFreq: b.StartFreq,
			EndFreq:   b.EndFreq,
			Scale:     &scale,
		}
	}

	return json.Marshal(state)
}
