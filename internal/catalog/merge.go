package catalog

import (
	"fmt"

	"github.com/go-viper/mapstructure/v2"
)

// Defaults applied to custom model fields that the user omitted. Chosen so an
// underspecified model scores as a plausible mid-tier entry instead of a
// division-by-zero hazard.
const (
	DefaultCustomSpeedMS       = 500
	DefaultCustomQuality       = 0.8
	DefaultCustomHallucination = 0.05
	DefaultCustomContextWindow = 16000
	DefaultCustomProvider      = "Custom"
	DefaultCustomBestFor       = "Custom use case"
)

// DecodeProfile maps an untyped custom-model record onto a fully-typed
// ModelProfile. Missing fields take deterministic defaults; values of the
// wrong type are coerced where that is lossless and rejected otherwise.
func DecodeProfile(key string, raw map[string]any) (ModelProfile, error) {
	profile := ModelProfile{
		Key:               key,
		Name:              key,
		Provider:          DefaultCustomProvider,
		SpeedMS:           DefaultCustomSpeedMS,
		QualityScore:      DefaultCustomQuality,
		HallucinationRate: DefaultCustomHallucination,
		ContextWindow:     DefaultCustomContextWindow,
		BestFor:           DefaultCustomBestFor,
	}

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &profile,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return ModelProfile{}, fmt.Errorf("building decoder: %w", err)
	}
	if err := dec.Decode(raw); err != nil {
		return ModelProfile{}, fmt.Errorf("custom model %q: %w", key, err)
	}

	// The map key is authoritative even if the record carries its own.
	profile.Key = key
	if profile.Name == "" {
		profile.Name = key
	}
	return profile, nil
}

// Merge overlays custom profiles onto the default model set. Default models
// keep their declared order; custom models follow in the given order.
func Merge(customs []ModelProfile) *Catalog {
	combined := DefaultProfiles()
	combined = append(combined, customs...)
	return New(combined...)
}
