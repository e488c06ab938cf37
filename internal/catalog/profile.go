// Package catalog defines the model catalog: immutable per-model profiles,
// the default model set, and the store that merges user-supplied overrides
// with the defaults and republishes catalog snapshots.
package catalog

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound is returned when a model identifier is not present in a catalog.
var ErrNotFound = errors.New("model not found")

// ModelProfile describes a single model's pricing and behavior characteristics.
// Profiles are immutable values; a catalog refresh produces new ones.
type ModelProfile struct {
	Key                       string  `json:"key" mapstructure:"key"`
	Name                      string  `json:"name" mapstructure:"name"`
	Provider                  string  `json:"provider" mapstructure:"provider"`
	InputCostPer1K            float64 `json:"input_cost_per_1k" mapstructure:"input_cost_per_1k"`
	OutputCostPer1K           float64 `json:"output_cost_per_1k" mapstructure:"output_cost_per_1k"`
	SpeedMS                   int     `json:"speed_ms" mapstructure:"speed_ms"`
	QualityScore              float64 `json:"quality_score" mapstructure:"quality_score"`
	HallucinationRate         float64 `json:"hallucination_rate" mapstructure:"hallucination_rate"`
	ContextWindow             int     `json:"context_window" mapstructure:"context_window"`
	BestFor                   string  `json:"best_for" mapstructure:"best_for"`
	InfrastructureCostMonthly float64 `json:"infrastructure_cost_monthly,omitempty" mapstructure:"infrastructure_cost_monthly"`
	OpsCostMonthly            float64 `json:"ops_cost_monthly,omitempty" mapstructure:"ops_cost_monthly"`
}

// TokenCostPer1K returns the combined input+output price per 1000 tokens.
func (p ModelProfile) TokenCostPer1K() float64 {
	return p.InputCostPer1K + p.OutputCostPer1K
}

// Catalog is an immutable snapshot of model profiles. Iteration order is
// stable: default models first (in their declared order), then custom models
// in insertion order. Scoring components receive a *Catalog and never see
// a half-updated view.
type Catalog struct {
	profiles map[string]ModelProfile
	order    []string
}

// New builds a catalog from profiles in the given order. Later duplicates
// overwrite earlier ones without changing their position.
func New(profiles ...ModelProfile) *Catalog {
	c := &Catalog{profiles: make(map[string]ModelProfile, len(profiles))}
	for _, p := range profiles {
		if _, seen := c.profiles[p.Key]; !seen {
			c.order = append(c.order, p.Key)
		}
		c.profiles[p.Key] = p
	}
	return c
}

// Get returns the profile for id, or an error wrapping ErrNotFound.
func (c *Catalog) Get(id string) (ModelProfile, error) {
	p, ok := c.profiles[id]
	if !ok {
		return ModelProfile{}, fmt.Errorf("model %q: %w", id, ErrNotFound)
	}
	return p, nil
}

// Has reports whether id exists in the catalog.
func (c *Catalog) Has(id string) bool {
	_, ok := c.profiles[id]
	return ok
}

// Keys returns the model identifiers in catalog order.
func (c *Catalog) Keys() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}

// Profiles returns all profiles in catalog order.
func (c *Catalog) Profiles() []ModelProfile {
	out := make([]ModelProfile, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.profiles[id])
	}
	return out
}

// Len returns the number of models in the catalog.
func (c *Catalog) Len() int {
	return len(c.order)
}

// Slugify converts a display name to a safe model key: lowercase
// alphanumerics with single underscores. Returns "custom_model" when
// nothing survives.
func Slugify(value string) string {
	var b strings.Builder
	for _, ch := range strings.TrimSpace(value) {
		if (ch >= 'a' && ch <= 'z') || (ch >= '0' && ch <= '9') {
			b.WriteRune(ch)
		} else if ch >= 'A' && ch <= 'Z' {
			b.WriteRune(ch + ('a' - 'A'))
		} else {
			b.WriteByte('_')
		}
	}
	safe := b.String()
	for strings.Contains(safe, "__") {
		safe = strings.ReplaceAll(safe, "__", "_")
	}
	safe = strings.Trim(safe, "_")
	if safe == "" {
		return "custom_model"
	}
	return safe
}
