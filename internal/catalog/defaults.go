package catalog

// DefaultProfiles returns the built-in model set. Values are point-in-time
// list prices and published benchmark figures, not live data.
func DefaultProfiles() []ModelProfile {
	return []ModelProfile{
		{
			Key:               "claude_opus",
			Name:              "Claude Opus 4.5",
			Provider:          "Anthropic",
			InputCostPer1K:    0.015,
			OutputCostPer1K:   0.045,
			SpeedMS:           820,
			QualityScore:      0.953,
			HallucinationRate: 0.02,
			ContextWindow:     200000,
			BestFor:           "Complex reasoning, high-stakes decisions",
		},
		{
			Key:               "claude_sonnet",
			Name:              "Claude Sonnet 4.5",
			Provider:          "Anthropic",
			InputCostPer1K:    0.003,
			OutputCostPer1K:   0.015,
			SpeedMS:           420,
			QualityScore:      0.881,
			HallucinationRate: 0.04,
			ContextWindow:     200000,
			BestFor:           "Balanced performance, most use cases",
		},
		{
			Key:               "claude_haiku",
			Name:              "Claude Haiku 4.5",
			Provider:          "Anthropic",
			InputCostPer1K:    0.0008,
			OutputCostPer1K:   0.004,
			SpeedMS:           110,
			QualityScore:      0.762,
			HallucinationRate: 0.06,
			ContextWindow:     200000,
			BestFor:           "Simple tasks, routing, classification",
		},
		{
			Key:               "gpt_4o",
			Name:              "GPT-4o",
			Provider:          "OpenAI",
			InputCostPer1K:    0.005,
			OutputCostPer1K:   0.015,
			SpeedMS:           600,
			QualityScore:      0.92,
			HallucinationRate: 0.03,
			ContextWindow:     128000,
			BestFor:           "Good all-around, vision capabilities",
		},
		{
			Key:                       "llama3_self_hosted",
			Name:                      "Llama 3 (Self-hosted)",
			Provider:                  "Meta",
			InputCostPer1K:            0.0005,
			OutputCostPer1K:           0.0005,
			SpeedMS:                   250,
			QualityScore:              0.72,
			HallucinationRate:         0.10,
			ContextWindow:             8000,
			BestFor:                   "High volume with custom training",
			InfrastructureCostMonthly: 8000,
			OpsCostMonthly:            3000,
		},
	}
}

// Defaults returns a catalog containing only the built-in models.
func Defaults() *Catalog {
	return New(DefaultProfiles()...)
}

// DefaultKeys returns the built-in model identifiers in declaration order.
func DefaultKeys() []string {
	profiles := DefaultProfiles()
	keys := make([]string, len(profiles))
	for i, p := range profiles {
		keys[i] = p.Key
	}
	return keys
}
