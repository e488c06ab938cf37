// Package wizard implements the interactive form used by "workbench models
// add" to collect a custom model profile.
package wizard

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"golang.org/x/term"

	"github.com/GaneshChandgude/llm-selection-workbench/internal/catalog"
)

// RunModelWizard runs an interactive huh form to collect a custom model
// profile. If initialName is non-empty, it pre-populates the name field.
// Optional numeric fields left blank take the same defaults the overlay
// decoder applies.
func RunModelWizard(in io.Reader, out io.Writer, initialName string) (catalog.ModelProfile, error) {
	var (
		name              = initialName
		provider          string
		inputCostRaw      string
		outputCostRaw     string
		speedRaw          string
		qualityRaw        string
		hallucinationsRaw string
		contextRaw        string
		bestFor           string
	)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Model name").
				Description("Display name; the catalog key is derived from it").
				Placeholder("My Fine-tuned Model").
				Value(&name).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("name is required")
					}
					return nil
				}),
			huh.NewInput().
				Title("Provider").
				Placeholder(catalog.DefaultCustomProvider).
				Value(&provider),
			huh.NewInput().
				Title("Input cost per 1K tokens (USD)").
				Placeholder("0.003").
				Value(&inputCostRaw).
				Validate(validateOptionalFloat),
			huh.NewInput().
				Title("Output cost per 1K tokens (USD)").
				Placeholder("0.015").
				Value(&outputCostRaw).
				Validate(validateOptionalFloat),
			huh.NewInput().
				Title("Response speed (ms)").
				Placeholder(strconv.Itoa(catalog.DefaultCustomSpeedMS)).
				Value(&speedRaw).
				Validate(validateOptionalInt),
			huh.NewInput().
				Title("Quality score (0-1)").
				Placeholder(fmt.Sprintf("%g", catalog.DefaultCustomQuality)).
				Value(&qualityRaw).
				Validate(validateOptionalUnit),
			huh.NewInput().
				Title("Hallucination rate (0-1)").
				Placeholder(fmt.Sprintf("%g", catalog.DefaultCustomHallucination)).
				Value(&hallucinationsRaw).
				Validate(validateOptionalUnit),
			huh.NewInput().
				Title("Context window (tokens)").
				Placeholder(strconv.Itoa(catalog.DefaultCustomContextWindow)).
				Value(&contextRaw).
				Validate(validateOptionalInt),
			huh.NewInput().
				Title("Best for").
				Placeholder(catalog.DefaultCustomBestFor).
				Value(&bestFor),
		),
	).
		WithInput(in).
		WithOutput(out)

	// Use accessible mode for non-TTY input (e.g., tests, piped input).
	if f, ok := in.(*os.File); !ok || !term.IsTerminal(int(f.Fd())) {
		form = form.WithAccessible(true)
	}

	if err := form.Run(); err != nil {
		return catalog.ModelProfile{}, fmt.Errorf("wizard failed: %w", err)
	}

	profile := catalog.ModelProfile{
		Name:              strings.TrimSpace(name),
		Provider:          strings.TrimSpace(provider),
		InputCostPer1K:    parseFloatOr(inputCostRaw, 0),
		OutputCostPer1K:   parseFloatOr(outputCostRaw, 0),
		SpeedMS:           parseIntOr(speedRaw, catalog.DefaultCustomSpeedMS),
		QualityScore:      parseFloatOr(qualityRaw, catalog.DefaultCustomQuality),
		HallucinationRate: parseFloatOr(hallucinationsRaw, catalog.DefaultCustomHallucination),
		ContextWindow:     parseIntOr(contextRaw, catalog.DefaultCustomContextWindow),
		BestFor:           strings.TrimSpace(bestFor),
	}
	if profile.Provider == "" {
		profile.Provider = catalog.DefaultCustomProvider
	}
	if profile.BestFor == "" {
		profile.BestFor = catalog.DefaultCustomBestFor
	}
	return profile, nil
}

func validateOptionalFloat(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	if v, err := strconv.ParseFloat(s, 64); err != nil || v < 0 {
		return fmt.Errorf("enter a non-negative number")
	}
	return nil
}

func validateOptionalInt(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	if v, err := strconv.Atoi(s); err != nil || v < 0 {
		return fmt.Errorf("enter a non-negative whole number")
	}
	return nil
}

func validateOptionalUnit(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	if v, err := strconv.ParseFloat(s, 64); err != nil || v < 0 || v > 1 {
		return fmt.Errorf("enter a number between 0 and 1")
	}
	return nil
}

func parseFloatOr(s string, fallback float64) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return fallback
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fallback
	}
	return v
}

func parseIntOr(s string, fallback int) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return fallback
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return fallback
	}
	return v
}
