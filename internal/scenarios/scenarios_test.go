package scenarios

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultsAreValid(t *testing.T) {
	list := Defaults()
	require.Len(t, list, 3)
	require.NoError(t, ValidateAll(list))

	assert.Equal(t, 0.8, list[0].MinAccuracy())
	assert.Equal(t, 0.7, list[1].MinAccuracy())
	assert.Equal(t, 0.9, list[2].MinAccuracy())
}

func TestMinAccuracyDefaultsWhenUnset(t *testing.T) {
	s := TestScenario{Name: "bare", Input: "in", Expected: "out"}
	assert.Equal(t, DefaultMinAccuracy, s.MinAccuracy())
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "unnamed", TestScenario{}.DisplayName())
	assert.Equal(t, "named", TestScenario{Name: "named"}.DisplayName())
}

func TestScenarioValidation(t *testing.T) {
	err := TestScenario{Name: "no input", Expected: "out"}.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidInput)

	err = TestScenario{Name: "no expected", Input: "in"}.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidInput)

	assert.NoError(t, TestScenario{Input: "in", Expected: "out"}.Validate())
}

func TestCaseValidationRequiresName(t *testing.T) {
	err := TestCase{Input: "in", Expected: "out"}.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCasesDropsPassCriteria(t *testing.T) {
	cases := Cases(Defaults())
	require.Len(t, cases, 3)
	assert.Equal(t, "Simple refund request", cases[0].Name)
	assert.Equal(t, Defaults()[0].Input, cases[0].Input)
	require.NoError(t, ValidateCases(cases))
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenarios.yaml")
	content := `
- name: Password reset
  input: How do I reset my password?
  expected: Send a reset link to the registered email
  pass_criteria:
    min_accuracy: 0.75
- name: Bare scenario
  input: hello
  expected: hi
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	list, err := LoadFile(path)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, 0.75, list[0].MinAccuracy())
	assert.Equal(t, DefaultMinAccuracy, list[1].MinAccuracy())
}

func TestLoadFileRejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenarios.yaml")
	require.NoError(t, os.WriteFile(path, []byte("- name: broken\n  input: only input\n"), 0o644))

	_, err := LoadFile(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestLoadCasesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cases.yaml")
	content := "- name: c1\n  input: in\n  expected: out\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cases, err := LoadCasesFile(path)
	require.NoError(t, err)
	require.Len(t, cases, 1)
	assert.Equal(t, "c1", cases[0].Name)
}
