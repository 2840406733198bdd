package cli

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const passingScenario = `name: brie_day
description: "Brie improves twice as fast after its date"
days: 1
items:
  - { name: Aged Brie, sell_in: 0, quality: 20 }
assertions:
  - { type: item_state, index: 0, expect: { sell_in: -1, quality: 22 } }
`

const failingScenario = `name: wrong_vest
description: "Deliberately wrong expectation"
days: 1
items:
  - { name: "+5 Dexterity Vest", sell_in: 10, quality: 20 }
assertions:
  - { type: item_state, index: 0, expect: { quality: 20 } }
`

const brieReport = "-------- day 0 --------\nname, sellIn, quality\nAged Brie, 0, 20\n\n" +
	"-------- day 1 --------\nname, sellIn, quality\nAged Brie, -1, 22\n\n"

func TestTestCommand_MissingArgs(t *testing.T) {
	_, _, err := execute(NewTestCommand(&RootOptions{Format: "text"}))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 1 arg")
}

func TestTestCommand_NonExistentDir(t *testing.T) {
	_, _, err := execute(NewTestCommand(&RootOptions{Format: "text"}), "/nonexistent/scenarios")

	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, err.Error(), "scenarios directory not found")
}

func TestTestCommand_Empty(t *testing.T) {
	out, _, err := execute(NewTestCommand(&RootOptions{Format: "text"}), t.TempDir())

	require.NoError(t, err)
	assert.Contains(t, out, "No scenarios found.")
}

func TestTestCommand_Passing(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "brie.yaml", passingScenario)

	out, _, err := execute(NewTestCommand(&RootOptions{Format: "text"}), dir)

	require.NoError(t, err)
	assert.Contains(t, out, "✓ brie_day")
	assert.Contains(t, out, "Test Summary: 1 passed, 0 failed, 1 total")
}

func TestTestCommand_Failing(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "brie.yaml", passingScenario)
	writeFile(t, dir, "vest.yml", failingScenario)

	out, _, err := execute(NewTestCommand(&RootOptions{Format: "text"}), dir)

	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, out, "✗ wrong_vest")
	assert.Contains(t, out, "quality=19")
	assert.Contains(t, out, "Test Summary: 1 passed, 1 failed, 2 total")
}

func TestTestCommand_Filter(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "brie.yaml", passingScenario)
	writeFile(t, dir, "vest.yaml", failingScenario)

	out, _, err := execute(NewTestCommand(&RootOptions{Format: "text"}), dir, "--filter", "br*")

	require.NoError(t, err)
	assert.Contains(t, out, "1 total")
}

func TestTestCommand_JSON(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "vest.yaml", failingScenario)

	out, _, err := execute(NewTestCommand(&RootOptions{Format: "json"}), dir)
	require.Error(t, err)

	var resp struct {
		Status string     `json:"status"`
		Data   TestResult `json:"data"`
		Error  *CLIError  `json:"error"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "error", resp.Status)
	assert.Equal(t, 1, resp.Data.Failed)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "E_TEST_FAILED", resp.Error.Code)
}

func TestTestCommand_UpdateWritesGolden(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "brie.yaml", passingScenario)

	_, _, err := execute(NewTestCommand(&RootOptions{Format: "text"}), dir, "--update")
	require.NoError(t, err)

	golden, err := os.ReadFile(filepath.Join(dir, "golden", "brie.golden"))
	require.NoError(t, err)
	assert.Equal(t, brieReport, string(golden))
}

func TestTestCommand_GoldenMatch(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "brie.yaml", passingScenario)
	writeFile(t, dir, "golden/brie.golden", brieReport)

	out, _, err := execute(NewTestCommand(&RootOptions{Format: "text"}), dir)

	require.NoError(t, err)
	assert.Contains(t, out, "✓ brie_day")
}

func TestTestCommand_GoldenMismatch(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "brie.yaml", passingScenario)
	writeFile(t, dir, "golden/brie.golden", "stale\n")

	out, _, err := execute(NewTestCommand(&RootOptions{Format: "text"}), dir)

	require.Error(t, err)
	assert.Contains(t, out, "report does not match golden file")
}

func TestTestCommand_LoadError(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "broken.yaml", "name: [unterminated\n")

	out, _, err := execute(NewTestCommand(&RootOptions{Format: "text"}), dir)

	require.Error(t, err)
	assert.Contains(t, out, "✗ broken.yaml")
	assert.Contains(t, out, "failed to load scenario")
}

func TestGoldenFilePath(t *testing.T) {
	assert.Equal(t, filepath.Join("s", "golden", "brie.golden"), goldenFilePath(filepath.Join("s", "brie.yaml")))
}
