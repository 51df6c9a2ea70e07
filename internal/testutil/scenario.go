// Package testutil provides shared test helpers for parens Go tests.
package testutil

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ScenariosDir is the relative path from the module root to the shared
// conformance scenarios.
const ScenariosDir = "testdata/scenarios"

// Scenario represents a test scenario loaded from a scenario.yaml file.
type Scenario struct {
	Cmd    []string       `yaml:"cmd"`
	Expect ExpectedResult `yaml:"expect"`
}

// ExpectedResult describes the expected outcome of running a scenario.
type ExpectedResult struct {
	ExitCode       int      `yaml:"exitCode"`
	StdoutContains []string `yaml:"stdoutContains,omitempty"`
	ErrorCode      string   `yaml:"errorCode,omitempty"`
	ErrorContains  string   `yaml:"errorContains,omitempty"`
}

// LoadScenario loads a scenario from a directory containing scenario.yaml.
func LoadScenario(dir string) (*Scenario, error) {
	data, err := os.ReadFile(filepath.Join(dir, "scenario.yaml"))
	if err != nil {
		return nil, err
	}
	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// ListScenarios returns all scenario directories under the given root.
func ListScenarios(root string) ([]string, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, err
	}
	var dirs []string
	for _, e := range entries {
		if e.IsDir() {
			scenarioPath := filepath.Join(root, e.Name(), "scenario.yaml")
			if _, err := os.Stat(scenarioPath); err == nil {
				dirs = append(dirs, filepath.Join(root, e.Name()))
			}
		}
	}
	return dirs, nil
}

// ReadProgramFile reads the program file referenced by the scenario cmd.
func ReadProgramFile(scenarioDir string, cmd []string) (string, error) {
	if len(cmd) < 2 {
		return "", nil
	}
	source, err := os.ReadFile(filepath.Join(scenarioDir, cmd[1]))
	if err != nil {
		return "", err
	}
	return string(source), nil
}
