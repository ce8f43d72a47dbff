// ABOUTME: Integration tests for full workflow
// ABOUTME: Builds the CLI and drives it end-to-end against each local backend

package test

import (
	"bytes"
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

func buildBinary(t *testing.T) string {
	t.Helper()
	projectRoot, err := filepath.Abs("..")
	if err != nil {
		t.Fatalf("Failed to get project root: %v", err)
	}

	binary := filepath.Join(t.TempDir(), "workouts")
	buildCmd := exec.Command("go", "build", "-o", binary, "./cmd/workouts")
	buildCmd.Dir = projectRoot
	buildOutput, err := buildCmd.CombinedOutput()
	if err != nil {
		t.Fatalf("Failed to build: %v\nOutput: %s", err, buildOutput)
	}
	return binary
}

func TestFullWorkflow(t *testing.T) {
	binary := buildBinary(t)

	for _, backend := range []string{"file", "sqlite", "badger"} {
		t.Run(backend, func(t *testing.T) {
			configHome := t.TempDir()
			dataDir := t.TempDir()

			run := func(args ...string) (string, error) {
				fullArgs := append([]string{"--data-dir", dataDir, "--backend", backend}, args...)
				cmd := exec.Command(binary, fullArgs...)
				cmd.Env = append(os.Environ(), "XDG_CONFIG_HOME="+configHome, "NO_COLOR=1")
				var stdout, stderr bytes.Buffer
				cmd.Stdout, cmd.Stderr = &stdout, &stderr
				if err := cmd.Run(); err != nil {
					return stdout.String() + stderr.String(), err
				}
				return stdout.String(), nil
			}

			output, err := run("add", "-t", "running", "--lat", "41.8781", "--lng", "-87.6298",
				"-d", "5", "--duration", "25", "--cadence", "170")
			if err != nil {
				t.Fatalf("Failed to add run: %v\n%s", err, output)
			}
			if !strings.Contains(output, "Added Running on") {
				t.Errorf("Expected success message, got %s", output)
			}

			output, err = run("add", "-t", "cycling", "--lat", "40.015", "--lng", "-105.27",
				"-d", "42", "--duration", "95", "--elevation", "640")
			if err != nil {
				t.Fatalf("Failed to add ride: %v\n%s", err, output)
			}

			// Invalid input is rejected and nothing is saved.
			if output, err = run("add", "-t", "running", "--lat", "1", "--lng", "1", "-d", "5", "--duration", "25"); err == nil {
				t.Errorf("Expected missing cadence to fail\n%s", output)
			}

			output, err = run("list", "--sort", "distance")
			if err != nil {
				t.Fatalf("Failed to list: %v\n%s", err, output)
			}
			if strings.Count(output, "\n") != 2 {
				t.Errorf("Expected two workouts in list, got:\n%s", output)
			}

			output, err = run("map")
			if err != nil {
				t.Fatalf("Failed to export map: %v\n%s", err, output)
			}
			var fc struct {
				Features []struct {
					Properties map[string]interface{} `json:"properties"`
				} `json:"features"`
			}
			if err := json.Unmarshal([]byte(output), &fc); err != nil {
				t.Fatalf("Map output is not GeoJSON: %v\n%s", err, output)
			}
			if len(fc.Features) != 2 {
				t.Fatalf("Expected 2 features, got %d", len(fc.Features))
			}
			runID, _ := fc.Features[0].Properties["id"].(string)

			output, err = run("view", runID)
			if err != nil {
				t.Fatalf("Failed to view: %v\n%s", err, output)
			}
			if !strings.Contains(output, runID) {
				t.Errorf("Expected workout id in output, got %s", output)
			}

			output, err = run("rm", runID, "--confirm")
			if err != nil {
				t.Fatalf("Failed to remove: %v\n%s", err, output)
			}
			if !strings.Contains(output, "Deleted") {
				t.Error("Expected removal confirmation")
			}

			output, err = run("list")
			if err != nil {
				t.Fatalf("Failed to list: %v\n%s", err, output)
			}
			if strings.Contains(output, runID) {
				t.Error("Removed workout should not be listed")
			}

			output, err = run("clear", "--confirm")
			if err != nil {
				t.Fatalf("Failed to clear: %v\n%s", err, output)
			}
			output, err = run("list")
			if err != nil {
				t.Fatalf("Failed to list: %v\n%s", err, output)
			}
			if !strings.Contains(output, "No workouts yet.") {
				t.Errorf("Expected empty list, got %s", output)
			}
		})
	}
}
