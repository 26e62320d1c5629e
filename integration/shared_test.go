//go:build database

// Package integration contains integration tests for hiresignal against real
// database containers. They are excluded from normal test runs by build tags.
// To run these tests: go test -tags database ./integration
package integration

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sync"
	"testing"
)

var (
	// sharedBinaryPath holds the path to a shared hiresignal binary built once for all tests.
	sharedBinaryPath string

	buildOnce sync.Once

	// tempDir holds the binary and is removed by TestMain.
	tempDir string
)

// buildVersion is stamped into the test binary so reports can be traced to it.
const buildVersion = "integration"

// TestMain handles setup and cleanup for all integration tests.
func TestMain(m *testing.M) {
	// Run all tests
	code := m.Run()

	// Cleanup the shared binary after all tests
	if tempDir != "" {
		_ = os.RemoveAll(tempDir)
	}

	os.Exit(code)
}

// getBinary returns the path to the hiresignal binary, building it once if needed.
func getBinary() string {
	buildOnce.Do(func() {
		// Create a temp directory for the binary
		var err error
		tempDir, err = os.MkdirTemp("", "hiresignal-integration-*")
		if err != nil {
			panic(fmt.Sprintf("failed to create temp dir: %v", err))
		}

		binPath := filepath.Join(tempDir, "hiresignal")
		buildCmd := exec.Command("go", "build",
			"-ldflags", "-X github.com/huangsam/hiresignal/cmd.version="+buildVersion,
			"-o", binPath, ".")
		buildCmd.Dir = ".." // Build from parent directory (project root)
		if out, err := buildCmd.CombinedOutput(); err != nil {
			panic(fmt.Sprintf("failed to build hiresignal: %v\n%s", err, out))
		}

		sharedBinaryPath = binPath
	})

	return sharedBinaryPath
}
