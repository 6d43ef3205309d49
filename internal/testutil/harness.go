package testutil

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/specialistvlad/psetforge/internal/app"
	"github.com/specialistvlad/psetforge/internal/hcl"
	"github.com/specialistvlad/psetforge/internal/registry"
	"github.com/stretchr/testify/require"
)

// SafeBuffer is a thread-safe buffer for capturing log output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

// Write implements the io.Writer interface for SafeBuffer.
func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

// String implements the fmt.Stringer interface for SafeBuffer.
func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// HarnessResult holds the outcomes of an integration test run.
type HarnessResult struct {
	Output    string
	LogOutput string
	Err       error
	App       *app.App
}

// WriteCatalog writes files, keyed by slash-separated relative path, into a
// fresh temporary directory and returns that directory.
func WriteCatalog(t *testing.T, files map[string]string) string {
	t.Helper()

	dir := t.TempDir()
	for name, content := range files {
		filePath := filepath.Join(dir, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(filePath), 0755))
		require.NoError(t, os.WriteFile(filePath, []byte(content), 0644))
	}
	return dir
}

// RunIntegrationTest provides a standardized harness for running integration
// tests using a default background context.
func RunIntegrationTest(t *testing.T, files map[string]string, cfg app.Config, modules ...registry.Module) *HarnessResult {
	t.Helper()
	return RunIntegrationTestWithContext(context.Background(), t, files, cfg, modules...)
}

// RunIntegrationTestWithContext writes files to a temporary catalog, builds
// an App over it and runs it. Relative entries of cfg.Paths are resolved
// against the catalog directory; with no paths the whole directory is
// loaded. The process environment is ignored.
func RunIntegrationTestWithContext(ctx context.Context, t *testing.T, files map[string]string, cfg app.Config, modules ...registry.Module) *HarnessResult {
	t.Helper()

	if len(files) > 0 {
		dir := WriteCatalog(t, files)
		paths := []string{dir}
		if len(cfg.Paths) > 0 {
			paths = make([]string, len(cfg.Paths))
			for i, p := range cfg.Paths {
				if !filepath.IsAbs(p) {
					p = filepath.Join(dir, filepath.FromSlash(p))
				}
				paths[i] = p
			}
		}
		cfg.Paths = paths
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "debug"
	}

	appConfig, err := app.NewConfigFromEnv(cfg, map[string]string{})
	if err != nil {
		return &HarnessResult{Err: err}
	}

	out := &SafeBuffer{}
	logBuffer := &SafeBuffer{}
	testApp, err := app.NewApp(out, logBuffer, appConfig, hcl.NewLoader(), modules...)
	if err == nil {
		err = testApp.Run(ctx)
	}

	if os.Getenv("PSETFORGE_TEST_LOGS") == "true" {
		t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logBuffer.String())
	}

	return &HarnessResult{
		Output:    out.String(),
		LogOutput: logBuffer.String(),
		Err:       err,
		App:       testApp,
	}
}
