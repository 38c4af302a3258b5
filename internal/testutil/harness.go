package testutil

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/specialistvlad/glyphgen/internal/app"
	"github.com/specialistvlad/glyphgen/internal/hcl"
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
	Root      string
	Output    string
	LogOutput string
	Err       error
}

// Path joins name onto the harness root directory.
func (r *HarnessResult) Path(name string) string {
	return filepath.Join(r.Root, filepath.FromSlash(name))
}

// WriteFiles creates the given files below a fresh temporary directory and
// returns that directory. Names use forward slashes.
func WriteFiles(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for name, content := range files {
		path := filepath.Join(root, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	return root
}

// RunApp writes files to a temporary root, lets configure build the app
// configuration against that root and runs the app once with debug logging.
func RunApp(t *testing.T, files map[string]string, configure func(root string) app.Config) *HarnessResult {
	t.Helper()

	root := WriteFiles(t, files)
	cfg := configure(root)
	cfg.LogLevel = "debug"
	cfg.LogFormat = "text"

	out := &SafeBuffer{}
	logs := &SafeBuffer{}
	result := &HarnessResult{Root: root}

	appConfig, err := app.NewConfig(cfg)
	if err == nil {
		err = app.NewApp(out, logs, appConfig, hcl.NewLoader()).Run(context.Background())
	}

	if os.Getenv("GLYPHGEN_TEST_LOGS") == "true" {
		t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logs.String())
	}

	result.Output = out.String()
	result.LogOutput = logs.String()
	result.Err = err
	return result
}
