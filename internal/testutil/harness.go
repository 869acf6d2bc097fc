// Package testutil provides a harness that runs the whole application
// against HCL workbook fixtures written to a temporary directory.
package testutil

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/specialistvlad/formulagraph/internal/app"
	"github.com/specialistvlad/formulagraph/internal/hclbook"
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
	Dir       string
	Report    string
	LogOutput string
	Err       error
	App       *app.App
}

// WriteFiles writes files (relative path -> content) below a fresh
// temporary directory and returns it.
func WriteFiles(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		p := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	}
	return dir
}

// RunWorkbook writes the fixture files, points the app at their directory
// and runs it with debug logging. mutate may adjust the config before the
// app is created.
func RunWorkbook(t *testing.T, files map[string]string, mutate func(*app.Config)) *HarnessResult {
	t.Helper()
	dir := WriteFiles(t, files)

	cfg := &app.Config{
		WorkbookPath:  dir,
		LogFormat:     "text",
		LogLevel:      "debug",
		CommentMarker: "#",
		KeepUnparsed:  true,
		Header:        false,
	}
	if mutate != nil {
		mutate(cfg)
	}

	out := &SafeBuffer{}
	logs := &SafeBuffer{}
	a := app.NewApp(out, logs, cfg, hclbook.NewLoader())
	err := a.Run(context.Background())

	if os.Getenv("FORMULAGRAPH_TEST_LOGS") == "true" {
		t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logs.String())
	}

	return &HarnessResult{
		Dir:       dir,
		Report:    out.String(),
		LogOutput: logs.String(),
		Err:       err,
		App:       a,
	}
}
