package app

import (
	"bytes"
	"os"
	"sync"
	"testing"
)

// SafeBuffer is a thread-safe buffer for capturing log output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// SetupAppTest creates a new app instance for system testing. Standard
// output is captured in the returned bytes.Buffer and debug logs in the
// SafeBuffer.
func SetupAppTest(t *testing.T, config *Config) (*App, *bytes.Buffer, *SafeBuffer) {
	t.Helper()

	outBuffer := &bytes.Buffer{}
	logBuffer := &SafeBuffer{}
	config.LogLevel = "debug"
	testApp := NewApp(outBuffer, logBuffer, config)

	t.Cleanup(func() {
		if os.Getenv("FUELSUM_TEST_LOGS") == "true" {
			t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logBuffer.String())
		}
	})

	return testApp, outBuffer, logBuffer
}
