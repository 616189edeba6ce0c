package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// DisposeCounter records Dispose calls across the Tracked values it creates.
type DisposeCounter struct {
	disposed map[int]int
	total    int
}

// NewDisposeCounter returns an empty counter.
func NewDisposeCounter() *DisposeCounter {
	return &DisposeCounter{disposed: make(map[int]int)}
}

// New returns a Tracked value with the given id that reports to c.
func (c *DisposeCounter) New(id int) *Tracked {
	return &Tracked{ID: id, counter: c}
}

// Total returns the number of Dispose calls seen so far.
func (c *DisposeCounter) Total() int {
	return c.total
}

// Times returns how often the value with the given id was disposed.
func (c *DisposeCounter) Times(id int) int {
	return c.disposed[id]
}

// Tracked is a disposable test value that reports each Dispose call.
type Tracked struct {
	ID      int
	counter *DisposeCounter
}

// Dispose records the call on the owning counter.
func (t *Tracked) Dispose() {
	if t.counter == nil {
		return
	}
	t.counter.disposed[t.ID]++
	t.counter.total++
}

// WriteConfig writes a config.toml with body into dir and returns its path.
// t is the active test; dir is the output directory.
func WriteConfig(t *testing.T, dir string, body string) string {
	t.Helper()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

// IntPtr returns a pointer to v.
// v is the integer value to take the address of.
func IntPtr(v int) *int {
	return &v
}
