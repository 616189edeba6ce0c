package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDisposeCounterCountsPerID(t *testing.T) {
	counter := NewDisposeCounter()
	a := counter.New(1)
	b := counter.New(2)

	a.Dispose()
	b.Dispose()
	b.Dispose()

	if got := counter.Total(); got != 3 {
		t.Fatalf("expected total 3, got %d", got)
	}
	if got := counter.Times(1); got != 1 {
		t.Fatalf("expected id 1 disposed once, got %d", got)
	}
	if got := counter.Times(2); got != 2 {
		t.Fatalf("expected id 2 disposed twice, got %d", got)
	}
	if got := counter.Times(3); got != 0 {
		t.Fatalf("expected unknown id to report 0, got %d", got)
	}
}

func TestWriteConfigCreatesFile(t *testing.T) {
	dir := t.TempDir()
	path := WriteConfig(t, dir, "[load]\nsmall = 5\n")

	if path != filepath.Join(dir, "config.toml") {
		t.Fatalf("unexpected path %q", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read config: %v", err)
	}
	if string(data) != "[load]\nsmall = 5\n" {
		t.Fatalf("unexpected content %q", data)
	}
}

func TestIntPtr(t *testing.T) {
	p := IntPtr(7)
	q := IntPtr(7)
	if *p != 7 || p == q {
		t.Fatalf("expected distinct pointers to 7")
	}
}
