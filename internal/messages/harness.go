package messages

// Harness messages for case execution and checks.
const (
	HarnessPanicFmt  = "panic: %v"
	HarnessNoRunFunc = "case has nothing to run"

	// HarnessCheckFmt formats a failed expectation: what was checked, got, want.
	HarnessCheckFmt       = "%s: got %v, want %v"
	HarnessUpcastFailFmt  = "upcast: %v"
	HarnessUnknownTierFmt = "unknown load tier %q"
)
