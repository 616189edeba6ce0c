package messages

// CLI messages for user-facing commands and prompts.
const (
	// RootUse is the CLI command name.
	RootUse         = "ownerbench"
	RootShort       = "Exercise and benchmark the ownership handles and lists"
	RootLong        = "ownerbench runs functional checks and timed load runs for the exclusive and shared ownership handles, the lists built on them, and their Go-native counterparts."
	RootVersionFlag = "Print version and exit"
	RootConfigFlag  = "Path to config.toml (default ~/.config/ownerbench/config.toml)"
	RootNoColorFlag = "Disable colored output"

	// VersionCommitFmt formats the commit hash for version display.
	VersionCommitFmt = "commit %s"
	VersionBuildFmt  = "built %s"
	VersionFullFmt   = "%s (%s)"
	VersionTemplate  = "{{.Version}}\n"

	// RunUse is the run command usage.
	RunUse            = "run [suite...]"
	RunShort          = "Run suites (all suites when none are named)"
	RunFlagTiers      = "Load tiers to run (small, medium, big); overrides config"
	RunFlagFormat     = "Report format: text or json; overrides config"
	RunFlagNoProgress = "Do not draw progress bars"
	RunFlagNoLoad     = "Run functional checks only"
	RunUnknownSuite   = "unknown suite %q (run 'ownerbench suites' to list them)"
	RunFlagsSource    = "command line"

	// SuitesUse is the suites command name.
	SuitesUse     = "suites"
	SuitesShort   = "List available suites"
	SuitesLineFmt = "%-14s %s\n"

	// MenuUse is the menu command name.
	MenuUse              = "menu"
	MenuShort            = "Pick suites to run from an interactive menu"
	MenuTitle            = "Select a suite to run"
	MenuExitOption       = "Exit"
	MenuRequiresTerminal = "menu requires an interactive terminal"
	MenuUnknownChoiceFmt = "unknown menu choice %q"

	ConfigLoadFailedFmt = "load config: %w"
)

// Suite titles, shown in menus and report headers.
const (
	SuiteUniqueTitle       = "Unique pointer tests"
	SuiteSharedTitle       = "Shared pointer tests"
	SuiteListUniqueTitle   = "Linked list unique pointer tests"
	SuiteListSharedTitle   = "Linked list shared pointer tests"
	SuiteNativeUniqueTitle = "Native unique pointer tests"
	SuiteNativeSharedTitle = "Native shared pointer tests"
	SuiteNativeListTitle   = "Native linked list tests"

	// LoadCaseNameFmt names a load case after its tier.
	LoadCaseNameFmt = "load (%s)"
)

// Report messages.
const (
	ReportSuiteHeaderFmt = "%s:\n\n"
	ReportLineFmt        = "  %s %s: %s"
	ReportTimeFmt        = " Time: %d ms"
	ReportSizeFmt        = ", Size: %d"
	ReportMessageFmt     = " (%s)"
	ReportKindFunctional = "Functional test"
	ReportKindLoad       = "Load test"
	ReportStatusOK       = "Passed"
	ReportStatusFail     = "Failed"
	ReportStatusSkip     = "Skipped"
	ReportEncodeErrFmt   = "encode report: %w"
	ReportFailureSummary = "Some cases failed."
	ReportSuccessSummary = "All cases passed."
)
