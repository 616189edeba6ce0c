package main

import (
	"fmt"
	"io"

	"github.com/bytedance/sonic"
	"github.com/fatih/color"

	"github.com/conn-castle/ownerbench/internal/harness"
	"github.com/conn-castle/ownerbench/internal/messages"
)

// jsonReport is the --format json document.
type jsonReport struct {
	Results []harness.Result `json:"results"`
	Failed  bool             `json:"failed"`
}

func writeTextSuite(out io.Writer, title string, results []harness.Result) {
	_, _ = fmt.Fprintf(out, messages.ReportSuiteHeaderFmt, title)
	for _, r := range results {
		printResult(out, r)
	}
	_, _ = fmt.Fprintln(out)
}

func printResult(out io.Writer, r harness.Result) {
	kind := messages.ReportKindFunctional
	if r.Kind == harness.KindLoad {
		kind = messages.ReportKindLoad
	}

	var status string
	switch r.Status {
	case harness.StatusOK:
		status = color.GreenString(messages.ReportStatusOK)
	case harness.StatusFail:
		status = color.RedString(messages.ReportStatusFail)
	case harness.StatusSkip:
		status = color.YellowString(messages.ReportStatusSkip)
	}

	_, _ = fmt.Fprintf(out, messages.ReportLineFmt, kind, r.Case, status)
	if r.Kind == harness.KindLoad && r.Status == harness.StatusOK {
		_, _ = fmt.Fprintf(out, messages.ReportTimeFmt, r.Duration.Milliseconds())
		if r.Size > 0 {
			_, _ = fmt.Fprintf(out, messages.ReportSizeFmt, r.Size)
		}
	}
	if r.Message != "" {
		_, _ = fmt.Fprintf(out, messages.ReportMessageFmt, r.Message)
	}
	_, _ = fmt.Fprintln(out)
}

func writeTextSummary(out io.Writer, failed bool) {
	if failed {
		_, _ = fmt.Fprintln(out, color.RedString(messages.ReportFailureSummary))
		return
	}
	_, _ = fmt.Fprintln(out, color.GreenString(messages.ReportSuccessSummary))
}

func writeJSONReport(out io.Writer, results []harness.Result) error {
	if results == nil {
		results = []harness.Result{}
	}
	data, err := sonic.MarshalIndent(jsonReport{Results: results, Failed: harness.Failed(results)}, "", "  ")
	if err != nil {
		return fmt.Errorf(messages.ReportEncodeErrFmt, err)
	}
	_, err = fmt.Fprintln(out, string(data))
	return err
}
