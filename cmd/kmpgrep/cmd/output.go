package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/corey/kmpgrep/internal/app"
	"github.com/corey/kmpgrep/internal/config"
	"github.com/corey/kmpgrep/internal/domain/highlight"
	"github.com/corey/kmpgrep/internal/domain/kmp"
)

// ANSI codes for labels. Match highlighting itself goes through lipgloss.
const (
	colorReset = "\033[0m"
	colorBold  = "\033[1m"
	colorRed   = "\033[31m"
	colorGreen = "\033[32m"
	colorGray  = "\033[90m"
)

// paint wraps s in an ANSI code when color is on.
func paint(on bool, code, s string) string {
	if !on {
		return s
	}
	return code + s + colorReset
}

// printReport writes rep to out (human or JSON) and per-pattern errors to errOut.
func printReport(out, errOut io.Writer, rep *app.Report, opts config.Options) error {
	for _, e := range rep.Result.Entries {
		if e.Err != nil {
			fmt.Fprintf(errOut, "kmpgrep: %v\n", e.Err)
		}
	}

	if opts.JSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(toJSON(rep, opts))
	}

	useColor := resolveColor(opts.Color, out)
	var sb strings.Builder
	if opts.Highlight {
		err := highlight.Render(&sb, rep.Text, rep.Result, highlight.Options{
			Color:    useColor,
			MaxLines: opts.MaxLines,
		})
		if err != nil {
			return err
		}
	}
	sb.WriteString(formatResult(rep, useColor))
	_, err := io.WriteString(out, sb.String())
	return err
}

// formatResult renders the per-pattern lines and the timing footer.
//
//	Patterns: 'a', 'z'
//	Result:
//	  'a': (0, 1, 2)
//	  'z': not found
//	Time result - 0.000012345
func formatResult(rep *app.Report, useColor bool) string {
	res := rep.Result
	quoted := make([]string, len(res.Entries))
	for i, e := range res.Entries {
		quoted[i] = "'" + e.Pattern + "'"
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s %s\n", paint(useColor, colorBold, "Patterns:"), strings.Join(quoted, ", ")))
	sb.WriteString(paint(useColor, colorBold, "Result:") + "\n")
	for _, e := range res.Entries {
		switch {
		case e.Err != nil:
			sb.WriteString(fmt.Sprintf("  '%s': %s\n", e.Pattern, paint(useColor, colorRed, "error: "+e.Err.Error())))
		case e.Matches.Found():
			sb.WriteString(fmt.Sprintf("  '%s': %s\n", e.Pattern, paint(useColor, colorGreen, e.Matches.String())))
		default:
			sb.WriteString(fmt.Sprintf("  '%s': not found\n", e.Pattern))
		}
	}
	if res.Direction == kmp.Backward && res.Found() {
		sb.WriteString(paint(useColor, colorGray, "  (method last: positions are the rightmost index of each match)") + "\n")
	}
	sb.WriteString(fmt.Sprintf("Time result - %0.9f\n", rep.Elapsed.Seconds()))
	return sb.String()
}

type jsonEntry struct {
	Pattern string `json:"pattern"`
	Matches []int  `json:"matches"`
	Error   string `json:"error,omitempty"`
}

type jsonReport struct {
	Source     string      `json:"source"`
	Method     string      `json:"method"`
	Count      int         `json:"count"`
	IgnoreCase bool        `json:"ignore_case"`
	Bytes      bool        `json:"bytes"`
	ElapsedNS  int64       `json:"elapsed_ns"`
	Results    []jsonEntry `json:"results"`
}

// toJSON converts a report. "No matches" is encoded as null.
func toJSON(rep *app.Report, opts config.Options) jsonReport {
	out := jsonReport{
		Source:     rep.Source,
		Method:     rep.Result.Direction.String(),
		Count:      opts.Count,
		IgnoreCase: opts.IgnoreCase,
		Bytes:      rep.Result.Bytes,
		ElapsedNS:  rep.Elapsed.Nanoseconds(),
		Results:    make([]jsonEntry, len(rep.Result.Entries)),
	}
	for i, e := range rep.Result.Entries {
		je := jsonEntry{Pattern: e.Pattern, Matches: e.Matches}
		if e.Err != nil {
			je.Error = e.Err.Error()
		}
		out.Results[i] = je
	}
	return out
}
