package ssh

import (
	"fmt"

	"github.com/hostlab/remsh/internal/records"
)

// OutputFormat selects how a command's stdout is post-processed.
type OutputFormat int

const (
	// FormatDefault applies the line-oriented cleanup (color codes stripped,
	// console banner lines dropped) without structured parsing.
	FormatDefault OutputFormat = iota
	// FormatPlain keeps stdout as a single text blob.
	FormatPlain
	// FormatCSV parses stdout as tabular CLI output into records.
	FormatCSV
	// FormatJSON parses stdout as a JSON document.
	FormatJSON
)

// String returns the format name as used on the admin CLI's --output flag.
func (f OutputFormat) String() string {
	switch f {
	case FormatPlain:
		return "plain"
	case FormatCSV:
		return "csv"
	case FormatJSON:
		return "json"
	default:
		return ""
	}
}

// ParseFormat maps a format name to an OutputFormat. The empty string selects
// the default line-oriented cleanup. Unknown names are an error rather than a
// silent fallthrough.
func ParseFormat(s string) (OutputFormat, error) {
	switch s {
	case "":
		return FormatDefault, nil
	case "plain":
		return FormatPlain, nil
	case "csv":
		return FormatCSV, nil
	case "json":
		return FormatJSON, nil
	default:
		return FormatDefault, fmt.Errorf("unknown output format %q (use plain, csv, or json)", s)
	}
}

// CommandResult is the immutable outcome of one executed command.
//
// Stdout always holds the decoded stdout text. Lines holds the line-oriented
// cleanup and is populated for the default and CSV formats. Records and JSON
// hold structured values and are populated only when the command exited with
// status 0; a non-zero exit makes structured output untrustworthy, so it is
// never parsed.
type CommandResult struct {
	Stdout   string
	Lines    []string
	Records  []records.Record
	JSON     any
	Stderr   string
	ExitCode int
	Format   OutputFormat
}

// NewCommandResult builds a CommandResult from captured raw output, applying
// the normalization and format-specific parsing rules.
func NewCommandResult(stdout, stderr []byte, exitCode int, format OutputFormat) (*CommandResult, error) {
	result := &CommandResult{
		Stdout:   string(stdout),
		Stderr:   StripColorCodes(string(stderr)),
		ExitCode: exitCode,
		Format:   format,
	}

	switch format {
	case FormatPlain, FormatJSON:
		// kept as a single blob; JSON is parsed below on success
	case FormatDefault, FormatCSV:
		if result.Stdout != "" {
			result.Lines = CleanLines(result.Stdout)
		}
	}

	if exitCode != 0 {
		return result, nil
	}

	switch format {
	case FormatCSV:
		if len(result.Lines) == 0 {
			result.Records = []records.Record{}
			return result, nil
		}
		recs, err := records.ParseCSV(result.Lines)
		if err != nil {
			return nil, err
		}
		result.Records = recs
	case FormatJSON:
		if result.Stdout == "" {
			return result, nil
		}
		value, err := records.ParseJSON(result.Stdout)
		if err != nil {
			return nil, err
		}
		result.JSON = value
	}

	return result, nil
}
