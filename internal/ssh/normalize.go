package ssh

import (
	"regexp"
	"strings"
)

// colorCode matches the ANSI SGR sequences the admin CLI uses to colorize
// its terminal output: ESC [ one-or-two-digits m.
var colorCode = regexp.MustCompile("\x1b\\[\\d{1,2}m")

// StripColorCodes removes ANSI color escape sequences from s.
func StripColorCodes(s string) string {
	return colorCode.ReplaceAllString(s, "")
}

// CleanLines reformats raw stdout into the line-oriented form used for
// default (unformatted) CLI output. The admin CLI quotes empty fields as ""
// and prefixes progress/log banner lines with '['; both are artifacts of the
// console, not command output, and are dropped here along with color codes.
func CleanLines(stdout string) []string {
	stdout = strings.ReplaceAll(stdout, `""`, "")
	stdout = strings.TrimSuffix(stdout, "\n")

	raw := strings.Split(stdout, "\n")
	lines := make([]string, 0, len(raw))
	for _, line := range raw {
		if strings.HasPrefix(line, "[") {
			continue
		}
		lines = append(lines, StripColorCodes(line))
	}
	return lines
}
