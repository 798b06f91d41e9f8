package security

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	// unixUserRegex validates Unix usernames
	// Standard POSIX username rules
	// Length: 1-32 characters
	unixUserRegex = regexp.MustCompile(`^[a-z_][a-z0-9_-]{0,31}$`)

	// sensitiveLogPatterns used by SanitizeCommandForLog to mask secrets
	sensitiveLogPatterns = []string{
		"--password=",
		"--password ",
		"PASSWORD=",
	}
)

// ValidateUnixUser validates a Unix username
func ValidateUnixUser(user string) error {
	if user == "" {
		return fmt.Errorf("username cannot be empty")
	}
	if len(user) > 32 {
		return fmt.Errorf("username too long (max 32 characters)")
	}
	if !unixUserRegex.MatchString(user) {
		return fmt.Errorf("username must start with a lowercase letter or underscore, followed by lowercase letters, numbers, underscores, or hyphens")
	}
	return nil
}

// ShellEscape escapes a string for safe use in shell commands by wrapping it
// in single quotes. Internal single quotes are escaped the POSIX way: close
// the quote, emit an escaped quote, reopen the quote.
func ShellEscape(s string) string {
	// Replace single quotes with the POSIX escape sequence: end quote, escaped quote, start quote
	escaped := strings.ReplaceAll(s, "'", "'\\''")
	return "'" + escaped + "'"
}

// SanitizeCommandForLog masks sensitive values in commands before logging.
// This prevents secrets from leaking into verbose output or log files.
func SanitizeCommandForLog(cmd string) string {
	result := cmd

	for _, pattern := range sensitiveLogPatterns {
		searchFrom := 0
		for {
			idx := strings.Index(result[searchFrom:], pattern)
			if idx == -1 {
				break
			}
			absIdx := searchFrom + idx
			// Find the end of the value (next space or end of string)
			valueStart := absIdx + len(pattern)
			valueEnd := findValueEnd(result, valueStart)
			masked := "****"
			result = result[:valueStart] + masked + result[valueEnd:]
			// Advance past the replacement to avoid infinite loop
			searchFrom = valueStart + len(masked)
		}
	}

	return result
}

// findValueEnd finds where a shell value ends (handles quoted and unquoted values)
func findValueEnd(s string, start int) int {
	if start >= len(s) {
		return start
	}

	// Handle single-quoted value
	if s[start] == '\'' {
		end := strings.Index(s[start+1:], "'")
		if end == -1 {
			return len(s)
		}
		return start + end + 2
	}

	// Handle double-quoted value
	if s[start] == '"' {
		end := strings.Index(s[start+1:], "\"")
		if end == -1 {
			return len(s)
		}
		return start + end + 2
	}

	// Unquoted: find next whitespace
	for i := start; i < len(s); i++ {
		if s[i] == ' ' || s[i] == '\t' || s[i] == '\n' {
			return i
		}
	}
	return len(s)
}
