package security

import (
	"strings"
	"testing"
)

func TestShellEscape(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "simple string",
			input:    "hello",
			expected: "'hello'",
		},
		{
			name:     "string with spaces",
			input:    "hello world",
			expected: "'hello world'",
		},
		{
			name:     "single quote",
			input:    "it's",
			expected: `'it'\''s'`,
		},
		{
			name:     "shell metacharacters",
			input:    "$(rm -rf /)",
			expected: "'$(rm -rf /)'",
		},
		{
			name:     "empty string",
			input:    "",
			expected: "''",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ShellEscape(tt.input); got != tt.expected {
				t.Errorf("ShellEscape(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestSanitizeCommandForLog(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		mustMask string
		mustKeep string
	}{
		{
			name:     "password flag with equals",
			input:    "admctl auth login --password=hunter2 --user admin",
			mustMask: "hunter2",
			mustKeep: "--user admin",
		},
		{
			name:     "password flag with space",
			input:    "admctl auth login --password hunter2",
			mustMask: "hunter2",
			mustKeep: "admctl auth login",
		},
		{
			name:     "quoted password",
			input:    `admctl auth login --password='se cret'`,
			mustMask: "se cret",
			mustKeep: "admctl",
		},
		{
			name:     "env assignment",
			input:    "PASSWORD=topsecret ./install.sh",
			mustMask: "topsecret",
			mustKeep: "./install.sh",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SanitizeCommandForLog(tt.input)
			if strings.Contains(got, tt.mustMask) {
				t.Errorf("sanitized %q still contains %q", got, tt.mustMask)
			}
			if !strings.Contains(got, tt.mustKeep) {
				t.Errorf("sanitized %q lost %q", got, tt.mustKeep)
			}
			if !strings.Contains(got, "****") {
				t.Errorf("sanitized %q has no mask", got)
			}
		})
	}
}

func TestSanitizeCommandForLog_QuotedValueMaskedWhole(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"--password 'x'", "--password ****"},
		{`--password "x y"`, "--password ****"},
		{"admctl login --password='se cret' --user admin", "admctl login --password=**** --user admin"},
	}

	for _, tt := range tests {
		if got := SanitizeCommandForLog(tt.input); got != tt.expected {
			t.Errorf("SanitizeCommandForLog(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestSanitizeCommandForLog_NoSecrets(t *testing.T) {
	input := "ls -la /tmp"
	if got := SanitizeCommandForLog(input); got != input {
		t.Errorf("got %q, want command unchanged", got)
	}
}

func TestValidateUnixUser(t *testing.T) {
	valid := []string{"root", "deploy", "_svc", "web-runner", "a"}
	for _, user := range valid {
		if err := ValidateUnixUser(user); err != nil {
			t.Errorf("ValidateUnixUser(%q) = %v, want nil", user, err)
		}
	}

	invalid := []string{"", "Root", "0user", "user name", strings.Repeat("a", 33)}
	for _, user := range invalid {
		if err := ValidateUnixUser(user); err == nil {
			t.Errorf("ValidateUnixUser(%q) = nil, want error", user)
		}
	}
}
