package config

import (
	"fmt"
	"strings"
)

// ValidationError represents a settings validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors holds multiple validation errors
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	var msgs []string
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "; ")
}

// HasErrors returns true if there are validation errors
func (e ValidationErrors) HasErrors() bool {
	return len(e) > 0
}

// ValidateServerSettings checks that the settings can plausibly produce a
// connection. A credential is required because the transport rejects
// credential-less connects with an authentication failure anyway.
func ValidateServerSettings(server *ServerSettings) ValidationErrors {
	var errors ValidationErrors

	if server.Hostname == "" {
		errors = append(errors, ValidationError{
			Field:   "server.hostname",
			Message: "hostname is required",
		})
	}

	if server.SSHUsername == "" {
		errors = append(errors, ValidationError{
			Field:   "server.ssh_username",
			Message: "ssh username is required",
		})
	}

	if server.SSHKey == "" && server.SSHPassword == "" {
		errors = append(errors, ValidationError{
			Field:   "server.ssh_key",
			Message: "either ssh_key or ssh_password must be set",
		})
	}

	if server.Port < 0 || server.Port > 65535 {
		errors = append(errors, ValidationError{
			Field:   "server.port",
			Message: "port must be between 0 and 65535",
		})
	}

	return errors
}
