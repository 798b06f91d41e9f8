package ssh

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/crypto/ssh"

	"github.com/hostlab/remsh/internal/security"
)

// Run executes one command on this connection with the default command
// timeout and returns its result. A non-zero remote exit status is not an
// error: it is reported in the result so callers can assert on failure paths.
func (c *Client) Run(command string, format OutputFormat) (*CommandResult, error) {
	return c.RunTimeout(command, format, DefaultCommandTimeout)
}

// RunTimeout executes one command on this connection, blocking until the
// remote process terminates or the timeout elapses. On timeout the wait is
// abandoned and ErrCommandTimeout returned; the remote process is not
// terminated.
func (c *Client) RunTimeout(command string, format OutputFormat, timeout time.Duration) (*CommandResult, error) {
	if c.conn == nil {
		return nil, ErrNotConnected
	}
	if timeout <= 0 {
		timeout = DefaultCommandTimeout
	}

	session, err := c.conn.NewSession()
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}
	defer session.Close()

	var stdout, stderr bytes.Buffer
	session.Stdout = &stdout
	session.Stderr = &stderr

	slog.Info(">>> running remote command", "session", c.id, "command", security.SanitizeCommandForLog(command))

	if err := session.Start(command); err != nil {
		return nil, fmt.Errorf("failed to start command: %w", err)
	}

	done := make(chan error, 1)
	go func() { done <- session.Wait() }()

	var waitErr error
	select {
	case waitErr = <-done:
	case <-time.After(timeout):
		return nil, fmt.Errorf("%w: %q did not finish within %s", ErrCommandTimeout, command, timeout)
	}

	exitCode := 0
	if waitErr != nil {
		var exitErr *ssh.ExitError
		if !errors.As(waitErr, &exitErr) {
			return nil, fmt.Errorf("failed to run command: %w", waitErr)
		}
		exitCode = exitErr.ExitStatus()
	}

	if stdout.Len() > 0 {
		slog.Debug("<<< stdout", "session", c.id, "output", stdout.String())
	}
	if stderr.Len() > 0 {
		slog.Debug("<<< stderr", "session", c.id, "output", stderr.String())
	}

	return NewCommandResult(stdout.Bytes(), stderr.Bytes(), exitCode, format)
}
