package ssh

// Runner abstracts a connected session for command execution, allowing
// multi-step workflows to be exercised against a test double.
type Runner interface {
	Run(command string, format OutputFormat) (*CommandResult, error)
	Close() error
}

var _ Runner = (*Client)(nil)
