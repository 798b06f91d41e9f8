package ssh

// MockRunner is a test double that records commands and returns configured
// results.
type MockRunner struct {
	RunFunc  func(command string, format OutputFormat) (*CommandResult, error)
	Commands []string
	Closed   int
}

// Run records the command and delegates to RunFunc.
func (m *MockRunner) Run(command string, format OutputFormat) (*CommandResult, error) {
	m.Commands = append(m.Commands, command)
	if m.RunFunc != nil {
		return m.RunFunc(command, format)
	}
	return &CommandResult{ExitCode: 0, Format: format}, nil
}

// Close counts invocations so tests can assert the exactly-once guarantee.
func (m *MockRunner) Close() error {
	m.Closed++
	return nil
}
