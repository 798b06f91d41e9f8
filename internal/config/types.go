package config

// Settings is the process-wide configuration. It is loaded once at startup
// and treated as read-only afterwards; per-call connection parameters that
// are left unset fall back to these values.
type Settings struct {
	Server ServerSettings `yaml:"server"`
}

// ServerSettings describes the default target server and its credentials.
type ServerSettings struct {
	Hostname    string `yaml:"hostname"`
	SSHUsername string `yaml:"ssh_username"`
	// SSHKey is a path to the private key, or raw key material injected via
	// the REMSH_SSH_KEY environment variable in CI.
	SSHKey      string `yaml:"ssh_key,omitempty"`
	SSHPassword string `yaml:"ssh_password,omitempty"`
	Port        int    `yaml:"port,omitempty"`
}

// DefaultSettings returns the settings used when no config file exists.
func DefaultSettings() *Settings {
	return &Settings{
		Server: ServerSettings{
			SSHUsername: "root",
			Port:        22,
		},
	}
}
