package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/hostlab/remsh/internal/security"
	"github.com/hostlab/remsh/internal/ssh"
)

// connFlags are the per-command connection overrides shared by every command
// that talks to a remote host. Unset flags fall back to the settings file.
type connFlags struct {
	host        string
	user        string
	password    string
	keyFile     string
	port        int
	timeout     time.Duration
	askPassword bool
}

func (f *connFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.host, "host", "H", "", "Remote hostname (default: configured server)")
	cmd.Flags().StringVarP(&f.user, "user", "u", "", "SSH username")
	cmd.Flags().StringVar(&f.password, "password", "", "SSH password")
	cmd.Flags().BoolVar(&f.askPassword, "ask-password", false, "Prompt for the SSH password")
	cmd.Flags().StringVarP(&f.keyFile, "key", "k", "", "SSH private key path")
	cmd.Flags().IntVarP(&f.port, "port", "p", 0, "SSH port")
	cmd.Flags().DurationVar(&f.timeout, "timeout", 0, "Connect timeout (default 10s)")
}

func (f *connFlags) options() (ssh.ConnectOptions, error) {
	if f.user != "" {
		if err := security.ValidateUnixUser(f.user); err != nil {
			return ssh.ConnectOptions{}, fmt.Errorf("invalid user: %w", err)
		}
	}

	password := f.password
	if f.askPassword {
		if !IsInteractive() {
			return ssh.ConnectOptions{}, fmt.Errorf("--ask-password requires an interactive terminal")
		}
		prompted, err := PromptPassword("SSH password: ")
		if err != nil {
			return ssh.ConnectOptions{}, err
		}
		password = prompted
	}

	return ssh.ConnectOptions{
		Hostname: f.host,
		Username: f.user,
		Password: password,
		KeyFile:  f.keyFile,
		Port:     f.port,
		Timeout:  f.timeout,
	}, nil
}
