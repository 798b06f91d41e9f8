package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/hostlab/remsh/internal/config"
)

var (
	// Version is set at build time
	Version = "dev"

	// Global flags
	verbose bool
	cfgFile string
)

var rootCmd = &cobra.Command{
	Use:   "remsh",
	Short: "Drive a remote admin CLI over reusable SSH sessions",
	Long: `remsh executes commands on remote hosts over SSH, normalizes their
output, and understands the structured (CSV/JSON) output of the remote
administration CLI.

Quick start:
  remsh server set hostname lab.example.com
  remsh server set ssh_username root
  remsh run "uname -a"
  remsh run --format csv "admctl host list --output csv"

Commands:
  run           Execute a command on the remote host
  upload        Upload a file over SFTP
  download      Download a file over SFTP
  key           Validate and install SSH public keys
  server        Manage the default server settings

CI/CD Environment Variables:
  REMSH_CONFIG        Settings file path
  REMSH_HOSTNAME      Default server hostname
  REMSH_SSH_USERNAME  Default SSH username
  REMSH_SSH_KEY       SSH private key path or content
  REMSH_SSH_PASSWORD  SSH password
  REMSH_SSH_PORT      SSH port`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: false,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			slog.SetLogLoggerLevel(slog.LevelDebug)
		}
	},
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// GetRootCmd returns the root command (used by the docs generator)
func GetRootCmd() *cobra.Command {
	return rootCmd
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Show detailed logs")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Settings file (default: ~/.config/remsh/config.yaml)")

	rootCmd.SetVersionTemplate(`remsh {{.Version}}
`)
}

// loadSettings loads the process-wide settings once per invocation
func loadSettings() (*config.Settings, error) {
	return config.Load(cfgFile)
}

// PrintError prints a formatted error message
func PrintError(msg string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "❌ "+msg+"\n", args...)
}

// PrintSuccess prints a success message
func PrintSuccess(msg string, args ...interface{}) {
	fmt.Printf("✅ "+msg+"\n", args...)
}

// PrintInfo prints an info message
func PrintInfo(msg string, args ...interface{}) {
	fmt.Printf("ℹ️  "+msg+"\n", args...)
}

// PrintWarning prints a warning message
func PrintWarning(msg string, args ...interface{}) {
	fmt.Printf("⚠️  "+msg+"\n", args...)
}
