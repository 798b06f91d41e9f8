package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/hostlab/remsh/internal/config"
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Manage the default server settings",
	Long:  `Commands to inspect and change the configured default server.`,
}

var serverSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a server settings value",
	Long: `Sets a value in the settings file.

Available keys:
  hostname      Default server hostname
  ssh_username  Default SSH username
  ssh_key       Default SSH private key path
  ssh_password  Default SSH password
  port          Default SSH port

Examples:
  remsh server set hostname lab.example.com
  remsh server set ssh_key ~/.ssh/id_ed25519`,
	Args: cobra.ExactArgs(2),
	RunE: runServerSet,
}

var serverShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the configured server settings",
	RunE:  runServerShow,
}

func init() {
	rootCmd.AddCommand(serverCmd)
	serverCmd.AddCommand(serverSetCmd)
	serverCmd.AddCommand(serverShowCmd)
}

func runServerSet(cmd *cobra.Command, args []string) error {
	key, value := args[0], args[1]

	settings, err := loadSettings()
	if err != nil {
		return err
	}

	switch key {
	case "hostname":
		settings.Server.Hostname = value
	case "ssh_username":
		settings.Server.SSHUsername = value
	case "ssh_key":
		settings.Server.SSHKey = value
	case "ssh_password":
		settings.Server.SSHPassword = value
	case "port":
		port, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid port: %s", value)
		}
		settings.Server.Port = port
	default:
		return fmt.Errorf("unknown settings key %q (use hostname, ssh_username, ssh_key, ssh_password, or port)", key)
	}

	if errs := config.ValidateServerSettings(&settings.Server); errs.HasErrors() {
		PrintWarning("Settings incomplete: %v", errs)
	}

	if err := config.Save(settings, cfgFile); err != nil {
		return err
	}

	PrintSuccess("Set %s", key)
	return nil
}

func runServerShow(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}

	server := settings.Server
	fmt.Printf("hostname:      %s\n", server.Hostname)
	fmt.Printf("ssh_username:  %s\n", server.SSHUsername)
	fmt.Printf("ssh_key:       %s\n", server.SSHKey)
	password := ""
	if server.SSHPassword != "" {
		password = "****"
	}
	fmt.Printf("ssh_password:  %s\n", password)
	fmt.Printf("port:          %d\n", server.Port)
	return nil
}
