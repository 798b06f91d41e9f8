package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hostlab/remsh/internal/ssh"
)

var keyCmd = &cobra.Command{
	Use:   "key",
	Short: "Validate and install SSH public keys",
}

var keyAddCmd = &cobra.Command{
	Use:   "add <key>",
	Short: "Install a public key on the remote account",
	Long: `Appends a public key to the remote account's authorized_keys file.

The key may be a literal key string, a path to a local public key file, or
"-" to read the key from stdin. Running the command twice never duplicates
the key line.

Example:
  remsh key add ~/.ssh/id_ed25519.pub
  remsh key add "ssh-ed25519 AAAA... tester@lab"`,
	Args: cobra.ExactArgs(1),
	RunE: runKeyAdd,
}

var keyCheckCmd = &cobra.Command{
	Use:   "check <key>",
	Short: "Check whether a string is a valid SSH public key",
	Args:  cobra.ExactArgs(1),
	RunE:  runKeyCheck,
}

var keyAddConn connFlags

func init() {
	rootCmd.AddCommand(keyCmd)
	keyCmd.AddCommand(keyAddCmd)
	keyCmd.AddCommand(keyCheckCmd)
	keyAddConn.register(keyAddCmd)
}

func runKeyAdd(cmd *cobra.Command, args []string) error {
	key := args[0]

	settings, err := loadSettings()
	if err != nil {
		return err
	}

	opts, err := keyAddConn.options()
	if err != nil {
		return err
	}

	if key == "-" {
		err = ssh.AddAuthorizedKeyFrom(settings, os.Stdin, opts)
	} else {
		err = ssh.AddAuthorizedKey(settings, key, opts)
	}
	if err != nil {
		return err
	}

	PrintSuccess("Public key installed on the remote account")
	return nil
}

func runKeyCheck(cmd *cobra.Command, args []string) error {
	if !ssh.IsPublicKey(args[0]) {
		return fmt.Errorf("not a valid SSH public key")
	}
	PrintSuccess("Valid SSH public key")
	return nil
}
