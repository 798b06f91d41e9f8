package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/hostlab/remsh/internal/ssh"
)

var runCmd = &cobra.Command{
	Use:   "run <command>",
	Short: "Execute a command on the remote host",
	Long: `Executes a command on the remote host and prints its output.

The --format flag selects how stdout is post-processed:
  (none)   strip color codes and console banner lines, print line by line
  plain    print stdout untouched
  csv      parse the admin CLI's tabular output into records
  json     parse stdout as JSON

Structured parsing only happens when the command exits with status 0.

Example:
  remsh run "systemctl status httpd"
  remsh run --format csv "admctl organization list --output csv"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runRun,
}

var (
	runConn           connFlags
	runFormat         string
	runCommandTimeout time.Duration
)

func init() {
	rootCmd.AddCommand(runCmd)
	runConn.register(runCmd)
	runCmd.Flags().StringVarP(&runFormat, "format", "f", "", "Output format: plain, csv, or json")
	runCmd.Flags().DurationVar(&runCommandTimeout, "command-timeout", ssh.DefaultCommandTimeout, "Remote command timeout")
}

func runRun(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}

	format, err := ssh.ParseFormat(runFormat)
	if err != nil {
		return err
	}

	opts, err := runConn.options()
	if err != nil {
		return err
	}

	command := strings.Join(args, " ")

	var result *ssh.CommandResult
	err = ssh.WithConnection(settings, opts, func(client *ssh.Client) error {
		var runErr error
		result, runErr = client.RunTimeout(command, format, runCommandTimeout)
		return runErr
	})
	if err != nil {
		return err
	}

	printResult(result)

	if result.ExitCode != 0 {
		return fmt.Errorf("command exited with status %d", result.ExitCode)
	}
	return nil
}

func printResult(result *ssh.CommandResult) {
	if result.Stderr != "" {
		fmt.Fprint(os.Stderr, result.Stderr)
	}

	if result.ExitCode != 0 {
		fmt.Print(result.Stdout)
		return
	}

	switch result.Format {
	case ssh.FormatPlain:
		fmt.Print(result.Stdout)
	case ssh.FormatJSON:
		if result.JSON == nil {
			return
		}
		pretty, err := json.MarshalIndent(result.JSON, "", "  ")
		if err != nil {
			fmt.Print(result.Stdout)
			return
		}
		fmt.Println(string(pretty))
	case ssh.FormatCSV:
		for i, record := range result.Records {
			if i > 0 {
				fmt.Println()
			}
			fields := make([]string, 0, len(record))
			for field := range record {
				fields = append(fields, field)
			}
			sort.Strings(fields)
			for _, field := range fields {
				fmt.Printf("%s: %s\n", field, record[field])
			}
		}
	default:
		for _, line := range result.Lines {
			fmt.Println(line)
		}
	}
}
