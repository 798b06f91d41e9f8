package cmd

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/hostlab/remsh/internal/ssh"
)

var downloadCmd = &cobra.Command{
	Use:   "download <remote> [local]",
	Short: "Download a file from the remote host",
	Long: `Downloads a remote file over SFTP. When no local path is given the
file is written to the remote path's basename in the current directory.

Example:
  remsh download /var/log/messages ./messages.log
  remsh download /etc/hosts`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runDownload,
}

var downloadConn connFlags

func init() {
	rootCmd.AddCommand(downloadCmd)
	downloadConn.register(downloadCmd)
}

func runDownload(cmd *cobra.Command, args []string) error {
	remotePath := args[0]
	localPath := ""
	if len(args) == 2 {
		localPath = args[1]
	}

	settings, err := loadSettings()
	if err != nil {
		return err
	}

	opts, err := downloadConn.options()
	if err != nil {
		return err
	}

	if err := ssh.DownloadFile(settings, remotePath, localPath, opts); err != nil {
		return err
	}

	if localPath == "" {
		localPath = filepath.Base(remotePath)
	}
	PrintSuccess("Downloaded %s to %s", remotePath, localPath)
	return nil
}
