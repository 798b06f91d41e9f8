package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/hostlab/remsh/internal/ssh"
)

var uploadCmd = &cobra.Command{
	Use:   "upload <local> <remote>",
	Short: "Upload a file to the remote host",
	Long: `Uploads a local file to the remote host over SFTP.

Use "-" as the local path to read from stdin.

Example:
  remsh upload ./manifest.zip /tmp/manifest.zip
  cat report.txt | remsh upload - /tmp/report.txt`,
	Args: cobra.ExactArgs(2),
	RunE: runUpload,
}

var uploadConn connFlags

func init() {
	rootCmd.AddCommand(uploadCmd)
	uploadConn.register(uploadCmd)
}

func runUpload(cmd *cobra.Command, args []string) error {
	localPath, remotePath := args[0], args[1]

	settings, err := loadSettings()
	if err != nil {
		return err
	}

	opts, err := uploadConn.options()
	if err != nil {
		return err
	}

	if localPath == "-" {
		if err := ssh.UploadFrom(settings, os.Stdin, remotePath, opts); err != nil {
			return err
		}
	} else if err := ssh.UploadFile(settings, localPath, remotePath, opts); err != nil {
		return err
	}

	PrintSuccess("Uploaded %s to %s", localPath, remotePath)
	return nil
}
