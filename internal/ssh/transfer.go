package ssh

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/pkg/sftp"

	"github.com/hostlab/remsh/internal/config"
)

// remoteFiles is the subset of the SFTP channel the transfer helpers use,
// split out so the put/get logic can be exercised without a live server.
type remoteFiles interface {
	Create(path string) (io.WriteCloser, error)
	Open(path string) (io.ReadCloser, error)
}

type sftpFiles struct {
	client *sftp.Client
}

func (s sftpFiles) Create(path string) (io.WriteCloser, error) { return s.client.Create(path) }
func (s sftpFiles) Open(path string) (io.ReadCloser, error)    { return s.client.Open(path) }

// UploadFile uploads a local file to the remote host over an SFTP sub-channel
// on a freshly acquired connection.
func UploadFile(settings *config.Settings, localPath, remotePath string, opts ConnectOptions) error {
	local, err := os.Open(localPath)
	if err != nil {
		return fmt.Errorf("failed to open local file: %w", err)
	}
	defer local.Close()

	return UploadFrom(settings, local, remotePath, opts)
}

// UploadFrom uploads the contents of src to remotePath. A failure mid-transfer
// propagates and leaves the remote file in an indeterminate state.
func UploadFrom(settings *config.Settings, src io.Reader, remotePath string, opts ConnectOptions) error {
	return WithConnection(settings, opts, func(client *Client) error {
		return client.withSFTP(func(sftpClient *sftp.Client) error {
			return putFile(sftpFiles{sftpClient}, src, remotePath)
		})
	})
}

// DownloadFile downloads a remote file to localPath. When localPath is empty
// the remote file's basename in the current directory is used.
func DownloadFile(settings *config.Settings, remotePath, localPath string, opts ConnectOptions) error {
	if localPath == "" {
		localPath = filepath.Base(remotePath)
	}
	return WithConnection(settings, opts, func(client *Client) error {
		return client.withSFTP(func(sftpClient *sftp.Client) error {
			return getFile(sftpFiles{sftpClient}, remotePath, localPath)
		})
	})
}

func putFile(remote remoteFiles, src io.Reader, remotePath string) error {
	dst, err := remote.Create(remotePath)
	if err != nil {
		return fmt.Errorf("failed to create remote file %s: %w", remotePath, err)
	}
	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		return fmt.Errorf("failed to upload to %s: %w", remotePath, err)
	}
	return dst.Close()
}

func getFile(remote remoteFiles, remotePath, localPath string) error {
	src, err := remote.Open(remotePath)
	if err != nil {
		return fmt.Errorf("failed to open remote file %s: %w", remotePath, err)
	}
	defer src.Close()

	local, err := os.Create(localPath)
	if err != nil {
		return fmt.Errorf("failed to create local file %s: %w", localPath, err)
	}
	if _, err := io.Copy(local, src); err != nil {
		local.Close()
		return fmt.Errorf("failed to download %s: %w", remotePath, err)
	}
	return local.Close()
}

// withSFTP opens an SFTP sub-channel on the live connection, hands it to fn,
// and releases the sub-channel before the connection itself closes.
func (c *Client) withSFTP(fn func(*sftp.Client) error) error {
	if c.conn == nil {
		return ErrNotConnected
	}
	sftpClient, err := sftp.NewClient(c.conn)
	if err != nil {
		return fmt.Errorf("failed to open SFTP channel: %w", err)
	}
	defer func() {
		if cerr := sftpClient.Close(); cerr != nil {
			slog.Error("failed to close SFTP channel", "session", c.id, "error", cerr)
		}
	}()
	return fn(sftpClient)
}
