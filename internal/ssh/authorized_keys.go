package ssh

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/hostlab/remsh/internal/config"
	"github.com/hostlab/remsh/internal/security"
)

const (
	remoteSSHDir       = "~/.ssh"
	authorizedKeysFile = "~/.ssh/authorized_keys"
)

// AddAuthorizedKey appends a public key to the remote account's
// authorized_keys file. key is either a literal public key string or a path
// to a local key file; anything else fails with ErrInvalidKey. The operation
// is idempotent: a key line already present is never appended twice.
func AddAuthorizedKey(settings *config.Settings, key string, opts ConnectOptions) error {
	keyText, err := resolveKeyText(key)
	if err != nil {
		return err
	}
	return addAuthorizedKey(settings, keyText, opts)
}

// AddAuthorizedKeyFrom reads the public key to install from r.
func AddAuthorizedKeyFrom(settings *config.Settings, r io.Reader, opts ConnectOptions) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("%w: failed to read key: %v", ErrInvalidKey, err)
	}
	return addAuthorizedKey(settings, strings.TrimSpace(string(data)), opts)
}

func addAuthorizedKey(settings *config.Settings, keyText string, opts ConnectOptions) error {
	username := opts.Username
	if username == "" {
		username = settings.Server.SSHUsername
	}
	return WithConnection(settings, opts, func(client *Client) error {
		return installAuthorizedKey(client, keyText, username)
	})
}

// installAuthorizedKey issues the installation steps in strict order over one
// session. The first step that exits non-zero aborts the whole operation.
func installAuthorizedKey(runner Runner, keyText, username string) error {
	key := security.ShellEscape(keyText)

	steps := []string{
		fmt.Sprintf("mkdir -p %s", remoteSSHDir),
		// append only if the identical line is not already present
		fmt.Sprintf("grep -q %s %s || echo %s >> %s", key, authorizedKeysFile, key, authorizedKeysFile),
		fmt.Sprintf("chmod 700 %s", remoteSSHDir),
		fmt.Sprintf("chmod 600 %s", authorizedKeysFile),
		fmt.Sprintf("chown -R %s %s", username, remoteSSHDir),
		// restore the SELinux label when restorecon exists; absence is success
		fmt.Sprintf("command -v restorecon && restorecon -RvF %s || true", remoteSSHDir),
	}

	for _, step := range steps {
		result, err := runner.Run(step, FormatDefault)
		if err != nil {
			return err
		}
		if result.ExitCode != 0 {
			return fmt.Errorf("remote step %q failed with exit status %d: %s", step, result.ExitCode, result.Stderr)
		}
	}
	return nil
}

// resolveKeyText turns key into public-key text: used directly when it is a
// valid key string, read from disk when it names an existing file.
func resolveKeyText(key string) (string, error) {
	if IsPublicKey(key) {
		return strings.TrimSpace(key), nil
	}
	if _, err := os.Stat(key); err == nil {
		data, err := os.ReadFile(key)
		if err != nil {
			return "", fmt.Errorf("%w: failed to read key file %s: %v", ErrInvalidKey, key, err)
		}
		return strings.TrimSpace(string(data)), nil
	}
	return "", fmt.Errorf("%w: not a valid key string or readable key file", ErrInvalidKey)
}
