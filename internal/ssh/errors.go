package ssh

import "errors"

var (
	// ErrNotConnected is returned when a command is issued on a closed client.
	ErrNotConnected = errors.New("ssh connection not established")

	// ErrNoAuthMethod is returned when neither a password nor a key resolves
	// to a usable credential by connect time.
	ErrNoAuthMethod = errors.New("no authentication method provided")

	// ErrCommandTimeout is returned when a remote command does not terminate
	// within its timeout. The remote process may still be running.
	ErrCommandTimeout = errors.New("remote command timed out")

	// ErrInvalidKey is returned when key material cannot be resolved to a
	// public key string, a readable stream, or an existing key file.
	ErrInvalidKey = errors.New("invalid public key")

	// ErrInvalidInputType signals a non-string value passed where key text
	// was expected. Distinct from a key that merely fails validation.
	ErrInvalidInputType = errors.New("key must be a string")
)
