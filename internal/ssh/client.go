package ssh

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log/slog"
	"net"
	"os"
	"strconv"
	"time"

	"golang.org/x/crypto/ssh"

	"github.com/hostlab/remsh/internal/config"
)

const (
	// DefaultPort is the SSH port used when none is configured.
	DefaultPort = 22
	// DefaultConnectTimeout bounds the transport-level connect.
	DefaultConnectTimeout = 10 * time.Second
	// DefaultCommandTimeout bounds a single remote command execution.
	DefaultCommandTimeout = 120 * time.Second
)

// ConnectOptions are the per-call connection parameters. Zero-valued fields
// fall back to the corresponding settings at connect time.
type ConnectOptions struct {
	Hostname string
	Username string
	Password string
	KeyFile  string // private key path, or key material (CI environments)
	Port     int
	Timeout  time.Duration
}

func (o ConnectOptions) withDefaults(settings *config.Settings) ConnectOptions {
	if o.Hostname == "" {
		o.Hostname = settings.Server.Hostname
	}
	if o.Username == "" {
		o.Username = settings.Server.SSHUsername
	}
	if o.Password == "" {
		o.Password = settings.Server.SSHPassword
	}
	if o.KeyFile == "" {
		o.KeyFile = settings.Server.SSHKey
	}
	if o.Port == 0 {
		o.Port = settings.Server.Port
	}
	if o.Port == 0 {
		o.Port = DefaultPort
	}
	if o.Timeout == 0 {
		o.Timeout = DefaultConnectTimeout
	}
	return o
}

// Client wraps one live SSH connection to a remote host. It owns the
// connection exclusively: every acquisition yields a private Client, and the
// connection is closed exactly once, on scope exit.
type Client struct {
	id       string
	hostname string
	username string
	conn     *ssh.Client
}

// Connect opens a transport connection using the given options, resolving
// unset parameters from settings. Connection and authentication failures
// propagate to the caller; there is no retry.
func Connect(settings *config.Settings, opts ConnectOptions) (*Client, error) {
	opts = opts.withDefaults(settings)

	auth, err := authMethods(opts)
	if err != nil {
		return nil, err
	}

	// Unknown host keys are accepted unconditionally. This trades
	// man-in-the-middle protection for automated-lab throughput; do not point
	// this tool at hosts whose identity actually matters.
	clientConfig := &ssh.ClientConfig{
		User:            opts.Username,
		Auth:            auth,
		HostKeyCallback: ssh.InsecureIgnoreHostKey(),
		Timeout:         opts.Timeout,
	}

	addr := net.JoinHostPort(opts.Hostname, strconv.Itoa(opts.Port))
	conn, err := ssh.Dial("tcp", addr, clientConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", addr, err)
	}

	client := &Client{
		id:       newSessionID(),
		hostname: opts.Hostname,
		username: opts.Username,
		conn:     conn,
	}
	slog.Debug("SSH connection established", "session", client.id, "host", opts.Hostname, "user", opts.Username)
	return client, nil
}

// ID returns the opaque identity token assigned to this connection, used
// only for correlating diagnostic log entries.
func (c *Client) ID() string {
	return c.id
}

// Hostname returns the remote host this client is bound to.
func (c *Client) Hostname() string {
	return c.hostname
}

// Username returns the remote account this client authenticated as.
func (c *Client) Username() string {
	return c.username
}

// Close closes the underlying connection. Safe to call on an already-closed
// client.
func (c *Client) Close() error {
	if c.conn == nil {
		return nil
	}
	conn := c.conn
	c.conn = nil
	slog.Debug("closing SSH connection", "session", c.id)
	return conn.Close()
}

// WithConnection acquires a connection, hands it to fn, and closes it when fn
// returns, whether fn succeeds or fails. This is the scoped-acquisition entry
// point: the close runs on every exit path, exactly once.
func WithConnection(settings *config.Settings, opts ConnectOptions, fn func(*Client) error) error {
	client, err := Connect(settings, opts)
	if err != nil {
		return err
	}
	return withClose(client, func(Runner) error {
		return fn(client)
	})
}

// withClose runs fn and closes client when it returns, on every exit path,
// exactly once. fn's error wins; a close failure is only logged.
func withClose(client Runner, fn func(Runner) error) error {
	defer func() {
		if cerr := client.Close(); cerr != nil {
			slog.Error("failed to close SSH connection", "error", cerr)
		}
	}()
	return fn(client)
}

// Command is the one-shot entry point: acquire a connection, run a single
// command, release the connection, return the result. The options timeout
// bounds both the connect and the command execution.
func Command(settings *config.Settings, command string, format OutputFormat, opts ConnectOptions) (*CommandResult, error) {
	timeout := opts.Timeout
	if timeout == 0 {
		timeout = DefaultConnectTimeout
	}
	var result *CommandResult
	err := WithConnection(settings, opts, func(client *Client) error {
		var runErr error
		result, runErr = client.RunTimeout(command, format, timeout)
		return runErr
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func authMethods(opts ConnectOptions) ([]ssh.AuthMethod, error) {
	var methods []ssh.AuthMethod

	if opts.KeyFile != "" {
		signer, err := loadSigner(opts.KeyFile)
		if err != nil {
			return nil, err
		}
		methods = append(methods, ssh.PublicKeys(signer))
	}
	if opts.Password != "" {
		methods = append(methods, ssh.Password(opts.Password))
	}
	if len(methods) == 0 {
		return nil, ErrNoAuthMethod
	}
	return methods, nil
}

// loadSigner accepts either a path to a private key file or raw key material
// (the latter so CI jobs can pass the key through an environment variable).
func loadSigner(keyFile string) (ssh.Signer, error) {
	if signer, err := ssh.ParsePrivateKey([]byte(keyFile)); err == nil {
		return signer, nil
	}

	data, err := os.ReadFile(keyFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read private key %s: %w", keyFile, err)
	}
	signer, err := ssh.ParsePrivateKey(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse private key %s: %w", keyFile, err)
	}
	return signer, nil
}

func newSessionID() string {
	b := make([]byte, 4)
	if _, err := rand.Read(b); err != nil {
		return "00000000"
	}
	return hex.EncodeToString(b)
}
