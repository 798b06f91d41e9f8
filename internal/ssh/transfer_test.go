package ssh

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hostlab/remsh/internal/config"
)

// fakeFiles emulates the remote filesystem behind the SFTP channel.
type fakeFiles struct {
	files map[string][]byte
}

func newFakeFiles() *fakeFiles {
	return &fakeFiles{files: make(map[string][]byte)}
}

func (f *fakeFiles) Create(path string) (io.WriteCloser, error) {
	return &fakeFile{path: path, fs: f}, nil
}

func (f *fakeFiles) Open(path string) (io.ReadCloser, error) {
	data, ok := f.files[path]
	if !ok {
		return nil, fmt.Errorf("no such file: %s", path)
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

// fakeFile buffers writes and commits them on Close, like a remote handle.
type fakeFile struct {
	buf  bytes.Buffer
	path string
	fs   *fakeFiles
}

func (w *fakeFile) Write(p []byte) (int, error) { return w.buf.Write(p) }

func (w *fakeFile) Close() error {
	w.fs.files[w.path] = w.buf.Bytes()
	return nil
}

func TestPutGetFile_RoundTrip(t *testing.T) {
	payload := []byte("line one\nline two\x00\x1b[31mbinary bytes\xff\n")
	remote := newFakeFiles()

	if err := putFile(remote, bytes.NewReader(payload), "/tmp/payload.bin"); err != nil {
		t.Fatalf("putFile: %v", err)
	}

	localPath := filepath.Join(t.TempDir(), "payload.bin")
	if err := getFile(remote, "/tmp/payload.bin", localPath); err != nil {
		t.Fatalf("getFile: %v", err)
	}

	got, err := os.ReadFile(localPath)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, payload) {
		t.Errorf("round trip changed the content:\ngot  %q\nwant %q", got, payload)
	}
}

func TestPutFile_FromLocalFile(t *testing.T) {
	payload := []byte("manifest contents\n")
	localPath := filepath.Join(t.TempDir(), "manifest.zip")
	if err := os.WriteFile(localPath, payload, 0600); err != nil {
		t.Fatal(err)
	}

	local, err := os.Open(localPath)
	if err != nil {
		t.Fatal(err)
	}
	defer local.Close()

	remote := newFakeFiles()
	if err := putFile(remote, local, "/tmp/manifest.zip"); err != nil {
		t.Fatalf("putFile: %v", err)
	}
	if !bytes.Equal(remote.files["/tmp/manifest.zip"], payload) {
		t.Errorf("remote content = %q, want %q", remote.files["/tmp/manifest.zip"], payload)
	}
}

func TestGetFile_MissingRemoteFile(t *testing.T) {
	remote := newFakeFiles()
	localPath := filepath.Join(t.TempDir(), "out")

	err := getFile(remote, "/does/not/exist", localPath)
	if err == nil {
		t.Fatal("expected error for missing remote file")
	}
	if _, statErr := os.Stat(localPath); statErr == nil {
		t.Error("local file created despite missing remote file")
	}
}

func TestUploadFile_MissingLocalFile(t *testing.T) {
	// The local side is opened before any connection is attempted.
	err := UploadFile(&config.Settings{}, "/does/not/exist", "/tmp/target", ConnectOptions{})
	if err == nil {
		t.Fatal("expected error for missing local file")
	}
	if !strings.Contains(err.Error(), "failed to open local file") {
		t.Errorf("unexpected error: %v", err)
	}
}
