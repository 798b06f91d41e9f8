package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_MissingFileYieldsDefaults(t *testing.T) {
	settings, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if settings.Server.SSHUsername != "root" {
		t.Errorf("SSHUsername = %q, want default root", settings.Server.SSHUsername)
	}
	if settings.Server.Port != 22 {
		t.Errorf("Port = %d, want default 22", settings.Server.Port)
	}
}

func TestLoad_ParsesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `server:
  hostname: lab.example.com
  ssh_username: tester
  ssh_key: /home/tester/.ssh/id_ed25519
  port: 2222
`
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}

	settings, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if settings.Server.Hostname != "lab.example.com" {
		t.Errorf("Hostname = %q", settings.Server.Hostname)
	}
	if settings.Server.SSHUsername != "tester" {
		t.Errorf("SSHUsername = %q", settings.Server.SSHUsername)
	}
	if settings.Server.Port != 2222 {
		t.Errorf("Port = %d", settings.Server.Port)
	}
}

func TestLoad_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("server: [unclosed"), 0600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected error for malformed YAML")
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `server:
  hostname: from-file.example.com
  ssh_username: filer
`
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}

	t.Setenv("REMSH_HOSTNAME", "from-env.example.com")
	t.Setenv("REMSH_SSH_PASSWORD", "envsecret")
	t.Setenv("REMSH_SSH_PORT", "2200")

	settings, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if settings.Server.Hostname != "from-env.example.com" {
		t.Errorf("Hostname = %q, env should win", settings.Server.Hostname)
	}
	if settings.Server.SSHUsername != "filer" {
		t.Errorf("SSHUsername = %q, file value should survive", settings.Server.SSHUsername)
	}
	if settings.Server.SSHPassword != "envsecret" {
		t.Errorf("SSHPassword = %q", settings.Server.SSHPassword)
	}
	if settings.Server.Port != 2200 {
		t.Errorf("Port = %d", settings.Server.Port)
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.yaml")

	original := &Settings{
		Server: ServerSettings{
			Hostname:    "lab.example.com",
			SSHUsername: "tester",
			SSHPassword: "secret",
			Port:        22,
		},
	}
	if err := Save(original, path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Mode().Perm() != 0600 {
		t.Errorf("settings file mode = %v, want 0600", info.Mode().Perm())
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if *loaded != *original {
		t.Errorf("round trip mismatch: %+v != %+v", loaded, original)
	}
}

func TestValidateServerSettings(t *testing.T) {
	tests := []struct {
		name    string
		server  ServerSettings
		wantErr bool
	}{
		{
			name:   "complete with key",
			server: ServerSettings{Hostname: "h", SSHUsername: "u", SSHKey: "/k", Port: 22},
		},
		{
			name:   "complete with password",
			server: ServerSettings{Hostname: "h", SSHUsername: "u", SSHPassword: "p", Port: 22},
		},
		{
			name:    "missing hostname",
			server:  ServerSettings{SSHUsername: "u", SSHKey: "/k", Port: 22},
			wantErr: true,
		},
		{
			name:    "missing credential",
			server:  ServerSettings{Hostname: "h", SSHUsername: "u", Port: 22},
			wantErr: true,
		},
		{
			name:    "port out of range",
			server:  ServerSettings{Hostname: "h", SSHUsername: "u", SSHKey: "/k", Port: 70000},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := ValidateServerSettings(&tt.server)
			if errs.HasErrors() != tt.wantErr {
				t.Errorf("HasErrors() = %v, want %v (%v)", errs.HasErrors(), tt.wantErr, errs)
			}
		})
	}
}
