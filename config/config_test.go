package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFromMapAndHas(t *testing.T) {
	src, err := FromMap(map[string]any{
		"App": map[string]any{
			"Db": map[string]any{"Host": "x"},
		},
	})
	if err != nil {
		t.Fatalf("FromMap failed: %v", err)
	}

	if !src.Has("App:Db") {
		t.Error("expected App:Db section to exist")
	}
	if !src.Has("App:Db:Host") {
		t.Error("expected App:Db:Host value to exist")
	}
	if src.Has("App:Cache") {
		t.Error("expected App:Cache to be absent")
	}
}

func TestUnmarshalSection(t *testing.T) {
	src, err := FromMap(map[string]any{
		"App": map[string]any{
			"Db": map[string]any{"Host": "x", "Port": 5432},
		},
	})
	if err != nil {
		t.Fatalf("FromMap failed: %v", err)
	}

	var db struct {
		Host string
		Port int
	}
	if err := src.Unmarshal("App:Db", &db); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if db.Host != "x" || db.Port != 5432 {
		t.Errorf("expected {x 5432}, got %+v", db)
	}
}

func TestSetOverrides(t *testing.T) {
	src, err := FromMap(map[string]any{"App": map[string]any{"Name": "old"}})
	if err != nil {
		t.Fatalf("FromMap failed: %v", err)
	}

	src.Set("App:Name", "new")
	if got := src.Get("App:Name"); got != "new" {
		t.Errorf("expected override, got %v", got)
	}
}

func TestNormalizeKey(t *testing.T) {
	if got := NormalizeKey("App.Db.Host"); got != "App:Db:Host" {
		t.Errorf("expected App:Db:Host, got %q", got)
	}
}

func TestLoadFromConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yml")
	content := "App:\n  Server:\n    Port: 9090\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	src, err := Load("test-service", WithConfigFile(path))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got := src.Get("App:Server:Port"); got != 9090 {
		t.Errorf("expected 9090, got %v (%T)", got, got)
	}
}

func TestLoadEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yml")
	if err := os.WriteFile(path, []byte("App:\n  Name: from-file\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	t.Setenv("APP_NAME", "from-env")

	src, err := Load("test-service", WithConfigFile(path))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got := src.Get("App:Name"); got != "from-env" {
		t.Errorf("expected env override, got %v", got)
	}
}

func TestLoadEnvFile(t *testing.T) {
	dir := t.TempDir()
	envPath := filepath.Join(dir, ".env")
	if err := os.WriteFile(envPath, []byte("WIREKIT_TEST_TOKEN=abc123\n"), 0o600); err != nil {
		t.Fatalf("write .env: %v", err)
	}
	t.Cleanup(func() { os.Unsetenv("WIREKIT_TEST_TOKEN") })

	src, err := Load("test-service", WithEnvFile(envPath))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got := src.Get("WIREKIT_TEST_TOKEN"); got != "abc123" {
		t.Errorf("expected .env value, got %v", got)
	}
}

// fakeFS records lookups without touching the disk.
type fakeFS struct {
	files map[string]bool
}

func (f *fakeFS) Exists(path string) bool { return f.files[path] }
func (f *fakeFS) LoadEnv(string) error    { return nil }

func TestLoadDiscoversStandardLocations(t *testing.T) {
	fs := &fakeFS{files: map[string]bool{"./config.yml": true}}
	src, err := Load("svc", WithFileSystem(fs))
	// The fake reports the file exists but viper cannot read it; Load must
	// surface that rather than silently continue.
	if err == nil {
		t.Errorf("expected read error for phantom config file, got source %v", src)
	}
}
