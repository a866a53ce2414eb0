package config

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/vango-dev/hookdom/internal/errors"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func errorCode(err error) string {
	var he *errors.HookdomError
	if stderrors.As(err, &he) {
		return he.Code
	}
	return ""
}

func TestNew(t *testing.T) {
	cfg := New()
	want := &Config{
		Render:  RenderConfig{MaxUpdateDepth: DefaultMaxUpdateDepth},
		Server:  ServerConfig{Host: DefaultHost, Port: DefaultPort, WriteTimeout: DefaultWriteTimeout},
		Metrics: MetricsConfig{Namespace: DefaultNamespace},
		Tracing: TracingConfig{TracerName: DefaultNamespace},
	}
	if diff := cmp.Diff(want, cfg, cmpopts.IgnoreUnexported(Config{})); diff != "" {
		t.Errorf("New() mismatch (-want +got):\n%s", diff)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}
	if cfg.Address() != "localhost:4000" {
		t.Errorf("Address() = %q", cfg.Address())
	}
}

func TestLoadJSON(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "hookdom.json", `{
  "debug": true,
  "render": {"maxUpdateDepth": 50},
  "server": {"host": "0.0.0.0", "port": 8080, "writeTimeout": "2s"},
  "metrics": {"enabled": true},
  "snapshot": {"bucket": "snaps", "prefix": "p/", "region": "eu-west-1"}
}`)

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Path() != path {
		t.Errorf("Path() = %q, want %q", cfg.Path(), path)
	}
	if !cfg.Debug || cfg.Render.MaxUpdateDepth != 50 || !cfg.Metrics.Enabled {
		t.Errorf("cfg = %+v", cfg)
	}
	if cfg.Address() != "0.0.0.0:8080" {
		t.Errorf("Address() = %q", cfg.Address())
	}
	if d, err := cfg.WriteTimeout(); err != nil || d != 2*time.Second {
		t.Errorf("WriteTimeout() = %v, %v", d, err)
	}
	if cfg.Metrics.Namespace != DefaultNamespace {
		t.Errorf("Metrics.Namespace = %q, want default", cfg.Metrics.Namespace)
	}
	if cfg.Snapshot.Bucket != "snaps" || cfg.Snapshot.Region != "eu-west-1" {
		t.Errorf("Snapshot = %+v", cfg.Snapshot)
	}
}

func TestLoadYAML(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "hookdom.yaml", `
debug: true
server:
  port: 9000
tracing:
  enabled: true
  tracerName: preview
`)
	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !cfg.Debug || cfg.Server.Port != 9000 || cfg.Server.Host != DefaultHost {
		t.Errorf("cfg = %+v", cfg)
	}
	if !cfg.Tracing.Enabled || cfg.Tracing.TracerName != "preview" {
		t.Errorf("Tracing = %+v", cfg.Tracing)
	}
}

func TestLoadPrefersJSON(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "hookdom.json", `{"server": {"port": 1}}`)
	writeFile(t, dir, "hookdom.yml", "server:\n  port: 2\n")
	cfg, err := Load(dir)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Server.Port != 1 {
		t.Errorf("Server.Port = %d, want 1", cfg.Server.Port)
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	if _, err := Load(dir); errorCode(err) != "E141" {
		t.Errorf("missing config error = %v, want E141", err)
	}
	if _, err := LoadFile(filepath.Join(dir, "nope.json")); errorCode(err) != "E141" {
		t.Errorf("missing file error = %v, want E141", err)
	}

	bad := writeFile(t, dir, "bad.json", "{\n  \"debug\": true,\n  \"server\": {\n}")
	_, err := LoadFile(bad)
	if errorCode(err) != "E120" {
		t.Fatalf("bad JSON error = %v, want E120", err)
	}
	var he *errors.HookdomError
	stderrors.As(err, &he)
	if he.Location == nil || he.Location.Line != 4 {
		t.Errorf("bad JSON location = %v, want line 4", he.Location)
	}

	badYAML := writeFile(t, dir, "bad.yaml", "server:\n  port: [1, 2\n")
	if _, err := LoadFile(badYAML); errorCode(err) != "E120" {
		t.Errorf("bad YAML error = %v, want E120", err)
	}

	toml := writeFile(t, dir, "hookdom.toml", "debug = true\n")
	if _, err := LoadFile(toml); errorCode(err) != "E121" {
		t.Errorf("unsupported format error = %v, want E121", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"port too large", func(c *Config) { c.Server.Port = 70000 }},
		{"negative port", func(c *Config) { c.Server.Port = -1 }},
		{"zero depth", func(c *Config) { c.Render.MaxUpdateDepth = 0 }},
		{"bad timeout", func(c *Config) { c.Server.WriteTimeout = "soon" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := New()
			tt.mutate(cfg)
			if err := cfg.Validate(); errorCode(err) != "E122" {
				t.Errorf("Validate() = %v, want E122", err)
			}
		})
	}
}
