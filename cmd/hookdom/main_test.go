package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vango-dev/hookdom/internal/config"
	"github.com/vango-dev/hookdom/internal/errors"
	"github.com/vango-dev/hookdom/pkg/vdom"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRenderCommand(t *testing.T) {
	out, err := run(t, "render")
	if err != nil {
		t.Fatalf("render error = %v", err)
	}
	for _, want := range []string{`<div class="app">`, "<h1>Demo !</h1>", "Count: 0", `disabled=""`} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRenderCommandClicks(t *testing.T) {
	out, err := run(t, "render", "--clicks=3", "--mutations")
	if err != nil {
		t.Fatalf("render error = %v", err)
	}
	if !strings.Contains(out, "Count: 3") {
		t.Errorf("output missing Count: 3:\n%s", out)
	}
	if !strings.Contains(out, "setText") {
		t.Errorf("mutations missing setText:\n%s", out)
	}
	if !strings.Contains(out, `class="counter odd"`) {
		t.Errorf("output missing odd class:\n%s", out)
	}
}

func TestRenderCommandConfigErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := run(t, "render", "--config", filepath.Join(dir, "missing.json"))
	if he := errors.FromError(err, ""); he == nil || he.Code != "E141" {
		t.Errorf("missing config error = %v, want E141", err)
	}

	bad := filepath.Join(dir, "hookdom.json")
	if err := os.WriteFile(bad, []byte(`{"server": {"port": 70000}}`), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err = run(t, "render", "--config", bad)
	if he := errors.FromError(err, ""); he == nil || he.Code != "E122" {
		t.Errorf("invalid port error = %v, want E122", err)
	}
}

func TestSnapshotCommandNeedsBucket(t *testing.T) {
	_, err := run(t, "snapshot")
	if he := errors.FromError(err, ""); he == nil || he.Code != "E151" {
		t.Errorf("snapshot error = %v, want E151", err)
	}
}

func TestServerConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hookdom.yaml")
	data := "server:\n  host: 127.0.0.1\n  port: 8080\nmetrics:\n  namespace: preview\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := loadConfig(&globalFlags{config: path, debug: true})
	t.Cleanup(func() { vdom.SetLogger(nil) })
	if err != nil {
		t.Fatalf("loadConfig() error = %v", err)
	}
	if cfg.Address() != "127.0.0.1:8080" {
		t.Errorf("Address() = %q", cfg.Address())
	}
	sc, err := serverConfig(cfg, cfg.Address(), newLogger(io.Discard, false))
	if err != nil {
		t.Fatalf("serverConfig() error = %v", err)
	}
	if sc.Addr != "127.0.0.1:8080" || !sc.Debug || sc.Namespace != "preview" {
		t.Errorf("serverConfig() = %+v", sc)
	}
	if !sc.DisableMetricsEndpoint {
		t.Error("metrics endpoint should be off unless metrics.enabled is set")
	}
	if sc.Snapshots != nil || sc.Tracer != nil {
		t.Error("snapshots and tracing should be off by default")
	}
}

func TestTracingWarnsAboutGlobalProvider(t *testing.T) {
	cfg := config.New()
	var buf bytes.Buffer
	logger := newLogger(&buf, false)

	if tracer(cfg, logger) != nil {
		t.Error("tracer() should be nil when tracing is disabled")
	}
	if buf.Len() != 0 {
		t.Errorf("unexpected log output: %s", buf.String())
	}

	cfg.Tracing.Enabled = true
	sc, err := serverConfig(cfg, cfg.Address(), logger)
	if err != nil {
		t.Fatalf("serverConfig() error = %v", err)
	}
	if sc.Tracer == nil {
		t.Error("Tracer should be set when tracing is enabled")
	}
	if !strings.Contains(buf.String(), "global OpenTelemetry provider") {
		t.Errorf("missing provider warning, got: %s", buf.String())
	}
}

func TestVersionCommand(t *testing.T) {
	out, err := run(t, "version", "--short")
	if err != nil || strings.TrimSpace(out) != version {
		t.Errorf("version = %q, %v", out, err)
	}
}
