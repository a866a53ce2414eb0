package config

import (
	"bytes"
	"encoding/json"
	stderrors "errors"
	"net"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/vango-dev/hookdom/internal/errors"
)

const (
	// DefaultPort is the default preview server port.
	DefaultPort = 4000

	// DefaultHost is the default preview server host.
	DefaultHost = "localhost"

	// DefaultMaxUpdateDepth bounds the re-render passes of one flush.
	DefaultMaxUpdateDepth = 1000

	// DefaultWriteTimeout is the default WebSocket write timeout.
	DefaultWriteTimeout = "10s"

	// DefaultNamespace is the default metrics namespace and tracer name.
	DefaultNamespace = "hookdom"
)

// FileNames lists the configuration files Load looks for, in order.
var FileNames = []string{"hookdom.json", "hookdom.yaml", "hookdom.yml"}

// Config is the hookdom configuration.
type Config struct {
	// Debug enables debug logging of construction, hooks and DOM patches.
	Debug bool `json:"debug,omitempty" yaml:"debug,omitempty"`

	Render   RenderConfig   `json:"render,omitempty" yaml:"render,omitempty"`
	Server   ServerConfig   `json:"server,omitempty" yaml:"server,omitempty"`
	Metrics  MetricsConfig  `json:"metrics,omitempty" yaml:"metrics,omitempty"`
	Tracing  TracingConfig  `json:"tracing,omitempty" yaml:"tracing,omitempty"`
	Snapshot SnapshotConfig `json:"snapshot,omitempty" yaml:"snapshot,omitempty"`

	// configPath stores the path where the config was loaded from.
	configPath string
}

// RenderConfig configures the renderer.
type RenderConfig struct {
	// MaxUpdateDepth is the number of queued re-render passes one flush may
	// drain before failing.
	MaxUpdateDepth int `json:"maxUpdateDepth,omitempty" yaml:"maxUpdateDepth,omitempty"`
}

// ServerConfig configures the preview server.
type ServerConfig struct {
	Host string `json:"host,omitempty" yaml:"host,omitempty"`
	Port int    `json:"port,omitempty" yaml:"port,omitempty"`

	// WriteTimeout bounds each WebSocket write (e.g., "10s").
	WriteTimeout string `json:"writeTimeout,omitempty" yaml:"writeTimeout,omitempty"`
}

// MetricsConfig configures the Prometheus collectors.
type MetricsConfig struct {
	Enabled   bool   `json:"enabled,omitempty" yaml:"enabled,omitempty"`
	Namespace string `json:"namespace,omitempty" yaml:"namespace,omitempty"`
}

// TracingConfig configures OpenTelemetry spans. Spans go to the global
// tracer provider, which the caller must install.
type TracingConfig struct {
	Enabled    bool   `json:"enabled,omitempty" yaml:"enabled,omitempty"`
	TracerName string `json:"tracerName,omitempty" yaml:"tracerName,omitempty"`
}

// SnapshotConfig configures HTML snapshot uploads to S3.
type SnapshotConfig struct {
	Bucket string `json:"bucket,omitempty" yaml:"bucket,omitempty"`
	Prefix string `json:"prefix,omitempty" yaml:"prefix,omitempty"`
	Region string `json:"region,omitempty" yaml:"region,omitempty"`

	// Endpoint overrides the S3 endpoint, for S3-compatible stores.
	Endpoint string `json:"endpoint,omitempty" yaml:"endpoint,omitempty"`
}

// New returns a configuration with defaults.
func New() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads the first configuration file of FileNames found in dir.
func Load(dir string) (*Config, error) {
	for _, name := range FileNames {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return LoadFile(path)
		}
	}
	return nil, errors.New("E141").
		WithDetail("No " + strings.Join(FileNames, ", ") + " found in " + dir)
}

// LoadFile reads configuration from a .json, .yaml or .yml file.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New("E141").
				WithDetail("No configuration file at " + path)
		}
		return nil, errors.New("E120").Wrap(err)
	}

	cfg := &Config{}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		if err := json.Unmarshal(data, cfg); err != nil {
			e := errors.New("E120").
				WithDetail("Failed to parse " + filepath.Base(path) + ": " + err.Error()).
				WithSuggestion("Check that the file is valid JSON")
			var syntax *json.SyntaxError
			if stderrors.As(err, &syntax) {
				e.WithLocation(path, lineAt(data, syntax.Offset), 0)
			}
			return nil, e
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			e := errors.New("E120").
				WithDetail("Failed to parse " + filepath.Base(path) + ": " + err.Error()).
				WithSuggestion("Check that the file is valid YAML")
			if line := yamlLine(err); line > 0 {
				e.WithLocation(path, line, 0)
			}
			return nil, e
		}
	default:
		return nil, errors.New("E121").WithDetail("Unsupported extension " + ext + " for " + path)
	}

	cfg.configPath = path
	cfg.applyDefaults()
	return cfg, nil
}

// Path returns the path where the config was loaded from.
func (c *Config) Path() string {
	return c.configPath
}

func (c *Config) applyDefaults() {
	if c.Render.MaxUpdateDepth == 0 {
		c.Render.MaxUpdateDepth = DefaultMaxUpdateDepth
	}
	if c.Server.Host == "" {
		c.Server.Host = DefaultHost
	}
	if c.Server.Port == 0 {
		c.Server.Port = DefaultPort
	}
	if c.Server.WriteTimeout == "" {
		c.Server.WriteTimeout = DefaultWriteTimeout
	}
	if c.Metrics.Namespace == "" {
		c.Metrics.Namespace = DefaultNamespace
	}
	if c.Tracing.TracerName == "" {
		c.Tracing.TracerName = DefaultNamespace
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return errors.New("E122").
			WithDetail("server.port must be between 0 and 65535, got " + strconv.Itoa(c.Server.Port))
	}
	if c.Render.MaxUpdateDepth < 1 {
		return errors.New("E122").
			WithDetail("render.maxUpdateDepth must be at least 1, got " + strconv.Itoa(c.Render.MaxUpdateDepth))
	}
	if _, err := c.WriteTimeout(); err != nil {
		return errors.New("E122").
			WithDetail("server.writeTimeout is not a duration: " + c.Server.WriteTimeout).
			Wrap(err)
	}
	return nil
}

// Address returns the listen address of the preview server.
func (c *Config) Address() string {
	return net.JoinHostPort(c.Server.Host, strconv.Itoa(c.Server.Port))
}

// WriteTimeout parses Server.WriteTimeout.
func (c *Config) WriteTimeout() (time.Duration, error) {
	return time.ParseDuration(c.Server.WriteTimeout)
}

// lineAt returns the 1-based line of a byte offset.
func lineAt(data []byte, offset int64) int {
	if offset > int64(len(data)) {
		offset = int64(len(data))
	}
	return bytes.Count(data[:offset], []byte("\n")) + 1
}

var yamlLineRE = regexp.MustCompile(`line (\d+)`)

// yamlLine extracts the line number from a yaml.v3 error message.
func yamlLine(err error) int {
	m := yamlLineRE.FindStringSubmatch(err.Error())
	if m == nil {
		return 0
	}
	n, _ := strconv.Atoi(m[1])
	return n
}
