// Package config loads the .docscan.yaml configuration file
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v2"

	"docscan/pkg/annotation"
)

// FileName is the configuration file looked up in the working directory
const FileName = ".docscan.yaml"

// Config represents the structure of a .docscan.yaml configuration file
type Config struct {
	Format      string            `yaml:"format,omitempty"`      // Output format (human, json)
	Color       *bool             `yaml:"color,omitempty"`       // Colored human output; unset means auto
	Namespace   string            `yaml:"namespace,omitempty"`   // Namespace for type name resolution
	Uses        map[string]string `yaml:"uses,omitempty"`        // Import aliases: alias -> fully qualified name
	Annotations []string          `yaml:"annotations,omitempty"` // Tags resolved by built-in annotations
}

// Default returns the configuration used when no file is present
func Default() *Config {
	return &Config{Format: "human"}
}

// Load reads the configuration from path. When path is empty, FileName in the
// working directory is used if it exists; otherwise defaults are returned.
// The second return value is the file actually read, if any.
func Load(path string) (*Config, string, error) {
	explicit := path != ""
	if !explicit {
		path = FileName
	}

	content, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return Default(), "", nil
		}
		return nil, "", fmt.Errorf("failed to read config %s: %w", path, err)
	}

	cfg, err := Parse(content)
	if err != nil {
		return nil, "", fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	return cfg, path, nil
}

// Parse decodes YAML configuration content and validates it
func Parse(content []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(content, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks field values
func (c *Config) Validate() error {
	c.Format = strings.ToLower(strings.TrimSpace(c.Format))
	switch c.Format {
	case "":
		c.Format = "human"
	case "human", "json":
	default:
		return fmt.Errorf("unsupported format: %s", c.Format)
	}

	registry := annotation.DefaultRegistry()
	for _, name := range c.Annotations {
		if !registry.Has(name) {
			return fmt.Errorf("unknown annotation: %s", name)
		}
	}
	return nil
}

// NameInformation builds the type name resolution context from the config
func (c *Config) NameInformation() *annotation.NameInformation {
	return annotation.NewNameInformation(c.Namespace, c.Uses)
}

// Registry returns the annotation registry restricted to c.Annotations
func (c *Config) Registry() *annotation.Registry {
	return annotation.DefaultRegistry().Restrict(c.Annotations)
}

// Template is the commented default file written by "docscan init"
const Template = `# .docscan.yaml configuration file
#
# format: output format for scan and tokens (human, json)
format: human

# color: force colored human output on or off; leave unset to detect a terminal
# color: true

# namespace: namespace used to qualify short type names in annotations
# namespace: App\Model

# uses: import aliases, alias -> fully qualified name
# uses:
#   Collection: Vendor\Support\Collection

# annotations: tags resolved with built-in annotations (param, return, returns,
# var, throws, throw). Leave empty to enable all of them; other tags are
# reported as generic annotations.
annotations: []
`
