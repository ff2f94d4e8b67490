package logscope

import (
	"fmt"
	"gopkg.in/yaml.v3"
	"os"
)

// ParseConfig decodes a YAML document into a Config.
func ParseConfig(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return &cfg, nil
}

// LoadConfig reads and decodes a YAML config file. The result is applied to
// a controller by passing it in Options.Config; the controller itself never
// touches the filesystem.
func LoadConfig(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	return ParseConfig(data)
}
