package logscope

import "io"

type Options struct {
	Stdout io.Writer // Stream for info lines; defaults to os.Stdout.
	Stderr io.Writer // Stream for debug, warn and error lines; defaults to os.Stderr.
	Config *Config   // Scopes to register and adjust before New returns.
}

type Config struct {
	DefaultLevel string        `yaml:"default_level"` // Overrides the constructor's default level.
	Scopes       []ScopeConfig `yaml:"scopes"`
}

type ScopeConfig struct {
	Name  string `yaml:"name"`
	Level string `yaml:"level"`
	Lock  bool   `yaml:"lock"` // Freeze the threshold after assignment.
}
