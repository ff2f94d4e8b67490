package logscope

import (
	"io"
	"os"
	"strconv"
	"sync"
)

// Controller owns every scope of a process or subsystem. It hands out scopes
// keyed by identity, assigns their initial thresholds and is the single place
// from which a host application adjusts or freezes per-scope verbosity.
//
// Controllers are independent of each other: two controllers resolving the
// same key hold distinct scopes with distinct thresholds.
type Controller struct {
	defaultLevel Level
	stdout       io.Writer
	stderr       io.Writer

	mu     sync.RWMutex
	scopes map[*Key]*Scope
	order  []*Scope
}

// New creates a Controller that assigns defaultLevel to scopes created
// without an explicit level. opts may be nil; see Options for the defaults.
func New(defaultLevel Level, opts *Options) *Controller {
	o := Options{}
	if opts != nil {
		o = *opts
	}
	if o.Stdout == nil {
		o.Stdout = os.Stdout
	}
	if o.Stderr == nil {
		o.Stderr = os.Stderr
	}

	c := &Controller{
		defaultLevel: defaultLevel,
		stdout:       o.Stdout,
		stderr:       o.Stderr,
		scopes:       make(map[*Key]*Scope),
	}
	if o.Config != nil {
		c.applyConfig(o.Config)
	}
	return c
}

// DefaultLevel returns the threshold assigned to scopes created without an
// explicit level.
func (c *Controller) DefaultLevel() Level {
	return c.defaultLevel
}

// Scope returns the scope registered under key, creating it on first use. A
// newly created scope starts at the optional explicit level, or at the
// controller's default level when none is given. The level argument has no
// effect on a scope that already exists.
func (c *Controller) Scope(key *Key, level ...Level) *Scope {
	lvl := c.defaultLevel
	if len(level) > 0 {
		lvl = level[0]
	}
	return c.resolve(key, lvl)
}

// Set resolves the scope for key, creating it at the default level if
// needed, and assigns level to it. The assignment is ignored when the scope
// is locked; the scope is returned either way.
func (c *Controller) Set(key *Key, level Level) *Scope {
	s := c.resolve(key, c.defaultLevel)
	s.SetLevel(level)
	return s
}

// Lock resolves the scope for key, creating it at the default level if
// needed, and freezes its threshold at the current value. Locking never
// changes a threshold and cannot be undone.
func (c *Controller) Lock(key *Key) {
	c.resolve(key, c.defaultLevel).Lock()
}

// Scopes returns the controller's scopes in registration order.
func (c *Controller) Scopes() []*Scope {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]*Scope(nil), c.order...)
}

// resolve returns the scope for key, registering a new one at level when the
// key is unknown. A key resolves to the same scope instance for the lifetime
// of the controller; the registry only grows.
func (c *Controller) resolve(key *Key, level Level) *Scope {
	if key == nil {
		panic("logscope: nil key")
	}

	c.mu.RLock()
	s, ok := c.scopes[key]
	c.mu.RUnlock()
	if ok {
		return s
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if s, ok := c.scopes[key]; ok {
		return s
	}
	name := key.Description()
	if name == "" {
		name = strconv.Itoa(len(c.order))
	}
	s = newScope(key, name, level, c.stdout, c.stderr)
	c.scopes[key] = s
	c.order = append(c.order, s)
	return s
}

// applyConfig registers and adjusts scopes from cfg during construction.
// Level names that do not parse fall back to the controller's default level.
func (c *Controller) applyConfig(cfg *Config) {
	if lvl, err := ParseLevel(cfg.DefaultLevel); err == nil {
		c.defaultLevel = lvl
	}
	for _, sc := range cfg.Scopes {
		lvl := c.defaultLevel
		if parsed, err := ParseLevel(sc.Level); err == nil {
			lvl = parsed
		}
		key := KeyFor(sc.Name)
		c.Set(key, lvl)
		if sc.Lock {
			c.Lock(key)
		}
	}
}
