package logscope

import (
	"fmt"
	"io"
	"sync"
)

// Scope is a named logging channel bound one-to-one with an identity key.
// It holds its own severity threshold: messages below the threshold are
// dropped, everything else is written synchronously as a single line of the
// form "level(name): message". Info lines go to the scope's stdout stream,
// debug, warn and error lines to its stderr stream.
//
// Scopes are created by a Controller and stay valid for its lifetime.
type Scope struct {
	key  *Key
	name string

	stdout io.Writer
	stderr io.Writer

	mu     sync.Mutex
	level  Level
	locked bool
}

func newScope(key *Key, name string, level Level, stdout, stderr io.Writer) *Scope {
	return &Scope{
		key:    key,
		name:   name,
		level:  level,
		stdout: stdout,
		stderr: stderr,
	}
}

// Key returns the identity key the scope is registered under.
func (s *Scope) Key() *Key {
	return s.key
}

// Name returns the scope's display name: the key's description, or the
// scope's registration index when the key carries none.
func (s *Scope) Name() string {
	return s.name
}

// Level returns the current threshold.
func (s *Scope) Level() Level {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.level
}

// SetLevel assigns a new threshold. The assignment is silently ignored once
// the scope is locked.
func (s *Scope) SetLevel(level Level) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.locked {
		return
	}
	s.level = level
}

// Locked reports whether the threshold has been frozen.
func (s *Scope) Locked() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.locked
}

// Lock freezes the threshold at its current value. Locking is idempotent
// and cannot be undone for the lifetime of the scope.
func (s *Scope) Lock() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.locked = true
}

func (s *Scope) Debug(msg string) {
	s.emit(LevelDebug, msg)
}

func (s *Scope) Debugf(format string, args ...any) {
	s.emitf(LevelDebug, format, args...)
}

func (s *Scope) Info(msg string) {
	s.emit(LevelInfo, msg)
}

func (s *Scope) Infof(format string, args ...any) {
	s.emitf(LevelInfo, format, args...)
}

func (s *Scope) Warn(msg string) {
	s.emit(LevelWarn, msg)
}

func (s *Scope) Warnf(format string, args ...any) {
	s.emitf(LevelWarn, format, args...)
}

func (s *Scope) Error(msg string) {
	s.emit(LevelError, msg)
}

func (s *Scope) Errorf(format string, args ...any) {
	s.emitf(LevelError, format, args...)
}

func (s *Scope) emit(level Level, msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.level > level {
		return
	}
	s.write(level, msg)
}

// emitf formats only after the threshold check, so suppressed calls never
// pay for Sprintf.
func (s *Scope) emitf(level Level, format string, args ...any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.level > level {
		return
	}
	s.write(level, fmt.Sprintf(format, args...))
}

// write puts exactly one line on the stream owned by level, discarding any
// write error. The caller must hold mu and must have applied the threshold
// already.
func (s *Scope) write(level Level, msg string) {
	w := s.stderr
	if level == LevelInfo {
		w = s.stdout
	}
	_, _ = fmt.Fprintf(w, "%s(%s): %s\n", level, s.name, msg)
}
