package logscope

import "sync"

// Key is an opaque identity token for a Scope. Keys compare by identity, not
// by text: two keys created independently are always distinct, even when they
// carry the same description. Callers that want to share a scope must share
// the same *Key value, either by passing it around or by interning it with
// KeyFor.
type Key struct {
	description string
}

// NewKey returns a fresh key distinct from every other key in the process.
// The description may be empty; a scope registered under a descriptionless
// key is named by its registration order instead.
func NewKey(description string) *Key {
	return &Key{description: description}
}

// Description returns the human-readable label carried by the key.
func (k *Key) Description() string {
	return k.description
}

// interned is the process-wide registry backing KeyFor.
var interned = struct {
	mu   sync.RWMutex
	keys map[string]*Key
}{keys: make(map[string]*Key)}

// KeyFor returns the key interned under name, creating it on first use.
// Every call with the same name returns the same key, so independent
// packages can coordinate on a scope without sharing a variable. The name
// doubles as the key's description.
func KeyFor(name string) *Key {
	interned.mu.RLock()
	k, ok := interned.keys[name]
	interned.mu.RUnlock()
	if ok {
		return k
	}

	interned.mu.Lock()
	defer interned.mu.Unlock()
	if k, ok := interned.keys[name]; ok {
		return k
	}
	k = NewKey(name)
	interned.keys[name] = k
	return k
}
