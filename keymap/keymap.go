// Package keymap maps between a document engine's volatile block
// handles and the stable, human-referenceable keys edits use.
//
// Keys have the shape "b" + zero-padded counter (b001, b002, ...),
// widening past b999 without truncation.  Handles are opaque; a handle
// that was never registered resolves to nothing, which is an ordinary
// outcome, not an error: handles go stale across document reloads.
package keymap

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/google/uuid"
)

const (
	keyPrefix = "b"
	keyWidth  = 3
)

var keyRe = regexp.MustCompile(`^` + keyPrefix + `([0-9]{` + strconv.Itoa(keyWidth) + `,})$`)

// Map is the dual-identifier table for one document-editing session
// lineage.  It is not safe for concurrent use.
type Map struct {
	count    int
	byHandle map[string]string
	byKey    map[string]string
}

func New() *Map {
	return &Map{
		byHandle: map[string]string{},
		byKey:    map[string]string{},
	}
}

// Count returns the number of keys assigned so far.
func (m *Map) Count() int { return m.count }

// AssignNew mints a fresh handle and assigns it the next key.
func (m *Map) AssignNew() (handle, key string) {
	handle = uuid.NewString()
	return handle, m.Register(handle)
}

// Register assigns the next key to handle, or returns the key handle
// already has.  Registering twice never advances the counter.
func (m *Map) Register(handle string) string {
	if key, ok := m.byHandle[handle]; ok {
		return key
	}
	m.count++
	key := FormatKey(m.count)
	m.byHandle[handle] = key
	m.byKey[key] = handle
	return key
}

// Resolve accepts either a stable key or a raw handle and returns the
// handle, or "" when unknown.  Anything not shaped like a key is
// treated as a candidate handle and returned only if registered.
func (m *Map) Resolve(idOrKey string) string {
	if keyRe.MatchString(idOrKey) {
		return m.byKey[idOrKey]
	}
	if _, ok := m.byHandle[idOrKey]; ok {
		return idOrKey
	}
	return ""
}

// KeyOf returns the key registered for handle, or "".
func (m *Map) KeyOf(handle string) string {
	return m.byHandle[handle]
}

// Export returns the full key to handle table.
func (m *Map) Export() map[string]string {
	out := make(map[string]string, len(m.byKey))
	for k, h := range m.byKey {
		out[k] = h
	}
	return out
}

// Import installs a key to handle table.  The counter advances to the
// largest imported key so later assignments never collide.
func (m *Map) Import(mapping map[string]string) {
	for key, handle := range mapping {
		m.byKey[key] = handle
		m.byHandle[handle] = key
		sub := keyRe.FindStringSubmatch(key)
		if sub == nil {
			continue
		}
		n, err := strconv.Atoi(sub[1])
		if err != nil {
			continue
		}
		if n > m.count {
			m.count = n
		}
	}
}

// FormatKey renders the nth key, zero padded to at least 3 digits.
func FormatKey(n int) string {
	return fmt.Sprintf("%s%0*d", keyPrefix, keyWidth, n)
}

// IsKey reports whether v has the stable key shape.
func IsKey(v string) bool {
	return keyRe.MatchString(v)
}
