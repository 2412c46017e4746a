// Package kv provides the key-value string storage the storefront persists
// its cart, favorites and theme into.
//
// Two implementations exist: Memory for tests and ephemeral sessions, and
// File, which keeps every key in one TOML document on disk
// (~/.local/share/storefront/state.toml by default).
package kv

import (
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"strings"
	"sync"

	toml "github.com/pelletier/go-toml/v2"
)

// Storage is synchronous key-value string storage. Get reports absence with
// ok=false; Set and Remove return write failures to the caller.
type Storage interface {
	Get(key string) (string, bool)
	Set(key, value string) error
	Remove(key string) error
}

var (
	_ Storage = (*Memory)(nil)
	_ Storage = (*File)(nil)
)

const defaultStatePath = "~/.local/share/storefront/state.toml"

// DefaultPath returns the default state file path.
func DefaultPath() string {
	return defaultStatePath
}

// Memory is an in-process Storage. The zero value is ready to use.
type Memory struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemory returns a Memory seeded with a copy of initial.
func NewMemory(initial map[string]string) *Memory {
	return &Memory{values: maps.Clone(initial)}
}

func (m *Memory) Get(key string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[key]
	return v, ok
}

func (m *Memory) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.values == nil {
		m.values = make(map[string]string)
	}
	m.values[key] = value
	return nil
}

func (m *Memory) Remove(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, key)
	return nil
}

// File is a Storage backed by a TOML file. The whole document is rewritten
// on every Set or Remove.
type File struct {
	mu     sync.Mutex
	path   string
	values map[string]string
}

// Open loads the state file at path, falling back to an empty store when the
// file is missing or unreadable. Only an unresolvable path is an error.
func Open(path string) (*File, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return nil, fmt.Errorf("resolve path: %w", err)
	}

	f := &File{path: resolved, values: make(map[string]string)}

	data, err := os.ReadFile(resolved)
	if err != nil {
		// Missing or unreadable: start empty.
		return f, nil
	}

	var raw map[string]string
	if err := toml.Unmarshal(data, &raw); err != nil {
		return f, nil // Graceful degradation
	}
	if raw != nil {
		f.values = raw
	}
	return f, nil
}

// Path returns the resolved file path.
func (f *File) Path() string {
	return f.path
}

func (f *File) Get(key string) (string, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	v, ok := f.values[key]
	return v, ok
}

// Set stores value under key and flushes the file. The in-memory value is
// kept even when the flush fails.
func (f *File) Set(key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.values[key] = value
	return f.flush()
}

// Remove deletes key and flushes the file.
func (f *File) Remove(key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.values, key)
	return f.flush()
}

// flush writes the document to a temp file and renames it over the target
// so readers never see a partial file. Caller holds f.mu.
func (f *File) flush() error {
	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create state dir: %w", err)
	}

	data, err := toml.Marshal(f.values)
	if err != nil {
		return fmt.Errorf("marshal state: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".state-*.toml")
	if err != nil {
		return fmt.Errorf("write state: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("write state: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("write state: %w", err)
	}
	if err := os.Rename(tmpName, f.path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("write state: %w", err)
	}
	return nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return ExpandPath(defaultStatePath)
	}
	return ExpandPath(path)
}

// ExpandPath expands a leading ~ to the home directory and returns an
// absolute path.
func ExpandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
