package config

import "os"

// TestEnvKey is the configuration key interpolated into the env greeting.
const TestEnvKey = "test_env"

// Source is a read-only key-value configuration lookup.
type Source interface {
	Lookup(key string) (string, bool)
}

// Env reads the process environment on every call; nothing is cached.
type Env struct{}

// Lookup implements Source.
func (Env) Lookup(key string) (string, bool) {
	return os.LookupEnv(key)
}

// Map is a fixed in-memory Source.
type Map map[string]string

// Lookup implements Source.
func (m Map) Lookup(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

// Value returns the value for key, or "" when src is nil or the key is absent.
func Value(src Source, key string) string {
	if src == nil {
		return ""
	}
	v, _ := src.Lookup(key)
	return v
}
