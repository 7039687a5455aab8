package config

import (
	"os"
	"strconv"
	"strings"
)

// EnvPrefix namespaces every environment variable the tool reads.
const EnvPrefix = "KMPGREP_"

// Env is a namespaced view over environment variables. It has no dependency
// on the logger so the logger can read its own settings through it.
type Env struct{ prefix string }

// NewEnv returns a view rooted at EnvPrefix.
func NewEnv() Env { return Env{prefix: EnvPrefix} }

// Prefix returns a child view with an additional prefix (e.g. "LOG_").
func (e Env) Prefix(p string) Env { return Env{prefix: e.prefix + p} }

func (e Env) key(k string) string { return e.prefix + k }

// Get returns the trimmed variable or def if unset or empty.
func (e Env) Get(key, def string) string {
	v := strings.TrimSpace(os.Getenv(e.key(key)))
	if v == "" {
		return def
	}
	return v
}

// GetInt parses an integer (negative allowed); unparsable values yield def.
func (e Env) GetInt(key string, def int) int {
	v, err := strconv.Atoi(e.Get(key, ""))
	if err != nil {
		return def
	}
	return v
}

// GetBool parses "1|true|yes" as true and "0|false|no" as false.
func (e Env) GetBool(key string, def bool) bool {
	switch strings.ToLower(e.Get(key, "")) {
	case "1", "true", "yes":
		return true
	case "0", "false", "no":
		return false
	default:
		return def
	}
}
