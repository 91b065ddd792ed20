package config

import "os"

// GetEnv reads an environment variable, returning "" when unset. Callers
// that need fallbacks handle them at the call site.
func GetEnv(key string) string {
	return os.Getenv(key)
}
