// Package config reads the environment variables the booster-catch
// front ends use: SSH_HOST/SSH_PORT/SSH_HOST_KEY for the SSH server,
// WEB_HOST/WEB_PORT/SSH_DISPLAY_HOST for the landing page, and
// BOOSTER_SEED for reproducible spawn sequences in local play.
package config

import (
	"os"
	"strconv"
)

// GetEnv returns the value of the environment variable named by the key,
// or fallback if the variable is not set.
func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// GetEnvUint64 returns the environment variable parsed as an unsigned
// integer, or fallback when unset or unparsable.
func GetEnvUint64(key string, fallback uint64) uint64 {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	n, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		return fallback
	}
	return n
}
