package config

import "os"

// Environment variables read by the serve command.
const (
	EnvSSHAddr = "FLAPPY_SSH_ADDR"
	EnvHostKey = "FLAPPY_HOST_KEY"
)

// GetEnv returns the value of the environment variable named by the key,
// or fallback if the variable is not set.
func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
