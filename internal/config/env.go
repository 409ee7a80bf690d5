package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Environment variable names.
const (
	EnvDB       = "MAZE_DB"
	EnvSSHAddr  = "MAZE_SSH_ADDR"
	EnvHostKey  = "MAZE_HOST_KEY"
	EnvLogLevel = "MAZE_LOG_LEVEL"
)

// Env holds settings that may come from the environment or a .env file.
// Empty fields mean "not set"; callers keep their flag defaults.
type Env struct {
	DB       string
	SSHAddr  string
	HostKey  string
	LogLevel string
}

// LoadEnv reads the given .env files (or ./.env when none are given) into
// the process environment and returns the recognised variables. A missing
// file is not an error, a malformed one is; variables already set in the
// environment win.
func LoadEnv(files ...string) (Env, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if _, err := os.Stat(f); err != nil {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return Env{}, fmt.Errorf("config: load %s: %w", f, err)
		}
	}
	return Env{
		DB:       os.Getenv(EnvDB),
		SSHAddr:  os.Getenv(EnvSSHAddr),
		HostKey:  os.Getenv(EnvHostKey),
		LogLevel: os.Getenv(EnvLogLevel),
	}, nil
}
