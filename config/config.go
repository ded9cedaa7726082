package config

import (
	"fmt"
	"log"
	"os"
	"sync"

	"github.com/joho/godotenv"
)

var loadOnce sync.Once

func loadEnvFile() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using system environment")
	}
}

// Config returns the value of an optional environment key.
func Config(key string) string {
	loadOnce.Do(loadEnvFile)
	return os.Getenv(key)
}

// ConfigOr returns the value of key, or def when unset.
func ConfigOr(key, def string) string {
	if v := Config(key); v != "" {
		return v
	}
	return def
}

// Lookup returns the value of a required key, or an error when it is unset.
func Lookup(key string) (string, error) {
	v := Config(key)
	if v == "" {
		return "", fmt.Errorf("missing required environment variable %s", key)
	}
	return v, nil
}

// MustConfig aborts startup when a required key (secrets, credentials) is
// missing. Secrets never have literal defaults in source.
func MustConfig(key string) string {
	v, err := Lookup(key)
	if err != nil {
		log.Fatal(err)
	}
	return v
}
