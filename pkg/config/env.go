package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

const defaultAPITimeout = 15 * time.Second

// Config holds everything the storefront needs from the environment
type Config struct {
	APIBaseURL  string        // Base URL of the REST backend, required
	APITimeout  time.Duration // Per-request timeout for backend calls
	RedisAddr   string        // Optional; enables the Redis cart backend
	CartBackend string        // "redis", "file" or "memory"
	CartFile    string        // Cart snapshot path for the file backend
	SessionID   string        // Namespaces the persisted cart in Redis
}

// LoadEnv loads environment variables from .env.local if APP_ENV is "local"
func LoadEnv() {
	appEnv := os.Getenv("APP_ENV")
	if appEnv == "" {
		appEnv = "development" // Default to development if not set
		os.Setenv("APP_ENV", appEnv)
	}

	if appEnv == "local" {
		err := godotenv.Load(".env.local") // Assumes .env.local exists in root or where app is run
		if err != nil {
			log.Printf("Warning: .env.local file not found, or error loading: %v. Relying on system environment variables.", err)
		} else {
			log.Println("Loaded .env.local for local development.")
		}
	} else {
		log.Printf("Running in %s environment. Not loading .env.local.", appEnv)
	}
}

// Load reads the storefront configuration from the environment. Call LoadEnv
// first so .env.local values are visible in local development.
func Load() (*Config, error) {
	cfg := &Config{
		APIBaseURL:  strings.TrimRight(os.Getenv("API_BASE_URL"), "/"),
		APITimeout:  defaultAPITimeout,
		RedisAddr:   os.Getenv("REDIS_ADDR"),
		CartBackend: os.Getenv("CART_STORAGE"),
		CartFile:    os.Getenv("CART_FILE"),
		SessionID:   os.Getenv("SESSION_ID"),
	}

	if cfg.APIBaseURL == "" {
		return nil, fmt.Errorf("API_BASE_URL environment variable not set")
	}

	if raw := os.Getenv("API_TIMEOUT_SECONDS"); raw != "" {
		secs, err := strconv.Atoi(raw)
		if err != nil || secs <= 0 {
			return nil, fmt.Errorf("invalid API_TIMEOUT_SECONDS value %q", raw)
		}
		cfg.APITimeout = time.Duration(secs) * time.Second
	}

	if cfg.CartBackend == "" {
		if cfg.RedisAddr != "" {
			cfg.CartBackend = "redis"
		} else {
			cfg.CartBackend = "file"
		}
	}
	switch cfg.CartBackend {
	case "redis", "file", "memory":
	default:
		return nil, fmt.Errorf("unknown CART_STORAGE value %q (want redis, file or memory)", cfg.CartBackend)
	}
	if cfg.CartBackend == "redis" && cfg.RedisAddr == "" {
		return nil, fmt.Errorf("CART_STORAGE=redis requires REDIS_ADDR to be set")
	}

	if cfg.CartFile == "" {
		cfg.CartFile = filepath.Join(stateDir(), "cart.json")
	}
	if cfg.SessionID == "" {
		id, err := ensureSessionID(filepath.Join(stateDir(), "session"))
		if err != nil {
			return nil, err
		}
		cfg.SessionID = id
	}

	return cfg, nil
}

// stateDir is where the storefront keeps its local state between runs
func stateDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".storefront"
	}
	return filepath.Join(home, ".storefront")
}

// ensureSessionID reads the persisted session id, generating and saving a new
// one on first run so the Redis cart survives process restarts.
func ensureSessionID(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err == nil {
		if id := strings.TrimSpace(string(data)); id != "" {
			return id, nil
		}
	}

	id := uuid.NewString()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("failed to create state directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(id+"\n"), 0o600); err != nil {
		return "", fmt.Errorf("failed to persist session id: %w", err)
	}
	log.Printf("Generated new storefront session id %s", id)
	return id, nil
}
