package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Defaults used when neither the environment nor flags provide a value
const (
	DefaultScene       = "default"
	DefaultOutput      = "out.ppm"
	DefaultWorkers     = 0 // 0 means runtime.NumCPU()
	DefaultPreviewSize = 256
	DefaultPort        = 8080
	DefaultEnvFile     = ".env"
)

// Config holds settings for the CLI and the web server
type Config struct {
	Width       int // 0 means use the scene's recommended size
	Height      int
	Scene       string
	Output      string
	Workers     int
	Preview     string // Preview thumbnail path, empty to skip
	PreviewSize int
	Port        int

	S3Bucket    string
	S3Region    string
	S3Endpoint  string
	S3Prefix    string
	S3AccessKey string
	S3SecretKey string
}

// Default returns the configuration used when nothing is set
func Default() Config {
	return Config{
		Scene:       DefaultScene,
		Output:      DefaultOutput,
		Workers:     DefaultWorkers,
		PreviewSize: DefaultPreviewSize,
		Port:        DefaultPort,
	}
}

// Load reads an optional .env file and then the RAYCAST_* environment variables.
// Variables already present in the environment win over the file.
func Load(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{DefaultEnvFile}
	}
	for _, file := range envFiles {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("failed to read %s: %w", file, err)
		}
	}
	return FromEnv()
}

// FromEnv builds a configuration from RAYCAST_* environment variables over the defaults
func FromEnv() (Config, error) {
	cfg := Default()

	ints := []struct {
		key string
		dst *int
		min int
	}{
		{"RAYCAST_WIDTH", &cfg.Width, 0},
		{"RAYCAST_HEIGHT", &cfg.Height, 0},
		{"RAYCAST_WORKERS", &cfg.Workers, 0},
		{"RAYCAST_PREVIEW_SIZE", &cfg.PreviewSize, 1},
		{"RAYCAST_PORT", &cfg.Port, 1},
	}
	for _, v := range ints {
		if err := intFromEnv(v.key, v.dst, v.min); err != nil {
			return Config{}, err
		}
	}

	strs := []struct {
		key string
		dst *string
	}{
		{"RAYCAST_SCENE", &cfg.Scene},
		{"RAYCAST_OUTPUT", &cfg.Output},
		{"RAYCAST_PREVIEW", &cfg.Preview},
		{"RAYCAST_S3_BUCKET", &cfg.S3Bucket},
		{"RAYCAST_S3_REGION", &cfg.S3Region},
		{"RAYCAST_S3_ENDPOINT", &cfg.S3Endpoint},
		{"RAYCAST_S3_PREFIX", &cfg.S3Prefix},
		{"RAYCAST_S3_ACCESS_KEY", &cfg.S3AccessKey},
		{"RAYCAST_S3_SECRET_KEY", &cfg.S3SecretKey},
	}
	for _, v := range strs {
		if value, ok := os.LookupEnv(v.key); ok && value != "" {
			*v.dst = value
		}
	}

	return cfg, nil
}

func intFromEnv(key string, dst *int, min int) error {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("invalid %s %q: %w", key, value, err)
	}
	if n < min {
		return fmt.Errorf("invalid %s %d: must be at least %d", key, n, min)
	}
	*dst = n
	return nil
}
