// Package osclient executes search-request documents built with the query
// and search packages against an OpenSearch/Elasticsearch cluster.
package osclient

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds cluster connection settings.
type Config struct {
	Addresses []string `yaml:"addresses"`
	IndexName string   `yaml:"index_name"`
	Username  string   `yaml:"username"`
	Password  string   `yaml:"password"`
}

// Validate checks the config is usable.
func (c *Config) Validate() error {
	if len(c.Addresses) == 0 {
		return fmt.Errorf("osclient: config has no addresses")
	}
	if c.IndexName == "" {
		return fmt.Errorf("osclient: config has no index name")
	}
	return nil
}

// YAMLConfigLoader reads a Config from a YAML stream.
type YAMLConfigLoader struct {
	reader io.Reader
}

func NewYAMLConfigLoader(reader io.Reader) *YAMLConfigLoader {
	return &YAMLConfigLoader{
		reader: reader,
	}
}

func (cl *YAMLConfigLoader) Load(validate bool) (*Config, error) {
	decoder := yaml.NewDecoder(cl.reader)
	var cfg Config
	if err := decoder.Decode(&cfg); err != nil {
		return nil, err
	}
	if validate {
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}
	return &cfg, nil
}

// LoadDotEnv loads environment variables from a .env file.
// It uses the ENV_PATH environment variable to determine the path to the
// .env file, falling back to defaultPath.
func LoadDotEnv(env string, defaultPath string) error {
	var envPath string
	if os.Getenv("ENV_PATH") != "" {
		envPath = os.Getenv("ENV_PATH")
	} else {
		slog.Info("ENV_PATH is not set, using default path", "defaultPath", defaultPath)
		envPath = defaultPath
	}

	err := godotenv.Load(envPath)
	if err != nil {
		if env == "local" || env == "" {
			slog.Error("Failed to load environment variables in local mode", "error", err)
			return err
		}
		slog.Debug("Skipping .env ...")
	}

	return nil
}

// ConfigFromEnv builds a Config from OS_ADDRESSES (comma-separated),
// OS_INDEX, OS_USERNAME and OS_PASSWORD.
func ConfigFromEnv() Config {
	var addresses []string
	if raw := os.Getenv("OS_ADDRESSES"); raw != "" {
		for _, addr := range strings.Split(raw, ",") {
			if trimmed := strings.TrimSpace(addr); trimmed != "" {
				addresses = append(addresses, trimmed)
			}
		}
	}
	return Config{
		Addresses: addresses,
		IndexName: os.Getenv("OS_INDEX"),
		Username:  os.Getenv("OS_USERNAME"),
		Password:  os.Getenv("OS_PASSWORD"),
	}
}
