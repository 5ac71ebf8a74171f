package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server struct {
		Port int `yaml:"port"`
	} `yaml:"server"`

	Openai struct {
		ApiKey string `yaml:"apiKey"`
	} `yaml:"openai"`

	Gemini struct {
		ApiKey string `yaml:"apiKey"`
	} `yaml:"gemini"`

	Database struct {
		URI string `yaml:"uri"`
	} `yaml:"database"`

	Catalog struct {
		Path string `yaml:"path"`
	} `yaml:"catalog"`
}

// LoadConfig reads the configuration file. Secrets left blank in the yaml
// are filled from the environment so keys never have to live in the repo.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal yaml: %w", err)
	}

	if cfg.Openai.ApiKey == "" {
		cfg.Openai.ApiKey = os.Getenv("OPENAI_API_KEY")
	}
	if cfg.Gemini.ApiKey == "" {
		cfg.Gemini.ApiKey = os.Getenv("GEMINI_API_KEY")
	}
	if cfg.Database.URI == "" {
		cfg.Database.URI = os.Getenv("MONGODB_URI")
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8000
	}
	if cfg.Catalog.Path == "" {
		cfg.Catalog.Path = "./data/courses.json"
	}

	return &cfg, nil
}
