package store

import (
	"encoding/json"
	"errors"
	"os"
)

// Config holds service configuration. It is read from a JSON file when one
// exists; environment variables override the file so the service also runs
// with no config file at all.
type Config struct {
	Model        *ModelConfig `json:"model,omitempty"`
	ServerAddr   string       `json:"server_addr,omitempty"`
	UploadDir    string       `json:"upload_dir,omitempty"`
	GeneratedDir string       `json:"generated_dir,omitempty"`
}

// ModelConfig selects and configures the generative model provider.
type ModelConfig struct {
	Provider string `json:"provider,omitempty"`
	Model    string `json:"model,omitempty"`
	APIKey   string `json:"api_key,omitempty"`
	BaseURL  string `json:"base_url,omitempty"`
}

// LoadConfig reads JSON config from disk, applies env overrides, and fills
// defaults. A missing file is not an error.
func LoadConfig(path string) (Config, error) {
	var cfg Config
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if uerr := json.Unmarshal(data, &cfg); uerr != nil {
			return Config{}, uerr
		}
	case errors.Is(err, os.ErrNotExist):
		// env-only configuration
	default:
		return Config{}, err
	}

	applyEnv(&cfg)
	applyDefaults(&cfg)

	if cfg.Model.APIKey == "" {
		return Config{}, errors.New("model api key missing; set model.api_key or GEMINI_API_KEY / OPENAI_API_KEY")
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if cfg.Model == nil {
		cfg.Model = &ModelConfig{}
	}
	if cfg.Model.Provider == "" {
		cfg.Model.Provider = "gemini"
	}
	switch cfg.Model.Provider {
	case "gemini":
		if k := os.Getenv("GEMINI_API_KEY"); k != "" {
			cfg.Model.APIKey = k
		}
	case "openai":
		if k := os.Getenv("OPENAI_API_KEY"); k != "" {
			cfg.Model.APIKey = k
		}
	}
	if port := os.Getenv("PORT"); port != "" {
		cfg.ServerAddr = ":" + port
	}
}

func applyDefaults(cfg *Config) {
	if cfg.ServerAddr == "" {
		cfg.ServerAddr = ":3000"
	}
	if cfg.UploadDir == "" {
		cfg.UploadDir = "uploads"
	}
	if cfg.GeneratedDir == "" {
		cfg.GeneratedDir = "generated"
	}
}
