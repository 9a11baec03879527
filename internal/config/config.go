package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Vision providers understood by VISION_PROVIDER.
const (
	ProviderAnthropic = "anthropic"
	ProviderGemini    = "gemini"
	ProviderOpenAI    = "openai"
)

const (
	defaultAddr           = ":8000"
	defaultFrontendOrigin = "http://localhost:3000"
	defaultSerpAPIURL     = "https://serpapi.com/search.json"
	defaultBodyLimit      = 20 << 20
)

var defaultModels = map[string]string{
	ProviderAnthropic: "claude-3-5-sonnet-20241022",
	ProviderGemini:    "gemini-2.5-flash",
	ProviderOpenAI:    "gpt-4o",
}

var keyNames = map[string]string{
	ProviderAnthropic: "ANTHROPIC_API_KEY",
	ProviderGemini:    "GEMINI_API_KEY",
	ProviderOpenAI:    "OPENAI_API_KEY",
}

// Config holds environment-driven configuration. It is built once at startup
// and handed to every service; nothing reads the environment after Load.
type Config struct {
	Addr           string
	FrontendOrigin string
	// BodyLimit is the largest request body in bytes. Base64 photos run
	// about a third larger than the file.
	BodyLimit int

	VisionProvider string
	VisionModel    string
	VisionAPIKey   string

	SerpAPIKey string
	SerpAPIURL string

	UpstreamTimeout time.Duration
	LogLevel        slog.Level
}

// VisionKeyName returns the environment variable holding the vision provider key.
func (c Config) VisionKeyName() string {
	return keyNames[c.VisionProvider]
}

// SerpAPIKeyName is the environment variable holding the shopping search key.
const SerpAPIKeyName = "SERPAPI_KEY"

// Load reads `.env` when present and then the process environment.
func Load() (Config, error) {
	_ = godotenv.Load()
	return FromLookup(os.LookupEnv)
}

// FromLookup builds a Config from an arbitrary variable source.
func FromLookup(lookup func(string) (string, bool)) (Config, error) {
	get := func(key string) string {
		v, _ := lookup(key)
		return strings.TrimSpace(v)
	}
	orDefault := func(key, def string) string {
		if v := get(key); v != "" {
			return v
		}
		return def
	}

	cfg := Config{
		Addr:           get("ADDR"),
		FrontendOrigin: orDefault("FRONTEND_ORIGIN", defaultFrontendOrigin),
		VisionProvider: strings.ToLower(orDefault("VISION_PROVIDER", ProviderAnthropic)),
		SerpAPIKey:     get(SerpAPIKeyName),
		SerpAPIURL:     orDefault("SERPAPI_URL", defaultSerpAPIURL),
		BodyLimit:      defaultBodyLimit,
	}
	if cfg.Addr == "" {
		if port := get("PORT"); port != "" {
			cfg.Addr = ":" + port
		} else {
			cfg.Addr = defaultAddr
		}
	}

	model, ok := defaultModels[cfg.VisionProvider]
	if !ok {
		return Config{}, fmt.Errorf("unknown VISION_PROVIDER %q", cfg.VisionProvider)
	}
	cfg.VisionModel = orDefault("VISION_MODEL", model)
	cfg.VisionAPIKey = get(keyNames[cfg.VisionProvider])

	if v := get("UPSTREAM_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid UPSTREAM_TIMEOUT: %w", err)
		}
		cfg.UpstreamTimeout = d
	}

	if v := get("BODY_LIMIT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return Config{}, fmt.Errorf("invalid BODY_LIMIT %q: must be a positive byte count", v)
		}
		cfg.BodyLimit = n
	}

	if v := get("LOG_LEVEL"); v != "" {
		if err := cfg.LogLevel.UnmarshalText([]byte(v)); err != nil {
			return Config{}, fmt.Errorf("invalid LOG_LEVEL: %w", err)
		}
	}

	return cfg, nil
}

// Warnings lists the credentials that are missing. They are reported at
// startup but only enforced when a request needs them.
func (c Config) Warnings() []string {
	var out []string
	if c.VisionAPIKey == "" {
		out = append(out, c.VisionKeyName()+" not set in environment variables")
	}
	if c.SerpAPIKey == "" {
		out = append(out, SerpAPIKeyName+" not set in environment variables")
	}
	return out
}
