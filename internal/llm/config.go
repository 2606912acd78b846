package llm

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// Provider names accepted by Config.Provider.
const (
	ProviderAnthropic  = "anthropic"
	ProviderOpenAI     = "openai"
	ProviderGemini     = "gemini"
	ProviderOpenRouter = "openrouter"
	ProviderMock       = "mock"
)

// Credentials locate one vendor's API. BaseURL is optional everywhere
// except that OpenRouter falls back to its public endpoint.
type Credentials struct {
	APIKey  string
	Model   string
	BaseURL string
}

// Config holds all LLM provider configuration.
type Config struct {
	Provider string

	Anthropic  Credentials
	OpenAI     Credentials
	Gemini     Credentials
	OpenRouter Credentials

	// Timeout bounds a single request. Zero disables the bound.
	Timeout time.Duration
}

// vendor describes a real provider: where its settings live in Config and
// the environment, and which short model names it understands.
type vendor struct {
	name string
	// vendorKey is the SDK's conventional key variable, probed by
	// DiscoverConfig.
	vendorKey    string
	defaultModel string
	aliases      map[string]string
	creds        func(*Config) *Credentials
}

// vendors is in discovery order.
var vendors = []vendor{
	{
		name:         ProviderGemini,
		vendorKey:    "GEMINI_API_KEY",
		defaultModel: "gemini-flash",
		aliases: map[string]string{
			"gemini-flash": "gemini-2.5-flash",
			"gemini-pro":   "gemini-2.5-pro",
		},
		creds: func(c *Config) *Credentials { return &c.Gemini },
	},
	{
		name:         ProviderOpenAI,
		vendorKey:    "OPENAI_API_KEY",
		defaultModel: "gpt-4o-mini",
		aliases: map[string]string{
			"gpt-4o":      "gpt-4o",
			"gpt-4o-mini": "gpt-4o-mini",
			"gpt-mini":    "gpt-4.1-mini",
		},
		creds: func(c *Config) *Credentials { return &c.OpenAI },
	},
	{
		name:         ProviderAnthropic,
		vendorKey:    "ANTHROPIC_API_KEY",
		defaultModel: "claude-haiku",
		aliases: map[string]string{
			"claude-sonnet": "claude-sonnet-4-5-20250929",
			"claude-haiku":  "claude-haiku-4-5-20251001",
		},
		creds: func(c *Config) *Credentials { return &c.Anthropic },
	},
	{
		// OpenRouter model IDs are vendor-prefixed and never aliased.
		name:         ProviderOpenRouter,
		vendorKey:    "OPENROUTER_API_KEY",
		defaultModel: "google/gemini-2.0-flash-001",
		creds:        func(c *Config) *Credentials { return &c.OpenRouter },
	},
}

func lookupVendor(name string) (vendor, bool) {
	for _, v := range vendors {
		if v.name == name {
			return v, true
		}
	}
	return vendor{}, false
}

// envPrefix is CAREERWISE_<NAME>_, the prefix of a vendor's own variables.
func (v vendor) envPrefix() string {
	return "CAREERWISE_" + strings.ToUpper(v.name) + "_"
}

// resolveModel maps a short model name to the provider's model ID. Unknown
// names pass through so full model IDs work.
func resolveModel(provider, name string) string {
	v, _ := lookupVendor(provider)
	if id, ok := v.aliases[name]; ok {
		return id
	}
	return name
}

// DefaultConfig selects Gemini with each vendor's default model.
func DefaultConfig() Config {
	cfg := Config{
		Provider: ProviderGemini,
		// Recommendations are a single large structured response.
		Timeout: 90 * time.Second,
	}
	for _, v := range vendors {
		v.creds(&cfg).Model = v.defaultModel
	}
	return cfg
}

// ConfigFromEnv builds a Config from CAREERWISE_* environment variables,
// falling back to defaults for unset values. The second result reports
// whether a provider was selected explicitly.
func ConfigFromEnv() (Config, bool) {
	cfg := DefaultConfig()

	p := os.Getenv("CAREERWISE_LLM_PROVIDER")
	if p != "" {
		cfg.Provider = p
	}
	if d := os.Getenv("CAREERWISE_LLM_TIMEOUT"); d != "" {
		if v, err := time.ParseDuration(d); err == nil {
			cfg.Timeout = v
		}
	}

	for _, v := range vendors {
		c := v.creds(&cfg)
		setIf(&c.APIKey, v.envPrefix()+"API_KEY")
		setIf(&c.Model, v.envPrefix()+"MODEL")
		setIf(&c.BaseURL, v.envPrefix()+"BASE_URL")
	}
	return cfg, p != ""
}

func setIf(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

// DiscoverConfig probes the vendors' standard key variables in order and
// returns base with the first vendor found selected. Returns (base, false)
// if none is set.
func DiscoverConfig(base Config) (Config, bool) {
	for _, v := range vendors {
		k := os.Getenv(v.vendorKey)
		if k == "" {
			continue
		}
		cfg := base
		cfg.Provider = v.name
		v.creds(&cfg).APIKey = k
		return cfg, true
	}
	return base, false
}

// Validate checks that the selected provider is known and has its API key.
func (c Config) Validate() error {
	if c.Provider == ProviderMock {
		return nil
	}
	v, ok := lookupVendor(c.Provider)
	if !ok {
		return fmt.Errorf("unknown LLM provider: %q", c.Provider)
	}
	if v.creds(&c).APIKey == "" {
		return fmt.Errorf("%sAPI_KEY is required for the %s provider", v.envPrefix(), v.name)
	}
	return nil
}

func (c Config) hasKey() bool {
	return c.Validate() == nil
}
