package model

// Config holds the complete pipeline configuration
type Config struct {
	Gazetteer    GazetteerConfig   `yaml:"gazetteer" mapstructure:"gazetteer"`
	Pipeline     PipelineConfig    `yaml:"pipeline" mapstructure:"pipeline"`
	Recognizer   CapabilityConfig  `yaml:"recognizer" mapstructure:"recognizer"`
	Similarity   CapabilityConfig  `yaml:"similarity" mapstructure:"similarity"`
	Cache        CacheConfig       `yaml:"cache" mapstructure:"cache"`
	RateLimiting RateLimitConfig   `yaml:"rate_limiting" mapstructure:"rate_limiting"`
	Concurrency  ConcurrencyConfig `yaml:"concurrency" mapstructure:"concurrency"`
	Output       OutputConfig      `yaml:"output" mapstructure:"output"`
	HTTP         HTTPConfig        `yaml:"http" mapstructure:"http"`
}

// GazetteerConfig controls place graph construction and name matching
type GazetteerConfig struct {
	// SeedFile is a JSON or YAML gazetteer definition; empty uses the
	// built-in Pittsburgh region data
	SeedFile string `yaml:"seed_file" mapstructure:"seed_file"`

	// FuzzyThreshold is the character-overlap ratio required for a fuzzy
	// name match
	FuzzyThreshold float64 `yaml:"fuzzy_threshold" mapstructure:"fuzzy_threshold"`
}

// PipelineConfig controls classification behavior
type PipelineConfig struct {
	// MinConfidence drops mentions scoring below this cutoff
	MinConfidence float64 `yaml:"min_confidence" mapstructure:"min_confidence"`

	// ContextWindow is the number of bytes kept around a mention
	ContextWindow int `yaml:"context_window" mapstructure:"context_window"`
}

// CapabilityConfig configures an optional NLP capability provider.
// An empty provider name disables the capability and the owning stage
// falls back to its documented degraded behavior.
type CapabilityConfig struct {
	// Provider name; recognizers support "prose" and "openai",
	// similarity supports "lexical" and "openai", "" disables
	Provider string `yaml:"provider" mapstructure:"provider"`

	// Model name (provider-specific)
	Model string `yaml:"model" mapstructure:"model"`

	// APIKey for remote providers
	APIKey string `yaml:"api_key" mapstructure:"api_key"`

	// BaseURL for custom endpoints
	BaseURL string `yaml:"base_url" mapstructure:"base_url"`

	// Timeout for provider requests, in seconds
	Timeout int `yaml:"timeout" mapstructure:"timeout"`
}

// CacheConfig controls embedding vector caching
type CacheConfig struct {
	Enabled bool `yaml:"enabled" mapstructure:"enabled"`

	// Dir enables a persistent disk layer under the given directory;
	// empty keeps the cache in memory only
	Dir string `yaml:"dir" mapstructure:"dir"`
}

// RateLimitConfig throttles calls to remote capability APIs
type RateLimitConfig struct {
	RequestsPerSecond float64 `yaml:"requests_per_second" mapstructure:"requests_per_second"`
	BurstSize         int     `yaml:"burst_size" mapstructure:"burst_size"`
}

// ConcurrencyConfig controls batch processing parallelism
type ConcurrencyConfig struct {
	Workers int `yaml:"workers" mapstructure:"workers"`
}

// OutputConfig controls result rendering
type OutputConfig struct {
	Verbose         bool `yaml:"verbose" mapstructure:"verbose"`
	IncludeMentions bool `yaml:"include_mentions" mapstructure:"include_mentions"`
}

// HTTPConfig holds proxy settings for remote capability providers
type HTTPConfig struct {
	HTTPProxy  string `yaml:"http_proxy" mapstructure:"http_proxy"`
	HTTPSProxy string `yaml:"https_proxy" mapstructure:"https_proxy"`
	NoProxy    string `yaml:"no_proxy" mapstructure:"no_proxy"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Gazetteer: GazetteerConfig{
			SeedFile:       "",
			FuzzyThreshold: 0.9,
		},
		Pipeline: PipelineConfig{
			MinConfidence: 0.4,
			ContextWindow: 50,
		},
		Recognizer: CapabilityConfig{
			Provider: "prose", // local, no API key required
			Timeout:  30,
		},
		Similarity: CapabilityConfig{
			Provider: "", // disabled by default
			Timeout:  30,
		},
		Cache: CacheConfig{
			Enabled: true,
		},
		RateLimiting: RateLimitConfig{
			RequestsPerSecond: 2.0,
			BurstSize:         5,
		},
		Concurrency: ConcurrencyConfig{
			Workers: 4,
		},
		Output: OutputConfig{
			Verbose:         false,
			IncludeMentions: false,
		},
	}
}
