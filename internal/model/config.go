package model

import "time"

// Config is the full runtime configuration, merged from defaults, the
// config file, TRIBUNE_* environment variables, and CLI flags.
type Config struct {
	HTTP        HTTPConfig        `yaml:"http"`
	Cache       CacheConfig       `yaml:"cache"`
	Output      OutputConfig      `yaml:"output"`
	LLM         LLMConfig         `yaml:"llm"`
	Concurrency ConcurrencyConfig `yaml:"concurrency"`
	Authority   AuthorityConfig   `yaml:"authority"`
}

// HTTPConfig controls the citation link checker's HTTP behavior
type HTTPConfig struct {
	Timeout      time.Duration `yaml:"timeout"`
	UserAgent    string        `yaml:"user_agent"`
	MaxBodyBytes int64         `yaml:"max_body_bytes"`
	InsecureTLS  bool          `yaml:"insecure_tls"`
	HTTPProxy    string        `yaml:"http_proxy,omitempty"`
	HTTPSProxy   string        `yaml:"https_proxy,omitempty"`
	NoProxy      string        `yaml:"no_proxy,omitempty"`
	// Rate limiting for outbound checks, per domain
	RequestsPerSecond float64 `yaml:"requests_per_second"`
	Burst             int     `yaml:"burst"`
}

// CacheConfig controls the layered condensation cache
type CacheConfig struct {
	Enabled   bool          `yaml:"enabled"`
	Dir       string        `yaml:"dir"`        // Disk layer directory
	MemoryTTL time.Duration `yaml:"memory_ttl"`
	DiskTTL   time.Duration `yaml:"disk_ttl"`
}

// OutputConfig controls rendering output
type OutputConfig struct {
	Verbose       bool   `yaml:"verbose"`
	IncludeFooter bool   `yaml:"include_footer"`
	Dir           string `yaml:"dir"` // Default export directory
}

// LLMConfig controls the optional document condenser
type LLMConfig struct {
	Provider  string `yaml:"provider"` // openai, anthropic, ollama, "" (disabled)
	Model     string `yaml:"model"`
	APIKey    string `yaml:"api_key,omitempty"`
	BaseURL   string `yaml:"base_url,omitempty"`
	Timeout   int    `yaml:"timeout"` // seconds
	MaxTokens int    `yaml:"max_tokens"`
}

// ConcurrencyConfig bounds the worker pools
type ConcurrencyConfig struct {
	CheckWorkers  int `yaml:"check_workers"`  // citations check
	ExportWorkers int `yaml:"export_workers"` // export --dir
}

// AuthorityConfig configures source tier classification for citation checks
type AuthorityConfig struct {
	PrimaryDomains   []string          `yaml:"primary_domains"`
	SecondaryDomains []string          `yaml:"secondary_domains"`
	DomainMap        map[string]string `yaml:"domain_map,omitempty"` // host -> tier name override
}

// DefaultConfig returns sensible defaults
func DefaultConfig() *Config {
	return &Config{
		HTTP: HTTPConfig{
			Timeout:           10 * time.Second,
			UserAgent:         "Tribune/0.1 (+https://github.com/ssxfund/tribune)",
			MaxBodyBytes:      1_000_000,
			RequestsPerSecond: 2,
			Burst:             4,
		},
		Cache: CacheConfig{
			Enabled:   true,
			Dir:       "", // Resolved to ~/.tribune/cache at startup
			MemoryTTL: 30 * time.Minute,
			DiskTTL:   7 * 24 * time.Hour,
		},
		Output: OutputConfig{
			Verbose:       false,
			IncludeFooter: true,
			Dir:           "./tribune-export",
		},
		LLM: LLMConfig{
			Provider:  "", // Disabled by default
			Timeout:   30,
			MaxTokens: 1000,
		},
		Concurrency: ConcurrencyConfig{
			CheckWorkers:  8,
			ExportWorkers: 4,
		},
		Authority: AuthorityConfig{
			PrimaryDomains: []string{
				"ssa.gov", "cbo.gov", "congress.gov", "treasury.gov",
				"gao.gov", "federalreserve.gov", "bls.gov", "irs.gov",
				"nber.org", "jstor.org",
			},
			SecondaryDomains: []string{
				"en.wikipedia.org", "britannica.com", "reuters.com",
				"apnews.com", "brookings.edu", "urban.org", "cbpp.org",
			},
		},
	}
}
