package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"addressbook/internal/domain/entity"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"
	defaultLookupTimeout      = 10 * time.Second
	defaultLookupCacheSize    = 256
	defaultLookupCacheTTL     = 5 * time.Minute
)

// Lookup providers
const (
	LookupProviderHTTP   = "http"
	LookupProviderStatic = "static"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	// Lookup configures the address search source
	Lookup *LookupConfig `json:"lookup" yaml:"lookup"`

	// AddressBook configures the in-memory address book
	AddressBook *AddressBookConfig `json:"addressBook" yaml:"addressBook"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// LookupConfig defines the address search source
type LookupConfig struct {
	// Provider type: "http" for the remote search API or "static" for fixtures
	Provider string `json:"provider" yaml:"provider"`

	// Base URL of the search API (for http provider)
	BaseURL string `json:"baseUrl" yaml:"baseUrl"`

	// Request timeout for a single search
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	Cache LookupCacheConfig `json:"cache" yaml:"cache"`

	// Fixture records served by the static provider
	Fixtures []entity.LookupRecord `json:"fixtures" yaml:"fixtures"`
}

// LookupCacheConfig defines caching of successful search results
type LookupCacheConfig struct {
	Enabled bool          `json:"enabled" yaml:"enabled"`
	Size    int           `json:"size" yaml:"size"`
	TTL     time.Duration `json:"ttl" yaml:"ttl"`
}

// AddressBookConfig defines the initial content of the address book
type AddressBookConfig struct {
	// Seed is bulk-loaded into the book at start-up, verbatim
	Seed []entity.Address `json:"seed" yaml:"seed"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			searchPaths = append(searchPaths, filepath.Join(pwd, path))
		}
	}

	var configFile string
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate

			break
		}
	}

	if configFile == "" {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Env overrides: LOOKUP_BASEURL -> lookup.baseUrl
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			return canonicalizeEnvKey(k, existingConfigMap), v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	applyDefaults(cfg)

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if cfg.Lookup == nil {
		cfg.Lookup = &LookupConfig{Provider: LookupProviderStatic}
	}
	if cfg.Lookup.Provider == "" {
		cfg.Lookup.Provider = LookupProviderHTTP
	}
	if cfg.Lookup.Timeout <= 0 {
		cfg.Lookup.Timeout = defaultLookupTimeout
	}
	if cfg.Lookup.Cache.Size <= 0 {
		cfg.Lookup.Cache.Size = defaultLookupCacheSize
	}
	if cfg.Lookup.Cache.TTL <= 0 {
		cfg.Lookup.Cache.TTL = defaultLookupCacheTTL
	}

	if cfg.AddressBook == nil {
		cfg.AddressBook = &AddressBookConfig{}
	}
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}
