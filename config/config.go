package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "30MB"
	defaultTokenKey           = "authToken"
	defaultRestoreWait        = 10 * time.Second
	defaultAPITimeout         = 30 * time.Second
	defaultMaxImageSize       = 5 << 20
	defaultQRCodeSize         = 256
)

// Session store backends.
const (
	SessionStoreFile  = "file"
	SessionStoreRedis = "redis"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Host               string `json:"host" yaml:"host"`
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	// API points at the remote catalog REST API
	API APIConfig `json:"api" yaml:"api"`

	Session SessionConfig `json:"session" yaml:"session"`

	// Console holds the cookie and CSRF secrets of the web console
	Console ConsoleConfig `json:"console" yaml:"console"`

	Upload UploadConfig `json:"upload" yaml:"upload"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// APIConfig defines how the remote REST API is reached
type APIConfig struct {
	// Base URL including the API prefix, e.g. http://localhost:3000/api
	BaseURL string        `json:"baseURL" yaml:"baseURL"`
	Timeout time.Duration `json:"timeout" yaml:"timeout"`
}

// SessionConfig defines where the bearer credential is persisted
type SessionConfig struct {
	// Store is "file" or "redis"
	Store string `json:"store" yaml:"store"`

	// TokenKey is the single storage key the credential lives under
	TokenKey string `json:"tokenKey" yaml:"tokenKey"`

	// FilePath is the JSON file used by the file store
	FilePath string `json:"filePath" yaml:"filePath"`

	// RestoreWait bounds how long the route guard waits for a restore in flight
	RestoreWait time.Duration `json:"restoreWait" yaml:"restoreWait"`

	Redis *RedisConfig `json:"redis" yaml:"redis"`
}

type RedisConfig struct {
	Addr     string `json:"addr" yaml:"addr"`
	Password string `json:"password" yaml:"password"`
	DB       int    `json:"db" yaml:"db"`
}

type ConsoleConfig struct {
	SessionKey   string `json:"sessionKey" yaml:"sessionKey"`
	CSRFKey      string `json:"csrfKey" yaml:"csrfKey"`
	CookieSecure bool   `json:"cookieSecure" yaml:"cookieSecure"`

	// QRCode renders the order slip codes
	QRCode QRCodeConfig `json:"qrCode" yaml:"qrCode"`
}

type QRCodeConfig struct {
	Size int `json:"size" yaml:"size"`
	// ErrorCorrection is one of L, M, Q or H
	ErrorCorrection string `json:"errorCorrection" yaml:"errorCorrection"`
}

type UploadConfig struct {
	MaxImageSize int64 `json:"maxImageSize" yaml:"maxImageSize"`
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
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// API_BASEURL -> api.baseURL, aligned with the keys already in the YAML.
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
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

	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ApplyDefaults fills the zero values that have a sensible default.
func (cfg *Config) ApplyDefaults() {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}
	if cfg.API.Timeout <= 0 {
		cfg.API.Timeout = defaultAPITimeout
	}
	if cfg.Session.Store == "" {
		cfg.Session.Store = SessionStoreFile
	}
	if cfg.Session.TokenKey == "" {
		cfg.Session.TokenKey = defaultTokenKey
	}
	if cfg.Session.FilePath == "" {
		cfg.Session.FilePath = defaultSessionFile()
	}
	if cfg.Session.RestoreWait <= 0 {
		cfg.Session.RestoreWait = defaultRestoreWait
	}
	if cfg.Upload.MaxImageSize <= 0 {
		cfg.Upload.MaxImageSize = defaultMaxImageSize
	}
	if cfg.Console.QRCode.Size <= 0 {
		cfg.Console.QRCode.Size = defaultQRCodeSize
	}
}

// Validate reports configuration that cannot work at all.
func (cfg *Config) Validate() error {
	if strings.TrimSpace(cfg.API.BaseURL) == "" {
		return errors.New("api.baseURL is required")
	}

	switch cfg.Session.Store {
	case SessionStoreFile:
	case SessionStoreRedis:
		if cfg.Session.Redis == nil || cfg.Session.Redis.Addr == "" {
			return errors.New("session.redis.addr is required for the redis session store")
		}
	default:
		return errors.Errorf("unknown session store: %s", cfg.Session.Store)
	}

	return nil
}

func defaultSessionFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join(".", "adminpanel-session.json")
	}

	return filepath.Join(dir, "adminpanel", "session.json")
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
