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
	defaultMaxRequestBodySize = "64KB"
	defaultBucketURL          = "file:///var/lib/alvaqth?create_dir=true"
	defaultGeocodingURL       = "https://nominatim.openstreetmap.org"
	defaultUserAgent          = "alvaqth/1.0"
	defaultSuccessDelay       = 3 * time.Second
	defaultClientTimeout      = 10 * time.Second
)

// Geolocation providers.
const (
	GeolocationProviderNone   = "none"
	GeolocationProviderStatic = "static"
	GeolocationProviderIP     = "ip"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		// Host defaults to loopback
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

	// Backend is the time-calculation and reminder-registration service
	Backend *BackendConfig `json:"backend" yaml:"backend"`

	// Geocoding configures the Nominatim client
	Geocoding *GeocodingConfig `json:"geocoding" yaml:"geocoding"`

	// Geolocation selects how the device position is obtained
	Geolocation *GeolocationConfig `json:"geolocation" yaml:"geolocation"`

	// Preferences configures where the location preference is persisted
	Preferences *PreferencesConfig `json:"preferences" yaml:"preferences"`

	Device *DeviceConfig `json:"device" yaml:"device"`

	OptIn *OptInConfig `json:"optIn" yaml:"optIn"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// BackendConfig defines the prayer-times backend connection
type BackendConfig struct {
	BaseURL string        `json:"baseUrl" yaml:"baseUrl"`
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// Calculation method key forwarded to /times (e.g. MWL, ISNA, KARACHI). Empty uses the backend default.
	Method string `json:"method" yaml:"method"`
}

// GeocodingConfig defines the Nominatim client settings
type GeocodingConfig struct {
	BaseURL   string        `json:"baseUrl" yaml:"baseUrl"`
	UserAgent string        `json:"userAgent" yaml:"userAgent"`
	Timeout   time.Duration `json:"timeout" yaml:"timeout"`

	// Nominatim's usage policy allows at most one request per second
	RequestsPerSecond float64 `json:"requestsPerSecond" yaml:"requestsPerSecond"`
}

// GeolocationConfig defines the device position source
type GeolocationConfig struct {
	// Provider: "none", "static" or "ip"
	Provider string `json:"provider" yaml:"provider"`

	// Fixed coordinates for the static provider
	Latitude  float64 `json:"latitude" yaml:"latitude"`
	Longitude float64 `json:"longitude" yaml:"longitude"`

	// Lookup endpoint for the ip provider
	Endpoint string        `json:"endpoint" yaml:"endpoint"`
	Timeout  time.Duration `json:"timeout" yaml:"timeout"`
}

// PreferencesConfig defines the preference store location.
// BucketURL is any gocloud.dev/blob URL, e.g. file:///var/lib/alvaqth or mem://
type PreferencesConfig struct {
	BucketURL string `json:"bucketUrl" yaml:"bucketUrl"`
}

// DeviceConfig describes the device the client runs on
type DeviceConfig struct {
	// IANA timezone name. Empty uses the process local zone.
	Timezone string `json:"timezone" yaml:"timezone"`
}

// OptInConfig defines the opt-in wizard behaviour
type OptInConfig struct {
	SuccessDelay time.Duration `json:"successDelay" yaml:"successDelay"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

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

	// Env overrides: BACKEND_BASEURL -> backend.baseUrl
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

	cfg.applyDefaults()

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyDefaults fills optional sections so consumers never see nil
func (c *Config) applyDefaults() {
	if strings.TrimSpace(c.HTTP.MaxRequestBodySize) == "" {
		c.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}
	if c.Backend == nil {
		c.Backend = &BackendConfig{}
	}
	if c.Backend.Timeout == 0 {
		c.Backend.Timeout = defaultClientTimeout
	}
	if c.Geocoding == nil {
		c.Geocoding = &GeocodingConfig{}
	}
	if c.Geocoding.BaseURL == "" {
		c.Geocoding.BaseURL = defaultGeocodingURL
	}
	if c.Geocoding.UserAgent == "" {
		c.Geocoding.UserAgent = defaultUserAgent
	}
	if c.Geocoding.Timeout == 0 {
		c.Geocoding.Timeout = defaultClientTimeout
	}
	if c.Geocoding.RequestsPerSecond <= 0 {
		c.Geocoding.RequestsPerSecond = 1
	}
	if c.Geolocation == nil {
		c.Geolocation = &GeolocationConfig{}
	}
	if c.Geolocation.Provider == "" {
		c.Geolocation.Provider = GeolocationProviderNone
	}
	if c.Geolocation.Timeout == 0 {
		c.Geolocation.Timeout = defaultClientTimeout
	}
	if c.Preferences == nil {
		c.Preferences = &PreferencesConfig{}
	}
	if c.Preferences.BucketURL == "" {
		c.Preferences.BucketURL = defaultBucketURL
	}
	if c.Device == nil {
		c.Device = &DeviceConfig{}
	}
	if c.OptIn == nil {
		c.OptIn = &OptInConfig{}
	}
	if c.OptIn.SuccessDelay == 0 {
		c.OptIn.SuccessDelay = defaultSuccessDelay
	}
}

func (c *Config) validate() error {
	if strings.TrimSpace(c.Backend.BaseURL) == "" {
		return errors.New("backend.baseUrl is required")
	}

	switch c.Geolocation.Provider {
	case GeolocationProviderNone, GeolocationProviderStatic:
	case GeolocationProviderIP:
		if c.Geolocation.Endpoint == "" {
			return errors.New("geolocation.endpoint is required for ip provider")
		}
	default:
		return errors.Errorf("unknown geolocation provider: %s", c.Geolocation.Provider)
	}

	if c.Device.Timezone != "" {
		if _, err := time.LoadLocation(c.Device.Timezone); err != nil {
			return errors.Wrapf(err, "invalid device.timezone %q", c.Device.Timezone)
		}
	}

	return nil
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

// Zone returns the device timezone and its IANA name. Without a configured
// timezone it uses $TZ when loadable, otherwise UTC.
// validate has already rejected unknown names.
func (d *DeviceConfig) Zone() (*time.Location, string) {
	name := ""
	if d != nil {
		name = d.Timezone
	}
	if name == "" {
		name = os.Getenv("TZ")
	}
	if name == "" {
		return time.UTC, time.UTC.String()
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.UTC, time.UTC.String()
	}

	return loc, name
}
