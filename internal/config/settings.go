package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

var ErrInvalidSettings = errors.New("invalid settings")

type ServerSettings struct {
	Port           string   `yaml:"port"`
	AllowedOrigins []string `yaml:"allowed_origins"`
}

type OAuthSettings struct {
	ClientID     string   `yaml:"client_id"`
	ClientSecret string   `yaml:"client_secret"`
	TokenURL     string   `yaml:"token_url"`
	Scopes       []string `yaml:"scopes"`
}

type APISettings struct {
	BaseURL string        `yaml:"base_url"`
	Timeout time.Duration `yaml:"timeout"`
	OAuth   OAuthSettings `yaml:"oauth"`
}

type TelegramSettings struct {
	BotToken    string        `yaml:"bot_token"`
	InitDataTTL time.Duration `yaml:"init_data_ttl"`
	// FallbackUserID is only used when set explicitly. There is no default.
	FallbackUserID int64 `yaml:"fallback_user_id"`
}

type JWTSettings struct {
	Secret string        `yaml:"secret"`
	TTL    time.Duration `yaml:"ttl"`
}

type SessionSettings struct {
	IdleTTL time.Duration `yaml:"idle_ttl"`
}

type ViewSettings struct {
	ReconcileAfterMutation bool `yaml:"reconcile_after_mutation"`
}

type LogSettings struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type BackendSettings struct {
	Port   string `yaml:"port"`
	Driver string `yaml:"driver"`
	DSN    string `yaml:"dsn"`
}

type Settings struct {
	Server   ServerSettings   `yaml:"server"`
	API      APISettings      `yaml:"api"`
	Telegram TelegramSettings `yaml:"telegram"`
	JWT      JWTSettings      `yaml:"jwt"`
	Session  SessionSettings  `yaml:"session"`
	View     ViewSettings     `yaml:"view"`
	Log      LogSettings      `yaml:"log"`
	Backend  BackendSettings  `yaml:"backend"`
}

func defaults() Settings {
	return Settings{
		Server:   ServerSettings{Port: "8080", AllowedOrigins: []string{"*"}},
		API:      APISettings{Timeout: 10 * time.Second},
		Telegram: TelegramSettings{InitDataTTL: 24 * time.Hour},
		JWT:      JWTSettings{TTL: 12 * time.Hour},
		Session:  SessionSettings{IdleTTL: 30 * time.Minute},
		Log:      LogSettings{Level: "info", Format: "json"},
		Backend:  BackendSettings{Port: "8090", Driver: "postgres"},
	}
}

// Load reads the YAML file at path, when it exists, and then applies
// environment overrides. An empty path skips the file.
func Load(path string) (*Settings, error) {
	cfg := defaults()

	if path != "" {
		f, err := os.Open(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("open %s: %w", path, err)
		default:
			defer f.Close()
			if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
				return nil, fmt.Errorf("decode %s: %w", path, err)
			}
		}
	}

	if err := overrideFromEnv(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func overrideFromEnv(cfg *Settings) error {
	setString(&cfg.Server.Port, "PORT")
	setString(&cfg.API.BaseURL, "API_BASE_URL")
	setString(&cfg.API.OAuth.ClientID, "API_OAUTH_CLIENT_ID")
	setString(&cfg.API.OAuth.ClientSecret, "API_OAUTH_CLIENT_SECRET")
	setString(&cfg.API.OAuth.TokenURL, "API_OAUTH_TOKEN_URL")
	setString(&cfg.Telegram.BotToken, "TELEGRAM_BOT_TOKEN")
	setString(&cfg.JWT.Secret, "JWT_SECRET")
	setString(&cfg.Log.Level, "LOG_LEVEL")
	setString(&cfg.Log.Format, "LOG_FORMAT")
	setString(&cfg.Backend.Port, "BACKEND_PORT")
	setString(&cfg.Backend.Driver, "DATABASE_DRIVER")
	setString(&cfg.Backend.DSN, "DATABASE_DSN")

	if v := os.Getenv("CORS_ALLOWED_ORIGINS"); v != "" {
		cfg.Server.AllowedOrigins = strings.Split(v, ",")
	}

	for key, dst := range map[string]*time.Duration{
		"API_TIMEOUT":           &cfg.API.Timeout,
		"TELEGRAM_INITDATA_TTL": &cfg.Telegram.InitDataTTL,
		"JWT_TTL":               &cfg.JWT.TTL,
		"SESSION_IDLE_TTL":      &cfg.Session.IdleTTL,
	} {
		if v := os.Getenv(key); v != "" {
			d, err := time.ParseDuration(v)
			if err != nil {
				return fmt.Errorf("%w: %s: %v", ErrInvalidSettings, key, err)
			}
			*dst = d
		}
	}

	if v := os.Getenv("FALLBACK_TGUSER_ID"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: FALLBACK_TGUSER_ID: %v", ErrInvalidSettings, err)
		}
		cfg.Telegram.FallbackUserID = id
	}
	if v := os.Getenv("RECONCILE_AFTER_MUTATION"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: RECONCILE_AFTER_MUTATION: %v", ErrInvalidSettings, err)
		}
		cfg.View.ReconcileAfterMutation = b
	}
	return nil
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

// Validate checks the settings the Mini App server cannot run without.
func (s *Settings) Validate() error {
	if s.API.BaseURL == "" {
		return fmt.Errorf("%w: api.base_url is required", ErrInvalidSettings)
	}
	if s.JWT.Secret == "" {
		return fmt.Errorf("%w: jwt.secret is required", ErrInvalidSettings)
	}
	if s.Telegram.BotToken == "" && s.Telegram.FallbackUserID == 0 {
		return fmt.Errorf("%w: telegram.bot_token or telegram.fallback_user_id is required", ErrInvalidSettings)
	}
	if s.API.OAuth.ClientID != "" && s.API.OAuth.TokenURL == "" {
		return fmt.Errorf("%w: api.oauth.token_url is required with a client id", ErrInvalidSettings)
	}
	return nil
}
