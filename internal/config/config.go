package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

var ErrInvalidConfig = errors.New("invalid config")

var validate = validator.New()

type ICEServer struct {
	URLs       []string `mapstructure:"urls" validate:"required,min=1,dive,required"`
	Username   string   `mapstructure:"username"`
	Credential string   `mapstructure:"credential"`
}

type Config struct {
	Mode              string        `mapstructure:"mode" validate:"oneof=debug release test"`
	Port              int           `mapstructure:"port" validate:"min=1,max=65535"`
	StaticPath        string        `mapstructure:"static_path"`
	ReadLimit         int64         `mapstructure:"read_limit" validate:"min=512"`
	PingPeriod        time.Duration `mapstructure:"ping_period" validate:"gt=0"`
	PongWait          time.Duration `mapstructure:"pong_wait" validate:"gtfield=PingPeriod"`
	WriteWait         time.Duration `mapstructure:"write_wait" validate:"gt=0"`
	SendBuffer        int           `mapstructure:"send_buffer" validate:"min=1"`
	EventBuffer       int           `mapstructure:"event_buffer" validate:"min=0"`
	Secret            string        `mapstructure:"secret"`
	AllowedOrigins    []string      `mapstructure:"allowed_origins" validate:"min=1"`
	RelayRateLimit    int           `mapstructure:"relay_rate_limit" validate:"min=0"`
	RelayRateInterval time.Duration `mapstructure:"relay_rate_interval" validate:"gt=0"`
	Backpressure      string        `mapstructure:"backpressure" validate:"oneof=drop kick"`
	LogLevel          string        `mapstructure:"log_level" validate:"oneof=trace debug info warn error"`
	ICEServers        []ICEServer   `mapstructure:"ice_servers" validate:"dive"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("mode", "release")
	v.SetDefault("port", 5000)
	v.SetDefault("static_path", "./web")
	v.SetDefault("read_limit", 65536)
	v.SetDefault("ping_period", "25s")
	v.SetDefault("pong_wait", "60s")
	v.SetDefault("write_wait", "5s")
	v.SetDefault("send_buffer", 64)
	v.SetDefault("event_buffer", 256)
	v.SetDefault("secret", "")
	v.SetDefault("allowed_origins", []string{"*"})
	v.SetDefault("relay_rate_limit", 50)
	v.SetDefault("relay_rate_interval", "1s")
	v.SetDefault("backpressure", "drop")
	v.SetDefault("log_level", "info")
	v.SetDefault("ice_servers", []map[string]any{
		{"urls": []string{"stun:stun.l.google.com:19302"}},
	})
}

// Load reads config/config.<CONFIG_ENV>.yaml (default env "dev") on top of
// the defaults. CHAT_* environment variables override both; PORT is honored
// as well.
func Load() (*Config, error) {
	env := os.Getenv("CONFIG_ENV")
	if env == "" {
		env = "dev"
	}
	return LoadFile(fmt.Sprintf("config/config.%s.yaml", env))
}

func LoadFile(fileName string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetConfigFile(fileName)

	setDefaults(v)

	v.SetEnvPrefix("CHAT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := v.BindEnv("port", "CHAT_PORT", "PORT"); err != nil {
		return nil, fmt.Errorf("failed to bind port env: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to read config %s: %w", fileName, err)
		}
		log.Warn().Str("module", "config").Str("file", fileName).Msg("config file not found, using defaults")
	} else {
		log.Info().Str("module", "config").Str("file", fileName).Msg("loaded config")
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if cfg.Secret == "" {
		cfg.Secret = uuid.NewString()
		log.Warn().Str("module", "config").Msg("no session secret configured, generated one for this run")
	}

	log.Info().
		Str("module", "config").
		Str("mode", cfg.Mode).
		Int("port", cfg.Port).
		Str("static", cfg.StaticPath).
		Msg("config ready")
	return &cfg, nil
}
