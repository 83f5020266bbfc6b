package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
)

type Config struct {
	DatabaseURL  string `envconfig:"DATABASE_URL" required:"true"`
	DiscordToken string `envconfig:"DISCORD_TOKEN"` // migrate y export no lo necesitan

	Port      int    `envconfig:"PORT" default:"3000"`
	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat string `envconfig:"LOG_FORMAT" default:"json"` // json | console

	// rol que habilita los slash commands
	CommandRole string `envconfig:"COMMAND_ROLE" default:"bot_cmd"`

	SingleDeleteDelay  time.Duration `envconfig:"SINGLE_DELETE_DELAY" default:"1s"`
	OverwriteEditDelay time.Duration `envconfig:"OVERWRITE_EDIT_DELAY" default:"300ms"`
	NoticeTTL          time.Duration `envconfig:"NOTICE_TTL" default:"5s"`

	AccessEnabled  bool   `envconfig:"ACCESS_ENABLED" default:"true"`
	GreetChannelID string `envconfig:"GREET_CHANNEL_ID"` // vacío = sin saludos
}

// Load lee .env (si existe) y después el entorno.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, errors.Wrap(err, "loading config")
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.LogFormat {
	case "json", "console":
	default:
		return errors.Errorf("LOG_FORMAT must be json or console, got %q", c.LogFormat)
	}
	if c.SingleDeleteDelay <= 0 || c.OverwriteEditDelay <= 0 {
		return errors.New("delete/edit delays must be positive")
	}
	if c.NoticeTTL < 0 {
		return errors.New("NOTICE_TTL must not be negative")
	}
	return nil
}

// RequireDiscord valida lo que necesitan los comandos que hablan con Discord.
func (c *Config) RequireDiscord() error {
	if strings.TrimSpace(c.DiscordToken) == "" {
		return errors.New("required key DISCORD_TOKEN missing value")
	}
	return nil
}

// BotAuth agrega el prefijo "Bot " si el token no lo trae.
func (c *Config) BotAuth() string {
	auth := strings.TrimSpace(c.DiscordToken)
	if !strings.HasPrefix(strings.ToLower(auth), "bot ") {
		auth = "Bot " + auth
	}
	return auth
}

func (c *Config) HTTPAddr() string { return fmt.Sprintf(":%d", c.Port) }

func (c *Config) GreetEnabled() bool { return c.GreetChannelID != "" }
