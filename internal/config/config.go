package config

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/osse101/AlterEgo_Go/internal/logger"
	"github.com/osse101/AlterEgo_Go/internal/validation"
)

// Config holds the application configuration
type Config struct {
	Port        int    `env:"PORT"         envDefault:"8080" validate:"min=1,max=65535"`
	APIKey      string `env:"API_KEY"      validate:"required"`
	LogLevel    string `env:"LOG_LEVEL"    envDefault:"info" validate:"oneof=debug info warn warning error DEBUG INFO WARN ERROR"`
	LogFormat   string `env:"LOG_FORMAT"   envDefault:"text" validate:"oneof=json text"`
	Environment string `env:"ENVIRONMENT"  envDefault:"dev"`
	ServiceName string `env:"SERVICE_NAME" envDefault:"alterego-bot"`
	Version     string `env:"VERSION"      envDefault:"dev"`
	LogDir      string `env:"LOG_DIR"`
	RateLimit   int    `env:"RATE_LIMIT"   envDefault:"600"  validate:"min=1"`

	// Game data
	DataDir   string `env:"DATA_DIR"   envDefault:"data"`
	RowOffset int    `env:"ROW_OFFSET" envDefault:"2"    validate:"min=1"`
	DiceMin   int    `env:"DICE_MIN"   envDefault:"1"    validate:"min=1"`
	DiceMax   int    `env:"DICE_MAX"   envDefault:"6"    validate:"gtefield=DiceMin"`
	QueueSize int    `env:"QUEUE_SIZE" envDefault:"1024" validate:"min=1"`

	// Row store
	RowStore      string        `env:"ROW_STORE"        envDefault:"memory" validate:"oneof=postgres bolt memory"`
	BoltPath      string        `env:"BOLT_PATH"        envDefault:"data/alterego.db"`
	DBUser        string        `env:"DB_USER"          envDefault:"postgres"`
	DBPassword    string        `env:"DB_PASSWORD"      envDefault:"postgres"`
	DBHost        string        `env:"DB_HOST"          envDefault:"localhost"`
	DBPort        string        `env:"DB_PORT"          envDefault:"5432"`
	DBName        string        `env:"DB_NAME"          envDefault:"alterego"`
	DBMaxConns    int           `env:"DB_MAX_CONNS"     envDefault:"10"`
	DBMaxConnIdle time.Duration `env:"DB_MAX_CONN_IDLE" envDefault:"5m"`
	DBMaxConnLife time.Duration `env:"DB_MAX_CONN_LIFE" envDefault:"1h"`

	// Discord
	DiscordToken         string        `env:"DISCORD_TOKEN"`
	DiscordGuildID       string        `env:"DISCORD_GUILD_ID"`
	DiscordLogChannelID  string        `env:"DISCORD_LOG_CHANNEL_ID"`
	DiscordModeratorRole string        `env:"DISCORD_MODERATOR_ROLE_ID"`
	DiscordPrefix        string        `env:"DISCORD_COMMAND_PREFIX"   envDefault:"."`
	MemberCacheSize      int           `env:"DISCORD_MEMBER_CACHE_SIZE" envDefault:"256" validate:"min=1"`
	MemberCacheTTL       time.Duration `env:"DISCORD_MEMBER_CACHE_TTL"  envDefault:"10m"`
}

// Load reads .env (when present) and the process environment.
func Load() (*Config, error) {
	// Real env vars win; a missing .env is fine
	_ = godotenv.Load()

	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgParseEnv, err)
	}
	if err := validation.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("%s: %s", ErrMsgInvalidEnv, validation.Describe(err))
	}
	return &cfg, nil
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}

// DiscordEnabled reports whether a bot token was supplied.
func (c *Config) DiscordEnabled() bool {
	return c.DiscordToken != ""
}

// IsDevelopment reports whether source locations should be logged.
func (c *Config) IsDevelopment() bool {
	return c.Environment == EnvironmentDev || c.Environment == EnvironmentDevelopment
}

// LoggerConfig returns the logging settings; source locations are logged in development.
func (c *Config) LoggerConfig() logger.Config {
	return logger.NewConfig(c.LogLevel, c.LogFormat, c.ServiceName, c.Version, c.Environment, c.IsDevelopment())
}

// PrefabsPath returns the prefab catalog file.
func (c *Config) PrefabsPath() string { return filepath.Join(c.DataDir, FilePrefabs) }

// RecipesPath returns the recipe book file.
func (c *Config) RecipesPath() string { return filepath.Join(c.DataDir, FileRecipes) }

// WorldPath returns the world seed file.
func (c *Config) WorldPath() string { return filepath.Join(c.DataDir, FileWorld) }
