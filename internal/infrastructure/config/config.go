package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	JWT      JWTConfig
	Mongo    MongoConfig
	Redis    RedisConfig
	Password PasswordConfig
	Lockout  LockoutConfig
}

// JWTConfig holds the token signing parameters. The secret has no
// default on purpose: starting without one must fail loudly.
type JWTConfig struct {
	Secret     string `env:"JWT_SECRET"`
	Issuer     string `env:"JWT_ISSUER,      default=auth-template"`
	Audience   string `env:"JWT_AUDIENCE,    default=auth-template-clients"`
	ValidHours int    `env:"JWT_VALID_HOURS, default=24"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=auth_template"`
}

type RedisConfig struct {
	Addr    string        `env:"REDIS_ADDR,    default=localhost:6379"`
	DB      int           `env:"REDIS_DB,      default=0"`
	Timeout time.Duration `env:"REDIS_TIMEOUT, default=5s"`
}

// PasswordConfig is the account password policy enforced by the user store.
type PasswordConfig struct {
	RequireDigit           bool `env:"PASSWORD_REQUIRE_DIGIT,        default=true"`
	RequireLowercase       bool `env:"PASSWORD_REQUIRE_LOWERCASE,    default=true"`
	RequireUppercase       bool `env:"PASSWORD_REQUIRE_UPPERCASE,    default=true"`
	RequireNonAlphanumeric bool `env:"PASSWORD_REQUIRE_SPECIAL,      default=true"`
	RequiredLength         int  `env:"PASSWORD_REQUIRED_LENGTH,      default=8"`
	RequiredUniqueChars    int  `env:"PASSWORD_REQUIRED_UNIQUE_CHARS, default=4"`
}

// LockoutConfig controls the failed-login lockout applied by the user store.
type LockoutConfig struct {
	Enabled           bool `env:"LOCKOUT_ENABLED,             default=true"`
	MaxFailedAttempts int  `env:"LOCKOUT_MAX_FAILED_ATTEMPTS, default=5"`
	WindowMinutes     int  `env:"LOCKOUT_TIME_SPAN_MINUTES,   default=15"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
