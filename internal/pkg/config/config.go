package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port             string        `env:"PORT,               default=8080"`
	Env              string        `env:"ENV,                default=development"`
	LogLevel         string        `env:"LOG_LEVEL,          default=info"`
	JWTSecret        string        `env:"JWT_SECRET"`
	JWTTTL           time.Duration `env:"JWT_TTL,            default=24h"`
	BcryptCost       int           `env:"BCRYPT_COST,        default=10"`
	DefaultPassword  string        `env:"DEFAULT_PASSWORD,   default=123456"`
	LoginMaxFailures int           `env:"LOGIN_MAX_FAILURES, default=5"`
	AuditWorkers     int           `env:"AUDIT_WORKERS,      default=4"`

	Mongo MongoConfig
	Redis RedisConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=ordering_system"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
