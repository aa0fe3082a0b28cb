package config

import (
	"context"

	"github.com/sethvargo/go-envconfig"
)

// Store backends for the work-entry collection. Mongo is the default; the
// flat-file backend keeps the whole collection in one JSON document.
const (
	StoreBackendMongo = "mongo"
	StoreBackendFile  = "file"
)

type Config struct {
	Port      string `env:"PORT,      default=8080"`
	Env       string `env:"ENV,       default=development"`
	JWTSecret string `env:"JWT_SECRET"`
	LogLevel  string `env:"LOG_LEVEL, default=info"`

	// StoreBackend selects where work entries live: "mongo" or "file".
	StoreBackend string `env:"STORE_BACKEND, default=mongo"`
	// EntriesFile is the JSON document path used by the file backend.
	EntriesFile string `env:"ENTRIES_FILE, default=work-entries.json"`

	Admin AdminConfig
	Mongo MongoConfig
	Redis RedisConfig
}

// AdminConfig is the account seeded at startup when no admin exists yet.
type AdminConfig struct {
	Email    string `env:"ADMIN_EMAIL,    default=admin@example.com"`
	Password string `env:"ADMIN_PASSWORD, default=password"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=timeclock"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
