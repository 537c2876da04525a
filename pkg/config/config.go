package config

import (
	"log"
	"os"
	"sync"

	"github.com/joho/godotenv"
)

var (
	once     sync.Once
	instance *Config
)

const DefaultEnvFile = "./configs/.env"

type Config struct {
}

// New loads the env file once per process. A missing file is fine when the variables
// come from the environment itself, e.g. in a container.
func New() *Config {
	once.Do(func() {
		path := os.Getenv("FITLOG_ENV_FILE")
		if path == "" {
			path = DefaultEnvFile
		}
		err := godotenv.Load(path)
		if err != nil && !os.IsNotExist(err) {
			log.Fatal("loading envs error: ", err)
		}
		instance = &Config{}
	})
	return instance
}

func (c *Config) GetString(key string) string {
	return os.Getenv(key)
}

func (c *Config) GetStringOr(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}
