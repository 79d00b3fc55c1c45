package config

import (
	"os"
	"strconv"
	"sync"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Config holds all environment-driven settings for the server
type Config struct {
	Port            string
	DatabaseURL     string
	DataPath        string
	JWTSecret       string
	APIMasterSecret string
	AdminUsername   string
	AdminPassword   string
	AdvisorURL      string
	AdvisorTimeout  int // seconds
}

var instance *Config
var once sync.Once

// Get loads the configuration once from the environment, reading a .env
// file first when one exists
func Get() *Config {
	once.Do(func() {
		if err := godotenv.Load(); err != nil {
			logrus.Debug("no .env file found, using process environment")
		}

		instance = &Config{
			Port:            getEnv("PORT", "8000"),
			DatabaseURL:     getEnv("DATABASE_URL", ""),
			DataPath:        getEnv("DATA_PATH", "roster.db"),
			JWTSecret:       getEnv("JWT_SECRET", ""),
			APIMasterSecret: getEnv("API_MASTER_SECRET", ""),
			AdminUsername:   getEnv("ADMIN_USERNAME", "admin"),
			AdminPassword:   getEnv("ADMIN_PASSWORD", ""),
			AdvisorURL:      getEnv("ADVISOR_URL", ""),
			AdvisorTimeout:  getEnvAsInt("ADVISOR_TIMEOUT_SEC", 15),
		}

		if instance.JWTSecret == "" {
			logrus.Warn("JWT_SECRET not set; admin sessions will not survive restarts securely")
		}
		if instance.APIMasterSecret == "" {
			logrus.Warn("API_MASTER_SECRET not set; API keys cannot be verified")
		}
	})

	return instance
}

func getEnv(key string, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultVal
}

func getEnvAsInt(name string, defaultVal int) int {
	valStr := getEnv(name, "")
	if val, err := strconv.Atoi(valStr); err == nil {
		return val
	}
	return defaultVal
}
