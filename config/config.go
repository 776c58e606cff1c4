package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/gommon/log"
	"github.com/radhian/ledger-engine/consts"
)

type Config struct {
	DbHost     string
	DbPort     string
	DbUser     string
	DbName     string
	DbPassword string

	Port      string
	UploadDir string

	WorkerNumber int
	Interval     time.Duration

	LogLevel log.Lvl
}

// Load reads the configuration from the environment, falling back to the
// defaults in consts for anything unset.
func Load() (Config, error) {
	cfg := Config{
		DbHost:       os.Getenv("DB_HOST"),
		DbPort:       os.Getenv("DB_PORT"),
		DbUser:       os.Getenv("DB_USER"),
		DbName:       os.Getenv("DB_NAME"),
		DbPassword:   os.Getenv("DB_PASSWORD"),
		Port:         getEnv("PORT", consts.DefaultPort),
		UploadDir:    getEnv("UPLOAD_DIR", consts.DefaultUploadDir),
		WorkerNumber: consts.DefaultWorkerNumber,
		Interval:     consts.DefaultIntervalInSec * time.Second,
	}

	if v := os.Getenv("WORKER_NUMBER"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return cfg, fmt.Errorf("invalid WORKER_NUMBER %q", v)
		}
		cfg.WorkerNumber = n
	}

	if v := os.Getenv("INTERVAL_IN_SEC"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return cfg, fmt.Errorf("invalid INTERVAL_IN_SEC %q", v)
		}
		cfg.Interval = time.Duration(n) * time.Second
	}

	lvl, err := ParseLogLevel(getEnv("LOG_LEVEL", consts.DefaultLogLevel))
	if err != nil {
		return cfg, err
	}
	cfg.LogLevel = lvl

	return cfg, nil
}

// DBURI builds the postgres connection string.
func (c Config) DBURI() string {
	return fmt.Sprintf("host=%s port=%s user=%s dbname=%s sslmode=disable password=%s", c.DbHost, c.DbPort, c.DbUser, c.DbName, c.DbPassword)
}

func ParseLogLevel(s string) (log.Lvl, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return log.DEBUG, nil
	case "INFO":
		return log.INFO, nil
	case "WARN":
		return log.WARN, nil
	case "ERROR":
		return log.ERROR, nil
	case "OFF":
		return log.OFF, nil
	}
	return log.INFO, fmt.Errorf("invalid log level %q", s)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
