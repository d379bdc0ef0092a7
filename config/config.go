package config

import (
	_ "embed"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

//go:embed version
var version string

//go:embed name
var name string

type LogLevel string

const (
	Debug LogLevel = "debug"
	Info  LogLevel = "info"
	Warn  LogLevel = "warn"
	Error LogLevel = "error"
)

// LoadEnv reads a .env file if one exists. Missing files are not an error,
// real environment variables always win.
func LoadEnv() {
	_ = godotenv.Load()
}

func GetVersion() string {
	return strings.TrimSpace(version)
}

func GetName() string {
	return strings.TrimSpace(name)
}

func GetLogLevel() LogLevel {
	if IsDebug() {
		return Debug
	}
	logLevel := os.Getenv("HAMLOG_LOG_LEVEL")
	if logLevel == "" {
		return Info
	}
	return LogLevel(logLevel)
}

func IsDebug() bool {
	return os.Getenv("HAMLOG_DEBUG") == "true"
}

func GetListen() string {
	return os.Getenv("HAMLOG_LISTEN")
}

func GetPort() int {
	port, err := strconv.Atoi(os.Getenv("HAMLOG_PORT"))
	if err != nil {
		return 3000
	}
	return port
}

func GetDBPath() string {
	if p := os.Getenv("HAMLOG_DB_PATH"); p != "" {
		return p
	}
	return "db/hamlog.db"
}

func GetUploadDir() string {
	if p := os.Getenv("HAMLOG_UPLOAD_DIR"); p != "" {
		return p
	}
	return "uploads"
}

func GetSessionSecret() string {
	return os.Getenv("HAMLOG_SESSION_SECRET")
}

func GetJWTSecret() string {
	return os.Getenv("HAMLOG_JWT_SECRET")
}

func GetRedisAddr() string {
	return os.Getenv("HAMLOG_REDIS_ADDR")
}

// GetTimeLocation returns the zone used for calendar-day comparisons and cron
// schedules. The product launched for a Korean audience, hence the default.
func GetTimeLocation() *time.Location {
	locName := os.Getenv("HAMLOG_TIME_LOCATION")
	if locName == "" {
		locName = "Asia/Seoul"
	}
	loc, err := time.LoadLocation(locName)
	if err != nil {
		return time.Local
	}
	return loc
}
