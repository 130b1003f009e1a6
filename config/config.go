package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/joho/godotenv"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const (
	DriverSQLite   = "sqlite"
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"

	defaultAppName          = "Chiro Directory"
	defaultAppPort          = 5001
	defaultDBPath           = "chiro.db"
	defaultSubmitRateLimit  = 10
	defaultSubmitRateWindow = time.Minute
)

// Config holds the application's configuration values.
type Config struct {
	AppName string `json:"appname"`
	AppEnv  string `json:"appenv"`
	AppPort uint16 `json:"appport"`
	GinMode string `json:"ginmode"`

	DBDriver string `json:"dbdriver"`
	DBPath   string `json:"dbpath"`
	DBHost   string `json:"dbhost"`
	DBPort   uint16 `json:"dbport"`
	DBName   string `json:"dbname"`
	DBUSER   string `json:"dbuser"`
	DBPass   string `json:"dbpass"`

	RedisAddr string `json:"redisaddr"`
	RedisPass string `json:"redispass"`
	RedisDB   int    `json:"redisdb"`

	SentryDSN string `json:"sentrydsn"`

	SubmitRateLimit  int           `json:"submitratelimit"`
	SubmitRateWindow time.Duration `json:"submitratewindow"`
}

// IsTest reports whether the application runs under APPENV=test.
func (c *Config) IsTest() bool {
	return c != nil && c.AppEnv == "test"
}

var config *Config
var once sync.Once

// LoadConfig loads the environment variables (optionally from a .env file), and returns a singleton Config instance.
func LoadConfig() *Config {
	once.Do(func() {
		// A missing .env file is fine, the process environment is used as-is.
		if err := godotenv.Load(); err != nil {
			log.Printf("No .env file loaded: %v", err)
		}

		appPort := parseUint16(os.Getenv("APPPORT"), defaultAppPort)
		dbPort := parseUint16(os.Getenv("DBPORT"), 0)
		redisDB, _ := strconv.Atoi(os.Getenv("REDISDB"))

		submitLimit, err := strconv.Atoi(os.Getenv("SUBMITRATELIMIT"))
		if err != nil || submitLimit <= 0 {
			submitLimit = defaultSubmitRateLimit
		}
		submitWindow, err := time.ParseDuration(os.Getenv("SUBMITRATEWINDOW"))
		if err != nil || submitWindow <= 0 {
			submitWindow = defaultSubmitRateWindow
		}

		config = &Config{
			AppName:          getEnvDefault("APPNAME", defaultAppName),
			AppEnv:           os.Getenv("APPENV"),
			AppPort:          appPort,
			GinMode:          os.Getenv("GINMODE"),
			DBDriver:         getEnvDefault("DBDRIVER", DriverSQLite),
			DBPath:           getEnvDefault("DBPATH", defaultDBPath),
			DBHost:           os.Getenv("DBHOST"),
			DBPort:           dbPort,
			DBName:           os.Getenv("DBNAME"),
			DBUSER:           os.Getenv("DBUSER"),
			DBPass:           os.Getenv("DBPASS"),
			RedisAddr:        os.Getenv("REDISADDR"),
			RedisPass:        os.Getenv("REDISPASS"),
			RedisDB:          redisDB,
			SentryDSN:        os.Getenv("SENTRYDSN"),
			SubmitRateLimit:  submitLimit,
			SubmitRateWindow: submitWindow,
		}
	})
	return config
}

// ResetConfigForTest drops the loaded singleton so the next LoadConfig re-reads the environment.
// This function is only meant for tests.
func ResetConfigForTest() {
	config = nil
	once = sync.Once{}
}

func getEnvDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseUint16(raw string, fallback uint16) uint16 {
	v, err := strconv.ParseUint(raw, 10, 16)
	if err != nil || v == 0 {
		return fallback
	}
	return uint16(v)
}

// Dialector builds the gorm dialector for the configured driver.
func (c *Config) Dialector() (gorm.Dialector, error) {
	if c.IsTest() {
		// Each connection gets a private in-memory database so tests never share rows.
		dsn := fmt.Sprintf("file:chiro_test_%d?mode=memory&cache=shared", time.Now().UnixNano())
		return sqlite.Open(dsn), nil
	}

	switch c.DBDriver {
	case DriverSQLite, "":
		return sqlite.Open(c.DBPath), nil
	case DriverMySQL:
		dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?parseTime=true", c.DBUSER, c.DBPass, c.DBHost, c.DBPort, c.DBName)
		return mysql.Open(dsn), nil
	case DriverPostgres:
		dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d sslmode=disable", c.DBHost, c.DBUSER, c.DBPass, c.DBName, c.DBPort)
		return postgres.Open(dsn), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", c.DBDriver)
	}
}

// ConnectDatabase opens a connection to the database selected by the configuration.
func ConnectDatabase() (*gorm.DB, error) {
	cfg := LoadConfig()

	dialector, err := cfg.Dialector()
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return db, nil
}

// CloseDatabase releases the connection pool behind db.
func CloseDatabase(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
