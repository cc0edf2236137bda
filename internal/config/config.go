package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/viper"
)

type AppCfg struct {
	Env  string
	Host string
	Port int
}

type LogCfg struct {
	Level string
}

// DBCredentials is one complete set of Postgres connection parameters.
type DBCredentials struct {
	User     string
	Password string
	Host     string
	Port     string
	Name     string
}

// DSN renders the credential set as a GORM Postgres DSN.
func (c DBCredentials) DSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		c.Host, c.User, c.Password, c.Name, c.Port)
}

type DBCfg struct {
	MaxOpen     int
	MaxIdle     int
	AutoMigrate bool
}

type Config struct {
	App AppCfg
	Log LogCfg
	DB  DBCfg

	// Database is the application credential set; DefaultDatabase is the
	// administrative one, used only to create the application database when
	// it does not exist yet.
	Database        DBCredentials
	DefaultDatabase DBCredentials
}

// Keys every settings file must provide; anything else has a default.
var requiredKeys = []string{
	"DB_USER", "DB_PASSWORD", "DB_HOST", "DB_PORT", "DB_NAME",
	"DB_DEFAULT_USER", "DB_DEFAULT_PASSWORD", "DB_DEFAULT_HOST", "DB_DEFAULT_PORT", "DB_DEFAULT_NAME",
}

// Load reads the dotenv-style settings file (path from SETTINGS_FILE, default
// ".env") and applies environment-variable overrides. A missing required key
// is a fatal configuration error.
func Load() (*Config, error) {
	path := os.Getenv("SETTINGS_FILE")
	if path == "" {
		path = ".env"
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("env")
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		// The file itself is optional as long as the environment supplies
		// every required key.
		if !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
	}

	for _, key := range requiredKeys {
		if v.GetString(key) == "" {
			return nil, fmt.Errorf("missing required key %s in %s", key, path)
		}
	}

	cfg := &Config{
		App: AppCfg{
			Env:  v.GetString("APP_ENV"),
			Host: v.GetString("APP_HOST"),
			Port: v.GetInt("APP_PORT"),
		},
		Log: LogCfg{
			Level: v.GetString("LOG_LEVEL"),
		},
		DB: DBCfg{
			MaxOpen:     v.GetInt("DB_MAX_OPEN"),
			MaxIdle:     v.GetInt("DB_MAX_IDLE"),
			AutoMigrate: v.GetBool("DB_AUTO_MIGRATE"),
		},
		Database: DBCredentials{
			User:     v.GetString("DB_USER"),
			Password: v.GetString("DB_PASSWORD"),
			Host:     v.GetString("DB_HOST"),
			Port:     v.GetString("DB_PORT"),
			Name:     v.GetString("DB_NAME"),
		},
		DefaultDatabase: DBCredentials{
			User:     v.GetString("DB_DEFAULT_USER"),
			Password: v.GetString("DB_DEFAULT_PASSWORD"),
			Host:     v.GetString("DB_DEFAULT_HOST"),
			Port:     v.GetString("DB_DEFAULT_PORT"),
			Name:     v.GetString("DB_DEFAULT_NAME"),
		},
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_ENV", "debug")
	v.SetDefault("APP_HOST", "0.0.0.0")
	v.SetDefault("APP_PORT", 8000)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("DB_MAX_OPEN", 10)
	v.SetDefault("DB_MAX_IDLE", 5)
	v.SetDefault("DB_AUTO_MIGRATE", true)
}
