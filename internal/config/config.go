package config

import (
	"fmt"
	"os"
	"path"
	"strings"
	"time"

	"gopkg.in/yaml.v2"
)

const (
	StorageDriverPostgres = "postgres"
	StorageDriverMemory   = "memory"
)

type Config struct {
	Public  Public
	Private Private
}

type Public struct {
	HttpAddr        string        `yaml:"http_addr"`
	JwtTTL          time.Duration `yaml:"jwt_ttl"`
	LogLevel        string        `yaml:"log_level"`
	LogJSON         bool          `yaml:"log_json"`
	StorageDriver   string        `yaml:"storage_driver"` // "postgres" or "memory"
	AllowedOrigins  []string      `yaml:"allowed_origins"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

type Pg struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Dbname   string `yaml:"dbname"`
}

type Private struct {
	JwtKey string `yaml:"jwt_key"`
	Pg     Pg     `yaml:"pg"`
}

func (s *Config) JwtKey() string {
	return s.Private.JwtKey
}

func (s *Config) JwtTTL() time.Duration {
	return s.Public.JwtTTL
}

func mustLoadPath(configPath string, output interface{}) {
	// check if file exists
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		panic("config file does not exist: " + configPath)
	}
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		panic("can't read config file")
	}

	err = yaml.Unmarshal(configFile, output)
	if err != nil {
		panic("can't unmarshal config file: " + err.Error())
	}
}

// MustLoad reads public.yaml and private.yaml from configFolder.
// Panics on unreadable files or missing required fields.
func MustLoad(configFolder string) *Config {
	var public Public
	mustLoadPath(path.Join(configFolder, "public.yaml"), &public)

	var private Private
	mustLoadPath(path.Join(configFolder, "private.yaml"), &private)

	cfg := &Config{Public: public, Private: private}
	cfg.applyDefaults()
	cfg.applyEnv()
	if err := cfg.validate(); err != nil {
		panic(err.Error())
	}
	return cfg
}

func (s *Config) applyDefaults() {
	if s.Public.HttpAddr == "" {
		s.Public.HttpAddr = ":8080"
	}
	if s.Public.StorageDriver == "" {
		s.Public.StorageDriver = StorageDriverPostgres
	}
	if s.Public.ShutdownTimeout == 0 {
		s.Public.ShutdownTimeout = 10 * time.Second
	}
	if s.Public.LogLevel == "" {
		s.Public.LogLevel = "info"
	}
}

func (s *Config) applyEnv() {
	if port := os.Getenv("PORT"); port != "" {
		s.Public.HttpAddr = ":" + port
	}
	if key := os.Getenv("ACCESS_TOKEN_KEY"); key != "" {
		s.Private.JwtKey = key
	}
}

func (s *Config) validate() error {
	var missing []string
	if s.Public.JwtTTL <= 0 {
		missing = append(missing, "jwt_ttl")
	}
	if s.Private.JwtKey == "" {
		missing = append(missing, "jwt_key")
	}
	switch s.Public.StorageDriver {
	case StorageDriverMemory:
	case StorageDriverPostgres:
		if s.Private.Pg.Host == "" {
			missing = append(missing, "pg.host")
		}
		if s.Private.Pg.Dbname == "" {
			missing = append(missing, "pg.dbname")
		}
	default:
		return fmt.Errorf("unknown storage_driver %q", s.Public.StorageDriver)
	}
	if len(missing) > 0 {
		return fmt.Errorf("config is missing required fields: %s", strings.Join(missing, ", "))
	}
	return nil
}
