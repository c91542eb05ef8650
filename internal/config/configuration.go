package config

import (
	"errors"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
	"os"
	"time"
)

const (
	DefaultConfigurationPath = "homestorage.yaml"
	configurationPathEnv     = "HOMESTORAGE_CONFIG"
)

type Configuration struct {
	Storage  StorageConfig  `yaml:"storage"`
	Server   ServerConfig   `yaml:"server"`
	Identity IdentityConfig `yaml:"identity"`
}

type StorageConfig struct {
	// Backend is one of "s3", "disk" or "memory".
	Backend string   `yaml:"backend"`
	Path    string   `yaml:"path"`
	S3      S3Config `yaml:"s3"`
}

type S3Config struct {
	Endpoint  string `yaml:"endpoint"`
	Region    string `yaml:"region"`
	Bucket    string `yaml:"bucket"`
	AccessKey string `yaml:"access_key"`
	SecretKey string `yaml:"secret_key"`
	UseSSL    bool   `yaml:"use_ssl"`
}

type ServerConfig struct {
	Port          int           `yaml:"port"`
	Concurrency   int           `yaml:"concurrency"`
	PublicURL     string        `yaml:"public_url"`
	RequestConfig RequestConfig `yaml:"request"`
	LogConfig     LogConfig     `yaml:"log"`
	CleanConfig   CleanConfig   `yaml:"clean"`
}

type RequestConfig struct {
	// SizeLimit is the request body limit in megabytes.
	SizeLimit int `yaml:"size_limit"`
}

type LogConfig struct {
	Level   string `yaml:"level"`
	Format  string `yaml:"format"`
	Output  string `yaml:"output"`
	LogPath string `yaml:"log_path"`
}

type CleanConfig struct {
	Enabled     bool          `yaml:"enabled"`
	Schedule    string        `yaml:"schedule"`
	GracePeriod time.Duration `yaml:"grace_period"`
}

type IdentityConfig struct {
	JWTSecret  string `yaml:"jwt_secret"`
	Audience   string `yaml:"audience"`
	Cookie     string `yaml:"cookie"`
	AdminURL   string `yaml:"admin_url"`
	ServiceKey string `yaml:"service_key"`

	// AdminSubjects may run maintenance endpoints such as /janitor/clean.
	AdminSubjects []string `yaml:"admin_subjects"`
}

// Path returns the configuration file location, HOMESTORAGE_CONFIG wins over the default.
func Path() string {
	if p := os.Getenv(configurationPathEnv); p != "" {
		return p
	}
	return DefaultConfigurationPath
}

func ProvideConfiguration() (*Configuration, error) {
	return LoadConfiguration(Path())
}

// LoadConfiguration reads a yaml file, expanding ${VAR} references from the
// environment (and a .env file if present). A missing file yields defaults.
func LoadConfiguration(configurationFilePath string) (*Configuration, error) {
	_ = godotenv.Load()

	var config Configuration
	data, err := os.ReadFile(configurationFilePath)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}
	if err == nil {
		err = yaml.Unmarshal([]byte(os.ExpandEnv(string(data))), &config)
		if err != nil {
			return nil, err
		}
	}
	config.applyDefaults()
	return &config, nil
}

func (c *Configuration) applyDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Server.Concurrency == 0 {
		c.Server.Concurrency = 256
	}
	if c.Server.PublicURL == "" {
		c.Server.PublicURL = "http://localhost:3000"
	}
	if c.Server.RequestConfig.SizeLimit == 0 {
		c.Server.RequestConfig.SizeLimit = 12
	}
	if c.Server.LogConfig.Level == "" {
		c.Server.LogConfig.Level = "info"
	}
	if c.Server.LogConfig.Format == "" {
		c.Server.LogConfig.Format = "text"
	}
	if c.Server.LogConfig.Output == "" {
		c.Server.LogConfig.Output = "stdout"
	}
	if c.Server.CleanConfig.Schedule == "" {
		c.Server.CleanConfig.Schedule = "@every 6h"
	}
	if c.Server.CleanConfig.GracePeriod == 0 {
		c.Server.CleanConfig.GracePeriod = time.Hour
	}
	if c.Storage.Backend == "" {
		c.Storage.Backend = "disk"
	}
	if c.Storage.Path == "" {
		c.Storage.Path = "./data"
	}
	if c.Storage.S3.Bucket == "" {
		c.Storage.S3.Bucket = "images"
	}
	if c.Identity.Audience == "" {
		c.Identity.Audience = "authenticated"
	}
	if c.Identity.Cookie == "" {
		c.Identity.Cookie = "sb-access-token"
	}
	if c.Identity.JWTSecret == "" {
		c.Identity.JWTSecret = os.Getenv("JWT_SECRET")
	}
}
