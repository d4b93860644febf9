package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Upstream UpstreamConfig `mapstructure:"upstream"`
	Auth     AuthConfig     `mapstructure:"auth"`
	Cedulon  CedulonConfig  `mapstructure:"cedulon"`
	Logger   LoggerConfig   `mapstructure:"logger"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host           string        `mapstructure:"host"`
	Port           int           `mapstructure:"port"`
	ReadTimeout    time.Duration `mapstructure:"read_timeout"`
	WriteTimeout   time.Duration `mapstructure:"write_timeout"`
	AllowedOrigins []string      `mapstructure:"allowed_origins"`
}

// UpstreamConfig holds the base URLs of the backend services. The cedulones
// service lives behind a separate base URL from the main credits API.
type UpstreamConfig struct {
	APIBaseURL       string        `mapstructure:"api_base_url"`
	CedulonesBaseURL string        `mapstructure:"cedulones_base_url"`
	Timeout          time.Duration `mapstructure:"timeout"`
}

// AuthConfig holds identity-cookie configuration
type AuthConfig struct {
	CookieName string `mapstructure:"cookie_name"`
}

// CedulonConfig holds voucher rendering configuration
type CedulonConfig struct {
	LogoPath    string `mapstructure:"logo_path"`
	Municipio   string `mapstructure:"municipio"`
	Dependencia string `mapstructure:"dependencia"`
}

// LoggerConfig holds logger configuration
type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	OutputPath string `mapstructure:"output_path"`
	Format     string `mapstructure:"format"`
}

// Load loads configuration from file and environment variables
func Load(configPath string) (*Config, error) {
	viper.SetConfigFile(configPath)
	viper.SetConfigType("yaml")
	viper.AutomaticEnv()

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	bindEnvVars()

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default configuration values
func setDefaults() {
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.read_timeout", 30*time.Second)
	viper.SetDefault("server.write_timeout", 30*time.Second)
	viper.SetDefault("server.allowed_origins", []string{"*"})

	viper.SetDefault("upstream.timeout", 30*time.Second)

	viper.SetDefault("auth.cookie_name", "VABack.CIDI")

	viper.SetDefault("cedulon.logo_path", "assets/logo.png")
	viper.SetDefault("cedulon.municipio", "MUNICIPALIDAD DE VILLA ALLENDE")
	viper.SetDefault("cedulon.dependencia", "CREDITOS DE MATERIALES")

	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.output_path", "stdout")
	viper.SetDefault("logger.format", "json")
}

// bindEnvVars binds environment variables to configuration
func bindEnvVars() {
	viper.BindEnv("upstream.api_base_url", "API_BASE_URL")
	viper.BindEnv("upstream.cedulones_base_url", "API_CEDULONES_URL")
	viper.BindEnv("auth.cookie_name", "AUTH_COOKIE_NAME")
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Upstream.APIBaseURL == "" {
		return fmt.Errorf("upstream.api_base_url is required")
	}
	if c.Upstream.CedulonesBaseURL == "" {
		return fmt.Errorf("upstream.cedulones_base_url is required")
	}
	if c.Auth.CookieName == "" {
		return fmt.Errorf("auth.cookie_name is required")
	}
	return nil
}
