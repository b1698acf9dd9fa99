package config

import (
	"errors"
	"time"
)

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Auth     AuthConfig     `mapstructure:"auth"`
	Logging  LoggingConfig  `mapstructure:"logging"`
	CORS     CORSConfig     `mapstructure:"cors"`
}

type ServerConfig struct {
	Port            int           `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	IdleTimeout     time.Duration `mapstructure:"idle_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

type DatabaseConfig struct {
	Host           string        `mapstructure:"host"`
	Port           int           `mapstructure:"port"`
	User           string        `mapstructure:"user"`
	Password       string        `mapstructure:"password"`
	DBName         string        `mapstructure:"dbname"`
	SSLMode        string        `mapstructure:"sslmode"`
	MaxOpenConns   int           `mapstructure:"max_open_conns"`
	MaxIdleConns   int           `mapstructure:"max_idle_conns"`
	ConnMaxLife    time.Duration `mapstructure:"conn_max_life"`
	AutoMigrate    bool          `mapstructure:"auto_migrate"`
	MigrationsPath string        `mapstructure:"migrations_path"`
}

type AuthConfig struct {
	BotToken          string        `mapstructure:"bot_token"`
	JWTSecret         string        `mapstructure:"jwt_secret"`
	TokenTTL          time.Duration `mapstructure:"token_ttl"`
	CookieName        string        `mapstructure:"cookie_name"`
	CookieDomain      string        `mapstructure:"cookie_domain"`
	CookieSecure      bool          `mapstructure:"cookie_secure"`
	PublicKeyPEMFile  string        `mapstructure:"public_key_pem_file"`
	PrivateKeyPEMFile string        `mapstructure:"private_key_pem_file"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type CORSConfig struct {
	AllowedOrigin string `mapstructure:"allowed_origin"`
}

// Validate checks the settings the service cannot start without.
func (c *Config) Validate() error {
	if c.Auth.BotToken == "" {
		return errors.New("auth.bot_token must be configured")
	}
	if c.Auth.JWTSecret == "" {
		return errors.New("auth.jwt_secret must be configured")
	}
	if c.Auth.TokenTTL <= 0 {
		return errors.New("auth.token_ttl must be positive")
	}
	if c.Auth.PublicKeyPEMFile == "" || c.Auth.PrivateKeyPEMFile == "" {
		return errors.New("auth.public_key_pem_file and auth.private_key_pem_file must be configured")
	}
	if c.Database.DBName == "" || c.Database.Host == "" {
		return errors.New("database.host and database.dbname must be configured")
	}
	return nil
}
