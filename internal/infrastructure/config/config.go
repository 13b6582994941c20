package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config contém todas as configurações da aplicação
type Config struct {
	Env      string
	Server   ServerConfig
	Database DatabaseConfig
	Auth     AuthConfig
	Logging  LoggingConfig
	CORS     CORSConfig
}

type ServerConfig struct {
	Port string
	Host string
}

type DatabaseConfig struct {
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string
	SSLMode     string
	MaxConns    int
	MinConns    int
	MaxIdleTime int
}

type AuthConfig struct {
	// Segredos distintos para access e refresh tokens
	TokenSecret         string
	RefreshTokenSecret  string
	AccessExpiryMinutes int
	RefreshExpiryHours  int
	BcryptCost          int
}

type LoggingConfig struct {
	Level string
}

type CORSConfig struct {
	AllowedOrigins string
}

// Load carrega as configurações do ambiente. Um arquivo .env, quando
// presente, é carregado antes; variáveis já exportadas têm precedência.
func Load() (*Config, error) {
	// Best-effort: em produção as variáveis vêm do ambiente
	_ = godotenv.Load()

	viper.AutomaticEnv()

	viper.SetDefault("ENV", "development")
	viper.SetDefault("HOST", "0.0.0.0")
	viper.SetDefault("PORT", "3344")
	viper.SetDefault("DB_SSL_MODE", "disable")
	viper.SetDefault("DB_MAX_CONNS", 10)
	viper.SetDefault("DB_MIN_CONNS", 2)
	viper.SetDefault("DB_MAX_IDLE_TIME", 300)
	viper.SetDefault("AUTH_ACCESS_EXPIRY_MINUTES", 30)
	viper.SetDefault("AUTH_REFRESH_EXPIRY_HOURS", 24)
	viper.SetDefault("SALT_ROUNDS", 10)
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "*")

	config := &Config{
		Env: viper.GetString("ENV"),
		Server: ServerConfig{
			Port: viper.GetString("PORT"),
			Host: viper.GetString("HOST"),
		},
		Database: DatabaseConfig{
			Host:        viper.GetString("DB_HOST"),
			Port:        viper.GetInt("DB_PORT"),
			User:        viper.GetString("DB_USER"),
			Password:    viper.GetString("DB_PASS"),
			DBName:      viper.GetString("DB_NAME"),
			SSLMode:     viper.GetString("DB_SSL_MODE"),
			MaxConns:    viper.GetInt("DB_MAX_CONNS"),
			MinConns:    viper.GetInt("DB_MIN_CONNS"),
			MaxIdleTime: viper.GetInt("DB_MAX_IDLE_TIME"),
		},
		Auth: AuthConfig{
			TokenSecret:         viper.GetString("AUTH_TOKEN_SECRET"),
			RefreshTokenSecret:  viper.GetString("AUTH_REFRESH_TOKEN_SECRET"),
			AccessExpiryMinutes: viper.GetInt("AUTH_ACCESS_EXPIRY_MINUTES"),
			RefreshExpiryHours:  viper.GetInt("AUTH_REFRESH_EXPIRY_HOURS"),
			BcryptCost:          viper.GetInt("SALT_ROUNDS"),
		},
		Logging: LoggingConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
		CORS: CORSConfig{
			AllowedOrigins: viper.GetString("CORS_ALLOWED_ORIGINS"),
		},
	}

	if config.Auth.TokenSecret == "" || config.Auth.RefreshTokenSecret == "" {
		return nil, fmt.Errorf("AUTH_TOKEN_SECRET and AUTH_REFRESH_TOKEN_SECRET are required")
	}

	return config, nil
}

// DSN retorna a connection string do PostgreSQL
func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode,
	)
}
