package cmd

import (
	"fmt"
	"os"
	"strconv"

	"logistics/internal/adapters/out/geocoding"
	"logistics/internal/adapters/out/postgres"
	"logistics/internal/adapters/out/rediscache"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPPort string
	LogLevel string

	DBDialect      string
	DBHost         string
	DBPort         string
	DBUser         string
	DBPassword     string
	DBName         string
	DBSslMode      string
	DBMaxOpenConns int
	DBAutoMigrate  bool

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	GeocoderBaseURL string
	GeocoderToken   string
	GeocoderCountry string
}

// GetConfigs reads the environment, loading .env first when one exists.
func GetConfigs() (Config, error) {
	_ = godotenv.Load(".env")

	maxOpenConns, err := goDotEnvInt("DB_MAX_OPEN_CONNS", 25)
	if err != nil {
		return Config{}, err
	}
	redisDB, err := goDotEnvInt("REDIS_DB", 0)
	if err != nil {
		return Config{}, err
	}
	autoMigrate, err := goDotEnvBool("DB_AUTO_MIGRATE")
	if err != nil {
		return Config{}, err
	}

	config := Config{
		HTTPPort:        goDotEnvVariable("HTTP_PORT", "8080"),
		LogLevel:        goDotEnvVariable("LOG_LEVEL", "info"),
		DBDialect:       goDotEnvVariable("DB_DIALECT", postgres.DialectPostgres),
		DBHost:          goDotEnvVariable("DB_HOST", "localhost"),
		DBPort:          goDotEnvVariable("DB_PORT", "5432"),
		DBUser:          goDotEnvVariable("DB_USER", ""),
		DBPassword:      goDotEnvVariable("DB_PASSWORD", ""),
		DBName:          goDotEnvVariable("DB_NAME", ""),
		DBSslMode:       goDotEnvVariable("DB_SSLMODE", "disable"),
		DBMaxOpenConns:  maxOpenConns,
		DBAutoMigrate:   autoMigrate,
		RedisAddr:       goDotEnvVariable("REDIS_ADDR", "localhost:6379"),
		RedisPassword:   goDotEnvVariable("REDIS_PASSWORD", ""),
		RedisDB:         redisDB,
		GeocoderBaseURL: goDotEnvVariable("GEOCODER_BASE_URL", geocoding.DefaultBaseURL),
		GeocoderToken:   goDotEnvVariable("GEOCODER_TOKEN", ""),
		GeocoderCountry: goDotEnvVariable("GEOCODER_COUNTRY", geocoding.DefaultCountry),
	}
	return config, nil
}

func (c Config) Database() postgres.Config {
	return postgres.Config{
		Dialect:      c.DBDialect,
		Host:         c.DBHost,
		Port:         c.DBPort,
		User:         c.DBUser,
		Password:     c.DBPassword,
		Name:         c.DBName,
		SSLMode:      c.DBSslMode,
		MaxOpenConns: c.DBMaxOpenConns,
	}
}

func (c Config) Redis() rediscache.Config {
	return rediscache.Config{Addr: c.RedisAddr, Password: c.RedisPassword, DB: c.RedisDB}
}

func (c Config) Geocoder() geocoding.Config {
	return geocoding.Config{BaseURL: c.GeocoderBaseURL, Token: c.GeocoderToken, Country: c.GeocoderCountry}
}

func goDotEnvVariable(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func goDotEnvInt(key string, fallback int) (int, error) {
	raw := goDotEnvVariable(key, "")
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer, got %q", key, raw)
	}
	return v, nil
}

func goDotEnvBool(key string) (bool, error) {
	raw := goDotEnvVariable(key, "")
	if raw == "" {
		return false, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("%s must be a boolean, got %q", key, raw)
	}
	return v, nil
}
