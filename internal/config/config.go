package config

import (
	"errors"
	"flag"
	"fmt"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	RunAddress      string `env:"RUN_ADDRESS"`
	DatabaseDSN     string `env:"DATABASE_URI"`
	MigrationsDir   string `env:"MIGRATIONS_DIR"`
	JWTStaffSecret  string `env:"JWT_STAFF_SECRET"`
	TurnoverMinutes int    `env:"TURNOVER_MINUTES"`
}

func LoadConfig() (*Config, error) {
	var flagsConfig, envConfig Config

	if envParseErr := env.Parse(&envConfig); envParseErr != nil {
		return nil, fmt.Errorf("parse env config: %s", envParseErr.Error())
	}

	loadFlags(&flagsConfig)

	conf := mergeConfig(&envConfig, &flagsConfig)
	if conf.DatabaseDSN == "" {
		return nil, errors.New("database DSN is not set")
	}
	if conf.JWTStaffSecret == "" {
		return nil, errors.New("staff JWT secret is not set")
	}
	return conf, nil
}

func MustLoadConfig() *Config {
	config, err := LoadConfig()
	if err != nil {
		panic(err)
	}
	return config
}

func loadFlags(flagConfig *Config) {
	flag.StringVar(&flagConfig.RunAddress, "a", "localhost:8080", "Run address in format host:port")
	flag.StringVar(&flagConfig.DatabaseDSN, "d", "", "Database DSN")
	flag.StringVar(&flagConfig.MigrationsDir, "m", "internal/db/migrations", "Database migrations directory")
	flag.StringVar(&flagConfig.JWTStaffSecret, "s", "", "Staff JWT secret key")
	flag.IntVar(&flagConfig.TurnoverMinutes, "t", 90, "Table turnover interval in minutes")

	flag.Parse()
}

func mergeConfig(envConfig, flagsConfig *Config) *Config {
	turnover := envConfig.TurnoverMinutes
	if turnover == 0 {
		turnover = flagsConfig.TurnoverMinutes
	}
	return &Config{
		RunAddress:      defaultIfBlank(envConfig.RunAddress, flagsConfig.RunAddress),
		DatabaseDSN:     defaultIfBlank(envConfig.DatabaseDSN, flagsConfig.DatabaseDSN),
		MigrationsDir:   defaultIfBlank(envConfig.MigrationsDir, flagsConfig.MigrationsDir),
		JWTStaffSecret:  defaultIfBlank(envConfig.JWTStaffSecret, flagsConfig.JWTStaffSecret),
		TurnoverMinutes: turnover,
	}
}

func defaultIfBlank(value string, defaultValue string) string {
	if value == "" {
		return defaultValue
	}
	return value
}
