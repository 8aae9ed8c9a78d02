package config

import (
	"errors"

	"github.com/spf13/viper"
)

type Config struct {
	Port     string `mapstructure:"port"`
	DSN      string `mapstructure:"dsn"`
	SeedFile string `mapstructure:"seed_file"`
}

// Load reads taskbridge.yaml from the working directory if present;
// TASKBRIDGE_* environment variables override file values.
func Load() (*Config, error) {
	v := viper.New()
	v.SetDefault("port", "8000")
	v.SetDefault("dsn", "taskbridge:taskbridge@tcp(127.0.0.1:3306)/taskbridge?charset=utf8mb4&parseTime=True&loc=Local")
	v.SetDefault("seed_file", "")

	v.SetConfigName("taskbridge")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.SetEnvPrefix("TASKBRIDGE")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
