package config

import "github.com/spf13/viper"

// Config holds the runtime configuration of the marketplace server.
type Config struct {
	ServerAddress   string `mapstructure:"SERVER_ADDRESS"`
	LogLevel        string `mapstructure:"LOG_LEVEL"`
	SeedCollections int    `mapstructure:"SEED_COLLECTIONS"`
}

// LoadConfig reads configuration from an optional app.env file in path and
// from the environment. Environment variables win; every field has a default.
func LoadConfig(path string) (Config, error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("app")
	viper.SetConfigType("env")

	viper.SetDefault("SERVER_ADDRESS", ":8080")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("SEED_COLLECTIONS", 0)

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		// The env file is optional; anything else is a real failure.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Config{}, err
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
