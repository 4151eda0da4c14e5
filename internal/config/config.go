package config

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

func LoadConfig() {
	viper.SetConfigName("config")        // name of config file (without extension)
	viper.SetConfigType("yaml")          // REQUIRED if the config file does not have the extension in the name
	viper.AddConfigPath("/etc/scanopy/") // path to look for the config file in
	viper.AddConfigPath(".")             // optionally look for config in the working directory

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Warn().Msg("Config file not found, using defaults")
		} else {
			log.Panic().Err(err).Msg("Fatal error reading config file")
		}
	}
	SetDefaultConfig()
}

func SetDefaultConfig() {

	// Logging
	viper.SetDefault("logging.console.level", "info")
	viper.SetDefault("logging.console.format", "pretty") // if it's not pretty, just outputs json
	viper.SetDefault("logging.file.enabled", true)
	viper.SetDefault("logging.file.path", "scanopy.log")
	viper.SetDefault("logging.file.level", "info")

	// Database
	viper.SetDefault("db.max_idle_conns", 5)
	viper.SetDefault("db.max_open_conns", 50)
	viper.SetDefault("db.conn_max_lifetime", "1h")

	// Extractor service
	viper.SetDefault("extractor.url", "http://localhost:8000")
	viper.SetDefault("extractor.timeout", 120)
	viper.SetDefault("extractor.health_timeout", 5)

	// Scan
	viper.SetDefault("scan.page_title_prefix", "Page: ")

	// API
	viper.SetDefault("api.listen.host", "")
	viper.SetDefault("api.listen.port", 8014)
	viper.SetDefault("api.metrics.enabled", false)
	viper.SetDefault("api.metrics.path", "/metrics")
	viper.SetDefault("api.metrics.title", "Scanopy Metrics")

	viper.SetDefault("api.cors.origins", []string{"http://localhost:3000", "http://127.0.0.1:3000"})
	viper.SetDefault("api.auth.jwt_secret_key", "ch4ng3Th1sToAS3cr3tK3y")
	viper.SetDefault("api.auth.jwt_secret_expire_minutes", 15)
}
