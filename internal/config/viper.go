// Package config provides Viper-based hierarchical configuration management.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config represents the complete application configuration.
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	CSV struct {
		Delimiter string `mapstructure:"delimiter" yaml:"delimiter"`
	} `mapstructure:"csv" yaml:"csv"`

	Importer struct {
		// HeaderScanLimit caps how many leading lines the header locator
		// examines; 0 scans the whole file.
		HeaderScanLimit int    `mapstructure:"header_scan_limit" yaml:"header_scan_limit"`
		DefaultSource   string `mapstructure:"default_source" yaml:"default_source"`
	} `mapstructure:"importer" yaml:"importer"`

	Data struct {
		Directory      string `mapstructure:"directory" yaml:"directory"`
		CategoriesFile string `mapstructure:"categories_file" yaml:"categories_file"`
		AccountID      string `mapstructure:"account_id" yaml:"account_id"`
	} `mapstructure:"data" yaml:"data"`
}

// InitializeConfig initializes Viper configuration with hierarchical
// loading: defaults, then config file, then environment variables.
func InitializeConfig() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.bill-import")
	v.AddConfigPath(".bill-import")
	v.AddConfigPath(".")

	v.SetEnvPrefix("BILLIMPORT")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Missing config file is fine, defaults and env apply.
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("csv.delimiter", ",")
	v.SetDefault("importer.header_scan_limit", 0)
	v.SetDefault("importer.default_source", "generic")
	v.SetDefault("data.directory", ".")
	v.SetDefault("data.categories_file", "categories.yaml")
	v.SetDefault("data.account_id", "default")
}
