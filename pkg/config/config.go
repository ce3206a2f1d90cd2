/*
Package config manages the TOML config for t9.
*/
package config

import (
	"path/filepath"

	"github.com/bingoyahoo/t9/internal/utils"
	"github.com/bingoyahoo/t9/pkg/dictionary"
	"github.com/charmbracelet/log"
)

// Config holds the entire config structure
type Config struct {
	Dict   DictConfig   `toml:"dict"`
	CLI    CliConfig    `toml:"cli"`
	Server ServerConfig `toml:"server"`
}

// DictConfig holds dictionary options.
type DictConfig struct {
	Path   string `toml:"path"`
	Format string `toml:"format"`
}

// CliConfig holds session and REPL options.
type CliConfig struct {
	Prompt       string `toml:"prompt"`
	OutputPrefix string `toml:"output_prefix"`
	StopOnError  bool   `toml:"stop_on_error"`
	ForcePrompt  bool   `toml:"force_prompt"`
	MaxDigits    int    `toml:"max_digits"`
	PredictLimit int    `toml:"predict_limit"`
}

// ServerConfig has IPC server options.
type ServerConfig struct {
	MaxDigits    int `toml:"max_digits"`
	CacheSize    int `toml:"cache_size"`
	PredictLimit int `toml:"predict_limit"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Dict: DictConfig{
			Path:   "WordsRTF.RTF",
			Format: "marked",
		},
		CLI: CliConfig{
			Prompt:       "Input: ",
			OutputPrefix: "Output: ",
			StopOnError:  false,
			ForcePrompt:  false,
			MaxDigits:    12,
			PredictLimit: 10,
		},
		Server: ServerConfig{
			MaxDigits:    12,
			CacheSize:    4,
			PredictLimit: 24,
		},
	}
}

// DictOptions converts the [dict] section into loader options. An unknown
// format falls back to marked with a warning.
func (c *Config) DictOptions() dictionary.Options {
	format, err := dictionary.ParseFormat(c.Dict.Format)
	if err != nil {
		log.Warnf("%v. Using marked format...", err)
	}
	return dictionary.Options{Format: format}
}

// InitConfig loads config from file or creates default if missing
func InitConfig(configPath string) (*Config, error) {
	configDir := filepath.Dir(configPath)

	if err := utils.EnsureDir(configDir); err != nil {
		log.Warnf("Failed to create config directory %s: %v. Using built-in defaults...", configDir, err)
		return DefaultConfig(), nil
	}

	if !utils.FileExists(configPath) {
		config := DefaultConfig()
		if err := SaveConfig(config, configPath); err != nil {
			log.Warnf("Failed to create default config file at %s: %v. Using built-in defaults...", configPath, err)
			return DefaultConfig(), nil
		}
		log.Debugf("Created default config file at: %s", configPath)
		return config, nil
	}

	return LoadConfig(configPath)
}

// LoadConfig loads from a TOML file
func LoadConfig(configPath string) (*Config, error) {
	config := DefaultConfig()

	if err := utils.LoadTOMLFile(configPath, config); err != nil {
		return tryPartialParse(configPath)
	}
	return config, nil
}

// tryPartialParse attempts to parse a TOML file
func tryPartialParse(configPath string) (*Config, error) {
	config := DefaultConfig()

	tempConfig, err := utils.ParseTOMLWithRecovery(configPath)
	if err != nil {
		log.Warnf("Could not parse any valid configuration from %s: %v. Using all defaults.", configPath, err)
		return config, nil
	}

	if dictSection, ok := utils.ExtractSection(tempConfig, "dict"); ok {
		extractDictConfig(dictSection, &config.Dict)
	}
	if cliSection, ok := utils.ExtractSection(tempConfig, "cli"); ok {
		extractCliConfig(cliSection, &config.CLI)
	}
	if serverSection, ok := utils.ExtractSection(tempConfig, "server"); ok {
		extractServerConfig(serverSection, &config.Server)
	}
	return config, nil
}

func extractDictConfig(data map[string]any, dict *DictConfig) {
	if val, ok := utils.ExtractString(data, "path"); ok {
		dict.Path = val
	}
	if val, ok := utils.ExtractString(data, "format"); ok {
		dict.Format = val
	}
}

func extractCliConfig(data map[string]any, cli *CliConfig) {
	if val, ok := utils.ExtractString(data, "prompt"); ok {
		cli.Prompt = val
	}
	if val, ok := utils.ExtractString(data, "output_prefix"); ok {
		cli.OutputPrefix = val
	}
	if val, ok := utils.ExtractBool(data, "stop_on_error"); ok {
		cli.StopOnError = val
	}
	if val, ok := utils.ExtractBool(data, "force_prompt"); ok {
		cli.ForcePrompt = val
	}
	if val, ok := utils.ExtractInt64(data, "max_digits"); ok {
		cli.MaxDigits = val
	}
	if val, ok := utils.ExtractInt64(data, "predict_limit"); ok {
		cli.PredictLimit = val
	}
}

func extractServerConfig(data map[string]any, server *ServerConfig) {
	if val, ok := utils.ExtractInt64(data, "max_digits"); ok {
		server.MaxDigits = val
	}
	if val, ok := utils.ExtractInt64(data, "cache_size"); ok {
		server.CacheSize = val
	}
	if val, ok := utils.ExtractInt64(data, "predict_limit"); ok {
		server.PredictLimit = val
	}
}

// SaveConfig saves into a TOML file
func SaveConfig(config *Config, configPath string) error {
	return utils.SaveTOMLFile(config, configPath)
}
