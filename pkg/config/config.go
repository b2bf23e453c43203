/*
Package config manages the TOML config for the autocorrect services.
*/
package config

import (
	"os"
	"path/filepath"

	"github.com/bastiangx/autocorrect/internal/utils"
	"github.com/charmbracelet/log"
)

// AppName names the per-user config directory.
const AppName = "autocorrect"

// Config holds the entire config structure
type Config struct {
	Server ServerConfig `toml:"server"`
	Corpus CorpusConfig `toml:"corpus"`
	CLI    CliConfig    `toml:"cli"`
}

// ServerConfig has server related options.
type ServerConfig struct {
	MaxPrefix   int  `toml:"max_prefix"`
	AllowInsert bool `toml:"allow_insert"`
	Correct     bool `toml:"correct"`
}

// CorpusConfig lists what gets indexed at startup.
type CorpusConfig struct {
	Paths      []string `toml:"paths"`
	Extensions []string `toml:"extensions"`
	DictFiles  []string `toml:"dict_files"`
	ExportPath string   `toml:"export_path"`
}

// CliConfig holds cli interface options.
type CliConfig struct {
	ShowFreq  bool `toml:"show_freq"`
	Correct   bool `toml:"correct"`
	MaxPrefix int  `toml:"max_prefix"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			MaxPrefix:   60,
			AllowInsert: true,
			Correct:     false,
		},
		Corpus: CorpusConfig{
			Paths:      []string{},
			Extensions: []string{".txt"},
			DictFiles:  []string{},
		},
		CLI: CliConfig{
			ShowFreq:  true,
			Correct:   false,
			MaxPrefix: 60,
		},
	}
}

// GetDefaultConfigPath returns the default path for config.toml
func GetDefaultConfigPath() string {
	return filepath.Join(utils.ConfigDir(AppName), "config.toml")
}

// LoadConfigWithPriority loads config with priority:
// 1. Custom path from -config flag
// 2. Default path: [UserConfigDir]/autocorrect/config.toml
// 3. Builtin defaults
func LoadConfigWithPriority(customConfigPath string) (*Config, string, error) {
	if customConfigPath != "" {
		if _, statErr := os.Stat(customConfigPath); statErr == nil {
			config, err := LoadConfig(customConfigPath)
			if err == nil {
				log.Debugf("Loaded config from custom path: %s", customConfigPath)
				return config, customConfigPath, nil
			}
			log.Warnf("Failed to load custom config from %s: %v. Trying default path...", customConfigPath, err)
		} else {
			log.Warnf("Custom config file not found at %s: %v. Trying default path...", customConfigPath, statErr)
		}
	}

	defaultPath := GetDefaultConfigPath()
	config, err := InitConfig(defaultPath)
	if err != nil {
		log.Warnf("Failed to load/create config at default path %s: %v. Using builtin defaults...", defaultPath, err)
		return DefaultConfig(), "", nil
	}
	log.Debugf("Loaded config from default path: %s", defaultPath)
	return config, defaultPath, nil
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

// LoadConfig loads from a TOML file. Keys missing from the file keep their
// defaults; a file that does not decode is salvaged section by section.
func LoadConfig(configPath string) (*Config, error) {
	config := DefaultConfig()

	if err := utils.DecodeTOMLFile(configPath, config); err != nil {
		return tryPartialParse(configPath)
	}
	config.normalize()
	return config, nil
}

// tryPartialParse keeps whatever fields have the expected types.
func tryPartialParse(configPath string) (*Config, error) {
	config := DefaultConfig()

	sections, err := utils.DecodeTOMLSections(configPath)
	if err != nil {
		log.Warnf("Could not parse any valid configuration from %s: %v. Using all defaults.", configPath, err)
		return config, nil
	}

	if server, ok := sections["server"]; ok {
		utils.Set(server, "max_prefix", &config.Server.MaxPrefix)
		utils.Set(server, "allow_insert", &config.Server.AllowInsert)
		utils.Set(server, "correct", &config.Server.Correct)
	}
	if corpus, ok := sections["corpus"]; ok {
		utils.Set(corpus, "paths", &config.Corpus.Paths)
		utils.Set(corpus, "extensions", &config.Corpus.Extensions)
		utils.Set(corpus, "dict_files", &config.Corpus.DictFiles)
		utils.Set(corpus, "export_path", &config.Corpus.ExportPath)
	}
	if cli, ok := sections["cli"]; ok {
		utils.Set(cli, "show_freq", &config.CLI.ShowFreq)
		utils.Set(cli, "correct", &config.CLI.Correct)
		utils.Set(cli, "max_prefix", &config.CLI.MaxPrefix)
	}
	config.normalize()
	return config, nil
}

// normalize replaces values that cannot work with the defaults.
func (c *Config) normalize() {
	defaults := DefaultConfig()
	if c.Server.MaxPrefix < 1 {
		log.Warnf("Invalid server.max_prefix %d, using %d", c.Server.MaxPrefix, defaults.Server.MaxPrefix)
		c.Server.MaxPrefix = defaults.Server.MaxPrefix
	}
	if c.CLI.MaxPrefix < 1 {
		log.Warnf("Invalid cli.max_prefix %d, using %d", c.CLI.MaxPrefix, defaults.CLI.MaxPrefix)
		c.CLI.MaxPrefix = defaults.CLI.MaxPrefix
	}
}

// GetActiveConfigPath returns the absolute path of loaded config file
func GetActiveConfigPath(configPath string) string {
	if configPath == "" {
		return "builtin defaults"
	}
	return utils.GetAbsolutePath(configPath)
}

// SaveConfig saves into a TOML file
func SaveConfig(config *Config, configPath string) error {
	return utils.SaveTOMLFile(config, configPath)
}
