package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Global configuration structure.
type Global struct {
	SuitesDir        string `mapstructure:"suites_dir" yaml:"suites_dir"`
	CaseSheetName    string `mapstructure:"case_sheet_name" yaml:"case_sheet_name"`
	ContentSheetName string `mapstructure:"content_sheet_name" yaml:"content_sheet_name"`
	MaxFileSizeMB    int    `mapstructure:"max_file_size_mb" yaml:"max_file_size_mb"`
}

// Save writes the given configuration to the cfgFile path. If cfgFile is empty,
// it writes to ~/.caseloom/config.yaml, creating the directory if necessary.
func Save(c *Global, cfgFile string) error {
	var path string
	if cfgFile != "" {
		path = cfgFile
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("resolve home dir: %w", err)
		}
		dir := filepath.Join(home, ".caseloom")
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir config dir: %w", err)
		}
		path = filepath.Join(dir, "config.yaml")
	}
	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Load loads configuration from file, env, and defaults.
// Precedence: flags (cfgFile) > env > config file > defaults.
func Load(cfgFile string) (*Global, error) {
	v := viper.New()
	v.SetEnvPrefix("CASELOOM")
	v.AutomaticEnv()

	// Defaults. suites_dir defaults to empty here so the env override is
	// visible to Unmarshal; the path default is resolved below.
	v.SetDefault("suites_dir", "")
	v.SetDefault("case_sheet_name", "Cas_de_test")
	v.SetDefault("content_sheet_name", "Data")
	v.SetDefault("max_file_size_mb", 100)

	// Config file
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home dir: %w", err)
		}
		dir := filepath.Join(home, ".caseloom")
		_ = os.MkdirAll(dir, 0o755)
		v.AddConfigPath(dir)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}
	// optional read
	_ = v.ReadInConfig()

	var c Global
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	// Resolve suites_dir default: ~/.caseloom/suites
	if c.SuitesDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home dir: %w", err)
		}
		c.SuitesDir = filepath.Join(home, ".caseloom", "suites")
	}
	return &c, nil
}
