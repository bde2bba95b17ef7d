package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/sdoconnell/nrrdnote/internal/constants"
)

// Colors holds the presentation color options. Color names follow the
// standard terminal palette (e.g. "yellow", "cyan", "bright_black").
type Colors struct {
	DisableColors bool   `yaml:"disable_colors" mapstructure:"disable_colors"`
	DisableBold   bool   `yaml:"disable_bold"   mapstructure:"disable_bold"`
	ColorPager    bool   `yaml:"color_pager"    mapstructure:"color_pager"`
	TableTitle    string `yaml:"table_title"    mapstructure:"table_title"`
	NoteTitle     string `yaml:"note_title"     mapstructure:"note_title"`
	Description   string `yaml:"description"    mapstructure:"description"`
	Notebook      string `yaml:"notebook"       mapstructure:"notebook"`
	Alias         string `yaml:"alias"          mapstructure:"alias"`
	Tags          string `yaml:"tags"           mapstructure:"tags"`
	Label         string `yaml:"label"          mapstructure:"label"`
}

// Config is the full set of recognized options. Every key the loader
// accepts is enumerated here; unknown keys in the file are ignored.
type Config struct {
	DataDir         string `yaml:"data_dir"         mapstructure:"data_dir"`
	DefaultNotebook string `yaml:"default_notebook" mapstructure:"default_notebook"`
	FileExt         string `yaml:"file_ext"         mapstructure:"file_ext"`
	EditorOptions   string `yaml:"editor_options"   mapstructure:"editor_options"`
	Colors          Colors `yaml:"colors"           mapstructure:"colors"`
}

func defaultConfig(home string) *Config {
	return &Config{
		DataDir:         filepath.Join(home, constants.DefaultDataDir),
		DefaultNotebook: constants.DefaultNotebook,
		Colors: Colors{
			TableTitle:  "bright_blue",
			NoteTitle:   "yellow",
			Description: "default",
			Notebook:    "default",
			Alias:       "bright_black",
			Tags:        "cyan",
			Label:       "white",
		},
	}
}

// GetConfigPath returns the default config file location under home.
func GetConfigPath(home string) string {
	return filepath.Join(
		home,
		constants.ConfigDir,
		constants.ConfigFile+"."+constants.ConfigFileType,
	)
}

// EnsureConfigExists creates the config directory and a commented default
// config file when none is present.
func EnsureConfigExists(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("failed to check config file existence: %w", err)
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("failed to get home directory: %w", err)
	}

	defaults := defaultConfig(home)
	content := fmt.Sprintf(
		"data_dir: %s\n"+
			"default_notebook: %s\n"+
			"# file extension for note files (e.g. 'md' for markdown).\n"+
			"# don't include the '.' character. the default is no extension.\n"+
			"#file_ext:\n"+
			"# standard editor options to use when editing notes.\n"+
			"# may be overridden with -o/--editor-opts.\n"+
			"#editor_options:\n"+
			"colors:\n"+
			"  disable_colors: false\n"+
			"  disable_bold: false\n"+
			"  # set to true if your terminal pager supports color output\n"+
			"  color_pager: false\n"+
			"  #table_title: bright_blue\n"+
			"  #note_title: yellow\n"+
			"  #alias: bright_black\n"+
			"  #tags: cyan\n",
		defaults.DataDir,
		defaults.DefaultNotebook,
	)

	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	return nil
}

// Load reads and validates the config file at path. A missing or
// unreadable file is fatal to the caller (ConfigError semantics).
func Load(path string) (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get home directory: %w", err)
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType(constants.ConfigFileType)

	cfg := defaultConfig(home)
	v.SetDefault("data_dir", cfg.DataDir)
	v.SetDefault("default_notebook", cfg.DefaultNotebook)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	cfg.DataDir = expandPath(cfg.DataDir, home)
	cfg.DefaultNotebook = strings.ToLower(strings.TrimSpace(cfg.DefaultNotebook))
	if cfg.DefaultNotebook == "" {
		cfg.DefaultNotebook = constants.DefaultNotebook
	}
	cfg.FileExt = strings.TrimPrefix(strings.TrimSpace(cfg.FileExt), ".")

	return cfg, nil
}

func expandPath(path, home string) string {
	path = os.ExpandEnv(path)
	if path == "~" || strings.HasPrefix(path, "~/") {
		path = filepath.Join(home, strings.TrimPrefix(path[1:], "/"))
	}
	return filepath.Clean(path)
}
