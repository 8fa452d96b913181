// Package config loads nvmmatch settings from the environment and an optional file.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/tailscale/hujson"
	"gopkg.in/yaml.v3"
)

// appName names the configuration directory under $XDG_CONFIG_HOME.
const appName = "nvmmatch"

// fallbackShell is used when $SHELL is unset.
const fallbackShell = "/bin/sh"

// fileNames are the config file names tried in order by DefaultPath.
var fileNames = []string{"config.yaml", "config.yml", "config.toml", "config.json"}

// Config holds the settings needed to run nvm.
type Config struct {
	Shell  string `yaml:"shell" toml:"shell" json:"shell"`       // Shell used to source nvm.sh
	NVMDir string `yaml:"nvm_dir" toml:"nvm_dir" json:"nvm_dir"` // Directory containing nvm.sh
}

// Default returns settings derived from $SHELL and $NVM_DIR.
func Default() Config {
	c := Config{
		Shell:  os.Getenv("SHELL"),
		NVMDir: os.Getenv("NVM_DIR"),
	}
	if c.Shell == "" {
		c.Shell = fallbackShell
	}
	if c.NVMDir == "" {
		if home, err := os.UserHomeDir(); err == nil {
			c.NVMDir = filepath.Join(home, ".nvm")
		}
	}
	return c
}

// Load returns Default overlaid with the non-empty values from the file at path.
// An empty path loads defaults only. The decoder is picked by file extension:
// .yaml/.yml, .toml, or .json (comments and trailing commas allowed).
func Load(path string) (Config, error) {
	c := Default()
	if path == "" {
		return c, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}

	var file Config
	if err := decode(path, data, &file); err != nil {
		return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
	}

	c.Merge(file)
	return c, nil
}

// Merge overwrites c with the non-empty fields of other.
func (c *Config) Merge(other Config) {
	if other.Shell != "" {
		c.Shell = other.Shell
	}
	if other.NVMDir != "" {
		c.NVMDir = expandHome(other.NVMDir)
	}
}

// DefaultPath returns the first existing config file under
// $XDG_CONFIG_HOME/nvmmatch (or ~/.config/nvmmatch), or "" when there is none.
func DefaultPath() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		dir = filepath.Join(home, ".config")
	}

	for _, name := range fileNames {
		p := filepath.Join(dir, appName, name)
		if info, err := os.Stat(p); err == nil && !info.IsDir() {
			return p
		}
	}
	return ""
}

func decode(path string, data []byte, v *Config) error {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		return yaml.Unmarshal(data, v)
	case ".toml":
		return toml.Unmarshal(data, v)
	case ".json":
		std, err := hujson.Standardize(data)
		if err != nil {
			return err
		}
		return json.Unmarshal(std, v)
	default:
		return fmt.Errorf("unsupported config format %q", ext)
	}
}

// expandHome expands a leading ~ to the user's home directory.
func expandHome(p string) string {
	if p != "~" && !strings.HasPrefix(p, "~/") {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return p
	}
	return filepath.Join(home, strings.TrimPrefix(p, "~"))
}
