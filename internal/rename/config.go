package rename

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// Config represents the optional batchmv.yaml configuration file.
type Config struct {
	Policy PolicyConfig `yaml:"policy"`
	Walk   WalkConfig   `yaml:"walk"`
}

// PolicyConfig holds executor policy defaults.
type PolicyConfig struct {
	FilesOnly *bool `yaml:"files_only"`
}

// WalkConfig holds discovery defaults for pattern-based pair generation.
type WalkConfig struct {
	MaxDepth int   `yaml:"max_depth"`
	Dirs     bool  `yaml:"dirs"`
	Symlinks *bool `yaml:"symlinks"`
}

// LoadConfig reads batchmv.yaml from dir. Returns a zero Config and nil
// error if the file does not exist.
func LoadConfig(fsys afero.Fs, dir string) (Config, error) {
	p := filepath.Join(dir, "batchmv.yaml")
	data, err := afero.ReadFile(fsys, p)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, nil
		}
		return Config{}, err
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("batchmv.yaml: %w", err)
	}
	return cfg, nil
}

// DefaultPolicy resolves the configured policy, with files-only enforcement
// on unless the config switches it off.
func (c Config) DefaultPolicy() Policy {
	filesOnly := true
	if c.Policy.FilesOnly != nil {
		filesOnly = *c.Policy.FilesOnly
	}
	return Policy{FilesOnly: filesOnly}
}

// IncludeSymlinks reports whether discovery should include symlink
// entries, defaulting to true.
func (c Config) IncludeSymlinks() bool {
	if c.Walk.Symlinks != nil {
		return *c.Walk.Symlinks
	}
	return true
}
