// Package config provides the configuration loader for vitelink.
package config

import (
	"os"
	"path/filepath"

	"go.trai.ch/vitelink/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct{}

// NewLoader creates a new Loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load walks up from cwd looking for vitelink.yaml and returns the options it
// declares. When no file is found, defaults are returned: flags alone are
// enough to drive a render.
func (l *Loader) Load(cwd string) (domain.Options, error) {
	defaults := domain.Options{Base: domain.DefaultBase}

	configPath, found := findConfiguration(cwd)
	if !found {
		return defaults, nil
	}

	// #nosec G304 -- configPath is discovered relative to the caller's cwd
	data, err := os.ReadFile(configPath)
	if err != nil {
		return domain.Options{}, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", configPath)
	}

	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return domain.Options{}, zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", configPath)
	}

	opts := domain.Options{
		Dev:           file.Dev,
		Manifest:      file.Manifest,
		Base:          file.Base,
		PreloadImages: file.Preload.Images,
		PreloadFonts:  file.Preload.Fonts,
	}
	if opts.Base == "" {
		opts.Base = domain.DefaultBase
	}
	// Relative manifest paths are anchored at the config file's directory.
	if opts.Manifest != "" && !filepath.IsAbs(opts.Manifest) {
		opts.Manifest = filepath.Join(filepath.Dir(configPath), opts.Manifest)
	}
	for _, t := range file.Preload.Types {
		opts.PreloadRules = append(opts.PreloadRules, domain.PreloadRule{
			Ext:  t.Ext,
			MIME: t.MIME,
			As:   t.As,
		})
	}

	return opts, nil
}

func findConfiguration(cwd string) (string, bool) {
	currentDir := cwd
	for {
		configPath := filepath.Join(currentDir, domain.ConfigFileName)
		if _, err := os.Stat(configPath); err == nil {
			return configPath, true
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root
			return "", false
		}
		currentDir = parentDir
	}
}
