package config

// File represents the structure of the vitelink.yaml configuration file.
type File struct {
	Version  string     `yaml:"version"`
	Dev      bool       `yaml:"dev"`
	Manifest string     `yaml:"manifest"`
	Base     string     `yaml:"base"`
	Preload  PreloadDTO `yaml:"preload"`
}

// PreloadDTO configures which asset kinds receive preload tags.
type PreloadDTO struct {
	Images bool      `yaml:"images"`
	Fonts  bool      `yaml:"fonts"`
	Types  []TypeDTO `yaml:"types"`
}

// TypeDTO is one extension registration.
type TypeDTO struct {
	Ext  string `yaml:"ext"`
	MIME string `yaml:"mime"`
	As   string `yaml:"as"`
}
