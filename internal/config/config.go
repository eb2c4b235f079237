package config

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const appName = "showroom"

// DefaultWhatsAppPhone is the studio's order line.
const DefaultWhatsAppPhone = "919999999999"

type Config struct {
	DBPath        string `koanf:"db_path"`        // empty means the XDG data dir
	MediaDir      string `koanf:"media_dir"`      // where uploaded product images go
	LogFile       string `koanf:"log_file"`       // TUI log destination
	WhatsAppPhone string `koanf:"whatsapp_phone"` // order link recipient
	Verbose       bool   `koanf:"verbose"`

	// Images shown in the style slider on the home view.
	StyleImages []string `koanf:"style_images"`
}

func Load() (*Config, error) {
	return load(getConfigPaths())
}

func load(paths []string) (*Config, error) {
	k := koanf.New(".")

	// Try config files in order of priority (last wins)
	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, err
			}
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	cfg.DBPath = expandPath(cfg.DBPath)
	cfg.MediaDir = expandPath(cfg.MediaDir)
	cfg.LogFile = expandPath(cfg.LogFile)
	for i, img := range cfg.StyleImages {
		cfg.StyleImages[i] = expandPath(img)
	}

	if cfg.MediaDir == "" {
		cfg.MediaDir = filepath.Join(xdg.DataHome, appName, "media")
	}
	if cfg.LogFile == "" {
		cfg.LogFile = filepath.Join(xdg.StateHome, appName, appName+".log")
	}
	if cfg.WhatsAppPhone == "" {
		cfg.WhatsAppPhone = DefaultWhatsAppPhone
	}

	return cfg, nil
}

func getConfigPaths() []string {
	paths := []string{}

	// 1. ~/.config/showroom/config.toml
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", appName, "config.toml"))
	}

	// 2. ./config.toml (pwd, highest priority)
	paths = append(paths, "config.toml")

	return paths
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}
