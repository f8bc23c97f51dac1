package config

import (
	"bytes"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"PaintPlus/internal/surface"
)

const configFile = "config.toml"

type Config struct {
	Title        string
	Width        int
	Height       int
	StorageKey   string
	InitialWidth float64
	InitialColor string
}

func Default() Config {
	return Config{
		Title:        "PaintPlus",
		Width:        640,
		Height:       480,
		StorageKey:   "paint-plus",
		InitialWidth: surface.DefaultWidth,
		InitialColor: "#000000",
	}
}

func (c Config) Validate() error {
	var errs []error
	if c.Width <= 0 || c.Height <= 0 {
		errs = append(errs, fmt.Errorf("canvas size %dx%d must be positive", c.Width, c.Height))
	}
	if c.StorageKey == "" {
		errs = append(errs, errors.New("storage key is empty"))
	}
	if c.InitialWidth < surface.MinWidth || c.InitialWidth > surface.MaxWidth {
		errs = append(errs, fmt.Errorf("initial width %v outside [%v, %v]",
			c.InitialWidth, surface.MinWidth, surface.MaxWidth))
	}
	if _, err := surface.ParseColor(c.InitialColor); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Load reads path over the defaults. A missing file is not an error.
func Load(path string) (Config, error) {
	conf := Default()

	ok, err := exists(path)
	if err != nil {
		return conf, fmt.Errorf("checking config file: %w", err)
	}
	if !ok {
		log.Printf("[CONFIG] %s not found, using defaults", path)
		return conf, nil
	}
	if _, err := toml.DecodeFile(path, &conf); err != nil {
		return conf, fmt.Errorf("reading config file %s: %w", path, err)
	}
	if err := conf.Validate(); err != nil {
		return conf, fmt.Errorf("config file %s: %w", path, err)
	}
	log.Printf("[CONFIG] loaded %s", path)
	return conf, nil
}

// Write stores conf at path, creating the directory if needed.
func Write(path string, conf Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	var buffer bytes.Buffer
	if err := toml.NewEncoder(&buffer).Encode(conf); err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	return os.WriteFile(path, buffer.Bytes(), 0644)
}

func DefaultPath() string {
	return filepath.Join(Dir(), configFile)
}

func Dir() string {
	return filepath.Join(xdgOrFallback("XDG_CONFIG_HOME", filepath.Join(os.Getenv("HOME"), ".config")), "paintplus")
}

func exists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

func xdgOrFallback(xdg string, fallback string) string {
	dir := os.Getenv(xdg)
	if dir != "" {
		if ok, err := exists(dir); ok && err == nil {
			return dir
		}
	}
	return fallback
}
