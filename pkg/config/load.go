package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Environment variables read by FromEnv
const (
	EnvVariant = "RUSH80_VARIANT"
	EnvConfig  = "RUSH80_CONFIG"
	EnvSave    = "RUSH80_SAVE"
	EnvSeed    = "RUSH80_SEED"
)

// Settings is everything a client needs to boot the engine
type Settings struct {
	Rules    Rules
	SavePath string
	Seed     int64
}

// Load decodes a TOML rules file over the named preset.
// A missing file is not an error: the preset is returned unchanged.
func Load(path, variant string) (Rules, error) {
	rules, err := Preset(variant)
	if err != nil {
		return Rules{}, err
	}
	if path == "" {
		return rules, nil
	}

	if _, err := toml.DecodeFile(path, &rules); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return rules, nil
		}
		return Rules{}, fmt.Errorf("failed to decode rules file: %w", err)
	}

	if err := rules.Validate(); err != nil {
		return Rules{}, fmt.Errorf("invalid rules in %s: %w", path, err)
	}
	return rules, nil
}

// FromEnv loads an optional .env file, then resolves variant, rules file,
// save location and random seed from the environment.
func FromEnv() (Settings, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Printf("Warning: could not read .env: %v", err)
	}

	rules, err := Load(os.Getenv(EnvConfig), os.Getenv(EnvVariant))
	if err != nil {
		return Settings{}, err
	}

	settings := Settings{
		Rules:    rules,
		SavePath: os.Getenv(EnvSave),
	}
	if settings.SavePath == "" {
		settings.SavePath = DefaultSavePath()
	}

	if raw := os.Getenv(EnvSeed); raw != "" {
		seed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return Settings{}, fmt.Errorf("invalid %s %q: %w", EnvSeed, raw, err)
		}
		settings.Seed = seed
	}

	return settings, nil
}

// DefaultSavePath is the save file under the user's config directory,
// falling back to the working directory.
func DefaultSavePath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "rush80.save"
	}
	return filepath.Join(dir, "rush80", "progress.save")
}
