package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const shmupFile = "shmup.yaml"

// LoadShmup loads the shooter configuration.
// Search order: customPath -> ~/.shmup/configs/shmup.yaml -> ./configs/shmup.yaml -> embedded default
func LoadShmup(customPath string) (ShmupConfig, error) {
	var cfg ShmupConfig

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: parse %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then the local configs directory
	for _, path := range []string{userConfigPath(shmupFile), filepath.Join("configs", shmupFile)} {
		if path == "" {
			continue
		}
		if c, ok := readShmup(path); ok {
			return c, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultShmupYAML, &cfg); err != nil || cfg.Validate() != nil {
		return DefaultShmupConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// readShmup reads an optional config file. Missing or broken files are skipped.
func readShmup(path string) (ShmupConfig, bool) {
	var cfg ShmupConfig
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, false
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, false
	}
	if err := cfg.Validate(); err != nil {
		return cfg, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".shmup", "configs", filename)
}

// ApplyShmupPreset modifies the config based on a difficulty preset.
func ApplyShmupPreset(cfg *ShmupConfig, preset DifficultyPreset) {
	if IsFixedPreset(preset) {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust gameplay based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Player.Lives = 5
		cfg.Player.InvulnerableTicks *= 2
	case DifficultyHard:
		cfg.Player.Lives = 2
		if cfg.Waves.StartWave < 2 {
			cfg.Waves.StartWave = 2
		}
	}
}
