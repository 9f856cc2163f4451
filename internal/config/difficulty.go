package config

import "math"

// DifficultyManager calculates dynamic game parameters based on the wave reached.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the current difficulty level (0.0 to 1.0) for a wave.
// Wave 1 plays at the initial level.
func (d *DifficultyManager) Level(wave int) float64 {
	if !d.IsEnabled() || d.cfg.Progression.Type != "wave" {
		return d.initialLevel
	}

	maxAt := float64(d.cfg.Progression.MaxAt - 1)
	if maxAt <= 0 {
		maxAt = 1 // Prevent division by zero
	}

	progress := clampF(float64(wave-1)/maxAt, 0.0, 1.0)

	// Interpolate from initial level to 1.0
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// Speed returns the enemy movement speed for a wave.
func (d *DifficultyManager) Speed(baseSpeed float64, wave int) float64 {
	level := d.Level(wave)
	// Speed increases from base to base * (1 + speedMultiplier)
	return baseSpeed * (1.0 + level*d.cfg.Scaling.SpeedMultiplier)
}

// ReloadPeriod returns the enemy reload period for a wave. Higher levels
// shorten it down to the configured floor; a base already below the floor
// is left alone.
func (d *DifficultyManager) ReloadPeriod(base int, wave int) int {
	level := d.Level(wave)
	reduction := int(math.Round(level * d.cfg.Scaling.ReloadReduction * float64(base)))
	result := base - reduction
	floor := min(base, d.cfg.Scaling.MinReload)
	if result < floor {
		result = floor
	}
	return result
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
