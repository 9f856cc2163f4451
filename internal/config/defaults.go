package config

import (
	_ "embed"
)

//go:embed defaults/shmup.yaml
var defaultShmupYAML []byte

// DefaultShmupConfig returns the default shooter configuration.
func DefaultShmupConfig() ShmupConfig {
	return ShmupConfig{
		World: ShmupWorld{
			Width:  360,
			Height: 640,
		},
		Player: ShmupPlayer{
			Speed:             5,
			Reload:            8,
			Lives:             3,
			Width:             45,
			Height:            45,
			BulletSpeed:       12,
			InvulnerableTicks: 90,
			RespawnTicks:      45,
		},
		Bullets: ShmupBullets{
			MuzzleOffset: []float64{36, 72},
			Width:        8,
			Height:       16,
		},
		Waves: ShmupWaves{
			SpawnInterval: 20,
			Intermission:  120,
			StartWave:     1,
		},
		Enemies: map[string]ShmupEnemy{
			"basic":    {Archetype: "straight", Axis: "horizontal", Reload: 90, HP: 1, Width: 72, Height: 72},
			"basic2":   {Archetype: "straight", Axis: "horizontal", Amplitude: 30, Speed: 1, Reload: 70, HP: 2, Width: 72, Height: 72},
			"aim":      {Archetype: "aimed", Axis: "horizontal", Reload: 90, HP: 2, Width: 72, Height: 72},
			"aim2":     {Archetype: "aimed", Axis: "vertical", Amplitude: 20, Speed: 1, Reload: 50, HP: 3, Width: 72, Height: 72},
			"predict":  {Archetype: "predictive", Axis: "horizontal", Amplitude: 40, Speed: 1.5, Reload: 80, HP: 4, Width: 72, Height: 72},
			"tracking": {Archetype: "tracking", TurnRate: 0.05, Axis: "vertical", Amplitude: 20, Speed: 1, Reload: 100, HP: 4, Width: 72, Height: 72},
			"bounce":   {Archetype: "bouncing", Bounces: 1, Axis: "horizontal", Amplitude: 30, Speed: 1, Reload: 110, HP: 3, Width: 72, Height: 72},
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "wave",
				MaxAt: 15,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 1.0,
				ReloadReduction: 0.5,
				MinReload:       20,
			},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultShmupYAML
}
