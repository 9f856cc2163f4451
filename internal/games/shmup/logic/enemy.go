package logic

import "fmt"

// EnemyType is the kind of a spawned enemy. The declaration order is also
// the allocator's tie-break order.
type EnemyType uint8

const (
	BasicEnemy EnemyType = iota
	BasicEnemy2
	AimEnemy
	AimEnemy2
	PredictEnemy
	TrackingEnemy
	BounceEnemy

	enemyTypeCount
)

var enemyWeights = [enemyTypeCount]int{
	BasicEnemy:    1,
	BasicEnemy2:   2,
	AimEnemy:      2,
	AimEnemy2:     4,
	PredictEnemy:  5,
	TrackingEnemy: 5,
	BounceEnemy:   4,
}

var enemyNames = [enemyTypeCount]string{
	BasicEnemy:    "basic",
	BasicEnemy2:   "basic2",
	AimEnemy:      "aim",
	AimEnemy2:     "aim2",
	PredictEnemy:  "predict",
	TrackingEnemy: "tracking",
	BounceEnemy:   "bounce",
}

// Weight is the difficulty cost of one enemy of this type.
func (t EnemyType) Weight() int {
	if t >= enemyTypeCount {
		return 0
	}
	return enemyWeights[t]
}

// String returns the configuration name of the type.
func (t EnemyType) String() string {
	if t >= enemyTypeCount {
		return fmt.Sprintf("EnemyType(%d)", uint8(t))
	}
	return enemyNames[t]
}

// AllEnemyTypes returns every enemy type in tie-break order.
func AllEnemyTypes() []EnemyType {
	types := make([]EnemyType, 0, enemyTypeCount)
	for t := EnemyType(0); t < enemyTypeCount; t++ {
		types = append(types, t)
	}
	return types
}

// ParseEnemyType resolves a configuration name to its enemy type.
func ParseEnemyType(name string) (EnemyType, error) {
	for t, n := range enemyNames {
		if n == name {
			return EnemyType(t), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownEnemyType, name)
}
