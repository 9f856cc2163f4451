package logic

import dmath "github.com/yohamta/donburi/features/math"

// Spawn grid layout in world units.
const (
	spawnColumns  = 4
	spawnSpacingX = 90.0
	spawnSpacingY = 100.0
	spawnTop      = 20.0
)

// repeatPenalty scales how strongly the allocator avoids picking the same
// type again within one wave.
const repeatPenalty = 3

var earlyWaveTargets = map[uint32]int{
	1: 12,
	2: 14,
	3: 20,
	4: 24,
}

// RosterEntry is one enemy to spawn in a wave.
type RosterEntry struct {
	Position dmath.Vec2
	Type     EnemyType
}

// TargetDifficulty is the total weight budget a wave is built towards.
func TargetDifficulty(wave uint32) int {
	if t, ok := earlyWaveTargets[wave]; ok {
		return t
	}
	return int(wave)*4 + 5
}

func penalty(weight, repeats int) int {
	return min(weight, repeats*repeats*repeatPenalty)
}

// Compose greedily picks enemy types for a wave. Each pick must fit in the
// remaining budget and stay under a quarter of the target; among those the
// type with the highest weight after the repeat penalty wins, earliest type
// first on ties. When nothing qualifies a BasicEnemy is used.
//
// Every pick adds twice its weight to the accumulated total, so the loop ends
// within ceil(target/2) iterations.
func Compose(wave uint32) []EnemyType {
	target := TargetDifficulty(wave)
	quarter := float64(target) / 4

	var repeats [enemyTypeCount]int
	var picks []EnemyType

	for acc := 0; acc < target; {
		chosen, best, found := BasicEnemy, 0, false
		for _, t := range AllEnemyTypes() {
			w := t.Weight()
			if w >= target-acc || float64(w) >= quarter {
				continue
			}
			score := w - penalty(w, repeats[t])
			if !found || score > best {
				chosen, best, found = t, score, true
			}
		}

		acc += 2 * chosen.Weight()
		repeats[chosen]++
		picks = append(picks, chosen)
	}
	return picks
}

// SpawnPosition is the grid slot of the i-th enemy of a wave.
func SpawnPosition(i int) dmath.Vec2 {
	col := i % spawnColumns
	row := i / spawnColumns
	return dmath.NewVec2(spawnSpacingX*float64(col), spawnTop+spawnSpacingY*float64(row))
}

// Allocate returns the wave's roster in spawn order. The result depends only
// on the wave number.
func Allocate(wave uint32) []RosterEntry {
	types := Compose(wave)
	roster := make([]RosterEntry, len(types))
	for i, t := range types {
		roster[i] = RosterEntry{Position: SpawnPosition(i), Type: t}
	}
	return roster
}

// Accumulated returns the allocator's accumulated value for a composition.
func Accumulated(types []EnemyType) int {
	acc := 0
	for _, t := range types {
		acc += 2 * t.Weight()
	}
	return acc
}
