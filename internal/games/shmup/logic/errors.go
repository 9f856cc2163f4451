package logic

import "errors"

// ErrPlayerOwnedArchetype is returned when a trajectory is requested for the
// player's own bullet type. Enemies never fire it, so this is a caller bug.
var ErrPlayerOwnedArchetype = errors.New("logic: player-owned archetype cannot be planned for an enemy")

// ErrUnknownEnemyType is returned when parsing an enemy type name fails.
var ErrUnknownEnemyType = errors.New("logic: unknown enemy type")

// ErrUnknownArchetype is returned when parsing an archetype name fails.
var ErrUnknownArchetype = errors.New("logic: unknown archetype")
