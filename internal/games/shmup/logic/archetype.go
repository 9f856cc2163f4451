// Package logic is the shooter's decision engine: how pattern enemies
// oscillate, which velocity a freshly fired bullet gets, when enemies reload,
// and which enemies make up each wave.
//
// Everything here is pure computation over values owned by the caller. The
// entity store, sprites and collisions live in the parent package.
package logic

import (
	"fmt"

	dmath "github.com/yohamta/donburi/features/math"
)

// ArchetypeKind identifies a bullet archetype without its parameters.
type ArchetypeKind uint8

const (
	KindStraight ArchetypeKind = iota
	KindAimed
	KindPredictive
	KindBouncing
	KindTracking
	KindPlayerOwned
)

// String returns the configuration name of the kind.
func (k ArchetypeKind) String() string {
	switch k {
	case KindStraight:
		return "straight"
	case KindAimed:
		return "aimed"
	case KindPredictive:
		return "predictive"
	case KindBouncing:
		return "bouncing"
	case KindTracking:
		return "tracking"
	case KindPlayerOwned:
		return "player_owned"
	default:
		return "unknown"
	}
}

// Archetype is the closed set of bullet firing patterns. Each variant carries
// its own velocity rule; the unexported method keeps the set sealed so the
// compiler flags a variant that forgets to implement one.
type Archetype interface {
	Kind() ArchetypeKind
	velocity(p *Planner, origin dmath.Vec2, player Target) (dmath.Vec2, error)
}

// Straight bullets fall at a constant speed regardless of the player.
type Straight struct{}

// Aimed bullets head for the player's position at fire time.
type Aimed struct{}

// Predictive bullets lead the player using its current velocity.
type Predictive struct{}

// Bouncing bullets reach the player after reflecting off the side walls
// Bounces times.
type Bouncing struct {
	Bounces uint32
}

// Tracking bullets are aimed once at fire time, slower than Aimed.
// TurnRate travels with the bullet for display; the initial aim ignores it.
type Tracking struct {
	TurnRate float64
}

// PlayerOwned bullets are fired only by the player and never planned here.
type PlayerOwned struct{}

func (Straight) Kind() ArchetypeKind    { return KindStraight }
func (Aimed) Kind() ArchetypeKind       { return KindAimed }
func (Predictive) Kind() ArchetypeKind  { return KindPredictive }
func (Bouncing) Kind() ArchetypeKind    { return KindBouncing }
func (Tracking) Kind() ArchetypeKind    { return KindTracking }
func (PlayerOwned) Kind() ArchetypeKind { return KindPlayerOwned }

func (Straight) velocity(_ *Planner, _ dmath.Vec2, _ Target) (dmath.Vec2, error) {
	return dmath.NewVec2(0, StraightSpeed), nil
}

func (Aimed) velocity(_ *Planner, origin dmath.Vec2, player Target) (dmath.Vec2, error) {
	return aimAt(origin, player.Position, AimedSpeed), nil
}

func (Tracking) velocity(_ *Planner, origin dmath.Vec2, player Target) (dmath.Vec2, error) {
	return aimAt(origin, player.Position, TrackingSpeed), nil
}

func (Predictive) velocity(p *Planner, origin dmath.Vec2, player Target) (dmath.Vec2, error) {
	return aimAt(origin, p.predict(origin, player), PredictiveSpeed), nil
}

func (b Bouncing) velocity(p *Planner, origin dmath.Vec2, player Target) (dmath.Vec2, error) {
	right := p.coin.Float64() < 0.5
	return p.bounce(origin, player, b.Bounces, right), nil
}

func (PlayerOwned) velocity(_ *Planner, _ dmath.Vec2, _ Target) (dmath.Vec2, error) {
	return dmath.Vec2{}, ErrPlayerOwnedArchetype
}

// ParseArchetype builds an archetype from its configuration name.
// bounces and turnRate are only consulted by the variants that carry them.
func ParseArchetype(name string, bounces uint32, turnRate float64) (Archetype, error) {
	switch name {
	case "straight":
		return Straight{}, nil
	case "aimed":
		return Aimed{}, nil
	case "predictive":
		return Predictive{}, nil
	case "bouncing":
		return Bouncing{Bounces: bounces}, nil
	case "tracking":
		return Tracking{TurnRate: turnRate}, nil
	case "player_owned":
		return PlayerOwned{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownArchetype, name)
	}
}
