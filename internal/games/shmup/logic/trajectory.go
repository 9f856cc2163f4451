package logic

import (
	"errors"
	"math"
	"math/rand"

	dmath "github.com/yohamta/donburi/features/math"

	"github.com/vovakirdan/tui-shmup/internal/core"
)

// Bullet speeds in world units per tick.
const (
	StraightSpeed   = 8.0
	AimedSpeed      = 9.0
	TrackingSpeed   = 5.0
	PredictiveSpeed = 10.0
	BouncingSpeed   = 8.0
)

// HalfSpriteHeight is half the player sprite height; bouncing shots aim at
// the vertical center of the player rather than its top edge.
const HalfSpriteHeight = 45.0 / 2.0

// predictIterations is fixed: two refinement steps of the intercept estimate,
// not iteration to convergence.
const predictIterations = 2

var errNilArchetype = errors.New("logic: nil archetype")

// Coin is the randomness source for bouncing shots. *rand.Rand satisfies it.
type Coin interface {
	Float64() float64
}

// Target is the player's kinematic state read once per tick.
type Target struct {
	Position dmath.Vec2
	Velocity dmath.Vec2
}

// Planner computes the initial velocity of enemy bullets.
type Planner struct {
	width float64
	coin  Coin
}

// NewPlanner creates a planner for an arena of the given width. A nil coin is
// replaced with a fixed-seed source so planning stays deterministic.
func NewPlanner(arenaWidth float64, coin Coin) *Planner {
	if coin == nil {
		coin = rand.New(rand.NewSource(1))
	}
	return &Planner{width: arenaWidth, coin: coin}
}

// Plan returns the velocity for a bullet of archetype a fired from origin.
func (p *Planner) Plan(origin dmath.Vec2, a Archetype, player Target) (dmath.Vec2, error) {
	if a == nil {
		return dmath.Vec2{}, errNilArchetype
	}
	return a.velocity(p, origin, player)
}

func aimAt(origin, target dmath.Vec2, speed float64) dmath.Vec2 {
	return core.Direction(target.Sub(origin)).MulScalar(speed)
}

// predict estimates where the player will be when a PredictiveSpeed bullet
// arrives, refining the flight time from the previous estimate.
func (p *Planner) predict(origin dmath.Vec2, player Target) dmath.Vec2 {
	projected := player.Position
	for i := 0; i < predictIterations; i++ {
		flight := projected.Sub(origin).Magnitude() / PredictiveSpeed
		projected = player.Position.Add(player.Velocity.MulScalar(flight))
		projected.X = core.ClampF(projected.X, 0, p.width)
	}
	return projected
}

// unrolled returns the horizontal and vertical distance of a bouncing shot's
// path once the wall reflections are unfolded into a straight line.
func (p *Planner) unrolled(origin dmath.Vec2, player Target, bounces uint32, right bool) (x, y float64) {
	y = math.Abs(player.Position.Y - HalfSpriteHeight - origin.Y)

	initial := origin.X
	if right {
		initial = p.width - origin.X
	}

	// The final segment arrives from the right wall when the first leg goes
	// right and the bounce count is odd, or goes left and it is even.
	fromRight := right != (bounces%2 == 0)
	final := player.Position.X
	if fromRight {
		final = p.width - player.Position.X
	}

	// Every bounce after the first adds one full screen width of travel.
	mid := p.width * math.Max(float64(bounces)-1, 0)

	return initial + mid + final, y
}

func (p *Planner) bounce(origin dmath.Vec2, player Target, bounces uint32, right bool) dmath.Vec2 {
	dir := core.Direction(dmath.NewVec2(p.unrolled(origin, player, bounces, right)))
	if !right {
		dir.X = -dir.X
	}
	return dir.MulScalar(BouncingSpeed)
}
