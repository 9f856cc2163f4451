package replay

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/vovakirdan/tui-shmup/internal/core"
	"github.com/vovakirdan/tui-shmup/internal/registry"
)

// Result is the outcome of a headless playback.
type Result struct {
	Ticks    uint64
	State    core.GameState
	Verified bool // The final state matched the recorded trailer
}

// Run resets g with the recorded runtime and feeds it every frame. The game
// must be the mode named in the header and configured the same way as the
// recorded session for the result to match. Playback stops early on game
// over or when ctx is cancelled. When the replay carries a trailer and g is a
// Hasher, the final state is checked against it and ErrDiverged is returned
// on mismatch.
func Run(ctx context.Context, r *Reader, g registry.Game) (Result, error) {
	h := r.Header()
	if g.ID() != h.Mode {
		return Result{}, fmt.Errorf("replay: recorded %q, got %q", h.Mode, g.ID())
	}

	g.Reset(h.Runtime())

	var res Result
	for {
		if err := ctx.Err(); err != nil {
			return res, err
		}

		f, err := r.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return res, err
		}

		step := g.Step(f.Input())
		res.Ticks++
		res.State = step.State
		if step.State.GameOver {
			break
		}
	}

	res.State = g.State()

	// Skip to the trailer if playback ended before the recording did.
	for {
		if _, err := r.Next(); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return res, err
		}
	}

	tr, ok := r.Trailer()
	hasher, canHash := g.(Hasher)
	if !ok || !canHash {
		return res, nil
	}
	if tr.Ticks != res.Ticks {
		return res, fmt.Errorf("%w: ended after %d ticks, recorded %d", ErrDiverged, res.Ticks, tr.Ticks)
	}
	if hash := hasher.StateHash(); hash != tr.Hash {
		return res, fmt.Errorf("%w: state hash %016x, recorded %016x", ErrDiverged, hash, tr.Hash)
	}
	res.Verified = true
	return res, nil
}
