package replay

import (
	"bytes"
	"context"
	"errors"
	"io"
	"path/filepath"
	"testing"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/vovakirdan/tui-shmup/internal/core"
	"github.com/vovakirdan/tui-shmup/internal/games/shmup"
)

func scriptedInput(i int) core.InputFrame {
	in := core.NewInputFrame()
	switch {
	case i%50 < 20:
		in.Set(core.ActionLeft)
	case i%50 < 40:
		in.Set(core.ActionRight)
	}
	if i%4 == 0 {
		in.Set(core.ActionFire)
	}
	return in
}

func TestRecordAndRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.replay")
	h := Header{Mode: "shmup", Seed: 7, TickRate: 60, ScreenW: 80, ScreenH: 24}

	rec, err := Create(path, h)
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}

	g := shmup.New()
	g.Reset(h.Runtime())
	for i := 0; i < 600; i++ {
		in := scriptedInput(i)
		if err := rec.Record(in); err != nil {
			t.Fatalf("Record() error: %v", err)
		}
		if g.Step(in).State.GameOver {
			break
		}
	}
	if err := rec.End(g.StateHash()); err != nil {
		t.Fatalf("End() error: %v", err)
	}
	if err := rec.Close(); err != nil {
		t.Fatalf("Close() error: %v", err)
	}
	expected := g.Snapshot()

	r, err := Open(path)
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	defer r.Close()

	if got := r.Header(); got.Mode != "shmup" || got.Seed != 7 || got.Version != Version {
		t.Errorf("Header() = %+v", got)
	}

	replayed := shmup.New()
	res, err := Run(context.Background(), r, replayed)
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	if !res.Verified {
		t.Error("Run() should verify the trailer")
	}
	if res.Ticks != rec.Ticks() {
		t.Errorf("replayed %d ticks, recorded %d", res.Ticks, rec.Ticks())
	}
	snap := replayed.Snapshot()
	if snap.Hash() != expected.Hash() {
		t.Errorf("replay diverged: hash %d, expected %d", snap.Hash(), expected.Hash())
	}
	if res.State.Score != expected.Score {
		t.Errorf("Score = %d, expected %d", res.State.Score, expected.Score)
	}
}

func TestFramesRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	rec, err := NewRecorder(&buf, Header{Mode: "shmup"})
	if err != nil {
		t.Fatalf("NewRecorder() error: %v", err)
	}
	_ = rec.Record(core.FrameOf(core.ActionFire, core.ActionLeft))
	_ = rec.Record(core.NewInputFrame())
	if err := rec.Close(); err != nil {
		t.Fatalf("Close() error: %v", err)
	}

	r, err := NewReader(&buf)
	if err != nil {
		t.Fatalf("NewReader() error: %v", err)
	}

	f, err := r.Next()
	if err != nil {
		t.Fatalf("Next() error: %v", err)
	}
	if f.Tick != 1 || !f.Input().Has(core.ActionFire) || !f.Input().Has(core.ActionLeft) {
		t.Errorf("first frame = %+v", f)
	}

	f, err = r.Next()
	if err != nil {
		t.Fatalf("Next() error: %v", err)
	}
	if f.Tick != 2 || len(f.Actions) != 0 {
		t.Errorf("second frame = %+v", f)
	}

	if _, err := r.Next(); !errors.Is(err, io.EOF) {
		t.Errorf("Next() after last frame = %v, expected io.EOF", err)
	}
}

func TestRunDetectsDivergence(t *testing.T) {
	h := Header{Mode: "shmup", Seed: 3, TickRate: 60, ScreenW: 80, ScreenH: 24}

	tests := []struct {
		name     string
		offset   uint64
		diverged bool
	}{
		{"matching hash", 0, false},
		{"wrong hash", 1, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			rec, err := NewRecorder(&buf, h)
			if err != nil {
				t.Fatalf("NewRecorder() error: %v", err)
			}
			g := shmup.New()
			g.Reset(h.Runtime())
			for i := 0; i < 30; i++ {
				in := scriptedInput(i)
				_ = rec.Record(in)
				g.Step(in)
			}
			_ = rec.End(g.StateHash() + tc.offset)
			_ = rec.Close()

			r, err := NewReader(&buf)
			if err != nil {
				t.Fatalf("NewReader() error: %v", err)
			}
			res, err := Run(context.Background(), r, shmup.New())
			if tc.diverged {
				if !errors.Is(err, ErrDiverged) {
					t.Errorf("Run() error = %v, expected ErrDiverged", err)
				}
				return
			}
			if err != nil || !res.Verified {
				t.Errorf("Run() = %+v, %v, expected a verified playback", res, err)
			}
		})
	}
}

func TestTrailerEndsFrames(t *testing.T) {
	var buf bytes.Buffer
	rec, _ := NewRecorder(&buf, Header{Mode: "shmup"})
	_ = rec.Record(core.FrameOf(core.ActionFire))
	_ = rec.End(42)
	_ = rec.Close()

	r, err := NewReader(&buf)
	if err != nil {
		t.Fatalf("NewReader() error: %v", err)
	}
	if _, ok := r.Trailer(); ok {
		t.Error("Trailer() should be empty before the frames are read")
	}
	if _, err := r.Next(); err != nil {
		t.Fatalf("Next() error: %v", err)
	}
	if _, err := r.Next(); !errors.Is(err, io.EOF) {
		t.Fatalf("Next() at trailer = %v, expected io.EOF", err)
	}
	tr, ok := r.Trailer()
	if !ok || tr.Ticks != 1 || tr.Hash != 42 {
		t.Errorf("Trailer() = %+v, %v, expected 1 tick and hash 42", tr, ok)
	}
	if _, err := r.Next(); !errors.Is(err, io.EOF) {
		t.Errorf("Next() after trailer = %v, expected io.EOF", err)
	}
}

func TestReaderRejectsUnknownVersion(t *testing.T) {
	data, err := msgpack.Marshal(&Header{Version: Version + 1, Mode: "shmup"})
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}
	if _, err := NewReader(bytes.NewReader(data)); !errors.Is(err, ErrVersion) {
		t.Errorf("NewReader() error = %v, expected ErrVersion", err)
	}
}

func TestRunRejectsOtherMode(t *testing.T) {
	var buf bytes.Buffer
	rec, _ := NewRecorder(&buf, Header{Mode: "shmup_rush"})
	_ = rec.Close()

	r, err := NewReader(&buf)
	if err != nil {
		t.Fatalf("NewReader() error: %v", err)
	}
	if _, err := Run(context.Background(), r, shmup.New()); err == nil {
		t.Error("Run() should reject a replay of another mode")
	}
}

func TestOpenMissingFile(t *testing.T) {
	if _, err := Open(filepath.Join(t.TempDir(), "nope.replay")); err == nil {
		t.Error("Open() should fail for a missing file")
	}
}
