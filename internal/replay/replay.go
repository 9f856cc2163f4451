// Package replay records the input of a session as a msgpack stream and
// plays it back headless. A replay is a Header followed by one Frame per
// simulated tick, optionally closed by a frame carrying a Trailer.
package replay

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/vovakirdan/tui-shmup/internal/core"
)

// Version is the current replay format version.
const Version = 1

var (
	// ErrVersion is returned when a replay was written by an unknown format version.
	ErrVersion = errors.New("replay: unsupported version")
	// ErrDiverged is returned when playback does not end in the recorded state.
	ErrDiverged = errors.New("replay: playback diverged from recording")
)

// Hasher is implemented by games that can fingerprint their state. Replays of
// such games end with the fingerprint so playback can be checked.
type Hasher interface {
	StateHash() uint64
}

// Header describes how to rebuild the session that was recorded.
type Header struct {
	Version    int    `msgpack:"v"`
	Mode       string `msgpack:"mode"`
	Seed       int64  `msgpack:"seed"`
	ConfigPath string `msgpack:"config,omitempty"`
	Difficulty string `msgpack:"difficulty,omitempty"`
	TickRate   int    `msgpack:"tick_rate"`
	ScreenW    int    `msgpack:"w"`
	ScreenH    int    `msgpack:"h"`
}

// Runtime returns the runtime config the session was started with.
func (h Header) Runtime() core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  h.ScreenW,
		ScreenH:  h.ScreenH,
		TickRate: h.TickRate,
		Seed:     h.Seed,
	}
}

// Frame is the input of one tick. The last frame of a finished recording
// carries End instead of input.
type Frame struct {
	Tick    uint64        `msgpack:"t"`
	Actions []core.Action `msgpack:"a,omitempty"`
	End     *Trailer      `msgpack:"end,omitempty"`
}

// Trailer is the state a recorded session ended in.
type Trailer struct {
	Ticks uint64 `msgpack:"ticks"`
	Hash  uint64 `msgpack:"hash"`
}

// Input rebuilds the input frame.
func (f Frame) Input() core.InputFrame {
	return core.FrameOf(f.Actions...)
}

// Recorder writes a replay stream.
type Recorder struct {
	buf    *bufio.Writer
	enc    *msgpack.Encoder
	closer io.Closer
	tick   uint64
}

// NewRecorder writes the header to w and returns a recorder for the frames.
func NewRecorder(w io.Writer, h Header) (*Recorder, error) {
	h.Version = Version
	buf := bufio.NewWriter(w)
	r := &Recorder{buf: buf, enc: msgpack.NewEncoder(buf)}
	if err := r.enc.Encode(&h); err != nil {
		return nil, fmt.Errorf("replay: write header: %w", err)
	}
	return r, nil
}

// Create opens path for writing and returns a recorder that closes it.
func Create(path string, h Header) (*Recorder, error) {
	f, err := os.Create(path) //#nosec G304 -- path comes from the CLI
	if err != nil {
		return nil, fmt.Errorf("replay: create %s: %w", path, err)
	}
	r, err := NewRecorder(f, h)
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	r.closer = f
	return r, nil
}

// Record appends the input of the next tick.
func (r *Recorder) Record(in core.InputFrame) error {
	r.tick++
	frame := Frame{Tick: r.tick, Actions: in.List()}
	if err := r.enc.Encode(&frame); err != nil {
		return fmt.Errorf("replay: write frame %d: %w", r.tick, err)
	}
	return nil
}

// Ticks returns the number of frames recorded so far.
func (r *Recorder) Ticks() uint64 {
	return r.tick
}

// End writes the trailer with the fingerprint of the final state. No frames
// may be recorded after it.
func (r *Recorder) End(hash uint64) error {
	frame := Frame{Tick: r.tick, End: &Trailer{Ticks: r.tick, Hash: hash}}
	if err := r.enc.Encode(&frame); err != nil {
		return fmt.Errorf("replay: write trailer: %w", err)
	}
	return nil
}

// Close flushes buffered frames and closes the underlying file, if any.
func (r *Recorder) Close() error {
	if err := r.buf.Flush(); err != nil {
		return fmt.Errorf("replay: flush: %w", err)
	}
	if r.closer != nil {
		return r.closer.Close()
	}
	return nil
}

// Reader reads a replay stream.
type Reader struct {
	dec     *msgpack.Decoder
	header  Header
	trailer *Trailer
	closer  io.Closer
}

// NewReader reads and validates the header from rd.
func NewReader(rd io.Reader) (*Reader, error) {
	dec := msgpack.NewDecoder(bufio.NewReader(rd))
	var h Header
	if err := dec.Decode(&h); err != nil {
		return nil, fmt.Errorf("replay: read header: %w", err)
	}
	if h.Version != Version {
		return nil, fmt.Errorf("%w: %d", ErrVersion, h.Version)
	}
	return &Reader{dec: dec, header: h}, nil
}

// Open opens a replay file.
func Open(path string) (*Reader, error) {
	f, err := os.Open(path) //#nosec G304 -- path comes from the CLI
	if err != nil {
		return nil, fmt.Errorf("replay: open %s: %w", path, err)
	}
	r, err := NewReader(f)
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	r.closer = f
	return r, nil
}

// Header returns the replay header.
func (r *Reader) Header() Header {
	return r.header
}

// Next returns the next frame, or io.EOF after the last one.
func (r *Reader) Next() (Frame, error) {
	if r.trailer != nil {
		return Frame{}, io.EOF
	}
	var f Frame
	if err := r.dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return f, io.EOF
		}
		return f, fmt.Errorf("replay: read frame: %w", err)
	}
	if f.End != nil {
		r.trailer = f.End
		return Frame{}, io.EOF
	}
	return f, nil
}

// Trailer returns the recorded final state once Next has reached it.
func (r *Reader) Trailer() (Trailer, bool) {
	if r.trailer == nil {
		return Trailer{}, false
	}
	return *r.trailer, true
}

// Close closes the underlying file, if any.
func (r *Reader) Close() error {
	if r.closer != nil {
		return r.closer.Close()
	}
	return nil
}
