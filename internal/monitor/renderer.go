package monitor

import (
	"bufio"
	"io"

	"github.com/muesli/termenv"
)

// Options configures a Renderer.
type Options struct {
	View    ViewOptions
	Profile termenv.Profile
}

// Renderer draws dashboard frames to a terminal stream. It keeps no state
// between frames, but it is not safe for concurrent use: interleaved Draw
// calls corrupt the screen, so drive it from a single refresh loop.
type Renderer struct {
	view ViewOptions
	sink *Sink
}

// NewRenderer returns a Renderer writing to w. Unless w already buffers
// (has a Flush method), writes are buffered and flushed once per frame.
func NewRenderer(w io.Writer, opts Options) *Renderer {
	if _, ok := w.(flusher); !ok {
		w = bufio.NewWriter(w)
	}
	return &Renderer{
		view: opts.View.withDefaults(),
		sink: NewSink(w, opts.Profile),
	}
}

// Draw writes a full frame for the snapshot and flushes it.
func (r *Renderer) Draw(s Snapshot) error {
	return r.sink.Apply(BuildFrame(s, r.view))
}

// ClearScreen clears the whole screen and homes the cursor. Use it at
// startup and teardown; Draw already overwrites the previous frame.
func (r *Renderer) ClearScreen() error {
	return r.sink.Apply(NewFrame().ClearAll().Home())
}
