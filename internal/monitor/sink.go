package monitor

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/rileyhilliard/sysmon/internal/errors"
)

// Terminal control sequences.
var (
	seqHome       = termenv.CSI + fmt.Sprintf(termenv.CursorPositionSeq, 1, 1)
	seqClearBelow = termenv.CSI + fmt.Sprintf(termenv.EraseDisplaySeq, 0)
	seqClearAll   = termenv.CSI + fmt.Sprintf(termenv.EraseDisplaySeq, 2)
)

type flusher interface {
	Flush() error
}

// Sink applies frames to a terminal stream.
// It is not safe for concurrent use; callers serialize Apply.
type Sink struct {
	w      io.Writer
	styles map[Color]lipgloss.Style
}

// NewSink returns a Sink writing to w, rendering colors for profile.
// termenv.Ascii disables color; termenv.ANSI uses the basic 16-color palette.
func NewSink(w io.Writer, profile termenv.Profile) *Sink {
	r := lipgloss.NewRenderer(w)
	r.SetColorProfile(profile)

	styles := make(map[Color]lipgloss.Style, len(ansiColors))
	for tag, c := range ansiColors {
		styles[tag] = r.NewStyle().Foreground(c).TabWidth(lipgloss.NoTabConversion)
	}

	return &Sink{w: w, styles: styles}
}

// Apply writes every instruction of the frame in order, then flushes the
// writer if it buffers. The first failure stops the frame and is returned as
// an ErrOutput error; whatever was already written stays on screen.
func (s *Sink) Apply(f *Frame) error {
	for _, op := range f.ops {
		if _, err := io.WriteString(s.w, s.encode(op)); err != nil {
			return outputError(err)
		}
	}

	if fl, ok := s.w.(flusher); ok {
		if err := fl.Flush(); err != nil {
			return outputError(err)
		}
	}
	return nil
}

// encode turns one instruction into the bytes sent to the terminal.
// Colored text is followed by a reset, so nothing after it inherits the color.
func (s *Sink) encode(op Op) string {
	switch op.Kind {
	case OpHome:
		return seqHome
	case OpClearBelow:
		return seqClearBelow
	case OpClearAll:
		return seqClearAll
	case OpNewline:
		return "\n"
	case OpText:
		style, ok := s.styles[op.Segment.Color]
		if !ok {
			return op.Segment.Text
		}
		return style.Render(op.Segment.Text)
	default:
		return ""
	}
}

func outputError(err error) error {
	return errors.WrapWithCode(err, errors.ErrOutput,
		"Failed to write to the terminal",
		"The output stream was closed or the terminal went away.")
}
