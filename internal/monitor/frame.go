package monitor

import (
	"fmt"
	"strings"
)

// OpKind identifies a frame instruction.
type OpKind int

const (
	// OpHome moves the cursor to the top-left corner.
	OpHome OpKind = iota
	// OpClearBelow clears from the cursor to the end of the screen.
	OpClearBelow
	// OpClearAll clears the whole screen.
	OpClearAll
	// OpText writes a colored segment.
	OpText
	// OpNewline ends the current line.
	OpNewline
)

// Segment is a run of text drawn in one color.
type Segment struct {
	Text  string
	Color Color
}

// Op is a single frame instruction. Segment is only set for OpText.
type Op struct {
	Kind    OpKind
	Segment Segment
}

// Frame is an ordered list of terminal instructions. Building a frame has no
// side effects; a Sink applies it to a terminal in one pass.
type Frame struct {
	ops []Op
}

// NewFrame returns an empty frame.
func NewFrame() *Frame {
	return &Frame{}
}

// Home appends a cursor-home instruction.
func (f *Frame) Home() *Frame {
	f.ops = append(f.ops, Op{Kind: OpHome})
	return f
}

// ClearBelow appends a clear-to-end-of-screen instruction.
func (f *Frame) ClearBelow() *Frame {
	f.ops = append(f.ops, Op{Kind: OpClearBelow})
	return f
}

// ClearAll appends a full-screen clear instruction.
func (f *Frame) ClearAll() *Frame {
	f.ops = append(f.ops, Op{Kind: OpClearAll})
	return f
}

// Text appends a colored segment. Empty text is dropped.
func (f *Frame) Text(color Color, text string) *Frame {
	if text == "" {
		return f
	}
	f.ops = append(f.ops, Op{Kind: OpText, Segment: Segment{Text: text, Color: color}})
	return f
}

// Textf appends a formatted colored segment.
func (f *Frame) Textf(color Color, format string, args ...interface{}) *Frame {
	return f.Text(color, fmt.Sprintf(format, args...))
}

// Newline ends the current line. Calling it on an empty line emits a blank line.
func (f *Frame) Newline() *Frame {
	f.ops = append(f.ops, Op{Kind: OpNewline})
	return f
}

// Linef appends a formatted segment followed by a newline.
func (f *Frame) Linef(color Color, format string, args ...interface{}) *Frame {
	return f.Textf(color, format, args...).Newline()
}

// Ops returns a copy of the instruction list.
func (f *Frame) Ops() []Op {
	return append([]Op(nil), f.ops...)
}

// LineSegments groups the text segments by line. A trailing line without a
// newline is included when it has content.
func (f *Frame) LineSegments() [][]Segment {
	var lines [][]Segment
	current := []Segment{}
	for _, op := range f.ops {
		switch op.Kind {
		case OpText:
			current = append(current, op.Segment)
		case OpNewline:
			lines = append(lines, current)
			current = []Segment{}
		}
	}
	if len(current) > 0 {
		lines = append(lines, current)
	}
	return lines
}

// Lines returns the plain text of each line, without color.
func (f *Frame) Lines() []string {
	segLines := f.LineSegments()
	lines := make([]string, len(segLines))
	for i, segs := range segLines {
		var b strings.Builder
		for _, s := range segs {
			b.WriteString(s.Text)
		}
		lines[i] = b.String()
	}
	return lines
}

// String returns the plain text of the frame, one line per row.
func (f *Frame) String() string {
	return strings.Join(f.Lines(), "\n")
}
