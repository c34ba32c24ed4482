package monitor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrameOps(t *testing.T) {
	f := NewFrame().Home().ClearBelow().Text(ColorRed, "a").Newline().ClearAll()

	assert.Equal(t, []Op{
		{Kind: OpHome},
		{Kind: OpClearBelow},
		{Kind: OpText, Segment: Segment{Text: "a", Color: ColorRed}},
		{Kind: OpNewline},
		{Kind: OpClearAll},
	}, f.Ops())
}

func TestFrameOpsReturnsCopy(t *testing.T) {
	f := NewFrame().Text(ColorDefault, "x")
	ops := f.Ops()
	ops[0].Segment.Text = "changed"

	assert.Equal(t, "x", f.Ops()[0].Segment.Text)
}

func TestFrameDropsEmptyText(t *testing.T) {
	f := NewFrame().Text(ColorRed, "").Textf(ColorRed, "%s", "")
	assert.Empty(t, f.Ops())
}

func TestFrameLines(t *testing.T) {
	f := NewFrame().
		Home().
		Text(ColorRed, "CPU: 9.0% ").
		Linef(ColorGreen, "(%d cores)", 4).
		Newline().
		Text(ColorDefault, "tail")

	assert.Equal(t, []string{"CPU: 9.0% (4 cores)", "", "tail"}, f.Lines())
	assert.Equal(t, "CPU: 9.0% (4 cores)\n\ntail", f.String())
}

func TestFrameLineSegments(t *testing.T) {
	f := NewFrame().
		Text(ColorRed, "a").
		Text(ColorGreen, "b").
		Newline().
		Newline()

	segs := f.LineSegments()
	assert.Len(t, segs, 2)
	assert.Equal(t, []Segment{{Text: "a", Color: ColorRed}, {Text: "b", Color: ColorGreen}}, segs[0])
	assert.Empty(t, segs[1])
}

func TestEmptyFrame(t *testing.T) {
	f := NewFrame()
	assert.Empty(t, f.Lines())
	assert.Equal(t, "", f.String())
}
