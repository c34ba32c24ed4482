package monitor

import "github.com/charmbracelet/lipgloss"

// Color is a foreground color tag attached to a frame segment.
// The Sink turns tags into terminal sequences; ColorDefault emits none.
type Color string

const (
	ColorDefault Color = ""
	ColorRed     Color = "red"
	ColorGreen   Color = "green"
	ColorYellow  Color = "yellow"
	ColorBlue    Color = "blue"
	ColorMagenta Color = "magenta"
	ColorCyan    Color = "cyan"
	ColorWhite   Color = "white"
	ColorGrey    Color = "grey"
)

// ansiColors maps tags to basic ANSI palette indexes so the dashboard follows
// the user's terminal theme.
var ansiColors = map[Color]lipgloss.Color{
	ColorRed:     "1",
	ColorGreen:   "2",
	ColorYellow:  "3",
	ColorBlue:    "4",
	ColorMagenta: "5",
	ColorCyan:    "6",
	ColorWhite:   "7",
	ColorGrey:    "8",
}

// Block colors for headers and labels.
const (
	ColorTitle       = ColorCyan
	ColorCPUBase     = ColorGreen
	ColorDiskHeader  = ColorMagenta
	ColorNetHeader   = ColorYellow
	ColorProcHeader  = ColorCyan
	ColorUptime      = ColorGreen
	ColorMemoryBase  = ColorBlue
	ColorDiskBase    = ColorGrey
	ColorProcessBase = ColorWhite
)

// Band maps values strictly above Above to Color.
type Band struct {
	Above float64
	Color Color
}

// BandColor returns the color of the first band whose lower bound value
// exceeds, or fallback when none does. Bands are checked in order, so list
// the highest bound first. NaN never exceeds a bound.
func BandColor(value float64, bands []Band, fallback Color) Color {
	for _, b := range bands {
		if value > b.Above {
			return b.Color
		}
	}
	return fallback
}

// Level is a warning/critical threshold pair, in percent.
type Level struct {
	Warning  float64
	Critical float64
}

// Bands returns the critical band first, then the warning band.
func (l Level) Bands(warn, crit Color) []Band {
	return []Band{
		{Above: l.Critical, Color: crit},
		{Above: l.Warning, Color: warn},
	}
}

// Thresholds holds the color levels for each metric on the dashboard.
type Thresholds struct {
	CPU     Level
	Memory  Level
	Swap    Level
	Disk    Level
	Process Level
}

// DefaultThresholds returns the stock dashboard levels.
func DefaultThresholds() Thresholds {
	return Thresholds{
		CPU:     Level{Warning: 60, Critical: 80},
		Memory:  Level{Warning: 75, Critical: 90},
		Swap:    Level{Warning: 25, Critical: 50},
		Disk:    Level{Warning: 80, Critical: 90},
		Process: Level{Warning: 20, Critical: 50},
	}
}

// CPUColor colors aggregate CPU usage.
func (t Thresholds) CPUColor(percent float64) Color {
	return BandColor(percent, t.CPU.Bands(ColorYellow, ColorRed), ColorCPUBase)
}

// MemoryColor colors RAM usage.
func (t Thresholds) MemoryColor(percent float64) Color {
	return BandColor(percent, t.Memory.Bands(ColorYellow, ColorRed), ColorMemoryBase)
}

// SwapColor colors swap usage.
func (t Thresholds) SwapColor(percent float64) Color {
	return BandColor(percent, t.Swap.Bands(ColorYellow, ColorRed), ColorMemoryBase)
}

// DiskColor colors filesystem usage.
func (t Thresholds) DiskColor(percent float64) Color {
	return BandColor(percent, t.Disk.Bands(ColorYellow, ColorRed), ColorDiskBase)
}

// ProcessColor colors a single process row by its CPU share.
func (t Thresholds) ProcessColor(percent float64) Color {
	return BandColor(percent, t.Process.Bands(ColorYellow, ColorRed), ColorProcessBase)
}
