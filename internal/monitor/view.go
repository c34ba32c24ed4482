package monitor

import (
	"math"
	"strings"
)

// Title is the first line of every frame.
const Title = "=== Go System Monitor ==="

// DefaultTopProcesses is the process row limit when none is configured.
const DefaultTopProcesses = 5

// lineBreaks would split a row. Names from the host are printed on one line.
var lineBreaks = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ")

const (
	bytesPerGiB = 1024 * 1024 * 1024
	bytesPerMiB = 1024 * 1024
)

// ViewOptions controls frame layout.
type ViewOptions struct {
	// TopProcesses is the process row limit passed to the snapshot.
	TopProcesses int
	Thresholds   Thresholds
}

// withDefaults fills zero values.
func (o ViewOptions) withDefaults() ViewOptions {
	if o.TopProcesses <= 0 {
		o.TopProcesses = DefaultTopProcesses
	}
	if o.Thresholds == (Thresholds{}) {
		o.Thresholds = DefaultThresholds()
	}
	return o
}

// BuildFrame lays out one dashboard frame for the snapshot. It starts with
// cursor-home and clear-below so the frame overwrites the previous one in place.
func BuildFrame(s Snapshot, opts ViewOptions) *Frame {
	opts = opts.withDefaults()
	th := opts.Thresholds

	f := NewFrame().Home().ClearBelow()

	renderTitle(f)
	renderCPU(f, s, th)
	renderMemory(f, s, th)
	renderDisks(f, s.DiskStats(), th)
	renderNetwork(f, s.NetworkStats())
	renderProcesses(f, s.TopProcesses(opts.TopProcesses), opts.TopProcesses, th)
	renderUptime(f, s.Uptime())

	return f
}

func renderTitle(f *Frame) {
	f.Linef(ColorTitle, "%s", Title)
	f.Newline()
}

func renderCPU(f *Frame, s Snapshot, th Thresholds) {
	usage := finite(s.CPUUsage())
	load := s.LoadAverage()

	f.Textf(th.CPUColor(usage), "CPU: %.1f%% ", usage)
	f.Linef(ColorCPUBase, "(%d cores)", s.CPUCount())
	f.Linef(ColorCPUBase, "Load Average: %.2f, %.2f, %.2f", finite(load[0]), finite(load[1]), finite(load[2]))
	f.Newline()
}

func renderMemory(f *Frame, s Snapshot, th Thresholds) {
	used, total := s.MemoryUsage()
	pct := percentOf(used, total)
	f.Linef(th.MemoryColor(pct), "Memory: %.2fGB / %.2fGB (%.1f%%)", gib(used), gib(total), pct)

	swapUsed, swapTotal := s.SwapUsage()
	swapPct := percentOf(swapUsed, swapTotal)
	f.Linef(th.SwapColor(swapPct), "Swap:   %.2fGB / %.2fGB (%.1f%%)", gib(swapUsed), gib(swapTotal), swapPct)
	f.Newline()
}

func renderDisks(f *Frame, disks []DiskStat, th Thresholds) {
	if len(disks) == 0 {
		return
	}

	f.Linef(ColorDiskHeader, "Disks:")
	for _, d := range disks {
		used := d.UsedBytes()
		pct := percentOf(used, d.TotalBytes)
		f.Linef(th.DiskColor(pct), "  %s (%s) %.1fGB / %.1fGB (%.1f%%)",
			oneLine(d.Name), oneLine(d.MountPoint), gib(used), gib(d.TotalBytes), pct)
	}
	f.Newline()
}

func renderNetwork(f *Frame, nics []NetworkStat) {
	if len(nics) == 0 {
		return
	}

	f.Linef(ColorNetHeader, "Network Interfaces:")
	for _, n := range nics {
		f.Linef(ColorDefault, "  %s: ↓ %.2fMB ↑ %.2fMB", oneLine(n.Interface), mib(n.ReceivedBytes), mib(n.TransmittedBytes))
	}
	f.Newline()
}

// renderProcesses keeps the order the snapshot returned and drops anything
// past limit.
func renderProcesses(f *Frame, procs []ProcessStat, limit int, th Thresholds) {
	if len(procs) > limit {
		procs = procs[:limit]
	}
	if len(procs) == 0 {
		return
	}

	f.Linef(ColorProcHeader, "Top Processes (by CPU):")
	for _, p := range procs {
		cpu := finite(p.CPUPercent)
		f.Linef(th.ProcessColor(cpu), "  %6d %.1f%% %.1fMB %s", p.PID, cpu, mib(p.MemoryBytes), oneLine(p.Name))
	}
	f.Newline()
}

func renderUptime(f *Frame, seconds uint64) {
	hours, minutes := splitUptime(seconds)
	f.Linef(ColorUptime, "Uptime: %d hours, %d minutes", hours, minutes)
}

// splitUptime converts seconds into whole hours and the remaining whole minutes.
func splitUptime(seconds uint64) (hours, minutes uint64) {
	return seconds / 3600, (seconds % 3600) / 60
}

// percentOf returns used/total as a percentage, 0 when total is 0.
func percentOf(used, total uint64) float64 {
	if total == 0 {
		return 0
	}
	return finite(float64(used) / float64(total) * 100)
}

// finite maps NaN and ±Inf to 0 so they never reach the formatted output.
func finite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

func oneLine(name string) string { return lineBreaks.Replace(name) }

func gib(b uint64) float64 { return float64(b) / bytesPerGiB }

func mib(b uint64) float64 { return float64(b) / bytesPerMiB }
