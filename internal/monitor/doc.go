// Package monitor draws a live, single-screen dashboard of local host metrics.
//
// The dashboard shows CPU, load average, memory, swap, mounted disks, network
// counters, the busiest processes and uptime, colored by usage thresholds and
// redrawn in place every refresh.
//
// # Key Components
//
//	Collector  - Samples the local host through gopsutil into a HostSnapshot
//	Snapshot   - Read-only query interface the renderer consumes
//	Frame      - Ordered list of text segments and cursor/clear instructions
//	Sink       - Applies a Frame to a terminal stream in one pass
//	Renderer   - BuildFrame + Sink; Draw per refresh, ClearScreen at start/exit
//
// # Frame Flow
//
//  1. The caller collects a Snapshot (or loads one with LoadSnapshot)
//  2. BuildFrame lays out the blocks in fixed order, choosing colors with
//     BandColor against the configured Thresholds
//  3. Sink writes the instructions, then flushes
//
// Building a frame has no side effects, so layout is tested through
// Frame.Lines and Frame.LineSegments without a terminal.
//
// # Concurrency
//
// Collector is safe for concurrent use. Renderer and Sink are not: drive them
// from a single refresh loop.
package monitor
