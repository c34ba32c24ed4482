package monitor

import "sort"

// Snapshot is a read-only view of host metrics taken at one instant.
// Implementations must be safe to query repeatedly and must not change
// between calls.
type Snapshot interface {
	// CPUUsage is the aggregate CPU usage, 0-100.
	CPUUsage() float64
	CPUCount() int
	// LoadAverage returns the 1, 5 and 15 minute load averages.
	LoadAverage() [3]float64
	MemoryUsage() (used, total uint64)
	SwapUsage() (used, total uint64)
	DiskStats() []DiskStat
	NetworkStats() []NetworkStat
	// TopProcesses returns at most n processes, highest CPU first.
	TopProcesses(n int) []ProcessStat
	// Uptime is the host uptime in seconds.
	Uptime() uint64
}

// CPUStat contains CPU usage information.
type CPUStat struct {
	Usage   float64     `yaml:"usage"`
	Count   int         `yaml:"count"`
	LoadAvg LoadAverage `yaml:"load_average"`
}

// LoadAverage holds the 1, 5 and 15 minute load averages.
type LoadAverage struct {
	One     float64 `yaml:"one"`
	Five    float64 `yaml:"five"`
	Fifteen float64 `yaml:"fifteen"`
}

// MemoryStat is a used/total pair in bytes, used for RAM and swap.
type MemoryStat struct {
	UsedBytes  uint64 `yaml:"used_bytes"`
	TotalBytes uint64 `yaml:"total_bytes"`
}

// DiskStat describes one mounted filesystem.
type DiskStat struct {
	Name           string `yaml:"name"`
	MountPoint     string `yaml:"mount_point"`
	TotalBytes     uint64 `yaml:"total_bytes"`
	AvailableBytes uint64 `yaml:"available_bytes"`
}

// UsedBytes is total minus available, clamped at zero.
func (d DiskStat) UsedBytes() uint64 {
	if d.AvailableBytes > d.TotalBytes {
		return 0
	}
	return d.TotalBytes - d.AvailableBytes
}

// NetworkStat contains cumulative I/O counters for a single interface.
type NetworkStat struct {
	Interface        string `yaml:"interface"`
	ReceivedBytes    uint64 `yaml:"received_bytes"`
	TransmittedBytes uint64 `yaml:"transmitted_bytes"`
}

// ProcessStat describes one running process.
type ProcessStat struct {
	Name        string  `yaml:"name"`
	PID         int     `yaml:"pid"`
	CPUPercent  float64 `yaml:"cpu_percent"`
	MemoryBytes uint64  `yaml:"memory_bytes"`
}

// HostSnapshot is the concrete Snapshot produced by the Collector and by
// LoadSnapshot. Treat it as immutable once built.
type HostSnapshot struct {
	CPU           CPUStat       `yaml:"cpu"`
	Memory        MemoryStat    `yaml:"memory"`
	Swap          MemoryStat    `yaml:"swap"`
	Disks         []DiskStat    `yaml:"disks,omitempty"`
	Networks      []NetworkStat `yaml:"networks,omitempty"`
	Processes     []ProcessStat `yaml:"processes,omitempty"`
	UptimeSeconds uint64        `yaml:"uptime_seconds"`
}

var _ Snapshot = (*HostSnapshot)(nil)

func (s *HostSnapshot) CPUUsage() float64 { return s.CPU.Usage }

func (s *HostSnapshot) CPUCount() int { return s.CPU.Count }

func (s *HostSnapshot) LoadAverage() [3]float64 {
	return [3]float64{s.CPU.LoadAvg.One, s.CPU.LoadAvg.Five, s.CPU.LoadAvg.Fifteen}
}

func (s *HostSnapshot) MemoryUsage() (used, total uint64) {
	return s.Memory.UsedBytes, s.Memory.TotalBytes
}

func (s *HostSnapshot) SwapUsage() (used, total uint64) {
	return s.Swap.UsedBytes, s.Swap.TotalBytes
}

// DiskStats returns a copy of the disk list in collection order.
func (s *HostSnapshot) DiskStats() []DiskStat {
	return append([]DiskStat(nil), s.Disks...)
}

// NetworkStats returns a copy of the interface list in collection order.
func (s *HostSnapshot) NetworkStats() []NetworkStat {
	return append([]NetworkStat(nil), s.Networks...)
}

// TopProcesses sorts a copy of the process list by CPU (descending, stable on
// ties) and truncates it to n. n <= 0 returns nil.
func (s *HostSnapshot) TopProcesses(n int) []ProcessStat {
	if n <= 0 || len(s.Processes) == 0 {
		return nil
	}

	procs := append([]ProcessStat(nil), s.Processes...)
	sort.SliceStable(procs, func(i, j int) bool {
		return procs[i].CPUPercent > procs[j].CPUPercent
	})

	if len(procs) > n {
		procs = procs[:n]
	}
	return procs
}

func (s *HostSnapshot) Uptime() uint64 { return s.UptimeSeconds }
