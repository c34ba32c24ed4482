package monitor

import (
	"context"
	"strings"
	"sync"

	"github.com/samber/lo"
	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/disk"
	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/load"
	"github.com/shirou/gopsutil/v4/mem"
	"github.com/shirou/gopsutil/v4/net"
	"github.com/shirou/gopsutil/v4/process"
)

// probe reads one metric family from the host. Each method may fail on its
// own; the Collector decides what a failure means for the snapshot.
type probe interface {
	CPUUsage(ctx context.Context) (float64, error)
	CPUCount(ctx context.Context) (int, error)
	LoadAverage(ctx context.Context) (LoadAverage, error)
	Memory(ctx context.Context) (MemoryStat, error)
	Swap(ctx context.Context) (MemoryStat, error)
	Disks(ctx context.Context) ([]DiskStat, error)
	Networks(ctx context.Context) ([]NetworkStat, error)
	Processes(ctx context.Context) ([]ProcessStat, error)
	Uptime(ctx context.Context) (uint64, error)
}

// hostProbe reads the local host through gopsutil.
type hostProbe struct {
	mu    sync.Mutex
	procs map[int32]*process.Process // kept between samples for CPU deltas
}

func newHostProbe() *hostProbe {
	return &hostProbe{procs: make(map[int32]*process.Process)}
}

// CPUUsage returns aggregate usage since the previous call. The first call
// after startup measures since boot.
func (p *hostProbe) CPUUsage(ctx context.Context) (float64, error) {
	pcts, err := cpu.PercentWithContext(ctx, 0, false)
	if err != nil {
		return 0, err
	}
	if len(pcts) == 0 {
		return 0, nil
	}
	return pcts[0], nil
}

func (p *hostProbe) CPUCount(ctx context.Context) (int, error) {
	return cpu.CountsWithContext(ctx, true)
}

func (p *hostProbe) LoadAverage(ctx context.Context) (LoadAverage, error) {
	avg, err := load.AvgWithContext(ctx)
	if err != nil {
		return LoadAverage{}, err
	}
	return LoadAverage{One: avg.Load1, Five: avg.Load5, Fifteen: avg.Load15}, nil
}

func (p *hostProbe) Memory(ctx context.Context) (MemoryStat, error) {
	vm, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		return MemoryStat{}, err
	}
	return MemoryStat{UsedBytes: vm.Used, TotalBytes: vm.Total}, nil
}

func (p *hostProbe) Swap(ctx context.Context) (MemoryStat, error) {
	sw, err := mem.SwapMemoryWithContext(ctx)
	if err != nil {
		return MemoryStat{}, err
	}
	return MemoryStat{UsedBytes: sw.Used, TotalBytes: sw.Total}, nil
}

// Disks lists physical partitions in the order the OS reports them. A device
// mounted more than once is listed at its first mount only; partitions whose
// usage can't be read or that report zero size are skipped.
func (p *hostProbe) Disks(ctx context.Context) ([]DiskStat, error) {
	parts, err := disk.PartitionsWithContext(ctx, false)
	if err != nil {
		return nil, err
	}
	parts = lo.UniqBy(parts, func(part disk.PartitionStat) string {
		return part.Device
	})

	disks := make([]DiskStat, 0, len(parts))
	for _, part := range parts {
		usage, err := disk.UsageWithContext(ctx, part.Mountpoint)
		if err != nil || usage.Total == 0 {
			continue
		}
		disks = append(disks, DiskStat{
			Name:           diskName(part.Device),
			MountPoint:     part.Mountpoint,
			TotalBytes:     usage.Total,
			AvailableBytes: usage.Free,
		})
	}
	return disks, nil
}

// diskName shortens a device path for display: /dev/sda1 -> sda1.
func diskName(device string) string {
	return strings.TrimPrefix(device, "/dev/")
}

func (p *hostProbe) Networks(ctx context.Context) ([]NetworkStat, error) {
	counters, err := net.IOCountersWithContext(ctx, true)
	if err != nil {
		return nil, err
	}
	return lo.Map(counters, func(c net.IOCountersStat, _ int) NetworkStat {
		return NetworkStat{
			Interface:        c.Name,
			ReceivedBytes:    c.BytesRecv,
			TransmittedBytes: c.BytesSent,
		}
	}), nil
}

func (p *hostProbe) Uptime(ctx context.Context) (uint64, error) {
	return host.UptimeWithContext(ctx)
}

// Processes samples every running process. A process seen for the first time
// reports 0% CPU; later samples report its share since the previous call.
// Processes that exit mid-sample are skipped.
func (p *hostProbe) Processes(ctx context.Context) ([]ProcessStat, error) {
	pids, err := process.PidsWithContext(ctx)
	if err != nil {
		return nil, err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	live := lo.SliceToMap(pids, func(pid int32) (int32, struct{}) {
		return pid, struct{}{}
	})
	for pid := range p.procs {
		if _, ok := live[pid]; !ok {
			delete(p.procs, pid)
		}
	}

	stats := make([]ProcessStat, 0, len(pids))
	for _, pid := range pids {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		proc, ok := p.procs[pid]
		if !ok {
			proc, err = process.NewProcessWithContext(ctx, pid)
			if err != nil {
				continue
			}
			p.procs[pid] = proc
		}

		name, err := proc.NameWithContext(ctx)
		if err != nil {
			delete(p.procs, pid)
			continue
		}
		pct, err := proc.PercentWithContext(ctx, 0)
		if err != nil {
			pct = 0
		}
		var rss uint64
		if info, err := proc.MemoryInfoWithContext(ctx); err == nil && info != nil {
			rss = info.RSS
		}

		stats = append(stats, ProcessStat{
			Name:        name,
			PID:         int(pid),
			CPUPercent:  pct,
			MemoryBytes: rss,
		})
	}
	return stats, nil
}
