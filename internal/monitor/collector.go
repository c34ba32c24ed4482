package monitor

import (
	"context"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/rileyhilliard/sysmon/internal/errors"
	"github.com/rileyhilliard/sysmon/internal/logger"
)

// Collector gathers snapshots of the local host.
// It is safe for concurrent use.
type Collector struct {
	probe probe
	log   logger.Logger
}

// NewCollector creates a collector for the local host. A nil log discards
// collection warnings.
func NewCollector(log logger.Logger) *Collector {
	return newCollector(newHostProbe(), log)
}

func newCollector(p probe, log logger.Logger) *Collector {
	if log == nil {
		log = logger.Noop()
	}
	return &Collector{probe: p, log: log}
}

// Prime takes a throwaway sample so the next Collect reports CPU usage over
// a real interval instead of since boot.
func (c *Collector) Prime(ctx context.Context) error {
	if _, err := c.probe.CPUUsage(ctx); err != nil {
		c.log.Debug("prime cpu: %v", err)
	}
	if _, err := c.probe.Processes(ctx); err != nil {
		c.log.Debug("prime processes: %v", err)
	}
	return c.checkContext(ctx)
}

// Collect takes one snapshot. A metric that can't be read is logged and left
// zero, so a partial snapshot is still drawable. Only a cancelled or expired
// context fails the collection.
func (c *Collector) Collect(ctx context.Context) (*HostSnapshot, error) {
	start := time.Now()
	snap := &HostSnapshot{}

	if v, err := c.probe.CPUUsage(ctx); c.ok("cpu usage", err) {
		snap.CPU.Usage = v
	}
	if v, err := c.probe.CPUCount(ctx); c.ok("cpu count", err) {
		snap.CPU.Count = v
	}
	if v, err := c.probe.LoadAverage(ctx); c.ok("load average", err) {
		snap.CPU.LoadAvg = v
	}
	if v, err := c.probe.Memory(ctx); c.ok("memory", err) {
		snap.Memory = v
	}
	if v, err := c.probe.Swap(ctx); c.ok("swap", err) {
		snap.Swap = v
	}
	if v, err := c.probe.Disks(ctx); c.ok("disks", err) {
		snap.Disks = v
	}
	if v, err := c.probe.Networks(ctx); c.ok("network", err) {
		snap.Networks = v
	}
	if v, err := c.probe.Processes(ctx); c.ok("processes", err) {
		snap.Processes = v
	}
	if v, err := c.probe.Uptime(ctx); c.ok("uptime", err) {
		snap.UptimeSeconds = v
	}

	if err := c.checkContext(ctx); err != nil {
		return nil, err
	}

	c.log.Debug("collected %d disks, %d interfaces, %d processes, memory %s/%s in %s",
		len(snap.Disks), len(snap.Networks), len(snap.Processes),
		humanize.IBytes(snap.Memory.UsedBytes), humanize.IBytes(snap.Memory.TotalBytes),
		time.Since(start).Round(time.Millisecond))

	return snap, nil
}

// ok logs a failed metric read and reports whether the value is usable.
func (c *Collector) ok(metric string, err error) bool {
	if err == nil {
		return true
	}
	c.log.Warn("collect %s: %v", metric, err)
	return false
}

func (c *Collector) checkContext(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return errors.Wrap(err, "Metrics collection was interrupted")
	}
	return nil
}
