// Package kclconfig builds the engine.Client a run needs, the same
// fluent builder shape config.DeviceBuilder uses to assemble a CGRA
// device (spec.md §4.H ambient wiring).
package kclconfig

import (
	"github.com/sarchlab/akita/v4/monitoring"
	"github.com/sarchlab/akita/v4/sim"

	"github.com/cadrun/kclexec/engine"
)

// EngineConfig configures the simulation engine and clock frequency
// the command issuer runs at.
type EngineConfig struct {
	simEngine sim.Engine
	freq      sim.Freq
	monitor   *monitoring.Monitor
}

// NewEngineConfig returns a config defaulted to a serial engine at
// 1 GHz, the same defaults the teacher's samples use for a single
// in-process run.
func NewEngineConfig() EngineConfig {
	return EngineConfig{simEngine: sim.NewSerialEngine(), freq: 1 * sim.GHz}
}

// WithEngine overrides the akita engine (e.g. to share one across
// several Clients).
func (c EngineConfig) WithEngine(e sim.Engine) EngineConfig {
	c.simEngine = e
	return c
}

// WithFreq overrides the ticking frequency.
func (c EngineConfig) WithFreq(freq sim.Freq) EngineConfig {
	c.freq = freq
	return c
}

// WithMonitor attaches a monitor that observes the engine client
// component, the same seam DeviceBuilder.WithMonitor offers for a CGRA
// device's tiles.
func (c EngineConfig) WithMonitor(monitor *monitoring.Monitor) EngineConfig {
	c.monitor = monitor
	return c
}

// Build constructs the Client ready to issue modeling commands.
func (c EngineConfig) Build() *engine.Client {
	client := engine.NewClient(c.simEngine, c.freq)
	if c.monitor != nil {
		c.monitor.RegisterComponent(client)
	}
	return client
}
