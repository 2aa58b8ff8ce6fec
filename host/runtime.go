// Package host owns the frame buffer and drives the plugin lifecycle:
// descriptor validation, one Init, one Update per frame, one Shutdown.
// Single-threaded by contract; exactly one lifecycle call is in flight
// at any time and no effect runs while the buffer is being presented.
package host

import (
	"errors"
	"fmt"
	"time"

	"github.com/matrixfx/matrixfx/frame"
	"github.com/matrixfx/matrixfx/plugin"
)

var (
	ErrBadMagic      = errors.New("host: descriptor magic mismatch")
	ErrVersion       = errors.New("host: descriptor api version mismatch")
	ErrNoFactory     = errors.New("host: descriptor has no factory")
	ErrLoaded        = errors.New("host: an effect is already loaded")
	ErrInitFailed    = errors.New("host: effect init failed")
	ErrNotRunning    = errors.New("host: no effect loaded")
	ErrUnknownEffect = errors.New("host: effect not registered")
)

// Runtime hosts at most one effect instance at a time. It owns the
// frame buffer for the whole session and lends it to the effect through
// the capability context, one call at a time.
type Runtime struct {
	buf    frame.Buffer
	ctx    plugin.Context
	effect plugin.Effect
	name   string
	frames uint32
	epoch  time.Time
	rng    uint32
}

// New creates an idle runtime with a black frame buffer.
func New() *Runtime {
	rt := &Runtime{
		epoch: time.Now(),
		rng:   0xDEADBEEF,
	}
	rt.ctx = plugin.Context{Frame: &rt.buf, Sys: rt}
	return rt
}

// Load validates a descriptor and initializes its effect. Validation
// failures reject the module before any lifecycle call. An Init error
// leaves the runtime unloaded; Shutdown is still invoked because the
// contract requires it to be safe after a failed Init.
func (rt *Runtime) Load(d plugin.Descriptor) error {
	if rt.effect != nil {
		return ErrLoaded
	}
	if d.Magic != plugin.Magic {
		return fmt.Errorf("%w: got %#08x", ErrBadMagic, d.Magic)
	}
	if d.APIVersion != plugin.APIVersion {
		return fmt.Errorf("%w: got %d, host supports %d", ErrVersion, d.APIVersion, plugin.APIVersion)
	}
	if d.New == nil {
		return ErrNoFactory
	}

	effect := d.New()
	if err := effect.Init(&rt.ctx); err != nil {
		effect.Shutdown()
		return fmt.Errorf("%w: %q: %v", ErrInitFailed, d.Name, err)
	}

	rt.effect = effect
	rt.name = d.Name
	return nil
}

// LoadByName loads a registered effect through the registry.
func (rt *Runtime) LoadByName(name string) error {
	d, ok := plugin.Lookup(name)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownEffect, name)
	}
	return rt.Load(d)
}

// Update runs exactly one frame of the loaded effect, then advances the
// frame counter. The counter wraps by unsigned overflow.
func (rt *Runtime) Update(in plugin.Inputs) error {
	if rt.effect == nil {
		return ErrNotRunning
	}
	rt.effect.Update(&rt.ctx, in)
	rt.frames++
	return nil
}

// Unload shuts the effect down. Safe to call repeatedly; only the first
// call after a successful Load reaches the effect.
func (rt *Runtime) Unload() {
	if rt.effect == nil {
		return
	}
	rt.effect.Shutdown()
	rt.effect = nil
	rt.name = ""
}

// Frame returns the buffer for presentation. Callers must not read it
// concurrently with Update.
func (rt *Runtime) Frame() *frame.Buffer {
	return &rt.buf
}

// FrameCount returns the number of completed update calls.
func (rt *Runtime) FrameCount() uint32 {
	return rt.frames
}

// EffectName returns the loaded effect's name, or "" when idle.
func (rt *Runtime) EffectName() string {
	return rt.name
}

// Running reports whether an effect is loaded.
func (rt *Runtime) Running() bool {
	return rt.effect != nil
}

// Millis implements plugin.System with a monotonic millisecond clock.
func (rt *Runtime) Millis() uint32 {
	return uint32(time.Since(rt.epoch) / time.Millisecond)
}

// Random implements plugin.System with a xorshift32 generator, seeded
// at construction so effect output is reproducible per session.
func (rt *Runtime) Random() uint32 {
	x := rt.rng
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	rt.rng = x
	return x
}
