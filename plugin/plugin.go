// Package plugin defines the contract between the host runtime and
// hot-swappable effect modules: the three-call lifecycle, the
// capability context lent to each call, the descriptor the host
// validates before loading, and a name-keyed registry of effects.
package plugin

import (
	"github.com/matrixfx/matrixfx/frame"
)

// Descriptor validation constants. Magic spells "PLUG"; a descriptor
// whose magic or version diverges is rejected before any lifecycle
// call.
const (
	Magic      uint32 = 0x504C5547
	APIVersion uint32 = 1
)

// System exposes host services to effects: a monotonic millisecond
// clock and a cheap PRNG. Implemented by the host runtime.
type System interface {
	Millis() uint32
	Random() uint32
}

// Context is the capability handle passed to every lifecycle call. It
// grants access to the shared frame buffer and host services for the
// duration of that call only; effects must not retain it across calls.
type Context struct {
	Frame *frame.Buffer
	Sys   System
}

// Effect is the three-call lifecycle every module implements.
//
// Init is called exactly once before any Update and must reset all
// internal animation state; a non-nil error keeps the host from ever
// calling Update. Update runs once per frame, must complete in bounded
// time without allocating, and writes only inside the buffer's fixed
// dimensions. Shutdown is called once on unload and must be safe to
// call even after a failed Init.
type Effect interface {
	Init(ctx *Context) error
	Update(ctx *Context, in Inputs)
	Shutdown()
}

// Descriptor identifies an effect module to the host. Constructed once
// as a constant value and consumed by the host at load time.
type Descriptor struct {
	Magic      uint32
	APIVersion uint32
	Name       string
	New        func() Effect
}
