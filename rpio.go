// SPDX-License-Identifier: MIT
//
// Copyright © 2020 Kent Gibson <warthog618@gmail.com>.

// Package rpio provides the command-line operations behind the rpio and
// rpioctl utilities for the Raspberry Pi.
//
// The package contains no hardware access itself - all pin operations are
// forwarded to a Device, normally the Pi implementation backed by
// github.com/warthog618/gpio. The Sim implementation provides the same
// surface off-hardware for tests and development.
package rpio

// Func identifies the function a GPIO pin is currently configured for,
// as reported by the device.
type Func int

// Pin functions distinguished by the tool. Alternate functions other than
// ALT0 are lumped into FuncOther.
const (
	FuncInput Func = iota
	FuncOutput
	FuncAlt0
	FuncOther
)

// String returns the display name used in show output.
func (f Func) String() string {
	switch f {
	case FuncInput:
		return "INPUT"
	case FuncOutput:
		return "OUTPUT"
	case FuncAlt0:
		return "ALT0"
	default:
		return "-"
	}
}

// Mode is the configuration applied to a pin by Setup.
type Mode int

// Setup modes.
const (
	ModeInput Mode = iota
	ModeOutput
)

// Pull is the pull resistor configuration applied to an input pin.
type Pull int

// Pull resistor options.
const (
	PullNone Pull = iota
	PullUp
	PullDown
)

func (p Pull) String() string {
	switch p {
	case PullUp:
		return "pullup"
	case PullDown:
		return "pulldown"
	default:
		return "none"
	}
}

// Edge identifies the signal transitions that trigger a watch handler.
type Edge string

// Edge types accepted by interrupt specs.
const (
	EdgeRising  Edge = "rising"
	EdgeFalling Edge = "falling"
	EdgeBoth    Edge = "both"
)

// Handler is called by the device for each edge event on a watched pin,
// with the pin id and the level read after the event.
type Handler func(pin int, level bool)

// Device is the GPIO collaborator the operations are written against.
//
// Implementations are expected to reject pin ids outside the physical
// header rather than relying on callers to range check them.
type Device interface {
	// Version reports the version of the underlying GPIO library,
	// or an empty string if it cannot be determined.
	Version() string

	// Function returns the function the pin is currently configured for.
	Function(pin int) (Func, error)

	// Read returns the pin level without changing the pin mode.
	Read(pin int) (bool, error)

	// Write forces the pin output level without changing the pin mode.
	Write(pin int, level bool) error

	// Setup configures the pin mode, and the pull resistor for inputs.
	Setup(pin int, mode Mode, pull Pull) error

	// Watch registers handler to be called on each matching edge event.
	// Only one watch may be placed on a pin.
	Watch(pin int, edge Edge, handler Handler) error

	// Close releases all watches and any other device resources.
	Close() error
}
