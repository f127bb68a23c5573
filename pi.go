// SPDX-License-Identifier: MIT
//
// Copyright © 2020 Kent Gibson <warthog618@gmail.com>.

//go:build linux
// +build linux

package rpio

import (
	"fmt"
	"runtime/debug"

	"github.com/warthog618/gpio"
)

// gpioModule is the module path of the GPIO library, as reported in build
// info.
const gpioModule = "github.com/warthog618/gpio"

// Pi is the Device for Raspberry Pi hardware, backed by the warthog618/gpio
// memory-mapped GPIO library.
type Pi struct {
	pins    map[int]*gpio.Pin
	watched map[int]*gpio.Pin
}

// Open maps the GPIO registers and returns the device.
//
// The library version is checked before the registers are touched, so an
// outdated library aborts without any pin operation.
func Open() (*Pi, error) {
	p := &Pi{
		pins:    make(map[int]*gpio.Pin),
		watched: make(map[int]*gpio.Pin),
	}
	if err := CheckVersion(p); err != nil {
		return nil, err
	}
	if err := gpio.Open(); err != nil {
		return nil, err
	}
	return p, nil
}

// Version reports the gpio library version from the build info of the
// running binary.
func (p *Pi) Version() string {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return ""
	}
	for _, dep := range bi.Deps {
		if dep.Path != gpioModule {
			continue
		}
		if dep.Replace != nil {
			return dep.Replace.Version
		}
		return dep.Version
	}
	return ""
}

// Function returns the function the pin is currently configured for.
func (p *Pi) Function(pin int) (Func, error) {
	gp, err := p.pin(pin)
	if err != nil {
		return FuncOther, err
	}
	switch gp.Mode() {
	case gpio.Input:
		return FuncInput, nil
	case gpio.Output:
		return FuncOutput, nil
	case gpio.Alt0:
		return FuncAlt0, nil
	}
	return FuncOther, nil
}

// Read returns the pin level without changing the pin mode.
func (p *Pi) Read(pin int) (bool, error) {
	gp, err := p.pin(pin)
	if err != nil {
		return false, err
	}
	return bool(gp.Read()), nil
}

// Write forces the pin output level without changing the pin mode.
func (p *Pi) Write(pin int, level bool) error {
	gp, err := p.pin(pin)
	if err != nil {
		return err
	}
	gp.Write(gpio.Level(level))
	return nil
}

// Setup configures the pin mode, and the pull resistor for inputs.
func (p *Pi) Setup(pin int, mode Mode, pull Pull) error {
	gp, err := p.pin(pin)
	if err != nil {
		return err
	}
	if mode == ModeOutput {
		gp.Output()
		return nil
	}
	gp.Input()
	switch pull {
	case PullUp:
		gp.SetPull(gpio.PullUp)
	case PullDown:
		gp.SetPull(gpio.PullDown)
	}
	return nil
}

// Watch places the pin in input mode and registers handler for edge events
// on it.
func (p *Pi) Watch(pin int, edge Edge, handler Handler) error {
	gp, err := p.pin(pin)
	if err != nil {
		return err
	}
	if _, ok := p.watched[pin]; ok {
		return fmt.Errorf("pin %d is already watched", pin)
	}
	gp.Input()
	err = gp.Watch(gpioEdge(edge), func(wp *gpio.Pin) {
		handler(wp.Pin(), bool(wp.Read()))
	})
	if err != nil {
		return err
	}
	p.watched[pin] = gp
	return nil
}

// Close releases all watches and unmaps the GPIO registers.
func (p *Pi) Close() error {
	for _, gp := range p.watched {
		gp.Unwatch()
	}
	p.watched = make(map[int]*gpio.Pin)
	return gpio.Close()
}

func (p *Pi) pin(pin int) (*gpio.Pin, error) {
	if gp, ok := p.pins[pin]; ok {
		return gp, nil
	}
	if pin < 0 || pin >= gpio.MaxGPIOPin {
		return nil, fmt.Errorf("unknown pin '%d'", pin)
	}
	gp := gpio.NewPin(pin)
	p.pins[pin] = gp
	return gp, nil
}

func gpioEdge(edge Edge) gpio.Edge {
	switch edge {
	case EdgeRising:
		return gpio.EdgeRising
	case EdgeFalling:
		return gpio.EdgeFalling
	default:
		return gpio.EdgeBoth
	}
}
