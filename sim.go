// SPDX-License-Identifier: MIT
//
// Copyright © 2020 Kent Gibson <warthog618@gmail.com>.

package rpio

import (
	"fmt"
	"sync"
)

// Sim is an in-memory Device for testing and for developing off-hardware.
//
// Pin functions and levels are scripted through Funcs and Levels, edge
// events are injected with Fire, and mutating calls are recorded.
type Sim struct {
	mu sync.Mutex

	// Ver is the version reported by the device. Defaults to MinVersion.
	Ver string

	// Funcs scripts the function reported for each pin.
	// Unlisted pins report FuncInput.
	Funcs map[int]Func

	// Levels scripts the level read from each pin. Unlisted pins read low.
	Levels map[int]bool

	// Writes records each forced write, in order.
	Writes []SimWrite

	// Setups records each setup call, in order.
	Setups []SimSetup

	// Watches records the watch placed on each pin.
	Watches map[int]Watch

	// Closed indicates Close has been called.
	Closed bool

	handlers map[int]Handler
}

// SimWrite records a forced write.
type SimWrite struct {
	Pin   int
	Level bool
}

// SimSetup records a setup call.
type SimSetup struct {
	Pin  int
	Mode Mode
	Pull Pull
}

// NewSim returns a Sim with no pins scripted.
func NewSim() *Sim {
	return &Sim{
		Ver:      MinVersion,
		Funcs:    make(map[int]Func),
		Levels:   make(map[int]bool),
		Watches:  make(map[int]Watch),
		handlers: make(map[int]Handler),
	}
}

// Version implements Device.
func (s *Sim) Version() string {
	return s.Ver
}

// Function implements Device.
func (s *Sim) Function(pin int) (Func, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.Funcs[pin], nil
}

// Read implements Device.
func (s *Sim) Read(pin int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.Levels[pin], nil
}

// Write implements Device.
func (s *Sim) Write(pin int, level bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Writes = append(s.Writes, SimWrite{Pin: pin, Level: level})
	s.Levels[pin] = level
	return nil
}

// Setup implements Device.
func (s *Sim) Setup(pin int, mode Mode, pull Pull) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Setups = append(s.Setups, SimSetup{Pin: pin, Mode: mode, Pull: pull})
	if mode == ModeOutput {
		s.Funcs[pin] = FuncOutput
	} else {
		s.Funcs[pin] = FuncInput
	}
	return nil
}

// Watch implements Device.
func (s *Sim) Watch(pin int, edge Edge, handler Handler) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.handlers[pin]; ok {
		return fmt.Errorf("pin %d is already watched", pin)
	}
	s.Watches[pin] = Watch{Pin: pin, Edge: edge}
	s.handlers[pin] = handler
	return nil
}

// Close implements Device.
func (s *Sim) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.handlers = make(map[int]Handler)
	s.Closed = true
	return nil
}

// Fire injects an edge event, delivering the level to the handler watching
// the pin, if any.
func (s *Sim) Fire(pin int, level bool) {
	s.mu.Lock()
	handler := s.handlers[pin]
	s.Levels[pin] = level
	s.mu.Unlock()
	if handler != nil {
		handler(pin, level)
	}
}
