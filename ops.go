// SPDX-License-Identifier: MIT
//
// Copyright © 2020 Kent Gibson <warthog618@gmail.com>.

package rpio

import (
	"context"
	"fmt"
	"io"
	"log/slog"
)

// Show resolves spec into pin ids and prints the function and level of each,
// one pin per line. Pin modes are left untouched.
func Show(d Device, w io.Writer, spec string) error {
	pins, err := ParsePins(spec)
	if err != nil {
		return err
	}
	for _, pin := range pins {
		f, err := d.Function(pin)
		if err != nil {
			return err
		}
		level, err := d.Read(pin)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "GPIO %-2d: %-7s [%d]\n", pin, f, levelInt(level))
	}
	return nil
}

// Write forces the level of a single output pin, given as "pin:level".
//
// The pin must already be configured as an output - Write never changes the
// pin mode. Writing to a pin in any other mode fails, naming the setoutput
// command that would make the pin writable.
func Write(d Device, log *slog.Logger, spec string) error {
	pin, level, err := ParseWrite(spec)
	if err != nil {
		return err
	}
	f, err := d.Function(pin)
	if err != nil {
		return err
	}
	if f != FuncOutput {
		return fmt.Errorf("can't write to GPIO %d, it is setup as %s - use `--setoutput %d` first",
			pin, f, pin)
	}
	if err := d.Write(pin, level); err != nil {
		return err
	}
	log.Debug("wrote level", "pin", pin, "level", levelInt(level))
	return nil
}

// Monitor watches the pins resolved from spec, printing a line per edge
// event until ctx is cancelled. Cancellation is the normal exit path and
// returns nil.
//
// The watches placed on the pins remain registered on return - releasing
// them is the device Close, which callers are expected to have deferred
// around the wait.
func Monitor(ctx context.Context, d Device, w io.Writer, log *slog.Logger, spec string) error {
	ww, err := ParseWatches(spec)
	if err != nil {
		return err
	}
	events := make(chan event)
	handler := func(pin int, level bool) {
		// events is not drained once ctx is done, so don't block the
		// device callback on events a cancelled Monitor will never see.
		select {
		case events <- event{Pin: pin, Level: level}:
		case <-ctx.Done():
		}
	}
	for _, wa := range ww {
		if err := d.Watch(wa.Pin, wa.Edge, handler); err != nil {
			return err
		}
		log.Info("interrupt setup complete", "pin", wa.Pin, "edge", wa.Edge)
	}
	fmt.Fprintln(w, "Waiting for interrupts (exit with Ctrl+C) ...")
	for {
		select {
		case evt := <-events:
			fmt.Fprintf(w, "GPIO %d interrupt: value=%d\n", evt.Pin, levelInt(evt.Level))
		case <-ctx.Done():
			return nil
		}
	}
}

// SetOutput configures a single pin, given as "pin", as an output. The
// current pin mode is not checked.
func SetOutput(d Device, log *slog.Logger, spec string) error {
	pin, err := ParsePin(spec)
	if err != nil {
		return err
	}
	if err := d.Setup(pin, ModeOutput, PullNone); err != nil {
		return err
	}
	log.Debug("pin setup as OUTPUT", "pin", pin)
	return nil
}

// SetInput configures a single pin, given as "pin", "pin:pullup" or
// "pin:pulldown", as an input with the requested pull resistor.
func SetInput(d Device, log *slog.Logger, spec string) error {
	pin, pull, err := ParseInput(spec)
	if err != nil {
		return err
	}
	if err := d.Setup(pin, ModeInput, pull); err != nil {
		return err
	}
	log.Debug("pin setup as INPUT", "pin", pin, "pull", pull)
	return nil
}

type event struct {
	Pin   int
	Level bool
}

func levelInt(level bool) int {
	if level {
		return 1
	}
	return 0
}
