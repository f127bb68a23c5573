// SPDX-License-Identifier: MIT
//
// Copyright © 2020 Kent Gibson <warthog618@gmail.com>.

package rpio_test

import (
	"bytes"
	"context"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warthog618/rpio"
)

func TestShow(t *testing.T) {
	sim := rpio.NewSim()
	sim.Funcs[4] = rpio.FuncInput
	sim.Funcs[5] = rpio.FuncAlt0
	sim.Funcs[6] = rpio.FuncOutput
	sim.Levels[6] = true
	w := bytes.Buffer{}
	err := rpio.Show(sim, &w, "4-6")
	assert.Nil(t, err)
	expected := "GPIO 4 : INPUT   [0]\n" +
		"GPIO 5 : ALT0    [0]\n" +
		"GPIO 6 : OUTPUT  [1]\n"
	assert.Equal(t, expected, w.String())
	// showing changes no pin state
	assert.Empty(t, sim.Setups)
	assert.Empty(t, sim.Writes)
}

func TestShowOther(t *testing.T) {
	sim := rpio.NewSim()
	sim.Funcs[7] = rpio.FuncOther
	w := bytes.Buffer{}
	err := rpio.Show(sim, &w, "7")
	assert.Nil(t, err)
	assert.Equal(t, "GPIO 7 : -       [0]\n", w.String())
}

func TestShowBadSpec(t *testing.T) {
	sim := rpio.NewSim()
	w := bytes.Buffer{}
	err := rpio.Show(sim, &w, "4-x")
	assert.EqualError(t, err, "can't parse pin 'x'")
	assert.Empty(t, w.String())
}

func TestWrite(t *testing.T) {
	log := rpio.NewLogger(io.Discard, false)

	sim := rpio.NewSim()
	sim.Funcs[17] = rpio.FuncOutput
	err := rpio.Write(sim, log, "17:1")
	assert.Nil(t, err)
	require.Len(t, sim.Writes, 1)
	assert.Equal(t, rpio.SimWrite{Pin: 17, Level: true}, sim.Writes[0])

	sim = rpio.NewSim()
	sim.Funcs[17] = rpio.FuncOutput
	err = rpio.Write(sim, log, "17:0")
	assert.Nil(t, err)
	require.Len(t, sim.Writes, 1)
	assert.Equal(t, rpio.SimWrite{Pin: 17, Level: false}, sim.Writes[0])
}

func TestWriteModeMismatch(t *testing.T) {
	log := rpio.NewLogger(io.Discard, false)
	patterns := []struct {
		name string
		f    rpio.Func
		err  string
	}{
		{"input", rpio.FuncInput,
			"can't write to GPIO 17, it is setup as INPUT - use `--setoutput 17` first"},
		{"alt0", rpio.FuncAlt0,
			"can't write to GPIO 17, it is setup as ALT0 - use `--setoutput 17` first"},
		{"other", rpio.FuncOther,
			"can't write to GPIO 17, it is setup as - - use `--setoutput 17` first"},
	}
	for _, p := range patterns {
		p := p
		t.Run(p.name, func(t *testing.T) {
			sim := rpio.NewSim()
			sim.Funcs[17] = p.f
			err := rpio.Write(sim, log, "17:1")
			assert.EqualError(t, err, p.err)
			assert.Empty(t, sim.Writes)
		})
	}
}

func TestWriteBadSpec(t *testing.T) {
	log := rpio.NewLogger(io.Discard, false)
	sim := rpio.NewSim()
	sim.Funcs[17] = rpio.FuncOutput
	err := rpio.Write(sim, log, "17:2")
	assert.EqualError(t, err, "can't parse level '2'")
	assert.Empty(t, sim.Writes)
}

func TestSetOutput(t *testing.T) {
	log := rpio.NewLogger(io.Discard, false)
	sim := rpio.NewSim()
	// unconditional - even if the pin is currently an input
	sim.Funcs[18] = rpio.FuncInput
	err := rpio.SetOutput(sim, log, "18")
	assert.Nil(t, err)
	require.Len(t, sim.Setups, 1)
	assert.Equal(t, rpio.SimSetup{Pin: 18, Mode: rpio.ModeOutput, Pull: rpio.PullNone},
		sim.Setups[0])
}

func TestSetInput(t *testing.T) {
	log := rpio.NewLogger(io.Discard, false)
	patterns := []struct {
		spec string
		pull rpio.Pull
	}{
		{"17", rpio.PullNone},
		{"17:pullup", rpio.PullUp},
		{"17:pulldown", rpio.PullDown},
	}
	for _, p := range patterns {
		p := p
		t.Run(p.spec, func(t *testing.T) {
			sim := rpio.NewSim()
			err := rpio.SetInput(sim, log, p.spec)
			assert.Nil(t, err)
			require.Len(t, sim.Setups, 1)
			assert.Equal(t, rpio.SimSetup{Pin: 17, Mode: rpio.ModeInput, Pull: p.pull},
				sim.Setups[0])
		})
	}
}

func TestSetInputBadPull(t *testing.T) {
	log := rpio.NewLogger(io.Discard, false)
	sim := rpio.NewSim()
	err := rpio.SetInput(sim, log, "17:pullover")
	assert.EqualError(t, err, "'pullover' is not pullup or pulldown")
	assert.Empty(t, sim.Setups)
}

func TestSetInputDebugLog(t *testing.T) {
	sim := rpio.NewSim()
	w := safeBuffer{}
	log := rpio.NewLogger(&w, true)
	err := rpio.SetInput(sim, log, "17:pulldown")
	assert.Nil(t, err)
	assert.Contains(t, w.String(), "pin setup as INPUT")
	assert.Contains(t, w.String(), "pull=pulldown")

	// and nothing at info level
	w2 := safeBuffer{}
	log = rpio.NewLogger(&w2, false)
	err = rpio.SetInput(sim, log, "17:pulldown")
	assert.Nil(t, err)
	assert.Empty(t, w2.String())
}

func TestMonitor(t *testing.T) {
	sim := rpio.NewSim()
	w := safeBuffer{}
	log := rpio.NewLogger(io.Discard, false)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error)
	go func() {
		done <- rpio.Monitor(ctx, sim, &w, log, "17:rising,18")
	}()
	require.Eventually(t, func() bool {
		return strings.Contains(w.String(), "Waiting for interrupts")
	}, time.Second, time.Millisecond)

	// one watch per pin, edge defaulting to both
	assert.Equal(t, rpio.Watch{Pin: 17, Edge: rpio.EdgeRising}, sim.Watches[17])
	assert.Equal(t, rpio.Watch{Pin: 18, Edge: rpio.EdgeBoth}, sim.Watches[18])
	assert.Len(t, sim.Watches, 2)

	sim.Fire(17, true)
	require.Eventually(t, func() bool {
		return strings.Contains(w.String(), "GPIO 17 interrupt: value=1")
	}, time.Second, time.Millisecond)
	sim.Fire(18, false)
	require.Eventually(t, func() bool {
		return strings.Contains(w.String(), "GPIO 18 interrupt: value=0")
	}, time.Second, time.Millisecond)

	// cancellation is the clean exit path
	cancel()
	select {
	case err := <-done:
		assert.Nil(t, err)
	case <-time.After(time.Second):
		t.Fatal("Monitor did not return on cancellation")
	}
}

func TestMonitorLateEvent(t *testing.T) {
	sim := rpio.NewSim()
	w := safeBuffer{}
	log := rpio.NewLogger(io.Discard, false)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error)
	go func() {
		done <- rpio.Monitor(ctx, sim, &w, log, "17")
	}()
	require.Eventually(t, func() bool {
		return strings.Contains(w.String(), "Waiting for interrupts")
	}, time.Second, time.Millisecond)
	cancel()
	select {
	case err := <-done:
		assert.Nil(t, err)
	case <-time.After(time.Second):
		t.Fatal("Monitor did not return on cancellation")
	}

	// an event arriving after cancellation must not block the device
	fired := make(chan struct{})
	go func() {
		sim.Fire(17, true)
		close(fired)
	}()
	select {
	case <-fired:
	case <-time.After(time.Second):
		t.Fatal("device callback blocked after cancellation")
	}
}

func TestMonitorBadSpec(t *testing.T) {
	sim := rpio.NewSim()
	w := safeBuffer{}
	log := rpio.NewLogger(io.Discard, false)
	err := rpio.Monitor(context.Background(), sim, &w, log, "17:sideways")
	assert.EqualError(t, err, "can't parse edge 'sideways'")
	assert.Empty(t, sim.Watches)
}

func TestMonitorWatchError(t *testing.T) {
	sim := rpio.NewSim()
	w := safeBuffer{}
	log := rpio.NewLogger(io.Discard, false)
	err := rpio.Monitor(context.Background(), sim, &w, log, "17,17")
	assert.EqualError(t, err, "pin 17 is already watched")
}

// safeBuffer is a bytes.Buffer usable from the Monitor goroutine and the
// test concurrently.
type safeBuffer struct {
	mu sync.Mutex
	b  bytes.Buffer
}

func (s *safeBuffer) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.b.Write(p)
}

func (s *safeBuffer) String() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.b.String()
}
