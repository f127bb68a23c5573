// SPDX-License-Identifier: MIT
//
// Copyright © 2020 Kent Gibson <warthog618@gmail.com>.

package rpio

import (
	"fmt"
	"strconv"
	"strings"
)

// A pin selector is a comma separated list of elements, each a pin id or an
// inclusive ascending range "a-b". Elements may carry an ":option" suffix
// whose meaning depends on the command - an edge for interrupts, a pull for
// setinput, a level for write. A suffix on a range applies to every pin in
// the range.

// Watch pairs a pin id with the edge to detect on it.
type Watch struct {
	Pin  int
	Edge Edge
}

// ParsePins resolves a pin selector without option suffixes into an ordered
// list of pin ids.
func ParsePins(spec string) ([]int, error) {
	pp := []int(nil)
	for _, elem := range strings.Split(spec, ",") {
		ee, err := parseElement(elem)
		if err != nil {
			return nil, err
		}
		pp = append(pp, ee...)
	}
	return pp, nil
}

// ParseWatches resolves an interrupt selector into watches, one per pin.
// The edge defaults to both when an element has no suffix.
func ParseWatches(spec string) ([]Watch, error) {
	ww := []Watch(nil)
	for _, elem := range strings.Split(spec, ",") {
		pins, opt, err := splitOption(elem)
		if err != nil {
			return nil, err
		}
		edge := EdgeBoth
		if opt != "" {
			edge, err = parseEdge(opt)
			if err != nil {
				return nil, err
			}
		}
		for _, p := range pins {
			ww = append(ww, Watch{Pin: p, Edge: edge})
		}
	}
	return ww, nil
}

// ParseWrite resolves a write selector, a single "pin:level" pair with the
// level either 0 or 1.
func ParseWrite(spec string) (int, bool, error) {
	aa := strings.Split(spec, ":")
	if len(aa) != 2 {
		return 0, false, fmt.Errorf("can't parse pin:level '%s'", spec)
	}
	pin, err := parsePin(aa[0])
	if err != nil {
		return 0, false, err
	}
	switch aa[1] {
	case "0":
		return pin, false, nil
	case "1":
		return pin, true, nil
	}
	return 0, false, fmt.Errorf("can't parse level '%s'", aa[1])
}

// ParseInput resolves a setinput selector, a pin id with an optional pullup
// or pulldown suffix.
func ParseInput(spec string) (int, Pull, error) {
	aa := strings.SplitN(spec, ":", 2)
	pin, err := parsePin(aa[0])
	if err != nil {
		return 0, PullNone, err
	}
	if len(aa) == 1 {
		return pin, PullNone, nil
	}
	switch aa[1] {
	case "pullup":
		return pin, PullUp, nil
	case "pulldown":
		return pin, PullDown, nil
	}
	return 0, PullNone, fmt.Errorf("'%s' is not pullup or pulldown", aa[1])
}

// ParsePin resolves a selector that must be a single pin id.
func ParsePin(spec string) (int, error) {
	return parsePin(spec)
}

func parseEdge(arg string) (Edge, error) {
	switch Edge(arg) {
	case EdgeRising, EdgeFalling, EdgeBoth:
		return Edge(arg), nil
	}
	return EdgeBoth, fmt.Errorf("can't parse edge '%s'", arg)
}

// splitOption splits a selector element into its pins and optional suffix.
func splitOption(elem string) ([]int, string, error) {
	aa := strings.SplitN(elem, ":", 2)
	pins, err := parseElement(aa[0])
	if err != nil {
		return nil, "", err
	}
	if len(aa) == 1 {
		return pins, "", nil
	}
	return pins, aa[1], nil
}

// parseElement expands a pin id or range into pin ids.
func parseElement(elem string) ([]int, error) {
	if !strings.Contains(elem, "-") {
		p, err := parsePin(elem)
		if err != nil {
			return nil, err
		}
		return []int{p}, nil
	}
	aa := strings.Split(elem, "-")
	if len(aa) != 2 {
		return nil, fmt.Errorf("can't parse pin range '%s'", elem)
	}
	from, err := parsePin(aa[0])
	if err != nil {
		return nil, err
	}
	to, err := parsePin(aa[1])
	if err != nil {
		return nil, err
	}
	pp := []int(nil)
	for p := from; p <= to; p++ {
		pp = append(pp, p)
	}
	return pp, nil
}

func parsePin(arg string) (int, error) {
	// bitSize 31 so ids too large to be pins fail here rather than
	// overflowing int.
	p, err := strconv.ParseUint(arg, 10, 31)
	if err != nil {
		return 0, fmt.Errorf("can't parse pin '%s'", arg)
	}
	return int(p), nil
}
