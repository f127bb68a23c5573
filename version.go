// SPDX-License-Identifier: MIT
//
// Copyright © 2020 Kent Gibson <warthog618@gmail.com>.

package rpio

import (
	"errors"
	"fmt"

	"golang.org/x/mod/semver"
)

// MinVersion is the oldest github.com/warthog618/gpio supporting the forced
// read/write and watch operations the tool relies on.
const MinVersion = "v1.0.0"

// ErrOutdated indicates the GPIO library is older than MinVersion.
var ErrOutdated = errors.New("gpio library outdated")

// CheckVersion returns ErrOutdated, wrapped with an upgrade instruction, if
// the device reports a version ordered below MinVersion.
//
// An empty or non-semver version cannot be ordered and is accepted - that is
// the case for builds from a gpio work tree.
func CheckVersion(d Device) error {
	v := d.Version()
	if !semver.IsValid(v) {
		return nil
	}
	if semver.Compare(v, MinVersion) < 0 {
		return fmt.Errorf("%w: found %s but %s or later is required - run `go get -u github.com/warthog618/gpio` and rebuild",
			ErrOutdated, v, MinVersion)
	}
	return nil
}
