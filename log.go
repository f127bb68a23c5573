// SPDX-License-Identifier: MIT
//
// Copyright © 2020 Kent Gibson <warthog618@gmail.com>.

package rpio

import (
	"io"
	"log/slog"
)

// NewLogger returns the logger the operations report through, writing to w
// at info level, or at debug level when verbose. It is constructed once at
// startup and passed to the operations that log.
func NewLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
