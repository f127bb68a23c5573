// SPDX-License-Identifier: MIT
//
// Copyright © 2020 Kent Gibson <warthog618@gmail.com>.

//go:build linux
// +build linux

package main

import (
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/warthog618/rpio"
)

func init() {
	writeCmd.SetHelpTemplate(writeCmd.HelpTemplate() + extendedWriteHelp)
	rootCmd.AddCommand(writeCmd)
}

var writeCmd = &cobra.Command{
	Use:     "write <pin>:<level>",
	Short:   "Set the level of an output pin",
	Example: "  rpioctl write 17:1",
	Args:    cobra.ExactArgs(1),
	RunE:    write,
}

var extendedWriteHelp = `
Levels:
  Levels may be 0 or 1.

The pin must already be in output mode - write does not change pin modes.
Use "rpioctl setout <pin>" to make a pin writable.
`

func write(cmd *cobra.Command, args []string) error {
	return withDevice(func(dev rpio.Device, log *slog.Logger) error {
		return rpio.Write(dev, log, args[0])
	})
}
