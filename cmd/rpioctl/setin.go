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
	setinCmd.SetHelpTemplate(setinCmd.HelpTemplate() + extendedSetinHelp)
	rootCmd.AddCommand(setinCmd)
}

var setinCmd = &cobra.Command{
	Use:     "setin <pin>[:<pull>]",
	Short:   "Setup a pin as INPUT",
	Example: "  rpioctl setin 17\n  rpioctl setin 17:pullup\n  rpioctl setin 17:pulldown",
	Args:    cobra.ExactArgs(1),
	RunE:    setin,
}

var extendedSetinHelp = `
Pulls:
  The pin may carry a pull resistor suffix of pullup or pulldown.
`

func setin(cmd *cobra.Command, args []string) error {
	return withDevice(func(dev rpio.Device, log *slog.Logger) error {
		return rpio.SetInput(dev, log, args[0])
	})
}
