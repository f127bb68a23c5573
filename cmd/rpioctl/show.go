// SPDX-License-Identifier: MIT
//
// Copyright © 2020 Kent Gibson <warthog618@gmail.com>.

//go:build linux
// +build linux

package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/warthog618/rpio"
)

func init() {
	showCmd.SetHelpTemplate(showCmd.HelpTemplate() + extendedShowHelp)
	rootCmd.AddCommand(showCmd)
}

var showCmd = &cobra.Command{
	Use:     "show <pins>",
	Short:   "Show the function and state of a pin or pins",
	Example: "  rpioctl show 17\n  rpioctl show 17,18,19\n  rpioctl show 2-20",
	Args:    cobra.ExactArgs(1),
	RunE:    show,
}

var extendedShowHelp = `
Pins:
  Pins are identified by BCM number, and may be given singly, as a
  comma separated list, or as an inclusive range (eg. 2-20).

Showing a pin does not change its mode.
`

func show(cmd *cobra.Command, args []string) error {
	return withDevice(func(dev rpio.Device, log *slog.Logger) error {
		return rpio.Show(dev, os.Stdout, args[0])
	})
}
