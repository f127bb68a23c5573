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
	rootCmd.AddCommand(setoutCmd)
}

var setoutCmd = &cobra.Command{
	Use:     "setout <pin>",
	Short:   "Setup a pin as OUTPUT",
	Example: "  rpioctl setout 18",
	Args:    cobra.ExactArgs(1),
	RunE:    setout,
}

func setout(cmd *cobra.Command, args []string) error {
	return withDevice(func(dev rpio.Device, log *slog.Logger) error {
		return rpio.SetOutput(dev, log, args[0])
	})
}
