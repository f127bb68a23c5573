// SPDX-License-Identifier: MIT
//
// Copyright © 2020 Kent Gibson <warthog618@gmail.com>.

//go:build linux
// +build linux

package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/warthog618/rpio"
)

var version = "undefined"

var rootCmd = &cobra.Command{
	Use:   "rpioctl",
	Short: "rpioctl is a utility to control Raspberry Pi GPIO pins",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
	Version: version,
}

var rootOpts = struct {
	Verbose bool
}{}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&rootOpts.Verbose, "verbose", "v",
		false, "enable debug logging")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// withDevice opens the GPIO device around fn, so the device is released on
// all return paths - in particular after a cancelled mon.
func withDevice(fn func(dev rpio.Device, log *slog.Logger) error) error {
	log := rpio.NewLogger(os.Stderr, rootOpts.Verbose)
	dev, err := rpio.Open()
	if err != nil {
		return err
	}
	defer dev.Close()
	return fn(dev, log)
}
