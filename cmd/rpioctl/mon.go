// SPDX-License-Identifier: MIT
//
// Copyright © 2020 Kent Gibson <warthog618@gmail.com>.

//go:build linux
// +build linux

package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/warthog618/rpio"
)

func init() {
	monCmd.SetHelpTemplate(monCmd.HelpTemplate() + extendedMonHelp)
	rootCmd.AddCommand(monCmd)
}

var monCmd = &cobra.Command{
	Use:     "mon <pins>",
	Short:   "Show interrupt events on a pin or pins",
	Long:    `Wait for edge events on GPIO pins and print them to standard output.`,
	Example: "  rpioctl mon 17\n  rpioctl mon 17:rising,18:falling,19\n  rpioctl mon 2-20:rising",
	Args:    cobra.ExactArgs(1),
	RunE:    mon,
}

var extendedMonHelp = `
Edges:
  Each pin may carry an edge suffix of rising, falling or both.
  By default both rising and falling edge events are detected and reported.

Exit with Ctrl+C. The watches are released on exit.
`

func mon(cmd *cobra.Command, args []string) error {
	return withDevice(func(dev rpio.Device, log *slog.Logger) error {
		ctx, stop := signal.NotifyContext(context.Background(),
			os.Interrupt, syscall.SIGTERM)
		defer stop()
		return rpio.Monitor(ctx, dev, os.Stdout, log, args[0])
	})
}
