// SPDX-License-Identifier: MIT
//
// Copyright © 2020 Kent Gibson <warthog618@gmail.com>.

//go:build linux
// +build linux

// A clone of the RPIO command line interface.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/warthog618/config"
	"github.com/warthog618/config/dict"
	"github.com/warthog618/config/keys"
	"github.com/warthog618/config/pflag"
	"github.com/warthog618/rpio"
)

var version = "undefined"

// The mode options, in priority order. The first one given wins and any
// others are ignored.
var modes = []string{"show", "write", "interrupt", "setoutput", "setinput"}

func main() {
	cfg := loadConfig()
	mode, spec := selectMode(cfg)
	if mode == "" {
		printHelp()
		os.Exit(0)
	}
	log := rpio.NewLogger(os.Stderr, cfg.MustGet("verbose").Bool())
	dev, err := rpio.Open()
	if err != nil {
		die(err.Error())
	}
	err = run(dev, log, mode, spec)
	if cerr := dev.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		die(err.Error())
	}
}

func run(dev rpio.Device, log *slog.Logger, mode, spec string) error {
	switch mode {
	case "show":
		return rpio.Show(dev, os.Stdout, spec)
	case "write":
		return rpio.Write(dev, log, spec)
	case "interrupt":
		ctx, stop := signal.NotifyContext(context.Background(),
			os.Interrupt, syscall.SIGTERM)
		defer stop()
		return rpio.Monitor(ctx, dev, os.Stdout, log, spec)
	case "setoutput":
		return rpio.SetOutput(dev, log, spec)
	case "setinput":
		return rpio.SetInput(dev, log, spec)
	}
	return fmt.Errorf("unknown mode '%s'", mode)
}

func selectMode(cfg *config.Config) (string, string) {
	for _, mode := range modes {
		if spec := cfg.MustGet(mode).String(); spec != "" {
			return mode, spec
		}
	}
	return "", ""
}

func loadConfig() *config.Config {
	ff := []pflag.Flag{
		{Short: 'h', Name: "help", Options: pflag.IsBool},
		{Short: 's', Name: "show"},
		{Short: 'w', Name: "write"},
		{Short: 'i', Name: "interrupt"},
		{Name: "setoutput"},
		{Name: "setinput"},
		{Short: 'v', Name: "verbose", Options: pflag.IsBool},
		{Name: "version", Options: pflag.IsBool},
	}
	defaults := dict.New(dict.WithMap(
		map[string]interface{}{
			"help":      false,
			"show":      "",
			"write":     "",
			"interrupt": "",
			"setoutput": "",
			"setinput":  "",
			"verbose":   false,
			"version":   false,
		}))
	flags := pflag.New(pflag.WithFlags(ff),
		pflag.WithKeyReplacer(keys.NullReplacer()),
	)
	cfg := config.New(flags, config.WithDefault(defaults))
	if cfg.MustGet("help").Bool() {
		printHelp()
		os.Exit(0)
	}
	if cfg.MustGet("version").Bool() {
		printVersion()
		os.Exit(0)
	}
	return cfg
}

func die(reason string) {
	fmt.Fprintln(os.Stderr, "rpio: "+reason)
	os.Exit(1)
}

func printHelp() {
	fmt.Printf("Usage: %s [OPTIONS]\n", os.Args[0])
	fmt.Println("Read, write and monitor Raspberry Pi GPIO pins.")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  -h, --help:\t\tdisplay this message and exit")
	fmt.Println("  -s, --show=PINS:\tshow the function and state of pins (eg. 17, 17,18,19 or 2-20)")
	fmt.Println("  -w, --write=PIN:LEVEL:\tset an output pin to 0 or 1 (eg. 17:1)")
	fmt.Println("  -i, --interrupt=PINS:\tshow interrupt events on pins, each optionally")
	fmt.Println("\t\t\twith an edge (eg. 17:both,18:falling or 2-20:rising)")
	fmt.Println("  --setoutput=PIN:\tsetup a pin as OUTPUT")
	fmt.Println("  --setinput=PIN:\tsetup a pin as INPUT, optionally with a pull")
	fmt.Println("\t\t\tresistor (eg. 17, 17:pullup or 17:pulldown)")
	fmt.Println("  -v, --verbose:\tenable debug logging")
	fmt.Println("  --version:\t\tdisplay the version and exit")
	fmt.Println()
	fmt.Println("The mode options are mutually exclusive - the first given wins.")
}

func printVersion() {
	fmt.Printf("%s (rpio) %s\n", os.Args[0], version)
}
