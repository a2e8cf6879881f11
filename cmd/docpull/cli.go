package main

import "time"

// CLI defines the command-line interface. Every flag is optional; running
// docpull with no arguments mirrors the embedded manifest into the current
// directory.
type CLI struct {
	Manifest string        `short:"m" help:"Manifest file (defaults to the embedded manifest)"`
	Root     string        `short:"r" default:"." help:"Output root directory"`
	Delay    time.Duration `default:"1s" help:"Minimum delay between requests"`
	Timeout  time.Duration `default:"30s" help:"Per-request fetch timeout"`
	Verbose  bool          `short:"v" help:"Enable debug logging"`
}
