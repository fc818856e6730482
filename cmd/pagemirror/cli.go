package main

import (
	"context"
	"io"
	"time"

	"github.com/fwojciec/pagemirror"
	"github.com/fwojciec/pagemirror/mirror"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	Mirrorer *mirror.Mirrorer
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	URLs      []string      `arg:"" optional:"" name:"url" help:"Page URLs to mirror. Read from stdin when omitted."`
	Ext       []string      `short:"e" placeholder:"EXT" help:"Asset extensions to download, comma separated (default: pdf,js,css,jpg,png,gif,woff2)"`
	Output    string        `short:"o" help:"Base directory for mirrored pages (default: current directory)"`
	Verbose   bool          `short:"v" help:"Print progress to stdout"`
	Debug     bool          `help:"Log requests and file writes to stderr"`
	Timeout   time.Duration `short:"t" help:"Per-request timeout (default: none)"`
	Rate      float64       `help:"Maximum requests per second per host (default: unlimited)"`
	UserAgent string        `name:"user-agent" help:"User-Agent header to send"`
	Config    string        `short:"c" help:"YAML config file"`
}

// Settings merges the flags over config. Flags left at their zero value
// fall back to the config file, then to built-in defaults.
func (c *CLI) Settings(config pagemirror.Config) pagemirror.Config {
	s := config
	if len(c.Ext) > 0 {
		s.Extensions = c.Ext
	}
	if c.UserAgent != "" {
		s.UserAgent = c.UserAgent
	}
	if c.Timeout != 0 {
		s.Timeout = c.Timeout
	}
	if c.Rate != 0 {
		s.Rate = c.Rate
	}
	if c.Output != "" {
		s.Output = c.Output
	}
	if s.Output == "" {
		s.Output = "."
	}
	s.Verbose = s.Verbose || c.Verbose
	return s
}

// MirrorCmd handles the mirror operation.
type MirrorCmd struct {
	URLs    []string
	Verbose bool
}
