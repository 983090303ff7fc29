package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/golang/glog"

	"github.com/hb9tf/profilegen/config"
	"github.com/hb9tf/profilegen/export"
	"github.com/hb9tf/profilegen/prompt"
	"github.com/hb9tf/profilegen/session"
	"github.com/hb9tf/profilegen/viewer"
	"github.com/hb9tf/profilegen/wizard"
)

// Flags
var (
	configFile = flag.String("config", "", "Optional YAML file with output settings and prompt defaults.")
	output     = flag.String("output", config.OutputFile, "Export mechanism to use (one of: file, stdout)")
	outFile    = flag.String("outFile", export.DefaultFile, "File path the profiles are written to when exporting to a file.")
	openFile   = flag.Bool("open", true, "Open the written file in the default viewer.")
	inclusive  = flag.Bool("inclusive", false, "Also emit a sub-band starting exactly at the end frequency.")
)

func main() {
	ctx := context.Background()
	// Set defaults for glog flags. Can be overridden via cmdline.
	flag.Set("logtostderr", "false")
	flag.Set("stderrthreshold", "WARNING")
	flag.Set("v", "1")
	// Parse flags globally.
	flag.Parse()
	defer glog.Flush()

	cfg := config.Default()
	if *configFile != "" {
		var err error
		if cfg, err = config.Load(*configFile); err != nil {
			glog.Exitf("unable to load config: %s", err)
		}
	}
	// Flags given on the command line win over the config file.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "output":
			cfg.Output = strings.ToLower(*output)
		case "outFile":
			cfg.OutFile = *outFile
		case "open":
			cfg.Open = openFile
		case "inclusive":
			cfg.Inclusive = *inclusive
		}
	})
	if err := cfg.Validate(); err != nil {
		glog.Exitf("invalid configuration: %s", err)
	}
	defaults, err := cfg.Defaults.Wizard()
	if err != nil {
		glog.Exitf("invalid prompt defaults: %s", err)
	}

	s := &session.Session{
		Prompter:  prompt.New(os.Stdin, os.Stdout),
		Defaults:  defaults,
		Inclusive: cfg.Inclusive,
	}

	// Exporter setup
	switch cfg.Output {
	case config.OutputFile:
		s.Exporter = &export.JSONFile{Path: cfg.OutFile}
		s.File = cfg.OutFile
		if cfg.ShouldOpen() {
			s.Open = viewer.Open
		}
	case config.OutputStdout:
		// Prompts go to stderr so stdout only carries the JSON document.
		s.Prompter = prompt.New(os.Stdin, os.Stderr)
		s.Exporter = &export.JSON{W: os.Stdout}
	default:
		glog.Exitf("%q is not a supported export method, pick one of: file, stdout", cfg.Output)
	}

	// Run
	if _, err := s.Run(ctx); err != nil {
		if errors.Is(err, wizard.ErrCanceled) {
			s.Prompter.Printf("Profile generation canceled.\n")
			return
		}
		fmt.Fprintf(os.Stderr, "Profile generation failed: %s\n", err)
		glog.Exit(err)
	}
}
