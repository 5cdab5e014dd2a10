package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/brettbedarf/dirtree"
	"github.com/brettbedarf/dirtree/config"
	"github.com/brettbedarf/dirtree/internal/util"
	"github.com/brettbedarf/dirtree/server"
	"github.com/brettbedarf/dirtree/sources"
)

func main() {
	// Parse command line arguments
	var (
		verbose    int
		configPath string
	)
	flag.IntVar(&verbose, "verbose", 0, "Log verbosity level between 1 (error) and 5 (trace). Default is 2 (warn).")
	flag.IntVar(&verbose, "v", 0, "--verbose (shorthand)")
	flag.StringVar(&configPath, "config", "", "Path to YAML or JSON config override file")
	flag.StringVar(&configPath, "c", "", "--config (shorthand)")
	flag.Usage = usage
	flag.Parse()

	// Assemble config: defaults < file < env < flags
	var fileOverride *config.ConfigOverride
	var fileErr error
	if configPath != "" {
		fileOverride, fileErr = config.LoadConfigOverrideFile(configPath)
	}
	envOverride, envErr := config.LoadEnvOverride()
	flagOverride := &config.ConfigOverride{}
	if verbose != 0 {
		flagOverride.LogLvl = &verbose
	}
	cfg := config.NewConfig(fileOverride, envOverride, flagOverride)

	// Initialize logger
	util.InitializeLogger(cfg.LogLvl, os.Stderr)
	logger := util.GetLogger("main")
	if fileErr != nil {
		logger.Fatal().Err(fileErr).Str("config", configPath).Msg("Failed to load config file")
	}
	if envErr != nil {
		logger.Fatal().Err(envErr).Msg("Failed to load environment config")
	}
	if flag.NArg() > 1 {
		flag.Usage()
		os.Exit(2)
	}

	var src dirtree.LineSource
	if path := flag.Arg(0); path != "" {
		fileSrc, err := sources.OpenFile(path, cfg.MaxLineSize)
		if err != nil {
			logger.Fatal().Err(err).Str("file", path).Msg("Failed to open command file")
		}
		logger.Debug().Str("file", path).Msg("Batch mode")
		src = fileSrc
	} else {
		logger.Debug().Str("sentinel", cfg.Sentinel).Msg("Interactive mode")
		src = sources.NewInteractive(cfg, os.Stdin)
	}

	explorer := server.New(cfg, os.Stdout)
	err := explorer.Serve(src)
	if cerr := src.Close(); cerr != nil {
		logger.Warn().Err(cerr).Msg("Failed to close input")
	}
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to read commands")
	}
}

func usage() {
	out := flag.CommandLine.Output()
	fmt.Fprintf(out, "Usage: %s [flags] [command-file]\n\n", os.Args[0])
	fmt.Fprintln(out, "Without a command file, commands are read interactively until EXIT.")
	fmt.Fprintln(out, "Commands: CREATE <path>, DELETE <path>, MOVE <from> <to>, LIST")
	fmt.Fprintln(out, "\nFlags:")
	flag.PrintDefaults()
	if envHelp, err := config.EnvUsage(); err == nil {
		fmt.Fprintf(out, "\n%s", envHelp)
	}
}
