//go:build linux

package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/jfrostbite/init-headphone/amp"
	"github.com/jfrostbite/init-headphone/pkg"
)

// Component identifier for command-line logging.
const componentCLI pkg.Component = "cli"

// version is stamped at build time via -ldflags.
var version = "0.1.0"

var (
	verbose     = flag.Bool("v", false, "Enable verbose logging")
	jsonOut     = flag.Bool("json", false, "Output logs as JSON")
	showVersion = flag.Bool("version", false, "Print version and exit")
)

// =============================================================================
// Commands
// =============================================================================

// commands maps command names to controller operations. Effect
// commands are added by init below.
var commands = map[string]func(*amp.Controller) error{
	"init":     func(c *amp.Controller) error { return c.Init() },
	"mute":     func(c *amp.Controller) error { return c.SetMute(true) },
	"unmute":   func(c *amp.Controller) error { return c.SetMute(false) },
	"recovery": func(c *amp.Controller) error { return c.Recover() },
}

func init() {
	for e := amp.Effect0; e < amp.EffectCount; e++ {
		e := e // per-iteration copy; the go directive predates Go 1.22 loop scoping
		commands[e.String()] = func(c *amp.Controller) error { return c.SetEffect(e) }
	}
}

func usage() {
	w := flag.CommandLine.Output()
	fmt.Fprintf(w, "Usage: %s [flags] [command]\n\n", os.Args[0])
	fmt.Fprint(w, "Commands:\n")
	fmt.Fprint(w, "  init             apply the default effect preset (default command)\n")
	fmt.Fprint(w, "  effect0-effect6  apply a specific effect preset\n")
	fmt.Fprint(w, "  mute             disable the output stage\n")
	fmt.Fprint(w, "  unmute           enable the output stage\n")
	fmt.Fprint(w, "  recovery         reset an unresponsive amplifier\n\n")
	fmt.Fprint(w, "Flags:\n")
	flag.PrintDefaults()
}

// =============================================================================
// Entry Point
// =============================================================================

func main() {
	os.Exit(Main())
}

// Main runs the command line and returns the process exit code.
func Main() int {
	flag.Usage = usage
	flag.Parse()

	if *showVersion {
		fmt.Printf("init-headphone %s\n", version)
		return 0
	}

	// Set up logging based on flags
	if *verbose {
		pkg.SetLogLevel(slog.LevelDebug)
	} else {
		pkg.SetLogLevel(slog.LevelInfo)
	}
	if *jsonOut {
		pkg.SetLogFormat(pkg.LogFormatJSON)
	}

	cmd := "init"
	switch flag.NArg() {
	case 0:
	case 1:
		cmd = flag.Arg(0)
	default:
		fmt.Fprint(flag.CommandLine.Output(), "too many arguments\n\n")
		flag.Usage()
		return 2
	}

	run, ok := commands[cmd]
	if !ok {
		fmt.Fprintf(flag.CommandLine.Output(), "unknown command: %s\n\n", cmd)
		flag.Usage()
		return 2
	}

	newAdvisoryChecks().run()

	ctrl := &amp.Controller{}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	errCh := make(chan error, 1)
	go func() { errCh <- run(ctrl) }()

	select {
	case err := <-errCh:
		if err != nil {
			pkg.LogError(componentCLI, "operation failed", "command", cmd)
			pkg.LogDebug(componentCLI, "failure detail", "error", err)
			return 1
		}
	case sig := <-sigCh:
		// The operation goroutine may still hold the channel; process
		// exit releases the descriptor.
		pkg.LogError(componentCLI, "interrupted", "signal", sig.String())
		return 1
	}

	pkg.LogDebug(componentCLI, "command finished", "command", cmd)
	return 0
}
