package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	flag "github.com/spf13/pflag"
	"go.uber.org/automaxprocs/maxprocs"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	os.Exit(runMain(os.Args, DefaultEnv()))
}

// runMain dispatches commands and returns the process exit code.
// With no command, the inliner runs in the current directory.
func runMain(args []string, env *Environment) int {
	if len(args) > 0 {
		args = args[1:] // program name
	}

	if len(args) > 0 && isCommand(args[0]) {
		switch args[0] {
		case "version":
			fmt.Fprintf(env.Stdout, "embedlogo %s\n", Version)
		case "help":
			runHelp(args[1:], env)
		}
		return ExitSuccess
	}

	flags, positional, err := parseInlineFlags(args, env.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return ExitSuccess
		}
		fmt.Fprintln(env.Stderr, err)
		return ExitUsage
	}
	if len(positional) > 0 {
		fmt.Fprintf(env.Stderr, "%v: %s\n", ErrUnexpectedArgs, positional[0])
		printUsage(env.Stderr)
		return ExitUsage
	}

	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues safely.
	undo, _ := maxprocs.Set(maxprocs.Logger(func(format string, args ...interface{}) {
		if flags.common.verbose {
			fmt.Fprintf(env.Stderr, format+"\n", args...)
		}
	}))
	defer undo()

	ctx, stop := notifyContext(context.Background())
	defer stop()

	result, err := runInline(ctx, flags, env)
	if err != nil {
		fmt.Fprintln(env.Stderr, formatError(err, result, configName(flags)))
		return exitCodeFor(err)
	}
	return ExitSuccess
}

// configName returns the config name in effect: flag first, then EMBEDLOGO_CONFIG.
func configName(flags *inlineFlags) string {
	if flags.common.config != "" {
		return flags.common.config
	}
	return os.Getenv("EMBEDLOGO_CONFIG")
}

// isCommand reports whether arg names a subcommand.
func isCommand(arg string) bool {
	switch arg {
	case "version", "help":
		return true
	}
	return false
}
