package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: embedlogo [flags]")
	fmt.Fprintln(w, "       embedlogo <command>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Inline logo.png into index.html as a base64 data URI, then delete logo.png.")
	fmt.Fprintln(w, "Only the exact attribute src=\"logo.png\" is replaced.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show this help")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Files:")
	fmt.Fprintln(w, "  -i, --image <path>        Image to inline (default logo.png)")
	fmt.Fprintln(w, "  -d, --document <path>     HTML document to rewrite (default index.html)")
	fmt.Fprintln(w, "      --src <value>         src value to replace (default: image path)")
	fmt.Fprintln(w, "      --mime <type>         Data URI media type (default image/png)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Behavior:")
	fmt.Fprintln(w, "      --keep-image          Keep the image after inlining")
	fmt.Fprintln(w, "      --dry-run             Report changes without writing or deleting")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show replacement details and timing")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  EMBEDLOGO_CONFIG, EMBEDLOGO_IMAGE, EMBEDLOGO_DOCUMENT,")
	fmt.Fprintln(w, "  EMBEDLOGO_SRC, EMBEDLOGO_MIME_TYPE")
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return
	}

	switch args[0] {
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: embedlogo version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: embedlogo help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
	}
}
