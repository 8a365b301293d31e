package main

import (
	"io"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// inlineFlags holds all flags for an inlining run.
// Every flag is optional; empty values fall back to env, config, then defaults.
type inlineFlags struct {
	common    commonFlags
	image     string
	document  string
	srcValue  string
	mimeType  string
	keepImage bool
	dryRun    bool
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show replacement details and timing")
}

// parseInlineFlags parses flags and returns positional args.
func parseInlineFlags(args []string, stderr io.Writer) (*inlineFlags, []string, error) {
	fs := flag.NewFlagSet("embedlogo", flag.ContinueOnError)
	fs.SetOutput(stderr)
	f := &inlineFlags{}

	fs.StringVarP(&f.image, "image", "i", "", "image file to inline (default logo.png)")
	fs.StringVarP(&f.document, "document", "d", "", "HTML document to rewrite (default index.html)")
	fs.StringVar(&f.srcValue, "src", "", "src attribute value to replace (default: image path)")
	fs.StringVar(&f.mimeType, "mime", "", "media type of the data URI (default image/png)")
	fs.BoolVar(&f.keepImage, "keep-image", false, "keep the image file after inlining")
	fs.BoolVar(&f.dryRun, "dry-run", false, "report what would change without writing")

	addCommonFlags(fs, &f.common)

	fs.Usage = func() { printUsage(stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}
