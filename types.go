package embedlogo

import (
	"strconv"
	"strings"
	"time"
)

// Defaults for a plain run in the current directory.
const (
	DefaultImagePath    = "logo.png"
	DefaultDocumentPath = "index.html"
	DefaultMIMEType     = "image/png"
)

// Result describes the outcome of a run.
type Result struct {
	ImagePath    string
	DocumentPath string

	// Skipped is true when the image did not exist. Nothing was read or written.
	Skipped bool

	// EmbedSize is the length in characters of the data URI.
	EmbedSize int

	// Replacements counts substituted src attributes. Zero is not an error.
	Replacements int

	// Unreplaced lists mentions of the image name left in the document.
	Unreplaced []Reference

	DocumentWritten bool
	ImageDeleted    bool
	DryRun          bool
	Duration        time.Duration
}

// ReferenceKind classifies where a leftover mention was found.
type ReferenceKind int

const (
	ReferenceAttribute ReferenceKind = iota // attribute value on an element
	ReferenceComment                        // HTML comment
	ReferenceText                           // text node, including <script>/<style> bodies
)

// String returns a lowercase label for the kind.
func (k ReferenceKind) String() string {
	switch k {
	case ReferenceAttribute:
		return "attribute"
	case ReferenceComment:
		return "comment"
	case ReferenceText:
		return "text"
	default:
		return "unknown"
	}
}

// Reference is one mention of the image name that substitution did not touch.
type Reference struct {
	Kind ReferenceKind
	Tag  string // element name, empty for comments
	Attr string // attribute name, empty unless Kind is ReferenceAttribute
	Line int    // 1-based line in the document
}

// String formats the reference for console output, e.g. "line 3: <a href>".
func (r Reference) String() string {
	var b strings.Builder
	b.WriteString("line ")
	b.WriteString(strconv.Itoa(r.Line))
	b.WriteString(": ")
	switch r.Kind {
	case ReferenceAttribute:
		b.WriteString("<" + r.Tag + " " + r.Attr + ">")
	case ReferenceComment:
		b.WriteString("comment")
	default:
		if r.Tag != "" {
			b.WriteString("text in <" + r.Tag + ">")
		} else {
			b.WriteString("text")
		}
	}
	return b.String()
}

// Option configures an Inliner.
type Option func(*Inliner)

// inlinerConfig holds internal configuration for Inliner.
type inlinerConfig struct {
	imagePath    string
	documentPath string
	srcValue     string
	mimeType     string
	keepImage    bool
	dryRun       bool
}

// WithImagePath sets the image file to inline.
// Panics if path is empty (programmer error).
func WithImagePath(path string) Option {
	if path == "" {
		panic("embedlogo: WithImagePath path must not be empty")
	}
	return func(i *Inliner) {
		i.cfg.imagePath = path
	}
}

// WithDocumentPath sets the HTML document to rewrite.
// Panics if path is empty (programmer error).
func WithDocumentPath(path string) Option {
	if path == "" {
		panic("embedlogo: WithDocumentPath path must not be empty")
	}
	return func(i *Inliner) {
		i.cfg.documentPath = path
	}
}

// WithSrcValue sets the literal src attribute value to replace.
// Defaults to the image path as given. Panics if value is empty or contains
// a double quote, since neither can match a quoted src attribute.
func WithSrcValue(value string) Option {
	if value == "" || strings.ContainsRune(value, '"') {
		panic("embedlogo: WithSrcValue value must be non-empty and unquoted")
	}
	return func(i *Inliner) {
		i.cfg.srcValue = value
	}
}

// WithMIMEType sets the media type written into the data URI.
// Panics if mimeType is not of the form type/subtype.
func WithMIMEType(mimeType string) Option {
	typ, sub, ok := strings.Cut(mimeType, "/")
	if !ok || typ == "" || sub == "" || strings.ContainsAny(mimeType, " ;,") {
		panic("embedlogo: WithMIMEType requires type/subtype, got " + mimeType)
	}
	return func(i *Inliner) {
		i.cfg.mimeType = mimeType
	}
}

// WithKeepImage keeps the image file after the document is written.
func WithKeepImage() Option {
	return func(i *Inliner) {
		i.cfg.keepImage = true
	}
}

// WithDryRun computes the result without writing the document or deleting
// the image.
func WithDryRun() Option {
	return func(i *Inliner) {
		i.cfg.dryRun = true
	}
}

// WithClock sets the time source used to measure Result.Duration.
func WithClock(now func() time.Time) Option {
	return func(i *Inliner) {
		i.now = now
	}
}
