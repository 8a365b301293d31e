package embedlogo

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/alnah/go-embedlogo/internal/fileutil"
)

// Compile-time interface implementation check.
var _ fileSystem = osFileSystem{}

// fileSystem is the set of file operations a run performs.
type fileSystem interface {
	FileExists(path string) bool
	ReadFile(path string) ([]byte, error)
	WriteFileAtomic(path string, data []byte) error
	Remove(path string) error
}

// osFileSystem performs file operations on the local disk.
type osFileSystem struct{}

func (osFileSystem) FileExists(path string) bool { return fileutil.FileExists(path) }

func (osFileSystem) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path) // #nosec G304 -- paths come from the caller
}

func (osFileSystem) WriteFileAtomic(path string, data []byte) error {
	return fileutil.WriteFileAtomic(path, data)
}

func (osFileSystem) Remove(path string) error { return os.Remove(path) }

// Inliner embeds an image into an HTML document as a data URI.
// Create with NewInliner and call Run. An Inliner holds no state between
// runs and may be reused.
type Inliner struct {
	cfg inlinerConfig
	fs  fileSystem
	now func() time.Time
}

// NewInliner creates an Inliner for logo.png and index.html in the current
// directory. Use options to change paths, media type or deletion behavior.
func NewInliner(opts ...Option) *Inliner {
	i := &Inliner{
		cfg: inlinerConfig{
			imagePath:    DefaultImagePath,
			documentPath: DefaultDocumentPath,
			mimeType:     DefaultMIMEType,
		},
		fs:  osFileSystem{},
		now: time.Now,
	}

	for _, opt := range opts {
		opt(i)
	}

	return i
}

// ImagePath returns the configured image path.
func (i *Inliner) ImagePath() string { return i.cfg.imagePath }

// DocumentPath returns the configured document path.
func (i *Inliner) DocumentPath() string { return i.cfg.documentPath }

// SrcValue returns the src attribute value that will be replaced.
func (i *Inliner) SrcValue() string {
	if i.cfg.srcValue != "" {
		return i.cfg.srcValue
	}
	return i.cfg.imagePath
}

// Run performs the inlining sequence:
//
//  1. If the image does not exist, return a skipped Result and nil error.
//  2. Read the image and encode it as a data URI.
//  3. Read the document.
//  4. Replace every src="<value>" with src="<data URI>".
//  5. Replace the document atomically.
//  6. Delete the image.
//
// The image is deleted only after the document was written. On error the
// returned Result reflects the steps completed so far.
func (i *Inliner) Run(ctx context.Context) (*Result, error) {
	start := i.now()
	result := &Result{
		ImagePath:    i.cfg.imagePath,
		DocumentPath: i.cfg.documentPath,
		DryRun:       i.cfg.dryRun,
	}
	defer func() { result.Duration = i.now().Sub(start) }()

	if err := ctx.Err(); err != nil {
		return result, err
	}

	if !i.fs.FileExists(i.cfg.imagePath) {
		result.Skipped = true
		return result, nil
	}

	image, err := i.fs.ReadFile(i.cfg.imagePath)
	if err != nil {
		return result, fmt.Errorf("%w: %w", ErrReadImage, err)
	}
	uri := EncodeDataURI(image, i.cfg.mimeType)
	result.EmbedSize = len(uri)

	doc, err := i.fs.ReadFile(i.cfg.documentPath)
	if err != nil {
		return result, fmt.Errorf("%w: %w", ErrReadDocument, err)
	}

	updated, n := Substitute(string(doc), i.SrcValue(), uri)
	result.Replacements = n
	result.Unreplaced = FindReferences(updated, i.SrcValue())

	if i.cfg.dryRun {
		return result, nil
	}

	if err := ctx.Err(); err != nil {
		return result, err
	}
	if err := i.fs.WriteFileAtomic(i.cfg.documentPath, []byte(updated)); err != nil {
		return result, fmt.Errorf("%w: %w", ErrWriteDocument, err)
	}
	result.DocumentWritten = true

	if i.cfg.keepImage {
		return result, nil
	}

	if err := ctx.Err(); err != nil {
		return result, err
	}
	if err := i.fs.Remove(i.cfg.imagePath); err != nil {
		return result, fmt.Errorf("%w: %w", ErrDeleteImage, err)
	}
	result.ImageDeleted = true

	return result, nil
}
