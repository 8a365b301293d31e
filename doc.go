// Package embedlogo inlines a local image into an HTML document as a base64
// data URI, then removes the image file.
//
// # Quick Start
//
// Run the inliner in the current directory. It reads logo.png, replaces every
// src="logo.png" in index.html with a data URI, and deletes logo.png:
//
//	result, err := embedlogo.NewInliner().Run(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if result.Skipped {
//	    fmt.Println("logo.png not found!")
//	}
//
// # Ordering
//
// The run is a fixed sequence: existence check, read and encode the image,
// read the document, substitute, write the document, delete the image.
// The document is replaced atomically (temp file in the same directory, then
// rename), and the image is deleted only after the rename succeeds. A failed
// write leaves both files as they were.
//
// # Options
//
//	inl := embedlogo.NewInliner(
//	    embedlogo.WithImagePath("assets/brand.png"),
//	    embedlogo.WithSrcValue("brand.png"),
//	    embedlogo.WithDocumentPath("site/index.html"),
//	    embedlogo.WithMIMEType("image/webp"),
//	    embedlogo.WithKeepImage(),
//	)
//
// Only the exact attribute text src="<value>" is replaced. Other mentions of
// the file name (href, srcset, comments, text) are left alone and reported in
// Result.Unreplaced.
package embedlogo
