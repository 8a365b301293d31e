package embedlogo

import (
	"bytes"
	"strings"

	"golang.org/x/net/html"
)

// voidElements never have an end tag, so they do not enclose text.
var voidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "link": true, "meta": true,
	"source": true, "track": true, "wbr": true,
}

// FindReferences lists every mention of name in an HTML document: attribute
// values, comments and text (including <script> and <style> bodies).
// Attribute values that are data URIs are skipped, so running it on the
// substituted document lists exactly what substitution left behind.
//
// The document is only tokenized, never re-rendered.
func FindReferences(doc, name string) []Reference {
	if name == "" || !strings.Contains(doc, name) {
		return nil
	}

	needle := []byte(name)
	z := html.NewTokenizer(strings.NewReader(doc))
	line := 1
	var open []string // enclosing non-void elements, innermost last

	var refs []Reference
	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			// io.EOF or a tokenizer error; either way nothing more to scan
			return refs
		}

		raw := z.Raw()
		start := line
		line += bytes.Count(raw, []byte{'\n'})

		switch tt {
		case html.StartTagToken, html.SelfClosingTagToken:
			tok := z.Token()
			if tt == html.StartTagToken && !voidElements[tok.Data] {
				open = append(open, tok.Data)
			}
			refs = append(refs, attributeRefs(tok, raw, name, start)...)
		case html.EndTagToken:
			tok := z.Token()
			open = closeElement(open, tok.Data)
		case html.CommentToken:
			if !bytes.Contains(raw, needle) {
				continue
			}
			refs = append(refs, Reference{
				Kind: ReferenceComment,
				Line: lineOf(raw, needle, start),
			})
		case html.TextToken:
			if !bytes.Contains(raw, needle) {
				continue
			}
			ref := Reference{Kind: ReferenceText, Line: lineOf(raw, needle, start)}
			if len(open) > 0 {
				ref.Tag = open[len(open)-1]
			}
			refs = append(refs, ref)
		}
	}
}

// closeElement pops open up to and including the innermost element named
// tag. A stray end tag with no matching open element is ignored.
func closeElement(open []string, tag string) []string {
	for i := len(open) - 1; i >= 0; i-- {
		if open[i] == tag {
			return open[:i]
		}
	}
	return open
}

// attributeRefs returns one Reference per attribute of tok mentioning name.
// Occurrences in raw are consumed in attribute order, so each attribute gets
// the line its own value sits on.
func attributeRefs(tok html.Token, raw []byte, name string, start int) []Reference {
	needle := []byte(name)
	offset := 0

	var refs []Reference
	for _, a := range tok.Attr {
		n := strings.Count(a.Val, name)
		if n == 0 {
			continue
		}

		attrLine := start
		if idx := bytes.Index(raw[offset:], needle); idx >= 0 {
			attrLine = start + bytes.Count(raw[:offset+idx], []byte{'\n'})
		}
		offset = skipOccurrences(raw, needle, offset, n)

		if strings.HasPrefix(a.Val, dataURIScheme) {
			continue
		}
		refs = append(refs, Reference{
			Kind: ReferenceAttribute,
			Tag:  tok.Data,
			Attr: a.Key,
			Line: attrLine,
		})
	}
	return refs
}

// skipOccurrences returns the offset just past the n-th occurrence of needle
// in raw at or after offset, or len(raw) if there are fewer.
func skipOccurrences(raw, needle []byte, offset, n int) int {
	for ; n > 0; n-- {
		idx := bytes.Index(raw[offset:], needle)
		if idx < 0 {
			return len(raw)
		}
		offset += idx + len(needle)
	}
	return offset
}

// lineOf returns the line of the first occurrence of needle in raw,
// given that raw starts on line start.
func lineOf(raw, needle []byte, start int) int {
	idx := bytes.Index(raw, needle)
	if idx < 0 {
		return start
	}
	return start + bytes.Count(raw[:idx], []byte{'\n'})
}
