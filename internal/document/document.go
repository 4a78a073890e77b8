// Package document parses XML payloads into a navigable element tree that
// remembers source line numbers. Findings are attributed to the line of the
// element's start tag, so the tree has to be built by hand on top of
// encoding/xml rather than unmarshalled into structs.
package document

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
)

// Element is one node of the parsed tree.
type Element struct {
	// Local is the tag name without namespace prefix.
	Local string
	// Space is the resolved namespace URI, empty for unqualified elements.
	Space string
	// Line is the 1-based line of the element's start tag in the input.
	Line int

	Attrs    []Attr
	Children []*Element

	text strings.Builder
}

// Attr is a single attribute on an element.
type Attr struct {
	Local string
	Value string
}

// Parse builds the element tree for a full XML document. It returns an error
// when the input is not well-formed; partial trees are never returned.
func Parse(data []byte) (*Element, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))
	lines := lineIndex(data)

	var root *Element
	var stack []*Element

	for {
		tok, err := dec.Token()
		if err != nil {
			if errors.Is(err, io.EOF) {
				if root != nil && len(stack) == 0 {
					return root, nil
				}
				return nil, fmt.Errorf("parse document: unexpected end of input")
			}
			return nil, fmt.Errorf("parse document: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			el := &Element{
				Local: t.Name.Local,
				Space: t.Name.Space,
				Line:  lines.lineAt(dec.InputOffset()),
			}
			for _, a := range t.Attr {
				// Namespace declarations are wiring, not data.
				if a.Name.Space == "xmlns" || a.Name.Local == "xmlns" {
					continue
				}
				el.Attrs = append(el.Attrs, Attr{Local: a.Name.Local, Value: a.Value})
			}
			if len(stack) == 0 {
				if root != nil {
					return nil, fmt.Errorf("parse document: multiple root elements")
				}
				root = el
			} else {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, el)
			}
			stack = append(stack, el)
		case xml.EndElement:
			if len(stack) == 0 {
				return nil, fmt.Errorf("parse document: unbalanced end element </%s>", t.Name.Local)
			}
			stack = stack[:len(stack)-1]
		case xml.CharData:
			if len(stack) > 0 {
				stack[len(stack)-1].text.Write(t)
			}
		}
	}
}

// Text returns the element's own character data with surrounding whitespace
// trimmed.
func (e *Element) Text() string {
	if e == nil {
		return ""
	}
	return strings.TrimSpace(e.text.String())
}

// Attr returns the value of the named attribute and whether it is present.
func (e *Element) Attr(local string) (string, bool) {
	if e == nil {
		return "", false
	}
	for _, a := range e.Attrs {
		if a.Local == local {
			return a.Value, true
		}
	}
	return "", false
}

// Child returns the first direct child with the given local name, or nil.
func (e *Element) Child(local string) *Element {
	if e == nil {
		return nil
	}
	for _, c := range e.Children {
		if c.Local == local {
			return c
		}
	}
	return nil
}

// Path walks first-child steps by local name and returns the element at the
// end of the path, or nil when any step is missing.
func (e *Element) Path(locals ...string) *Element {
	cur := e
	for _, name := range locals {
		cur = cur.Child(name)
		if cur == nil {
			return nil
		}
	}
	return cur
}

// PathText returns the trimmed text at the end of a first-child path, or the
// fallback when the path is missing or empty.
func (e *Element) PathText(fallback string, locals ...string) string {
	el := e.Path(locals...)
	if el == nil || el.Text() == "" {
		return fallback
	}
	return el.Text()
}

// Descendants returns every descendant (document order, self excluded) whose
// local name matches.
func (e *Element) Descendants(local string) []*Element {
	if e == nil {
		return nil
	}
	var out []*Element
	for _, c := range e.Children {
		if c.Local == local {
			out = append(out, c)
		}
		out = append(out, c.Descendants(local)...)
	}
	return out
}

// FirstDescendant returns the first matching descendant in document order, or
// nil when none exists.
func (e *Element) FirstDescendant(local string) *Element {
	if e == nil {
		return nil
	}
	for _, c := range e.Children {
		if c.Local == local {
			return c
		}
		if found := c.FirstDescendant(local); found != nil {
			return found
		}
	}
	return nil
}

// lineOffsets maps byte offsets back to 1-based line numbers.
type lineOffsets []int64

func lineIndex(data []byte) lineOffsets {
	offsets := lineOffsets{0}
	for i, b := range data {
		if b == '\n' {
			offsets = append(offsets, int64(i+1))
		}
	}
	return offsets
}

// lineAt returns the 1-based line containing the byte just before offset.
// The decoder reports the offset after the start tag, so step back one byte
// to stay on the tag's own line.
func (l lineOffsets) lineAt(offset int64) int {
	if offset > 0 {
		offset--
	}
	return sort.Search(len(l), func(i int) bool { return l[i] > offset })
}
