// Package render prints a laid-out résumé as plain text or HTML.
package render

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/sirspot/resume/pkg/resume"
)

// Format names an output format.
type Format string

const (
	FormatText Format = "text"
	FormatHTML Format = "html"
)

// ErrUnknownFormat is returned for a format name that is neither text nor html.
var ErrUnknownFormat = errors.New("render: unknown format")

// ParseFormat maps a format name to a Format. Only the first letter is
// significant, so "t", "Text" and "html5" are all accepted.
func ParseFormat(name string) (Format, error) {
	if name == "" {
		return "", fmt.Errorf("%w: empty", ErrUnknownFormat)
	}
	switch strings.ToLower(name[:1]) {
	case "t":
		return FormatText, nil
	case "h":
		return FormatHTML, nil
	}
	return "", fmt.Errorf("%w %q", ErrUnknownFormat, name)
}

// Header is the contact block printed above the sections.
type Header struct {
	Name   string
	Email  string
	City   string
	State  string
	Mobile string
	WebURL string
}

// Document is everything a Renderer prints.
type Document struct {
	Header Header
	Blocks []resume.Block
}

// Renderer writes a Document to w.
type Renderer interface {
	Render(w io.Writer, doc Document) error
}

// New returns the renderer for f.
func New(f Format) (Renderer, error) {
	switch f {
	case FormatText:
		return textRenderer{}, nil
	case FormatHTML:
		return htmlRenderer{}, nil
	}
	return nil, fmt.Errorf("%w %q", ErrUnknownFormat, string(f))
}

type page struct {
	Header   Header
	Sections []sectionView
}

type sectionView struct {
	Title string
	Lines []lineView
}

type lineView struct {
	Dates string
	Text  string
}

func newPage(doc Document) page {
	p := page{Header: doc.Header, Sections: make([]sectionView, 0, len(doc.Blocks))}
	for _, b := range doc.Blocks {
		sv := sectionView{Title: b.Section.Title(), Lines: make([]lineView, len(b.Entries))}
		for i, e := range b.Entries {
			sv.Lines[i] = lineView{Dates: datePrefix(e, b.Section.Dates), Text: e.Text()}
		}
		p.Sections = append(p.Sections, sv)
	}
	return p
}
