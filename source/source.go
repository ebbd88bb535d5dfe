// Package source holds named input buffers and byte-offset locations
// within them.
package source

import (
	"fmt"

	"github.com/charon-lang/charon/text"
)

// Source is a named input text.
type Source struct {
	Name string
	Text text.Text
}

// New creates a source from raw content.
func New(name string, content []byte) *Source {
	return &Source{Name: name, Text: text.New(content)}
}

// FromString creates a source from a string.
func FromString(name, content string) *Source {
	return &Source{Name: name, Text: text.FromString(content)}
}

// Len returns the byte length of the source text.
func (s *Source) Len() int {
	return s.Text.Len()
}

// Position resolves a byte offset to a 1-based (line, column) pair.  The
// column counts bytes from the start of the line.
func (s *Source) Position(offset int) (line, col int) {
	if offset > s.Text.Len() {
		offset = s.Text.Len()
	}
	line, col = 1, 1
	for i := 0; i < offset; i++ {
		col++
		if s.Text.At(i) == '\n' {
			line++
			col = 1
		}
	}
	return line, col
}

// LineStart returns the byte offset of the first byte of the line holding
// offset.
func (s *Source) LineStart(offset int) int {
	if offset > s.Text.Len() {
		offset = s.Text.Len()
	}
	var start = 0
	for i := 0; i < offset; i++ {
		if s.Text.At(i) == '\n' {
			start = i + 1
		}
	}
	return start
}

// Line returns the text of the line beginning at the byte offset start,
// without its trailing newline.
func (s *Source) Line(start int) string {
	var end = start
	for end < s.Text.Len() && s.Text.At(end) != '\n' {
		end++
	}
	return s.Text.Slice(start, end-start).String()
}

// Location is a byte span within a source.
type Location struct {
	Source *Source
	Offset int
	Length int
}

// Position resolves the location's offset within its source.
func (l Location) Position() (line, col int) {
	return l.Source.Position(l.Offset)
}

// String renders the location as name:line:col.
func (l Location) String() string {
	var line, col = l.Position()
	return fmt.Sprintf("%s:%d:%d", l.Source.Name, line, col)
}
