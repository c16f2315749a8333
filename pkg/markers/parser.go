package markers

import (
	"strings"

	"github.com/arthur-debert/wpconf/pkg/errors"
)

// Section is the position of a named section in a Layout.
// Start and End are line indexes of the two markers, Start < End.
type Section struct {
	Name  string
	Start int
	End   int
}

// Layout is a parsed document
type Layout struct {
	// Lines keeps every line with its own terminator; joining them
	// reproduces the input exactly.
	Lines    []string
	Sections []Section
}

// Body returns the lines strictly between the section markers
func (l *Layout) Body(s Section) []string {
	return l.Lines[s.Start+1 : s.End]
}

// Lookup finds a section by name
func (l *Layout) Lookup(name string) (Section, bool) {
	for _, s := range l.Sections {
		if s.Name == name {
			return s, true
		}
	}
	return Section{}, false
}

// Names returns section names in document order
func (l *Layout) Names() []string {
	names := make([]string, 0, len(l.Sections))
	for _, s := range l.Sections {
		names = append(names, s.Name)
	}
	return names
}

// Parse locates every section in text.
// It fails with ErrMalformedMarkers on unterminated, unmatched, nested or
// duplicated sections.
func Parse(text string, syntax Syntax) (*Layout, error) {
	layout := &Layout{Lines: SplitLines(text)}
	seen := make(map[string]int)

	open := -1
	openName := ""

	for i, line := range layout.Lines {
		if name, ok := syntax.StartName(line); ok {
			if open >= 0 {
				return nil, malformed("section %q starts before %q is closed", name, openName).
					WithDetail("section", name).
					WithDetail("line", i+1)
			}
			if first, dup := seen[name]; dup {
				return nil, malformed("section %q is defined twice", name).
					WithDetail("section", name).
					WithDetail("line", i+1).
					WithDetail("first_line", first+1)
			}
			seen[name] = i
			open, openName = i, name
			continue
		}

		if name, ok := syntax.EndName(line); ok {
			if open < 0 {
				return nil, malformed("end of section %q without a start", name).
					WithDetail("section", name).
					WithDetail("line", i+1)
			}
			if name != openName {
				return nil, malformed("section %q is closed by end marker of %q", openName, name).
					WithDetail("section", openName).
					WithDetail("line", i+1)
			}
			layout.Sections = append(layout.Sections, Section{Name: name, Start: open, End: i})
			open, openName = -1, ""
		}
	}

	if open >= 0 {
		return nil, malformed("section %q is never closed", openName).
			WithDetail("section", openName).
			WithDetail("line", open+1)
	}

	return layout, nil
}

// SplitLines splits text after each "\n", keeping terminators.
// The last element has no terminator when text does not end with one.
func SplitLines(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.SplitAfter(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// TrimEOL strips a trailing "\n" or "\r\n"
func TrimEOL(line string) string {
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r")
}

// LineEnding returns the terminator used by the first terminated line, "\n" by default
func LineEnding(lines []string) string {
	for _, l := range lines {
		if strings.HasSuffix(l, "\r\n") {
			return "\r\n"
		}
		if strings.HasSuffix(l, "\n") {
			return "\n"
		}
	}
	return "\n"
}

func malformed(format string, args ...interface{}) *errors.WpconfError {
	return errors.Newf(errors.ErrMalformedMarkers, format, args...)
}
