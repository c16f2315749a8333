package markers

import (
	"fmt"
	"regexp"
	"strings"
)

// Syntax describes how section markers look in a document
type Syntax struct {
	// Name identifies the syntax in configuration
	Name string

	// Start and End must each have exactly one capture group holding the section name
	Start *regexp.Regexp
	End   *regexp.Regexp

	// Comment is the line-comment prefix used for invisible annotations
	Comment string
}

var (
	// Labels is the WP Starter label syntax: `NAME: {` ... `} #@@/NAME`
	Labels = Syntax{
		Name:    "labels",
		Start:   regexp.MustCompile(`^\s*([A-Z][A-Z0-9_]*)\s*:\s*\{\s*$`),
		End:     regexp.MustCompile(`^\s*\}\s*#@@/([A-Z][A-Z0-9_]*)\s*$`),
		Comment: "//",
	}

	// Comments is a generic syntax: `// <NAME>` ... `// </NAME>`
	Comments = Syntax{
		Name:    "comment",
		Start:   regexp.MustCompile(`^\s*//\s*<([A-Za-z][A-Za-z0-9_.-]*)>\s*$`),
		End:     regexp.MustCompile(`^\s*//\s*</([A-Za-z][A-Za-z0-9_.-]*)>\s*$`),
		Comment: "//",
	}
)

// Default is the syntax used when none is configured
var Default = Labels

// SyntaxByName returns a built-in syntax
func SyntaxByName(name string) (Syntax, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", Labels.Name:
		return Labels, nil
	case Comments.Name, "comments":
		return Comments, nil
	default:
		return Syntax{}, fmt.Errorf("unknown marker syntax: %s", name)
	}
}

// StartName returns the section name if line is a start marker
func (s Syntax) StartName(line string) (string, bool) {
	return match(s.Start, line)
}

// EndName returns the section name if line is an end marker
func (s Syntax) EndName(line string) (string, bool) {
	return match(s.End, line)
}

// IsMarker reports whether line is a start or end marker of any section
func (s Syntax) IsMarker(line string) bool {
	if _, ok := s.StartName(line); ok {
		return true
	}
	_, ok := s.EndName(line)
	return ok
}

func match(re *regexp.Regexp, line string) (string, bool) {
	m := re.FindStringSubmatch(TrimEOL(line))
	if m == nil {
		return "", false
	}
	return m[1], true
}
