// Package fingerprint recognizes blocks that were already inserted into a
// section, so replaying the same edits never duplicates content.
//
// Every inserted block is preceded by an annotation line carrying the
// fingerprint of its normalized text. The annotation is a line comment, so
// it is invisible to the program that eventually reads the generated file.
package fingerprint

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/text/unicode/norm"
)

// Tag prefixes the fingerprint inside an annotation line
const Tag = "wpconf:fingerprint"

// Fingerprint identifies a payload by content
type Fingerprint string

var annotation = regexp.MustCompile(`^\s*\S+\s*` + regexp.QuoteMeta(Tag) + `\s+([0-9a-f]{16})\s*$`)

// Of computes the fingerprint of payload after normalization
func Of(payload string) Fingerprint {
	return Fingerprint(fmt.Sprintf("%016x", xxhash.Sum64String(Normalize(payload))))
}

// Normalize canonicalizes payload whitespace so cosmetic differences hash equal.
// Unicode is NFC-composed, line endings become LF, trailing whitespace is
// dropped from every line, blank line runs collapse to one and leading and
// trailing blank lines are removed. Indentation is kept.
func Normalize(payload string) string {
	payload = norm.NFC.String(payload)
	payload = strings.ReplaceAll(payload, "\r\n", "\n")

	var out []string
	blank := false
	for _, line := range strings.Split(payload, "\n") {
		line = strings.TrimRight(line, " \t\r")
		if line == "" {
			blank = true
			continue
		}
		if blank && len(out) > 0 {
			out = append(out, "")
		}
		blank = false
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}

// Line renders the annotation line for fp
func Line(fp Fingerprint, comment, eol string) string {
	return comment + " " + Tag + " " + string(fp) + eol
}

// Parse extracts the fingerprint from an annotation line
func Parse(line string) (Fingerprint, bool) {
	line = strings.TrimRight(line, "\r\n")
	m := annotation.FindStringSubmatch(line)
	if m == nil {
		return "", false
	}
	return Fingerprint(m[1]), true
}

// Set holds fingerprints present in a section
type Set map[Fingerprint]struct{}

// Scan collects every annotation found in lines
func Scan(lines []string) Set {
	set := make(Set)
	for _, l := range lines {
		if fp, ok := Parse(l); ok {
			set.Add(fp)
		}
	}
	return set
}

// Has reports whether fp is in the set
func (s Set) Has(fp Fingerprint) bool {
	_, ok := s[fp]
	return ok
}

// Add records fp
func (s Set) Add(fp Fingerprint) {
	s[fp] = struct{}{}
}
